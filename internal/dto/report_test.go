package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscrowReportQuery_ToFilterState(t *testing.T) {
	q := EscrowReportQuery{
		Search:     "  ДДУ-1 ",
		Year:       "2024",
		Month:      "03",
		Objects:    []string{" ЖК Север ", "", "ЖК Запад"},
		Cumulative: true,
	}

	filters := q.ToFilterState()

	assert.Equal(t, "ДДУ-1", filters.SearchText)
	assert.Equal(t, "2024", filters.Year)
	assert.Equal(t, "03", filters.Month)
	assert.Equal(t, []string{"ЖК Север", "ЖК Запад"}, filters.SelectedObjects)
	assert.True(t, filters.Cumulative)
}

func TestEscrowReportQuery_NoObjectsMeansAll(t *testing.T) {
	filters := EscrowReportQuery{Objects: []string{" ", ""}}.ToFilterState()

	assert.True(t, filters.AllObjects())
}

func TestEscrowReportQuery_ObjectNameWithComma(t *testing.T) {
	filters := EscrowReportQuery{Objects: []string{"ЖК Север, 2 очередь"}}.ToFilterState()

	assert.Equal(t, []string{"ЖК Север, 2 очередь"}, filters.SelectedObjects)
}

func TestEscrowReportQuery_HasOrphanMonth(t *testing.T) {
	assert.True(t, EscrowReportQuery{Month: "05"}.HasOrphanMonth())
	assert.False(t, EscrowReportQuery{Year: "2024", Month: "05"}.HasOrphanMonth())
	assert.False(t, EscrowReportQuery{}.HasOrphanMonth())
}
