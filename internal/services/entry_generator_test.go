package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EntryGeneratorTestSuite struct {
	suite.Suite
	generator *entryGenerator
	start     time.Time
	end       time.Time
}

func TestEntryGeneratorSuite(t *testing.T) {
	suite.Run(t, new(EntryGeneratorTestSuite))
}

func (s *EntryGeneratorTestSuite) SetupTest() {
	s.generator = NewEntryGenerator(42).(*entryGenerator)
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
}

func (s *EntryGeneratorTestSuite) TestObjectNames_Distinct() {
	names := s.generator.ObjectNames(4)

	s.Len(names, 4)
	seen := make(map[string]struct{})
	for _, n := range names {
		s.Contains(objectNamePool, n)
		seen[n] = struct{}{}
	}
	s.Len(seen, 4)
}

func (s *EntryGeneratorTestSuite) TestObjectNames_Bounds() {
	s.Len(s.generator.ObjectNames(0), 1)
	s.Len(s.generator.ObjectNames(100), len(objectNamePool))
}

func (s *EntryGeneratorTestSuite) TestGenerateEntries_WithinRangeAndValid() {
	objects := []string{"ЖК Север", "ЖК Остров"}

	entries := s.generator.GenerateEntries(objects, s.start, s.end, 200)

	s.Len(entries, 200)
	for i := range entries {
		e := entries[i]
		s.NoError(e.Validate())
		s.Contains(objects, e.ObjectName)
		s.False(e.OperationDate.Before(s.start))
		s.False(e.OperationDate.After(s.end))
		s.Regexp(`^ДДУ-\d{4}/\d{2}$`, e.DocumentNumber)
		s.NotEmpty(e.PayerName)
	}
}

func (s *EntryGeneratorTestSuite) TestGenerateEntries_Deterministic() {
	objects := []string{"ЖК Север", "ЖК Остров"}

	first := NewEntryGenerator(7).GenerateEntries(objects, s.start, s.end, 20)
	second := NewEntryGenerator(7).GenerateEntries(objects, s.start, s.end, 20)

	s.Equal(first, second)
}

func (s *EntryGeneratorTestSuite) TestGenerateEntries_EmptyInput() {
	s.Empty(s.generator.GenerateEntries(nil, s.start, s.end, 10))
	s.Empty(s.generator.GenerateEntries([]string{"ЖК Север"}, s.end, s.start, 10))
}

func (s *EntryGeneratorTestSuite) TestGenerateAmount_RoundedAndBounded() {
	minAbs := decimal.NewFromInt(minDeposit)
	maxAbs := decimal.NewFromInt(maxDeposit)
	step := decimal.NewFromInt(depositRounding)

	for i := 0; i < 500; i++ {
		amount := s.generator.GenerateAmount()
		abs := amount.Abs()

		s.True(abs.GreaterThanOrEqual(minAbs), "amount %s below minimum", amount)
		s.True(abs.LessThanOrEqual(maxAbs), "amount %s above maximum", amount)
		s.True(abs.Mod(step).IsZero(), "amount %s not rounded", amount)
	}
}
