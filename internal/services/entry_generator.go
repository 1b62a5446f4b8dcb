package services

import (
	"time"

	"escrow-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	minDeposit      = 1_500_000
	maxDeposit      = 12_000_000
	refundPercent   = 4
	depositRounding = 1_000
)

var objectNamePool = []string{
	"ЖК Север",
	"ЖК Дом на Неве",
	"ЖК Солнечный квартал",
	"ЖК Зеленая роща",
	"ЖК Речной порт",
	"ЖК Парковый",
	"ЖК Новые горизонты",
	"ЖК Лесная поляна",
	"ЖК Центральный",
	"ЖК Остров",
}

type entryGenerator struct {
	faker *gofakeit.Faker
}

// NewEntryGenerator creates a generator of plausible escrow inflows. The same
// seed yields the same entries.
func NewEntryGenerator(seed uint64) EntryGeneratorInterface {
	return &entryGenerator{
		faker: gofakeit.New(seed),
	}
}

// ObjectNames picks n distinct construction objects from the pool
func (g *entryGenerator) ObjectNames(n int) []string {
	if n > len(objectNamePool) {
		n = len(objectNamePool)
	}
	if n < 1 {
		n = 1
	}

	names := make([]string, len(objectNamePool))
	copy(names, objectNamePool)
	g.faker.ShuffleStrings(names)
	return names[:n]
}

// GenerateEntries returns count deposits spread over the objects between start
// and end. A few of them are refunds stored as negative amounts.
func (g *entryGenerator) GenerateEntries(objects []string, start, end time.Time, count int) []models.EscrowEntry {
	entries := make([]models.EscrowEntry, 0, count)
	if len(objects) == 0 || !end.After(start) {
		return entries
	}

	for i := 0; i < count; i++ {
		entries = append(entries, models.EscrowEntry{
			ObjectName:     g.faker.RandomString(objects),
			DocumentNumber: "ДДУ-" + g.faker.Numerify("####/##"),
			OperationDate:  g.faker.DateRange(start, end).UTC(),
			Amount:         g.GenerateAmount(),
			PayerName:      g.faker.Name(),
		})
	}

	return entries
}

// GenerateAmount returns a deposit rounded to a thousand rubles
func (g *entryGenerator) GenerateAmount() decimal.Decimal {
	amount := decimal.NewFromInt(int64(g.faker.IntRange(minDeposit/depositRounding, maxDeposit/depositRounding) * depositRounding))
	if g.faker.IntRange(1, 100) <= refundPercent {
		return amount.Neg()
	}
	return amount
}
