package services

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// Field lookup order for untyped records. The first non-empty value wins.
var (
	objectNameFields = []string{"object_name", "object"}
	monthFields      = []string{"operation_date", "date", "month"}
	amountFields     = []string{"amount", "sum"}
	documentFields   = []string{"document_id", "ddu_number"}
)

// NormalizeRows coerces untyped records into TransactionRows. It never fails:
// a missing object becomes the placeholder, a missing or short date leaves the
// month undefined and a non-numeric amount becomes zero.
func NormalizeRows(records []models.RawRecord) []models.TransactionRow {
	rows := make([]models.TransactionRow, 0, len(records))

	for _, rec := range records {
		rows = append(rows, normalizeRecord(rec))
	}

	return rows
}

// NormalizeEntries converts stored escrow entries into TransactionRows
func NormalizeEntries(entries []models.EscrowEntry) []models.TransactionRow {
	rows := make([]models.TransactionRow, 0, len(entries))

	for i := range entries {
		entry := &entries[i]
		rows = append(rows, models.TransactionRow{
			ObjectName: objectNameOrPlaceholder(entry.ObjectName),
			Month:      monthFromValue(entry.OperationDate),
			Amount:     entry.Amount,
			DocumentID: entry.DocumentNumber,
		})
	}

	return rows
}

func normalizeRecord(rec models.RawRecord) models.TransactionRow {
	row := models.TransactionRow{
		ObjectName: models.PlaceholderObjectName,
		Amount:     decimal.Zero,
	}

	if v, ok := firstPresent(rec, objectNameFields); ok {
		row.ObjectName = objectNameOrPlaceholder(stringValue(v))
	}

	if v, ok := firstPresent(rec, monthFields); ok {
		row.Month = monthFromValue(v)
	}

	if v, ok := firstPresent(rec, amountFields); ok {
		row.Amount = amountFromValue(v)
	}

	if v, ok := firstPresent(rec, documentFields); ok {
		row.DocumentID = stringValue(v)
	}

	return row
}

func firstPresent(rec models.RawRecord, fields []string) (any, bool) {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func objectNameOrPlaceholder(name string) string {
	if strings.TrimSpace(name) == "" {
		return models.PlaceholderObjectName
	}
	return name
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// monthFromValue returns the YYYY-MM prefix of a date-like value, or "" when
// the value cannot be bucketed
func monthFromValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(monthLayout)
	case *time.Time:
		if val == nil || val.IsZero() {
			return ""
		}
		return val.Format(monthLayout)
	case string:
		return monthFromString(strings.TrimSpace(val))
	default:
		return ""
	}
}

func monthFromString(s string) string {
	if len(s) < 7 {
		return ""
	}
	prefix := s[:7]
	if _, err := time.Parse(monthLayout, prefix); err != nil {
		return ""
	}
	return prefix
}

func amountFromValue(v any) decimal.Decimal {
	switch val := v.(type) {
	case decimal.Decimal:
		return val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero
		}
		return *val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(val)
	case float32:
		return amountFromValue(float64(val))
	case int:
		return decimal.NewFromInt(int64(val))
	case int8:
		return decimal.NewFromInt(int64(val))
	case int16:
		return decimal.NewFromInt(int64(val))
	case int32:
		return decimal.NewFromInt32(val)
	case int64:
		return decimal.NewFromInt(val)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(val)), 0)
	case uint8:
		return decimal.NewFromInt(int64(val))
	case uint16:
		return decimal.NewFromInt(int64(val))
	case uint32:
		return decimal.NewFromInt(int64(val))
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(val), 0)
	case json.Number:
		return amountFromString(val.String())
	case string:
		return amountFromString(val)
	default:
		return decimal.Zero
	}
}

// amountFromString accepts "1 234,56" and "1234.56" style numbers
func amountFromString(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '_':
			return -1
		case ',':
			return '.'
		}
		return r
	}, strings.TrimSpace(s))

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
