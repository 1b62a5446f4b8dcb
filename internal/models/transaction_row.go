package models

import (
	"github.com/shopspring/decimal"
)

// PlaceholderObjectName is used for rows that carry no object name
const PlaceholderObjectName = "—"

// RawRecord is an untyped row as returned by the query collaborator
type RawRecord map[string]any

// TransactionRow is the canonical, normalized escrow movement
type TransactionRow struct {
	ObjectName string          `json:"object_name"`
	Month      string          `json:"month,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	DocumentID string          `json:"document_id"`
}

// HasMonth reports whether the row could be placed in a month bucket
func (r TransactionRow) HasMonth() bool {
	return r.Month != ""
}

// Year returns the YYYY part of the month, or "" when the month is undefined
func (r TransactionRow) Year() string {
	if len(r.Month) < 4 {
		return ""
	}
	return r.Month[:4]
}

// MonthOfYear returns the MM part of the month, or "" when the month is undefined
func (r TransactionRow) MonthOfYear() string {
	if len(r.Month) < 7 {
		return ""
	}
	return r.Month[5:7]
}

// ObjectSummary is one line of the escrow table
type ObjectSummary struct {
	ObjectName    string          `json:"object_name"`
	Total         decimal.Decimal `json:"total"`
	DocumentCount int             `json:"document_count"`
}

// TimeSeriesPoint holds every series value for one month
type TimeSeriesPoint struct {
	Month        string                     `json:"month"`
	IsCumulative bool                       `json:"is_cumulative"`
	Series       map[string]decimal.Decimal `json:"series"`
}

// Value returns the series value for an object, zero when the object has no entry
func (p TimeSeriesPoint) Value(object string) decimal.Decimal {
	if v, ok := p.Series[object]; ok {
		return v
	}
	return decimal.Zero
}
