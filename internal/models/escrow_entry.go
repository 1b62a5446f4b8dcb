package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrObjectNameRequired     = errors.New("object name is required")
	ErrDocumentNumberRequired = errors.New("document number is required")
	ErrOperationDateRequired  = errors.New("operation date is required")
)

// EscrowEntry is a single movement on an escrow account as stored in escrow_entries
type EscrowEntry struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DocumentNumber string          `gorm:"column:ddu_number;type:varchar(100);not null;index" json:"ddu_number"`
	OperationDate  time.Time       `gorm:"not null;index" json:"operation_date"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PayerName      string          `gorm:"type:varchar(255)" json:"payer_name,omitempty"`
	ObjectName     string          `gorm:"type:varchar(255);not null;index" json:"object_name"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
}

// TableName pins the table name used by the report query
func (EscrowEntry) TableName() string {
	return "escrow_entries"
}

// BeforeCreate hook for EscrowEntry
func (e *EscrowEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate validates the entry fields. Amount sign is not checked: refunds and
// corrections are stored as negative movements.
func (e *EscrowEntry) Validate() error {
	if e.ObjectName == "" {
		return ErrObjectNameRequired
	}

	if e.DocumentNumber == "" {
		return ErrDocumentNumberRequired
	}

	if e.OperationDate.IsZero() {
		return ErrOperationDateRequired
	}

	return nil
}
