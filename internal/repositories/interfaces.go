package repositories

import (
	"context"

	"escrow-dashboard/internal/models"

	"github.com/google/uuid"
)

// EscrowEntryRepositoryInterface defines the contract for escrow entry storage
type EscrowEntryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.EscrowEntry) error
	CreateBatch(ctx context.Context, entries []models.EscrowEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EscrowEntry, error)
	ListEntries(ctx context.Context) ([]models.EscrowEntry, error)
	ListByObject(ctx context.Context, objectName string) ([]models.EscrowEntry, error)
	Count(ctx context.Context) (int64, error)
}
