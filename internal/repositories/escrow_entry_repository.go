package repositories

import (
	"context"
	"errors"
	"fmt"

	"escrow-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("escrow entry not found")
)

const createBatchSize = 500

// escrowEntryRepository implements EscrowEntryRepositoryInterface
type escrowEntryRepository struct {
	db *gorm.DB
}

// NewEscrowEntryRepository creates a new escrow entry repository
func NewEscrowEntryRepository(db *gorm.DB) EscrowEntryRepositoryInterface {
	return &escrowEntryRepository{
		db: db,
	}
}

// Create creates a new escrow entry
func (r *escrowEntryRepository) Create(ctx context.Context, entry *models.EscrowEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create escrow entry: %w", err)
	}
	return nil
}

// CreateBatch inserts entries in one transaction
func (r *escrowEntryRepository) CreateBatch(ctx context.Context, entries []models.EscrowEntry) error {
	if len(entries) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(entries, createBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create escrow entries: %w", err)
	}
	return nil
}

// GetByID retrieves an escrow entry by ID
func (r *escrowEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EscrowEntry, error) {
	var entry models.EscrowEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get escrow entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns every escrow entry ordered by object and operation date
func (r *escrowEntryRepository) ListEntries(ctx context.Context) ([]models.EscrowEntry, error) {
	var entries []models.EscrowEntry
	if err := r.db.WithContext(ctx).
		Order("object_name ASC").
		Order("operation_date ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list escrow entries: %w", err)
	}
	return entries, nil
}

// ListByObject returns the entries of one object ordered by operation date
func (r *escrowEntryRepository) ListByObject(ctx context.Context, objectName string) ([]models.EscrowEntry, error) {
	var entries []models.EscrowEntry
	if err := r.db.WithContext(ctx).
		Where("object_name = ?", objectName).
		Order("operation_date ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list escrow entries for object: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries
func (r *escrowEntryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.EscrowEntry{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count escrow entries: %w", err)
	}
	return total, nil
}
