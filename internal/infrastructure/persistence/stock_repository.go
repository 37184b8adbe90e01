package persistence

import (
	"context"
	"errors"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/stock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLedgerRepository implements stock.LedgerRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// FindByProduct returns all ledger rows for a product, ordered by size
func (r *GormLedgerRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]stock.SizeStock, error) {
	var rows []stock.SizeStock
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("size ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByProductAndSize returns one ledger row
func (r *GormLedgerRepository) FindByProductAndSize(ctx context.Context, productID uuid.UUID, size string) (*stock.SizeStock, error) {
	var row stock.SizeStock
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND size = ?", productID, size).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Available returns the current available quantity, zero for a missing row
func (r *GormLedgerRepository) Available(ctx context.Context, productID uuid.UUID, size string) (int64, error) {
	var available int64
	if err := r.db.WithContext(ctx).
		Model(&stock.SizeStock{}).
		Where("product_id = ? AND size = ?", productID, size).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&available).Error; err != nil {
		return 0, err
	}
	return available, nil
}

// Reserve atomically decrements the ledger row by quantity. The guarded
// UPDATE serializes concurrent reservations at the database so the row can
// never go negative. A missing row counts as zero available.
func (r *GormLedgerRepository) Reserve(ctx context.Context, productID uuid.UUID, size string, quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	result := r.db.WithContext(ctx).
		Model(&stock.SizeStock{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		available, err := r.Available(ctx, productID, size)
		if err != nil {
			return err
		}
		return shared.NewInsufficientStockError(size, available)
	}

	return nil
}

// Save upserts a ledger row
func (r *GormLedgerRepository) Save(ctx context.Context, s *stock.SizeStock) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes a ledger row
func (r *GormLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&stock.SizeStock{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormLedgerRepository implements LedgerRepository
var _ stock.LedgerRepository = (*GormLedgerRepository)(nil)
