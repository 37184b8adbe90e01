package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStockTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&stock.SizeStock{})
	require.NoError(t, err)

	return db
}

func seedRow(t *testing.T, repo *GormLedgerRepository, productID uuid.UUID, size string, quantity int64) *stock.SizeStock {
	t.Helper()

	row, err := stock.NewSizeStock(productID, size, quantity)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), row))
	return row
}

func TestGormLedgerRepository_FindByProduct(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()

	seedRow(t, repo, productID, "M", 5)
	seedRow(t, repo, productID, "L", 3)
	seedRow(t, repo, uuid.New(), "M", 9)

	rows, err := repo.FindByProduct(context.Background(), productID)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "L", rows[0].Size)
	assert.Equal(t, "M", rows[1].Size)
}

func TestGormLedgerRepository_FindByProductAndSize_NotFound(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))

	_, err := repo.FindByProductAndSize(context.Background(), uuid.New(), "M")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormLedgerRepository_Available_MissingRowIsZero(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))

	available, err := repo.Available(context.Background(), uuid.New(), "XL")

	require.NoError(t, err)
	assert.Equal(t, int64(0), available)
}

func TestGormLedgerRepository_Reserve_DecrementsQuantity(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()
	seedRow(t, repo, productID, "M", 5)

	err := repo.Reserve(context.Background(), productID, "M", 3)

	require.NoError(t, err)
	available, err := repo.Available(context.Background(), productID, "M")
	require.NoError(t, err)
	assert.Equal(t, int64(2), available)
}

func TestGormLedgerRepository_Reserve_InsufficientLeavesRowUntouched(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()
	seedRow(t, repo, productID, "M", 2)

	err := repo.Reserve(context.Background(), productID, "M", 3)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Equal(t, "Insufficient stock for size M. Only 2 available.", domainErr.Message)

	available, err := repo.Available(context.Background(), productID, "M")
	require.NoError(t, err)
	assert.Equal(t, int64(2), available)
}

func TestGormLedgerRepository_Reserve_MissingRowCountsAsZero(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))

	err := repo.Reserve(context.Background(), uuid.New(), "XXL", 1)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Equal(t, "Insufficient stock for size XXL. Only 0 available.", domainErr.Message)
}

func TestGormLedgerRepository_Reserve_NeverOversells(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()
	seedRow(t, repo, productID, "M", 10)

	// Drain the row in chunks of 3. Only three reservations can succeed;
	// the guarded decrement must refuse the rest rather than go negative.
	succeeded := 0
	for i := 0; i < 10; i++ {
		err := repo.Reserve(context.Background(), productID, "M", 3)
		if err == nil {
			succeeded++
			continue
		}
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	}

	assert.Equal(t, 3, succeeded)
	available, err := repo.Available(context.Background(), productID, "M")
	require.NoError(t, err)
	assert.Equal(t, int64(1), available)
}

func TestGormLedgerRepository_Save_UpsertsQuantity(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()
	row := seedRow(t, repo, productID, "M", 5)

	require.NoError(t, row.SetQuantity(12))
	require.NoError(t, repo.Save(context.Background(), row))

	stored, err := repo.FindByProductAndSize(context.Background(), productID, "M")
	require.NoError(t, err)
	assert.Equal(t, int64(12), stored.Quantity)
}

func TestGormLedgerRepository_Delete(t *testing.T) {
	repo := NewGormLedgerRepository(setupStockTestDB(t))
	productID := uuid.New()
	row := seedRow(t, repo, productID, "M", 5)

	require.NoError(t, repo.Delete(context.Background(), row.ID))

	_, err := repo.FindByProductAndSize(context.Background(), productID, "M")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), row.ID), shared.ErrNotFound)
}
