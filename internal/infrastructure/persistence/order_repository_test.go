package persistence

import (
	"context"
	"testing"

	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ordering.Order{})
	require.NoError(t, err)

	return db
}

func newPersistedOrder(t *testing.T, repo *GormOrderRepository, batchID *uuid.UUID) *ordering.Order {
	t.Helper()

	order, err := ordering.NewOrder(ordering.NewOrderInput{
		Customer: ordering.Customer{
			FullName: "Arta Krasniqi",
			Email:    "arta@example.com",
			Phone:    "+38344123456",
			Address:  "Rr. Agim Ramadani 21",
			City:     "Prishtina",
			Country:  ordering.CountryKosovo,
		},
		ProductID:   uuid.New(),
		ProductName: "Classic Hoodie",
		Size:        "M",
		Quantity:    2,
		UnitPrice:   valueobject.NewMoneyEURFromFloat(19.90),
		ShippingFee: valueobject.NewMoneyEURFromFloat(2.40),
		BatchID:     batchID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), order))
	return order
}

func TestGormOrderRepository_SaveAndFindByID(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	order := newPersistedOrder(t, repo, nil)

	stored, err := repo.FindByID(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Equal(t, ordering.OrderStatusPending, stored.Status)
	assert.Equal(t, "Arta Krasniqi", stored.Customer.FullName)
	assert.True(t, stored.TotalAmount.Equal(order.TotalAmount))
}

func TestGormOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormOrderRepository_FindByBatch(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	batchID := uuid.New()
	newPersistedOrder(t, repo, &batchID)
	newPersistedOrder(t, repo, &batchID)
	newPersistedOrder(t, repo, nil)

	orders, err := repo.FindByBatch(context.Background(), batchID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGormOrderRepository_SaveWithLock_Success(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	order := newPersistedOrder(t, repo, nil)

	require.NoError(t, order.TransitionTo(ordering.OrderStatusConfirmed))
	err := repo.SaveWithLock(context.Background(), order)

	require.NoError(t, err)
	stored, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, ordering.OrderStatusConfirmed, stored.Status)
	assert.Equal(t, order.Version, stored.Version)
	assert.NotNil(t, stored.ConfirmedAt)
}

func TestGormOrderRepository_SaveWithLock_ConcurrentWriterWins(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	order := newPersistedOrder(t, repo, nil)

	// A second admin loads the same row and confirms it first
	other, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NoError(t, other.TransitionTo(ordering.OrderStatusConfirmed))
	require.NoError(t, repo.SaveWithLock(context.Background(), other))

	require.NoError(t, order.TransitionTo(ordering.OrderStatusCancelled))
	err = repo.SaveWithLock(context.Background(), order)

	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

	stored, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, ordering.OrderStatusConfirmed, stored.Status)
}

func TestGormOrderRepository_FindAll_FiltersByStatusAndCountry(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	confirmed := newPersistedOrder(t, repo, nil)
	require.NoError(t, confirmed.TransitionTo(ordering.OrderStatusConfirmed))
	require.NoError(t, repo.SaveWithLock(context.Background(), confirmed))
	newPersistedOrder(t, repo, nil)

	filter := shared.DefaultFilter()
	filter.Filters["status"] = string(ordering.OrderStatusConfirmed)

	orders, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, confirmed.ID, orders[0].ID)

	filter = shared.DefaultFilter()
	filter.Filters["country"] = string(ordering.CountryAlbania)

	orders, err = repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGormOrderRepository_CountByStatus(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	newPersistedOrder(t, repo, nil)
	newPersistedOrder(t, repo, nil)

	count, err := repo.CountByStatus(context.Background(), ordering.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByStatus(context.Background(), ordering.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormOrderRepository_Delete(t *testing.T) {
	repo := NewGormOrderRepository(setupOrderTestDB(t))
	order := newPersistedOrder(t, repo, nil)

	require.NoError(t, repo.Delete(context.Background(), order.ID))

	_, err := repo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), order.ID), shared.ErrNotFound)
}
