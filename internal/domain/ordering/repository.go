package ordering

import (
	"context"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByBatch returns all sibling line items of a batch checkout
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]Order, error)

	// FindAll finds orders matching the filter (status, country, batch_id,
	// start_date, end_date keys plus free-text search)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// SaveWithLock updates an order guarded by its version (optimistic lock)
	SaveWithLock(ctx context.Context, order *Order) error

	// Delete deletes an order (admin only; stock is not restored)
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders in one status
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
}
