package stock

import (
	"context"

	"github.com/google/uuid"
)

// LedgerRepository is the persistence contract for the size-stock ledger.
//
// Reserve is the single write path used by order placement. It must be a
// conditional decrement (UPDATE ... SET quantity = quantity - n WHERE
// quantity >= n) so concurrent reservations against the same row serialize
// at the database and can never drive the quantity negative. Implementations
// report insufficiency via shared.DomainError INSUFFICIENT_STOCK carrying
// the live available count in the message.
type LedgerRepository interface {
	// FindByProduct returns all ledger rows for a product, ordered by size
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]SizeStock, error)

	// FindByProductAndSize returns one ledger row, shared.ErrNotFound if the
	// size is not sold for this product
	FindByProductAndSize(ctx context.Context, productID uuid.UUID, size string) (*SizeStock, error)

	// Available returns the current available quantity, zero for a missing row
	Available(ctx context.Context, productID uuid.UUID, size string) (int64, error)

	// Reserve atomically decrements the row by quantity. A missing row counts
	// as zero available. On insufficiency the row is untouched and an
	// INSUFFICIENT_STOCK domain error is returned.
	Reserve(ctx context.Context, productID uuid.UUID, size string, quantity int64) error

	// Save upserts a ledger row (admin absolute set)
	Save(ctx context.Context, s *SizeStock) error

	// Delete removes a ledger row
	Delete(ctx context.Context, id uuid.UUID) error
}
