package stock

import (
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SizeStock is the ledger row holding the available quantity for one
// (product, size) pair. Quantity never goes negative: the only mutation
// paths are the ledger's conditional decrement and an admin absolute set.
type SizeStock struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_size,priority:1"`
	Size      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_stock_product_size,priority:2"`
	Quantity  int64     `gorm:"not null;default:0;check:quantity >= 0"`
}

// TableName returns the table name for GORM
func (SizeStock) TableName() string {
	return "size_stocks"
}

// NewSizeStock creates a ledger row for a product size
func NewSizeStock(productID uuid.UUID, size string, quantity int64) (*SizeStock, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if size == "" {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size label cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}

	return &SizeStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Size:              size,
		Quantity:          quantity,
	}, nil
}

// SetQuantity is the admin absolute set
func (s *SizeStock) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock quantity cannot be negative")
	}

	s.Quantity = quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsAvailable reports whether at least one unit can be sold
func (s *SizeStock) IsAvailable() bool {
	return s.Quantity > 0
}

// SizeAvailability is the storefront view of one size row
type SizeAvailability struct {
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	Available bool   `json:"available"`
}

// ToAvailability converts the ledger row to its storefront view
func (s *SizeStock) ToAvailability() SizeAvailability {
	return SizeAvailability{
		Size:      s.Size,
		Quantity:  s.Quantity,
		Available: s.IsAvailable(),
	}
}
