package catalog

import (
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a time-boxed discounted price override for a product.
// A campaign only affects pricing while its active flag is set and the
// current time falls within [StartsAt, EndsAt].
type Campaign struct {
	shared.BaseAggregateRoot
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartsAt        time.Time       `gorm:"not null"`
	EndsAt          time.Time       `gorm:"not null"`
	Active          bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Campaign) TableName() string {
	return "campaigns"
}

// NewCampaign creates a new campaign for a product.
// The discounted price must undercut the product's base price.
func NewCampaign(product *Product, discountedPrice valueobject.Money, startsAt, endsAt time.Time) (*Campaign, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Campaign product cannot be empty")
	}
	if err := validateCampaignWindow(startsAt, endsAt); err != nil {
		return nil, err
	}
	if err := validateDiscount(discountedPrice, product.GetPriceMoney()); err != nil {
		return nil, err
	}

	return &Campaign{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         product.ID,
		DiscountedPrice:   discountedPrice.Amount(),
		StartsAt:          startsAt,
		EndsAt:            endsAt,
		Active:            true,
	}, nil
}

// Update changes the campaign price and window, revalidating against the product
func (c *Campaign) Update(product *Product, discountedPrice valueobject.Money, startsAt, endsAt time.Time) error {
	if product == nil || product.ID != c.ProductID {
		return shared.NewDomainError("INVALID_PRODUCT", "Campaign product mismatch")
	}
	if err := validateCampaignWindow(startsAt, endsAt); err != nil {
		return err
	}
	if err := validateDiscount(discountedPrice, product.GetPriceMoney()); err != nil {
		return err
	}

	c.DiscountedPrice = discountedPrice.Amount()
	c.StartsAt = startsAt
	c.EndsAt = endsAt
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate turns the campaign on
func (c *Campaign) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate turns the campaign off without deleting it
func (c *Campaign) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsActiveAt reports whether the campaign governs pricing at the given time
func (c *Campaign) IsActiveAt(at time.Time) bool {
	return c.Active && !at.Before(c.StartsAt) && !at.After(c.EndsAt)
}

// GetDiscountedPriceMoney returns the campaign price as Money
func (c *Campaign) GetDiscountedPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(c.DiscountedPrice)
}

func validateCampaignWindow(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return shared.NewDomainError("INVALID_WINDOW", "Campaign start and end dates are required")
	}
	if endsAt.Before(startsAt) {
		return shared.NewDomainError("INVALID_WINDOW", "Campaign end date cannot be before start date")
	}
	return nil
}

func validateDiscount(discounted, base valueobject.Money) error {
	if discounted.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Campaign price cannot be negative")
	}
	lower, err := discounted.LessThan(base)
	if err != nil {
		return shared.NewDomainError("INVALID_PRICE", "Campaign price currency mismatch")
	}
	if !lower {
		return shared.NewDomainError("INVALID_PRICE", "Campaign price must be lower than the product base price")
	}
	return nil
}
