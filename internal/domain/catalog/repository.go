package catalog

import (
	"context"
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySlug finds a product by its slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindActive finds storefront-visible products matching the filter
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampaignRepository defines the interface for campaign persistence
type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindActiveForProduct returns campaigns governing pricing for the
	// product at the given time, ordered by discounted price ascending and
	// then created_at descending so the first row is the authoritative one.
	FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]Campaign, error)

	// FindActive returns all campaigns within their window at the given time
	FindActive(ctx context.Context, at time.Time) ([]Campaign, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Campaign, error)
	Save(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BannerRepository defines the interface for banner persistence
type BannerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)

	// FindActive returns active banners ordered by sort order
	FindActive(ctx context.Context) ([]Banner, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Banner, error)
	Save(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
