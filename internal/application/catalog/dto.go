package catalog

import (
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Description string           `json:"description" binding:"max=2000"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Gender      string           `json:"gender" binding:"omitempty,oneof=men women unisex"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Sizes       []SizeRequest    `json:"sizes" binding:"omitempty,dive"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Gender      *string          `json:"gender" binding:"omitempty,oneof=men women unisex"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

// SizeRequest sets the absolute stock quantity for one size
type SizeRequest struct {
	Size     string `json:"size" binding:"required,min=1,max=20"`
	Quantity int64  `json:"quantity" binding:"min=0"`
}

// ProductResponse represents a product in admin API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Gender      string          `json:"gender"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// StorefrontProductResponse is the public product view: the effective price
// reflects any running campaign and per-size availability is included
type StorefrontProductResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Slug           string                   `json:"slug"`
	Description    string                   `json:"description"`
	CategoryID     *uuid.UUID               `json:"category_id"`
	Gender         string                   `json:"gender"`
	Price          decimal.Decimal          `json:"price"`
	EffectivePrice decimal.Decimal          `json:"effective_price"`
	OnCampaign     bool                     `json:"on_campaign"`
	Sizes          []stock.SizeAvailability `json:"sizes"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Gender     string     `form:"gender" binding:"omitempty,oneof=men women unisex"`
	Active     *bool      `form:"active"`
	Page       int        `form:"page" binding:"min=1"`
	PageSize   int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
	SortOrder   *int   `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	SortOrder   *int    `json:"sort_order"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
	ProductID       uuid.UUID        `json:"product_id" binding:"required"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price" binding:"required"`
	StartsAt        time.Time        `json:"starts_at" binding:"required"`
	EndsAt          time.Time        `json:"ends_at" binding:"required"`
}

// UpdateCampaignRequest represents a request to update a campaign
type UpdateCampaignRequest struct {
	DiscountedPrice *decimal.Decimal `json:"discounted_price"`
	StartsAt        *time.Time       `json:"starts_at"`
	EndsAt          *time.Time       `json:"ends_at"`
	Active          *bool            `json:"active"`
}

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	Active          bool            `json:"active"`
	Running         bool            `json:"running"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateBannerRequest represents a request to create a banner
type CreateBannerRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=150"`
	ImageKey  string `json:"image_key" binding:"required,max=500"`
	LinkURL   string `json:"link_url" binding:"omitempty,max=500"`
	SortOrder *int   `json:"sort_order"`
}

// UpdateBannerRequest represents a request to update a banner
type UpdateBannerRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=150"`
	ImageKey  *string `json:"image_key" binding:"omitempty,max=500"`
	LinkURL   *string `json:"link_url" binding:"omitempty,max=500"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}

// BannerResponse represents a banner in API responses
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageKey  string    `json:"image_key"`
	LinkURL   string    `json:"link_url"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetStockRequest sets absolute quantities for a product's sizes
type SetStockRequest struct {
	Sizes []SizeRequest `json:"sizes" binding:"required,min=1,dive"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Gender:      string(p.Gender),
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCampaignResponse converts a domain Campaign to CampaignResponse
func ToCampaignResponse(c *catalog.Campaign, now time.Time) CampaignResponse {
	return CampaignResponse{
		ID:              c.ID,
		ProductID:       c.ProductID,
		DiscountedPrice: c.DiscountedPrice,
		StartsAt:        c.StartsAt,
		EndsAt:          c.EndsAt,
		Active:          c.Active,
		Running:         c.IsActiveAt(now),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToBannerResponse converts a domain Banner to BannerResponse
func ToBannerResponse(b *catalog.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImageKey:  b.ImageKey,
		LinkURL:   b.LinkURL,
		SortOrder: b.SortOrder,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
