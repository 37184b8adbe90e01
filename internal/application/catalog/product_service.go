package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/dyqani/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// ProductService handles product management and the storefront product views
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	campaignRepo catalog.CampaignRepository
	stockRepo    stock.LedgerRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	campaignRepo catalog.CampaignRepository,
	stockRepo stock.LedgerRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		campaignRepo: campaignRepo,
		stockRepo:    stockRepo,
	}
}

// Create creates a new product with optional initial size stock
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, valueobject.NewMoneyEUR(*req.Price), catalog.GenderTag(req.Gender))
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}

	if existing, err := s.productRepo.FindBySlug(ctx, product.Slug); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this name already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	for _, sr := range req.Sizes {
		row, err := stock.NewSizeStock(product.ID, sr.Size, sr.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.stockRepo.Save(ctx, row); err != nil {
			return nil, err
		}
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update updates a product's editable fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}

	if req.Gender != nil {
		if err := product.SetGender(catalog.GenderTag(*req.Gender)); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := product.SetPrice(valueobject.NewMoneyEUR(*req.Price)); err != nil {
			return nil, err
		}
	}

	if req.Active != nil {
		if *req.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Get returns one product for the admin view
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns a filtered, paginated admin product list
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	f := s.toSharedFilter(filter)

	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}

	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Delete removes a product and its ledger rows
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	rows, err := s.stockRepo.FindByProduct(ctx, id)
	if err != nil {
		return err
	}
	for i := range rows {
		if err := s.stockRepo.Delete(ctx, rows[i].ID); err != nil {
			return err
		}
	}

	return s.productRepo.Delete(ctx, id)
}

// GetStorefront returns the public product view with the campaign-effective
// price and per-size availability. Inactive products are reported as missing.
func (s *ProductService) GetStorefront(ctx context.Context, id uuid.UUID) (*StorefrontProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.ErrNotFound
	}
	return s.toStorefront(ctx, product, time.Now())
}

// GetStorefrontBySlug resolves a storefront product by its URL slug
func (s *ProductService) GetStorefrontBySlug(ctx context.Context, slug string) (*StorefrontProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.ErrNotFound
	}
	return s.toStorefront(ctx, product, time.Now())
}

// ListStorefront returns active products for the public listing
func (s *ProductService) ListStorefront(ctx context.Context, filter ProductListFilter) (*shared.Paginated[StorefrontProductResponse], error) {
	f := s.toSharedFilter(filter)
	f.Filters["active"] = true

	products, err := s.productRepo.FindActive(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]StorefrontProductResponse, 0, len(products))
	for i := range products {
		view, err := s.toStorefront(ctx, &products[i], now)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *view)
	}

	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// SetStock applies absolute quantities to a product's size ledger rows
func (s *ProductService) SetStock(ctx context.Context, productID uuid.UUID, req SetStockRequest) ([]stock.SizeAvailability, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	for _, sr := range req.Sizes {
		row, err := s.stockRepo.FindByProductAndSize(ctx, productID, sr.Size)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			row, err = stock.NewSizeStock(productID, sr.Size, sr.Quantity)
			if err != nil {
				return nil, err
			}
		} else {
			if err := row.SetQuantity(sr.Quantity); err != nil {
				return nil, err
			}
		}
		if err := s.stockRepo.Save(ctx, row); err != nil {
			return nil, err
		}
	}

	rows, err := s.stockRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	availability := make([]stock.SizeAvailability, 0, len(rows))
	for i := range rows {
		availability = append(availability, rows[i].ToAvailability())
	}
	return availability, nil
}

func (s *ProductService) toStorefront(ctx context.Context, product *catalog.Product, now time.Time) (*StorefrontProductResponse, error) {
	rows, err := s.stockRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	sizes := make([]stock.SizeAvailability, 0, len(rows))
	for i := range rows {
		sizes = append(sizes, rows[i].ToAvailability())
	}

	effective := product.Price
	onCampaign := false
	campaigns, err := s.campaignRepo.FindActiveForProduct(ctx, product.ID, now)
	if err != nil {
		return nil, err
	}
	if len(campaigns) > 0 {
		effective = campaigns[0].DiscountedPrice
		onCampaign = true
	}

	return &StorefrontProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Slug:           product.Slug,
		Description:    product.Description,
		CategoryID:     product.CategoryID,
		Gender:         string(product.Gender),
		Price:          product.Price,
		EffectivePrice: effective,
		OnCampaign:     onCampaign,
		Sizes:          sizes,
	}, nil
}

func (s *ProductService) toSharedFilter(filter ProductListFilter) shared.Filter {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search

	if filter.CategoryID != nil {
		f.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Gender != "" {
		f.Filters["gender"] = filter.Gender
	}
	if filter.Active != nil {
		f.Filters["active"] = *filter.Active
	}

	return f
}
