package catalog

import (
	"context"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BannerService handles storefront banner management
type BannerService struct {
	bannerRepo catalog.BannerRepository
}

// NewBannerService creates a new BannerService
func NewBannerService(bannerRepo catalog.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// Create creates a new banner
func (s *BannerService) Create(ctx context.Context, req CreateBannerRequest) (*BannerResponse, error) {
	banner, err := catalog.NewBanner(req.Title, req.ImageKey, req.LinkURL)
	if err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}

	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}

	resp := ToBannerResponse(banner)
	return &resp, nil
}

// Update updates a banner
func (s *BannerService) Update(ctx context.Context, id uuid.UUID, req UpdateBannerRequest) (*BannerResponse, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.ImageKey != nil || req.LinkURL != nil {
		title := banner.Title
		imageKey := banner.ImageKey
		linkURL := banner.LinkURL
		if req.Title != nil {
			title = *req.Title
		}
		if req.ImageKey != nil {
			imageKey = *req.ImageKey
		}
		if req.LinkURL != nil {
			linkURL = *req.LinkURL
		}
		if err := banner.Update(title, imageKey, linkURL); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}
	if req.Active != nil {
		if *req.Active {
			banner.Activate()
		} else {
			banner.Deactivate()
		}
	}

	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}

	resp := ToBannerResponse(banner)
	return &resp, nil
}

// Get returns one banner
func (s *BannerService) Get(ctx context.Context, id uuid.UUID) (*BannerResponse, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBannerResponse(banner)
	return &resp, nil
}

// List returns all banners for the admin view
func (s *BannerService) List(ctx context.Context) ([]BannerResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "sort_order"
	f.OrderDir = "asc"
	f.PageSize = 100

	banners, err := s.bannerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		responses = append(responses, ToBannerResponse(&banners[i]))
	}
	return responses, nil
}

// ListActive returns storefront-visible banners in display order
func (s *BannerService) ListActive(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		responses = append(responses, ToBannerResponse(&banners[i]))
	}
	return responses, nil
}

// Delete removes a banner
func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.bannerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.bannerRepo.Delete(ctx, id)
}
