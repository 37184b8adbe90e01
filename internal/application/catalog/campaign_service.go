package catalog

import (
	"context"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CampaignService handles discount campaign management
type CampaignService struct {
	campaignRepo catalog.CampaignRepository
	productRepo  catalog.ProductRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo catalog.CampaignRepository, productRepo catalog.ProductRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		productRepo:  productRepo,
	}
}

// Create creates a campaign after validating the discount against the
// product's current base price
func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (*CampaignResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	campaign, err := catalog.NewCampaign(product, valueobject.NewMoneyEUR(*req.DiscountedPrice), req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	resp := ToCampaignResponse(campaign, time.Now())
	return &resp, nil
}

// Update updates a campaign's price, window or active flag
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req UpdateCampaignRequest) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DiscountedPrice != nil || req.StartsAt != nil || req.EndsAt != nil {
		product, err := s.productRepo.FindByID(ctx, campaign.ProductID)
		if err != nil {
			return nil, err
		}

		price := campaign.GetDiscountedPriceMoney()
		startsAt := campaign.StartsAt
		endsAt := campaign.EndsAt
		if req.DiscountedPrice != nil {
			price = valueobject.NewMoneyEUR(*req.DiscountedPrice)
		}
		if req.StartsAt != nil {
			startsAt = *req.StartsAt
		}
		if req.EndsAt != nil {
			endsAt = *req.EndsAt
		}

		if err := campaign.Update(product, price, startsAt, endsAt); err != nil {
			return nil, err
		}
	}

	if req.Active != nil {
		if *req.Active {
			campaign.Activate()
		} else {
			campaign.Deactivate()
		}
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	resp := ToCampaignResponse(campaign, time.Now())
	return &resp, nil
}

// Get returns one campaign
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCampaignResponse(campaign, time.Now())
	return &resp, nil
}

// List returns all campaigns for the admin view
func (s *CampaignService) List(ctx context.Context) ([]CampaignResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 200

	campaigns, err := s.campaignRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, ToCampaignResponse(&campaigns[i], now))
	}
	return responses, nil
}

// ListRunning returns campaigns currently governing storefront pricing
func (s *CampaignService) ListRunning(ctx context.Context) ([]CampaignResponse, error) {
	now := time.Now()
	campaigns, err := s.campaignRepo.FindActive(ctx, now)
	if err != nil {
		return nil, err
	}

	responses := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, ToCampaignResponse(&campaigns[i], now))
	}
	return responses, nil
}

// Delete removes a campaign; pricing falls back to the product base price
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.campaignRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.campaignRepo.Delete(ctx, id)
}
