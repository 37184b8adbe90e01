package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Campaign, error) {
	var campaign catalog.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// FindActiveForProduct returns campaigns governing pricing for the product
// at the given time. Ordered by discounted price ascending, created_at
// descending, so the head row always carries the price the customer pays.
func (r *GormCampaignRepository) FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]catalog.Campaign, error) {
	var campaigns []catalog.Campaign
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND active = ? AND starts_at <= ? AND ends_at >= ?", productID, true, at, at).
		Order("discounted_price ASC, created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// FindActive returns all campaigns within their window at the given time
func (r *GormCampaignRepository) FindActive(ctx context.Context, at time.Time) ([]catalog.Campaign, error) {
	var campaigns []catalog.Campaign
	if err := r.db.WithContext(ctx).
		Where("active = ? AND starts_at <= ? AND ends_at >= ?", true, at, at).
		Order("starts_at ASC").
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// FindAll finds all campaigns matching the filter
func (r *GormCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Campaign, error) {
	var campaigns []catalog.Campaign
	query := r.db.WithContext(ctx).Model(&catalog.Campaign{})

	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Save creates or updates a campaign
func (r *GormCampaignRepository) Save(ctx context.Context, campaign *catalog.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

// Delete deletes a campaign
func (r *GormCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCampaignRepository implements CampaignRepository
var _ catalog.CampaignRepository = (*GormCampaignRepository)(nil)
