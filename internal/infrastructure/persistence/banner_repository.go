package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBannerRepository implements BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Banner, error) {
	var banner catalog.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindActive returns active banners ordered by sort order
func (r *GormBannerRepository) FindActive(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// FindAll finds all banners matching the filter
func (r *GormBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	query := r.db.WithContext(ctx).Model(&catalog.Banner{})

	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
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
		query = query.Order("sort_order ASC, created_at ASC")
	}

	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Save creates or updates a banner
func (r *GormBannerRepository) Save(ctx context.Context, banner *catalog.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

// Delete deletes a banner
func (r *GormBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Banner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBannerRepository implements BannerRepository
var _ catalog.BannerRepository = (*GormBannerRepository)(nil)
