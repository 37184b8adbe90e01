package catalog

import (
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
)

// Banner is a storefront hero/promo image managed by admins
type Banner struct {
	shared.BaseAggregateRoot
	Title     string `gorm:"type:varchar(150);not null"`
	ImageKey  string `gorm:"type:varchar(500);not null"`
	LinkURL   string `gorm:"type:varchar(500)"`
	SortOrder int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

// NewBanner creates a new banner
func NewBanner(title, imageKey, linkURL string) (*Banner, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Banner title cannot be empty")
	}
	if imageKey == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Banner image reference cannot be empty")
	}

	return &Banner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		ImageKey:          imageKey,
		LinkURL:           linkURL,
		Active:            true,
	}, nil
}

// Update updates the banner content
func (b *Banner) Update(title, imageKey, linkURL string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Banner title cannot be empty")
	}
	if imageKey == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Banner image reference cannot be empty")
	}

	b.Title = title
	b.ImageKey = imageKey
	b.LinkURL = linkURL
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetSortOrder sets the display position
func (b *Banner) SetSortOrder(order int) {
	b.SortOrder = order
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Activate shows the banner on the storefront
func (b *Banner) Activate() {
	b.Active = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Deactivate hides the banner
func (b *Banner) Deactivate() {
	b.Active = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
