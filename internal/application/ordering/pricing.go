package ordering

import (
	"context"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PriceResolver computes the authoritative unit price for a product at the
// moment of checkout. Client-submitted prices are never trusted; every
// placement path goes through the resolver.
type PriceResolver struct {
	campaignRepo catalog.CampaignRepository
}

// NewPriceResolver creates a new PriceResolver
func NewPriceResolver(campaignRepo catalog.CampaignRepository) *PriceResolver {
	return &PriceResolver{campaignRepo: campaignRepo}
}

// ResolvedPrice is the outcome of one price lookup
type ResolvedPrice struct {
	UnitPrice  valueobject.Money
	CampaignID *uuid.UUID
}

// Resolve returns the product's effective unit price at the given time.
// When several campaigns overlap, the repository orders them by discounted
// price ascending with newest first as the tie-break, so the first row wins
// and the customer always gets the lowest advertised price.
func (r *PriceResolver) Resolve(ctx context.Context, product *catalog.Product, at time.Time) (ResolvedPrice, error) {
	campaigns, err := r.campaignRepo.FindActiveForProduct(ctx, product.ID, at)
	if err != nil {
		return ResolvedPrice{}, err
	}

	if len(campaigns) > 0 {
		winner := campaigns[0]
		return ResolvedPrice{
			UnitPrice:  winner.GetDiscountedPriceMoney(),
			CampaignID: &winner.ID,
		}, nil
	}

	return ResolvedPrice{UnitPrice: product.GetPriceMoney()}, nil
}
