package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPriceResolver_BasePriceWithoutCampaigns(t *testing.T) {
	repo := new(MockCampaignRepository)
	resolver := NewPriceResolver(repo)
	product := newTestProduct(t, 29.90)

	repo.On("FindActiveForProduct", mock.Anything, product.ID, mock.AnythingOfType("time.Time")).
		Return([]catalog.Campaign{}, nil)

	price, err := resolver.Resolve(context.Background(), product, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "29.90", price.UnitPrice.StringFixed(2))
	assert.Nil(t, price.CampaignID)
}

func TestPriceResolver_FirstCampaignRowWins(t *testing.T) {
	repo := new(MockCampaignRepository)
	resolver := NewPriceResolver(repo)
	product := newTestProduct(t, 29.90)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)

	cheaper, err := catalog.NewCampaign(product, valueobject.NewMoneyEURFromFloat(15.00), start, end)
	require.NoError(t, err)
	pricier, err := catalog.NewCampaign(product, valueobject.NewMoneyEURFromFloat(19.90), start, end)
	require.NoError(t, err)

	// The repository returns rows lowest-price-first; the resolver takes the head
	repo.On("FindActiveForProduct", mock.Anything, product.ID, mock.AnythingOfType("time.Time")).
		Return([]catalog.Campaign{*cheaper, *pricier}, nil)

	price, err := resolver.Resolve(context.Background(), product, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "15.00", price.UnitPrice.StringFixed(2))
	require.NotNil(t, price.CampaignID)
	assert.Equal(t, cheaper.ID, *price.CampaignID)
}
