package catalog

import (
	"testing"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Success(t *testing.T) {
	product, err := NewProduct("Classic Hoodie", valueobject.NewMoneyEURFromFloat(29.90), GenderMen)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Classic Hoodie", product.Name)
	assert.Equal(t, "classic-hoodie", product.Slug)
	assert.Equal(t, GenderMen, product.Gender)
	assert.True(t, product.Active)
	assert.Equal(t, "29.90", product.GetPriceMoney().StringFixed(2))

	events := product.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeProductCreated, events[0].EventType())
}

func TestNewProduct_DefaultsToUnisex(t *testing.T) {
	product, err := NewProduct("Canvas Tote", valueobject.NewMoneyEURFromFloat(9.90), "")
	require.NoError(t, err)
	assert.Equal(t, GenderUnisex, product.Gender)
}

func TestNewProduct_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		prod   string
		price  float64
		gender GenderTag
		code   string
	}{
		{"empty name", "", 10, GenderMen, "INVALID_NAME"},
		{"negative price", "Cap", -1, GenderMen, "INVALID_PRICE"},
		{"bad gender", "Cap", 10, GenderTag("kids"), "INVALID_GENDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.prod, valueobject.NewMoneyEURFromFloat(tt.price), tt.gender)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestProduct_Update(t *testing.T) {
	product, err := NewProduct("Classic Hoodie", valueobject.NewMoneyEURFromFloat(29.90), GenderMen)
	require.NoError(t, err)
	before := product.Version

	require.NoError(t, product.Update("Premium Hoodie", "Heavy fleece"))

	assert.Equal(t, "Premium Hoodie", product.Name)
	assert.Equal(t, "premium-hoodie", product.Slug)
	assert.Equal(t, "Heavy fleece", product.Description)
	assert.Equal(t, before+1, product.Version)
}

func TestProduct_SetPrice(t *testing.T) {
	product, err := NewProduct("Classic Hoodie", valueobject.NewMoneyEURFromFloat(29.90), GenderMen)
	require.NoError(t, err)

	require.NoError(t, product.SetPrice(valueobject.NewMoneyEURFromFloat(24.90)))
	assert.Equal(t, "24.90", product.GetPriceMoney().StringFixed(2))

	err = product.SetPrice(valueobject.NewMoneyEURFromFloat(-5))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRICE", domainErr.Code)
}

func TestProduct_ActivateDeactivate(t *testing.T) {
	product, err := NewProduct("Classic Hoodie", valueobject.NewMoneyEURFromFloat(29.90), GenderMen)
	require.NoError(t, err)

	product.Deactivate()
	assert.False(t, product.Active)

	product.Activate()
	assert.True(t, product.Active)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"Classic Hoodie", "classic-hoodie"},
		{"  T-Shirt / V-Neck  ", "t-shirt-v-neck"},
		{"Çanta Sportive", "anta-sportive"},
		{"2026 Edition!!!", "2026-edition"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.out, Slugify(tt.in))
		})
	}
}
