package stock

import (
	"testing"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSizeStock(t *testing.T) {
	productID := uuid.New()

	row, err := NewSizeStock(productID, "M", 10)
	require.NoError(t, err)
	assert.Equal(t, productID, row.ProductID)
	assert.Equal(t, "M", row.Size)
	assert.Equal(t, int64(10), row.Quantity)
	assert.True(t, row.IsAvailable())
}

func TestNewSizeStock_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		productID uuid.UUID
		size      string
		quantity  int64
		code      string
	}{
		{"nil product", uuid.Nil, "M", 10, "INVALID_PRODUCT"},
		{"empty size", uuid.New(), "", 10, "INVALID_SIZE"},
		{"negative quantity", uuid.New(), "M", -1, "INVALID_QUANTITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSizeStock(tt.productID, tt.size, tt.quantity)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestSizeStock_SetQuantity(t *testing.T) {
	row, err := NewSizeStock(uuid.New(), "L", 5)
	require.NoError(t, err)
	before := row.Version

	require.NoError(t, row.SetQuantity(0))
	assert.Equal(t, int64(0), row.Quantity)
	assert.False(t, row.IsAvailable())
	assert.Equal(t, before+1, row.Version)

	err = row.SetQuantity(-3)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	assert.Equal(t, int64(0), row.Quantity)
}

func TestSizeStock_ToAvailability(t *testing.T) {
	row, err := NewSizeStock(uuid.New(), "XL", 3)
	require.NoError(t, err)

	view := row.ToAvailability()
	assert.Equal(t, SizeAvailability{Size: "XL", Quantity: 3, Available: true}, view)

	require.NoError(t, row.SetQuantity(0))
	view = row.ToAvailability()
	assert.False(t, view.Available)
}
