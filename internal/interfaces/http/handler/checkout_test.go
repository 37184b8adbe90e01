package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Binding-level tests. Placement semantics are covered by the application
// layer tests; these verify malformed requests never reach the service.

func setupCheckoutRouter() *gin.Engine {
	r := gin.New()
	h := NewCheckoutHandler(nil)
	r.POST("/orders", h.PlaceOrder)
	r.POST("/orders/batch", h.PlaceBatch)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrder_RejectsMalformedJSON(t *testing.T) {
	r := setupCheckoutRouter()

	w := postJSON(r, "/orders", `{"quantity": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestPlaceOrder_CollectsAllFieldViolations(t *testing.T) {
	r := setupCheckoutRouter()

	// Missing product, broken email, zero quantity: every violation must
	// come back in one response, each naming its field.
	w := postJSON(r, "/orders", `{
		"customer": {
			"full_name": "Arta Krasniqi",
			"email": "not-an-email",
			"phone": "+38344123456",
			"address": "Rr. Nena Tereze 15",
			"city": "Prishtina",
			"country": "kosovo"
		},
		"quantity": 0
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
		Data []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	fields := make(map[string]string, len(resp.Data))
	for _, d := range resp.Data {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "Invalid email format", fields["Customer.Email"])
	assert.Contains(t, fields, "ProductID")
	assert.Contains(t, fields, "Quantity")
}

func TestPlaceOrder_RejectsZeroQuantity(t *testing.T) {
	r := setupCheckoutRouter()

	w := postJSON(r, "/orders", `{
		"customer": {
			"full_name": "Arta Krasniqi",
			"email": "arta@example.com",
			"phone": "+38344123456",
			"address": "Rr. Nena Tereze 15",
			"city": "Prishtina",
			"country": "kosovo"
		},
		"product_id": "550e8400-e29b-41d4-a716-446655440000",
		"size": "M",
		"quantity": 0
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceBatch_RejectsEmptyItems(t *testing.T) {
	r := setupCheckoutRouter()

	w := postJSON(r, "/orders/batch", `{
		"customer": {
			"full_name": "Arta Krasniqi",
			"email": "arta@example.com",
			"phone": "+38344123456",
			"address": "Rr. Nena Tereze 15",
			"city": "Prishtina",
			"country": "kosovo"
		},
		"items": []
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceBatch_RejectsOversizedBatch(t *testing.T) {
	r := setupCheckoutRouter()

	var items []string
	for i := 0; i < 21; i++ {
		items = append(items, `{"product_id": "550e8400-e29b-41d4-a716-446655440000", "quantity": 1}`)
	}
	body := `{
		"customer": {
			"full_name": "Arta Krasniqi",
			"email": "arta@example.com",
			"phone": "+38344123456",
			"address": "Rr. Nena Tereze 15",
			"city": "Prishtina",
			"country": "kosovo"
		},
		"items": [` + strings.Join(items, ",") + `]
	}`

	w := postJSON(r, "/orders/batch", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_InvalidIDFormats(t *testing.T) {
	r := gin.New()
	h := NewOrderHandler(nil)
	r.GET("/orders/:id", h.Get)
	r.GET("/orders/batch/:batchId", h.GetBatch)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/batch/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
