package handler

import (
	orderingapp "github.com/dyqani/backend/internal/application/ordering"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the public storefront checkout endpoints
type CheckoutHandler struct {
	BaseHandler
	placementService *orderingapp.PlacementService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(placementService *orderingapp.PlacementService) *CheckoutHandler {
	return &CheckoutHandler{placementService: placementService}
}

// PlaceOrder places a single-item order. Prices and shipping are resolved
// server side; the stock decrement and the order insert commit together.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req orderingapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.placementService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// PlaceBatch places a multi-item checkout as one atomic batch. Any
// rejected line rolls back every order and stock decrement of the batch.
func (h *CheckoutHandler) PlaceBatch(c *gin.Context) {
	var req orderingapp.BatchCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	batch, err := h.placementService.PlaceBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}
