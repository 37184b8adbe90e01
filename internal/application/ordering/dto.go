package ordering

import (
	"time"

	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRequest carries the checkout contact details
type CustomerRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Phone    string `json:"phone" binding:"required,min=5,max=50"`
	Address  string `json:"address" binding:"required,min=5,max=300"`
	City     string `json:"city" binding:"required,min=2,max=100"`
	Country  string `json:"country" binding:"required"`
}

// PlaceOrderRequest represents a single-item storefront checkout.
// Prices are deliberately absent: the server resolves them.
type PlaceOrderRequest struct {
	Customer  CustomerRequest `json:"customer" binding:"required"`
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Size      string          `json:"size" binding:"max=20"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	LogoKey   string          `json:"logo_key" binding:"max=500"`
}

// BatchItemRequest is one line of a multi-item checkout
type BatchItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"max=20"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
	LogoKey   string    `json:"logo_key" binding:"max=500"`
}

// BatchCheckoutRequest represents a multi-item storefront checkout placed
// as one atomic batch
type BatchCheckoutRequest struct {
	Customer CustomerRequest    `json:"customer" binding:"required"`
	Items    []BatchItemRequest `json:"items" binding:"required,min=1,max=20,dive"`
}

// UpdateOrderStatusRequest represents an admin status transition. The status
// value is checked by the order state machine, which turns unknown values
// into a business-rule rejection rather than a binding failure.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=20"`
}

// AdminNotesRequest replaces the free-form notes on an order
type AdminNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// OrderListFilter represents filter options for the admin order list
type OrderListFilter struct {
	Status    string     `form:"status" binding:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	Country   string     `form:"country" binding:"omitempty,oneof=kosovo albania macedonia"`
	BatchID   *uuid.UUID `form:"batch_id"`
	StartDate string     `form:"start_date"`
	EndDate   string     `form:"end_date"`
	Search    string     `form:"search"`
	Page      int        `form:"page" binding:"min=1"`
	PageSize  int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CustomerResponse represents the customer block in API responses
type CustomerResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID        `json:"id"`
	Customer    CustomerResponse `json:"customer"`
	ProductID   uuid.UUID        `json:"product_id"`
	ProductName string           `json:"product_name"`
	Size        string           `json:"size,omitempty"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	ShippingFee decimal.Decimal  `json:"shipping_fee"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Status      string           `json:"status"`
	BatchID     *uuid.UUID       `json:"batch_id,omitempty"`
	LogoKey     string           `json:"logo_key,omitempty"`
	AdminNotes  string           `json:"admin_notes,omitempty"`
	ConfirmedAt *time.Time       `json:"confirmed_at,omitempty"`
	ShippedAt   *time.Time       `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time       `json:"delivered_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Version     int              `json:"version"`
}

// BatchCheckoutResponse represents a committed multi-item checkout
type BatchCheckoutResponse struct {
	BatchID     uuid.UUID       `json:"batch_id"`
	Orders      []OrderResponse `json:"orders"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderStatsResponse is the admin dashboard counter block
type OrderStatsResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) OrderResponse {
	return OrderResponse{
		ID: o.ID,
		Customer: CustomerResponse{
			FullName: o.Customer.FullName,
			Email:    o.Customer.Email,
			Phone:    o.Customer.Phone,
			Address:  o.Customer.Address,
			City:     o.Customer.City,
			Country:  o.Customer.Country.String(),
		},
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Size:        o.Size,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		ShippingFee: o.ShippingFee,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		BatchID:     o.BatchID,
		LogoKey:     o.LogoKey,
		AdminNotes:  o.AdminNotes,
		ConfirmedAt: o.ConfirmedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Version:     o.Version,
	}
}
