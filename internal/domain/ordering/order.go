package ordering

import (
	"fmt"
	"time"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// forward chain positions; cancelled sits outside the chain
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// IsValid checks if the status is a recognized OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed from s
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// Forward skips along the chain are allowed (a pending order may go straight
// to shipped); cancelled is reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() || !target.IsValid() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}
	return statusRank[target] > statusRank[s]
}

// Customer holds the contact details captured at checkout
type Customer struct {
	FullName string  `gorm:"column:customer_full_name;type:varchar(150);not null"`
	Email    string  `gorm:"column:customer_email;type:varchar(150);not null"`
	Phone    string  `gorm:"column:customer_phone;type:varchar(50);not null"`
	Address  string  `gorm:"column:customer_address;type:varchar(300);not null"`
	City     string  `gorm:"column:customer_city;type:varchar(100);not null"`
	Country  Country `gorm:"column:customer_country;type:varchar(20);not null"`
}

// Order is one storefront line item. A multi-item checkout produces one
// Order row per line item, all sharing a BatchID. Everything except status,
// its timestamps, and admin notes is immutable after creation.
type Order struct {
	shared.BaseAggregateRoot
	Customer     Customer        `gorm:"embedded"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	Size         string          `gorm:"type:varchar(20)"`
	Quantity     int64           `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingFee  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	BatchID      *uuid.UUID      `gorm:"type:uuid;index"`
	LogoKey      string          `gorm:"type:varchar(500)"`
	AdminNotes   string          `gorm:"type:text"`
	ConfirmedAt  *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrderInput carries the server-resolved values for one line item.
// UnitPrice and ShippingFee are authoritative values computed by the
// placement flow; client-submitted figures never reach this constructor.
type NewOrderInput struct {
	Customer    Customer
	ProductID   uuid.UUID
	ProductName string
	Size        string
	Quantity    int64
	UnitPrice   valueobject.Money
	ShippingFee valueobject.Money
	BatchID     *uuid.UUID
	LogoKey     string
}

// NewOrder creates a pending order with the total recomputed server-side
func NewOrder(input NewOrderInput) (*Order, error) {
	if input.ProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if input.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if input.UnitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if input.ShippingFee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SHIPPING", "Shipping fee cannot be negative")
	}
	if !input.Customer.Country.IsValid() {
		return nil, shared.NewDomainError("INVALID_COUNTRY", "Unsupported destination country")
	}

	total := input.UnitPrice.MultiplyByInt(input.Quantity).MustAdd(input.ShippingFee)

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Customer:          input.Customer,
		ProductID:         input.ProductID,
		ProductName:       input.ProductName,
		Size:              input.Size,
		Quantity:          input.Quantity,
		UnitPrice:         input.UnitPrice.Amount(),
		ShippingFee:       input.ShippingFee.Amount(),
		TotalAmount:       total.Amount(),
		Status:            OrderStatusPending,
		BatchID:           input.BatchID,
		LogoKey:           input.LogoKey,
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// TransitionTo moves the order to the target status, stamping lifecycle
// timestamps set-once: re-entering a status later in the chain never resets
// a timestamp that was already recorded.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	old := o.Status
	now := time.Now()
	o.Status = target

	switch target {
	case OrderStatusConfirmed:
		if o.ConfirmedAt == nil {
			o.ConfirmedAt = &now
		}
	case OrderStatusShipped:
		if o.ShippedAt == nil {
			o.ShippedAt = &now
		}
	case OrderStatusDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	}

	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, target))

	return nil
}

// SetAdminNotes replaces the free-form admin notes
func (o *Order) SetAdminNotes(notes string) {
	o.AdminNotes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// GetUnitPriceMoney returns the unit price snapshot as Money
func (o *Order) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.UnitPrice)
}

// GetShippingFeeMoney returns the shipping fee as Money
func (o *Order) GetShippingFeeMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.ShippingFee)
}

// GetTotalAmountMoney returns the order total as Money
func (o *Order) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.TotalAmount)
}

// Subtotal returns the merchandise amount without shipping
func (o *Order) Subtotal() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(o.Quantity))
}

// IsPending returns true if the order has not been processed yet
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsCancelled returns true if the order was cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}
