package ordering

import (
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderBatchPlaced   = "OrderBatchPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// OrderPlacedEvent is published after a single-item placement commits
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	ProductName   string          `json:"product_name"`
	Size          string          `json:"size,omitempty"`
	Quantity      int64           `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Country       Country         `json:"country"`
	BatchID       *uuid.UUID      `json:"batch_id,omitempty"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		ProductName:     order.ProductName,
		Size:            order.Size,
		Quantity:        order.Quantity,
		TotalAmount:     order.TotalAmount,
		CustomerName:    order.Customer.FullName,
		CustomerEmail:   order.Customer.Email,
		Country:         order.Customer.Country,
		BatchID:         order.BatchID,
	}
}

// BatchPlacedLine summarizes one line item inside a batch event
type BatchPlacedLine struct {
	OrderID     uuid.UUID       `json:"order_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size,omitempty"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderBatchPlacedEvent is published once per committed batch checkout so the
// notification side sends one aggregate message instead of one per line item
type OrderBatchPlacedEvent struct {
	shared.BaseDomainEvent
	BatchID       uuid.UUID         `json:"batch_id"`
	Lines         []BatchPlacedLine `json:"lines"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Country       Country           `json:"country"`
}

// NewOrderBatchPlacedEvent creates an aggregate event for a batch checkout
func NewOrderBatchPlacedEvent(batchID uuid.UUID, orders []*Order) *OrderBatchPlacedEvent {
	event := &OrderBatchPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderBatchPlaced, AggregateTypeOrder, batchID),
		BatchID:         batchID,
		TotalAmount:     decimal.Zero,
	}

	for _, o := range orders {
		event.Lines = append(event.Lines, BatchPlacedLine{
			OrderID:     o.ID,
			ProductName: o.ProductName,
			Size:        o.Size,
			Quantity:    o.Quantity,
			TotalAmount: o.TotalAmount,
		})
		event.TotalAmount = event.TotalAmount.Add(o.TotalAmount)
	}

	if len(orders) > 0 {
		event.CustomerName = orders[0].Customer.FullName
		event.CustomerEmail = orders[0].Customer.Email
		event.Country = orders[0].Customer.Country
	}

	return event
}

// OrderStatusChangedEvent is published on every admin status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID   `json:"order_id"`
	OldStatus     OrderStatus `json:"old_status"`
	NewStatus     OrderStatus `json:"new_status"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	ProductName   string      `json:"product_name"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(order *Order, old, target OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OldStatus:       old,
		NewStatus:       target,
		CustomerName:    order.Customer.FullName,
		CustomerEmail:   order.Customer.Email,
		ProductName:     order.ProductName,
	}
}
