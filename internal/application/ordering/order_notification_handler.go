package ordering

import (
	"context"
	"fmt"

	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderNotification is one outgoing message about an order
type OrderNotification struct {
	Recipient   string          `json:"recipient"`
	Subject     string          `json:"subject"`
	Kind        string          `json:"kind"` // "order_placed", "batch_placed", "status_changed"
	OrderCount  int             `json:"order_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Body        string          `json:"body"`
}

// OrderNotifier sends order notifications. Implementations may deliver over
// SMTP, log-only, or anything else wired at startup.
type OrderNotifier interface {
	Send(ctx context.Context, notification OrderNotification) error
}

// OrderNotificationHandler turns order lifecycle events into outgoing
// messages. Each placement produces a customer confirmation plus an alert
// to the shop mailbox; status changes notify the customer only. It runs on
// the async event bus after the placing transaction has committed; a
// delivery failure never affects the order.
type OrderNotificationHandler struct {
	logger     *zap.Logger
	notifier   OrderNotifier
	adminEmail string
}

// NewOrderNotificationHandler creates a new handler for order lifecycle
// events. An empty adminEmail disables the shop alert.
func NewOrderNotificationHandler(logger *zap.Logger, notifier OrderNotifier, adminEmail string) *OrderNotificationHandler {
	return &OrderNotificationHandler{
		logger:     logger,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderNotificationHandler) EventTypes() []string {
	return []string{
		ordering.EventTypeOrderPlaced,
		ordering.EventTypeOrderBatchPlaced,
		ordering.EventTypeOrderStatusChanged,
	}
}

// Handle processes one order lifecycle event
func (h *OrderNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var notifications []OrderNotification

	switch e := event.(type) {
	case *ordering.OrderPlacedEvent:
		notifications = append(notifications, OrderNotification{
			Recipient:   e.CustomerEmail,
			Subject:     "Your order has been received",
			Kind:        "order_placed",
			OrderCount:  1,
			TotalAmount: e.TotalAmount,
			Body: fmt.Sprintf("Hi %s, we received your order for %d x %s. Total to pay on delivery: %s EUR.",
				e.CustomerName, e.Quantity, e.ProductName, e.TotalAmount.StringFixed(2)),
		})
		if h.adminEmail != "" {
			notifications = append(notifications, OrderNotification{
				Recipient:   h.adminEmail,
				Subject:     "New order placed",
				Kind:        "admin_alert",
				OrderCount:  1,
				TotalAmount: e.TotalAmount,
				Body: fmt.Sprintf("New order from %s (%s): %d x %s, %s EUR cash on delivery.",
					e.CustomerName, e.CustomerEmail, e.Quantity, e.ProductName, e.TotalAmount.StringFixed(2)),
			})
		}
	case *ordering.OrderBatchPlacedEvent:
		notifications = append(notifications, OrderNotification{
			Recipient:   e.CustomerEmail,
			Subject:     "Your order has been received",
			Kind:        "batch_placed",
			OrderCount:  len(e.Lines),
			TotalAmount: e.TotalAmount,
			Body: fmt.Sprintf("Hi %s, we received your order with %d items. Total to pay on delivery: %s EUR.",
				e.CustomerName, len(e.Lines), e.TotalAmount.StringFixed(2)),
		})
		if h.adminEmail != "" {
			notifications = append(notifications, OrderNotification{
				Recipient:   h.adminEmail,
				Subject:     "New order placed",
				Kind:        "admin_alert",
				OrderCount:  len(e.Lines),
				TotalAmount: e.TotalAmount,
				Body: fmt.Sprintf("New order from %s (%s): %d items, %s EUR cash on delivery.",
					e.CustomerName, e.CustomerEmail, len(e.Lines), e.TotalAmount.StringFixed(2)),
			})
		}
	case *ordering.OrderStatusChangedEvent:
		notifications = append(notifications, OrderNotification{
			Recipient:  e.CustomerEmail,
			Subject:    fmt.Sprintf("Your order is now %s", e.NewStatus),
			Kind:       "status_changed",
			OrderCount: 1,
			Body: fmt.Sprintf("Hi %s, your order for %s moved from %s to %s.",
				e.CustomerName, e.ProductName, e.OldStatus, e.NewStatus),
		})
	default:
		h.logger.Error("unexpected event type",
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	if h.notifier == nil {
		h.logger.Debug("no notifier configured, dropping notifications",
			zap.String("event_type", event.EventType()),
		)
		return nil
	}

	var firstErr error
	for _, notification := range notifications {
		if err := h.notifier.Send(ctx, notification); err != nil {
			h.logger.Warn("order notification delivery failed",
				zap.String("kind", notification.Kind),
				zap.String("recipient", notification.Recipient),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		h.logger.Info("order notification sent",
			zap.String("kind", notification.Kind),
			zap.String("recipient", notification.Recipient),
		)
	}
	return firstErr
}
