package ordering

import (
	"context"
	"time"

	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles the admin side of order management: listing,
// status transitions, notes and deletion. Deleting or cancelling an order
// never restores stock; an admin who wants the units back adjusts the
// ledger explicitly.
type OrderService struct {
	orderRepo      ordering.OrderRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Get returns one order by ID
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetBatch returns all sibling line items of a batch checkout
func (s *OrderService) GetBatch(ctx context.Context, batchID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, shared.ErrNotFound
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// List returns a filtered, paginated order list
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	f := s.toSharedFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}

	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// UpdateStatus transitions the order to the requested status. The update is
// guarded by the order's version so two admins racing on the same order
// cannot silently overwrite each other.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(ordering.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, order.GetDomainEvents()...)
	}
	order.ClearDomainEvents()

	resp := ToOrderResponse(order)
	return &resp, nil
}

// SetNotes replaces the free-form admin notes on an order
func (s *OrderService) SetNotes(ctx context.Context, id uuid.UUID, req AdminNotesRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.SetAdminNotes(req.Notes)

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Delete removes an order permanently. Stock reserved by the order stays
// consumed.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// Stats returns the dashboard counters per status
func (s *OrderService) Stats(ctx context.Context) (*OrderStatsResponse, error) {
	stats := &OrderStatsResponse{}

	counts := []struct {
		status ordering.OrderStatus
		target *int64
	}{
		{ordering.OrderStatusPending, &stats.Pending},
		{ordering.OrderStatusConfirmed, &stats.Confirmed},
		{ordering.OrderStatusProcessing, &stats.Processing},
		{ordering.OrderStatusShipped, &stats.Shipped},
		{ordering.OrderStatusDelivered, &stats.Delivered},
		{ordering.OrderStatusCancelled, &stats.Cancelled},
	}

	for _, c := range counts {
		n, err := s.orderRepo.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.target = n
		stats.Total += n
	}

	return stats, nil
}

func (s *OrderService) toSharedFilter(filter OrderListFilter) shared.Filter {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search

	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Country != "" {
		f.Filters["country"] = filter.Country
	}
	if filter.BatchID != nil {
		f.Filters["batch_id"] = *filter.BatchID
	}
	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			f.Filters["start_date"] = t
		}
	}
	if filter.EndDate != "" {
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			f.Filters["end_date"] = t.Add(24*time.Hour - time.Nanosecond)
		}
	}

	return f
}
