package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dyqani/backend/internal/domain/catalog"
	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxBatchItems caps how many line items one checkout may carry
const MaxBatchItems = 20

// maxPlacementAttempts bounds how often the placing transaction is retried
// after a serialization or deadlock abort
const maxPlacementAttempts = 3

// PlacementService handles storefront order placement. All writes go through
// a TransactionScope so the stock decrement and the order insert commit or
// roll back as one unit. Prices and shipping fees are always resolved
// server-side.
type PlacementService struct {
	txScope        TransactionScope
	productRepo    catalog.ProductRepository
	priceResolver  *PriceResolver
	eventPublisher shared.EventPublisher
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	txScope TransactionScope,
	productRepo catalog.ProductRepository,
	priceResolver *PriceResolver,
) *PlacementService {
	return &PlacementService{
		txScope:       txScope,
		productRepo:   productRepo,
		priceResolver: priceResolver,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PlacementService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// resolvedLine is one checkout line after product lookup and pricing
type resolvedLine struct {
	product   *catalog.Product
	size      string
	quantity  int64
	logoKey   string
	unitPrice ResolvedPrice
}

// PlaceOrder places a single-item order. Stock for the requested size is
// reserved with a conditional decrement inside the same transaction that
// inserts the order row.
func (s *PlacementService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	customer, err := s.buildCustomer(req.Customer)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	line, err := s.resolveLine(ctx, req.ProductID, req.Size, req.Quantity, req.LogoKey, now)
	if err != nil {
		return nil, err
	}

	shippingFee := ordering.ShippingFee(customer.Country)

	var order *ordering.Order
	err = s.runPlacementTx(ctx, func(repos TransactionalRepositories) error {
		if err := s.reserveLine(ctx, repos, line); err != nil {
			return err
		}

		order, err = ordering.NewOrder(ordering.NewOrderInput{
			Customer:    customer,
			ProductID:   line.product.ID,
			ProductName: line.product.Name,
			Size:        line.size,
			Quantity:    line.quantity,
			UnitPrice:   line.unitPrice.UnitPrice,
			ShippingFee: shippingFee,
			LogoKey:     line.logoKey,
		})
		if err != nil {
			return err
		}

		return repos.OrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	resp := ToOrderResponse(order)
	return &resp, nil
}

// PlaceBatch places a multi-item checkout as one atomic batch: every line's
// stock reservation and order insert happen in a single transaction, so a
// rejection on any line leaves nothing behind. The destination shipping fee
// is charged once and split across lines proportionally to their subtotals.
func (s *PlacementService) PlaceBatch(ctx context.Context, req BatchCheckoutRequest) (*BatchCheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Checkout must contain at least one item")
	}
	if len(req.Items) > MaxBatchItems {
		return nil, shared.NewDomainError("INVALID_INPUT", "Checkout exceeds the maximum number of items")
	}

	customer, err := s.buildCustomer(req.Customer)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lines := make([]resolvedLine, 0, len(req.Items))
	subtotals := make([]decimal.Decimal, 0, len(req.Items))
	for _, item := range req.Items {
		line, err := s.resolveLine(ctx, item.ProductID, item.Size, item.Quantity, item.LogoKey, now)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
		subtotals = append(subtotals, line.unitPrice.UnitPrice.MultiplyByInt(line.quantity).Amount())
	}

	fee := ordering.ShippingFee(customer.Country)
	shares := ordering.DistributeShipping(subtotals, fee)

	batchID := uuid.New()
	orders := make([]*ordering.Order, 0, len(lines))

	err = s.runPlacementTx(ctx, func(repos TransactionalRepositories) error {
		orders = orders[:0]
		for i, line := range lines {
			if err := s.reserveLine(ctx, repos, line); err != nil {
				return err
			}

			order, err := ordering.NewOrder(ordering.NewOrderInput{
				Customer:    customer,
				ProductID:   line.product.ID,
				ProductName: line.product.Name,
				Size:        line.size,
				Quantity:    line.quantity,
				UnitPrice:   line.unitPrice.UnitPrice,
				ShippingFee: shares[i],
				BatchID:     &batchID,
				LogoKey:     line.logoKey,
			})
			if err != nil {
				return err
			}

			if err := repos.OrderRepo().Save(ctx, order); err != nil {
				return err
			}
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// One aggregate event per batch so the notification side sends a single
	// confirmation instead of one per line item.
	for _, o := range orders {
		o.ClearDomainEvents()
	}
	s.publishEvents(ctx, []shared.DomainEvent{ordering.NewOrderBatchPlacedEvent(batchID, orders)})

	resp := &BatchCheckoutResponse{
		BatchID:     batchID,
		TotalAmount: decimal.Zero,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, ToOrderResponse(o))
		resp.TotalAmount = resp.TotalAmount.Add(o.TotalAmount)
	}
	return resp, nil
}

// runPlacementTx executes fn through the transaction scope, retrying when
// the database aborts the transaction with a serialization or deadlock
// error. Business failures pass through on the first attempt.
func (s *PlacementService) runPlacementTx(ctx context.Context, fn func(TransactionalRepositories) error) error {
	var err error
	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		err = s.txScope.Execute(ctx, fn)
		if !isSerializationError(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
		}
	}
	return err
}

// isSerializationError matches the abort classes Postgres asks clients to
// retry: serialization_failure (40001) and deadlock_detected (40P01). The
// sqlite busy error is included for the test driver.
func isSerializationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 40001") ||
		strings.Contains(msg, "SQLSTATE 40P01") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "database is locked")
}

func (s *PlacementService) buildCustomer(req CustomerRequest) (ordering.Customer, error) {
	country, ok := ordering.ParseCountry(req.Country)
	if !ok {
		return ordering.Customer{}, shared.NewDomainError("INVALID_COUNTRY", "Delivery is available in Kosovo, Albania and Macedonia only")
	}
	return ordering.Customer{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		Country:  country,
	}, nil
}

func (s *PlacementService) resolveLine(ctx context.Context, productID uuid.UUID, size string, quantity int64, logoKey string, at time.Time) (resolvedLine, error) {
	if quantity < 1 {
		return resolvedLine{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return resolvedLine{}, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return resolvedLine{}, err
	}
	if !product.Active {
		// Hidden products are indistinguishable from missing ones
		return resolvedLine{}, shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	price, err := s.priceResolver.Resolve(ctx, product, at)
	if err != nil {
		return resolvedLine{}, err
	}

	return resolvedLine{
		product:   product,
		size:      size,
		quantity:  quantity,
		logoKey:   logoKey,
		unitPrice: price,
	}, nil
}

// reserveLine decrements the size ledger for one line. Products without any
// ledger rows are sold without stock tracking; products with rows require a
// size and go through the conditional decrement.
func (s *PlacementService) reserveLine(ctx context.Context, repos TransactionalRepositories, line resolvedLine) error {
	rows, err := repos.StockRepo().FindByProduct(ctx, line.product.ID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if line.size == "" {
		return shared.NewDomainError("INVALID_SIZE", "Size is required for this product")
	}
	return repos.StockRepo().Reserve(ctx, line.product.ID, line.size, line.quantity)
}

func (s *PlacementService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Notification delivery is best effort; the order is already committed
	_ = s.eventPublisher.Publish(ctx, events...)
}
