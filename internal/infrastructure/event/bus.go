package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dyqani/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// queueSize bounds how many events may wait for the dispatch worker
const queueSize = 256

// InMemoryEventBus implements EventBus with in-memory pub/sub. Between Start
// and Stop, published events are queued and delivered on a worker goroutine,
// so a slow handler (an SMTP send, say) never delays the publisher. Before
// Start and after Stop events are delivered inline, which keeps unit tests
// deterministic. A failing or panicking handler never fails the publish.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler // eventType -> handlers
	wildcard []shared.EventHandler            // handlers for all events
	logger   *zap.Logger

	stateMu sync.RWMutex
	running atomic.Bool
	queue   chan shared.DomainEvent
	wg      sync.WaitGroup
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
		queue:    make(chan shared.DomainEvent, queueSize),
	}
}

// Publish hands events to the dispatch worker. When the bus is not running,
// or the queue is full, delivery happens on the caller's goroutine instead.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, evt := range events {
		if !b.enqueue(evt) {
			b.deliver(ctx, evt)
		}
	}
	return nil
}

func (b *InMemoryEventBus) enqueue(evt shared.DomainEvent) bool {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()

	if !b.running.Load() {
		return false
	}
	select {
	case b.queue <- evt:
		return true
	default:
		b.logger.Warn("event queue full, delivering on publisher goroutine",
			zap.String("event_type", evt.EventType()),
		)
		return false
	}
}

// Subscribe registers a handler. With no explicit event types the handler's
// own EventTypes() are used; an empty result subscribes it to all events.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		b.wildcard = append(b.wildcard, handler)
		return
	}
	for _, eventType := range eventTypes {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
}

// Unsubscribe removes a handler from all event types
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.wildcard = removeHandler(b.wildcard, handler)
	for eventType, handlers := range b.handlers {
		b.handlers[eventType] = removeHandler(handlers, handler)
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

// Start launches the dispatch worker
func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()

	if !b.running.CompareAndSwap(false, true) {
		return nil
	}
	b.wg.Add(1)
	go b.run()
	b.logger.Info("event bus started")
	return nil
}

// Stop drains the queue and waits for the worker. Events still queued are
// delivered before Stop returns, unless the context expires first.
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.stateMu.Lock()
	if !b.running.CompareAndSwap(true, false) {
		b.stateMu.Unlock()
		return nil
	}
	close(b.queue)
	b.stateMu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("event bus stopped")
		return nil
	case <-ctx.Done():
		b.logger.Warn("event bus stopped before the queue drained")
		return ctx.Err()
	}
}

func (b *InMemoryEventBus) run() {
	defer b.wg.Done()
	for evt := range b.queue {
		b.deliver(context.Background(), evt)
	}
}

func (b *InMemoryEventBus) deliver(ctx context.Context, evt shared.DomainEvent) {
	for _, handler := range b.handlersFor(evt.EventType()) {
		if err := b.dispatch(ctx, handler, evt); err != nil {
			b.logger.Error("handler failed to process event",
				zap.String("event_type", evt.EventType()),
				zap.String("event_id", evt.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

func (b *InMemoryEventBus) handlersFor(eventType string) []shared.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	typed := b.handlers[eventType]
	result := make([]shared.EventHandler, 0, len(typed)+len(b.wildcard))
	result = append(result, typed...)
	result = append(result, b.wildcard...)
	return result
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, evt shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", evt.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, evt)
}

func removeHandler(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := make([]shared.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
