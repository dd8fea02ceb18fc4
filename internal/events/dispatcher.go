package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
	onFailure func(Event, error)
}

// DispatcherOption customizes the in-memory dispatcher.
type DispatcherOption func(*inMemoryDispatcher)

// WithFailureHook is called for every handler error.
func WithFailureHook(hook func(Event, error)) DispatcherOption {
	return func(d *inMemoryDispatcher) {
		d.onFailure = hook
	}
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher(opts ...DispatcherOption) Dispatcher {
	d := &inMemoryDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Publish synchronously invokes handlers for the given event. A failing
// handler does not stop the others; all failures are joined in the result.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			if d.onFailure != nil {
				d.onFailure(event, err)
			}
			errs = append(errs, fmt.Errorf("%s handler: %w", event.Type, err))
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}
