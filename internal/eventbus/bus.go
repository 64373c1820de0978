package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"
)

// CoreEvent is an event produced outside the UI goroutine and consumed by it.
type CoreEvent interface {
	CoreEvent()
}

// RequestCompleted carries the outcome of one request. Exactly one is
// published per started request. Err is nil on success.
type RequestCompleted struct {
	ID   uint64
	Text string
	Err  error
}

func (e RequestCompleted) CoreEvent() {}

// ErrClosed is returned when publishing to a closed bus.
var ErrClosed = errors.New("event bus closed")

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// EventBus delivers core events to the UI in publish order. Publish never
// drops an event while the bus is open; it waits for buffer space instead.
type EventBus struct {
	coreToUI      chan CoreEvent
	done          chan struct{}
	closeOnce     sync.Once
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return &EventBus{
		coreToUI: make(chan CoreEvent, 100),
		done:     make(chan struct{}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

// Publish blocks until the event is queued, the bus is closed or ctx ends.
func (eb *EventBus) Publish(ctx context.Context, event CoreEvent) error {
	select {
	case <-eb.done:
		eb.reportError("Publish", ErrClosed)
		return ErrClosed
	default:
	}

	select {
	case eb.coreToUI <- event:
		return nil
	case <-eb.done:
		eb.reportError("Publish", ErrClosed)
		return ErrClosed
	case <-ctx.Done():
		eb.reportError("Publish", ctx.Err())
		return ctx.Err()
	}
}

// Next waits for the next event. ok is false once the bus is closed.
func (eb *EventBus) Next() (CoreEvent, bool) {
	select {
	case ev := <-eb.coreToUI:
		return ev, true
	case <-eb.done:
		return nil, false
	}
}

// Close unblocks publishers and listeners. Safe to call more than once.
func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.done)
	})
}
