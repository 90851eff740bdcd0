package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/TextValidator/internal/models"
)

var (
	ErrChannelFull = errors.New("channel is full")
	ErrClosed      = errors.New("event bus is closed")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// ValidateEvent - UI asks core to validate the current input
type ValidateEvent struct {
	Text string
}

func (e ValidateEvent) UIEvent() {}

// CopyEvent - UI asks core to copy the current output
type CopyEvent struct{}

func (e CopyEvent) UIEvent() {}

// StateUpdateEvent - Core pushes a full view state snapshot to UI
type StateUpdateEvent struct {
	State models.ViewState
}

func (e StateUpdateEvent) CoreEvent() {}

// AlertEvent - Core asks UI to show a blocking prompt
type AlertEvent struct {
	Message string
}

func (e AlertEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// EventBus handles communication between UI and Core
type EventBus struct {
	mu            sync.RWMutex
	closed        bool
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return NewEventBusWithBuffer(100)
}

func NewEventBusWithBuffer(size int) *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, size),
		coreToUI: make(chan CoreEvent, size),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return eb.reportError("SendToCore", ErrClosed)
	}

	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return eb.reportError("SendToCore", ErrChannelFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return eb.reportError("SendToUI", ErrClosed)
	}

	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return eb.reportError("SendToUI", ErrChannelFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// Close closes both channels. Later sends fail with ErrClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
