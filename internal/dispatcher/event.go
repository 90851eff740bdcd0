package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/update"
)

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}

// ListenForCoreEvents waits for the next core event and hands it to the
// UI as a message. The model re-arms it after every CoreEventMsg.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case event, ok := <-ed.eventBus.CoreToUI():
			if !ok {
				return nil
			}
			return update.CoreEventMsg{Event: event}
		}
	}
}
