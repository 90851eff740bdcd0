package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/models"
)

// HandleKeyMsgWithEventBus handles the form's own keys. It reports whether
// the key was consumed; unconsumed keys belong to the input widget.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, input string, eb *eventbus.EventBus) (tea.Cmd, bool) {
	if key.Matches(keyMsg, Keys.Quit) {
		return tea.Quit, true
	}

	// Alerts are modal
	if appModel.HasAlert() {
		if key.Matches(keyMsg, Keys.Dismiss) {
			appModel.Alert = ""
		}
		return nil, true
	}

	switch {
	case key.Matches(keyMsg, Keys.Validate):
		// Trigger is disabled while a request is outstanding
		if appModel.View.Loading {
			return nil, true
		}
		if err := eb.SendToCore(eventbus.ValidateEvent{Text: input}); err != nil {
			appModel.Status = "Error sending request: " + err.Error()
		}
		return nil, true
	case key.Matches(keyMsg, Keys.Copy):
		if !appModel.View.CanCopy() {
			return nil, true
		}
		if err := eb.SendToCore(eventbus.CopyEvent{}); err != nil {
			appModel.Status = "Error sending copy request: " + err.Error()
		}
		return nil, true
	case key.Matches(keyMsg, Keys.Preview):
		appModel.Preview = !appModel.Preview
		return nil, true
	}

	return nil, false
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.View = event.State
		appModel.Status = statusFor(event.State)
	case eventbus.AlertEvent:
		appModel.Alert = event.Message
	}

	return nil
}

func statusFor(s models.ViewState) string {
	switch {
	case s.Loading:
		return "Validating"
	case s.Failed:
		return "Validation failed"
	case s.Output != "":
		return "Done"
	default:
		return "Ready"
	}
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.View.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	} else {
		appModel.LoadingDots = 0
	}
	return TickCmd()
}
