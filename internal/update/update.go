package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/models"
)

// HandleUpdateWithEventBus routes a message to its handler. The returned
// bool is false when the message should also reach the child widgets.
func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, input string, eb *eventbus.EventBus) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, input, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil, false
	case TickMsg:
		return HandleTickMsg(appModel), true
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg), true
	}
	return nil, false
}
