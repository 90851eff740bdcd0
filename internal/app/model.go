package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/TextValidator/internal/dispatcher"
	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/internal/update"
	"github.com/Rorical/TextValidator/ui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	// header, labels, trigger, status, help and borders
	chromeHeight = 14
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	input      textarea.Model
	output     viewport.Model
	rendered   string // cache key for output content
}

func NewAppModel(disp *dispatcher.EventDispatcher, endpoint string) *AppModel {
	ta := textarea.New()
	ta.Placeholder = "## Weekly Report..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	m := &AppModel{
		appModel: models.AppModel{
			View:   models.ViewState{CopyLabel: models.CopyLabel},
			Status: "Ready • " + endpoint,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		dispatcher: disp,
		input:      ta,
		output:     viewport.New(defaultWidth-6, 5),
	}
	m.resize()
	m.refreshOutput()
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		m.refreshOutput()
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd, consumed := update.HandleUpdateWithEventBus(&m.appModel, msg, m.input.Value(), eventBus)

	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize()
	}
	m.refreshOutput()
	if consumed {
		return m, cmd
	}

	cmds := []tea.Cmd{cmd}
	var childCmd tea.Cmd
	if keyMsg, ok := msg.(tea.KeyMsg); ok && isScrollKey(keyMsg) {
		m.output, childCmd = m.output.Update(msg)
	} else {
		m.input, childCmd = m.input.Update(msg)
	}
	cmds = append(cmds, childCmd)

	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	w, h := m.appModel.Width, m.appModel.Height
	if m.appModel.HasAlert() {
		return components.RenderAlert(m.appModel.Alert, w, h)
	}

	sections := []string{
		components.RenderHeader(w),
		components.RenderInput(m.input.View(), w),
		components.RenderTrigger(m.appModel.View.Loading, w),
		components.RenderOutput(m.output.View(), m.appModel.View, w),
	}
	if report := components.RenderReport(m.appModel.View.Report, m.appModel.View.Usage, w); report != "" {
		sections = append(sections, report)
	}
	sections = append(sections,
		components.RenderHelp(m.appModel.Preview),
		components.RenderStatus(m.appModel.Status, m.appModel.View.Loading, m.appModel.LoadingDots, w),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *AppModel) resize() {
	inner := max(m.appModel.Width-6, 10)
	pane := max((m.appModel.Height-chromeHeight)/2, 3)

	m.input.SetWidth(inner)
	m.input.SetHeight(pane)
	m.output.Width = inner
	m.output.Height = pane
	m.rendered = ""
}

// refreshOutput re-renders the viewport content when the output, the
// preview mode or the width changed.
func (m *AppModel) refreshOutput() {
	view := m.appModel.View
	key := view.Output + "\x00" + boolKey(m.appModel.Preview) + boolKey(view.Loading) + boolKey(view.Failed) +
		strconv.Itoa(m.output.Width)
	if key == m.rendered {
		return
	}
	m.rendered = key
	m.output.SetContent(components.OutputContent(view, m.appModel.Preview, m.output.Width))
	m.output.GotoTop()
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "pgup", "pgdown":
		return true
	}
	return false
}
