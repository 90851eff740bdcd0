package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/TextValidator/internal/dispatcher"
	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/internal/update"
)

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})
	m := NewAppModel(disp, "http://127.0.0.1:8000")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, eb
}

func typeText(m *AppModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestAppModel_TypingAndValidate(t *testing.T) {
	m, eb := newTestModel(t)

	typeText(m, "## Weekly Report")
	assert.Equal(t, "## Weekly Report", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	select {
	case ev := <-eb.UIToCore():
		assert.Equal(t, eventbus.ValidateEvent{Text: "## Weekly Report"}, ev)
	default:
		t.Fatal("expected a validate event")
	}
}

func TestAppModel_RendersResultAndReport(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(update.CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.ViewState{
		Output:    "Weekly Report",
		Report:    &models.QualityReport{Reasoning: "Clear and concise", HumanQualityScore: 92},
		CopyLabel: models.CopyLabel,
	}}})

	view := m.View()
	assert.Contains(t, view, "Weekly Report")
	assert.Contains(t, view, "92/100")
	assert.Contains(t, view, "Clear and concise")
	assert.Contains(t, view, models.ValidateLabel)
}

func TestAppModel_LoadingView(t *testing.T) {
	m, eb := newTestModel(t)

	m.Update(update.CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.ViewState{
		Output:    models.ProcessingText,
		Loading:   true,
		CopyLabel: models.CopyLabel,
	}}})

	view := m.View()
	assert.Contains(t, view, models.ValidatingLabel)
	assert.Contains(t, view, models.ProcessingText)
	assert.NotContains(t, view, "/100")

	// The trigger is disabled
	typeText(m, "more text")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	select {
	case ev := <-eb.UIToCore():
		t.Fatalf("unexpected event %#v", ev)
	default:
	}
}

func TestAppModel_AlertIsModal(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(update.CoreEventMsg{Event: eventbus.AlertEvent{Message: "Please enter some text to validate."}})
	assert.Contains(t, m.View(), "Please enter some text")

	typeText(m, "ignored")
	assert.Equal(t, "", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.View(), "Please enter some text")
	assert.Equal(t, "", m.input.Value(), "dismissing must not insert a newline")
}

func TestAppModel_InitAndCoreEventRearm(t *testing.T) {
	m, _ := newTestModel(t)
	require.NotNil(t, m.Init())

	_, cmd := m.Update(update.CoreEventMsg{Event: eventbus.AlertEvent{Message: "x"}})
	assert.NotNil(t, cmd)
}

func TestAppModel_LongOutputWrapsInsidePane(t *testing.T) {
	m, _ := newTestModel(t)

	long := strings.Repeat("word ", 40) + "ENDMARKER"
	m.Update(update.CoreEventMsg{Event: eventbus.StateUpdateEvent{State: models.ViewState{
		Output:    long,
		CopyLabel: models.CopyLabel,
	}}})

	pane := m.output.View()
	assert.Contains(t, pane, "ENDMARKER")
	assert.Equal(t, 40, strings.Count(pane, "word"))
	assert.Contains(t, m.View(), "ENDMARKER")

	// Narrowing the terminal rewraps the same output
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	assert.Contains(t, m.output.View(), "ENDMARKER")
}
