package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Rorical/TextValidator/internal/models"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "92/100", FormatScore(92))
	assert.Equal(t, "87.5/100", FormatScore(87.5))
	assert.Equal(t, "0/100", FormatScore(0))
}

func TestRenderReport(t *testing.T) {
	assert.Equal(t, "", RenderReport(nil, nil, 80))

	out := RenderReport(&models.QualityReport{Reasoning: "Clear and concise", HumanQualityScore: 92}, nil, 80)
	assert.Contains(t, out, "92/100")
	assert.Contains(t, out, "Clear and concise")
	assert.NotContains(t, out, "Usage")

	out = RenderReport(&models.QualityReport{HumanQualityScore: 40}, &models.Usage{Count: 3, Limit: 10}, 80)
	assert.Contains(t, out, "Usage: 3/10")
}

func TestOutputContent(t *testing.T) {
	assert.Contains(t, OutputContent(models.ViewState{}, false, 80), outputPlaceholder)

	raw := models.ViewState{Output: "## Weekly Report"}
	assert.Equal(t, "## Weekly Report", OutputContent(raw, false, 80))

	failed := models.ViewState{Output: "Error: boom", Failed: true}
	assert.Equal(t, "Error: boom", OutputContent(failed, true, 80))

	loading := models.ViewState{Output: models.ProcessingText, Loading: true}
	assert.Equal(t, models.ProcessingText, OutputContent(loading, true, 80))

	emphasis := models.ViewState{Output: "Some **bold** words"}
	previewed := OutputContent(emphasis, true, 80)
	assert.Contains(t, previewed, "bold")
	assert.NotContains(t, previewed, "**")
}

func TestOutputContent_WrapsLongLines(t *testing.T) {
	long := models.ViewState{Output: strings.Repeat("word ", 40) + "ENDMARKER"}
	out := OutputContent(long, false, 30)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.Contains(t, out, "ENDMARKER")

	failed := models.ViewState{Output: "Error: " + strings.Repeat("x", 70), Failed: true}
	for _, line := range strings.Split(OutputContent(failed, false, 30), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestRenderTrigger(t *testing.T) {
	assert.Contains(t, RenderTrigger(false, 80), models.ValidateLabel)
	assert.Contains(t, RenderTrigger(true, 80), models.ValidatingLabel)
}

func TestRenderOutput_CopyLabel(t *testing.T) {
	out := RenderOutput("Weekly Report", models.ViewState{Output: "Weekly Report", CopyLabel: models.CopiedLabel}, 80)
	assert.Contains(t, out, models.CopiedLabel)
	assert.Contains(t, out, "Normalized Text")
}

func TestRenderAlert(t *testing.T) {
	out := RenderAlert("Please enter some text to validate.", 80, 20)
	assert.Contains(t, out, "Please enter some text")
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, RenderStatus("Validating", true, 3, 40), "Validating...")
	assert.NotContains(t, RenderStatus("Ready", false, 3, 40), "Ready.")
}
