package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/TextValidator/internal/models"
)

func TestValidationState_Initial(t *testing.T) {
	s := NewValidationState().Snapshot()
	assert.Equal(t, "", s.Output)
	assert.Nil(t, s.Report)
	assert.False(t, s.Loading)
	assert.Equal(t, models.CopyLabel, s.CopyLabel)
	assert.False(t, s.CanCopy())
}

func TestValidationState_SuccessCycle(t *testing.T) {
	vs := NewValidationState()

	vs.BeginValidation()
	s := vs.Snapshot()
	assert.True(t, s.Loading)
	assert.Equal(t, models.ProcessingText, s.Output)
	assert.Nil(t, s.Report)
	assert.False(t, s.CanCopy())

	vs.FinishWithResult(&models.Result{
		NormalizedText: "Weekly Report",
		QualityReport:  &models.QualityReport{Reasoning: "Clear and concise", HumanQualityScore: 92},
	})
	s = vs.Snapshot()
	assert.False(t, s.Loading)
	assert.False(t, s.Failed)
	assert.Equal(t, "Weekly Report", s.Output)
	require.NotNil(t, s.Report)
	assert.Equal(t, float64(92), s.Report.HumanQualityScore)
	assert.True(t, s.CanCopy())
}

func TestValidationState_BeginClearsPreviousReport(t *testing.T) {
	vs := NewValidationState()
	vs.BeginValidation()
	vs.FinishWithResult(&models.Result{
		NormalizedText: "x",
		QualityReport:  &models.QualityReport{HumanQualityScore: 50},
		Usage:          &models.Usage{Count: 1, Limit: 10},
	})

	vs.BeginValidation()
	s := vs.Snapshot()
	assert.Nil(t, s.Report)
	assert.Nil(t, s.Usage)
}

func TestValidationState_ErrorCycle(t *testing.T) {
	vs := NewValidationState()
	vs.BeginValidation()
	vs.FinishWithError("Upstream model unavailable")

	s := vs.Snapshot()
	assert.False(t, s.Loading)
	assert.True(t, s.Failed)
	assert.Equal(t, "Error: Upstream model unavailable", s.Output)
	assert.Nil(t, s.Report)
	assert.True(t, s.CanCopy(), "error text is copyable")
}

func TestValidationState_SnapshotIsCopy(t *testing.T) {
	vs := NewValidationState()
	vs.FinishWithResult(&models.Result{
		NormalizedText: "x",
		QualityReport:  &models.QualityReport{HumanQualityScore: 10},
	})

	s := vs.Snapshot()
	s.Report.HumanQualityScore = 99
	assert.Equal(t, float64(10), vs.Snapshot().Report.HumanQualityScore)
}

func TestValidationState_CopyGenerations(t *testing.T) {
	vs := NewValidationState()

	first := vs.MarkCopied()
	second := vs.MarkCopied()
	assert.Equal(t, models.CopiedLabel, vs.Snapshot().CopyLabel)

	assert.False(t, vs.RevertCopyLabel(first), "stale revert must not fire")
	assert.Equal(t, models.CopiedLabel, vs.Snapshot().CopyLabel)

	assert.True(t, vs.RevertCopyLabel(second))
	assert.Equal(t, models.CopyLabel, vs.Snapshot().CopyLabel)
	assert.False(t, vs.RevertCopyLabel(second))
}

func TestValidationState_CopyableOutput(t *testing.T) {
	vs := NewValidationState()
	_, ok := vs.CopyableOutput()
	assert.False(t, ok)

	vs.BeginValidation()
	_, ok = vs.CopyableOutput()
	assert.False(t, ok)

	vs.FinishWithResult(&models.Result{NormalizedText: models.ProcessingText})
	_, ok = vs.CopyableOutput()
	assert.False(t, ok, "placeholder text is never copied")

	vs.FinishWithResult(&models.Result{NormalizedText: "done"})
	out, ok := vs.CopyableOutput()
	assert.True(t, ok)
	assert.Equal(t, "done", out)
}
