package core

import (
	"sync"

	"github.com/Rorical/TextValidator/internal/models"
)

// ValidationState owns the form's view state. Every mutation goes through
// one of the transition methods so the loading/result/error invariants hold
// under concurrent access from the request goroutine and the copy timer.
type ValidationState struct {
	mu        sync.RWMutex
	output    string
	report    *models.QualityReport
	usage     *models.Usage
	loading   bool
	failed    bool
	copyLabel string
	copyGen   uint64
}

func NewValidationState() *ValidationState {
	return &ValidationState{
		copyLabel: models.CopyLabel,
	}
}

// Snapshot returns a copy safe to hand to the UI.
func (vs *ValidationState) Snapshot() models.ViewState {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	s := models.ViewState{
		Output:    vs.output,
		Loading:   vs.loading,
		Failed:    vs.failed,
		CopyLabel: vs.copyLabel,
	}
	if vs.report != nil {
		r := *vs.report
		s.Report = &r
	}
	if vs.usage != nil {
		u := *vs.usage
		s.Usage = &u
	}
	return s
}

func (vs *ValidationState) IsLoading() bool {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.loading
}

// BeginValidation enters Loading: clears the report and shows the
// in-progress placeholder.
func (vs *ValidationState) BeginValidation() {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.loading = true
	vs.failed = false
	vs.report = nil
	vs.usage = nil
	vs.output = models.ProcessingText
}

// FinishWithResult leaves Loading with the normalized text.
func (vs *ValidationState) FinishWithResult(result *models.Result) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.loading = false
	vs.failed = false
	vs.output = result.NormalizedText
	vs.report = nil
	vs.usage = nil
	if result.QualityReport != nil {
		r := *result.QualityReport
		vs.report = &r
	}
	if result.Usage != nil {
		u := *result.Usage
		vs.usage = &u
	}
}

// FinishWithError leaves Loading with an error placeholder.
func (vs *ValidationState) FinishWithError(message string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.loading = false
	vs.failed = true
	vs.report = nil
	vs.usage = nil
	vs.output = models.ErrorPrefix + message
}

// CopyableOutput returns the output and whether a copy is allowed now.
func (vs *ValidationState) CopyableOutput() (string, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	s := models.ViewState{Output: vs.output, Loading: vs.loading}
	return vs.output, s.CanCopy()
}

// MarkCopied shows the confirmation label and returns its generation.
func (vs *ValidationState) MarkCopied() uint64 {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.copyGen++
	vs.copyLabel = models.CopiedLabel
	return vs.copyGen
}

// RevertCopyLabel restores "Copy" only if no newer confirmation replaced
// generation gen. It reports whether the label changed.
func (vs *ValidationState) RevertCopyLabel(gen uint64) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if gen != vs.copyGen || vs.copyLabel == models.CopyLabel {
		return false
	}
	vs.copyLabel = models.CopyLabel
	return true
}
