package core

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Rorical/TextValidator/internal/client"
	"github.com/Rorical/TextValidator/internal/clipboard"
	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/metrics"
	"github.com/Rorical/TextValidator/internal/models"
)

const (
	EmptyInputAlert  = "Please enter some text to validate."
	CopyFailedAlert  = "Unable to copy the text. Check your clipboard permissions."
	DefaultCopyDelay = 2000 * time.Millisecond
)

type ValidationService struct {
	validator    client.Validator
	clipboard    clipboard.Writer
	state        *ValidationState
	eventBus     *eventbus.EventBus
	logger       *slog.Logger
	metrics      *metrics.Metrics
	copyFeedback time.Duration

	// At most one validation request is outstanding.
	inflight *semaphore.Weighted
	wg       sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	pushMu    sync.Mutex // snapshot and send happen as one step
	timerMu   sync.Mutex
	copyTimer *time.Timer
}

type Option func(*ValidationService)

func WithLogger(logger *slog.Logger) Option {
	return func(s *ValidationService) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ValidationService) {
		s.metrics = m
	}
}

// WithCopyFeedback sets how long "Copied!" stays visible.
func WithCopyFeedback(d time.Duration) Option {
	return func(s *ValidationService) {
		if d > 0 {
			s.copyFeedback = d
		}
	}
}

func NewValidationService(v client.Validator, cb clipboard.Writer, eb *eventbus.EventBus, opts ...Option) *ValidationService {
	ctx, cancel := context.WithCancel(context.Background())

	service := &ValidationService{
		validator:    v,
		clipboard:    cb,
		state:        NewValidationState(),
		eventBus:     eb,
		logger:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		copyFeedback: DefaultCopyDelay,
		inflight:     semaphore.NewWeighted(1),
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Start pushes the initial state and runs the event loop in a goroutine.
func (vs *ValidationService) Start() {
	vs.pushStateToUI()
	go vs.eventLoop()
}

// Stop ends the event loop, aborts an outstanding request and cancels a
// pending copy revert.
func (vs *ValidationService) Stop() {
	vs.cancel()

	vs.timerMu.Lock()
	if vs.copyTimer != nil {
		vs.copyTimer.Stop()
	}
	vs.timerMu.Unlock()

	vs.wg.Wait()
}

// Wait blocks until no validation request is outstanding.
func (vs *ValidationService) Wait() {
	vs.wg.Wait()
}

func (vs *ValidationService) State() models.ViewState {
	return vs.state.Snapshot()
}

func (vs *ValidationService) eventLoop() {
	for {
		select {
		case <-vs.ctx.Done():
			return
		case event, ok := <-vs.eventBus.UIToCore():
			if !ok {
				return
			}
			vs.handleUIEvent(event)
		}
	}
}

func (vs *ValidationService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.ValidateEvent:
		vs.Validate(e.Text)
	case eventbus.CopyEvent:
		vs.Copy()
	}
}

// Validate dispatches one request for text and reports whether it did.
// Blank text raises an alert instead; a call while another request is
// outstanding is dropped. The response is applied when it arrives, even if
// the input has changed since.
func (vs *ValidationService) Validate(text string) bool {
	if strings.TrimSpace(text) == "" {
		vs.metrics.ObserveValidation(metrics.OutcomeRejected, 0)
		vs.alert(EmptyInputAlert)
		return false
	}

	if !vs.inflight.TryAcquire(1) {
		vs.logger.Warn("validation already in flight, ignoring request")
		vs.metrics.ObserveValidation(metrics.OutcomeSkipped, 0)
		return false
	}

	vs.state.BeginValidation()
	vs.pushStateToUI()

	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		defer vs.inflight.Release(1)
		vs.runValidation(text)
	}()
	return true
}

func (vs *ValidationService) runValidation(text string) {
	start := time.Now()
	vs.logger.Info("validation started", "input_len", len(text))

	result, err := vs.validator.Validate(vs.ctx, text)
	elapsed := time.Since(start)

	if err != nil {
		message := client.Message(err)
		vs.logger.Error("validation failed", "error", err, "elapsed", elapsed)
		vs.metrics.ObserveValidation(metrics.OutcomeError, elapsed)
		vs.state.FinishWithError(message)
	} else {
		vs.logger.Info("validation finished",
			"elapsed", elapsed,
			"has_report", result.QualityReport != nil,
		)
		vs.metrics.ObserveValidation(metrics.OutcomeSuccess, elapsed)
		vs.state.FinishWithResult(result)
	}

	vs.pushStateToUI()
}

// Copy writes the current output to the clipboard and reports whether it
// did. Empty output, the in-progress placeholder and the loading state are
// no-ops.
func (vs *ValidationService) Copy() bool {
	text, ok := vs.state.CopyableOutput()
	if !ok {
		vs.metrics.ObserveCopy(metrics.OutcomeSkipped)
		return false
	}

	if err := vs.clipboard.WriteText(text); err != nil {
		vs.logger.Error("clipboard write failed", "error", err)
		vs.metrics.ObserveCopy(metrics.OutcomeError)
		vs.alert(CopyFailedAlert)
		return false
	}

	vs.metrics.ObserveCopy(metrics.OutcomeSuccess)
	gen := vs.state.MarkCopied()
	vs.armCopyRevert(gen)
	vs.pushStateToUI()
	return true
}

// armCopyRevert replaces any pending revert timer with a fresh one.
func (vs *ValidationService) armCopyRevert(gen uint64) {
	vs.timerMu.Lock()
	defer vs.timerMu.Unlock()

	if vs.copyTimer != nil {
		vs.copyTimer.Stop()
	}
	vs.copyTimer = time.AfterFunc(vs.copyFeedback, func() {
		if vs.state.RevertCopyLabel(gen) {
			vs.pushStateToUI()
		}
	})
}

func (vs *ValidationService) alert(message string) {
	if err := vs.eventBus.SendToUI(eventbus.AlertEvent{Message: message}); err != nil {
		vs.logger.Error("failed to send alert to UI", "error", err)
	}
}

func (vs *ValidationService) pushStateToUI() {
	vs.pushMu.Lock()
	defer vs.pushMu.Unlock()

	if err := vs.eventBus.SendToUI(eventbus.StateUpdateEvent{State: vs.state.Snapshot()}); err != nil {
		vs.logger.Error("failed to send state to UI", "error", err)
	}
}
