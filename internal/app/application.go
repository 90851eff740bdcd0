package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/TextValidator/internal/client"
	"github.com/Rorical/TextValidator/internal/clipboard"
	"github.com/Rorical/TextValidator/internal/config"
	"github.com/Rorical/TextValidator/internal/core"
	"github.com/Rorical/TextValidator/internal/dispatcher"
	"github.com/Rorical/TextValidator/internal/eventbus"
	"github.com/Rorical/TextValidator/internal/logging"
	"github.com/Rorical/TextValidator/internal/metrics"
)

// Options carries run-time settings that are not part of a profile.
type Options struct {
	Logger      *slog.Logger
	MetricsAddr string
	Clipboard   clipboard.Writer // overrides the configured backend
}

// Application manages the complete application lifecycle
type Application struct {
	config        *config.Config
	logger        *slog.Logger
	eventBus      *eventbus.EventBus
	dispatcher    *dispatcher.EventDispatcher
	service       *core.ValidationService
	metrics       *metrics.Metrics
	metricsAddr   string
	metricsServer *http.Server
	model         *AppModel
}

func NewApplication(cfg *config.Config, opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cb := opts.Clipboard
	if cb == nil {
		var err error
		cb, err = clipboard.New(cfg.GetClipboard())
		if err != nil {
			return nil, err
		}
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("event bus error", "operation", e.Operation, "error", e.Err)
	})

	disp := dispatcher.NewEventDispatcher(eb)
	m := metrics.New()

	var clientOpts []client.Option
	if profile := cfg.GetValidatorProfile(); profile != "" {
		clientOpts = append(clientOpts, client.WithProfileName(profile))
	}
	validator := client.New(cfg.GetEndpoint(), clientOpts...)

	service := core.NewValidationService(validator, cb, eb,
		core.WithLogger(logger),
		core.WithMetrics(m),
		core.WithCopyFeedback(cfg.GetCopyFeedback()),
	)

	logger.Info("application configured",
		"profile", cfg.ActiveProfile,
		"endpoint", validator.BaseURL(),
		"clipboard", cfg.GetClipboard(),
	)

	return &Application{
		config:      cfg,
		logger:      logger,
		eventBus:    eb,
		dispatcher:  disp,
		service:     service,
		metrics:     m,
		metricsAddr: opts.MetricsAddr,
		model:       NewAppModel(disp, validator.BaseURL()),
	}, nil
}

func (app *Application) Start() error {
	if app.metricsAddr != "" {
		app.metricsServer = app.metrics.Serve(app.metricsAddr, app.logger)
	}
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	app.stopMetrics(ctx)
}

func (app *Application) stopMetrics(ctx context.Context) {
	if app.metricsServer == nil {
		return
	}
	if err := app.metricsServer.Shutdown(ctx); err != nil {
		app.logger.Error("failed to stop metrics server", "error", err)
	}
}
