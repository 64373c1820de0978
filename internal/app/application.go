package app

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/completion"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/markdown"
	"github.com/Rorical/RoriChat/internal/observability"
	"github.com/Rorical/RoriChat/internal/request"
)

// Application manages the complete application lifecycle
type Application struct {
	settings  config.Settings
	store     *config.Store
	eventBus  *eventbus.EventBus
	requests  *request.Manager
	model     *AppModel
	logCloser io.Closer
	logger    *slog.Logger
}

func NewApplication() (*Application, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logCloser, err := observability.Init(settings.LogFile, slog.LevelInfo)
	if err != nil {
		return nil, err
	}
	logger := observability.WithFields("component", "app")

	store, err := config.DefaultStore()
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	// A broken config file is reported, not fatal: the session starts from defaults.
	cfg, loadErr := store.Load()
	if loadErr != nil {
		logger.Warn("using default config", "path", store.Path(), "error", loadErr)
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Debug("event bus", "operation", e.Operation, "error", e.Err)
	})

	client := completion.NewOpenAIClient(settings.BaseURL, settings.Timeout)
	requests := request.NewManager(client, eb, settings.Timeout, observability.WithFields("component", "request"))

	ctrl := core.NewController(cfg,
		core.WithFormatter(markdown.NewGlamourFormatter(settings.MarkdownStyle)),
		core.WithModalPolicy(settings.ModalPolicy),
	)
	if loadErr != nil {
		ctrl.HandleEvent(core.Notice{Text: "Config file unreadable; using defaults"})
	}

	effects := NewEffectRunner(requests, store, observability.WithFields("component", "effects"))
	model := NewAppModel(ctrl, dispatcher.New(dispatcher.DefaultKeyMap()), eb, effects)

	logger.Info("application created",
		"model", cfg.Model,
		"has_token", cfg.HasCredential(),
		"base_url", settings.BaseURL,
		"modal_policy", settings.ModalPolicy,
	)

	return &Application{
		settings:  settings,
		store:     store,
		eventBus:  eb,
		requests:  requests,
		model:     model,
		logCloser: logCloser,
		logger:    logger,
	}, nil
}

func (app *Application) Start() error {
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Stop cancels any request still running and releases resources. Safe to
// call after Start returns for any reason.
func (app *Application) Stop() {
	app.requests.Close()
	app.eventBus.Close()
	app.requests.Wait()
	app.logger.Info("application stopped")
	app.logCloser.Close()
}
