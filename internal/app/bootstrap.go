package app

import (
	"context"
	"os"

	"trackerctl/internal/config"
	"trackerctl/internal/host"
	"trackerctl/pkg/logging"
)

// hostRunner is the part of *host.Host the run modes use.
type hostRunner interface {
	Run(ctx context.Context) error
	Send(req host.Request)
	Events() <-chan host.Event
	SetWindow(w host.Window)
}

// For mocking in tests
var newHost = func(paths config.AppPaths, opts host.Options) hostRunner {
	return host.New(paths, opts)
}

// Application is the main application structure that bootstraps and runs trackerctl
type Application struct {
	config   *Config
	logLevel logging.LogLevel
	host     hostRunner
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, os.Stdout)

	if err := cfg.Resolve(); err != nil {
		logging.Error("Bootstrap", err, "Failed to prepare trackerctl")
		return nil, err
	}
	settings := *cfg.Settings
	paths := cfg.Paths

	appLogLevel = logging.ParseLevel(settings.LogLevel)
	logging.InitForCLI(appLogLevel, os.Stdout)
	logging.Debug("Bootstrap", "Mode %s, config %s, backend %s", paths.Mode, paths.ConfigPath, paths.BackendPath)

	return &Application{
		config:   cfg,
		logLevel: appLogLevel,
		host:     newHost(paths, host.Options{Watch: settings.WatchEnabled()}),
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the application in non-interactive CLI mode
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.host)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.logLevel, a.host)
}
