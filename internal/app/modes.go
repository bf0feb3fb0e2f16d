package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"trackerctl/internal/config"
	"trackerctl/internal/editor"
	"trackerctl/internal/host"
	"trackerctl/internal/status"
	"trackerctl/internal/tui/controller"
	"trackerctl/internal/tui/model"
	"trackerctl/pkg/logging"
)

// For mocking in tests
var notifySignals = func(c chan<- os.Signal) {
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
}

// runCLIMode executes the non-interactive command line mode: the backend
// runs and its status is logged until Ctrl+C.
func runCLIMode(ctx context.Context, cfg *Config, h hostRunner) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ed := editor.New(editor.PersistFunc(func(rec config.Record) {
		h.Send(host.UpdateConfig{Record: rec})
	}))
	// Load errors are already logged; the defaults stay.
	_ = ed.Load(cfg.Paths.ConfigPath)

	hostErr := make(chan error, 1)
	go func() { hostErr <- h.Run(ctx) }()

	sigChan := make(chan os.Signal, 1)
	notifySignals(sigChan)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logging.Info("CLI", "--- Stopping ColorTracker ---")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info("CLI", "Backend %s started. Press Ctrl+C to stop it and exit.", cfg.Paths.BackendPath)

	indicators := status.NewIndicators()
	for ev := range h.Events() {
		switch e := ev.(type) {
		case host.StatusLine:
			if indicators.ApplyLine(e.Line) {
				logging.Info("Status", "ENABLED=%s COLOR=%s", indicators.EnabledText, indicators.Readout())
			}
		case host.ConfigChanged:
			ed.ApplyExternal(e.Record)
			logging.Info("CLI", "config.json changed on disk")
		}
	}

	return <-hostErr
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, level logging.LogLevel, h hostRunner) error {
	logging.Info("CLI", "Starting TUI mode...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(h, model.TUIConfig{
		DebugMode:  cfg.Debug,
		Paths:      cfg.Paths,
		LogChannel: logChan,
	}, cfg.Paths.ConfigPath)

	hostErr := make(chan error, 1)
	go func() { hostErr <- h.Run(ctx) }()

	// Run the TUI until user exits
	_, err := p.Run()
	cancel()
	runErr := <-hostErr
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return runErr
}
