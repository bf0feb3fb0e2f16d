// Package host owns the backend process and config.json on behalf of the
// UI.
//
// The UI talks to the host through one-way Requests and listens for Events.
// The host runs a single loop that handles each request and each supervisor
// update to completion before taking the next one, so config writes happen
// in the order they were sent.
package host

import (
	"context"
	"sync"

	"trackerctl/internal/config"
	"trackerctl/internal/protocol"
	"trackerctl/internal/supervisor"
	"trackerctl/pkg/logging"
)

const subsystem = "Host"

const (
	eventBufferSize   = 256
	requestBufferSize = 64
)

// Process is the part of the supervisor the host drives.
type Process interface {
	Start(ctx context.Context) error
	Stop() error
}

// For mocking in tests
var newProcess = func(path, dir string, onUpdate supervisor.UpdateFunc) Process {
	return supervisor.New(path, dir, onUpdate)
}

// Options tune a Host.
type Options struct {
	// Watch enables refreshing the UI when config.json is edited outside
	// trackerctl.
	Watch bool
}

// Host connects the UI, the backend process and the config file.
type Host struct {
	paths config.AppPaths
	opts  Options
	proc  Process

	requests    chan Request
	events      chan Event
	updates     chan supervisor.Update
	diskChanges chan config.Record
	quit        chan struct{}

	windowMu sync.RWMutex
	window   Window

	// Owned by the loop goroutine.
	lastWritten config.Record
	hasWritten  bool
}

// New builds a host for the resolved paths. The backend is not started
// until Run.
func New(paths config.AppPaths, opts Options) *Host {
	h := &Host{
		paths:       paths,
		opts:        opts,
		requests:    make(chan Request, requestBufferSize),
		events:      make(chan Event, eventBufferSize),
		updates:     make(chan supervisor.Update),
		diskChanges: make(chan config.Record),
		quit:        make(chan struct{}),
		window:      headlessWindow{},
	}
	h.proc = newProcess(paths.BackendPath, paths.ConfigDir, h.forwardUpdate)
	return h
}

// Paths answers the UI's paths query.
func (h *Host) Paths() config.AppPaths {
	return h.paths
}

// SetWindow attaches the UI's window. Until then window requests are
// logged and ignored.
func (h *Host) SetWindow(w Window) {
	h.windowMu.Lock()
	defer h.windowMu.Unlock()
	if w == nil {
		w = headlessWindow{}
	}
	h.window = w
}

func (h *Host) currentWindow() Window {
	h.windowMu.RLock()
	defer h.windowMu.RUnlock()
	return h.window
}

// Send enqueues a request and returns without waiting for it to be
// handled. Requests sent after the host stopped are dropped.
func (h *Host) Send(req Request) {
	select {
	case h.requests <- req:
	case <-h.quit:
		logging.Debug(subsystem, "Dropping %T: host stopped", req)
	}
}

// Events returns the push channel. It is closed when Run returns.
func (h *Host) Events() <-chan Event {
	return h.events
}

// Done is closed once Run has returned.
func (h *Host) Done() <-chan struct{} {
	return h.quit
}

// forwardUpdate runs on the supervisor's goroutines and hands the update
// to the loop.
func (h *Host) forwardUpdate(u supervisor.Update) {
	select {
	case h.updates <- u:
	case <-h.quit:
	}
}

// Run launches the backend and serves requests until ctx is done or a
// Close request arrives. The backend is always stopped before Run returns.
// A backend that cannot be spawned is logged and the host keeps serving.
// Run must be called at most once.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	closeRequested := false
	defer func() {
		cancel()
		// quit unblocks the supervisor's readers so Stop can reap the child.
		close(h.quit)
		if err := h.proc.Stop(); err != nil {
			logging.Error(subsystem, err, "Failed to stop backend")
		}
		close(h.events)
		if closeRequested {
			h.currentWindow().Close()
		}
	}()

	logging.Info(subsystem, "Launching backend %s (cwd %s)", h.paths.BackendPath, h.paths.ConfigDir)
	if err := h.proc.Start(ctx); err != nil {
		logging.Error(subsystem, err, "Failed to launch backend")
	}

	if h.opts.Watch {
		h.startWatcher(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			logging.Info(subsystem, "Shutting down")
			return nil
		case req := <-h.requests:
			if h.handleRequest(req) {
				closeRequested = true
				return nil
			}
		case u := <-h.updates:
			h.handleUpdate(u)
		case rec := <-h.diskChanges:
			h.handleDiskChange(rec)
		}
	}
}

func (h *Host) startWatcher(ctx context.Context) {
	w, err := config.NewWatcher(h.paths.ConfigPath, func(rec config.Record) {
		select {
		case h.diskChanges <- rec:
		case <-h.quit:
		}
	})
	if err != nil {
		logging.Warn(subsystem, "Not watching %s: %v", h.paths.ConfigPath, err)
		return
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			logging.Error(subsystem, err, "Config watcher stopped")
		}
	}()
}

// handleRequest reports whether the host should stop. Close is finished
// by Run's exit path, which stops the backend before closing the window.
func (h *Host) handleRequest(req Request) bool {
	switch r := req.(type) {
	case UpdateConfig:
		if err := config.Save(h.paths.ConfigPath, r.Record); err != nil {
			logging.Error(subsystem, err, "Failed to write %s", h.paths.ConfigPath)
			return false
		}
		h.lastWritten = r.Record
		h.hasWritten = true
		logging.Debug(subsystem, "Wrote %s", h.paths.ConfigPath)
	case Minimize:
		h.currentWindow().Minimize()
	case SetAlwaysOnTop:
		logging.Info(subsystem, "Always on top: %t", r.On)
		h.currentWindow().SetAlwaysOnTop(r.On)
	case Close:
		logging.Info(subsystem, "Close requested")
		return true
	default:
		logging.Warn(subsystem, "Ignoring unknown request %T", req)
	}
	return false
}

func (h *Host) handleUpdate(u supervisor.Update) {
	switch u.Kind {
	case supervisor.Started:
		logging.Info(subsystem, "Backend started (PID %d)", u.PID)
	case supervisor.StdoutLine:
		if protocol.IsStatusLine(u.Line) {
			logging.Debug("Backend", "%s", u.Line)
			h.emit(StatusLine{Line: u.Line})
			return
		}
		logging.Info("Backend", "%s", u.Line)
	case supervisor.StderrLine:
		logging.Error("Backend", nil, "%s", u.Line)
	case supervisor.Exited:
		switch {
		case u.Stopped:
			logging.Info(subsystem, "Backend (PID %d) stopped", u.PID)
		case u.Err != nil:
			logging.Error(subsystem, u.Err, "Backend (PID %d) exited with code %d", u.PID, u.ExitCode)
		default:
			logging.Info(subsystem, "Backend (PID %d) exited with code %d", u.PID, u.ExitCode)
		}
	}
}

func (h *Host) handleDiskChange(rec config.Record) {
	if h.hasWritten && rec.Equal(h.lastWritten) {
		return
	}
	logging.Info(subsystem, "%s changed on disk", h.paths.ConfigPath)
	h.emit(ConfigChanged{Record: rec})
}

// emit pushes without blocking; a UI that falls behind loses events.
func (h *Host) emit(ev Event) {
	select {
	case h.events <- ev:
	default:
		logging.Debug(subsystem, "Event buffer full, dropping %T", ev)
	}
}
