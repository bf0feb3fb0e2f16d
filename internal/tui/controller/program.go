package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/host"
	"trackerctl/internal/tui/model"
	"trackerctl/pkg/logging"
)

// Host is what the TUI needs from the host.
type Host interface {
	model.Sender
	Events() <-chan host.Event
	SetWindow(w host.Window)
}

// NewProgram builds the Bubble Tea program around h and loads config.json
// from configPath into the editor. A missing file is written with the
// defaults right away.
func NewProgram(h Host, cfg model.TUIConfig, configPath string) *tea.Program {
	cfg.Host = h
	cfg.HostEvents = h.Events()
	m := model.InitialModel(cfg)

	// Load errors are already logged; the editor keeps the defaults.
	_ = m.Editor.Load(configPath)

	p := tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
	h.SetWindow(&programWindow{program: p})
	return p
}

// LogDebug logs a debug-level message when the TUI runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}
