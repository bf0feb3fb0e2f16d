package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/config"
	"trackerctl/internal/editor"
	"trackerctl/internal/host"
	"trackerctl/internal/status"
	"trackerctl/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous control"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next control"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "decrease / previous theme"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "increase / next theme"),
		),
		FastLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "decrease ×10"),
		),
		FastRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "increase ×10"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "record key / press button"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		CopyRGB: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy RGB"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Pin: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "always on top"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// TUIConfig carries what the model needs from the application.
type TUIConfig struct {
	DebugMode  bool
	Paths      config.AppPaths
	Host       Sender
	HostEvents <-chan host.Event
	LogChannel <-chan logging.LogEntry
}

// InitialModel constructs the initial model. The editor starts at the
// defaults; the caller loads config.json into it.
func InitialModel(cfg TUIConfig) *Model {
	m := &Model{
		CurrentAppMode:   ModeInitializing,
		Focus:            FocusRadius,
		DebugMode:        cfg.DebugMode,
		Paths:            cfg.Paths,
		Host:             cfg.Host,
		Indicators:       status.NewIndicators(),
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		MainLogViewport:  viewport.New(0, 0),
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
		HostEvents:       cfg.HostEvents,
	}
	m.Editor = editor.New(editor.PersistFunc(func(rec config.Record) {
		if m.Host != nil {
			m.Host.Send(host.UpdateConfig{Record: rec})
		}
	}))
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForLogEntriesCmd(m.LogChannel),
		ListenForHostEventsCmd(m.HostEvents),
	)
}
