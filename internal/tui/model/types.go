package model

import (
	"time"

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

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeHelpOverlay
	ModeLogOverlay
	ModeCompact
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeCompact:
		return "Compact"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// FocusItem is a focusable row of the settings panel.
type FocusItem int

const (
	FocusRadius FocusItem = iota
	FocusTolerance
	FocusLoopSleep
	FocusEnableKey
	FocusToggleKey
	FocusResetSettings
	FocusResetKeybinds
	FocusTheme
)

// FocusOrder is the top-to-bottom order of the settings rows.
var FocusOrder = []FocusItem{
	FocusRadius,
	FocusTolerance,
	FocusLoopSleep,
	FocusEnableKey,
	FocusToggleKey,
	FocusResetSettings,
	FocusResetKeybinds,
	FocusTheme,
}

// Field maps a focus row to its editor control, or editor.FieldNone for
// the buttons.
func (f FocusItem) Field() editor.Field {
	switch f {
	case FocusRadius:
		return editor.FieldSearchRadius
	case FocusTolerance:
		return editor.FieldTolerance
	case FocusLoopSleep:
		return editor.FieldLoopSleep
	case FocusEnableKey:
		return editor.FieldEnableKey
	case FocusToggleKey:
		return editor.FieldToggleKey
	case FocusTheme:
		return editor.FieldTheme
	default:
		return editor.FieldNone
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	SavedFeedback       = "Saved!"
	SavedFeedbackFor    = time.Second
)

// Sender is the host's request side.
type Sender interface {
	Send(req host.Request)
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Activate  key.Binding
	Esc       key.Binding
	CopyRGB   key.Binding
	Minimize  key.Binding
	Pin       key.Binding
	ToggleLog key.Binding
	CopyLogs  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.FastLeft, k.FastRight},
		{k.Activate, k.CopyRGB, k.Minimize, k.Pin},
		{k.ToggleLog, k.CopyLogs, k.Help, k.Esc, k.Quit},
	}
}

// Model is the state of the TUI.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	Focus           FocusItem
	DebugMode       bool
	Pinned          bool
	QuittingMessage string

	Paths      config.AppPaths
	Editor     *editor.Editor
	Indicators status.Indicators
	Host       Sender

	// UI State & Output
	ActivityLog              []string
	ActivityLogDirty         bool
	LogViewport              viewport.Model
	LogViewportLastWidth     int
	MainLogViewport          viewport.Model
	MainLogViewportLastWidth int
	Keys                     KeyMap
	Help                     help.Model
	StatusBarMessage         string
	StatusBarMessageType     MessageType
	StatusBarClearCancel     chan struct{}

	// Channels
	LogChannel <-chan logging.LogEntry
	HostEvents <-chan host.Event
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Saved shows the optimistic save confirmation.
func (m *Model) Saved() tea.Cmd {
	return m.SetStatusMessage(SavedFeedback, StatusBarSuccess, SavedFeedbackFor)
}

// FocusIndex returns the position of the focused row in FocusOrder.
func (m *Model) FocusIndex() int {
	for i, f := range FocusOrder {
		if f == m.Focus {
			return i
		}
	}
	return 0
}

// MoveFocus moves the focus by delta rows, wrapping around.
func (m *Model) MoveFocus(delta int) {
	n := len(FocusOrder)
	m.Focus = FocusOrder[((m.FocusIndex()+delta)%n+n)%n]
}
