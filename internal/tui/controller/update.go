package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/host"
	"trackerctl/internal/tui/model"
	"trackerctl/internal/tui/view"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// quitGrace is how long the UI waits for the host to confirm a close.
const quitGrace = 3 * time.Second

// mainControllerDispatch is the central message routing function for the TUI application.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case model.NewLogEntryMsg, model.HostEventMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		handleWindowSizeMsg(m, msg)

	case model.HostEventMsg:
		cmds = append(cmds, handleHostEvent(m, msg.Event), model.ListenForHostEventsCmd(m.HostEvents))

	case model.HostStoppedMsg:
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit

	case model.WindowMinimizeMsg:
		if m.CurrentAppMode == model.ModeCompact {
			m.CurrentAppMode = model.ModeMain
		} else {
			m.LastAppMode = m.CurrentAppMode
			m.CurrentAppMode = model.ModeCompact
		}
		return m, nil

	case model.WindowPinMsg:
		m.Pinned = msg.On
		return m, nil

	case model.WindowCloseMsg, model.QuitTimeoutMsg:
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else {
			m.MainLogViewport, cmd = m.MainLogViewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	refreshLogViewports(m)
	return m, tea.Batch(cmds...)
}

// handleWindowSizeMsg stores the terminal size and sizes the log
// viewports. The first size moves the UI out of ModeInitializing.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height

	m.LogViewport.Width = max(msg.Width-8, 0)
	m.LogViewport.Height = max(msg.Height-8, 0)
	m.MainLogViewport.Width = max(msg.Width-6, 0)
	m.MainLogViewport.Height = max(msg.Height-26, 1)

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMain
	}
}

// refreshLogViewports re-renders the log viewports when the log or their
// width changed.
func refreshLogViewports(m *model.Model) {
	overlayWidthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	panelWidthChanged := m.MainLogViewportLastWidth != m.MainLogViewport.Width
	if !m.ActivityLogDirty && !overlayWidthChanged && !panelWidthChanged {
		return
	}
	styles := view.LogStyles(m)

	if m.ActivityLogDirty || overlayWidthChanged {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(styles, m.ActivityLog, m.LogViewport.Width))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
	}
	if m.ActivityLogDirty || panelWidthChanged {
		m.MainLogViewport.SetContent(view.PrepareLogContent(styles, m.ActivityLog, m.MainLogViewport.Width))
		m.MainLogViewport.GotoBottom()
		m.MainLogViewportLastWidth = m.MainLogViewport.Width
	}
	m.ActivityLogDirty = false
}

// handleHostEvent applies one host push.
func handleHostEvent(m *model.Model, ev host.Event) tea.Cmd {
	switch e := ev.(type) {
	case host.StatusLine:
		m.Indicators.ApplyLine(e.Line)
	case host.ConfigChanged:
		m.Editor.ApplyExternal(e.Record)
		return m.SetStatusMessage("config.json changed on disk, reloaded", model.StatusBarInfo, 3*time.Second)
	}
	return nil
}

// handleNewLogEntry adds a log entry to the activity log.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	m.AppendLogEntry(msg.Entry)
	return m
}

// requestQuit asks the host to stop the backend and close the window. The
// program quits when the host confirms, or after quitGrace regardless.
func requestQuit(m *model.Model) tea.Cmd {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Stopping ColorTracker..."
	if m.Host == nil {
		return tea.Quit
	}
	m.Host.Send(host.Close{})
	return tea.Tick(quitGrace, func(time.Time) tea.Msg { return model.QuitTimeoutMsg{} })
}
