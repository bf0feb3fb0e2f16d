package controller

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/editor"
	"trackerctl/internal/host"
	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
)

const keysSubsystem = "Keys"

// fastSteps is how many slider steps shift+arrow moves.
const fastSteps = 10

var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsg is the entry point for all key presses.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeQuitting {
		return m, nil
	}

	// An armed capture takes the next key, whatever it is. ctrl+c still quits.
	if m.Editor.Armed() != editor.FieldNone && msg.String() != "ctrl+c" {
		field := m.Editor.Armed()
		name := capturedKeyName(msg)
		if name == "" {
			// Pasted text is not a key; the capture stays armed.
			return m, nil
		}
		if m.Editor.HandleKey(name) {
			LogDebug(m, keysSubsystem, "Recorded %s for %s", recordedKey(m, field), field)
			return m, m.Saved()
		}
		return m, nil
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return handleHelpOverlayKey(m, msg)
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, msg)
	case model.ModeCompact:
		return handleCompactKey(m, msg)
	}
	return handleMainKey(m, msg)
}

func handleHelpOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit) && msg.String() == "ctrl+c":
		return m, requestQuit(m)
	case key.Matches(msg, m.Keys.Help), key.Matches(msg, m.Keys.Esc), msg.String() == "q":
		m.CurrentAppMode = m.LastAppMode
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit) && msg.String() == "ctrl+c":
		return m, requestQuit(m)
	case key.Matches(msg, m.Keys.ToggleLog), key.Matches(msg, m.Keys.Esc), msg.String() == "q":
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(msg, m.Keys.CopyLogs):
		return m, copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

func handleCompactKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, requestQuit(m)
	case key.Matches(msg, m.Keys.Minimize), key.Matches(msg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMain
	case key.Matches(msg, m.Keys.CopyRGB):
		return m, copyRGB(m)
	case key.Matches(msg, m.Keys.Pin):
		return m, togglePin(m)
	}
	return m, nil
}

func handleMainKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	field := m.Focus.Field()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, requestQuit(m)

	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay

	case key.Matches(msg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()

	case key.Matches(msg, m.Keys.Up):
		m.MoveFocus(-1)
	case key.Matches(msg, m.Keys.Down):
		m.MoveFocus(1)

	case key.Matches(msg, m.Keys.FastLeft):
		return m, adjust(m, field, -fastSteps)
	case key.Matches(msg, m.Keys.FastRight):
		return m, adjust(m, field, fastSteps)
	case key.Matches(msg, m.Keys.Left):
		return m, adjust(m, field, -1)
	case key.Matches(msg, m.Keys.Right):
		return m, adjust(m, field, 1)

	case key.Matches(msg, m.Keys.Activate):
		return m, activate(m)

	case key.Matches(msg, m.Keys.CopyRGB):
		return m, copyRGB(m)
	case key.Matches(msg, m.Keys.Minimize):
		if m.Host != nil {
			m.Host.Send(host.Minimize{})
		}
	case key.Matches(msg, m.Keys.Pin):
		return m, togglePin(m)
	}
	return m, nil
}

// adjust moves the focused slider, or steps through the themes when the
// theme row is focused. Each change is saved at once.
func adjust(m *model.Model, field editor.Field, steps int) tea.Cmd {
	switch {
	case field.IsSlider():
		m.Editor.Slide(field, steps)
		m.Editor.CommitSlider(field)
		return m.Saved()
	case field == editor.FieldTheme:
		delta := 1
		if steps < 0 {
			delta = -1
		}
		m.Editor.SelectTheme(design.NextThemeName(m.Editor.Controls().Theme, delta))
		return m.Saved()
	}
	return nil
}

// activate presses the focused row: arms a key capture, runs a reset, or
// moves to the next theme.
func activate(m *model.Model) tea.Cmd {
	switch m.Focus {
	case model.FocusEnableKey, model.FocusToggleKey:
		m.Editor.Arm(m.Focus.Field())
		return nil
	case model.FocusResetSettings:
		m.Editor.ResetSettings()
		return m.Saved()
	case model.FocusResetKeybinds:
		m.Editor.ResetKeybinds()
		return m.Saved()
	case model.FocusTheme:
		return adjust(m, editor.FieldTheme, 1)
	}
	return nil
}

func togglePin(m *model.Model) tea.Cmd {
	m.Pinned = !m.Pinned
	if m.Host != nil {
		m.Host.Send(host.SetAlwaysOnTop{On: m.Pinned})
	}
	if m.Pinned {
		return m.SetStatusMessage("Always on top", model.StatusBarInfo, 2*time.Second)
	}
	return m.SetStatusMessage("Always on top off", model.StatusBarInfo, 2*time.Second)
}

func copyRGB(m *model.Model) tea.Cmd {
	if !m.Indicators.HasColor {
		return m.SetStatusMessage("No color reported yet", model.StatusBarWarning, 2*time.Second)
	}
	return copyToClipboard(m, m.Indicators.Readout(), "RGB copied to clipboard")
}

func copyToClipboard(m *model.Model, text, done string) tea.Cmd {
	if err := clipboardWriteAll(text); err != nil {
		return m.SetStatusMessage("Clipboard unavailable: "+err.Error(), model.StatusBarError, 3*time.Second)
	}
	return m.SetStatusMessage(done, model.StatusBarSuccess, 2*time.Second)
}

// capturedKeyName turns a key press into the raw name handed to the
// editor. Bubble Tea reports space as " " and modified keys as "ctrl+x";
// the modifier is what gets recorded for the latter. Pastes and other
// multi-rune input yield "".
func capturedKeyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyRunes && (msg.Paste || len(msg.Runes) != 1) {
		return ""
	}
	s := msg.String()
	switch {
	case msg.Type == tea.KeySpace || s == " ":
		return "space"
	case strings.HasPrefix(s, "ctrl+"):
		return "ctrl"
	case strings.HasPrefix(s, "alt+"):
		return strings.TrimPrefix(s, "alt+")
	}
	return s
}

func recordedKey(m *model.Model, f editor.Field) string {
	rec := m.Editor.Record()
	if f == editor.FieldToggleKey {
		return rec.ToggleKey
	}
	return rec.EnableKey
}
