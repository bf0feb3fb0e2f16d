package view

import (
	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
)

// stylesFor returns the styles of the theme selected in the editor. Unknown
// themes render with the default palette.
func stylesFor(m *model.Model) design.Styles {
	t, _ := design.LookupTheme(m.Editor.Controls().Theme)
	return design.NewStyles(t)
}

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	s := stylesFor(m)

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return s.Subtle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return s.Subtle.Render("Initializing... (waiting for window size)")
		}
		return s.Subtle.Render("Initializing...")
	case model.ModeCompact:
		return renderCompact(m, s, m.Width)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m, s, m.Width, m.Height)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, s, m.Width, m.Height)
	}

	width := m.Width - s.App.GetHorizontalFrameSize()
	header := renderHeader(m, s, width)
	statusBar := renderStatusBar(m, s, width)

	panels := renderPanels(m, s, width)

	used := lipgloss.Height(header) + lipgloss.Height(panels) + lipgloss.Height(statusBar)
	logHeight := m.Height - used
	logPanel := renderLogPanel(m, s, width, logHeight)

	body := lipgloss.JoinVertical(lipgloss.Left, header, panels)
	if logPanel != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, logPanel)
	}
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, statusBar))
}

// renderPanels lays the status and settings panels side by side when the
// terminal is wide enough, stacked otherwise.
func renderPanels(m *model.Model, s design.Styles, width int) string {
	if width >= 2*design.MinPanelWidth+2 {
		left := width / 3
		right := width - left
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderStatusPanel(m, s, left),
			renderSettingsPanel(m, s, right),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderStatusPanel(m, s, width),
		renderSettingsPanel(m, s, width),
	)
}

// panelInner is the Width to give a bordered panel so it occupies w cells.
func panelInner(s design.Styles, w int) int {
	return max(w-s.Panel.GetHorizontalBorderSize(), 0)
}
