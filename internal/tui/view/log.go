package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
	"trackerctl/internal/tui/utils"
)

// renderLogOverlay shows the full activity log.
func renderLogOverlay(m *model.Model, s design.Styles, width, height int) string {
	title := s.PanelTitle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return s.Overlay.
		Width(max(width-s.Overlay.GetHorizontalFrameSize(), 0)).
		Height(max(height-s.Overlay.GetVerticalFrameSize(), 0)).
		Render(content)
}

// renderLogPanel renders the tail of the activity log below the panels.
func renderLogPanel(m *model.Model, s design.Styles, width, height int) string {
	if height < 3 {
		return ""
	}
	title := s.PanelTitle.UnsetMarginBottom().Render(SafeIcon(IconScroll) + "Activity")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.MainLogViewport.View())
	return s.Panel.
		Width(panelInner(s, width)).
		MaxHeight(height).
		Render(content)
}

// PrepareLogContent styles each line by its level marker and cuts it to
// maxWidth cells so the viewport never wraps.
func PrepareLogContent(s design.Styles, lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, raw := range lines {
		if maxWidth > 0 {
			raw = utils.TruncateString(raw, maxWidth)
		}
		out[i] = styleLogLine(s, raw)
	}
	return strings.Join(out, "\n")
}

// LogStyles returns the styles used for the log for the model's theme.
func LogStyles(m *model.Model) design.Styles {
	return stylesFor(m)
}

func styleLogLine(s design.Styles, l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return s.LogError.Render(l)
	case strings.Contains(l, "[WARN]"):
		return s.LogWarn.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return s.LogDebug.Render(l)
	default:
		return s.LogInfo.Render(l)
	}
}
