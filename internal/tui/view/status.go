package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/status"
	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
)

// enabledText renders the ENABLED indicator: green for ON, red otherwise.
func enabledText(s design.Styles, in status.Indicators) string {
	if in.EnabledText == status.Placeholder {
		return s.Subtle.Render(status.Placeholder)
	}
	if in.Enabled {
		return s.On.Render(in.EnabledText)
	}
	return s.Off.Render(in.EnabledText)
}

// swatch paints the detected color, or an empty box when the components
// are not usable numbers.
func swatch(s design.Styles, in status.Indicators) string {
	hex := in.Hex()
	if hex == "" {
		return s.SliderTrack.Render("[" + strings.Repeat(" ", design.SwatchWidth-2) + "]")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", design.SwatchWidth))
}

func renderStatusPanel(m *model.Model, s design.Styles, width int) string {
	in := m.Indicators
	rows := []string{
		s.PanelTitle.Render(IconText(IconDot, "Status")),
		s.Label.Render("Tracking") + enabledText(s, in),
		s.Label.Render("Color") + swatch(s, in),
		s.Label.Render("RGB") + s.Value.Render(in.Readout()),
	}
	return s.Panel.Width(panelInner(s, width)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderCompact is the minimized window: one status line.
func renderCompact(m *model.Model, s design.Styles, width int) string {
	in := m.Indicators
	parts := []string{
		s.Title.Render("ColorTracker"),
		enabledText(s, in),
		swatch(s, in),
		s.Value.Render(in.Readout()),
	}
	if m.Pinned {
		parts = append(parts, IconPin)
	}
	parts = append(parts, s.Subtle.Render("(m to restore)"))
	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(line)
}
