package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
	"trackerctl/internal/tui/utils"
)

func renderHeader(m *model.Model, s design.Styles, width int) string {
	title := s.Title.Render("ColorTracker")
	right := s.Subtle.Render(fmt.Sprintf("%s mode", m.Paths.Mode))
	if m.Pinned {
		right = IconText(IconPin, "on top") + "  " + right
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(right) - s.Header.GetHorizontalFrameSize()
	if gap < 1 {
		gap = 1
	}
	line := title + lipgloss.NewStyle().Width(gap).Render("") + right

	path := s.Subtle.Render(utils.TruncateString(m.Paths.ConfigPath, max(width-2, 0)))
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Width(width).Render(line),
		" "+path,
	)
}
