package view

import (
	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
)

func renderHelpOverlay(m *model.Model, s design.Styles, width, height int) string {
	h := m.Help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.PanelTitle.Render("Keyboard shortcuts"),
		h.View(m.Keys),
		"",
		s.Subtle.Render("While a key binding shows \"Press key...\" the next key is recorded."),
	)
	box := s.Overlay.Render(content)
	return lipgloss.Place(max(width, lipgloss.Width(box)), max(height, lipgloss.Height(box)),
		lipgloss.Center, lipgloss.Center, box)
}
