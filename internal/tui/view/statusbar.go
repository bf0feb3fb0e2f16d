package view

import (
	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
	"trackerctl/internal/tui/utils"
)

// renderStatusBar shows the current status message or, when there is
// none, the short key help.
func renderStatusBar(m *model.Model, s design.Styles, width int) string {
	if m.StatusBarMessage == "" {
		h := m.Help
		h.ShowAll = false
		h.Width = width
		return s.StatusBar.Width(width).Render(h.View(m.Keys))
	}

	style := s.StatusBarInfo
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = s.StatusBarSuccess
	case model.StatusBarError:
		style = s.StatusBarError
	case model.StatusBarWarning:
		style = s.StatusBarWarning
	}
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	return style.Width(width).Render(utils.TruncateString(m.StatusBarMessage, inner))
}
