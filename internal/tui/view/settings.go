package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackerctl/internal/config"
	"trackerctl/internal/editor"
	"trackerctl/internal/tui/design"
	"trackerctl/internal/tui/model"
)

// sliderBar draws a fixed-width bar filled to the slider's position.
func sliderBar(s design.Styles, sl editor.Slider) string {
	filled := int(sl.Fraction()*float64(design.SliderWidth) + 0.5)
	filled = min(max(filled, 0), design.SliderWidth)
	return s.SliderFill.Render(strings.Repeat("━", filled)) +
		s.SliderTrack.Render(strings.Repeat("─", design.SliderWidth-filled))
}

func cursor(m *model.Model, s design.Styles, f model.FocusItem) string {
	if m.Focus == f {
		return s.Focused.Render("› ")
	}
	return "  "
}

func label(m *model.Model, s design.Styles, f model.FocusItem, text string) string {
	if m.Focus == f {
		return s.Focused.Width(s.Label.GetWidth()).Render(text)
	}
	return s.Label.Render(text)
}

func sliderRow(m *model.Model, s design.Styles, f model.FocusItem, text string, sl editor.Slider) string {
	return cursor(m, s, f) + label(m, s, f, text) + sliderBar(s, sl) + " " + s.Value.Render(sl.Label())
}

func keyRow(m *model.Model, s design.Styles, f model.FocusItem, text string, kc editor.KeyControl) string {
	var value string
	switch {
	case kc.Recording:
		value = s.Recording.Render(IconText(IconRecord, kc.Display()))
	default:
		value = s.Value.Render("[" + kc.Display() + "]")
		if !config.IsKnownKey(kc.Value) {
			value += " " + s.Hint.Render(IconText(IconWarning, "not a key the tracker knows"))
		}
	}
	return cursor(m, s, f) + label(m, s, f, text) + value
}

func buttonRow(m *model.Model, s design.Styles, f model.FocusItem, text string) string {
	style := s.Button
	if m.Focus == f {
		style = s.ButtonFocused
	}
	return cursor(m, s, f) + style.Render(text)
}

func themeRow(m *model.Model, s design.Styles, theme string) string {
	name := theme
	if _, ok := design.LookupTheme(theme); !ok {
		name = fmt.Sprintf("%s (shown as %s)", theme, design.DefaultThemeName)
	}
	return cursor(m, s, model.FocusTheme) +
		label(m, s, model.FocusTheme, "Theme") +
		s.Value.Render("‹ "+name+" ›")
}

func renderSettingsPanel(m *model.Model, s design.Styles, width int) string {
	c := m.Editor.Controls()
	rows := []string{
		s.PanelTitle.Render(IconText(IconGear, "Settings")),
		sliderRow(m, s, model.FocusRadius, "Search radius", c.Radius),
		sliderRow(m, s, model.FocusTolerance, "Tolerance", c.Tolerance),
		sliderRow(m, s, model.FocusLoopSleep, "Loop delay", c.LoopSleep),
		"",
		s.PanelTitle.Render(IconText(IconKeyboard, "Keybinds")),
		keyRow(m, s, model.FocusEnableKey, "Enable key", c.EnableKey),
		keyRow(m, s, model.FocusToggleKey, "Toggle key", c.ToggleKey),
		"",
		buttonRow(m, s, model.FocusResetSettings, "Reset settings") + "  " +
			buttonRow(m, s, model.FocusResetKeybinds, "Reset keybinds"),
		"",
		themeRow(m, s, c.Theme),
	}
	return s.Panel.Width(panelInner(s, width)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
