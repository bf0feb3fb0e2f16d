package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconDot      = "●"
	IconPin      = "📌"
	IconScroll   = "📜"
	IconGear     = "⚙"
	IconKeyboard = "⌨"
	IconPalette  = "🎨"
	IconWarning  = "⚠"
	IconRecord   = "⏺"
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide icons get two trailing spaces so the next character stays visible.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
