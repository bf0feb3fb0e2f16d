package design

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette.
type Theme struct {
	Name       string
	Accent     lipgloss.TerminalColor
	Text       lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Surface    lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Danger     lipgloss.TerminalColor
	Warning    lipgloss.TerminalColor
}

// DefaultThemeName is used for unknown theme ids.
const DefaultThemeName = "default"

// ThemeNames lists the selectable themes in menu order.
var ThemeNames = []string{"default", "midnight", "forest", "sunset", "light"}

var themes = map[string]Theme{
	"default": {
		Name:       "default",
		Accent:     lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		Text:       lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"},
		Muted:      lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Background: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F0F"},
		Surface:    lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#262626"},
		Border:     lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#404040"},
		Success:    lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
		Danger:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
		Warning:    lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
	},
	"midnight": {
		Name:       "midnight",
		Accent:     lipgloss.Color("#60A5FA"),
		Text:       lipgloss.Color("#E0E7FF"),
		Muted:      lipgloss.Color("#818CF8"),
		Background: lipgloss.Color("#0B1026"),
		Surface:    lipgloss.Color("#1E1B4B"),
		Border:     lipgloss.Color("#312E81"),
		Success:    lipgloss.Color("#34D399"),
		Danger:     lipgloss.Color("#F87171"),
		Warning:    lipgloss.Color("#FBBF24"),
	},
	"forest": {
		Name:       "forest",
		Accent:     lipgloss.Color("#84CC16"),
		Text:       lipgloss.Color("#ECFCCB"),
		Muted:      lipgloss.Color("#A3B18A"),
		Background: lipgloss.Color("#0F1A12"),
		Surface:    lipgloss.Color("#1A2E1F"),
		Border:     lipgloss.Color("#344E41"),
		Success:    lipgloss.Color("#4ADE80"),
		Danger:     lipgloss.Color("#FB7185"),
		Warning:    lipgloss.Color("#FACC15"),
	},
	"sunset": {
		Name:       "sunset",
		Accent:     lipgloss.Color("#FB923C"),
		Text:       lipgloss.Color("#FFF7ED"),
		Muted:      lipgloss.Color("#FDBA74"),
		Background: lipgloss.Color("#1C0F0A"),
		Surface:    lipgloss.Color("#431407"),
		Border:     lipgloss.Color("#9A3412"),
		Success:    lipgloss.Color("#A3E635"),
		Danger:     lipgloss.Color("#F43F5E"),
		Warning:    lipgloss.Color("#FDE047"),
	},
	"light": {
		Name:       "light",
		Accent:     lipgloss.Color("#2563EB"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#F3F4F6"),
		Border:     lipgloss.Color("#D1D5DB"),
		Success:    lipgloss.Color("#059669"),
		Danger:     lipgloss.Color("#DC2626"),
		Warning:    lipgloss.Color("#B45309"),
	},
}

// LookupTheme returns the named theme, or the default theme and false.
func LookupTheme(name string) (Theme, bool) {
	if t, ok := themes[name]; ok {
		return t, true
	}
	return themes[DefaultThemeName], false
}

// NextThemeName steps through ThemeNames by delta, wrapping around. An
// unknown current name starts from the default.
func NextThemeName(current string, delta int) string {
	idx := 0
	for i, n := range ThemeNames {
		if n == current {
			idx = i
			break
		}
	}
	n := len(ThemeNames)
	return ThemeNames[((idx+delta)%n+n)%n]
}
