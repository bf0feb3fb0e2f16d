package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units in terminal cells.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Component dimensions
	MinPanelWidth  = 36
	SliderWidth    = 24
	SwatchWidth    = 6
	LogPanelHeight = 8
)

// Styles are the component styles derived from one Theme.
type Styles struct {
	App           lipgloss.Style
	Header        lipgloss.Style
	Title         lipgloss.Style
	Subtle        lipgloss.Style
	Panel         lipgloss.Style
	PanelTitle    lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Focused       lipgloss.Style
	Recording     lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	SliderFill    lipgloss.Style
	SliderTrack   lipgloss.Style
	On            lipgloss.Style
	Off           lipgloss.Style
	Hint          lipgloss.Style
	Overlay       lipgloss.Style

	StatusBar        lipgloss.Style
	StatusBarSuccess lipgloss.Style
	StatusBarError   lipgloss.Style
	StatusBarWarning lipgloss.Style
	StatusBarInfo    lipgloss.Style

	LogInfo  lipgloss.Style
	LogWarn  lipgloss.Style
	LogError lipgloss.Style
	LogDebug lipgloss.Style
}

// NewStyles builds the component styles for t.
func NewStyles(t Theme) Styles {
	s := Styles{}

	s.App = lipgloss.NewStyle().Padding(0, SpaceXS)
	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, SpaceSM)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	s.Subtle = lipgloss.NewStyle().Foreground(t.Muted)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceXS)
	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginBottom(SpaceXS)

	s.Label = lipgloss.NewStyle().Foreground(t.Muted).Width(16)
	s.Value = lipgloss.NewStyle().Foreground(t.Text)
	s.Focused = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	s.Recording = lipgloss.NewStyle().Foreground(t.Warning).Bold(true).Blink(true)

	s.Button = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, SpaceXS)
	s.ButtonFocused = s.Button.
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	s.SliderFill = lipgloss.NewStyle().Foreground(t.Accent)
	s.SliderTrack = lipgloss.NewStyle().Foreground(t.Border)

	s.On = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	s.Off = lipgloss.NewStyle().Foreground(t.Danger).Bold(true)
	s.Hint = lipgloss.NewStyle().Foreground(t.Warning).Italic(true)

	s.Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, SpaceXS)
	s.StatusBarSuccess = s.StatusBar.Foreground(t.Background).Background(t.Success)
	s.StatusBarError = s.StatusBar.Foreground(t.Background).Background(t.Danger)
	s.StatusBarWarning = s.StatusBar.Foreground(t.Background).Background(t.Warning)
	s.StatusBarInfo = s.StatusBar.Foreground(t.Background).Background(t.Accent)

	s.LogInfo = lipgloss.NewStyle().Foreground(t.Text)
	s.LogWarn = lipgloss.NewStyle().Foreground(t.Warning)
	s.LogError = lipgloss.NewStyle().Foreground(t.Danger)
	s.LogDebug = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)

	return s
}
