package editor

import (
	"strconv"

	"trackerctl/internal/config"
)

// Field names one bound control.
type Field int

const (
	FieldNone Field = iota
	FieldSearchRadius
	FieldTolerance
	FieldLoopSleep
	FieldEnableKey
	FieldToggleKey
	FieldTheme
)

func (f Field) String() string {
	switch f {
	case FieldSearchRadius:
		return "Search radius"
	case FieldTolerance:
		return "Tolerance"
	case FieldLoopSleep:
		return "Loop delay"
	case FieldEnableKey:
		return "Enable key"
	case FieldToggleKey:
		return "Toggle key"
	case FieldTheme:
		return "Theme"
	default:
		return "None"
	}
}

// IsSlider reports whether f is one of the three sliders.
func (f Field) IsSlider() bool {
	return f == FieldSearchRadius || f == FieldTolerance || f == FieldLoopSleep
}

// IsKey reports whether f is a key binding control.
func (f Field) IsKey() bool {
	return f == FieldEnableKey || f == FieldToggleKey
}

// Slider is a bounded integer control. Values are clamped to [Min, Max]
// and snapped to Min+k*Step.
type Slider struct {
	Min, Max, Step int
	Unit           string
	value          int
}

// Slider ranges.
var (
	RadiusRange    = Slider{Min: 5, Max: 500, Step: 5, Unit: "px"}
	ToleranceRange = Slider{Min: 0, Max: 255, Step: 1}
	LoopSleepRange = Slider{Min: 0, Max: 100, Step: 1, Unit: "ms"}
)

// Value is the slider position.
func (s Slider) Value() int { return s.value }

// Set moves the slider to the closest allowed position to v.
func (s *Slider) Set(v int) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Step > 1 {
		offset := v - s.Min
		v = s.Min + (offset+s.Step/2)/s.Step*s.Step
		if v > s.Max {
			v -= s.Step
		}
	}
	s.value = v
}

// Nudge moves the slider by steps positions (negative moves down).
func (s *Slider) Nudge(steps int) {
	s.Set(s.value + steps*max(s.Step, 1))
}

// Label is the value shown next to the slider.
func (s Slider) Label() string {
	return strconv.Itoa(s.value) + s.Unit
}

// Fraction is the slider position in [0, 1].
func (s Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.value-s.Min) / float64(s.Max-s.Min)
}

// KeyControl shows a key binding and whether it is recording.
type KeyControl struct {
	Value     string
	Recording bool
}

// RecordingPrompt replaces the binding while a capture is armed.
const RecordingPrompt = "Press key..."

// Display is the text shown in the control.
func (k KeyControl) Display() string {
	if k.Recording {
		return RecordingPrompt
	}
	return k.Value
}

// Controls are the UI-side copies of the editable values.
type Controls struct {
	Radius    Slider
	Tolerance Slider
	LoopSleep Slider
	EnableKey KeyControl
	ToggleKey KeyControl
	Theme     string
}

func newControls() Controls {
	return Controls{
		Radius:    RadiusRange,
		Tolerance: ToleranceRange,
		LoopSleep: LoopSleepRange,
	}
}

// render writes rec into the controls, keeping recording flags.
func (c *Controls) render(rec config.Record) {
	c.Radius.Set(rec.SearchRadius)
	c.Tolerance.Set(rec.Tolerance)
	c.LoopSleep.Set(rec.LoopSleepMs)
	c.EnableKey.Value = rec.EnableKey
	c.ToggleKey.Value = rec.ToggleKey
	c.Theme = rec.Theme
}

func (c *Controls) slider(f Field) *Slider {
	switch f {
	case FieldSearchRadius:
		return &c.Radius
	case FieldTolerance:
		return &c.Tolerance
	case FieldLoopSleep:
		return &c.LoopSleep
	}
	return nil
}

func (c *Controls) key(f Field) *KeyControl {
	switch f {
	case FieldEnableKey:
		return &c.EnableKey
	case FieldToggleKey:
		return &c.ToggleKey
	}
	return nil
}
