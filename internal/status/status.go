// Package status interprets the backend's status lines and keeps the
// indicator state shown to the user.
package status

import (
	"strconv"
	"strings"

	"trackerctl/internal/protocol"
)

// Key names carried by status lines that change an indicator.
const (
	KeyEnabled = "ENABLED"
	KeyColor   = "COLOR"
)

// EventKind identifies which indicator an Event updates.
type EventKind int

const (
	EnabledChanged EventKind = iota + 1
	ColorChanged
)

// Event is one interpreted status line. Values are kept as the backend
// sent them.
type Event struct {
	Kind EventKind

	// EnabledChanged
	Value   string
	Enabled bool

	// ColorChanged; missing components are empty
	R, G, B string
}

// Interpret turns a status line into an Event. ok is false for anything
// that must not change the indicators: lines without the status prefix,
// lines with fewer than two segments, ENABLED without a value segment,
// COLOR with an empty value and every other key.
func Interpret(line string) (ev Event, ok bool) {
	line = strings.TrimSpace(line)
	if !protocol.IsStatusLine(line) {
		return Event{}, false
	}
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return Event{}, false
	}
	key := parts[1]
	hasValue := len(parts) > 2
	var value string
	if hasValue {
		value = parts[2]
	}

	switch key {
	case KeyEnabled:
		if !hasValue {
			return Event{}, false
		}
		return Event{Kind: EnabledChanged, Value: value, Enabled: value == "ON"}, true
	case KeyColor:
		if value == "" {
			return Event{}, false
		}
		rgb := strings.Split(value, ",")
		for len(rgb) < 3 {
			rgb = append(rgb, "")
		}
		return Event{Kind: ColorChanged, R: rgb[0], G: rgb[1], B: rgb[2]}, true
	}
	return Event{}, false
}

// Placeholder is shown before the backend has reported a value.
const Placeholder = "--"

// Indicators is the enabled/color state rendered by the UI.
type Indicators struct {
	EnabledText string
	Enabled     bool
	R, G, B     string
	HasColor    bool
}

// NewIndicators returns indicators with nothing reported yet.
func NewIndicators() Indicators {
	return Indicators{EnabledText: Placeholder}
}

// Apply updates the indicator the event targets.
func (in *Indicators) Apply(ev Event) {
	switch ev.Kind {
	case EnabledChanged:
		in.EnabledText = ev.Value
		in.Enabled = ev.Enabled
	case ColorChanged:
		in.R, in.G, in.B = ev.R, ev.G, ev.B
		in.HasColor = true
	}
}

// ApplyLine interprets line and applies the result. It reports whether
// anything changed.
func (in *Indicators) ApplyLine(line string) bool {
	ev, ok := Interpret(line)
	if !ok {
		return false
	}
	in.Apply(ev)
	return true
}

// Readout is the RGB text, "r, g, b".
func (in Indicators) Readout() string {
	if !in.HasColor {
		return Placeholder
	}
	return in.R + ", " + in.G + ", " + in.B
}

// Swatch returns the color to paint. ok is false until a color arrived
// and whenever a component is not an integer; out-of-range components are
// clamped to 0..255.
func (in Indicators) Swatch() (r, g, b uint8, ok bool) {
	if !in.HasColor {
		return 0, 0, 0, false
	}
	var vals [3]uint8
	for i, s := range [3]string{in.R, in.G, in.B} {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = uint8(min(max(n, 0), 255))
	}
	return vals[0], vals[1], vals[2], true
}

// Hex formats the swatch as #rrggbb, or "" when it cannot be painted.
func (in Indicators) Hex() string {
	r, g, b, ok := in.Swatch()
	if !ok {
		return ""
	}
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, c := range [3]uint8{r, g, b} {
		out[1+2*i] = digits[c>>4]
		out[2+2*i] = digits[c&0x0f]
	}
	return string(out)
}
