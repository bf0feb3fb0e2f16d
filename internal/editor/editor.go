// Package editor keeps the in-memory copy of config.json that the UI
// edits and pushes every change to a Persister.
//
// Edits go to the controls first. Persist then copies every control back
// into the record (key bindings upper-cased) and hands the whole record
// over, so a save always reflects what is on screen. Keys the editor does
// not show, modeKey and unknown keys, ride along untouched.
package editor

import (
	"strings"

	"trackerctl/internal/config"
	"trackerctl/pkg/logging"
)

const subsystem = "Editor"

// Persister receives the full record on every save. It must not block on
// the disk write.
type Persister interface {
	Persist(rec config.Record)
}

// PersistFunc adapts a function to Persister.
type PersistFunc func(rec config.Record)

// Persist calls f(rec).
func (f PersistFunc) Persist(rec config.Record) { f(rec) }

// Editor is not safe for concurrent use; the UI loop owns it.
type Editor struct {
	record   config.Record
	controls Controls
	armed    Field
	sink     Persister
	// Sliders changed since the last save. Only these are copied into the
	// record; the others keep the value read from disk.
	moved    map[Field]bool
	saves    int
}

// New returns an editor holding the defaults.
func New(sink Persister) *Editor {
	if sink == nil {
		sink = PersistFunc(func(config.Record) {})
	}
	e := &Editor{
		record:   config.Defaults(),
		controls: newControls(),
		sink:     sink,
		moved:    make(map[Field]bool),
	}
	e.controls.render(e.record)
	return e
}

// Load reads path. A missing file keeps the defaults and persists them
// right away; an unreadable or malformed one is logged and the defaults
// stay. The returned error is informational only.
func (e *Editor) Load(path string) error {
	rec, found, err := config.Load(path)
	if err != nil {
		logging.Error(subsystem, err, "Failed to load config, using defaults")
		return err
	}
	if !found {
		logging.Info(subsystem, "Config not found at %s, using defaults", path)
		e.Persist()
		return nil
	}
	e.record = rec
	e.controls.render(rec)
	clear(e.moved)
	logging.Debug(subsystem, "Loaded %s", path)
	return nil
}

// Record returns a copy of the mirror.
func (e *Editor) Record() config.Record {
	return e.record
}

// Controls returns a copy of the controls for rendering.
func (e *Editor) Controls() Controls {
	return e.controls
}

// Saves counts how many times the record was handed to the Persister.
func (e *Editor) Saves() int {
	return e.saves
}

// Persist copies the controls into the record and sends it. Feedback is
// optimistic: nothing reports whether the write succeeded.
func (e *Editor) Persist() {
	if e.moved[FieldSearchRadius] {
		e.record.SearchRadius = e.controls.Radius.Value()
	}
	if e.moved[FieldTolerance] {
		e.record.Tolerance = e.controls.Tolerance.Value()
	}
	if e.moved[FieldLoopSleep] {
		e.record.LoopSleepMs = e.controls.LoopSleep.Value()
	}
	clear(e.moved)
	e.record.EnableKey = strings.ToUpper(e.controls.EnableKey.Value)
	e.record.ToggleKey = strings.ToUpper(e.controls.ToggleKey.Value)
	e.record.Theme = e.controls.Theme

	e.sink.Persist(e.record)
	e.saves++
	e.controls.render(e.record)
}

// Slide moves a slider by steps positions without saving, like dragging
// before release. It returns false for non-slider fields.
func (e *Editor) Slide(f Field, steps int) bool {
	s := e.controls.slider(f)
	if s == nil {
		return false
	}
	s.Nudge(steps)
	e.moved[f] = true
	return true
}

// SetSlider places a slider at v (clamped and snapped) without saving.
func (e *Editor) SetSlider(f Field, v int) bool {
	s := e.controls.slider(f)
	if s == nil {
		return false
	}
	s.Set(v)
	e.moved[f] = true
	return true
}

// CommitSlider persists after a slider was released.
func (e *Editor) CommitSlider(f Field) {
	if !f.IsSlider() {
		return
	}
	e.Persist()
}

// SelectTheme switches the theme control and persists.
func (e *Editor) SelectTheme(theme string) {
	e.controls.Theme = theme
	e.Persist()
}

// ResetSettings restores the three sliders' defaults and persists. Keys
// and theme are untouched.
func (e *Editor) ResetSettings() {
	e.record.SearchRadius = config.DefaultSearchRadius
	e.record.Tolerance = config.DefaultTolerance
	e.record.LoopSleepMs = config.DefaultLoopSleepMs
	e.controls.render(e.record)
	e.Persist()
}

// ResetKeybinds restores the enable and toggle keys and persists. modeKey
// is left alone.
func (e *Editor) ResetKeybinds() {
	e.record.EnableKey = config.DefaultEnableKey
	e.record.ToggleKey = config.DefaultToggleKey
	e.controls.render(e.record)
	e.Persist()
}

// ApplyExternal adopts a record read from disk after someone else changed
// the file. Nothing is persisted.
func (e *Editor) ApplyExternal(rec config.Record) {
	e.record = rec
	e.controls.render(rec)
	clear(e.moved)
}
