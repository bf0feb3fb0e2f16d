package editor

import "strings"

// KeyName maps a key as the terminal reports it to the name stored in the
// config: space, control and escape get their short names and everything
// else is upper-cased as is ("e" -> "E", "f5" -> "F5").
func KeyName(raw string) string {
	switch strings.ToLower(raw) {
	case " ", "space":
		return "SPACE"
	case "control", "ctrl":
		return "CTRL"
	case "escape", "esc":
		return "ESC"
	}
	return strings.ToUpper(raw)
}

// Arm starts a one-shot capture for a key control. Arming the control that
// is already armed does nothing; arming another one moves the capture.
func (e *Editor) Arm(f Field) bool {
	if !f.IsKey() {
		return false
	}
	if e.armed == f {
		return true
	}
	if prev := e.controls.key(e.armed); prev != nil {
		prev.Recording = false
	}
	e.armed = f
	e.controls.key(f).Recording = true
	return true
}

// Armed returns the control waiting for a key, or FieldNone.
func (e *Editor) Armed() Field {
	return e.armed
}

// HandleKey delivers a key press to the armed capture. It returns false
// and does nothing when no capture is armed. Otherwise the mapped name is
// stored, the capture disarms and the record is persisted once.
func (e *Editor) HandleKey(raw string) bool {
	ctl := e.controls.key(e.armed)
	if ctl == nil {
		return false
	}
	name := KeyName(raw)
	switch e.armed {
	case FieldEnableKey:
		e.record.EnableKey = name
	case FieldToggleKey:
		e.record.ToggleKey = name
	}
	ctl.Value = name
	ctl.Recording = false
	e.armed = FieldNone
	e.Persist()
	return true
}
