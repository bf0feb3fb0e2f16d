package host

import "trackerctl/internal/config"

// Request is a one-way notification from the UI to the host.
type Request interface {
	isRequest()
}

// UpdateConfig asks the host to write the full record to config.json.
type UpdateConfig struct {
	Record config.Record
}

// Minimize asks the window to minimize.
type Minimize struct{}

// Close stops the backend and closes the window.
type Close struct{}

// SetAlwaysOnTop pins or unpins the window.
type SetAlwaysOnTop struct {
	On bool
}

func (UpdateConfig) isRequest()   {}
func (Minimize) isRequest()       {}
func (Close) isRequest()          {}
func (SetAlwaysOnTop) isRequest() {}

// Event is pushed from the host to the UI.
type Event interface {
	isEvent()
}

// StatusLine carries one backend status line verbatim.
type StatusLine struct {
	Line string
}

// ConfigChanged carries a record read after config.json changed on disk
// without the host writing it.
type ConfigChanged struct {
	Record config.Record
}

func (StatusLine) isEvent()    {}
func (ConfigChanged) isEvent() {}
