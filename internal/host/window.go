package host

import "trackerctl/pkg/logging"

// Window is the surface the host controls on behalf of the UI.
type Window interface {
	Minimize()
	SetAlwaysOnTop(on bool)
	Close()
}

// headlessWindow stands in when there is no UI. It only logs.
type headlessWindow struct{}

func (headlessWindow) Minimize() {
	logging.Debug(subsystem, "Minimize ignored: no window")
}

func (headlessWindow) SetAlwaysOnTop(on bool) {
	logging.Debug(subsystem, "Always-on-top=%t ignored: no window", on)
}

func (headlessWindow) Close() {}
