package model

import (
	"trackerctl/internal/host"
	"trackerctl/pkg/logging"
)

// NewLogEntryMsg carries one entry from pkg/logging.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// HostEventMsg carries one push from the host.
type HostEventMsg struct {
	Event host.Event
}

// HostStoppedMsg reports that the host's event channel closed.
type HostStoppedMsg struct{}

// ---- Window requests relayed by the host ----

type WindowMinimizeMsg struct{}

type WindowPinMsg struct {
	On bool
}

type WindowCloseMsg struct{}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}

// QuitTimeoutMsg fires when the host did not confirm a close in time.
type QuitTimeoutMsg struct{}
