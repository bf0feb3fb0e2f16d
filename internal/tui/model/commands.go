package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"trackerctl/internal/host"
	"trackerctl/pkg/logging"
)

// ListenForLogEntriesCmd waits for the next log entry. A closed channel
// ends the listening.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForHostEventsCmd waits for the next host event.
func ListenForHostEventsCmd(ch <-chan host.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return HostStoppedMsg{}
		}
		return HostEventMsg{Event: ev}
	}
}
