package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerctl/internal/editor"
	"trackerctl/internal/host"
	"trackerctl/pkg/logging"
)

type recordingSender struct {
	requests []host.Request
}

func (r *recordingSender) Send(req host.Request) {
	r.requests = append(r.requests, req)
}

func TestInitialModel_EditorPersistsThroughHost(t *testing.T) {
	sender := &recordingSender{}
	m := InitialModel(TUIConfig{Host: sender})

	assert.Equal(t, ModeInitializing, m.CurrentAppMode)
	assert.Equal(t, FocusRadius, m.Focus)

	m.Editor.ResetKeybinds()
	require.Len(t, sender.requests, 1)
	upd, ok := sender.requests[0].(host.UpdateConfig)
	require.True(t, ok)
	assert.Equal(t, "F5", upd.Record.EnableKey)
}

func TestMoveFocus_Wraps(t *testing.T) {
	m := InitialModel(TUIConfig{})

	m.MoveFocus(-1)
	assert.Equal(t, FocusTheme, m.Focus)
	m.MoveFocus(1)
	assert.Equal(t, FocusRadius, m.Focus)
	m.MoveFocus(4)
	assert.Equal(t, FocusToggleKey, m.Focus)
}

func TestFocusItem_Field(t *testing.T) {
	assert.Equal(t, editor.FieldEnableKey, FocusEnableKey.Field())
	assert.Equal(t, editor.FieldNone, FocusResetSettings.Field())
	assert.Equal(t, editor.FieldTheme, FocusTheme.Field())
}

func TestAppendActivityLine_Caps(t *testing.T) {
	m := InitialModel(TUIConfig{})
	for i := 0; i < MaxActivityLogLines+5; i++ {
		m.AppendActivityLine(fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.Equal(t, fmt.Sprintf("line %d", MaxActivityLogLines+4), m.ActivityLog[MaxActivityLogLines-1])
	assert.LessOrEqual(t, cap(m.ActivityLog), 2*MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestAppendLogEntry(t *testing.T) {
	m := InitialModel(TUIConfig{})
	ts := time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.UTC)

	assert.False(t, m.AppendLogEntry(logging.LogEntry{Timestamp: ts, Level: logging.LevelDebug, Subsystem: "Backend", Message: "noise"}))
	assert.Empty(t, m.ActivityLog)

	assert.True(t, m.AppendLogEntry(logging.LogEntry{
		Timestamp: ts, Level: logging.LevelWarn, Subsystem: "Host", Message: "slow",
	}))
	assert.Equal(t, "07:08:09.010 [WARN] [Host] slow", m.ActivityLog[0])

	m.DebugMode = true
	assert.True(t, m.AppendLogEntry(logging.LogEntry{Timestamp: ts, Level: logging.LevelDebug, Subsystem: "Backend", Message: "noise"}))
	assert.Len(t, m.ActivityLog, 2)
}

func TestSetStatusMessage(t *testing.T) {
	m := InitialModel(TUIConfig{})

	cmd := m.SetStatusMessage("hello", StatusBarWarning, time.Millisecond)
	require.NotNil(t, cmd)
	assert.Equal(t, "hello", m.StatusBarMessage)
	assert.Equal(t, StatusBarWarning, m.StatusBarMessageType)
	assert.Equal(t, ClearStatusBarMsg{}, cmd())

	stale := m.Saved()
	m.SetStatusMessage("newer", StatusBarInfo, time.Millisecond)
	assert.Nil(t, stale(), "superseded messages do not clear the bar")
}

func TestListenCmds(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))
	assert.Nil(t, ListenForHostEventsCmd(nil))

	logs := make(chan logging.LogEntry, 1)
	logs <- logging.LogEntry{Message: "hi"}
	msg := ListenForLogEntriesCmd(logs)()
	assert.Equal(t, "hi", msg.(NewLogEntryMsg).Entry.Message)
	close(logs)
	assert.Nil(t, ListenForLogEntriesCmd(logs)())

	events := make(chan host.Event, 1)
	events <- host.StatusLine{Line: "STATE:READY"}
	assert.Equal(t, HostEventMsg{Event: host.StatusLine{Line: "STATE:READY"}}, ListenForHostEventsCmd(events)())
	close(events)
	assert.Equal(t, HostStoppedMsg{}, ListenForHostEventsCmd(events)())
}

func TestAppMode_String(t *testing.T) {
	assert.Equal(t, "Compact", ModeCompact.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}
