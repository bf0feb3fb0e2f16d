package model

import (
	"fmt"

	"trackerctl/pkg/logging"
)

// logTimeFormat is the timestamp layout of activity log lines.
const logTimeFormat = "15:04:05.000"

// FormatLogEntry renders entry as one activity log line:
// "15:04:05.000 [LEVEL] [Subsystem] message -- Error: err (Kind)".
func FormatLogEntry(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format(logTimeFormat), entry.Level, entry.Subsystem, entry.Message)
	if entry.Err != nil {
		line += fmt.Sprintf(" -- Error: %v", entry.Err)
	}
	if entry.Kind != "" {
		line += " (" + entry.Kind + ")"
	}
	return line
}

// AppendLogEntry adds entry to the activity log. Debug entries are kept
// only in debug mode. It reports whether a line was added.
func (m *Model) AppendLogEntry(entry logging.LogEntry) bool {
	if entry.Level < logging.LevelInfo && !m.DebugMode {
		return false
	}
	m.AppendActivityLine(FormatLogEntry(entry))
	return true
}

// AppendActivityLine adds a formatted line, dropping the oldest lines past
// MaxActivityLogLines. The surviving lines are moved to the front so the
// backing array does not grow with every dropped line.
func (m *Model) AppendActivityLine(line string) {
	if len(m.ActivityLog) >= MaxActivityLogLines {
		drop := len(m.ActivityLog) - MaxActivityLogLines + 1
		n := copy(m.ActivityLog, m.ActivityLog[drop:])
		m.ActivityLog = m.ActivityLog[:n]
	}
	m.ActivityLog = append(m.ActivityLog, line)
	m.ActivityLogDirty = true
}
