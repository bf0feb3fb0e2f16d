package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindErr struct{ kind string }

func (e kindErr) Error() string       { return "boom" }
func (e kindErr) FailureKind() string { return e.kind }

func TestInitForCLI_WritesSubsystemAndKind(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Host", "backend started pid=%d", 42)
	Error("Host", kindErr{kind: "IOFailure"}, "write failed")

	out := buf.String()
	assert.Contains(t, out, "backend started pid=42")
	assert.Contains(t, out, "subsystem=Host")
	assert.Contains(t, out, "kind=IOFailure")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Test", "hidden debug")
	Info("Test", "hidden info")
	Warn("Test", "visible warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	wrapped := errors.Join(errors.New("outer"), kindErr{kind: "ProcessFailure"})
	Error("Supervisor", wrapped, "backend exited with code %d", 3)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelError, entry.Level)
		assert.Equal(t, "Supervisor", entry.Subsystem)
		assert.Equal(t, "backend exited with code 3", entry.Message)
		assert.Equal(t, "ProcessFailure", entry.Kind)
		require.Error(t, entry.Err)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}
}

func TestCloseTUIChannel_StopsDelivery(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	CloseTUIChannel()

	_, open := <-ch
	assert.False(t, open, "channel should be closed")

	// Logging after close must not panic.
	assert.NotPanics(t, func() { Info("Test", "after close") })
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}
