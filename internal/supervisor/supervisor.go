// Package supervisor runs the backend executable as a child process and
// reports what it prints.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"trackerctl/internal/failure"
	"trackerctl/internal/protocol"
)

// For mocking in tests
var execCommand = exec.Command

// stopTimeout bounds how long Stop waits for the killed child to be reaped.
const stopTimeout = 2 * time.Second

const readChunkSize = 4096

// UpdateKind says what an Update reports.
type UpdateKind int

const (
	Started UpdateKind = iota + 1
	StdoutLine
	StderrLine
	Exited
)

func (k UpdateKind) String() string {
	switch k {
	case Started:
		return "Started"
	case StdoutLine:
		return "StdoutLine"
	case StderrLine:
		return "StderrLine"
	case Exited:
		return "Exited"
	default:
		return "Unknown"
	}
}

// Update is one observation about the child.
type Update struct {
	Kind UpdateKind
	PID  int
	// Line is set for StdoutLine and StderrLine.
	Line string
	// ExitCode and Err are set for Exited. Stopped is true when the exit
	// was caused by Stop.
	ExitCode int
	Err      error
	Stopped  bool
}

// UpdateFunc receives updates from the supervisor's reader goroutines. It
// must not block for long.
type UpdateFunc func(Update)

// Supervisor owns at most one running backend process. It never restarts
// the child.
type Supervisor struct {
	path     string
	dir      string
	onUpdate UpdateFunc

	mu       sync.Mutex
	cmd      *exec.Cmd
	done     chan struct{}
	stopping bool
}

// New returns a supervisor for the executable at path, run with dir as its
// working directory.
func New(path, dir string, onUpdate UpdateFunc) *Supervisor {
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}
	return &Supervisor{path: path, dir: dir, onUpdate: onUpdate}
}

// Path returns the executable the supervisor launches.
func (s *Supervisor) Path() string { return s.path }

// Start launches the child with no arguments. The child is killed when ctx
// is done. Start returns a ProcessFailure when the child cannot be spawned
// or is already running.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.cmd != nil {
		pid := s.cmd.Process.Pid
		s.mu.Unlock()
		return failure.Process("start backend", fmt.Errorf("already running (pid %d)", pid))
	}

	cmd := execCommand(s.path)
	cmd.Dir = s.dir
	setProcAttrs(cmd)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		s.mu.Unlock()
		return failure.Process("stdout pipe for "+s.path, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		stdoutPipe.Close()
		s.mu.Unlock()
		return failure.Process("stderr pipe for "+s.path, err)
	}

	if err := cmd.Start(); err != nil {
		stdoutPipe.Close()
		stderrPipe.Close()
		s.mu.Unlock()
		return failure.Process("failed to start "+s.path, err)
	}

	pid := cmd.Process.Pid
	done := make(chan struct{})
	s.cmd = cmd
	s.done = done
	s.stopping = false
	s.mu.Unlock()

	s.onUpdate(Update{Kind: Started, PID: pid})

	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		s.readLines(stdoutPipe, pid, StdoutLine)
	}()
	go func() {
		defer readers.Done()
		s.readLines(stderrPipe, pid, StderrLine)
	}()

	go func() {
		// Wait closes the pipes, so the readers must finish first.
		readers.Wait()
		waitErr := cmd.Wait()

		s.mu.Lock()
		stopped := s.stopping
		s.cmd = nil
		s.done = nil
		s.mu.Unlock()

		code := -1
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		}
		var exitErr error
		if waitErr != nil && !stopped {
			exitErr = failure.Process(fmt.Sprintf("backend (pid %d) exited", pid), waitErr)
		}
		s.onUpdate(Update{Kind: Exited, PID: pid, ExitCode: code, Err: exitErr, Stopped: stopped})
		close(done)
	}()

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-done:
		}
	}()

	return nil
}

// readLines reads chunks from r, frames them and reports each line.
func (s *Supervisor) readLines(r io.Reader, pid int, kind UpdateKind) {
	var splitter protocol.Splitter
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, line := range splitter.Feed(buf[:n]) {
				s.onUpdate(Update{Kind: kind, PID: pid, Line: line})
			}
		}
		if err != nil {
			if line, ok := splitter.Flush(); ok {
				s.onUpdate(Update{Kind: kind, PID: pid, Line: line})
			}
			return
		}
	}
}

// Stop kills the child unconditionally and waits briefly for it to be
// reaped. Output still in flight is discarded. Stopping a supervisor with no
// child is a no-op.
func (s *Supervisor) Stop() error {
	s.mu.Lock()
	cmd, done := s.cmd, s.done
	if cmd == nil {
		s.mu.Unlock()
		return nil
	}
	s.stopping = true
	s.mu.Unlock()

	if err := killProcess(cmd); err != nil && !errors.Is(err, errAlreadyExited) {
		return failure.Process(fmt.Sprintf("kill backend (pid %d)", cmd.Process.Pid), err)
	}

	select {
	case <-done:
		return nil
	case <-time.After(stopTimeout):
		return failure.Process("stop backend", fmt.Errorf("pid %d did not exit within %s", cmd.Process.Pid, stopTimeout))
	}
}

// Running reports whether a child is currently alive.
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

// Done returns a channel closed when the current child has exited, or nil
// when none is running.
func (s *Supervisor) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
