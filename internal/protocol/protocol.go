// Package protocol frames the backend's stdout into lines and recognizes
// the status lines among them.
//
// The backend writes free-form diagnostics interleaved with status lines of
// the form
//
//	STATE:<KEY>[:<VALUE>]
//
// and ends lines with "\n" or "\r\n". Reads from a pipe do not respect line
// boundaries, so a Splitter holds the tail of each chunk until the rest of
// the line arrives.
package protocol

import "strings"

// StatusPrefix marks a status line.
const StatusPrefix = "STATE:"

// IsStatusLine reports whether line carries the literal status prefix.
func IsStatusLine(line string) bool {
	return strings.HasPrefix(line, StatusPrefix)
}

// Splitter turns a stream of chunks into lines. Any run of '\r' and '\n'
// ends a line and empty lines are dropped. The zero value is ready to use;
// a Splitter is not safe for concurrent use.
type Splitter struct {
	partial strings.Builder
}

// Feed consumes chunk and returns the lines it completes. Text after the
// last terminator stays buffered.
func (s *Splitter) Feed(chunk []byte) []string {
	var lines []string
	for _, b := range chunk {
		if b == '\r' || b == '\n' {
			if s.partial.Len() > 0 {
				lines = append(lines, s.partial.String())
				s.partial.Reset()
			}
			continue
		}
		s.partial.WriteByte(b)
	}
	return lines
}

// Flush returns the buffered partial line, if any, and clears it. Call it
// once the stream has ended.
func (s *Splitter) Flush() (string, bool) {
	if s.partial.Len() == 0 {
		return "", false
	}
	line := s.partial.String()
	s.partial.Reset()
	return line, true
}

// Pending reports how many bytes are waiting for a terminator.
func (s *Splitter) Pending() int {
	return s.partial.Len()
}
