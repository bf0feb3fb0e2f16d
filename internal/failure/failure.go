// Package failure classifies the few ways trackerctl can fail.
//
// Every failure in this program is logged and survived; the kinds exist so
// log lines can be grouped, not to drive control flow.
package failure

import (
	"errors"
	"fmt"
)

// Kind is the class of a failure.
type Kind int

const (
	// IOFailure covers reading or writing the config file.
	IOFailure Kind = iota + 1
	// ParseFailure covers malformed config content.
	ParseFailure
	// ProcessFailure covers spawning, running and stopping the backend.
	ProcessFailure
)

func (k Kind) String() string {
	switch k {
	case IOFailure:
		return "IOFailure"
	case ParseFailure:
		return "ParseFailure"
	case ProcessFailure:
		return "ProcessFailure"
	default:
		return "Unknown"
	}
}

// Error attaches a Kind and the failing operation to an underlying error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FailureKind lets pkg/logging tag entries without importing this package.
func (e *Error) FailureKind() string { return e.Kind.String() }

// IO wraps err as an IOFailure.
func IO(op string, err error) error { return wrap(IOFailure, op, err) }

// Parse wraps err as a ParseFailure.
func Parse(op string, err error) error { return wrap(ParseFailure, op, err) }

// Process wraps err as a ProcessFailure.
func Process(op string, err error) error { return wrap(ProcessFailure, op, err) }

func wrap(k Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Is reports whether err carries kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}
