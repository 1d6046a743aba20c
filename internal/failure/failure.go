// Package failure defines the error taxonomy of an analysis run.
package failure

import (
	"errors"

	"github.com/retroenv/opcodecount/internal/translate"
)

//go:generate go tool stringer -type=Kind

// Kind classifies why an analysis run was aborted.
type Kind int

const (
	Unknown           Kind = iota // unanticipated failure
	NotFound                      // expected source file absent
	IOFailure                     // source file exists but can not be read
	StructureNotFound             // source file lacks the table initialization marker
)

var f = translate.From

// Error is a terminal analysis failure attributed to a path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// New returns a new failure of the given kind.
func New(kind Kind, path string, err error) *Error {
	return &Error{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotFound:
		return f("could not find %s", e.Path)
	case IOFailure:
		if e.Err == nil {
			return f("reading %s failed", e.Path)
		}
		return f("reading %s failed: %v", e.Path, e.Err)
	case StructureNotFound:
		if e.Err == nil {
			return f("could not find the instruction table initialization in %s", e.Path)
		}
		return f("could not find %v in %s", e.Err, e.Path)
	default:
		if e.Err == nil {
			return f("an error occurred")
		}
		return f("an error occurred: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a failure of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Path == "" && t.Err == nil
}

// Sentinels usable with errors.Is to test for a failure kind.
var (
	ErrNotFound          = &Error{Kind: NotFound}
	ErrIOFailure         = &Error{Kind: IOFailure}
	ErrStructureNotFound = &Error{Kind: StructureNotFound}
)

// KindOf returns the kind of the first failure in the error chain,
// Unknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// ExitCode maps a failure kind to the process exit status.
func (k Kind) ExitCode() int {
	switch k {
	case NotFound:
		return 3
	case IOFailure:
		return 4
	case StructureNotFound:
		return 5
	default:
		return 1
	}
}
