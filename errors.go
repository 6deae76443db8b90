package svgpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("svgpdf: converter is closed")

	// ErrNoBackend is returned by [Chain.Convert] when no candidate
	// backend produced the output file.
	ErrNoBackend = errors.New("svgpdf: no conversion backend succeeded")

	// ErrOutputNotProduced is reported when a backend returned without
	// error but the output file does not exist afterwards.
	ErrOutputNotProduced = errors.New("svgpdf: backend produced no output file")
)

// BackendError wraps a failure of a single conversion backend. The chain
// collects these as warnings and continues with the next candidate.
type BackendError struct {
	Backend string // backend name, e.g. "chrome"
	Op      string // operation that failed, e.g. "render pdf"
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("svgpdf: %s backend: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
