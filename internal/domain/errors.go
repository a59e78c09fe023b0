package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindRead          ErrorKind = "read"
	KindWrite         ErrorKind = "write"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindStale         ErrorKind = "stale"
)

// OpError wraps an underlying error with operation context and a kind
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an OpError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
