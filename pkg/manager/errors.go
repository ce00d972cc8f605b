package manager

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownBackend is returned when --using names a backend that is not registered.
	ErrUnknownBackend = errors.New("unknown package manager")

	// ErrNoBackend is returned when no backend matches the host platform.
	ErrNoBackend = errors.New("no supported package manager detected; specify one with --using")

	// ErrInvalidOperation is returned for flag combinations outside the operation set.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotSupported is wrapped by UnsupportedError.
	ErrNotSupported = errors.New("operation not supported")

	// ErrContractViolation means an operation reached the dispatcher with no method mapping.
	ErrContractViolation = errors.New("internal error: operation has no backend mapping")

	// ErrAlreadyDispatched is returned when a Dispatcher is used twice.
	ErrAlreadyDispatched = errors.New("internal error: dispatcher already used")
)

// ConfigError reports a configuration problem detected before any operation runs.
type ConfigError struct {
	Key   string   // Setting that was wrong, e.g. "using"
	Value string   // Offending value
	Known []string // Accepted values, if any
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Value != "" {
		fmt.Fprintf(&sb, " %q", e.Value)
	}
	if e.Key != "" {
		fmt.Fprintf(&sb, " (from %s)", e.Key)
	}
	if len(e.Known) > 0 {
		sb.WriteString("; available: ")
		sb.WriteString(strings.Join(e.Known, ", "))
	}
	return sb.String()
}

// Unwrap returns the underlying sentinel.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnsupportedError is returned by a backend for an operation its tool cannot express.
type UnsupportedError struct {
	Backend string
	Op      Operation
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operation %s is not supported by %s", e.Op, e.Backend)
}

// Unwrap returns ErrNotSupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrNotSupported
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
