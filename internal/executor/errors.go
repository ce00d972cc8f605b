package executor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Kind tells whether a command could not start or ran and failed.
type Kind int

const (
	// KindSpawn means the process could not be started (missing binary, permissions).
	KindSpawn Kind = iota + 1
	// KindExit means the process ran and reported failure.
	KindExit
)

// ExecError is returned by Runner for any failed invocation.
type ExecError struct {
	Kind    Kind
	Program string
	Args    []string
	Code    int // exit status for KindExit, -1 when unknown
	Err     error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Kind == KindSpawn {
		msg := fmt.Sprintf("could not start %s: %v", e.Program, e.Err)
		if errors.Is(e.Err, exec.ErrNotFound) {
			msg += fmt.Sprintf("\ncommand '%s' not found, is it installed?", e.Program)
		}
		return msg
	}
	if e.Code >= 0 {
		return fmt.Sprintf("`%s` failed with exit status %d", strings.Join(e.Args, " "), e.Code)
	}
	return fmt.Sprintf("`%s` failed: %v", strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns the underlying os/exec error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the child's exit status from an error chain.
// For a joined error from RunAll the last failed step wins, since auxiliary
// steps run before the primary one. Returns (0, false) if err holds no
// ExecError with a known status.
func ExitCode(err error) (int, bool) {
	switch e := err.(type) {
	case nil:
		return 0, false
	case *ExecError:
		if e.Kind == KindExit && e.Code > 0 {
			return e.Code, true
		}
		return 0, false
	case interface{ Unwrap() []error }:
		errs := e.Unwrap()
		for i := len(errs) - 1; i >= 0; i-- {
			if code, ok := ExitCode(errs[i]); ok {
				return code, true
			}
		}
		return 0, false
	case interface{ Unwrap() error }:
		return ExitCode(e.Unwrap())
	}
	return 0, false
}
