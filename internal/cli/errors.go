package cli

import (
	"context"
	"errors"
	"fmt"

	"pacwrap/pkg/manager"
)

// ErrInterrupted is returned when a signal cancelled the operation.
var ErrInterrupted = errors.New("interrupted")

// ErrHistoryLimit is returned when --history is given something other than a count.
var ErrHistoryLimit = errors.New("history limit must be a non-negative number")

// exitInterrupted is the shell convention for termination by SIGINT.
const exitInterrupted = 130

// exitStatus maps the outcome of a run to the process exit status.
func exitStatus(ctx context.Context, err error) (int, error) {
	if err != nil && ctx.Err() != nil {
		return exitInterrupted, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return manager.ExitStatus(err), err
}
