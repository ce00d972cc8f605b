// Package history records executed operations in a BoltDB file.
package history

import (
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry represents a single operation in the history.
type Entry struct {
	ID        string        `json:"id"` // ULID, sortable by creation time
	Timestamp time.Time     `json:"timestamp"`
	Operation string        `json:"operation"` // e.g. "-Suy"
	Backend   string        `json:"backend"`
	Keywords  []string      `json:"keywords,omitempty"`
	Flags     []string      `json:"flags,omitempty"`
	Success   bool          `json:"success"`
	ExitCode  int           `json:"exit_code"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// NewEntry creates a history entry stamped with the current time.
func NewEntry(operation, backend string, keywords, flags []string) *Entry {
	id := ulid.Make()
	return &Entry{
		ID:        id.String(),
		Timestamp: ulid.Time(id.Time()),
		Operation: operation,
		Backend:   backend,
		Keywords:  keywords,
		Flags:     flags,
	}
}

// Finish stores the outcome of the operation.
func (e *Entry) Finish(code int, err error) {
	e.Duration = time.Since(e.Timestamp)
	e.ExitCode = code
	e.Success = err == nil
	if err != nil {
		e.Error = err.Error()
	}
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Local().Format("2006-01-02 15:04:05")
}

// Command returns the operation as it was typed, keywords and flags included.
func (e *Entry) Command() string {
	parts := append([]string{e.Operation}, e.Keywords...)
	if len(e.Flags) > 0 {
		parts = append(parts, "--")
		parts = append(parts, e.Flags...)
	}
	return strings.Join(parts, " ")
}

// Status returns "ok" or the failure's exit status.
func (e *Entry) Status() string {
	if e.Success {
		return "ok"
	}
	return "exit " + strconv.Itoa(e.ExitCode)
}

// Summary returns a brief summary of the operation.
func (e *Entry) Summary() string {
	return e.FormatTime() + " " + e.Command() + " [" + e.Backend + "] (" + e.Status() + ")"
}
