// Package manager defines the pacman-style operation vocabulary and the
// contract that maps it onto a host package manager.
package manager

import (
	"fmt"
	"slices"
	"strings"
)

// Operation identifies one action in the pacman vocabulary, e.g. "Suy".
type Operation string

const (
	OpQ   Operation = "Q"
	OpQc  Operation = "Qc"
	OpQi  Operation = "Qi"
	OpQl  Operation = "Ql"
	OpQo  Operation = "Qo"
	OpQs  Operation = "Qs"
	OpQu  Operation = "Qu"
	OpR   Operation = "R"
	OpRn  Operation = "Rn"
	OpRns Operation = "Rns"
	OpRs  Operation = "Rs"
	OpS   Operation = "S"
	OpSc  Operation = "Sc"
	OpScc Operation = "Scc"
	OpSi  Operation = "Si"
	OpSs  Operation = "Ss"
	OpSu  Operation = "Su"
	OpSuy Operation = "Suy"
	OpSw  Operation = "Sw"
	OpSy  Operation = "Sy"
	OpU   Operation = "U"
)

var allOperations = []Operation{
	OpQ, OpQc, OpQi, OpQl, OpQo, OpQs, OpQu,
	OpR, OpRn, OpRns, OpRs,
	OpS, OpSc, OpScc, OpSi, OpSs, OpSu, OpSuy, OpSw, OpSy,
	OpU,
}

// AllOperations returns the closed set of supported operations.
func AllOperations() []Operation {
	ops := make([]Operation, len(allOperations))
	copy(ops, allOperations)
	return ops
}

// ParseOperation validates an operation tag such as "Syu" or "Suy".
// Modifier letters may appear in any order.
func ParseOperation(s string) (Operation, error) {
	if s == "" {
		return "", fmt.Errorf("%w: no operation specified (use one of -Q, -R, -S, -U)", ErrInvalidOperation)
	}
	op := Operation(s[:1] + sortModifiers(s[1:]))
	for _, known := range allOperations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: -%s", ErrInvalidOperation, s)
}

// sortModifiers orders modifier letters canonically (alphabetically), so
// "yu" and "uy" both become "uy".
func sortModifiers(mods string) string {
	b := []byte(mods)
	slices.Sort(b)
	return string(b)
}

// String returns the operation as written on the command line, e.g. "-Suy".
func (o Operation) String() string {
	return "-" + string(o)
}

// Mutating reports whether the operation changes system state (installed
// packages, the package database or the download cache). Query operations
// and searches are not mutating.
func (o Operation) Mutating() bool {
	switch o {
	case OpR, OpRn, OpRns, OpRs, OpS, OpSc, OpScc, OpSu, OpSuy, OpSw, OpSy, OpU:
		return true
	}
	return false
}

// Options are the process-wide switches read by every backend method.
type Options struct {
	DryRun    bool // Show composed commands without executing them
	NoConfirm bool // Inject the backend's non-interactive token
}

// Request is the parsed user intent handed to the Dispatcher.
type Request struct {
	Op       Operation
	Keywords []string
	Flags    []string
}

// String renders the request the way a user would type it.
func (r Request) String() string {
	parts := []string{r.Op.String()}
	parts = append(parts, r.Keywords...)
	if len(r.Flags) > 0 {
		parts = append(parts, "--")
		parts = append(parts, r.Flags...)
	}
	return strings.Join(parts, " ")
}
