// Package native implements the package manager backends.
package native

import (
	"context"
	"slices"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// BaseManager holds what every backend shares: its identity, the tool it
// drives, the process-wide options and the runner.
type BaseManager struct {
	name       string
	program    string
	confirm    []string // no-confirm token, empty when the tool never prompts
	privileged bool     // mutating commands need root
	opts       manager.Options
	runner     *executor.Runner
}

func newBase(name, program string, confirm []string, privileged bool, opts manager.Options, runner *executor.Runner) BaseManager {
	return BaseManager{
		name:       name,
		program:    program,
		confirm:    confirm,
		privileged: privileged,
		opts:       opts,
		runner:     runner,
	}
}

// Name returns the short identifier for this manager.
func (b *BaseManager) Name() string {
	return b.name
}

// Program returns the binary this backend invokes.
func (b *BaseManager) Program() string {
	return b.program
}

// mode returns preferred, or ModeShow when running dry.
func (b *BaseManager) mode(preferred executor.Mode) executor.Mode {
	if b.opts.DryRun {
		return executor.ModeShow
	}
	return preferred
}

// query builds a read-only command.
func (b *BaseManager) query(sub, kws, flags []string) executor.Command {
	return b.queryWith(b.program, sub, kws, flags)
}

// queryWith builds a read-only command for a helper program such as dpkg-query or rpm.
func (b *BaseManager) queryWith(program string, sub, kws, flags []string) executor.Command {
	return executor.Command{Program: program, Subcommand: sub, Keywords: kws, Flags: flags}
}

// change builds a command that alters system state but never prompts.
func (b *BaseManager) change(sub, kws, flags []string) executor.Command {
	return executor.Command{
		Program:    b.program,
		Subcommand: sub,
		Keywords:   kws,
		Flags:      flags,
		Privileged: b.privileged,
	}
}

// confirmed builds a command that may prompt. With NoConfirm the backend's
// token is appended once, after the base tokens.
func (b *BaseManager) confirmed(sub, kws, flags []string) executor.Command {
	if b.opts.NoConfirm && len(b.confirm) > 0 {
		sub = append(slices.Clip(sub), b.confirm...)
	}
	return b.change(sub, kws, flags)
}

// run executes a single command, fail-fast.
func (b *BaseManager) run(ctx context.Context, cmd executor.Command) error {
	return b.runner.Run(ctx, cmd, b.mode(executor.ModeFailFast))
}

// step pairs cmd with a mode for use in a sequence.
func (b *BaseManager) step(cmd executor.Command, mode executor.Mode) executor.Step {
	return executor.Step{Command: cmd, Mode: b.mode(mode)}
}

// runAll executes a sequence of steps.
func (b *BaseManager) runAll(ctx context.Context, steps ...executor.Step) error {
	return b.runner.RunAll(ctx, steps...)
}

// eachKeyword runs cmd once per keyword, tolerating individual failures.
// With no keywords, cmd runs once as given.
func (b *BaseManager) eachKeyword(ctx context.Context, build func(kws []string) executor.Command, kws []string) error {
	if len(kws) == 0 {
		return b.run(ctx, build(nil))
	}
	steps := make([]executor.Step, 0, len(kws))
	for _, kw := range kws {
		steps = append(steps, b.step(build([]string{kw}), executor.ModeTolerant))
	}
	return b.runAll(ctx, steps...)
}

// unsupported reports that the tool cannot express op.
func (b *BaseManager) unsupported(op manager.Operation) error {
	return &manager.UnsupportedError{Backend: b.name, Op: op}
}
