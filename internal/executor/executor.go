// Package executor composes package manager command lines and runs them under an execution mode.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Mode controls how a composed command is run.
type Mode int

const (
	// ModeShow prints the command line without spawning anything.
	ModeShow Mode = iota
	// ModeFailFast runs the command; any failure halts the operation.
	ModeFailFast
	// ModeTolerant runs the command; a failure is reported but a sequence keeps going.
	ModeTolerant
	// ModeSilent runs the command with its output streams discarded.
	ModeSilent
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeShow:
		return "show"
	case ModeFailFast:
		return "fail-fast"
	case ModeTolerant:
		return "tolerant"
	case ModeSilent:
		return "silent"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Command is a single invocation of a package manager binary.
type Command struct {
	Program    string
	Subcommand []string // fixed tokens chosen by the backend, confirmation token included
	Keywords   []string
	Flags      []string
	Privileged bool // eligible for sudo when elevation is enabled
}

// Args returns the argument vector: program, fixed tokens, keywords, flags.
func (c Command) Args() []string {
	args := make([]string, 0, 1+len(c.Subcommand)+len(c.Keywords)+len(c.Flags))
	args = append(args, c.Program)
	args = append(args, c.Subcommand...)
	args = append(args, c.Keywords...)
	args = append(args, c.Flags...)
	return args
}

// String renders the argument vector as a shell-like line.
func (c Command) String() string {
	return joinArgs(c.Args())
}

func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			quoted[i] = strconv.Quote(a)
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

// Step pairs a command with the mode it runs under inside a sequence.
type Step struct {
	Command Command
	Mode    Mode
}

// CommandFunc builds the process for a resolved argument vector.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Options configures a Runner.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger

	// Sudo prefixes privileged commands with an elevation tool (sudo, doas) when not running as root.
	Sudo bool

	// Progress is called when a silent command starts; the returned func is called when it ends.
	Progress func(label string) func()
}

// Runner spawns package manager processes.
type Runner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      *log.Logger
	sudo        bool
	progress    func(label string) func()
	commandFunc CommandFunc
}

// New creates a Runner. Nil streams default to the process's own.
func New(opts Options) *Runner {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Runner{
		stdin:       opts.Stdin,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		logger:      opts.Logger,
		sudo:        opts.Sudo,
		progress:    opts.Progress,
		commandFunc: exec.CommandContext,
	}
}

// SetCommandFunc replaces the process constructor. Used by tests.
func (r *Runner) SetCommandFunc(fn CommandFunc) {
	r.commandFunc = fn
}

// Run executes cmd under mode.
func (r *Runner) Run(ctx context.Context, cmd Command, mode Mode) error {
	argv := r.resolve(cmd)

	if mode == ModeShow {
		fmt.Fprintf(r.stdout, "[dry-run] %s\n", joinArgs(argv))
		return nil
	}

	r.logger.Debug("executing", "cmd", joinArgs(argv), "mode", mode)

	proc := r.commandFunc(ctx, argv[0], argv[1:]...)
	proc.Stdin = r.stdin
	if mode == ModeSilent {
		proc.Stdout = nil
		proc.Stderr = nil
		if r.progress != nil {
			stop := r.progress(cmd.String())
			defer stop()
		}
	} else {
		proc.Stdout = r.stdout
		proc.Stderr = r.stderr
	}

	err := wait(proc, argv)
	if err != nil && mode == ModeTolerant {
		r.logger.Warn("command failed, continuing", "cmd", cmd.String(), "err", err)
	}
	return err
}

// RunAll runs steps in order. A failed tolerant step is recorded and the
// sequence continues; any other failure stops it. Every recorded failure is
// returned.
func (r *Runner) RunAll(ctx context.Context, steps ...Step) error {
	var errs []error
	for _, s := range steps {
		err := r.Run(ctx, s.Command, s.Mode)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if s.Mode != ModeTolerant {
			break
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// resolve returns the argument vector that will actually be spawned.
func (r *Runner) resolve(cmd Command) []string {
	argv := cmd.Args()
	if !r.sudo || !cmd.Privileged || isRoot() {
		return argv
	}
	if name := elevator(); name != "" {
		return append([]string{name}, argv...)
	}
	return argv
}

func wait(proc *exec.Cmd, argv []string) error {
	if err := proc.Start(); err != nil {
		return &ExecError{Kind: KindSpawn, Program: argv[0], Args: argv, Code: -1, Err: err}
	}

	if err := proc.Wait(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &ExecError{Kind: KindExit, Program: argv[0], Args: argv, Code: code, Err: err}
	}

	return nil
}
