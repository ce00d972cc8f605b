// Package cli implements the pacman-style command line for pacwrap.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pacwrap/internal/config"
	"pacwrap/internal/executor"
	"pacwrap/internal/history"
	"pacwrap/internal/ui"
	"pacwrap/pkg/manager"
	"pacwrap/pkg/manager/detector"
	"pacwrap/pkg/manager/native"
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const longHelp = `pacwrap speaks pacman's command vocabulary and translates it into
the native package manager of the host.

Supported package managers:
  Linux:    apt, dnf, zypper, apk
  macOS:    brew
  Windows:  winget, choco, scoop

Examples:
  pacwrap -S vim                      # install vim
  pacwrap -Rns vim                    # remove vim with config and dependencies
  pacwrap -Syu                        # refresh and upgrade everything
  pacwrap -Ss editor --using brew     # search with an explicit backend
  pacwrap -S vim --dryrun -- --fix-missing
                                      # print the command, pass --fix-missing through`

// globalFlags are the switches that are not part of the operation.
type globalFlags struct {
	configFile string
	using      string
	dryRun     bool
	noConfirm  bool
	verbose    bool
	noColor    bool
	history    int
	clear      bool
	system     bool
	version    bool
}

// App wires configuration, detection and the backend registry into one
// invocation of the command line.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Detect inspects the host. Defaults to detector.Detect.
	Detect func() (*detector.SystemInfo, error)

	// CommandFunc, when set, replaces the runner's process constructor.
	CommandFunc executor.CommandFunc

	// HistoryPath overrides the history database location.
	HistoryPath string

	flags  globalFlags
	ops    opFlags
	cfg    *config.Config
	logger *log.Logger
}

// New creates an App bound to the process's standard streams.
func New() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Detect: detector.Detect,
	}
}

// Execute runs pacwrap with the process arguments and returns the exit status.
func Execute(ctx context.Context) (int, error) {
	return New().Run(ctx, os.Args[1:])
}

// Run parses args, performs the requested operation and returns the exit
// status together with any error.
func (a *App) Run(ctx context.Context, args []string) (int, error) {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := a.Command()
	cmd.SetArgs(args)
	return exitStatus(ctx, cmd.ExecuteContext(ctx))
}

// Command builds the root command. Each call returns a fresh command with its own flag state.
func (a *App) Command() *cobra.Command {
	a.flags = globalFlags{}
	a.ops = opFlags{}

	cmd := &cobra.Command{
		Use:           "pacwrap <operation> [keywords...] [-- flags...]",
		Short:         "pacman-style commands for any package manager",
		Long:          longHelp,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		RunE: a.run,
	}
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SetVersionTemplate("pacwrap {{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false
	a.ops.register(flags)

	flags.StringVar(&a.flags.configFile, "config", "", "config file path")
	flags.StringVar(&a.flags.using, "using", "", "package manager to use instead of the detected one")
	flags.BoolVar(&a.flags.dryRun, "dryrun", false, "print the commands without running them")
	flags.BoolVar(&a.flags.noConfirm, "noconfirm", false, "answer yes to the package manager's prompts")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log every command before it runs")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.IntVar(&a.flags.history, "history", 0, "show the last `N` operations")
	flags.Lookup("history").NoOptDefVal = "10"
	flags.BoolVar(&a.flags.clear, "clear-history", false, "delete the recorded operation history")
	flags.BoolVar(&a.flags.system, "system", false, "show the detected system and backend")
	flags.BoolVarP(&a.flags.version, "version", "V", false, "print the version")
	flags.SetNormalizeFunc(normalizeFlag)

	return cmd
}

// normalizeFlag accepts the alternate spellings of the global switches.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "dry-run":
		name = "dryrun"
	case "yes", "no-confirm":
		name = "noconfirm"
	case "pm":
		name = "using"
	}
	return pflag.NormalizedName(name)
}

// initialize loads the configuration and applies command-line overrides.
func (a *App) initialize() error {
	var err error
	if a.flags.configFile != "" {
		a.cfg, err = config.LoadFrom(a.flags.configFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if a.flags.dryRun {
		a.cfg.General.DryRun = true
	}
	if a.flags.noConfirm {
		a.cfg.General.NoConfirm = true
	}
	if a.flags.using != "" {
		a.cfg.General.DefaultPM = a.flags.using
	}
	if a.flags.verbose {
		a.cfg.Output.Verbose = true
	}
	if a.flags.noColor {
		a.cfg.Output.Color = false
	}

	ui.Init(a.cfg.ShouldUseColor(), a.cfg.Output.Unicode)

	a.logger = log.NewWithOptions(a.Stderr, log.Options{
		Prefix: "pacwrap",
	})
	if a.cfg.Output.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	if a.HistoryPath == "" {
		a.HistoryPath = config.HistoryPath()
	}
	return nil
}

func (a *App) run(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("history") {
		limit, err := historyLimit(a.flags.history, args)
		if err != nil {
			return err
		}
		return a.showHistory(limit)
	}
	if a.flags.clear {
		return a.clearHistory()
	}

	keywords, passthrough := splitArgs(cmd, args)

	if !a.flags.system && a.ops.empty() && len(keywords) == 0 && len(passthrough) == 0 {
		return cmd.Help()
	}

	opts := manager.Options{
		DryRun:    a.cfg.General.DryRun,
		NoConfirm: a.cfg.General.NoConfirm,
	}
	registry := a.newRegistry(opts)

	// An explicit backend needs no host facts; the report always shows them.
	var sys *detector.SystemInfo
	if a.flags.system || a.cfg.General.DefaultPM == "" {
		sys = a.detect()
	}

	if a.flags.system {
		return a.showSystem(registry, sys)
	}

	op, err := a.ops.operation()
	if err != nil {
		return err
	}

	mgr, err := registry.Select(a.cfg.General.DefaultPM, sys)
	if err != nil {
		return err
	}
	a.logger.Debug("selected backend", "backend", mgr.Name(), "op", op)

	if a.cfg.General.Sudo && op.Mutating() && !opts.DryRun {
		if err := executor.CheckPrivileges(true); err != nil {
			a.logger.Warn("running without elevation", "err", err)
		}
	}

	req := manager.Request{
		Op:       op,
		Keywords: a.cfg.ResolveAliases(keywords),
		Flags:    passthrough,
	}
	var entry *history.Entry
	if !opts.DryRun && a.cfg.General.History {
		entry = history.NewEntry(op.String(), mgr.Name(), req.Keywords, req.Flags)
	}

	code, err := manager.NewDispatcher(mgr, req).Dispatch(cmd.Context())

	if entry != nil {
		entry.Finish(code, err)
		a.record(entry)
	}
	return err
}

// splitArgs separates keywords from the flags given after "--".
func splitArgs(cmd *cobra.Command, args []string) (keywords, passthrough []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

func (a *App) newRegistry(opts manager.Options) *manager.Registry {
	runnerOpts := executor.Options{
		Stdout: a.Stdout,
		Stderr: a.Stderr,
		Logger: a.logger,
		Sudo:   a.cfg.General.Sudo,
	}
	if f, ok := a.Stderr.(*os.File); ok {
		runnerOpts.Progress = ui.Progress(f)
	}

	runner := executor.New(runnerOpts)
	if a.CommandFunc != nil {
		runner.SetCommandFunc(a.CommandFunc)
	}

	registry := manager.NewRegistry(opts, runner)
	native.RegisterAll(registry, a.cfg.GetManagerConfig("apt").UseNala)
	return registry
}

// detect inspects the host. Detection problems are not fatal: Select reports
// when nothing matches.
func (a *App) detect() *detector.SystemInfo {
	detect := a.Detect
	if detect == nil {
		detect = detector.Detect
	}
	sys, err := detect()
	if err != nil {
		a.logger.Debug("system detection incomplete", "err", err)
	}
	return sys
}

func versionString() string {
	v := Version
	if Commit != "unknown" {
		v += " (" + Commit + ")"
	}
	if BuildTime != "unknown" {
		v += " built " + BuildTime
	}
	return v
}
