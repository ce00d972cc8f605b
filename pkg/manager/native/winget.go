package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Winget drives the Windows Package Manager.
//
// winget acts on a single package per invocation, so installs, removals and
// upgrades run once per keyword; one failing package does not stop the rest.
type Winget struct {
	BaseManager
}

var _ manager.Manager = (*Winget)(nil)

// NewWinget creates a winget backend.
func NewWinget(opts manager.Options, runner *executor.Runner) *Winget {
	return &Winget{
		BaseManager: newBase("winget", "winget", []string{"--disable-interactivity"}, false, opts, runner),
	}
}

// perKeyword returns a builder for a confirmed command with fixed tokens sub.
func (w *Winget) perKeyword(sub, flags []string) func(kws []string) executor.Command {
	return func(kws []string) executor.Command {
		return w.confirmed(sub, kws, flags)
	}
}

// Q lists installed packages.
func (w *Winget) Q(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.query([]string{"list"}, kws, flags))
}

// Qc is not available in winget.
func (w *Winget) Qc(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpQc)
}

// Qi displays package information; winget does not distinguish local from remote.
func (w *Winget) Qi(ctx context.Context, kws, flags []string) error {
	return w.Si(ctx, kws, flags)
}

// Ql is not available in winget.
func (w *Winget) Ql(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpQl)
}

// Qo is not available in winget.
func (w *Winget) Qo(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpQo)
}

// Qs searches installed packages.
func (w *Winget) Qs(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.query([]string{"list", "--query"}, kws, flags))
}

// Qu lists packages with an upgrade available.
func (w *Winget) Qu(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.query([]string{"upgrade"}, kws, flags))
}

// R uninstalls packages, one at a time.
func (w *Winget) R(ctx context.Context, kws, flags []string) error {
	return w.eachKeyword(ctx, w.perKeyword([]string{"uninstall"}, flags), kws)
}

// Rn uninstalls packages and their data, one at a time.
func (w *Winget) Rn(ctx context.Context, kws, flags []string) error {
	return w.eachKeyword(ctx, w.perKeyword([]string{"uninstall", "--purge"}, flags), kws)
}

// Rns is not available in winget.
func (w *Winget) Rns(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpRns)
}

// Rs is not available in winget.
func (w *Winget) Rs(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpRs)
}

// S installs packages, one at a time.
func (w *Winget) S(ctx context.Context, kws, flags []string) error {
	return w.eachKeyword(ctx, w.perKeyword([]string{"install"}, flags), kws)
}

// Sc is not available in winget.
func (w *Winget) Sc(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpSc)
}

// Scc is not available in winget.
func (w *Winget) Scc(_ context.Context, _, _ []string) error {
	return w.unsupported(manager.OpScc)
}

// Si displays package information.
func (w *Winget) Si(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.query([]string{"show"}, kws, flags))
}

// Ss searches the configured sources.
func (w *Winget) Ss(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.query([]string{"search"}, kws, flags))
}

// Su upgrades the named packages one at a time, or every package via "--all".
func (w *Winget) Su(ctx context.Context, kws, flags []string) error {
	return w.runAll(ctx, w.upgrade(kws, flags)...)
}

// Suy refreshes the sources, then upgrades.
func (w *Winget) Suy(ctx context.Context, kws, flags []string) error {
	steps := []executor.Step{
		w.step(w.change([]string{"source", "update"}, nil, nil), executor.ModeTolerant),
	}
	return w.runAll(ctx, append(steps, w.upgrade(kws, flags)...)...)
}

func (w *Winget) upgrade(kws, flags []string) []executor.Step {
	if len(kws) == 0 {
		return []executor.Step{
			w.step(w.confirmed([]string{"upgrade"}, []string{"--all"}, flags), executor.ModeFailFast),
		}
	}
	steps := make([]executor.Step, 0, len(kws))
	for _, kw := range kws {
		steps = append(steps, w.step(w.confirmed([]string{"upgrade"}, []string{kw}, flags), executor.ModeTolerant))
	}
	return steps
}

// Sw downloads installers without installing them.
func (w *Winget) Sw(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.confirmed([]string{"download"}, kws, flags))
}

// Sy refreshes the configured sources.
func (w *Winget) Sy(ctx context.Context, kws, flags []string) error {
	return w.run(ctx, w.change([]string{"source", "update"}, kws, flags))
}

// U installs packages from local manifests, one at a time.
func (w *Winget) U(ctx context.Context, kws, flags []string) error {
	return w.eachKeyword(ctx, w.perKeyword([]string{"install", "--manifest"}, flags), kws)
}
