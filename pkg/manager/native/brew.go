package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Brew drives Homebrew. brew never prompts and must not run as root.
type Brew struct {
	BaseManager
}

var _ manager.Manager = (*Brew)(nil)

// NewBrew creates a Homebrew backend.
func NewBrew(opts manager.Options, runner *executor.Runner) *Brew {
	return &Brew{
		BaseManager: newBase("brew", "brew", nil, false, opts, runner),
	}
}

// Q lists installed formulae and casks.
func (b *Brew) Q(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"list"}, kws, flags))
}

// Qc shows the commit history of formulae.
func (b *Brew) Qc(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"log"}, kws, flags))
}

// Qi displays formula information; brew does not distinguish local from remote.
func (b *Brew) Qi(ctx context.Context, kws, flags []string) error {
	return b.Si(ctx, kws, flags)
}

// Ql lists files installed by formulae.
func (b *Brew) Ql(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"list", "--verbose"}, kws, flags))
}

// Qo is not available in brew.
func (b *Brew) Qo(_ context.Context, _, _ []string) error {
	return b.unsupported(manager.OpQo)
}

// Qs is not available in brew.
func (b *Brew) Qs(_ context.Context, _, _ []string) error {
	return b.unsupported(manager.OpQs)
}

// Qu lists outdated formulae and casks.
func (b *Brew) Qu(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"outdated"}, kws, flags))
}

// R uninstalls formulae.
func (b *Brew) R(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.confirmed([]string{"uninstall"}, kws, flags))
}

// Rn uninstalls casks together with their settings.
func (b *Brew) Rn(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.confirmed([]string{"uninstall", "--zap"}, kws, flags))
}

// Rns zaps casks, then removes orphaned dependencies.
func (b *Brew) Rns(ctx context.Context, kws, flags []string) error {
	return b.runAll(ctx,
		b.step(b.confirmed([]string{"uninstall", "--zap"}, kws, flags), executor.ModeFailFast),
		b.step(b.change([]string{"autoremove"}, nil, nil), executor.ModeTolerant),
	)
}

// Rs uninstalls formulae, then removes orphaned dependencies.
func (b *Brew) Rs(ctx context.Context, kws, flags []string) error {
	return b.runAll(ctx,
		b.step(b.confirmed([]string{"uninstall"}, kws, flags), executor.ModeFailFast),
		b.step(b.change([]string{"autoremove"}, nil, nil), executor.ModeTolerant),
	)
}

// S installs formulae or casks.
func (b *Brew) S(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.confirmed([]string{"install"}, kws, flags))
}

// Sc removes outdated downloads and old versions.
func (b *Brew) Sc(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.change([]string{"cleanup"}, kws, flags))
}

// Scc removes every cached download.
func (b *Brew) Scc(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.change([]string{"cleanup", "--prune=all", "-s"}, kws, flags))
}

// Si displays formula information.
func (b *Brew) Si(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"info"}, kws, flags))
}

// Ss searches formulae and casks.
func (b *Brew) Ss(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.query([]string{"search"}, kws, flags))
}

// Su upgrades outdated formulae. brew upgrades everything when given no names.
func (b *Brew) Su(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.confirmed([]string{"upgrade"}, kws, flags))
}

// Suy fetches the newest Homebrew and formulae, then upgrades.
func (b *Brew) Suy(ctx context.Context, kws, flags []string) error {
	return b.runAll(ctx,
		b.step(b.change([]string{"update"}, nil, nil), executor.ModeSilent),
		b.step(b.confirmed([]string{"upgrade"}, kws, flags), executor.ModeFailFast),
	)
}

// Sw downloads formulae without installing them.
func (b *Brew) Sw(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.confirmed([]string{"fetch"}, kws, flags))
}

// Sy fetches the newest Homebrew and formulae.
func (b *Brew) Sy(ctx context.Context, kws, flags []string) error {
	return b.run(ctx, b.change([]string{"update"}, kws, flags))
}

// U is not available in brew.
func (b *Brew) U(_ context.Context, _, _ []string) error {
	return b.unsupported(manager.OpU)
}
