package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Chocolatey drives Windows' choco.
type Chocolatey struct {
	BaseManager
}

var _ manager.Manager = (*Chocolatey)(nil)

// NewChocolatey creates a Chocolatey backend.
func NewChocolatey(opts manager.Options, runner *executor.Runner) *Chocolatey {
	return &Chocolatey{
		BaseManager: newBase("choco", "choco", []string{"--yes"}, true, opts, runner),
	}
}

// Q lists installed packages.
func (c *Chocolatey) Q(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.query([]string{"list"}, kws, flags))
}

// Qc is not available in choco.
func (c *Chocolatey) Qc(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpQc)
}

// Qi displays package information; choco does not distinguish local from remote.
func (c *Chocolatey) Qi(ctx context.Context, kws, flags []string) error {
	return c.Si(ctx, kws, flags)
}

// Ql is not available in choco.
func (c *Chocolatey) Ql(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpQl)
}

// Qo is not available in choco.
func (c *Chocolatey) Qo(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpQo)
}

// Qs searches installed packages.
func (c *Chocolatey) Qs(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.query([]string{"list"}, kws, flags))
}

// Qu lists outdated packages.
func (c *Chocolatey) Qu(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.query([]string{"outdated"}, kws, flags))
}

// R uninstalls packages.
func (c *Chocolatey) R(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.confirmed([]string{"uninstall"}, kws, flags))
}

// Rn is not available in choco.
func (c *Chocolatey) Rn(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpRn)
}

// Rns is not available in choco.
func (c *Chocolatey) Rns(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpRns)
}

// Rs uninstalls packages and their dependencies.
func (c *Chocolatey) Rs(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.confirmed([]string{"uninstall", "--removedependencies"}, kws, flags))
}

// S installs packages.
func (c *Chocolatey) S(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.confirmed([]string{"install"}, kws, flags))
}

// Sc removes expired items from the HTTP cache.
func (c *Chocolatey) Sc(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.change([]string{"cache", "remove", "--expired"}, kws, flags))
}

// Scc removes every item from the HTTP cache.
func (c *Chocolatey) Scc(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.change([]string{"cache", "remove"}, kws, flags))
}

// Si displays package information.
func (c *Chocolatey) Si(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.query([]string{"info"}, kws, flags))
}

// Ss searches remote packages.
func (c *Chocolatey) Ss(ctx context.Context, kws, flags []string) error {
	return c.run(ctx, c.query([]string{"search"}, kws, flags))
}

// Su upgrades the named packages, or every package via choco's "all" keyword.
func (c *Chocolatey) Su(ctx context.Context, kws, flags []string) error {
	if len(kws) == 0 {
		kws = []string{"all"}
	}
	return c.run(ctx, c.confirmed([]string{"upgrade"}, kws, flags))
}

// Suy is Su: choco has no separate refresh step.
func (c *Chocolatey) Suy(ctx context.Context, kws, flags []string) error {
	return c.Su(ctx, kws, flags)
}

// Sw is not available in choco.
func (c *Chocolatey) Sw(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpSw)
}

// Sy is not available in choco.
func (c *Chocolatey) Sy(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpSy)
}

// U is not available in choco.
func (c *Chocolatey) U(_ context.Context, _, _ []string) error {
	return c.unsupported(manager.OpU)
}
