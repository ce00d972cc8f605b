package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Zypper drives openSUSE/SLES zypper. File queries go through rpm.
type Zypper struct {
	BaseManager
}

var _ manager.Manager = (*Zypper)(nil)

// NewZypper creates a Zypper backend.
func NewZypper(opts manager.Options, runner *executor.Runner) *Zypper {
	return &Zypper{
		BaseManager: newBase("zypper", "zypper", []string{"--no-confirm"}, true, opts, runner),
	}
}

// Q lists installed packages.
func (z *Zypper) Q(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.query([]string{"packages", "--installed-only"}, kws, flags))
}

// Qc shows package changelogs.
func (z *Zypper) Qc(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.queryWith("rpm", []string{"-q", "--changelog"}, kws, flags))
}

// Qi displays package information; zypper info covers installed and available packages.
func (z *Zypper) Qi(ctx context.Context, kws, flags []string) error {
	return z.Si(ctx, kws, flags)
}

// Ql lists files owned by packages.
func (z *Zypper) Ql(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.queryWith("rpm", []string{"-ql"}, kws, flags))
}

// Qo finds the packages owning files.
func (z *Zypper) Qo(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.queryWith("rpm", []string{"-qf"}, kws, flags))
}

// Qs searches installed packages.
func (z *Zypper) Qs(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.query([]string{"search", "--installed-only"}, kws, flags))
}

// Qu lists available updates.
func (z *Zypper) Qu(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.query([]string{"list-updates"}, kws, flags))
}

// R removes packages.
func (z *Zypper) R(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"remove"}, kws, flags))
}

// Rn is not available in zypper.
func (z *Zypper) Rn(_ context.Context, _, _ []string) error {
	return z.unsupported(manager.OpRn)
}

// Rns is not available in zypper.
func (z *Zypper) Rns(_ context.Context, _, _ []string) error {
	return z.unsupported(manager.OpRns)
}

// Rs removes packages and their unneeded dependencies.
func (z *Zypper) Rs(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"remove", "--clean-deps"}, kws, flags))
}

// S installs packages.
func (z *Zypper) S(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"install"}, kws, flags))
}

// Sc cleans cached packages.
func (z *Zypper) Sc(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.change([]string{"clean"}, kws, flags))
}

// Scc cleans cached packages and metadata.
func (z *Zypper) Scc(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.change([]string{"clean", "--all"}, kws, flags))
}

// Si displays package information.
func (z *Zypper) Si(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.query([]string{"info"}, kws, flags))
}

// Ss searches remote packages.
func (z *Zypper) Ss(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.query([]string{"search"}, kws, flags))
}

// Su updates the named packages. zypper updates everything when given no names.
func (z *Zypper) Su(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"update"}, kws, flags))
}

// Suy refreshes the repositories, then updates.
func (z *Zypper) Suy(ctx context.Context, kws, flags []string) error {
	return z.runAll(ctx,
		z.step(z.change([]string{"refresh"}, nil, nil), executor.ModeTolerant),
		z.step(z.confirmed([]string{"update"}, kws, flags), executor.ModeFailFast),
	)
}

// Sw downloads packages without installing them.
func (z *Zypper) Sw(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"install", "--download-only"}, kws, flags))
}

// Sy refreshes the repositories.
func (z *Zypper) Sy(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.change([]string{"refresh"}, kws, flags))
}

// U installs local .rpm files.
func (z *Zypper) U(ctx context.Context, kws, flags []string) error {
	return z.run(ctx, z.confirmed([]string{"install"}, kws, flags))
}
