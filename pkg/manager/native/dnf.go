package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// DNF drives Fedora/RHEL's dnf.
type DNF struct {
	BaseManager
}

var _ manager.Manager = (*DNF)(nil)

// NewDNF creates a DNF backend.
func NewDNF(opts manager.Options, runner *executor.Runner) *DNF {
	return &DNF{
		BaseManager: newBase("dnf", "dnf", []string{"--assumeyes"}, true, opts, runner),
	}
}

// Q lists installed packages.
func (d *DNF) Q(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"list", "--installed"}, kws, flags))
}

// Qc shows package changelogs.
func (d *DNF) Qc(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"changelog"}, kws, flags))
}

// Qi displays information on installed packages.
func (d *DNF) Qi(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"info", "--installed"}, kws, flags))
}

// Ql lists files owned by installed packages.
func (d *DNF) Ql(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"repoquery", "--installed", "--list"}, kws, flags))
}

// Qo finds the packages providing files.
func (d *DNF) Qo(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"provides"}, kws, flags))
}

// Qs searches installed packages.
func (d *DNF) Qs(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"list", "--installed"}, kws, flags))
}

// Qu lists available upgrades.
func (d *DNF) Qu(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"list", "--upgrades"}, kws, flags))
}

// R removes packages.
func (d *DNF) R(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"remove"}, kws, flags))
}

// Rn is not available in dnf.
func (d *DNF) Rn(_ context.Context, _, _ []string) error {
	return d.unsupported(manager.OpRn)
}

// Rns is not available in dnf.
func (d *DNF) Rns(_ context.Context, _, _ []string) error {
	return d.unsupported(manager.OpRns)
}

// Rs removes packages and dependencies nothing else needs.
func (d *DNF) Rs(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"autoremove"}, kws, flags))
}

// S installs packages.
func (d *DNF) S(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"install"}, kws, flags))
}

// Sc marks cached metadata expired.
func (d *DNF) Sc(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.change([]string{"clean", "expire-cache"}, kws, flags))
}

// Scc removes all cached data.
func (d *DNF) Scc(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.change([]string{"clean", "all"}, kws, flags))
}

// Si displays package information.
func (d *DNF) Si(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"info"}, kws, flags))
}

// Ss searches remote packages.
func (d *DNF) Ss(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.query([]string{"search"}, kws, flags))
}

// Su upgrades the named packages. dnf upgrades everything when given no names.
func (d *DNF) Su(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"upgrade"}, kws, flags))
}

// Suy refreshes the metadata cache, then upgrades.
func (d *DNF) Suy(ctx context.Context, kws, flags []string) error {
	return d.runAll(ctx,
		d.step(d.change([]string{"makecache"}, nil, nil), executor.ModeTolerant),
		d.step(d.confirmed([]string{"upgrade"}, kws, flags), executor.ModeFailFast),
	)
}

// Sw downloads packages into the current directory.
func (d *DNF) Sw(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"download"}, kws, flags))
}

// Sy refreshes the metadata cache.
func (d *DNF) Sy(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.change([]string{"makecache"}, kws, flags))
}

// U installs local .rpm files.
func (d *DNF) U(ctx context.Context, kws, flags []string) error {
	return d.run(ctx, d.confirmed([]string{"install"}, kws, flags))
}
