package native

import (
	"context"
	"os/exec"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// APT drives Debian/Ubuntu's apt, or nala when preferred and installed.
// Local package queries go through dpkg-query.
type APT struct {
	BaseManager
}

var _ manager.Manager = (*APT)(nil)

// NewAPT creates an APT backend.
func NewAPT(opts manager.Options, runner *executor.Runner, useNala bool) *APT {
	program := "apt"
	if useNala {
		if _, err := exec.LookPath("nala"); err == nil {
			program = "nala"
		}
	}

	return &APT{
		BaseManager: newBase("apt", program, []string{"--yes"}, true, opts, runner),
	}
}

// Q lists installed packages.
func (a *APT) Q(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.queryWith("dpkg-query", []string{"-l"}, kws, flags))
}

// Qc shows package changelogs.
func (a *APT) Qc(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.queryWith("apt", []string{"changelog"}, kws, flags))
}

// Qi displays information on installed packages.
func (a *APT) Qi(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.queryWith("dpkg-query", []string{"-s"}, kws, flags))
}

// Ql lists files owned by packages.
func (a *APT) Ql(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.queryWith("dpkg-query", []string{"-L"}, kws, flags))
}

// Qo finds the packages owning files.
func (a *APT) Qo(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.queryWith("dpkg-query", []string{"-S"}, kws, flags))
}

// Qs searches installed packages.
func (a *APT) Qs(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"list", "--installed"}, kws, flags))
}

// Qu lists upgradable packages.
func (a *APT) Qu(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"list", "--upgradable"}, kws, flags))
}

// R removes packages.
func (a *APT) R(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"remove"}, kws, flags))
}

// Rn purges packages.
func (a *APT) Rn(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"purge"}, kws, flags))
}

// Rns purges packages and their unneeded dependencies.
func (a *APT) Rns(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"autoremove", "--purge"}, kws, flags))
}

// Rs removes packages and their unneeded dependencies.
func (a *APT) Rs(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"autoremove"}, kws, flags))
}

// S installs packages.
func (a *APT) S(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"install"}, kws, flags))
}

// Sc removes package files that can no longer be downloaded.
func (a *APT) Sc(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"autoclean"}, kws, flags))
}

// Scc empties the package cache.
func (a *APT) Scc(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"clean"}, kws, flags))
}

// Si displays remote package information.
func (a *APT) Si(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"show"}, kws, flags))
}

// Ss searches remote packages.
func (a *APT) Ss(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"search"}, kws, flags))
}

// Su upgrades every package, or only the named ones.
func (a *APT) Su(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.upgrade(kws, flags))
}

// Suy refreshes the package lists, then upgrades.
func (a *APT) Suy(ctx context.Context, kws, flags []string) error {
	return a.runAll(ctx,
		a.step(a.change([]string{"update"}, nil, nil), executor.ModeTolerant),
		a.step(a.upgrade(kws, flags), executor.ModeFailFast),
	)
}

func (a *APT) upgrade(kws, flags []string) executor.Command {
	if len(kws) == 0 {
		return a.confirmed([]string{"upgrade"}, nil, flags)
	}
	return a.confirmed([]string{"install", "--only-upgrade"}, kws, flags)
}

// Sw downloads packages into the cache without installing them.
func (a *APT) Sw(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"install", "--download-only"}, kws, flags))
}

// Sy refreshes the package lists.
func (a *APT) Sy(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"update"}, kws, flags))
}

// U installs local .deb files.
func (a *APT) U(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"install"}, kws, flags))
}
