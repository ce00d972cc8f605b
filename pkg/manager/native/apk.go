package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// APK drives Alpine Linux's apk. It never prompts, so it has no confirmation token.
type APK struct {
	BaseManager
}

var _ manager.Manager = (*APK)(nil)

// NewAPK creates an APK backend.
func NewAPK(opts manager.Options, runner *executor.Runner) *APK {
	return &APK{
		BaseManager: newBase("apk", "apk", nil, true, opts, runner),
	}
}

// Q lists installed packages.
func (a *APK) Q(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"info"}, kws, flags))
}

// Qc is not available in apk.
func (a *APK) Qc(_ context.Context, _, _ []string) error {
	return a.unsupported(manager.OpQc)
}

// Qi displays package information; apk does not distinguish local from remote.
func (a *APK) Qi(ctx context.Context, kws, flags []string) error {
	return a.Si(ctx, kws, flags)
}

// Ql lists files owned by packages.
func (a *APK) Ql(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"info", "--contents"}, kws, flags))
}

// Qo finds the packages owning files.
func (a *APK) Qo(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"info", "--who-owns"}, kws, flags))
}

// Qs searches installed packages.
func (a *APK) Qs(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"list", "--installed"}, kws, flags))
}

// Qu lists upgradable packages.
func (a *APK) Qu(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"version", "-l", "<"}, kws, flags))
}

// R removes packages.
func (a *APK) R(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"del"}, kws, flags))
}

// Rn removes packages and their configuration.
func (a *APK) Rn(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"del", "--purge"}, kws, flags))
}

// Rns removes packages, their configuration and their dependents.
func (a *APK) Rns(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"del", "--purge", "--rdepends"}, kws, flags))
}

// Rs removes packages and their dependents.
func (a *APK) Rs(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"del", "--rdepends"}, kws, flags))
}

// S installs packages.
func (a *APK) S(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"add"}, kws, flags))
}

// Sc removes stale files from the package cache.
func (a *APK) Sc(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"cache", "clean"}, kws, flags))
}

// Scc removes every file from the package cache.
func (a *APK) Scc(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"cache", "purge"}, kws, flags))
}

// Si displays package information.
func (a *APK) Si(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"info", "-a"}, kws, flags))
}

// Ss searches remote packages.
func (a *APK) Ss(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.query([]string{"search", "-v"}, kws, flags))
}

// Su upgrades every package, or only the named ones.
func (a *APK) Su(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.upgrade(kws, flags))
}

// Suy refreshes the repository indexes, then upgrades.
func (a *APK) Suy(ctx context.Context, kws, flags []string) error {
	return a.runAll(ctx,
		a.step(a.change([]string{"update"}, nil, nil), executor.ModeSilent),
		a.step(a.upgrade(kws, flags), executor.ModeFailFast),
	)
}

func (a *APK) upgrade(kws, flags []string) executor.Command {
	if len(kws) == 0 {
		return a.confirmed([]string{"upgrade"}, nil, flags)
	}
	return a.confirmed([]string{"add", "--upgrade"}, kws, flags)
}

// Sw downloads packages without installing them.
func (a *APK) Sw(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"fetch"}, kws, flags))
}

// Sy refreshes the repository indexes.
func (a *APK) Sy(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.change([]string{"update"}, kws, flags))
}

// U installs local .apk files.
func (a *APK) U(ctx context.Context, kws, flags []string) error {
	return a.run(ctx, a.confirmed([]string{"add", "--allow-untrusted"}, kws, flags))
}
