package native

import (
	"context"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Scoop drives the Scoop installer for Windows. It installs per user and never prompts.
type Scoop struct {
	BaseManager
}

var _ manager.Manager = (*Scoop)(nil)

// NewScoop creates a Scoop backend.
func NewScoop(opts manager.Options, runner *executor.Runner) *Scoop {
	return &Scoop{
		BaseManager: newBase("scoop", "scoop", nil, false, opts, runner),
	}
}

// Q lists installed apps.
func (s *Scoop) Q(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"list"}, kws, flags))
}

// Qc is not available in scoop.
func (s *Scoop) Qc(_ context.Context, _, _ []string) error {
	return s.unsupported(manager.OpQc)
}

// Qi displays app information; scoop does not distinguish local from remote.
func (s *Scoop) Qi(ctx context.Context, kws, flags []string) error {
	return s.Si(ctx, kws, flags)
}

// Ql is not available in scoop.
func (s *Scoop) Ql(_ context.Context, _, _ []string) error {
	return s.unsupported(manager.OpQl)
}

// Qo finds the app that provides a command.
func (s *Scoop) Qo(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"which"}, kws, flags))
}

// Qs searches installed apps.
func (s *Scoop) Qs(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"list"}, kws, flags))
}

// Qu lists apps with a newer version available.
func (s *Scoop) Qu(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"status"}, kws, flags))
}

// R uninstalls apps.
func (s *Scoop) R(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.confirmed([]string{"uninstall"}, kws, flags))
}

// Rn uninstalls apps and their persisted data.
func (s *Scoop) Rn(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.confirmed([]string{"uninstall", "--purge"}, kws, flags))
}

// Rns is not available in scoop.
func (s *Scoop) Rns(_ context.Context, _, _ []string) error {
	return s.unsupported(manager.OpRns)
}

// Rs is not available in scoop.
func (s *Scoop) Rs(_ context.Context, _, _ []string) error {
	return s.unsupported(manager.OpRs)
}

// S installs apps.
func (s *Scoop) S(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.confirmed([]string{"install"}, kws, flags))
}

// Sc removes old versions of every app.
func (s *Scoop) Sc(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.change([]string{"cleanup", "--all"}, kws, flags))
}

// Scc empties the download cache.
func (s *Scoop) Scc(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.change([]string{"cache", "rm", "--all"}, kws, flags))
}

// Si displays app information.
func (s *Scoop) Si(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"info"}, kws, flags))
}

// Ss searches buckets.
func (s *Scoop) Ss(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.query([]string{"search"}, kws, flags))
}

// Su updates the named apps, or every app via scoop's "*" keyword.
func (s *Scoop) Su(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.upgrade(kws, flags))
}

// Suy updates scoop and its buckets, then the apps.
func (s *Scoop) Suy(ctx context.Context, kws, flags []string) error {
	return s.runAll(ctx,
		s.step(s.change([]string{"update"}, nil, nil), executor.ModeSilent),
		s.step(s.upgrade(kws, flags), executor.ModeFailFast),
	)
}

func (s *Scoop) upgrade(kws, flags []string) executor.Command {
	if len(kws) == 0 {
		kws = []string{"*"}
	}
	return s.confirmed([]string{"update"}, kws, flags)
}

// Sw downloads apps into the cache without installing them.
func (s *Scoop) Sw(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.confirmed([]string{"download"}, kws, flags))
}

// Sy updates scoop and its buckets.
func (s *Scoop) Sy(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.change([]string{"update"}, kws, flags))
}

// U installs apps from local manifests.
func (s *Scoop) U(ctx context.Context, kws, flags []string) error {
	return s.run(ctx, s.confirmed([]string{"install"}, kws, flags))
}
