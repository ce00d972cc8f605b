package manager

import "context"

// Manager is the contract every wrapped package manager implements.
//
// There is one method per Operation so that a backend missing an operation
// fails to compile. Each method receives the user's keywords and passthrough
// flags verbatim; a backend that cannot express an operation returns an
// *UnsupportedError instead of doing nothing.
type Manager interface {
	// Name returns the short identifier for this manager (e.g., "apt", "choco").
	Name() string

	// Q lists installed packages.
	Q(ctx context.Context, kws, flags []string) error
	// Qc shows the changelog of a package.
	Qc(ctx context.Context, kws, flags []string) error
	// Qi displays local package information.
	Qi(ctx context.Context, kws, flags []string) error
	// Ql lists the files owned by a package.
	Ql(ctx context.Context, kws, flags []string) error
	// Qo finds the package owning a file.
	Qo(ctx context.Context, kws, flags []string) error
	// Qs searches installed packages.
	Qs(ctx context.Context, kws, flags []string) error
	// Qu lists packages with an update available.
	Qu(ctx context.Context, kws, flags []string) error

	// R removes packages, leaving their dependencies installed.
	R(ctx context.Context, kws, flags []string) error
	// Rn removes packages together with their configuration files.
	Rn(ctx context.Context, kws, flags []string) error
	// Rns removes packages, their configuration and unneeded dependencies.
	Rns(ctx context.Context, kws, flags []string) error
	// Rs removes packages and dependencies no other package requires.
	Rs(ctx context.Context, kws, flags []string) error

	// S installs packages by name.
	S(ctx context.Context, kws, flags []string) error
	// Sc removes old packages from the download cache.
	Sc(ctx context.Context, kws, flags []string) error
	// Scc removes everything from the download cache.
	Scc(ctx context.Context, kws, flags []string) error
	// Si displays remote package information.
	Si(ctx context.Context, kws, flags []string) error
	// Ss searches remote packages.
	Ss(ctx context.Context, kws, flags []string) error
	// Su upgrades outdated packages; no keywords means every package.
	Su(ctx context.Context, kws, flags []string) error
	// Suy refreshes the package database, then upgrades.
	Suy(ctx context.Context, kws, flags []string) error
	// Sw downloads packages without installing them.
	Sw(ctx context.Context, kws, flags []string) error
	// Sy refreshes the package database.
	Sy(ctx context.Context, kws, flags []string) error

	// U installs packages from local files.
	U(ctx context.Context, kws, flags []string) error
}

// ManagerInfo provides static information about a manager without requiring instantiation.
type ManagerInfo struct {
	Name        string
	DisplayName string
	Binary      string   // Primary binary, used for PATH detection on Windows
	Aliases     []string // Other names accepted by --using
}
