package native

import (
	"pacwrap/internal/executor"
	"pacwrap/pkg/manager"
)

// Infos describes every backend in this package.
var Infos = []manager.ManagerInfo{
	{Name: "apk", DisplayName: "APK (Alpine)", Binary: "apk"},
	{Name: "apt", DisplayName: "APT (Debian/Ubuntu)", Binary: "apt", Aliases: []string{"apt-get"}},
	{Name: "brew", DisplayName: "Homebrew", Binary: "brew", Aliases: []string{"homebrew"}},
	{Name: "choco", DisplayName: "Chocolatey", Binary: "choco", Aliases: []string{"chocolatey"}},
	{Name: "dnf", DisplayName: "DNF (Fedora/RHEL)", Binary: "dnf", Aliases: []string{"yum"}},
	{Name: "scoop", DisplayName: "Scoop", Binary: "scoop"},
	{Name: "winget", DisplayName: "Windows Package Manager", Binary: "winget"},
	{Name: "zypper", DisplayName: "Zypper (openSUSE)", Binary: "zypper"},
}

// RegisterAll adds every backend to reg. useNala makes apt run through nala when it is installed.
func RegisterAll(reg *manager.Registry, useNala bool) {
	factories := map[string]manager.Factory{
		"apk":    func(opts manager.Options, r *executor.Runner) manager.Manager { return NewAPK(opts, r) },
		"apt":    func(opts manager.Options, r *executor.Runner) manager.Manager { return NewAPT(opts, r, useNala) },
		"brew":   func(opts manager.Options, r *executor.Runner) manager.Manager { return NewBrew(opts, r) },
		"choco":  func(opts manager.Options, r *executor.Runner) manager.Manager { return NewChocolatey(opts, r) },
		"dnf":    func(opts manager.Options, r *executor.Runner) manager.Manager { return NewDNF(opts, r) },
		"scoop":  func(opts manager.Options, r *executor.Runner) manager.Manager { return NewScoop(opts, r) },
		"winget": func(opts manager.Options, r *executor.Runner) manager.Manager { return NewWinget(opts, r) },
		"zypper": func(opts manager.Options, r *executor.Runner) manager.Manager { return NewZypper(opts, r) },
	}

	for _, info := range Infos {
		reg.Register(info, factories[info.Name])
	}
}
