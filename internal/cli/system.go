package cli

import (
	"fmt"
	"strings"

	"pacwrap/internal/config"
	"pacwrap/internal/executor"
	"pacwrap/internal/ui"
	"pacwrap/pkg/manager"
	"pacwrap/pkg/manager/detector"
)

// showSystem prints the detected host and the backend an operation would use.
func (a *App) showSystem(registry *manager.Registry, sys *detector.SystemInfo) error {
	if sys == nil {
		ui.WarningMsg(a.Stdout, "System information not available")
		sys = &detector.SystemInfo{OS: detector.OSUnknown}
	}

	backend, program := "none detected", ""
	if mgr, err := registry.Select(a.cfg.General.DefaultPM, sys); err == nil {
		backend = mgr.Name()
		if p, ok := mgr.(interface{ Program() string }); ok {
			program = p.Program()
		}
		if info, ok := registry.Info(mgr.Name()); ok {
			backend = fmt.Sprintf("%s (%s)", info.Name, info.DisplayName)
		}
		if a.cfg.General.DefaultPM != "" {
			backend += " [override]"
		}
	} else if manager.IsConfigError(err) && a.cfg.General.DefaultPM != "" {
		return err
	}

	configPath := a.flags.configFile
	if configPath == "" {
		configPath = config.ConfigPath()
	}

	fields := []ui.Field{
		{Label: "OS", Value: string(sys.OS)},
		{Label: "Arch", Value: sys.Arch},
		{Label: "Distribution", Value: sys.Label()},
		{Label: "ID", Value: sys.Distribution},
		{Label: "Family", Value: strings.Join(sys.DistroFamily, ", ")},
		{Label: "Version", Value: sys.VersionID},
		{Label: "Backend", Value: backend},
		{Label: "Program", Value: program},
		{Label: "Available", Value: strings.Join(registry.Names(), ", ")},
		{Label: "Privileges", Value: privileges()},
		{Label: "Aliases", Value: strings.Join(a.cfg.AliasNames(), ", ")},
		{Label: "Config", Value: configPath},
		{Label: "History", Value: a.HistoryPath},
	}

	fmt.Fprintln(a.Stdout, ui.RenderReport("pacwrap "+Version, fields))
	return nil
}

func privileges() string {
	switch {
	case executor.IsRoot():
		return "root"
	case executor.HasSudo():
		return "sudo available"
	default:
		return "none"
	}
}
