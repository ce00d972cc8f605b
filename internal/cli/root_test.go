package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacwrap/internal/history"
	"pacwrap/pkg/manager"
	"pacwrap/pkg/manager/detector"
)

func helperCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the fake package manager: a "broken" keyword exits 4
// and a "slow" keyword takes a fifth of a second.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	for _, arg := range args {
		switch arg {
		case "broken":
			os.Exit(4)
		case "slow":
			time.Sleep(200 * time.Millisecond)
		}
	}
	fmt.Println(strings.Join(args, " "))
	os.Exit(0)
}

type testApp struct {
	*App
	out    bytes.Buffer
	errOut bytes.Buffer
	calls   [][]string
	detects int
	dir     string
}

func newTestApp(t *testing.T, sys *detector.SystemInfo) *testApp {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")

	ta := &testApp{dir: dir}
	ta.App = &App{
		Stdout:      &ta.out,
		Stderr:      &ta.errOut,
		HistoryPath: filepath.Join(dir, "history.db"),
		Detect: func() (*detector.SystemInfo, error) {
			ta.detects++
			return sys, nil
		},
		CommandFunc: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			ta.calls = append(ta.calls, append([]string{name}, args...))
			return helperCommand(ctx, name, args...)
		},
	}
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) (int, error) {
	t.Helper()
	return ta.Run(context.Background(), args)
}

func (ta *testApp) writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(ta.dir, "pacwrap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (ta *testApp) seedHistory(t *testing.T, keywords ...string) {
	t.Helper()
	store, err := history.Open(ta.HistoryPath)
	require.NoError(t, err)
	defer store.Close()

	for _, kw := range keywords {
		entry := history.NewEntry("-S", "dnf", []string{kw}, nil)
		entry.Finish(0, nil)
		require.NoError(t, store.Record(entry))
	}
}

func (ta *testApp) history(t *testing.T) []history.Entry {
	t.Helper()
	store, err := history.Open(ta.HistoryPath)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.List(0)
	require.NoError(t, err)
	return entries
}

var fedora = &detector.SystemInfo{OS: detector.OSLinux, Arch: "amd64", Distribution: "fedora", PrettyName: "Fedora Linux 40", VersionID: "40"}

func TestDryRunPrintsWithoutSpawning(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t, "-S", "vim", "--dryrun")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "[dry-run] dnf install vim\n", ta.out.String())
	assert.Empty(t, ta.calls)
	assert.Empty(t, ta.history(t), "dry runs are not recorded")
}

func TestCombinedFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-Syu"}, "[dry-run] apt update\n[dry-run] apt upgrade\n"},
		{[]string{"-Suy"}, "[dry-run] apt update\n[dry-run] apt upgrade\n"},
		{[]string{"-S", "-y", "-u"}, "[dry-run] apt update\n[dry-run] apt upgrade\n"},
		{[]string{"-Scc"}, "[dry-run] apt clean\n"},
		{[]string{"-Rns", "vim"}, "[dry-run] apt autoremove --purge vim\n"},
		{[]string{"-Qi", "bash"}, "[dry-run] dpkg-query -s bash\n"},
		{[]string{"-Ss", "editor"}, "[dry-run] apt search editor\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			ta := newTestApp(t, fedora)
			args := append([]string{"--using", "apt", "--dry-run"}, tt.args...)

			_, err := ta.run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ta.out.String())
		})
	}
}

func TestPassthroughFlagsAfterDash(t *testing.T) {
	ta := newTestApp(t, fedora)

	_, err := ta.run(t, "--pm", "apt", "--dryrun", "--yes", "-S", "vim", "git", "--", "--no-install-recommends")
	require.NoError(t, err)
	assert.Equal(t, "[dry-run] apt install --yes vim git --no-install-recommends\n", ta.out.String())
}

func TestRunsSelectedBackendAndRecordsHistory(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t, "-S", "vim", "--noconfirm")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.Len(t, ta.calls, 1)
	assert.Equal(t, []string{"dnf", "install", "--assumeyes", "vim"}, ta.calls[0])
	assert.Contains(t, ta.out.String(), "install --assumeyes vim")

	entries := ta.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "-S", entries[0].Operation)
	assert.Equal(t, "dnf", entries[0].Backend)
	assert.Equal(t, []string{"vim"}, entries[0].Keywords)
	assert.True(t, entries[0].Success)
}

func TestChildExitStatusIsPropagated(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t, "-S", "broken")
	require.Error(t, err)
	assert.Equal(t, 4, code)

	entries := ta.history(t)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, 4, entries[0].ExitCode)
}

func TestRecordedDurationCoversTheRun(t *testing.T) {
	ta := newTestApp(t, fedora)

	_, err := ta.run(t, "-S", "slow")
	require.NoError(t, err)

	entries := ta.history(t)
	require.Len(t, entries, 1)
	assert.GreaterOrEqual(t, entries[0].Duration, 150*time.Millisecond)
}

func TestExplicitBackendSkipsDetection(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"flag", []string{"--using", "apk", "-S", "vim"}},
		{"unknown flag value", []string{"--using", "pacman", "-S", "vim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, fedora)
			_, _ = ta.run(t, tt.args...)
			assert.Zero(t, ta.detects)
		})
	}

	t.Run("config", func(t *testing.T) {
		ta := newTestApp(t, fedora)
		path := ta.writeConfig(t, "[general]\ndefault_pm = \"zypper\"\n")

		_, err := ta.run(t, "--config", path, "-Q")
		require.NoError(t, err)
		assert.Zero(t, ta.detects)
		require.Len(t, ta.calls, 1)
		assert.Equal(t, "zypper", ta.calls[0][0])
	})

	t.Run("detected", func(t *testing.T) {
		ta := newTestApp(t, fedora)

		_, err := ta.run(t, "-Q")
		require.NoError(t, err)
		assert.Equal(t, 1, ta.detects)
	})
}

func TestUnknownBackendFailsBeforeSpawning(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t, "-S", "vim", "--using", "pacman")
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, manager.ErrUnknownBackend))
	assert.True(t, manager.IsConfigError(err))
	assert.Contains(t, err.Error(), `"pacman"`)
	assert.Empty(t, ta.calls)
}

func TestNoBackendDetected(t *testing.T) {
	ta := newTestApp(t, &detector.SystemInfo{OS: detector.OSUnknown})

	code, err := ta.run(t, "-Q")
	require.ErrorIs(t, err, manager.ErrNoBackend)
	assert.Equal(t, 1, code)
}

func TestInvalidOperations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"modifier only", []string{"-s", "vim"}},
		{"two operations", []string{"-SR", "vim"}},
		{"unknown combination", []string{"-Sl"}},
		{"keywords without operation", []string{"vim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, fedora)

			code, err := ta.run(t, tt.args...)
			require.ErrorIs(t, err, manager.ErrInvalidOperation)
			assert.True(t, manager.IsConfigError(err))
			assert.Equal(t, 1, code)
			assert.Empty(t, ta.calls)
		})
	}
}

func TestUnsupportedOperation(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t, "-Rn", "vim")
	require.ErrorIs(t, err, manager.ErrNotSupported)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "-Rn")
	assert.Empty(t, ta.calls)
}

func TestNoArgumentsPrintsHelp(t *testing.T) {
	ta := newTestApp(t, fedora)

	code, err := ta.run(t)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, ta.out.String(), "pacman")
	assert.Empty(t, ta.calls)
}

func TestVersionFlag(t *testing.T) {
	ta := newTestApp(t, fedora)

	_, err := ta.run(t, "-V")
	require.NoError(t, err)
	assert.Equal(t, "pacwrap "+Version+"\n", ta.out.String())
}

func TestConfigFile(t *testing.T) {
	ta := newTestApp(t, fedora)
	path := ta.writeConfig(t, `
[general]
default_pm = "zypper"
no_confirm = true
dry_run = true

[aliases]
editor = "vim"
`)

	_, err := ta.run(t, "--config", path, "-S", "editor")
	require.NoError(t, err)
	assert.Equal(t, "[dry-run] zypper install --no-confirm vim\n", ta.out.String())
}

func TestFlagOverridesConfig(t *testing.T) {
	ta := newTestApp(t, fedora)
	path := ta.writeConfig(t, `
[general]
default_pm = "zypper"
`)

	_, err := ta.run(t, "--config", path, "--using", "apk", "--dryrun", "-S", "vim")
	require.NoError(t, err)
	assert.Equal(t, "[dry-run] apk add vim\n", ta.out.String())
}

func TestBadConfigFile(t *testing.T) {
	ta := newTestApp(t, fedora)
	path := ta.writeConfig(t, "[general]\nshiny = true\n")

	code, err := ta.run(t, "--config", path, "-Q")
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "shiny")
}

func TestHistoryFlag(t *testing.T) {
	ta := newTestApp(t, fedora)

	_, err := ta.run(t, "-S", "vim")
	require.NoError(t, err)
	_, err = ta.run(t, "-R", "broken")
	require.Error(t, err)

	ta.out.Reset()
	_, err = ta.run(t, "--history=5")
	require.NoError(t, err)

	out := ta.out.String()
	assert.Contains(t, out, "-S vim")
	assert.Contains(t, out, "-R broken")
	assert.Contains(t, out, "exit 4")
	assert.Less(t, strings.Index(out, "-R broken"), strings.Index(out, "-S vim"), "newest first")
}

func TestHistoryLimit(t *testing.T) {
	tests := []struct {
		args  []string
		shown int
	}{
		{[]string{"--history=3"}, 3},
		{[]string{"--history", "3"}, 3},
		{[]string{"--history", "0"}, 12},
		{[]string{"--history"}, 10},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			ta := newTestApp(t, fedora)
			ta.seedHistory(t, "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l")

			_, err := ta.run(t, tt.args...)
			require.NoError(t, err)

			out := ta.out.String()
			if tt.shown < 12 {
				assert.Contains(t, out, fmt.Sprintf("Showing %d of 12 entries", tt.shown))
			} else {
				assert.NotContains(t, out, "Showing")
			}
			assert.Contains(t, out, "-S l", "newest entry is always shown")
			assert.Empty(t, ta.calls)
		})
	}
}

func TestHistoryLimitRejectsNonNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"--history", "vim"},
		{"--history", "3", "4"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			ta := newTestApp(t, fedora)

			code, err := ta.run(t, args...)
			require.Error(t, err)
			assert.Equal(t, 1, code)
			assert.ErrorIs(t, err, ErrHistoryLimit)
			assert.True(t, manager.IsConfigError(err))
			assert.Empty(t, ta.calls)
		})
	}
}

func TestClearHistory(t *testing.T) {
	ta := newTestApp(t, fedora)
	ta.seedHistory(t, "vim", "git")

	_, err := ta.run(t, "--clear-history")
	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Cleared 2 history entries")
	assert.Empty(t, ta.history(t))
	assert.Empty(t, ta.calls)
}

func TestHistoryDisabled(t *testing.T) {
	ta := newTestApp(t, fedora)
	path := ta.writeConfig(t, "[general]\nhistory = false\n")

	_, err := ta.run(t, "--config", path, "-S", "vim")
	require.NoError(t, err)
	assert.Empty(t, ta.history(t))
}

func TestSystemReport(t *testing.T) {
	ta := newTestApp(t, fedora)

	_, err := ta.run(t, "--system")
	require.NoError(t, err)

	out := ta.out.String()
	assert.Contains(t, out, "Fedora Linux 40")
	assert.Contains(t, out, "dnf (DNF (Fedora/RHEL))")
	assert.Contains(t, out, "Program:")
	assert.Contains(t, out, "Privileges:")
	assert.NotContains(t, out, "Aliases:", "empty fields are skipped")
	assert.Contains(t, out, ta.HistoryPath)
	assert.Equal(t, 1, ta.detects)
	assert.Empty(t, ta.calls)
}

func TestSystemReportListsAliases(t *testing.T) {
	ta := newTestApp(t, &detector.SystemInfo{OS: detector.OSLinux, Distribution: "alpine", VersionID: "3.20"})
	path := ta.writeConfig(t, "[aliases]\nvi = \"vim\"\neditor = \"vim\"\n")

	_, err := ta.run(t, "--config", path, "--system")
	require.NoError(t, err)

	out := ta.out.String()
	assert.Contains(t, out, "alpine")
	assert.Contains(t, out, "apk")
	assert.Contains(t, out, "editor, vi")
}

func TestSystemReportWithOverride(t *testing.T) {
	ta := newTestApp(t, &detector.SystemInfo{OS: detector.OSDarwin, Distribution: "macos", PrettyName: "macOS"})

	_, err := ta.run(t, "--system", "--using", "chocolatey")
	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "choco (Chocolatey) [override]")
}

func TestInterruptedRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := exitStatus(ctx, errors.New("signal: killed"))
	require.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, exitInterrupted, code)

	code, err = exitStatus(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
