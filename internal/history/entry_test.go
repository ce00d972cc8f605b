package history

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry("-S", "apt", []string{"vim", "git"}, []string{"--no-install-recommends"})

	if _, err := ulid.Parse(entry.ID); err != nil {
		t.Errorf("entry ID should be a ULID: %v", err)
	}
	if entry.Operation != "-S" {
		t.Errorf("expected Operation '-S', got %s", entry.Operation)
	}
	if entry.Backend != "apt" {
		t.Errorf("expected Backend 'apt', got '%s'", entry.Backend)
	}
	if len(entry.Keywords) != 2 {
		t.Errorf("expected 2 keywords, got %d", len(entry.Keywords))
	}
	if entry.Success {
		t.Error("new entry should not be successful yet")
	}
	if time.Since(entry.Timestamp) > time.Minute {
		t.Errorf("timestamp too old: %v", entry.Timestamp)
	}
}

func TestEntryIDsAreOrdered(t *testing.T) {
	first := NewEntry("-Sy", "dnf", nil, nil)
	second := NewEntry("-Sy", "dnf", nil, nil)

	if first.ID == second.ID {
		t.Fatal("IDs should be unique")
	}
	if first.ID >= second.ID {
		t.Errorf("IDs should sort by creation: %s >= %s", first.ID, second.ID)
	}
}

func TestFinish(t *testing.T) {
	entry := NewEntry("-S", "apt", []string{"vim"}, nil)
	entry.Finish(0, nil)

	if !entry.Success {
		t.Error("expected Success after Finish(0, nil)")
	}
	if entry.Error != "" {
		t.Errorf("expected no error, got %q", entry.Error)
	}
	if entry.Status() != "ok" {
		t.Errorf("expected status 'ok', got %q", entry.Status())
	}

	failed := NewEntry("-S", "apt", []string{"nope"}, nil)
	failed.Finish(100, errors.New("apt install nope failed with exit status 100"))

	if failed.Success {
		t.Error("expected failure")
	}
	if failed.ExitCode != 100 {
		t.Errorf("expected exit code 100, got %d", failed.ExitCode)
	}
	if failed.Status() != "exit 100" {
		t.Errorf("expected status 'exit 100', got %q", failed.Status())
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		entry *Entry
		want  string
	}{
		{&Entry{Operation: "-Suy"}, "-Suy"},
		{&Entry{Operation: "-S", Keywords: []string{"vim", "git"}}, "-S vim git"},
		{&Entry{Operation: "-S", Keywords: []string{"vim"}, Flags: []string{"--x"}}, "-S vim -- --x"},
	}

	for _, tt := range tests {
		if got := tt.entry.Command(); got != tt.want {
			t.Errorf("Command() = %q, want %q", got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	entry := NewEntry("-Rs", "brew", []string{"wget"}, nil)
	entry.Finish(0, nil)

	summary := entry.Summary()
	for _, want := range []string{"-Rs wget", "[brew]", "(ok)"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() = %q, should contain %q", summary, want)
		}
	}
}
