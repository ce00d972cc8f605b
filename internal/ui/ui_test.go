package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacwrap/internal/history"
)

func TestPrintErrorUsesPrompt(t *testing.T) {
	Init(false, false)

	var buf bytes.Buffer
	PrintError(&buf, errors.New("unknown package manager \"portage\""))

	assert.Equal(t, "error: unknown package manager \"portage\"\n", buf.String())
}

func TestInitSymbols(t *testing.T) {
	Init(false, false)
	assert.Equal(t, "[OK]", SymbolSuccess)
	assert.False(t, UseColors)

	Init(false, true)
	assert.Equal(t, "✓", SymbolSuccess)
}

func TestInitRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	Init(true, true)
	assert.False(t, UseColors)
}

func TestRenderReportPlain(t *testing.T) {
	Init(false, false)

	out := RenderReport("System", []Field{
		{Label: "OS", Value: "linux"},
		{Label: "Distribution", Value: ""},
		{Label: "Backend", Value: "apt"},
	})

	assert.Equal(t, "System\nOS:           linux\nBackend:      apt", out)
}

func TestPrintHistory(t *testing.T) {
	Init(false, false)

	ok := history.NewEntry("-S", "apt", []string{"vim"}, nil)
	ok.Finish(0, nil)
	failed := history.NewEntry("-R", "apt", []string{"nope"}, nil)
	failed.Finish(100, errors.New("boom"))

	var buf bytes.Buffer
	require.NoError(t, PrintHistory(&buf, []history.Entry{*failed, *ok}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Contains(t, lines[1], "-R nope")
	assert.Contains(t, lines[1], "exit 100")
	assert.Contains(t, lines[2], "-S vim")
	assert.Contains(t, lines[2], "ok")
}

func TestPrintHistoryEmpty(t *testing.T) {
	Init(false, false)

	var buf bytes.Buffer
	require.NoError(t, PrintHistory(&buf, nil))
	assert.Equal(t, "No history yet\n", buf.String())
}
