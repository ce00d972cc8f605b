package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pacwrap/internal/history"
)

// Table wraps tabwriter for consistent styling.
type Table struct {
	writer  *tabwriter.Writer
	headers []string
}

// NewTable creates a table that writes to w.
func NewTable(w io.Writer, headers []string) *Table {
	return &Table{
		writer:  tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// AddRow adds a row to the table. Headers are written before the first row.
func (t *Table) AddRow(row []string) {
	if t.headers != nil {
		headerRow := make([]string, len(t.headers))
		for i, h := range t.headers {
			headerRow[i] = strings.ToUpper(h)
		}
		fmt.Fprintln(t.writer, strings.Join(headerRow, "\t"))
		t.headers = nil
	}
	fmt.Fprintln(t.writer, strings.Join(row, "\t"))
}

// Render flushes the table.
func (t *Table) Render() error {
	return t.writer.Flush()
}

// PrintHistory prints history entries, most recent first.
func PrintHistory(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		MutedMsg(w, "No history yet")
		return nil
	}

	table := NewTable(w, []string{"time", "backend", "command", "status"})
	for _, e := range entries {
		status := Green(e.Status())
		if !e.Success {
			status = Red(e.Status())
		}
		table.AddRow([]string{e.FormatTime(), e.Backend, e.Command(), status})
	}
	return table.Render()
}
