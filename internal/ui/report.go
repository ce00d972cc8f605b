package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	reportBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 1)
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	reportLabel = lipgloss.NewStyle().Foreground(colorMuted)
)

// Field is one labelled line in a report.
type Field struct {
	Label string
	Value string
}

// RenderReport draws fields in a titled box. Empty values are skipped.
// Without colors the box is dropped and plain "label: value" lines are returned.
func RenderReport(title string, fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}

	var sb strings.Builder
	if UseColors {
		sb.WriteString(reportTitle.Render(title))
	} else {
		sb.WriteString(title)
	}
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		label := fmt.Sprintf("%-*s", width+1, f.Label+":")
		if UseColors {
			label = reportLabel.Render(label)
		}
		sb.WriteString("\n" + label + " " + f.Value)
	}

	if !UseColors {
		return sb.String()
	}
	return reportBox.Render(sb.String())
}
