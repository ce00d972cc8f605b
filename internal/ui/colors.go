// Package ui provides terminal output helpers for pacwrap.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan)
	Header  = color.New(color.FgMagenta, color.Bold)
	Muted   = color.New(color.FgHiBlack)
)

// UseColors represents whether colors should be used.
var UseColors = true

// UseUnicode represents whether unicode symbols should be used.
var UseUnicode = true

// Symbols for status indicators
var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "!"
	SymbolArrow   = "→"
)

// PromptError prefixes every fatal error message.
const PromptError = "error:"

// Init initializes the UI settings based on configuration.
func Init(useColors, useUnicode bool) {
	UseColors = useColors && os.Getenv("NO_COLOR") == ""
	UseUnicode = useUnicode

	color.NoColor = !UseColors

	if useUnicode {
		SymbolSuccess = "✓"
		SymbolError = "✗"
		SymbolWarning = "!"
		SymbolArrow = "→"
	} else {
		SymbolSuccess = "[OK]"
		SymbolError = "[ERROR]"
		SymbolWarning = "[WARN]"
		SymbolArrow = "->"
	}
}

// PrintError writes err behind the red error prompt.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", Error.Sprint(PromptError), err)
}

// SuccessMsg prints a success message.
func SuccessMsg(w io.Writer, format string, args ...any) {
	Success.Fprintf(w, SymbolSuccess+" "+format+"\n", args...)
}

// WarningMsg prints a warning message.
func WarningMsg(w io.Writer, format string, args ...any) {
	Warning.Fprintf(w, SymbolWarning+" "+format+"\n", args...)
}

// HeaderMsg prints a header message.
func HeaderMsg(w io.Writer, format string, args ...any) {
	Header.Fprintf(w, format+"\n", args...)
}

// MutedMsg prints a muted (dim) message.
func MutedMsg(w io.Writer, format string, args ...any) {
	Muted.Fprintf(w, format+"\n", args...)
}

// Bold returns a bold string.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Green returns a green string.
func Green(s string) string {
	return color.GreenString(s)
}

// Red returns a red string.
func Red(s string) string {
	return color.RedString(s)
}
