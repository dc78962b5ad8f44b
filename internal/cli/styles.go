// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#00A3A3") // Teal
	accentColor  = lipgloss.Color("#FFA500") // Orange
	warnColor    = lipgloss.Color("#FFD700") // Yellow
	errorColor   = lipgloss.Color("#DC143C") // Crimson
	mutedColor   = lipgloss.Color("#888888") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warnColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

// PrintTitle prints a section title.
func PrintTitle(w io.Writer, title string) {
	fmt.Fprintln(w, TitleStyle.Render(title))
}

// PrintHeader prints a table header line.
func PrintHeader(w io.Writer, header string) {
	fmt.Fprintln(w, HeaderStyle.Render(header))
}

// PrintKV prints an aligned key/value pair.
func PrintKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(fmt.Sprint(value)))
}

// PrintWarning prints a highlighted warning.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarnStyle.Render("warning: ")+msg)
}

// PrintError prints a highlighted error.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle.Render("error: ")+msg)
}
