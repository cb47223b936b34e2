// Package render writes projects, tasks and errors to the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusDraft:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		models.StatusReady:      lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		models.StatusToDo:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		models.StatusReview:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		models.StatusComplete:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		models.StatusArchive:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

// StatusStyle returns the colour used for a status label.
func StatusStyle(s models.Status) lipgloss.Style {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// StatusLabel is the coloured display label of s.
func StatusLabel(s models.Status) string {
	return StatusStyle(s).Render(s.Display())
}

// Heading renders a green section heading.
func Heading(s string) string { return headingStyle.Render(s) }

// ErrorLabel renders the red "Error" prefix used for failures.
func ErrorLabel() string { return errorStyle.Render("Error") }

// Success prints a green message.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a yellow message.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints err behind the red label.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", ErrorLabel(), err)
}
