package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// Placeholder is shown for absent optional values.
const Placeholder = "N/A"

// Column is one table column computed from a row value.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table writes rows as an aligned table. Write errors are ignored.
func Table[T any](w io.Writer, cols []Column[T], rows []T) {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(r)
		}
		t.Row(cells...)
	}
	_, _ = fmt.Fprintln(w, t.Render())
}

// OrPlaceholder returns *s, or Placeholder when s is absent or empty.
func OrPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

// IntOrPlaceholder formats *n, or Placeholder when n is absent.
func IntOrPlaceholder(n *int) string {
	if n == nil {
		return Placeholder
	}
	return strconv.Itoa(*n)
}

// SubtaskMarker reports whether a task has sub-tasks: "Yes", "No", or
// "----" when the service did not include the list at all.
func SubtaskMarker(subtasks []models.SubTaskSummary) string {
	switch {
	case subtasks == nil:
		return "----"
	case len(subtasks) == 0:
		return "No"
	default:
		return "Yes"
	}
}

// TaskColumns are the columns of the task listing.
var TaskColumns = []Column[models.TaskView]{
	{"ID", func(t models.TaskView) string { return strconv.Itoa(t.ID) }},
	{"Title", func(t models.TaskView) string { return t.Title }},
	{"Code", func(t models.TaskView) string { return t.Code }},
	{"Issue", func(t models.TaskView) string { return t.Issue.Display() }},
	{"Status", func(t models.TaskView) string { return StatusLabel(t.Status) }},
	{"Due Date", func(t models.TaskView) string { return OrPlaceholder(t.DueDate) }},
	{"Subtasks", func(t models.TaskView) string { return SubtaskMarker(t.Subtasks) }},
	{"Assigned To", func(t models.TaskView) string { return t.AssignedTo.String() }},
	{"Created At", func(t models.TaskView) string { return t.CreatedAt }},
	{"Parent", func(t models.TaskView) string { return IntOrPlaceholder(t.Parent) }},
}

// SubtaskColumns are the columns of a task's sub-task listing.
var SubtaskColumns = []Column[models.SubTaskSummary]{
	{"Code", func(s models.SubTaskSummary) string { return s.Code }},
	{"Title", func(s models.SubTaskSummary) string { return s.Title }},
	{"Status", func(s models.SubTaskSummary) string { return StatusLabel(s.Status) }},
	{"Created At", func(s models.SubTaskSummary) string { return s.CreatedAt }},
}

// ProjectColumns are the columns of the project listing.
var ProjectColumns = []Column[models.ProjectView]{
	{"ID", func(p models.ProjectView) string { return strconv.Itoa(p.ID) }},
	{"Created By", func(p models.ProjectView) string { return p.CreatedBy.String() }},
	{"Title", func(p models.ProjectView) string { return p.Title }},
	{"Code", func(p models.ProjectView) string { return p.Code }},
	{"Created At", func(p models.ProjectView) string { return p.CreatedAt }},
}

// StatusColumns describe the status vocabulary for `config task-status`.
var StatusColumns = []Column[models.Status]{
	{"Selector", func(s models.Status) string { return strconv.Itoa(s.WireValue()) }},
	{"Status", func(s models.Status) string { return StatusLabel(s) }},
	{"Wire", func(s models.Status) string { return s.Wire() }},
}
