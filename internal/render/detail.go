package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
	"gopkg.in/yaml.v3"
)

// Format selects how a single resource is printed.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text, yaml or json)", s)
	}
}

// Encode writes v as YAML or JSON.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q is not a data format", f)
	}
}

type field struct {
	key, value string
}

func writeFields(w io.Writer, fields []field) {
	width := 0
	for _, f := range fields {
		if len(f.key) > width {
			width = len(f.key)
		}
	}
	for _, f := range fields {
		pad := strings.Repeat(" ", width-len(f.key))
		fmt.Fprintf(w, "%s:%s %s\n", keyStyle.Render(f.key), pad, f.value)
	}
}

// Task prints one task in full, followed by its sub-tasks when present.
func Task(w io.Writer, t *models.TaskView) {
	fmt.Fprintln(w, Heading(t.Code+" "+t.Title))
	writeFields(w, []field{
		{"Project", t.Project.String()},
		{"Issue", t.Issue.Display()},
		{"Status", StatusLabel(t.Status)},
		{"Parent", IntOrPlaceholder(t.Parent)},
		{"Due Date", OrPlaceholder(t.DueDate)},
		{"Assigned To", t.AssignedTo.String()},
		{"Created By", t.CreatedBy.String()},
		{"Created At", t.CreatedAt},
		{"Modified At", t.ModifiedAt},
	})
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Description)
	if len(t.Subtasks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, Heading("Subtasks"))
		Table(w, SubtaskColumns, t.Subtasks)
	}
}

// Project prints one project in full.
func Project(w io.Writer, p *models.ProjectView) {
	fmt.Fprintln(w, Heading(p.String()))
	writeFields(w, []field{
		{"ID", strconv.Itoa(p.ID)},
		{"Created By", p.CreatedBy.String()},
		{"Created At", p.CreatedAt},
		{"Modified At", p.ModifiedAt},
	})
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Description)
}

// FieldErrors prints every populated field of a validation error body.
func FieldErrors(w io.Writer, fields []models.FieldError) {
	fmt.Fprintln(w, errorStyle.Render("The request was rejected:"))
	for _, f := range fields {
		for _, m := range f.Messages {
			fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(f.Field+":"), m)
		}
	}
}

// Config prints the stored configuration with the token masked.
func Config(w io.Writer, path string, cfg *models.Config) {
	writeFields(w, []field{
		{"File", path},
		{"Host", cfg.Host},
		{"Credentials", Mask(cfg.Credentials)},
		{"Auth Scheme", cfg.AuthScheme},
	})
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// Muted renders secondary text such as hints.
func Muted(s string) string { return mutedStyle.Render(s) }
