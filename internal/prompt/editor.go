package prompt

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

// Editor captures text by opening an external editor on a temporary file.
type Editor struct {
	// Command overrides VISUAL and EDITOR. It may include arguments.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditor creates an Editor attached to the process terminal.
func NewEditor() *Editor {
	return &Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *Editor) command() string {
	for _, c := range []string{e.Command, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return DefaultEditor
}

// CaptureText writes existing to a temporary file, waits for the editor to
// exit and returns what was saved. The file is always removed.
func (e *Editor) CaptureText(existing string) (string, error) {
	f, err := os.CreateTemp("", "umsebenzi-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(existing); err != nil {
		f.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	args := strings.Fields(e.command())
	c := exec.Command(args[0], append(args[1:], path)...)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("running editor %s: %w", args[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}
	return string(data), nil
}
