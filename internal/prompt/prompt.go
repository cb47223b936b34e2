// Package prompt implements the interactive collaborators used by the task
// and project flows: a line prompter and an external editor.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line reads answers one line at a time.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLine creates a Line prompter reading from r and writing labels to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), out: w}
}

// Ask prints label and returns the trimmed answer. A final line without a
// trailing newline is still returned.
func (l *Line) Ask(label string) (string, error) {
	fmt.Fprintf(l.out, "%s: ", label)
	input, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
