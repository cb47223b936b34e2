package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidStatus is returned when a selector, wire token or rank does not
// name one of the seven task statuses.
var ErrInvalidStatus = errors.New("invalid task status")

// Status is the lifecycle state of a task. The integer value is the rank the
// service expects on the wire; it carries no ordering meaning otherwise.
type Status int

const (
	StatusDraft Status = iota + 1
	StatusReady
	StatusToDo
	StatusInProgress
	StatusReview
	StatusComplete
	StatusArchive
)

type statusInfo struct {
	wire    string
	display string
}

var statusTable = map[Status]statusInfo{
	StatusDraft:      {wire: "DRAFT", display: "Draft"},
	StatusReady:      {wire: "READY", display: "Ready"},
	StatusToDo:       {wire: "TO_DO", display: "To Do"},
	StatusInProgress: {wire: "IN_PROGRESS", display: "In Progress"},
	StatusReview:     {wire: "REVIEW", display: "Review"},
	StatusComplete:   {wire: "COMPLETE", display: "Complete"},
	StatusArchive:    {wire: "ARCHIVE", display: "Archive"},
}

// AllStatuses returns the vocabulary in rank order.
func AllStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusReady,
		StatusToDo,
		StatusInProgress,
		StatusReview,
		StatusComplete,
		StatusArchive,
	}
}

// ParseStatusSelector decodes the numeric menu selector "1".."7".
func ParseStatusSelector(s string) (Status, error) {
	if len(s) != 1 || s[0] < '1' || s[0] > '7' {
		return 0, fmt.Errorf("%w: selector %q", ErrInvalidStatus, s)
	}
	return Status(s[0] - '0'), nil
}

// ParseStatusWire decodes an upper-case wire token such as IN_PROGRESS.
// Matching is exact and case-sensitive.
func ParseStatusWire(s string) (Status, error) {
	for st, info := range statusTable {
		if info.wire == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// parseStatusLabel accepts the display label some endpoint versions return
// in place of the wire token, plus the legacy TODO spelling.
func parseStatusLabel(s string) (Status, error) {
	if s == "TODO" {
		return StatusToDo, nil
	}
	for st, info := range statusTable {
		if info.display == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the seven statuses.
func (s Status) Valid() bool {
	_, ok := statusTable[s]
	return ok
}

// WireValue returns the rank sent in request payloads.
func (s Status) WireValue() int {
	return int(s)
}

// Wire returns the upper-case token, or "" for an invalid status.
func (s Status) Wire() string {
	return statusTable[s].wire
}

// Display returns the human label.
func (s Status) Display() string {
	if info, ok := statusTable[s]; ok {
		return info.display
	}
	return "Unknown"
}

func (s Status) String() string {
	return s.Display()
}

// MarshalJSON encodes the status as its rank.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrInvalidStatus, int(s))
	}
	return []byte(strconv.Itoa(s.WireValue())), nil
}

// UnmarshalJSON accepts a wire token, a display label or a rank.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		st, err := ParseStatusWire(v)
		if err != nil {
			if st, err = parseStatusLabel(v); err != nil {
				return err
			}
		}
		*s = st
		return nil
	case float64:
		st := Status(int(v))
		if float64(int(v)) != v || !st.Valid() {
			return fmt.Errorf("%w: rank %v", ErrInvalidStatus, v)
		}
		*s = st
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, string(data))
	}
}

// MarshalYAML renders the display label in structured output.
func (s Status) MarshalYAML() (any, error) {
	return s.Display(), nil
}
