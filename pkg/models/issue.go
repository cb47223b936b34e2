package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidIssue is returned when a selector or wire token does not name an
// issue kind.
var ErrInvalidIssue = errors.New("invalid issue")

// IssueKind separates top-level items (epics) from sub-items (subtasks).
// Only sub-items may reference a parent.
type IssueKind int

const (
	IssueEpic IssueKind = iota + 1
	IssueSubtask
)

// ParseIssueSelector decodes the menu selector: "1" epic, "2" subtask.
func ParseIssueSelector(s string) (IssueKind, error) {
	switch s {
	case "1":
		return IssueEpic, nil
	case "2":
		return IssueSubtask, nil
	}
	return 0, fmt.Errorf("%w: selector %q", ErrInvalidIssue, s)
}

// ParseIssueWire decodes the token returned by the service.
func ParseIssueWire(s string) (IssueKind, error) {
	switch s {
	case "EPIC":
		return IssueEpic, nil
	case "SUBTASK":
		return IssueSubtask, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidIssue, s)
}

// Valid reports whether k is a known kind.
func (k IssueKind) Valid() bool {
	return k == IssueEpic || k == IssueSubtask
}

// WireValue returns the integer sent in request payloads.
func (k IssueKind) WireValue() int {
	return int(k)
}

func (k IssueKind) Wire() string {
	switch k {
	case IssueEpic:
		return "EPIC"
	case IssueSubtask:
		return "SUBTASK"
	}
	return ""
}

func (k IssueKind) Display() string {
	switch k {
	case IssueEpic:
		return "Epic"
	case IssueSubtask:
		return "Subtask"
	}
	return "Unknown"
}

func (k IssueKind) String() string {
	return k.Display()
}

// MarshalJSON encodes the kind as its integer wire value.
func (k IssueKind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: value %d", ErrInvalidIssue, int(k))
	}
	return []byte(strconv.Itoa(k.WireValue())), nil
}

// UnmarshalJSON accepts the EPIC/SUBTASK token or the integer value.
func (k *IssueKind) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		kind, err := ParseIssueWire(v)
		if err != nil {
			return err
		}
		*k = kind
		return nil
	case float64:
		kind := IssueKind(int(v))
		if float64(int(v)) != v || !kind.Valid() {
			return fmt.Errorf("%w: value %v", ErrInvalidIssue, v)
		}
		*k = kind
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidIssue, string(data))
}

func (k IssueKind) MarshalYAML() (any, error) {
	return k.Wire(), nil
}
