package models

import (
	"encoding/json"
	"fmt"
)

// FieldError is one populated entry of a validation error body.
type FieldError struct {
	Field    string
	Messages []string
}

// ErrorPayload is the decoded body of a 4xx response. Each resource has its
// own set of fields; FieldErrors returns only those the body populated, in a
// stable order, with detail and non-field errors last.
type ErrorPayload interface {
	FieldErrors() []FieldError
	// SetDetail records a body that could not be decoded as JSON.
	SetDetail(string)
}

// Messages is the list of messages for one field. The service usually sends
// a JSON array of strings but sometimes a bare string; both decode.
type Messages []string

func (m *Messages) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*m = nil
	case string:
		*m = Messages{v}
	case []any:
		out := make(Messages, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				str = fmt.Sprint(item)
			}
			out = append(out, str)
		}
		*m = out
	default:
		return fmt.Errorf("field messages: unexpected JSON %s", string(data))
	}
	return nil
}

type fieldList []FieldError

func (l fieldList) add(name string, msgs []string) fieldList {
	if len(msgs) == 0 {
		return l
	}
	return append(l, FieldError{Field: name, Messages: msgs})
}

func (l fieldList) tail(detail *string, nonField []string) fieldList {
	l = l.add("non_field_errors", nonField)
	if detail != nil && *detail != "" {
		l = append(l, FieldError{Field: "detail", Messages: []string{*detail}})
	}
	return l
}

// ProjectErrorPayload is the validation body for project requests.
type ProjectErrorPayload struct {
	Title          Messages `json:"title,omitempty"`
	Description    Messages `json:"description,omitempty"`
	Code           Messages `json:"code,omitempty"`
	Detail         *string  `json:"detail,omitempty"`
	NonFieldErrors Messages `json:"non_field_errors,omitempty"`
}

func (p *ProjectErrorPayload) FieldErrors() []FieldError {
	var l fieldList
	l = l.add("title", p.Title).
		add("description", p.Description).
		add("code", p.Code).
		tail(p.Detail, p.NonFieldErrors)
	return l
}

func (p *ProjectErrorPayload) SetDetail(s string) {
	p.Detail = &s
}

// TaskErrorPayload is the validation body for task requests.
type TaskErrorPayload struct {
	ProjectID      Messages `json:"project_id,omitempty"`
	Title          Messages `json:"title,omitempty"`
	Description    Messages `json:"description,omitempty"`
	Status         Messages `json:"status,omitempty"`
	Issue          Messages `json:"issue,omitempty"`
	DueDate        Messages `json:"due_date,omitempty"`
	AssignedToID   Messages `json:"assigned_to_id,omitempty"`
	ParentID       Messages `json:"parent_id,omitempty"`
	Detail         *string  `json:"detail,omitempty"`
	NonFieldErrors Messages `json:"non_field_errors,omitempty"`
}

func (p *TaskErrorPayload) FieldErrors() []FieldError {
	var l fieldList
	l = l.add("project_id", p.ProjectID).
		add("title", p.Title).
		add("description", p.Description).
		add("status", p.Status).
		add("issue", p.Issue).
		add("due_date", p.DueDate).
		add("assigned_to_id", p.AssignedToID).
		add("parent_id", p.ParentID).
		tail(p.Detail, p.NonFieldErrors)
	return l
}

func (p *TaskErrorPayload) SetDetail(s string) {
	p.Detail = &s
}
