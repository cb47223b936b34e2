package models

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleTaskJSON = `{
  "id": 12,
  "project": {"id": 3, "title": "Website", "code": "WEB", "created_at": "2024-01-01"},
  "title": "Login page",
  "code": "WEB-12",
  "issue": "SUBTASK",
  "description": "Build it",
  "created_by": {"id": 1, "username": "sipho", "email": "sipho@example.com"},
  "status": "IN_PROGRESS",
  "due_date": null,
  "modified_at": "2024-01-02",
  "subtasks": [],
  "assigned_to": {"id": "c0ffee-42", "username": "thandi", "email": "thandi@example.com"},
  "created_at": "2024-01-01",
  "parent": 7
}`

func TestTaskView_Decode(t *testing.T) {
	var v TaskView
	if err := json.Unmarshal([]byte(sampleTaskJSON), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Issue != IssueSubtask {
		t.Errorf("Issue = %v", v.Issue)
	}
	if v.Status != StatusInProgress {
		t.Errorf("Status = %v", v.Status)
	}
	if v.AssignedTo.ID != "c0ffee-42" {
		t.Errorf("assignee id = %q", v.AssignedTo.ID)
	}
	if v.CreatedBy.ID != "1" {
		t.Errorf("creator id = %q, want \"1\"", v.CreatedBy.ID)
	}
	if v.Parent == nil || *v.Parent != 7 {
		t.Errorf("Parent = %v", v.Parent)
	}
	if v.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", *v.DueDate)
	}
}

func TestTaskView_DecodeUnknownStatusFails(t *testing.T) {
	body := strings.Replace(sampleTaskJSON, `"IN_PROGRESS"`, `"BLOCKED"`, 1)
	var v TaskView
	if err := json.Unmarshal([]byte(body), &v); err == nil {
		t.Fatal("expected decode error for unknown status")
	}
}

func TestIdentity_Decode(t *testing.T) {
	cases := map[string]Identity{
		`42`:       "42",
		`"42"`:     "42",
		`"abc-de"`: "abc-de",
		`null`:     "",
	}
	for in, want := range cases {
		var id Identity
		if err := json.Unmarshal([]byte(in), &id); err != nil {
			t.Fatalf("decode %s: %v", in, err)
		}
		if id != want {
			t.Errorf("decode %s = %q, want %q", in, id, want)
		}
	}
	for _, in := range []string{`4.2`, `true`, `{}`} {
		var id Identity
		if err := json.Unmarshal([]byte(in), &id); err == nil {
			t.Errorf("decode %s: expected error", in)
		}
	}
}

func TestTaskDraft_Encode(t *testing.T) {
	due := "2024-06-01"
	d := TaskDraft{
		ProjectID:    3,
		Title:        "t",
		Description:  "d",
		Status:       StatusReady,
		Issue:        IssueEpic,
		DueDate:      &due,
		AssignedToID: "9",
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["status"] != float64(2) || got["issue"] != float64(1) {
		t.Errorf("status/issue = %v/%v", got["status"], got["issue"])
	}
	parent, ok := got["parent_id"]
	if !ok || parent != nil {
		t.Errorf("parent_id = %v (present %v), want explicit null", parent, ok)
	}

	d.DueDate = nil
	data, _ = json.Marshal(d)
	if strings.Contains(string(data), "due_date") {
		t.Errorf("due_date should be omitted: %s", data)
	}
}

func TestTaskErrorPayload_FieldErrorsOnlyPopulated(t *testing.T) {
	var p TaskErrorPayload
	body := `{"title": ["This field may not be blank."], "parent_id": ["Invalid pk."]}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatal(err)
	}
	fields := p.FieldErrors()
	if len(fields) != 2 {
		t.Fatalf("got %d fields: %+v", len(fields), fields)
	}
	if fields[0].Field != "title" || fields[1].Field != "parent_id" {
		t.Errorf("unexpected order: %+v", fields)
	}

	p.SetDetail("Not found.")
	fields = p.FieldErrors()
	if last := fields[len(fields)-1]; last.Field != "detail" || last.Messages[0] != "Not found." {
		t.Errorf("detail entry = %+v", last)
	}
}

func TestProjectErrorPayload_Empty(t *testing.T) {
	var p ProjectErrorPayload
	if got := p.FieldErrors(); len(got) != 0 {
		t.Errorf("expected no fields, got %+v", got)
	}
}
