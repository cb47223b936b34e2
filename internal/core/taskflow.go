package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// Input validation failures. They are always wrapped in an *InputError that
// names the offending field, and they are returned before any request is
// sent.
var (
	ErrRequired        = errors.New("a value is required")
	ErrInvalidID       = errors.New("must be a positive integer")
	ErrParentRequired  = errors.New("a parent id is required for a subtask")
	ErrInvalidYesNo    = errors.New("answer Y or N")
	ErrCaptureRejected = errors.New("no text was saved")
)

// InputError reports blank or unparseable user input.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Prompter reads one trimmed line of input in answer to label.
type Prompter interface {
	Ask(label string) (string, error)
}

// TextCapturer collects free-form text, pre-filled with existing when it is
// not empty.
type TextCapturer interface {
	CaptureText(existing string) (string, error)
}

// TaskAPI is the subset of the remote client the task flows need.
type TaskAPI interface {
	GetTask(ctx context.Context, code string) (*models.TaskView, error)
	CreateTask(ctx context.Context, draft models.TaskDraft) (*models.TaskView, error)
	UpdateTask(ctx context.Context, code string, draft models.TaskDraft) (*models.TaskView, error)
	UpdateTaskStatus(ctx context.Context, code string, status models.Status) (*models.TaskView, error)
}

// TaskEngine drives the interactive create, edit and status flows for tasks.
type TaskEngine struct {
	prompter Prompter
	capturer TextCapturer
	api      TaskAPI
}

// NewTaskEngine creates a TaskEngine.
func NewTaskEngine(p Prompter, c TextCapturer, api TaskAPI) *TaskEngine {
	return &TaskEngine{prompter: p, capturer: c, api: api}
}

// Create collects a new task from the user and submits it.
func (e *TaskEngine) Create(ctx context.Context) (*models.TaskView, error) {
	draft, err := e.CollectCreate()
	if err != nil {
		return nil, err
	}
	return e.api.CreateTask(ctx, draft)
}

// CollectCreate asks for every field of a new task in order and stops at the
// first invalid answer.
func (e *TaskEngine) CollectCreate() (models.TaskDraft, error) {
	var draft models.TaskDraft

	answer, err := e.prompter.Ask("Project ID")
	if err != nil {
		return draft, err
	}
	if draft.ProjectID, err = ParseID("project_id", answer); err != nil {
		return draft, err
	}

	if draft.Title, err = e.require("title", "Title"); err != nil {
		return draft, err
	}

	if draft.Description, err = e.capture("description", ""); err != nil {
		return draft, err
	}

	if draft.Issue, err = e.askIssue(models.IssueEpic, "Issue (1: Epic, 2: Subtask)"); err != nil {
		return draft, err
	}
	if draft.Issue == models.IssueSubtask {
		if draft.ParentID, err = e.askParent(); err != nil {
			return draft, err
		}
	}

	answer, err = e.prompter.Ask("Status " + statusMenu())
	if err != nil {
		return draft, err
	}
	draft.Status = models.StatusDraft
	if answer != "" {
		if draft.Status, err = models.ParseStatusSelector(answer); err != nil {
			return draft, &InputError{Field: "status", Err: err}
		}
	}

	answer, err = e.prompter.Ask("Add a due date? (Y/N)")
	if err != nil {
		return draft, err
	}
	withDue, err := parseYesNo("due_date", answer)
	if err != nil {
		return draft, err
	}
	if withDue {
		due, err := e.require("due_date", "Due date (YYYY-MM-DD)")
		if err != nil {
			return draft, err
		}
		draft.DueDate = &due
	}

	if draft.AssignedToID, err = e.require("assigned_to_id", "Assignee ID"); err != nil {
		return draft, err
	}
	return draft, nil
}

// Edit fetches the task, collects changes and submits a full replacement.
func (e *TaskEngine) Edit(ctx context.Context, code string) (*models.TaskView, error) {
	current, err := e.api.GetTask(ctx, code)
	if err != nil {
		return nil, err
	}
	draft, err := e.CollectEdit(current)
	if err != nil {
		return nil, err
	}
	return e.api.UpdateTask(ctx, code, draft)
}

// CollectEdit merges user overrides into current. A blank answer keeps the
// existing value. Status and assignee are always carried over.
func (e *TaskEngine) CollectEdit(current *models.TaskView) (models.TaskDraft, error) {
	draft := models.TaskDraft{
		ProjectID:    current.Project.ID,
		Title:        current.Title,
		Description:  current.Description,
		Status:       current.Status,
		Issue:        current.Issue,
		DueDate:      current.DueDate,
		AssignedToID: current.AssignedTo.ID.String(),
		ParentID:     current.Parent,
	}

	answer, err := e.prompter.Ask(fmt.Sprintf("Title [%s]", current.Title))
	if err != nil {
		return draft, err
	}
	if answer != "" {
		draft.Title = answer
	}

	answer, err = e.prompter.Ask("Description (blank to keep, E to open the editor)")
	if err != nil {
		return draft, err
	}
	switch {
	case strings.EqualFold(answer, "e"):
		if draft.Description, err = e.capture("description", current.Description); err != nil {
			return draft, err
		}
	case answer != "":
		draft.Description = answer
	}

	next, err := e.askIssue(current.Issue, fmt.Sprintf("Issue [%s] (1: Epic, 2: Subtask)", current.Issue.Display()))
	if err != nil {
		return draft, err
	}
	// A subtask needs a parent. Ask whenever the result would be a subtask
	// without one, including a fetched subtask that has lost its parent.
	var supplied *int
	if next == models.IssueSubtask && (current.Issue != models.IssueSubtask || current.Parent == nil) {
		if supplied, err = e.askParent(); err != nil {
			return draft, err
		}
	}
	if draft.ParentID, err = ResolveParent(current.Issue, next, current.Parent, supplied); err != nil {
		return draft, err
	}
	draft.Issue = next

	answer, err = e.prompter.Ask(fmt.Sprintf("Due date [%s]", orNA(current.DueDate)))
	if err != nil {
		return draft, err
	}
	if answer != "" {
		draft.DueDate = &answer
	}
	return draft, nil
}

// ResolveParent applies the kind-transition rule. An epic never carries a
// parent. A subtask keeps its existing parent when it was already a subtask,
// otherwise it takes the supplied one; without either it is an *InputError.
func ResolveParent(current, next models.IssueKind, existing, supplied *int) (*int, error) {
	if next == models.IssueEpic {
		return nil, nil
	}
	if current == models.IssueSubtask && existing != nil {
		return existing, nil
	}
	if supplied == nil {
		return nil, &InputError{Field: "parent_id", Err: ErrParentRequired}
	}
	return supplied, nil
}

// UpdateStatus decodes selector and sends only the status. An empty selector
// is asked for interactively.
func (e *TaskEngine) UpdateStatus(ctx context.Context, code, selector string) (*models.TaskView, error) {
	if selector == "" {
		var err error
		if selector, err = e.prompter.Ask("Status " + statusMenu()); err != nil {
			return nil, err
		}
	}
	status, err := models.ParseStatusSelector(selector)
	if err != nil {
		return nil, &InputError{Field: "status", Err: err}
	}
	return e.api.UpdateTaskStatus(ctx, code, status)
}

// ParseID parses a positive integer identifier.
func ParseID(field, s string) (int, error) {
	if s == "" {
		return 0, &InputError{Field: field, Err: ErrRequired}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &InputError{Field: field, Err: ErrInvalidID}
	}
	return n, nil
}

func (e *TaskEngine) require(field, label string) (string, error) {
	return require(e.prompter, field, label)
}

func (e *TaskEngine) capture(field, existing string) (string, error) {
	return capture(e.capturer, field, existing)
}

func (e *TaskEngine) askIssue(fallback models.IssueKind, label string) (models.IssueKind, error) {
	answer, err := e.prompter.Ask(label)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return fallback, nil
	}
	kind, err := models.ParseIssueSelector(answer)
	if err != nil {
		return 0, &InputError{Field: "issue", Err: err}
	}
	return kind, nil
}

func (e *TaskEngine) askParent() (*int, error) {
	answer, err := e.prompter.Ask("Parent ID")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, &InputError{Field: "parent_id", Err: ErrParentRequired}
	}
	id, err := ParseID("parent_id", answer)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func require(p Prompter, field, label string) (string, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", &InputError{Field: field, Err: ErrRequired}
	}
	return answer, nil
}

// capture runs the editor. Failing to launch it is not an input error; an
// empty result is.
func capture(c TextCapturer, field, existing string) (string, error) {
	text, err := c.CaptureText(existing)
	if err != nil {
		return "", fmt.Errorf("capturing %s: %w", field, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &InputError{Field: field, Err: ErrCaptureRejected}
	}
	return text, nil
}

func parseYesNo(field, answer string) (bool, error) {
	switch strings.ToUpper(answer) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, &InputError{Field: field, Err: ErrInvalidYesNo}
	}
}

func statusMenu() string {
	parts := make([]string, 0, 7)
	for _, s := range models.AllStatuses() {
		parts = append(parts, fmt.Sprintf("%d: %s", s.WireValue(), s.Display()))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
