package cli

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/apiclient"
	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// fakeRemote is an in-memory RemoteAPI.
type fakeRemote struct {
	projects []models.ProjectView
	tasks    map[string]*models.TaskView

	lastFilter  models.TaskFilter
	lastDraft   *models.TaskDraft
	lastStatus  models.Status
	deleted     []string
	rejectWrite *apiclient.ValidationError
	calls       int
}

func newFakeRemote(tasks ...*models.TaskView) *fakeRemote {
	f := &fakeRemote{tasks: make(map[string]*models.TaskView)}
	for _, t := range tasks {
		f.tasks[t.Code] = t
	}
	return f
}

func notFound() *apiclient.ValidationError {
	detail := "Not found."
	return &apiclient.ValidationError{StatusCode: 404, Payload: &models.TaskErrorPayload{Detail: &detail}}
}

func (f *fakeRemote) ListProjects(_ context.Context) ([]models.ProjectView, error) {
	f.calls++
	return f.projects, nil
}

func (f *fakeRemote) GetProject(_ context.Context, id string) (*models.ProjectView, error) {
	f.calls++
	for i := range f.projects {
		if id == strconv.Itoa(f.projects[i].ID) {
			return &f.projects[i], nil
		}
	}
	return nil, notFound()
}

func (f *fakeRemote) CreateProject(_ context.Context, d models.ProjectDraft) (*models.ProjectView, error) {
	f.calls++
	if f.rejectWrite != nil {
		return nil, f.rejectWrite
	}
	return &models.ProjectView{ID: 99, Title: d.Title, Code: d.Code}, nil
}

func (f *fakeRemote) UpdateProject(_ context.Context, id string, d models.ProjectDraft) (*models.ProjectView, error) {
	f.calls++
	return &models.ProjectView{Title: d.Title, Code: d.Code}, nil
}

func (f *fakeRemote) DeleteProject(_ context.Context, id string) error {
	f.calls++
	if f.rejectWrite != nil {
		return f.rejectWrite
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRemote) ListTasks(_ context.Context, filter models.TaskFilter) ([]models.TaskView, error) {
	f.calls++
	f.lastFilter = filter
	var out []models.TaskView
	for _, t := range f.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRemote) GetTask(_ context.Context, code string) (*models.TaskView, error) {
	f.calls++
	t, ok := f.tasks[code]
	if !ok {
		return nil, notFound()
	}
	return t, nil
}

func (f *fakeRemote) CreateTask(_ context.Context, d models.TaskDraft) (*models.TaskView, error) {
	f.calls++
	f.lastDraft = &d
	if f.rejectWrite != nil {
		return nil, f.rejectWrite
	}
	return &models.TaskView{Code: "NEW-1", Title: d.Title}, nil
}

func (f *fakeRemote) UpdateTask(_ context.Context, code string, d models.TaskDraft) (*models.TaskView, error) {
	f.calls++
	f.lastDraft = &d
	if f.rejectWrite != nil {
		return nil, f.rejectWrite
	}
	return &models.TaskView{Code: code, Title: d.Title}, nil
}

func (f *fakeRemote) UpdateTaskStatus(_ context.Context, code string, s models.Status) (*models.TaskView, error) {
	f.calls++
	t, ok := f.tasks[code]
	if !ok {
		return nil, notFound()
	}
	f.lastStatus = s
	t.Status = s
	return t, nil
}

func (f *fakeRemote) DeleteTask(_ context.Context, code string) error {
	f.calls++
	if _, ok := f.tasks[code]; !ok {
		return notFound()
	}
	f.deleted = append(f.deleted, code)
	return nil
}

// scriptedPrompter answers prompts in order.
type scriptedPrompter struct {
	answers []string
}

func (p *scriptedPrompter) Ask(label string) (string, error) {
	if len(p.answers) == 0 {
		return "", errors.New("unexpected prompt: " + label)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

type staticCapturer string

func (c staticCapturer) CaptureText(string) (string, error) { return string(c), nil }

// withServices swaps the package globals for the duration of a test.
func withServices(t *testing.T, api RemoteAPI, answers ...string) {
	t.Helper()
	origAPI, origPrompter, origCapturer, origConfig := API, Prompter, Capturer, ConfigMgr
	t.Cleanup(func() {
		API, Prompter, Capturer, ConfigMgr = origAPI, origPrompter, origCapturer, origConfig
	})
	API = api
	Prompter = &scriptedPrompter{answers: answers}
	Capturer = staticCapturer("captured description")
}

// run executes a command's RunE with captured output.
func run(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	defer func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	}()
	err = cmd.RunE(cmd, args)
	return out.String(), errOut.String(), err
}

func isInputError(err error) bool {
	var ie *core.InputError
	return errors.As(err, &ie)
}
