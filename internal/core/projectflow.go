package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// ProjectAPI is the subset of the remote client the project flows need.
type ProjectAPI interface {
	GetProject(ctx context.Context, id string) (*models.ProjectView, error)
	CreateProject(ctx context.Context, draft models.ProjectDraft) (*models.ProjectView, error)
	UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (*models.ProjectView, error)
}

// ProjectEngine drives the interactive create and edit flows for projects.
type ProjectEngine struct {
	prompter Prompter
	capturer TextCapturer
	api      ProjectAPI
}

// NewProjectEngine creates a ProjectEngine.
func NewProjectEngine(p Prompter, c TextCapturer, api ProjectAPI) *ProjectEngine {
	return &ProjectEngine{prompter: p, capturer: c, api: api}
}

// Create collects a new project and submits it.
func (e *ProjectEngine) Create(ctx context.Context) (*models.ProjectView, error) {
	draft, err := e.CollectCreate()
	if err != nil {
		return nil, err
	}
	return e.api.CreateProject(ctx, draft)
}

// CollectCreate asks for title, code and description.
func (e *ProjectEngine) CollectCreate() (models.ProjectDraft, error) {
	var (
		draft models.ProjectDraft
		err   error
	)
	if draft.Title, err = require(e.prompter, "title", "Title"); err != nil {
		return draft, err
	}
	if draft.Code, err = require(e.prompter, "code", "Code"); err != nil {
		return draft, err
	}
	if draft.Description, err = capture(e.capturer, "description", ""); err != nil {
		return draft, err
	}
	return draft, nil
}

// Edit fetches the project, collects changes and replaces it.
func (e *ProjectEngine) Edit(ctx context.Context, id string) (*models.ProjectView, error) {
	current, err := e.api.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	draft, err := e.CollectEdit(current)
	if err != nil {
		return nil, err
	}
	return e.api.UpdateProject(ctx, id, draft)
}

// CollectEdit merges user overrides into current; blank keeps a field.
func (e *ProjectEngine) CollectEdit(current *models.ProjectView) (models.ProjectDraft, error) {
	draft := models.ProjectDraft{
		Title:       current.Title,
		Description: current.Description,
		Code:        current.Code,
	}

	answer, err := e.prompter.Ask(fmt.Sprintf("Title [%s]", current.Title))
	if err != nil {
		return draft, err
	}
	if answer != "" {
		draft.Title = answer
	}

	answer, err = e.prompter.Ask(fmt.Sprintf("Code [%s]", current.Code))
	if err != nil {
		return draft, err
	}
	if answer != "" {
		draft.Code = answer
	}

	answer, err = e.prompter.Ask("Description (blank to keep, E to open the editor)")
	if err != nil {
		return draft, err
	}
	switch {
	case strings.EqualFold(answer, "e"):
		if draft.Description, err = capture(e.capturer, "description", current.Description); err != nil {
			return draft, err
		}
	case answer != "":
		draft.Description = answer
	}
	return draft, nil
}

// Confirm asks a Y/N question. Anything other than Y or N, including a blank
// line, is an *InputError.
func Confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Ask(label + " (Y/N)")
	if err != nil {
		return false, err
	}
	return parseYesNo("confirm", answer)
}
