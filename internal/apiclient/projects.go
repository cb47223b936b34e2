package apiclient

import (
	"context"
	"net/http"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// ListProjects returns every project visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]models.ProjectView, error) {
	req, err := c.build(ProjectsEndpoint, "")
	if err != nil {
		return nil, err
	}
	var out []models.ProjectView
	if err := c.send(ctx, http.MethodGet, req, nil, &out, &models.ProjectErrorPayload{}); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, id string) (*models.ProjectView, error) {
	req, err := c.build(ProjectsEndpoint, id)
	if err != nil {
		return nil, err
	}
	var out models.ProjectView
	if err := c.send(ctx, http.MethodGet, req, nil, &out, &models.ProjectErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject posts a new project.
func (c *Client) CreateProject(ctx context.Context, draft models.ProjectDraft) (*models.ProjectView, error) {
	req, err := c.build(ProjectsEndpoint, "")
	if err != nil {
		return nil, err
	}
	var out models.ProjectView
	if err := c.send(ctx, http.MethodPost, req, draft, &out, &models.ProjectErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject replaces a project.
func (c *Client) UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (*models.ProjectView, error) {
	req, err := c.build(ProjectsEndpoint, id)
	if err != nil {
		return nil, err
	}
	var out models.ProjectView
	if err := c.send(ctx, http.MethodPut, req, draft, &out, &models.ProjectErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	req, err := c.build(ProjectsEndpoint, id)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, req, nil, nil, &models.ProjectErrorPayload{})
}
