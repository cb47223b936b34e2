package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// ListTasks returns tasks, optionally filtered by project and status.
func (c *Client) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskView, error) {
	req, err := c.build(TasksEndpoint, "")
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	if filter.ProjectID > 0 {
		q.Set("project", strconv.Itoa(filter.ProjectID))
	}
	if filter.Status.Valid() {
		q.Set("status", strconv.Itoa(filter.Status.WireValue()))
	}
	req = req.WithQuery(q)

	var out []models.TaskView
	if err := c.send(ctx, http.MethodGet, req, nil, &out, &models.TaskErrorPayload{}); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTask fetches one task by code.
func (c *Client) GetTask(ctx context.Context, code string) (*models.TaskView, error) {
	req, err := c.build(TasksEndpoint, code)
	if err != nil {
		return nil, err
	}
	var out models.TaskView
	if err := c.send(ctx, http.MethodGet, req, nil, &out, &models.TaskErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask posts a new task.
func (c *Client) CreateTask(ctx context.Context, draft models.TaskDraft) (*models.TaskView, error) {
	req, err := c.build(TasksEndpoint, "")
	if err != nil {
		return nil, err
	}
	var out models.TaskView
	if err := c.send(ctx, http.MethodPost, req, draft, &out, &models.TaskErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask replaces a task with draft. It is a full replacement, not a
// patch: every field of draft is sent.
func (c *Client) UpdateTask(ctx context.Context, code string, draft models.TaskDraft) (*models.TaskView, error) {
	req, err := c.build(TasksEndpoint, code)
	if err != nil {
		return nil, err
	}
	var out models.TaskView
	if err := c.send(ctx, http.MethodPut, req, draft, &out, &models.TaskErrorPayload{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTaskStatus sends only the status to the task's status sub-resource.
func (c *Client) UpdateTaskStatus(ctx context.Context, code string, status models.Status) (*models.TaskView, error) {
	req, err := c.build(TasksEndpoint, code)
	if err != nil {
		return nil, err
	}
	var out models.TaskView
	err = c.send(ctx, http.MethodPatch, req.Sub("status"), models.StatusUpdate{Status: status}, &out, &models.TaskErrorPayload{})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, code string) error {
	req, err := c.build(TasksEndpoint, code)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, req, nil, nil, &models.TaskErrorPayload{})
}
