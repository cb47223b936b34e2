// Package mcp exposes read and status operations of the task service as MCP
// tools, so that coding assistants can look up and move tasks.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/umsebenzi/internal/apiclient"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// API is the part of the remote client the tools call.
type API interface {
	ListProjects(ctx context.Context) ([]models.ProjectView, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskView, error)
	GetTask(ctx context.Context, code string) (*models.TaskView, error)
	UpdateTaskStatus(ctx context.Context, code string, status models.Status) (*models.TaskView, error)
}

// Server wraps the remote client and serves it over MCP.
type Server struct {
	server *gomcp.Server
	api    API
}

// NewServer creates a new MCP server backed by api.
func NewServer(api API, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{api: api}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "umsebenzi", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listProjectsInput struct{}

type projectOutput struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

type listProjectsOutput struct {
	Projects []projectOutput `json:"projects"`
	Count    int             `json:"count"`
}

type getTaskInput struct {
	Code string `json:"code" jsonschema:"required,the task code (e.g. WEB-12)"`
}

type subtaskOutput struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type taskOutput struct {
	ID          int             `json:"id"`
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Project     string          `json:"project"`
	Issue       string          `json:"issue"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	DueDate     string          `json:"due_date,omitempty"`
	Parent      int             `json:"parent,omitempty"`
	AssignedTo  string          `json:"assigned_to"`
	CreatedAt   string          `json:"created_at"`
	ModifiedAt  string          `json:"modified_at"`
	Subtasks    []subtaskOutput `json:"subtasks,omitempty"`
}

type listTasksInput struct {
	Project int    `json:"project,omitempty" jsonschema:"filter by project id"`
	Status  string `json:"status,omitempty" jsonschema:"filter by status (1-7 or DRAFT, READY, TO_DO, IN_PROGRESS, REVIEW, COMPLETE, ARCHIVE)"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type updateTaskStatusInput struct {
	Code   string `json:"code" jsonschema:"required,the task code (e.g. WEB-12)"`
	Status string `json:"status" jsonschema:"required,the new status (1-7 or DRAFT, READY, TO_DO, IN_PROGRESS, REVIEW, COMPLETE, ARCHIVE)"`
}

type updateTaskStatusOutput struct {
	Message string     `json:"message"`
	Task    taskOutput `json:"task"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_projects",
		Description: "List every project visible to the configured token.",
	}, s.handleListProjects)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally filtered by project id and status.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get a task by code, including its description and sub-tasks.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_task_status",
		Description: "Move a task to another status. Only the status is changed.",
	}, s.handleUpdateTaskStatus)
}

// --- Tool handlers ---

func (s *Server) handleListProjects(ctx context.Context, _ *gomcp.CallToolRequest, _ listProjectsInput) (*gomcp.CallToolResult, listProjectsOutput, error) {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		return errorResult(describe("listing projects", err)), listProjectsOutput{}, nil
	}

	out := listProjectsOutput{
		Projects: make([]projectOutput, len(projects)),
		Count:    len(projects),
	}
	for i, p := range projects {
		out.Projects[i] = projectOutput{
			ID:          p.ID,
			Code:        p.Code,
			Title:       p.Title,
			Description: p.Description,
			CreatedBy:   p.CreatedBy.String(),
			CreatedAt:   p.CreatedAt,
		}
	}
	return nil, out, nil
}

func (s *Server) handleListTasks(ctx context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := models.TaskFilter{ProjectID: input.Project}
	if input.Status != "" {
		status, err := parseStatus(input.Status)
		if err != nil {
			return errorResult(err.Error()), listTasksOutput{}, nil
		}
		filter.Status = status
	}

	tasks, err := s.api.ListTasks(ctx, filter)
	if err != nil {
		return errorResult(describe("listing tasks", err)), listTasksOutput{}, nil
	}

	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i := range tasks {
		out.Tasks[i] = taskToOutput(&tasks[i], false)
	}
	return nil, out, nil
}

func (s *Server) handleGetTask(ctx context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.Code == "" {
		return errorResult("code is required"), taskOutput{}, nil
	}

	task, err := s.api.GetTask(ctx, input.Code)
	if err != nil {
		return errorResult(describe("getting task "+input.Code, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task, true), nil
}

func (s *Server) handleUpdateTaskStatus(ctx context.Context, _ *gomcp.CallToolRequest, input updateTaskStatusInput) (*gomcp.CallToolResult, updateTaskStatusOutput, error) {
	if input.Code == "" {
		return errorResult("code is required"), updateTaskStatusOutput{}, nil
	}
	if input.Status == "" {
		return errorResult("status is required"), updateTaskStatusOutput{}, nil
	}
	status, err := parseStatus(input.Status)
	if err != nil {
		return errorResult(err.Error()), updateTaskStatusOutput{}, nil
	}

	task, err := s.api.UpdateTaskStatus(ctx, input.Code, status)
	if err != nil {
		return errorResult(describe("updating task "+input.Code, err)), updateTaskStatusOutput{}, nil
	}

	out := updateTaskStatusOutput{
		Message: fmt.Sprintf("task %s status updated to %s", input.Code, status.Display()),
		Task:    taskToOutput(task, false),
	}
	return nil, out, nil
}

// --- Helpers ---

// parseStatus accepts a menu selector or a wire token.
func parseStatus(s string) (models.Status, error) {
	if status, err := models.ParseStatusSelector(s); err == nil {
		return status, nil
	}
	status, err := models.ParseStatusWire(strings.ToUpper(s))
	if err != nil {
		return 0, fmt.Errorf("invalid status %q: use 1-7 or one of DRAFT, READY, TO_DO, IN_PROGRESS, REVIEW, COMPLETE, ARCHIVE", s)
	}
	return status, nil
}

func taskToOutput(t *models.TaskView, full bool) taskOutput {
	out := taskOutput{
		ID:         t.ID,
		Code:       t.Code,
		Title:      t.Title,
		Project:    t.Project.String(),
		Issue:      t.Issue.Wire(),
		Status:     t.Status.Wire(),
		AssignedTo: t.AssignedTo.String(),
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
	if t.DueDate != nil {
		out.DueDate = *t.DueDate
	}
	if t.Parent != nil {
		out.Parent = *t.Parent
	}
	if full {
		out.Description = t.Description
		for _, st := range t.Subtasks {
			out.Subtasks = append(out.Subtasks, subtaskOutput{Code: st.Code, Title: st.Title, Status: st.Status.Wire()})
		}
	}
	return out
}

// describe flattens a remote validation error into one line per field.
func describe(action string, err error) string {
	var ve *apiclient.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Sprintf("%s: %s", action, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: rejected with status %d", action, ve.StatusCode)
	if ve.Payload != nil {
		for _, f := range ve.Payload.FieldErrors() {
			fmt.Fprintf(&b, "\n%s: %s", f.Field, strings.Join(f.Messages, "; "))
		}
	}
	return b.String()
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
