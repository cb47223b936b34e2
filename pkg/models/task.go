package models

// User is the compact user representation embedded in projects and tasks.
type User struct {
	ID       Identity `json:"id" yaml:"id"`
	Username string   `json:"username" yaml:"username"`
	Email    string   `json:"email" yaml:"email"`
}

func (u User) String() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}

// ProjectSummary is the project reference nested in a task.
type ProjectSummary struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Code      string `json:"code" yaml:"code"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

func (p ProjectSummary) String() string {
	return p.Code + "-" + p.Title
}

// SubTaskSummary is a sub-item listed under its parent task.
type SubTaskSummary struct {
	Title     string `json:"title" yaml:"title"`
	Code      string `json:"code" yaml:"code"`
	Status    Status `json:"status" yaml:"status"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// TaskView is a task as returned by the service.
type TaskView struct {
	ID          int              `json:"id" yaml:"id"`
	Project     ProjectSummary   `json:"project" yaml:"project"`
	Title       string           `json:"title" yaml:"title"`
	Code        string           `json:"code" yaml:"code"`
	Issue       IssueKind        `json:"issue" yaml:"issue"`
	Description string           `json:"description" yaml:"description"`
	CreatedBy   User             `json:"created_by" yaml:"created_by"`
	Status      Status           `json:"status" yaml:"status"`
	DueDate     *string          `json:"due_date" yaml:"due_date,omitempty"`
	ModifiedAt  string           `json:"modified_at" yaml:"modified_at"`
	Subtasks    []SubTaskSummary `json:"subtasks" yaml:"subtasks,omitempty"`
	AssignedTo  User             `json:"assigned_to" yaml:"assigned_to"`
	CreatedAt   string           `json:"created_at" yaml:"created_at"`
	Parent      *int             `json:"parent" yaml:"parent,omitempty"`
}

// TaskDraft is the payload for creating or fully replacing a task.
// ParentID is always serialized so that a null clears the parent server side.
type TaskDraft struct {
	ProjectID    int       `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       Status    `json:"status"`
	Issue        IssueKind `json:"issue"`
	DueDate      *string   `json:"due_date,omitempty"`
	AssignedToID string    `json:"assigned_to_id"`
	ParentID     *int      `json:"parent_id"`
}

// StatusUpdate is the partial payload sent to a task's status sub-resource.
type StatusUpdate struct {
	Status Status `json:"status"`
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID int
	Status    Status
}
