package models

// ProjectView is a project as returned by the service.
type ProjectView struct {
	ID          int    `json:"id" yaml:"id"`
	CreatedBy   User   `json:"created_by" yaml:"created_by"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code" yaml:"code"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	ModifiedAt  string `json:"modified_at" yaml:"modified_at"`
}

func (p ProjectView) String() string {
	return p.Code + "-" + p.Title
}

// ProjectDraft is the payload for creating or replacing a project.
type ProjectDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
}
