package cli

import (
	"context"

	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

// RemoteAPI is every remote operation the commands use.
type RemoteAPI interface {
	core.TaskAPI
	core.ProjectAPI
	ListProjects(ctx context.Context) ([]models.ProjectView, error)
	DeleteProject(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskView, error)
	DeleteTask(ctx context.Context, code string) error
}

// Service instances, set during app initialization in app.go.
var (
	ConfigMgr core.ConfigurationManager
	API       RemoteAPI
	Prompter  core.Prompter
	Capturer  core.TextCapturer
)

// Bootstrap is called before every command with the parsed --config and
// --verbose flags. It is installed by app.go.
var Bootstrap func(configPath string, verbose bool) error
