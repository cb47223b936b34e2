package cli

import (
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/internal/render"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskListProject int
	taskListStatus  string
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered by project id and status selector.

Status selectors are listed by 'umsebenzi config task-status'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		filter, err := taskFilter(taskListProject, taskListStatus)
		if err != nil {
			return err
		}
		tasks, err := API.ListTasks(commandContext(cmd), filter)
		if err != nil {
			return report(cmd, err, false)
		}
		render.Table(cmd.OutOrStdout(), render.TaskColumns, tasks)
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task interactively",
	Long: `Prompt for project, title, issue kind, status, due date and assignee and
open the editor for the description. A subtask also needs a parent id.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}
		t, err := core.NewTaskEngine(Prompter, Capturer, API).Create(commandContext(cmd))
		if err != nil {
			return report(cmd, err, false)
		}
		render.Success(cmd.OutOrStdout(), "Created task %s", t.Code)
		return nil
	},
}

var taskDetailOutput string

var taskDetailCmd = &cobra.Command{
	Use:   "detail <code>",
	Short: "Show a task with its sub-tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		format, err := render.ParseFormat(taskDetailOutput)
		if err != nil {
			return err
		}
		t, err := API.GetTask(commandContext(cmd), args[0])
		if err != nil {
			return report(cmd, err, false)
		}
		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, t)
		}
		render.Task(cmd.OutOrStdout(), t)
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <code>",
	Short: "Edit a task interactively",
	Long: `Fetch the task and prompt for each field. A blank answer keeps the current
value; answer E at the description prompt to open the editor.

Turning an epic into a subtask asks for a parent id. Turning a subtask into
an epic drops its parent. Status is not changed here, use 'task status'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}
		t, err := core.NewTaskEngine(Prompter, Capturer, API).Edit(commandContext(cmd), args[0])
		if err != nil {
			return report(cmd, err, false)
		}
		render.Success(cmd.OutOrStdout(), "Updated task %s", t.Code)
		return nil
	},
}

var taskDeleteYes bool

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		code := args[0]
		if !taskDeleteYes {
			if Prompter == nil {
				return errPromptNotInitialized
			}
			ok, err := core.Confirm(Prompter, "Delete task "+code+"?")
			if err != nil {
				return err
			}
			if !ok {
				render.Warn(cmd.OutOrStdout(), "Aborted")
				return nil
			}
		}
		if err := API.DeleteTask(commandContext(cmd), code); err != nil {
			return report(cmd, err, true)
		}
		render.Success(cmd.OutOrStdout(), "Deleted task %s", code)
		return nil
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <code> [selector]",
	Short: "Move a task to another status",
	Long: `Change only the status of a task. The selector is a number from 1 to 7
(see 'umsebenzi config task-status'); without it you are prompted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		selector := ""
		if len(args) == 2 {
			selector = args[1]
		} else if Prompter == nil {
			return errPromptNotInitialized
		}
		t, err := core.NewTaskEngine(Prompter, Capturer, API).UpdateStatus(commandContext(cmd), args[0], selector)
		if err != nil {
			return report(cmd, err, false)
		}
		render.Success(cmd.OutOrStdout(), "Task %s is now %s", t.Code, t.Status.Display())
		return nil
	},
}

// taskFilter converts list flags into a filter; zero values mean no filter.
func taskFilter(project int, selector string) (models.TaskFilter, error) {
	filter := models.TaskFilter{ProjectID: project}
	if project < 0 {
		return filter, &core.InputError{Field: "project", Err: core.ErrInvalidID}
	}
	if selector != "" {
		s, err := models.ParseStatusSelector(selector)
		if err != nil {
			return filter, &core.InputError{Field: "status", Err: err}
		}
		filter.Status = s
	}
	return filter, nil
}

func init() {
	taskListCmd.Flags().IntVarP(&taskListProject, "project", "p", 0, "only tasks of this project id")
	taskListCmd.Flags().StringVarP(&taskListStatus, "status", "s", "", "only tasks with this status selector (1-7)")
	taskDetailCmd.Flags().StringVarP(&taskDetailOutput, "output", "o", "text", "output format (text, yaml, json)")
	taskDeleteCmd.Flags().BoolVarP(&taskDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDetailCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskStatusCmd)
	rootCmd.AddCommand(taskCmd)
}
