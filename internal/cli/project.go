package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/internal/render"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		projects, err := API.ListProjects(commandContext(cmd))
		if err != nil {
			return report(cmd, err, false)
		}
		render.Table(cmd.OutOrStdout(), render.ProjectColumns, projects)
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project interactively",
	Long: `Prompt for a title and code, then open the editor for the description
and create the project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}
		p, err := core.NewProjectEngine(Prompter, Capturer, API).Create(commandContext(cmd))
		if err != nil {
			return report(cmd, err, false)
		}
		render.Success(cmd.OutOrStdout(), "Created project %s (id %d)", p, p.ID)
		return nil
	},
}

var projectDetailOutput string

var projectDetailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		format, err := render.ParseFormat(projectDetailOutput)
		if err != nil {
			return err
		}
		id, err := projectID(args[0])
		if err != nil {
			return err
		}
		p, err := API.GetProject(commandContext(cmd), id)
		if err != nil {
			return report(cmd, err, false)
		}
		if format != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), format, p)
		}
		render.Project(cmd.OutOrStdout(), p)
		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project interactively",
	Long: `Fetch the project and prompt for each field. A blank answer keeps the
current value; answer E at the description prompt to open the editor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}
		id, err := projectID(args[0])
		if err != nil {
			return err
		}
		p, err := core.NewProjectEngine(Prompter, Capturer, API).Edit(commandContext(cmd), id)
		if err != nil {
			return report(cmd, err, false)
		}
		render.Success(cmd.OutOrStdout(), "Updated project %s", p)
		return nil
	},
}

var projectDeleteYes bool

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAPI(); err != nil {
			return err
		}
		id, err := projectID(args[0])
		if err != nil {
			return err
		}
		if !projectDeleteYes {
			if Prompter == nil {
				return errPromptNotInitialized
			}
			ok, err := core.Confirm(Prompter, "Delete project "+id+"?")
			if err != nil {
				return err
			}
			if !ok {
				render.Warn(cmd.OutOrStdout(), "Aborted")
				return nil
			}
		}
		if err := API.DeleteProject(commandContext(cmd), id); err != nil {
			return report(cmd, err, true)
		}
		render.Success(cmd.OutOrStdout(), "Deleted project %s", id)
		return nil
	},
}

// projectID validates a project id argument and returns it in canonical form.
func projectID(arg string) (string, error) {
	n, err := core.ParseID("id", arg)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func init() {
	projectDetailCmd.Flags().StringVarP(&projectDetailOutput, "output", "o", "text", "output format (text, yaml, json)")
	projectDeleteCmd.Flags().BoolVarP(&projectDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectDetailCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
