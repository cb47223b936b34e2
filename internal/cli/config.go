package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/internal/render"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the stored server configuration",
	Long: `Show the server URL and token the client uses. The token is masked.

Use 'config add' to create or replace the configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ConfigMgr == nil {
			return errConfigNotInitialized
		}
		cfg, err := ConfigMgr.LoadConfig()
		if err != nil {
			return err
		}
		render.Config(cmd.OutOrStdout(), ConfigMgr.Path(), cfg)
		return nil
	},
}

var configAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store the server URL and access token",
	Long: `Prompt for the server URL and access token and write them to the config
file. A blank URL keeps the current one (or the default for a new file).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ConfigMgr == nil {
			return errConfigNotInitialized
		}
		if Prompter == nil {
			return errPromptNotInitialized
		}

		cfg := &models.Config{Host: models.DefaultHost, AuthScheme: models.DefaultAuthScheme}
		if existing, err := ConfigMgr.LoadConfig(); err == nil {
			cfg = existing
		} else if !errors.Is(err, core.ErrConfigUnavailable) {
			return err
		}

		host, err := Prompter.Ask(fmt.Sprintf("Host [%s]", cfg.Host))
		if err != nil {
			return err
		}
		if host != "" {
			if err := core.ValidateHost(host); err != nil {
				return &core.InputError{Field: "host", Err: err}
			}
			cfg.Host = host
		}

		token, err := Prompter.Ask("Token")
		if err != nil {
			return err
		}
		if token == "" {
			return &core.InputError{Field: "credentials", Err: core.ErrRequired}
		}
		cfg.Credentials = token

		if err := ConfigMgr.SaveConfig(cfg); err != nil {
			return err
		}
		render.Success(cmd.OutOrStdout(), "Configuration saved to %s", ConfigMgr.Path())
		return nil
	},
}

var configTaskStatusCmd = &cobra.Command{
	Use:   "task-status",
	Short: "List the task statuses and their selectors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		render.Table(cmd.OutOrStdout(), render.StatusColumns, models.AllStatuses())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configTaskStatusCmd)
	rootCmd.AddCommand(configCmd)
}
