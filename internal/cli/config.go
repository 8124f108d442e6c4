package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/optimode/commitkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage commitkit configuration",
	Long: `Manage commitkit configuration.

Configuration is read from .commitkit.toml in the working directory,
then from ` + config.FileName + ` in the user configuration directory,
and every key can be overridden with a COMMITKIT_* environment
variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, created, err := config.Init()
		if err != nil {
			return configErr(err)
		}
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), WarningStyle.Render(path+" already exists"))
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := config.Render(cfg)
		if err != nil {
			return configErr(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the user configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return configErr(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.FileName))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
