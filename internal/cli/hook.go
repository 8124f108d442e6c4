package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/optimode/commitkit/internal/gitlog"
)

// hookScript is the commit-msg shim. git passes the path of the message
// file as $1.
const hookScript = `#!/bin/sh
# Installed by commitkit. Remove with: commitkit hook uninstall
exec commitkit check "$1"
`

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the commit-msg hook of the current repository",
	Long: `Manage the commit-msg hook of the current repository.

The hook runs "commitkit check" on every commit message before the
commit is recorded, so style problems are caught while the message can
still be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hookPath()
		if err != nil {
			return configErr(err)
		}
		msg, err := installHook(path)
		if err != nil {
			return configErr(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the commit-msg hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := hookPath()
		if err != nil {
			return configErr(err)
		}
		msg, err := uninstallHook(path)
		if err != nil {
			return configErr(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
}

// hookPath resolves the commit-msg hook location of the enclosing
// repository.
func hookPath() (string, error) {
	gitDir, err := gitlog.GitDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "commit-msg"), nil
}

// installHook writes the shim at path. A foreign hook is never
// overwritten.
func installHook(path string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		if string(data) == hookScript {
			return WarningStyle.Render("commit-msg hook already installed: ") + path, nil
		}
		return "", fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return "", fmt.Errorf("writing hook: %w", err)
	}
	return SuccessStyle.Render("Installed commit-msg hook: ") + path, nil
}

// uninstallHook removes the shim at path. Hooks not written by
// installHook are left alone.
func uninstallHook(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return WarningStyle.Render("no commit-msg hook installed"), nil
	}
	if err != nil {
		return "", fmt.Errorf("reading hook: %w", err)
	}
	if string(data) != hookScript {
		return "", fmt.Errorf("%s was not installed by commitkit, refusing to remove", path)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("removing hook: %w", err)
	}
	return SuccessStyle.Render("Removed commit-msg hook: ") + path, nil
}
