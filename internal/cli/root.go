// Package cli contains all commands of the commitkit binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/optimode/commitkit/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "commitkit"})

	// rootCmd represents the base command when called without subcommands.
	rootCmd = &cobra.Command{
		Use:   "commitkit",
		Short: "A style checker for git commit messages",
		Long: TitleStyle.Render("commitkit") + SubtitleStyle.Render(" - a style checker for git commit messages") + `

commitkit checks commit messages against a fixed house style: a short
subject in imperative mood, an empty separator line and a wrapped body.
Messages can come from files, stdin, command line literals, a git
revision range or an mbox patch series.

` + SubtitleStyle.Render("Examples:") + `
  git log -1 --format=%B | commitkit check
  commitkit check .git/COMMIT_EDITMSG
  commitkit check --range origin/main..HEAD
  commitkit patch series.mbox
  commitkit hook install`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .commitkit.toml, then the user config dir)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(verbsCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
}

func initLogging() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// versionString returns a formatted version string for display.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// fang overrides rootCmd.Version, so the version goes through
	// fang.WithVersion instead.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		// Anything without an explicit code could not run at all:
		// usage errors, unknown flags.
		os.Exit(ExitConfig)
	}
}

// loadConfig resolves the CLI configuration for the current invocation.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, configErr(err)
	}
	logger.Debug("configuration loaded", "format", cfg.Format, "one_liners", cfg.OneLiners)
	return cfg, nil
}
