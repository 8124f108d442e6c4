package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optimode/commitkit"
	"github.com/optimode/commitkit/internal/config"
	"github.com/optimode/commitkit/internal/verbset"
)

// lintFlags are the flag values shared by the commands that run the
// linter. Flag values override their config file counterparts.
type lintFlags struct {
	verbs     []string
	verbsFile string
	oneLiners bool
	format    string
}

// lintOpts holds the flag values of the command being executed. Only one
// command runs per invocation, so the commands can share it.
var lintOpts lintFlags

// addVerbFlags registers the whitelist flags.
func addVerbFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&lintOpts.verbs, "verbs", nil, "additional imperative verbs (repeatable, comma-separated)")
	cmd.Flags().StringVar(&lintOpts.verbsFile, "verbs-file", "", "file with additional imperative verbs")
}

// addLintFlags registers the full flag set of the linting commands.
func addLintFlags(cmd *cobra.Command) {
	addVerbFlags(cmd)
	cmd.Flags().BoolVar(&lintOpts.oneLiners, "one-liners", false, "allow single-line commit messages")
	cmd.Flags().StringVarP(&lintOpts.format, "format", "f", "", "report format: text or json (default from config)")
}

// buildLinter assembles the library linter from configuration and flags.
// Invalid verbs surface later, as a configuration error from Check.
func buildLinter(cfg config.Config, opts lintFlags) *commitkit.Linter {
	l := commitkit.New()

	extra := append(append([]string(nil), cfg.Verbs...), opts.verbs...)
	file := cfg.VerbsFile
	if opts.verbsFile != "" {
		file = opts.verbsFile
	}
	if len(extra) > 0 || file != "" {
		l = l.WithVerbs(commitkit.VerbsOptions{
			Extra: strings.Join(extra, ","),
			File:  file,
		})
	}
	if cfg.OneLiners || opts.oneLiners {
		l = l.WithOneLiners()
	}
	return l
}

// effectiveVerbs resolves the whitelist the linter will use, sorted.
func effectiveVerbs(cfg config.Config, opts lintFlags) ([]string, error) {
	set := verbset.Builtin()

	extra := append(append([]string(nil), cfg.Verbs...), opts.verbs...)
	if len(extra) > 0 {
		ext, err := verbset.New(verbset.Parse(strings.Join(extra, ",")))
		if err != nil {
			return nil, err
		}
		set = set.Union(ext)
	}

	file := cfg.VerbsFile
	if opts.verbsFile != "" {
		file = opts.verbsFile
	}
	if file != "" {
		text, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading verbs file %s: %w", file, err)
		}
		ext, err := verbset.New(verbset.Parse(string(text)))
		if err != nil {
			return nil, err
		}
		set = set.Union(ext)
	}
	return set.Verbs(), nil
}

// resolveFormat picks the report format, flag over config file.
func resolveFormat(cfg config.Config, flag string) (string, error) {
	if flag == "" {
		return cfg.Format, nil
	}
	if flag != config.FormatText && flag != config.FormatJSON {
		return "", fmt.Errorf("unknown format %q (want %q or %q)", flag, config.FormatText, config.FormatJSON)
	}
	return flag, nil
}
