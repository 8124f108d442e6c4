package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/optimode/commitkit/internal/gitlog"
)

var (
	// checkMessages are literal messages passed with -m.
	checkMessages []string
	// checkRange is a git revision range to lint.
	checkRange string

	checkCmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "Check commit messages against the style guide",
		Long: `Check commit messages against the style guide.

Each file argument holds one commit message; a single dash or no message
source at all reads the message from stdin. Literal messages can be passed
with --message, and --range checks every commit of a git revision range.
All given sources are combined and every violation is reported.

The exit status is 0 when all messages pass, 1 when any message has
violations and 2 when the checker could not run.`,
		Example: `  git log -1 --format=%B | commitkit check
  commitkit check .git/COMMIT_EDITMSG
  commitkit check -m "Add a parser" -m "Fix the build"
  commitkit check --range origin/main..HEAD --format json`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().StringArrayVarP(&checkMessages, "message", "m", nil, "commit message literal (repeatable)")
	checkCmd.Flags().StringVar(&checkRange, "range", "", "git revision range to check (e.g. origin/main..HEAD)")
	addLintFlags(checkCmd)
}

// source is one commit message to check, plus where it came from.
type source struct {
	Label   string
	Message string
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg, lintOpts.format)
	if err != nil {
		return configErr(err)
	}

	sources, err := gatherSources(cmd.InOrStdin(), args, checkMessages, checkRange)
	if err != nil {
		return configErr(err)
	}

	messages := make([]string, len(sources))
	for i, src := range sources {
		messages[i] = src.Message
	}
	reports, err := buildLinter(cfg, lintOpts).CheckMany(messages)
	if err != nil {
		return configErr(err)
	}

	labeled := make([]labeledReport, len(reports))
	for i, rep := range reports {
		labeled[i] = labeledReport{Source: sources[i].Label, Report: rep}
	}
	if err := emitReports(cmd.OutOrStdout(), format, labeled); err != nil {
		return err
	}
	logger.Debug("all messages pass", "count", len(labeled))
	return nil
}

// gatherSources collects the messages to check: file arguments first, then
// --message literals, then the commits of --range. Stdin is read only when
// no source was specified at all; a revision range that covers zero commits
// yields zero messages rather than switching to stdin.
func gatherSources(stdin io.Reader, args, literals []string, revRange string) ([]source, error) {
	var sources []source

	for _, path := range args {
		if path == "-" {
			msg, err := readStdin(stdin)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{Label: "stdin", Message: msg})
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, source{Label: path, Message: string(data)})
	}

	for i, msg := range literals {
		sources = append(sources, source{Label: fmt.Sprintf("message %d", i+1), Message: msg})
	}

	if revRange != "" {
		commits, err := gitlog.Messages("", revRange)
		if err != nil {
			return nil, err
		}
		for _, c := range commits {
			sources = append(sources, source{Label: c.Hash, Message: c.Message})
		}
	}

	if len(args) == 0 && len(literals) == 0 && revRange == "" {
		msg, err := readStdin(stdin)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{Label: "stdin", Message: msg})
	}
	return sources, nil
}

func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
