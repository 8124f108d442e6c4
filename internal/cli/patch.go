package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optimode/commitkit/internal/patchset"
)

var patchCmd = &cobra.Command{
	Use:   "patch <mbox>",
	Short: "Check every commit message of an mbox patch series",
	Long: `Check every commit message of an mbox patch series.

The file is what git format-patch or git send-email produce: one mail per
patch. Subjects are MIME-decoded, the [PATCH ...] prefix is stripped and
the body is cut at the "---" scissors line, so only the commit message
itself is checked. Reports are labeled with the patch subject.`,
	Example: `  git format-patch --stdout origin/main..HEAD > series.mbox
  commitkit patch series.mbox`,
	Args: cobra.ExactArgs(1),
	RunE: runPatch,
}

func init() {
	addLintFlags(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg, lintOpts.format)
	if err != nil {
		return configErr(err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return configErr(fmt.Errorf("opening %s: %w", args[0], err))
	}
	defer f.Close()

	patches, err := patchset.Read(f)
	if err != nil {
		return configErr(err)
	}
	if len(patches) == 0 {
		return configErr(fmt.Errorf("no patches found in %s", args[0]))
	}
	logger.Debug("patch series read", "file", args[0], "patches", len(patches))

	messages := make([]string, len(patches))
	for i, p := range patches {
		messages[i] = p.Message
	}
	reports, err := buildLinter(cfg, lintOpts).CheckMany(messages)
	if err != nil {
		return configErr(err)
	}

	labeled := make([]labeledReport, len(reports))
	for i, rep := range reports {
		labeled[i] = labeledReport{Source: patches[i].Subject, Report: rep}
	}
	return emitReports(cmd.OutOrStdout(), format, labeled)
}
