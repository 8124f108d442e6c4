package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "Print the effective verb whitelist",
	Long: `Print the effective verb whitelist, one verb per line, sorted.

The list is the builtin whitelist plus any verbs from the configuration
and the --verbs and --verbs-file flags. A subject must start with one of
these verbs, capitalized.`,
	Args: cobra.NoArgs,
	RunE: runVerbs,
}

func init() {
	addVerbFlags(verbsCmd)
}

func runVerbs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	verbs, err := effectiveVerbs(cfg, lintOpts)
	if err != nil {
		return configErr(err)
	}
	for _, v := range verbs {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
