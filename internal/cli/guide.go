package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the commit message style guide",
	Long:  "Render the style guide that the check command enforces.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderMarkdown(guideMarkdown)
		if err != nil {
			// Plain markdown is still readable.
			logger.Debug("markdown rendering failed", "err", err)
			fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderMarkdown renders markdown for the current terminal.
func renderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
