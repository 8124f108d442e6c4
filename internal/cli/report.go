package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/optimode/commitkit"
	"github.com/optimode/commitkit/internal/config"
)

// labeledReport pairs a lint report with the label of the message source:
// a file path, "stdin", a commit hash or a patch subject.
type labeledReport struct {
	Source string `json:"source"`
	commitkit.Report
}

// renderText renders the failing reports for humans. Valid messages print
// nothing. Each violation is prefixed with "  * "; a typo suggestion is
// appended in parentheses.
func renderText(reports []labeledReport) string {
	var b strings.Builder
	for _, r := range reports {
		if r.Valid {
			continue
		}
		b.WriteString(LabelStyle.Render(r.Source) + ":\n")
		for _, v := range r.Violations {
			b.WriteString(ErrorStyle.Render("  * " + v.Text))
			if v.Suggestion != "" {
				b.WriteString(fmt.Sprintf(" (did you mean: %s?)", v.Suggestion))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// emitReports writes the reports in the requested format and converts
// violations into the exit status contract: nil when everything is valid,
// an ExitError with ExitViolations otherwise.
func emitReports(w io.Writer, format string, reports []labeledReport) error {
	switch format {
	case config.FormatJSON:
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return configErr(fmt.Errorf("encoding reports: %w", err))
		}
		fmt.Fprintln(w, string(out))
	default:
		if out := renderText(reports); out != "" {
			fmt.Fprint(w, out)
		}
	}

	bad := 0
	for _, r := range reports {
		if !r.Valid {
			bad++
		}
	}
	if bad > 0 {
		return &ExitError{
			Code: ExitViolations,
			Err:  fmt.Errorf("%d of %d messages violate the style guide", bad, len(reports)),
		}
	}
	return nil
}
