package commitkit

import "github.com/optimode/commitkit/types"

// Report is the full outcome of checking one commit message.
// The Valid field is true only if no rule was violated.
type Report struct {
	Message    string            `json:"message"`
	Valid      bool              `json:"valid"`
	Violations []types.Violation `json:"violations,omitempty"`
}

// Messages returns the violation texts in evaluation order: subject rules
// before body rules, earlier lines before later ones. A valid message
// yields no entries.
func (r Report) Messages() []string {
	var out []string
	for _, v := range r.Violations {
		out = append(out, v.Text)
	}
	return out
}

// ViolationsFor returns the violations recorded for the given rule.
// Rules that inspect every line, like the body length rule, can appear
// more than once.
func (r Report) ViolationsFor(rule Rule) []types.Violation {
	var out []types.Violation
	for _, v := range r.Violations {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}
