// Package types contains the shared types for commitkit.
// This package does not import anything from other commitkit packages
// to avoid circular imports.
package types

// Rule identifies a single style-guide rule.
type Rule = string

const (
	// RuleStructure covers the subject/empty-line/body shape of a message.
	RuleStructure Rule = "structure"
	// RuleSubjectLength is the 50-character subject limit.
	RuleSubjectLength Rule = "subject-length"
	// RuleSubjectVerb requires a whitelisted capitalized imperative verb.
	RuleSubjectVerb Rule = "subject-verb"
	// RuleSubjectDot forbids a trailing dot on the subject.
	RuleSubjectDot Rule = "subject-dot"
	// RuleBodyEmpty requires a non-blank body in multi-line messages.
	RuleBodyEmpty Rule = "body-empty"
	// RuleBodyLength is the 72-character body line limit.
	RuleBodyLength Rule = "body-length"
	// RuleBodyFirstWord forbids the body opening with the subject's first word.
	RuleBodyFirstWord Rule = "body-first-word"
)

// Violation is a single broken rule in a commit message.
// Text is the stable, human-readable description consumed by presentation
// layers; it never ends with a newline.
type Violation struct {
	Rule Rule `json:"rule"`
	// Line is the 1-based message line the violation points at,
	// or 0 when the violation concerns the message as a whole.
	Line int    `json:"line,omitempty"`
	Text string `json:"text"`
	// Suggestion optionally names a close whitelist match for a rejected
	// verb ("did you mean"). It never alters the rule outcome.
	Suggestion string `json:"suggestion,omitempty"`
}
