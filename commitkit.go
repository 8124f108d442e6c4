// Package commitkit validates commit messages against an opinionated
// style guide: subject/body structure, length limits, an imperative-mood
// leading verb and trailing punctuation.
//
// Basic usage:
//
//	report, err := commitkit.New().Check(message)
//
// Customized:
//
//	report, err := commitkit.New().
//	    WithVerbs(commitkit.VerbsOptions{Extra: "craft; polish"}).
//	    WithOneLiners().
//	    Check(message)
//
// A Report lists every violated rule in evaluation order; an error is
// returned only for configuration problems, never for message problems.
package commitkit

import (
	"github.com/optimode/commitkit/internal/verbset"
	"github.com/optimode/commitkit/types"
)

// Violation is a re-export from the types package so that consumers
// don't need to import the types package directly.
type Violation = types.Violation

// Rule is a re-export.
type Rule = types.Rule

// Rule constants re-exported.
const (
	RuleStructure     = types.RuleStructure
	RuleSubjectLength = types.RuleSubjectLength
	RuleSubjectVerb   = types.RuleSubjectVerb
	RuleSubjectDot    = types.RuleSubjectDot
	RuleBodyEmpty     = types.RuleBodyEmpty
	RuleBodyLength    = types.RuleBodyLength
	RuleBodyFirstWord = types.RuleBodyFirstWord
)

// DefaultVerbs returns the builtin imperative-verb whitelist, sorted.
func DefaultVerbs() []string {
	return verbset.Builtin().Verbs()
}
