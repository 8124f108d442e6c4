package check

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/optimode/commitkit/internal/levenshtein"
	"github.com/optimode/commitkit/internal/parse"
	"github.com/optimode/commitkit/internal/verbset"
	"github.com/optimode/commitkit/types"
)

// maxSubjectRunes is the upper bound for the subject line, counted in
// runes after the issue reference suffix has been stripped.
const maxSubjectRunes = 50

// suggestDistance is the maximum edit distance for "did you mean"
// verb suggestions.
const suggestDistance = 2

// issueSuffixRe matches a trailing issue reference such as " (#42)",
// including the optional single space in front of it.
var issueSuffixRe = regexp.MustCompile(` ?\(\s*#\w+\s*\)$`)

// SubjectChecker verifies the subject line: length, imperative leading
// verb and the absence of a trailing dot.
type SubjectChecker struct {
	verbs *verbset.Set
}

// NewSubjectChecker creates a subject checker that accepts the leading
// verbs contained in the given set.
func NewSubjectChecker(verbs *verbset.Set) *SubjectChecker {
	return &SubjectChecker{verbs: verbs}
}

// Check applies all subject rules independently and returns every
// violation it finds, in rule order.
func (c *SubjectChecker) Check(msg parse.Message) []types.Violation {
	subject := stripIssueSuffix(msg.Subject())

	var violations []types.Violation
	if n := utf8.RuneCountInString(subject); n > maxSubjectRunes {
		violations = append(violations, types.Violation{
			Rule: types.RuleSubjectLength,
			Line: 1,
			Text: fmt.Sprintf("The subject must not exceed %d characters, but has %d: %q.", maxSubjectRunes, n, subject),
		})
	}
	if v, ok := c.checkVerb(subject); !ok {
		violations = append(violations, v)
	}
	if strings.HasSuffix(subject, ".") {
		violations = append(violations, types.Violation{
			Rule: types.RuleSubjectDot,
			Line: 1,
			Text: "The subject must not end with a dot ('.').",
		})
	}
	return violations
}

func (c *SubjectChecker) checkVerb(subject string) (types.Violation, bool) {
	word, ok := parse.LeadingWord(subject)
	if !ok {
		return types.Violation{
			Rule: types.RuleSubjectVerb,
			Line: 1,
			Text: `The subject must start with a capitalized verb (e.g., "Change").`,
		}, false
	}
	lower := strings.ToLower(word)
	if c.verbs.Contains(lower) {
		return types.Violation{}, true
	}
	return types.Violation{
		Rule:       types.RuleSubjectVerb,
		Line:       1,
		Text:       fmt.Sprintf("The subject must start with a verb in imperative mood, but got: %q. Unknown verbs can be allowed via the additional verbs list.", word),
		Suggestion: levenshtein.Closest(lower, c.verbs.Verbs(), suggestDistance),
	}, false
}

// stripIssueSuffix removes a trailing issue reference like " (#42)"
// so that it does not count against the subject rules.
func stripIssueSuffix(subject string) string {
	return issueSuffixRe.ReplaceAllString(subject, "")
}
