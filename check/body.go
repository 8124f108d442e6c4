package check

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/optimode/commitkit/internal/parse"
	"github.com/optimode/commitkit/types"
)

// maxBodyRunes is the upper bound for a single body line, counted in
// runes. Lines that consist of a bare URL or a link definition are
// exempt, since URLs cannot be wrapped.
const maxBodyRunes = 72

var (
	urlLineRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://\S+$`)
	linkDefRe = regexp.MustCompile(`^\[[^\]]+\]\s*:\s*[a-zA-Z][a-zA-Z0-9+.-]*://\S+$`)
)

// BodyChecker verifies the body lines: presence, line length and the
// leading word of the first body line.
type BodyChecker struct{}

// NewBodyChecker creates a body checker.
func NewBodyChecker() *BodyChecker {
	return &BodyChecker{}
}

// Check applies all body rules and returns every violation it finds,
// in line order, with the duplicate-word rule last.
func (c *BodyChecker) Check(msg parse.Message) []types.Violation {
	body := msg.Body()
	if len(body) == 0 {
		return []types.Violation{{
			Rule: types.RuleBodyEmpty,
			Text: "Expected at least one line in the body, but got an empty body.",
		}}
	}
	if len(body) == 1 && strings.TrimSpace(body[0]) == "" {
		return []types.Violation{{
			Rule: types.RuleBodyEmpty,
			Line: 3,
			Text: "Unexpected empty body: got a single blank line.",
		}}
	}

	var violations []types.Violation
	for i, line := range body {
		if exemptFromLength(line) {
			continue
		}
		if n := utf8.RuneCountInString(line); n > maxBodyRunes {
			violations = append(violations, types.Violation{
				Rule: types.RuleBodyLength,
				Line: i + 3,
				Text: fmt.Sprintf("Body line %d (message line %d) must not exceed %d characters, but has %d: %q.", i+1, i+3, maxBodyRunes, n, line),
			})
		}
	}

	first, ok := parse.LeadingWord(body[0])
	subjectFirst, sok := parse.LeadingWord(msg.Subject())
	if ok && sok && strings.EqualFold(first, subjectFirst) {
		violations = append(violations, types.Violation{
			Rule: types.RuleBodyFirstWord,
			Line: 3,
			Text: fmt.Sprintf("The first word of the subject must not match the first word of the body, but both are %q.", subjectFirst),
		})
	}
	return violations
}

// exemptFromLength reports whether the line is excluded from the line
// length rule: a line holding nothing but a URL, or a Markdown link
// definition pointing at one.
func exemptFromLength(line string) bool {
	return urlLineRe.MatchString(line) || linkDefRe.MatchString(line)
}
