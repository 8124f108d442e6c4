package check

import (
	"fmt"
	"unicode/utf8"

	"github.com/optimode/commitkit/internal/parse"
	"github.com/optimode/commitkit/types"
)

// StructureConfig controls how strict the structure rule is.
type StructureConfig struct {
	// AllowOneLiners accepts messages that consist of a single
	// subject line and no body.
	AllowOneLiners bool
}

// StructureChecker verifies the overall shape of a commit message:
// a subject line, an empty separator line and at least one body line.
type StructureChecker struct {
	cfg StructureConfig
}

// NewStructureChecker creates a structure checker with the given config.
func NewStructureChecker(cfg StructureConfig) *StructureChecker {
	return &StructureChecker{cfg: cfg}
}

// Check inspects the line structure of the message. It reports at most
// one violation: later rules cannot be applied to a message whose shape
// is already broken.
func (c *StructureChecker) Check(msg parse.Message) []types.Violation {
	switch n := len(msg.Lines); {
	case n == 0:
		return []types.Violation{{
			Rule: types.RuleStructure,
			Text: "The message is empty.",
		}}
	case n == 1:
		if c.cfg.AllowOneLiners {
			return nil
		}
		return []types.Violation{{
			Rule: types.RuleStructure,
			Text: "Expected at least three lines (subject, empty, body), but got: 1",
		}}
	case n == 2:
		return []types.Violation{{
			Rule: types.RuleStructure,
			Text: "Expected at least three lines (subject, empty, body) in a multi-line message, but got: 2",
		}}
	}

	if sep := msg.Separator(); sep != "" {
		return []types.Violation{{
			Rule: types.RuleStructure,
			Line: 2,
			Text: fmt.Sprintf("Expected an empty line between subject and body, but got %d characters on line 2.", utf8.RuneCountInString(sep)),
		}}
	}
	return nil
}
