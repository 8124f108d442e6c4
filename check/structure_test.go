package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/commitkit/check"
	"github.com/optimode/commitkit/internal/parse"
	"github.com/optimode/commitkit/types"
)

func TestStructureChecker(t *testing.T) {
	c := check.NewStructureChecker(check.StructureConfig{})

	tests := []struct {
		name     string
		message  string
		wantText string
	}{
		{"empty message", "", "The message is empty."},
		{"subject only", "Add linter", "Expected at least three lines (subject, empty, body), but got: 1"},
		{"subject with terminating newline", "Add linter\n", "Expected at least three lines (subject, empty, body), but got: 1"},
		{"two lines", "Add linter\n\n", "Expected at least three lines (subject, empty, body) in a multi-line message, but got: 2"},
		{"subject plus separator only", "Add linter\nWIP", "Expected at least three lines (subject, empty, body) in a multi-line message, but got: 2"},
		{"missing separator", "Add linter\nBody starts here\nMore body", "Expected an empty line between subject and body, but got 16 characters on line 2."},
		{"whitespace separator", "Add linter\n \nBody", "Expected an empty line between subject and body, but got 1 characters on line 2."},
		{"valid", "Add linter\n\nThe body.", ""},
		{"valid with terminating newline", "Add linter\n\nThe body.\n", ""},
		{"valid crlf", "Add linter\r\n\r\nThe body.\r\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Check(parse.NewMessage(tt.message))
			if tt.wantText == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, types.RuleStructure, got[0].Rule)
			assert.Equal(t, tt.wantText, got[0].Text)
		})
	}
}

func TestStructureChecker_SeparatorCountsRunes(t *testing.T) {
	c := check.NewStructureChecker(check.StructureConfig{})
	got := c.Check(parse.NewMessage("Add linter\nää\nBody"))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, "Expected an empty line between subject and body, but got 2 characters on line 2.", got[0].Text)
}

func TestStructureChecker_AllowOneLiners(t *testing.T) {
	c := check.NewStructureChecker(check.StructureConfig{AllowOneLiners: true})

	assert.Empty(t, c.Check(parse.NewMessage("Add linter")))
	assert.Empty(t, c.Check(parse.NewMessage("Add linter\n")))

	// Only true one-liners are exempt; two lines stay a violation.
	got := c.Check(parse.NewMessage("Add linter\n\n"))
	require.Len(t, got, 1)
	assert.Equal(t, types.RuleStructure, got[0].Rule)

	// And so does an empty message.
	got = c.Check(parse.NewMessage(""))
	require.Len(t, got, 1)
	assert.Equal(t, "The message is empty.", got[0].Text)
}
