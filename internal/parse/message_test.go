package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/commitkit/internal/parse"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single line", "Change the parser", []string{"Change the parser"}},
		{"single line terminated", "Change the parser\n", []string{"Change the parser"}},
		{"subject and body", "Change a\n\nBecause b", []string{"Change a", "", "Because b"}},
		{"crlf endings", "Change a\r\n\r\nBecause b\r\n", []string{"Change a", "", "Because b"}},
		{"mixed endings", "Change a\r\n\nBecause b", []string{"Change a", "", "Because b"}},
		{"interior blank kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"trailing blank after terminator kept", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.SplitLines(tt.raw))
		})
	}
}

func TestNewMessage_Views(t *testing.T) {
	m := parse.NewMessage("Change a\n\nBecause b\nAnd c\n")
	assert.Equal(t, "Change a", m.Subject())
	assert.Equal(t, "", m.Separator())
	assert.Equal(t, []string{"Because b", "And c"}, m.Body())
	assert.False(t, m.Merge)

	short := parse.NewMessage("Change a")
	assert.Equal(t, "Change a", short.Subject())
	assert.Nil(t, short.Body())

	empty := parse.NewMessage("")
	assert.Empty(t, empty.Lines)
	assert.Equal(t, "", empty.Subject())
}

func TestNewMessage_Merge(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		merge bool
	}{
		{"plain merge", "Merge branch 'feature/x' into main", true},
		{"merge with body", "Merge branch 'a' into b\n\nConflicts:\n\tfile.go", true},
		{"ref with slash and dash", "Merge branch 'bug/fix-1' into release-2.0", true},
		{"space in ref", "Merge branch 'a b' into c", false},
		{"tilde in ref", "Merge branch 'a~1' into c", false},
		{"caret in target", "Merge branch 'a' into c^", false},
		{"colon in ref", "Merge branch 'a:b' into c", false},
		{"question mark", "Merge branch 'a?' into c", false},
		{"asterisk", "Merge branch 'a*' into c", false},
		{"open bracket", "Merge branch 'a[' into c", false},
		{"empty ref", "Merge branch '' into c", false},
		{"missing target", "Merge branch 'a' into ", false},
		{"not at start", "Revert Merge branch 'a' into b", false},
		{"pull request merge", "Merge pull request #12 from fork/main", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parse.NewMessage(tt.raw)
			assert.Equal(t, tt.merge, m.Merge)
		})
	}
}

func TestLeadingWord(t *testing.T) {
	tests := []struct {
		name string
		line string
		word string
		ok   bool
	}{
		{"verb and argument", "Change the parser", "Change", true},
		{"single letter word", "A fix", "A", true},
		{"digit terminator", "Bump2 things", "Bump", true},
		{"lowercase start", "change the parser", "", false},
		{"no terminator", "Change", "", false},
		{"second letter upper", "CHange it", "", false},
		{"all caps", "WIP stuff", "", false},
		{"empty", "", "", false},
		{"leading space", " Change it", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, ok := parse.LeadingWord(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.word, word)
		})
	}
}
