package verbset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/commitkit/internal/verbset"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "craft", []string{"craft"}},
		{"commas", "craft,polish", []string{"craft", "polish"}},
		{"semicolons", "craft;polish", []string{"craft", "polish"}},
		{"newlines", "craft\npolish", []string{"craft", "polish"}},
		{"mixed separators", "craft, polish\nforge;temper", []string{"craft", "polish", "forge", "temper"}},
		{"whitespace trimmed", "  craft ,\t polish  ", []string{"craft", "polish"}},
		{"empties dropped", "craft,,;\n;polish", []string{"craft", "polish"}},
		{"lower-cased", "Craft;POLISH", []string{"craft", "polish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verbset.Parse(tt.text))
		})
	}
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	_, err := verbset.New([]string{"craft", ""})
	assert.ErrorContains(t, err, "empty verb")

	_, err = verbset.New([]string{"craft", "Polish"})
	assert.ErrorContains(t, err, `"Polish" is not lower-case`)
}

func TestNew_ContainsAndLen(t *testing.T) {
	s, err := verbset.New([]string{"craft", "polish", "craft"})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("craft"))
	assert.False(t, s.Contains("Craft"), "Contains must not normalize")
	assert.False(t, s.Contains("forge"))
}

func TestUnion(t *testing.T) {
	a, err := verbset.New([]string{"craft"})
	require.NoError(t, err)
	b, err := verbset.New([]string{"polish", "craft"})
	require.NoError(t, err)

	merged := a.Union(b)
	assert.Equal(t, []string{"craft", "polish"}, merged.Verbs())
	// Union leaves the operands untouched.
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestBuiltin(t *testing.T) {
	b := verbset.Builtin()
	require.NotZero(t, b.Len())

	// Spot-check a few verbs the style guide leans on.
	for _, verb := range []string{"add", "change", "fix", "remove", "update"} {
		assert.True(t, b.Contains(verb), "builtin whitelist is missing %q", verb)
	}

	// Every builtin entry passes the construction-time validation.
	_, err := verbset.New(b.Verbs())
	assert.NoError(t, err)
}
