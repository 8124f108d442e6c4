// Package verbset builds and queries the imperative-verb whitelist.
// A Set is immutable once constructed and safe for concurrent readers.
package verbset

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a whitelist of lower-case imperative verbs.
type Set struct {
	verbs map[string]struct{}
}

// New constructs a Set from the given verbs. Every entry must be non-empty
// and already lower-case; anything else is a caller defect, not a message
// problem, and fails construction.
func New(verbs []string) (*Set, error) {
	set := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		if v == "" {
			return nil, fmt.Errorf("whitelist contains an empty verb")
		}
		if v != strings.ToLower(v) {
			return nil, fmt.Errorf("whitelist verb %q is not lower-case", v)
		}
		set[v] = struct{}{}
	}
	return &Set{verbs: set}, nil
}

// Union returns a new Set holding the verbs of both sets.
func (s *Set) Union(other *Set) *Set {
	merged := make(map[string]struct{}, len(s.verbs)+len(other.verbs))
	for v := range s.verbs {
		merged[v] = struct{}{}
	}
	for v := range other.verbs {
		merged[v] = struct{}{}
	}
	return &Set{verbs: merged}
}

// Contains reports whether the verb is whitelisted.
// The argument is expected in lower-case; Contains does not normalize.
func (s *Set) Contains(verb string) bool {
	_, ok := s.verbs[verb]
	return ok
}

// Len returns the number of whitelisted verbs.
func (s *Set) Len() int {
	return len(s.verbs)
}

// Verbs returns the whitelist as a sorted slice.
func (s *Set) Verbs() []string {
	out := make([]string, 0, len(s.verbs))
	for v := range s.verbs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Parse splits a free-form verb list into normalized entries: the text is
// split on newlines first, each segment then on ',' or ';', entries are
// whitespace-trimmed, empties dropped, survivors lower-cased. The result is
// valid input for New by construction.
func Parse(text string) []string {
	var verbs []string
	for _, line := range strings.Split(text, "\n") {
		for _, segment := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			verbs = append(verbs, strings.ToLower(segment))
		}
	}
	return verbs
}
