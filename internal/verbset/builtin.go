package verbset

import (
	_ "embed"
	"strings"
)

//go:embed verbs.txt
var rawBuiltin string

var builtin *Set

func init() {
	set := make(map[string]struct{})
	for _, line := range strings.Split(rawBuiltin, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			set[strings.ToLower(line)] = struct{}{}
		}
	}
	builtin = &Set{verbs: set}
}

// Builtin returns the embedded default whitelist.
// The returned Set is shared; callers must not assume ownership.
func Builtin() *Set {
	return builtin
}
