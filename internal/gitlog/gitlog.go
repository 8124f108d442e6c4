// Package gitlog retrieves commit messages from a repository by shelling
// out to the git CLI.
package gitlog

import (
	"fmt"
	"os/exec"
	"strings"
)

// Commit is one commit of a revision range.
type Commit struct {
	Hash    string // abbreviated hash
	Message string // full message as stored, usually newline-terminated
}

// Messages returns the commit messages of the given revision range (for
// example "origin/main..HEAD"), oldest first. An empty dir means the
// current working directory.
func Messages(dir, revRange string) ([]Commit, error) {
	// %x00 separates hash from message inside a record, -z terminates
	// each record with another NUL. Messages can contain anything except
	// NUL, so this framing is unambiguous.
	cmd := exec.Command("git", "log", "--reverse", "-z", "--format=%h%x00%B", revRange)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("gitlog: git log %s: %s", revRange, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("gitlog: git log %s: %w", revRange, err)
	}
	return parseLog(string(out)), nil
}

// GitDir resolves the repository's git directory, for installing hooks.
func GitDir(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gitlog: not inside a git repository")
	}
	return strings.TrimSpace(string(out)), nil
}

// parseLog splits the NUL-framed output of
// git log -z --format=%h%x00%B into commits.
func parseLog(out string) []Commit {
	fields := strings.Split(out, "\x00")
	var commits []Commit
	for i := 0; i+1 < len(fields); i += 2 {
		commits = append(commits, Commit{
			Hash:    strings.TrimSpace(fields[i]),
			Message: fields[i+1],
		})
	}
	return commits
}
