package parse

import (
	"regexp"
	"strings"
)

// Message is the internal representation of a parsed commit message.
// The check/ packages receive this as parameter.
type Message struct {
	Raw   string   // the original input, untouched
	Lines []string // logical lines: split on \n, trailing \r stripped
	Merge bool     // true when the message is an auto-generated branch merge
}

// mergeRe matches the canonical two-branch merge subject that git writes,
// "Merge branch '<ref>' into <ref>", as the entire subject line. Ref names
// exclude control characters, space, and the characters ~ ^ : ? * [
// (git check-ref-format rules).
var mergeRe = regexp.MustCompile(`^Merge branch '[^\000-\037\177 ~^:?*\[]+' into [^\000-\037\177 ~^:?*\[]+$`)

// leadingWordRe captures a capitalized word (one upper-case letter followed
// by zero or more lower-case letters) that is immediately followed by a
// non-letter character, anchored at the start of the line.
var leadingWordRe = regexp.MustCompile(`^([A-Z][a-z]*)[^a-zA-Z]`)

// NewMessage splits the raw text into logical lines.
// Lines are separated by \n; a single trailing \r per line is removed so
// CRLF input is tolerated. The empty element produced by a terminating
// newline is dropped, so an empty message yields zero lines.
func NewMessage(raw string) Message {
	lines := SplitLines(raw)
	return Message{
		Raw:   raw,
		Lines: lines,
		Merge: len(lines) > 0 && mergeRe.MatchString(lines[0]),
	}
}

// SplitLines is the logical-line split used throughout commitkit.
func SplitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	// A terminating newline is a line ending, not an extra empty line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Subject returns the first logical line, or "" for an empty message.
func (m Message) Subject() string {
	if len(m.Lines) == 0 {
		return ""
	}
	return m.Lines[0]
}

// Separator returns the second logical line, or "" when absent.
func (m Message) Separator() string {
	if len(m.Lines) < 2 {
		return ""
	}
	return m.Lines[1]
}

// Body returns the logical lines after the separator (message lines 3+).
// It is nil for messages shorter than three lines.
func (m Message) Body() []string {
	if len(m.Lines) < 3 {
		return nil
	}
	return m.Lines[2:]
}

// LeadingWord extracts the capitalized first word of a line: an upper-case
// letter, zero or more lower-case letters, then a non-letter character.
// The second return value is false when the line does not open that way
// (including single-word lines with nothing after the word).
func LeadingWord(line string) (string, bool) {
	match := leadingWordRe.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}
