package commitkit

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/optimode/commitkit/check"
	"github.com/optimode/commitkit/internal/parse"
	"github.com/optimode/commitkit/internal/verbset"
	"github.com/optimode/commitkit/types"
)

// checker is the internal interface for all rule groups.
// Every check/ package type implements this.
type checker interface {
	Check(msg parse.Message) []types.Violation
}

// Linter is the main fluent builder struct.
// Instantiate with the New() function. A configured Linter is immutable
// during Check and safe for concurrent use.
type Linter struct {
	verbs          *verbset.Set
	allowOneLiners bool
	err            error // configuration error, returned on Check()
}

// New creates a new Linter. By default it checks against the builtin verb
// whitelist and requires the full subject, empty line, body structure.
func New() *Linter {
	return &Linter{verbs: verbset.Builtin()}
}

// WithVerbs merges additional imperative verbs into the whitelist, from an
// inline list and/or a file. Both use the same grammar: entries separated
// by commas, semicolons or newlines, whitespace-trimmed, lower-cased.
// An unreadable file records a configuration error surfaced by Check.
func (l *Linter) WithVerbs(opts VerbsOptions) *Linter {
	text := opts.Extra
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			l.err = fmt.Errorf("%w: %s", ErrVerbsFileNotFound, opts.File)
			return l
		}
		text += "\n" + string(data)
	}
	extra, err := verbset.New(verbset.Parse(text))
	if err != nil {
		l.err = fmt.Errorf("%w: %v", ErrInvalidWhitelist, err)
		return l
	}
	l.verbs = l.verbs.Union(extra)
	return l
}

// WithWhitelist replaces the whitelist entirely; the builtin verbs are no
// longer accepted. Every entry must be non-empty and lower-case; anything
// else records a configuration error surfaced by Check before any message
// is inspected.
func (l *Linter) WithWhitelist(verbs ...string) *Linter {
	set, err := verbset.New(verbs)
	if err != nil {
		l.err = fmt.Errorf("%w: %v", ErrInvalidWhitelist, err)
		return l
	}
	l.verbs = set
	return l
}

// WithOneLiners allows messages that consist of a single subject line.
// Such messages skip the structure and body rules; the subject rules
// still apply.
func (l *Linter) WithOneLiners() *Linter {
	l.allowOneLiners = true
	return l
}

// Check runs all rules on the given message. Violations are collected in
// evaluation order into the Report; the error return is reserved for the
// configuration tier (bad whitelist, unreadable verbs file) and internal
// defects, never for message problems.
func (l *Linter) Check(message string) (Report, error) {
	if l.err != nil {
		return Report{}, l.err
	}

	msg := parse.NewMessage(message)
	rep := Report{Message: message}

	// Auto-generated branch merges are exempt from all rules.
	if msg.Merge {
		rep.Valid = true
		return rep, nil
	}

	structure := check.NewStructureChecker(check.StructureConfig{
		AllowOneLiners: l.allowOneLiners,
	})
	if vs := structure.Check(msg); len(vs) > 0 {
		// A broken shape makes the remaining rules meaningless.
		rep.Violations = vs
		return finish(rep)
	}

	checkers := []checker{check.NewSubjectChecker(l.verbs)}
	if len(msg.Lines) > 1 {
		// One-liners have no body; everything else passed the structure
		// rules and has at least one body line to inspect.
		checkers = append(checkers, check.NewBodyChecker())
	}
	for _, c := range checkers {
		rep.Violations = append(rep.Violations, c.Check(msg)...)
	}
	return finish(rep)
}

// finish applies the report post-condition: violation texts are a stable
// contract and must not end in a newline. A violation of that rule is a
// defect in a checker, not in the message, and aborts the whole report.
func finish(rep Report) (Report, error) {
	for _, v := range rep.Violations {
		if strings.HasSuffix(v.Text, "\n") {
			return Report{}, fmt.Errorf("%w: %q", ErrTrailingNewline, v.Text)
		}
	}
	rep.Valid = len(rep.Violations) == 0
	return rep, nil
}

// ConcurrencyOptions configures concurrent processing for CheckMany.
type ConcurrencyOptions struct {
	// Workers is the number of concurrent goroutines. Default: 5
	Workers int
}

// CheckMany checks multiple messages concurrently.
// The result order matches the input slice order.
func (l *Linter) CheckMany(messages []string, opts ...ConcurrencyOptions) ([]Report, error) {
	if l.err != nil {
		return nil, l.err
	}

	workers := 5
	if len(opts) > 0 && opts[0].Workers > 0 {
		workers = opts[0].Workers
	}

	results := make([]Report, len(messages))
	type job struct {
		idx     int
		message string
	}

	bufSize := len(messages)
	if bufSize > 1000 {
		bufSize = 1000
	}
	jobs := make(chan job, bufSize)
	go func() {
		for i, m := range messages {
			jobs <- job{idx: i, message: m}
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rep, err := l.Check(j.message)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("checking message %d: %w", j.idx+1, err)
					}
					mu.Unlock()
					continue
				}
				results[j.idx] = rep
			}
		}()
	}

	wg.Wait()
	return results, firstErr
}
