package commitkit_test

import (
	"fmt"

	"github.com/optimode/commitkit"
)

func ExampleNew() {
	rep, _ := commitkit.New().Check("Add a linter\n\nIt guards the style guide.")
	fmt.Println(rep.Valid)
	// Output: true
}

func ExampleLinter_Check() {
	l := commitkit.New()

	rep, _ := l.Check("Add a linter\n\nIt guards the style guide.")
	fmt.Println(rep.Valid)

	rep, _ = l.Check("added a linter")
	for _, text := range rep.Messages() {
		fmt.Println(text)
	}
	// Output:
	// true
	// Expected at least three lines (subject, empty, body), but got: 1
}

func ExampleLinter_Check_violations() {
	rep, _ := commitkit.New().Check("Adds a linter.\n\nIt guards the style guide.")
	for _, v := range rep.Violations {
		fmt.Printf("[%s] %s\n", v.Rule, v.Text)
	}
	// Output:
	// [subject-verb] The subject must start with a verb in imperative mood, but got: "Adds". Unknown verbs can be allowed via the additional verbs list.
	// [subject-dot] The subject must not end with a dot ('.').
}

func ExampleLinter_Check_suggestion() {
	rep, _ := commitkit.New().Check("Chagne the parser\n\nThe parser was broken.")
	fmt.Println(rep.Violations[0].Suggestion)
	// Output: change
}

func ExampleLinter_WithOneLiners() {
	l := commitkit.New().WithOneLiners()
	rep, _ := l.Check("Fix the flaky parser test")
	fmt.Println(rep.Valid)
	// Output: true
}

func ExampleLinter_WithVerbs() {
	l := commitkit.New().WithVerbs(commitkit.VerbsOptions{Extra: "craft; polish"})
	rep, _ := l.Check("Craft a release plan\n\nThe old plan no longer fits.")
	fmt.Println(rep.Valid)
	// Output: true
}

func ExampleLinter_CheckMany() {
	l := commitkit.New()
	reps, _ := l.CheckMany([]string{
		"Add a linter\n\nIt guards the style guide.",
		"fixed stuff",
	}, commitkit.ConcurrencyOptions{Workers: 2})

	for _, r := range reps {
		fmt.Println(r.Valid, len(r.Violations))
	}
	// Output:
	// true 0
	// false 1
}

func ExampleReport_Messages() {
	rep, _ := commitkit.New().Check("Change SomeClass to OtherClass.\n\nIt was deprecated.")
	for _, m := range rep.Messages() {
		fmt.Println(m)
	}
	// Output:
	// The subject must not end with a dot ('.').
}

func ExampleDefaultVerbs() {
	verbs := commitkit.DefaultVerbs()
	fmt.Println(len(verbs) > 100, verbs[0])
	// Output: true accept
}
