package commitkit

// VerbsOptions configures additional imperative verbs, merged into the
// whitelist the Linter already holds.
type VerbsOptions struct {
	// Extra is an inline verb list. Entries are separated by commas,
	// semicolons or newlines, whitespace-trimmed and lower-cased.
	Extra string
	// File is the path of a verbs file using the same separator grammar.
	// A path that cannot be read is a configuration error, surfaced by
	// Check before any message is inspected.
	File string
}
