package commitkit

import "errors"

var (
	// ErrInvalidWhitelist is returned when a configured verb whitelist
	// contains an empty or non-lower-case entry.
	ErrInvalidWhitelist = errors.New("commitkit: whitelist verbs must be non-empty and lower-case")

	// ErrVerbsFileNotFound is returned when VerbsOptions.File names a
	// file that cannot be read.
	ErrVerbsFileNotFound = errors.New("commitkit: additional verbs file cannot be read")

	// ErrTrailingNewline reports an internal defect: a rule emitted a
	// violation text ending in a newline.
	ErrTrailingNewline = errors.New("commitkit: violation text ends with a newline")
)
