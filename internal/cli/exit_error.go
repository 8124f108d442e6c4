package cli

import "fmt"

// Exit codes of the commitkit binary. Violations are an expected outcome
// and get their own code so scripts can tell them from broken invocations.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitConfig     = 2
)

// ExitError signals a specific exit code without forcing os.Exit inside
// RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// configErr wraps err as an ExitError with the configuration exit code.
func configErr(err error) error {
	return &ExitError{Code: ExitConfig, Err: err}
}
