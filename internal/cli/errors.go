package cli

import "errors"

// ErrFindingsFound is returned when a check finds blocking findings.
// It signals a non-zero exit without an extra error message.
var ErrFindingsFound = errors.New("style findings found")

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error, nil when the exit code alone is the
	// message (e.g. blocking findings already rendered).
	Err error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ErrFindingsFound.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeForError maps an error returned by a command to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitInternalError
}
