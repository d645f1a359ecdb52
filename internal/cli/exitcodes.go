package cli

import "errors"

// Exit codes for mdwidth.
const (
	// ExitSuccess indicates no violations and no errors.
	ExitSuccess = 0

	// ExitFailure indicates violations, unreadable files, or a fatal error.
	ExitFailure = 1
)

var (
	// ErrViolationsFound is returned when at least one line is too wide.
	// It only signals the exit code; the report has already been written.
	ErrViolationsFound = errors.New("line width violations found")

	// ErrFilesUnreadable is returned when a file could not be checked.
	// The affected files have already been reported.
	ErrFilesUnreadable = errors.New("some files could not be read")
)

// IsReported reports whether err has already been shown to the user
// through the report and needs no further logging.
func IsReported(err error) bool {
	return errors.Is(err, ErrViolationsFound) || errors.Is(err, ErrFilesUnreadable)
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
