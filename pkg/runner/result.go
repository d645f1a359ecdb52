package runner

import "github.com/yaklabco/mdwidth/pkg/width"

// FileOutcome is the check result for a single file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// DisplayPath is Path relative to the document root when the file lies
	// under it, otherwise relative to the working directory, otherwise Path.
	DisplayPath string

	// Result holds the violations and inherent count. It is the zero value
	// when Error is set.
	Result width.Result

	// Error is set if the file could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesChecked is the number of files read and checked.
	FilesChecked int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithViolations is the number of files with at least one violation.
	FilesWithViolations int

	// Violations is the total number of violations across all files.
	Violations int

	// Inherent is the total number of inherent exceptions across all files.
	Inherent int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasViolations reports whether any file had a violation.
func (r *Result) HasViolations() bool {
	if r == nil {
		return false
	}
	return r.Stats.Violations > 0
}

// HasErrors reports whether any file could not be read.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesChecked++
	r.Stats.Inherent += outcome.Result.Inherent

	if count := len(outcome.Result.Violations); count > 0 {
		r.Stats.FilesWithViolations++
		r.Stats.Violations += count
	}
}
