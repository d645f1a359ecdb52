package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldRoot       = "root"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"
	FieldConfig     = "config"

	// Run fields.
	FieldJobs   = "jobs"
	FieldFormat = "format"
	FieldIgnore = "ignore"

	// Watch fields.
	FieldEvent    = "event"
	FieldDebounce = "debounce"
	FieldDirs     = "dirs"

	// Classification fields.
	FieldLine      = "line"
	FieldWidth     = "width"
	FieldOutcome   = "outcome"
	FieldExemption = "exemption"
	FieldReason    = "reason"

	// Statistics fields.
	FieldFilesDiscovered     = "files_discovered"
	FieldFilesChecked        = "files_checked"
	FieldFilesWithViolations = "files_with_violations"
	FieldViolations          = "violations"
	FieldInherent            = "inherent"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
