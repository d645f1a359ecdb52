package pretty

import (
	"fmt"

	"github.com/yaklabco/mdwidth/pkg/runner"
	"github.com/yaklabco/mdwidth/pkg/width"
)

// FormatNoFiles formats the message shown when discovery found nothing.
func (s *Styles) FormatNoFiles() string {
	return s.Dim.Render("No markdown files found.")
}

// FormatSummary formats the closing line of a text report. A run with
// violations gets a leading blank line.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	note := InherentNote(stats.Inherent)
	if note != "" {
		note = s.Dim.Render(note)
	}

	if stats.Violations == 0 {
		return s.Success.Render(fmt.Sprintf("No lines exceed the %d-character limit.", width.MaxWidth)) + note + "\n"
	}

	return "\n" + s.Failure.Render(fmt.Sprintf("%d violation(s) in %d file(s).",
		stats.Violations, stats.FilesWithViolations)) + note + "\n"
}

// InherentNote returns " (N inherent exception(s) skipped)" with the plural
// only when N != 1, or "" when N is 0.
func InherentNote(count int) string {
	if count <= 0 {
		return ""
	}
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf(" (%d inherent exception%s skipped)", count, plural)
}
