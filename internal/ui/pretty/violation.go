package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdwidth/pkg/width"
)

// ContentPreviewWidth is the number of characters of a violating line shown
// before it is cut with an ellipsis.
const ContentPreviewWidth = 90

const ellipsis = "..."

// FormatFileHeader formats the heading line for a file with violations,
// e.g. "ch01/intro.md (2 violation(s)):".
func (s *Styles) FormatFileHeader(path string, count int) string {
	return s.FilePath.Render(path) + " " +
		s.Count.Render(fmt.Sprintf("(%d violation(s)):", count))
}

// FormatViolation formats one violation as an indented line ending in a
// newline, e.g. "  L12 (93 chars): text...".
func (s *Styles) FormatViolation(v width.Violation) string {
	return fmt.Sprintf("  %s (%s): %s\n",
		s.LineNum.Render(fmt.Sprintf("L%d", v.Line)),
		s.Width.Render(fmt.Sprintf("%d chars", v.Width)),
		s.Content.Render(TruncateContent(v.Content, ContentPreviewWidth)),
	)
}

// FormatFileError formats a file that could not be checked.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FilePath.Render(path) + ": " + s.Error.Render(fmt.Sprintf("error: %v", err))
}

// TruncateContent keeps the first limit characters of content and appends
// "..." when anything was cut.
func TruncateContent(content string, limit int) string {
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	return string([]rune(content)[:limit]) + ellipsis
}

// FitContent shortens content so that, including the ellipsis, it is at
// most limit characters wide.
func FitContent(content string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	if limit <= len(ellipsis) {
		return string([]rune(content)[:limit])
	}
	return string([]rune(content)[:limit-len(ellipsis)]) + ellipsis
}

// FitPath shortens path to at most limit characters, keeping its end.
func FitPath(path string, limit int) string {
	runes := []rune(path)
	if len(runes) <= limit {
		return path
	}
	if limit <= len(ellipsis) {
		return string(runes[len(runes)-limit:])
	}
	return ellipsis + string(runes[len(runes)-limit+len(ellipsis):])
}

// singleLine replaces characters that would break a table cell.
func singleLine(content string) string {
	return strings.NewReplacer("\t", " ", "\r", "").Replace(content)
}
