package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdwidth/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LINE, WIDTH, CONTENT
	minFileWidth     = 12
	maxFileWidth     = 40
	minLineWidth     = 4
	minWidthWidth    = 5
	minContentWidth  = 20
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single violation row.
type TableRow struct {
	File    string
	Line    int
	Width   int
	Content string
}

type columnWidths struct {
	file    int
	line    int
	width   int
	content int
}

// TableFormatter formats violations as a styled table that fits the
// terminal width.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// CollectRows returns one row per violation, grouped by file in result
// order. Files without violations are omitted.
func CollectRows(result *runner.Result) [][]TableRow {
	if result == nil {
		return nil
	}

	var groups [][]TableRow
	for _, file := range result.Files {
		if file.Error != nil || len(file.Result.Violations) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(file.Result.Violations))
		for _, v := range file.Result.Violations {
			rows = append(rows, TableRow{
				File:    file.DisplayPath,
				Line:    v.Line,
				Width:   v.Width,
				Content: v.Content,
			})
		}
		groups = append(groups, rows)
	}

	return groups
}

// FormatTable formats runner results as a table. It returns "" when there
// are no violations.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	groups := CollectRows(result)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for idx, group := range groups {
		if idx > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// FormatTableSummary formats the line printed under the table.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d files checked", stats.FilesChecked)}

	if stats.Violations > 0 {
		parts = append(parts, t.styles.Failure.Render(
			fmt.Sprintf("%d violation(s) in %d file(s)", stats.Violations, stats.FilesWithViolations)))
	}
	if stats.Inherent > 0 {
		parts = append(parts, t.styles.Dim.Render(fmt.Sprintf("%d inherent skipped", stats.Inherent)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return " " + strings.Join(parts, " | ")
}

// calculateColumnWidths sizes the columns to their content, then shrinks
// CONTENT so the table fits the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		line:    minLineWidth,
		width:   minWidthWidth,
		content: minContentWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, utf8.RuneCountInString(row.File))
			widths.line = max(widths.line, len(strconv.Itoa(row.Line)))
			widths.width = max(widths.width, len(strconv.Itoa(row.Width)))
			widths.content = max(widths.content, utf8.RuneCountInString(singleLine(row.Content)))
		}
	}
	widths.file = min(widths.file, maxFileWidth)

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.content = max(minContentWidth, widths.content-excess)
	}

	return widths
}

func (w columnWidths) total() int {
	return w.file + w.line + w.width + w.content + tablePadding*tableColumnCount
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		widths.line, "LINE",
		widths.width, "WIDTH",
		widths.content, "CONTENT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

// formatRow formats a single violation row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	file := FitPath(row.File, widths.file)
	content := FitContent(singleLine(row.Content), widths.content)

	line := fmt.Sprintf(" %-*s  %*d  %*d  %s",
		widths.file, file,
		widths.line, row.Line,
		widths.width, row.Width,
		content,
	)
	return t.styles.TableRow.Render(line)
}
