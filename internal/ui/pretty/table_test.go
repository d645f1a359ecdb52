package pretty_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwidth/internal/ui/pretty"
	"github.com/yaklabco/mdwidth/pkg/runner"
	"github.com/yaklabco/mdwidth/pkg/width"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				DisplayPath: "ch01/intro.md",
				Result: width.Result{Violations: []width.Violation{
					{Line: 4, Width: 120, Content: strings.Repeat("x", 120)},
					{Line: 9, Width: 85, Content: "\t" + strings.Repeat("y", 84)},
				}},
			},
			{DisplayPath: "clean.md"},
			{DisplayPath: "broken.md", Error: errors.New("boom")},
			{
				DisplayPath: "ch02/deep.md",
				Result: width.Result{Violations: []width.Violation{
					{Line: 1, Width: 81, Content: strings.Repeat("z", 81)},
				}},
			},
		},
		Stats: runner.Stats{FilesChecked: 3, FilesErrored: 1, FilesWithViolations: 2, Violations: 3},
	}
}

func TestCollectRows(t *testing.T) {
	t.Parallel()

	groups := pretty.CollectRows(sampleResult())
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "ch02/deep.md", groups[1][0].File)
	assert.Equal(t, 81, groups[1][0].Width)

	assert.Nil(t, pretty.CollectRows(nil))
}

func TestFormatTable_FitsTerminal(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	table := formatter.FormatTable(sampleResult())

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, 7) // header, rule, 2 rows, divider, 1 row, rule

	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "CONTENT")
	assert.Contains(t, lines[2], "ch01/intro.md")
	assert.Contains(t, lines[2], "...")
	assert.NotContains(t, lines[3], "\t")

	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 80, line)
	}
}

func TestFormatTable_NoViolations(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, formatter.FormatTable(&runner.Result{Files: []runner.FileOutcome{{DisplayPath: "a.md"}}}))
}

func TestFormatTableSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 100)
	assert.Equal(t,
		" 3 files checked | 3 violation(s) in 2 file(s) | 1 errored",
		formatter.FormatTableSummary(sampleResult().Stats))
}
