package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwidth/internal/logging"
	"github.com/yaklabco/mdwidth/internal/ui/pretty"
	"github.com/yaklabco/mdwidth/pkg/fsutil"
	"github.com/yaklabco/mdwidth/pkg/width"
)

// explainContentWidth is how much of each line the explain table shows.
const explainContentWidth = 50

func newExplainCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "explain <file>",
		Short: "Show how each line of a file is classified",
		Long: `Show the decision taken for each line of a Markdown file: block
marker, inside a code or math block, exempt (and by which rule), within the
limit, inherent exception (and why), or violation.

By default only lines wider than 80 characters and block markers are
listed; use --all to list every line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args[0], all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every line, not only wide lines and markers")

	return cmd
}

// ExplainRow is the classification of one line.
type ExplainRow struct {
	Line    int
	Width   int
	Outcome width.Outcome
	Detail  string
	Content string
}

// Explain classifies every line of content.
func Explain(content string) []ExplainRow {
	lines := width.SplitLines(content)
	rows := make([]ExplainRow, 0, len(lines))

	width.Walk(lines, func(lineNum int, line string, outcome width.Outcome) {
		rows = append(rows, ExplainRow{
			Line:    lineNum,
			Width:   width.LineWidth(line),
			Outcome: outcome,
			Detail:  explainDetail(line, outcome),
			Content: line,
		})
	})

	return rows
}

func explainDetail(line string, outcome width.Outcome) string {
	switch outcome {
	case width.OutcomeMarker:
		if width.IsFenceMarker(line) {
			return "code fence"
		}
		return "display math"
	case width.OutcomeExempt:
		if rule, ok := width.MatchExemption(line); ok {
			return rule.Name
		}
	case width.OutcomeInherent:
		if reason, ok := width.InherentReason(line); ok {
			return string(reason)
		}
	case width.OutcomeViolation:
		return fmt.Sprintf("%d over", width.LineWidth(line)-width.MaxWidth)
	case width.OutcomeInBlock, width.OutcomeWithinLimit:
	}
	return ""
}

func runExplain(cmd *cobra.Command, path string, all bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	color, err := cmd.Flags().GetString("color")
	if err != nil {
		color = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))

	var data [][]string
	var outcomes []width.Outcome
	for _, row := range Explain(string(content)) {
		fields := []any{
			logging.FieldLine, row.Line,
			logging.FieldWidth, row.Width,
			logging.FieldOutcome, row.Outcome,
		}
		switch row.Outcome {
		case width.OutcomeExempt:
			fields = append(fields, logging.FieldExemption, row.Detail)
		case width.OutcomeInherent:
			fields = append(fields, logging.FieldReason, row.Detail)
		default:
		}
		logger.Debug("classified line", fields...)

		if !all && row.Outcome != width.OutcomeMarker && row.Width <= width.MaxWidth {
			continue
		}

		data = append(data, []string{
			strconv.Itoa(row.Line),
			strconv.Itoa(row.Width),
			row.Outcome.String(),
			row.Detail,
			pretty.FitContent(row.Content, explainContentWidth),
		})
		outcomes = append(outcomes, row.Outcome)
	}

	if len(data) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("No wide lines or block markers."))
		return nil
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableSeparator).
		Headers("LINE", "WIDTH", "OUTCOME", "DETAIL", "CONTENT").
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styles.TableHeader.Inherit(cell)
			}
			if row >= 0 && row < len(outcomes) {
				switch outcomes[row] {
				case width.OutcomeViolation:
					return styles.Failure.Inherit(cell)
				case width.OutcomeInherent, width.OutcomeExempt:
					return styles.Dim.Inherit(cell)
				default:
				}
			}
			return cell
		})

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return nil
}
