package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdwidth/internal/ui/pretty"
	"github.com/yaklabco/mdwidth/pkg/runner"
)

// TextReporter writes violations grouped by file, followed by a one-line
// summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.FormatNoFiles())
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintln(r.bw, r.styles.FormatFileError(file.DisplayPath, file.Error))
			continue
		}

		violations := file.Result.Violations
		if len(violations) == 0 {
			continue
		}

		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.DisplayPath, len(violations)))
		for _, v := range violations {
			fmt.Fprint(r.bw, r.styles.FormatViolation(v))
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.Violations, nil
}
