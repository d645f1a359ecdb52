// Package width flags prose lines wider than a fixed character limit.
//
// A line is skipped when it sits inside a fenced or display-math block,
// when its own shape is structurally exempt (headings, table rows,
// reference definitions and the like), or when its excess width comes
// from an embedded link or math span that cannot be wrapped. Everything
// else wider than MaxWidth is a Violation.
//
// All functions in this package are pure and never fail: an unterminated
// block simply extends to the end of the file.
package width

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxWidth is the maximum number of characters allowed on a prose line.
const MaxWidth = 80

// Violation is an over-width line that is neither exempt nor an inherent
// exception.
type Violation struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Width is the number of characters in the raw line.
	Width int `json:"width"`

	// Content is the raw line.
	Content string `json:"content"`
}

// Result is the outcome of checking one file.
type Result struct {
	// Violations are ordered by line number.
	Violations []Violation

	// Inherent counts over-width lines judged unavoidable.
	Inherent int
}

// HasViolations reports whether the file has at least one violation.
func (r Result) HasViolations() bool {
	return len(r.Violations) > 0
}

// Outcome is the decision taken for a single line.
type Outcome int

const (
	// OutcomeMarker is a fence or display-math marker line.
	OutcomeMarker Outcome = iota
	// OutcomeInBlock is a line inside a fenced or display-math block.
	OutcomeInBlock
	// OutcomeExempt is a line whose shape exempts it.
	OutcomeExempt
	// OutcomeWithinLimit is a line no wider than MaxWidth.
	OutcomeWithinLimit
	// OutcomeInherent is an over-width line that cannot be shortened.
	OutcomeInherent
	// OutcomeViolation is an over-width line that should be shortened.
	OutcomeViolation
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMarker:
		return "marker"
	case OutcomeInBlock:
		return "in-block"
	case OutcomeExempt:
		return "exempt"
	case OutcomeWithinLimit:
		return "ok"
	case OutcomeInherent:
		return "inherent"
	case OutcomeViolation:
		return "violation"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// LineWidth returns the width of a raw line: its count of Unicode code
// points. A tab counts as one character.
func LineWidth(line string) int {
	return utf8.RuneCountInString(line)
}

// Classify decides the outcome for a line that has already passed the
// block tracker.
func Classify(line string) Outcome {
	if IsExempt(line) {
		return OutcomeExempt
	}
	if LineWidth(line) <= MaxWidth {
		return OutcomeWithinLimit
	}
	if IsInherentException(line) {
		return OutcomeInherent
	}
	return OutcomeViolation
}

// Walk visits every line in order with its 1-based number and outcome.
// The block state starts at Normal and is local to this call.
func Walk(lines []string, visit func(lineNum int, line string, outcome Outcome)) {
	state := Normal
	for idx, line := range lines {
		var marker bool
		state, marker = Advance(line, state)

		var outcome Outcome
		switch {
		case marker:
			outcome = OutcomeMarker
		case state.InBlock():
			outcome = OutcomeInBlock
		default:
			outcome = Classify(line)
		}

		visit(idx+1, line, outcome)
	}
}

// CheckLines checks a file given as a slice of lines.
func CheckLines(lines []string) Result {
	var result Result
	Walk(lines, func(lineNum int, line string, outcome Outcome) {
		switch outcome {
		case OutcomeInherent:
			result.Inherent++
		case OutcomeViolation:
			result.Violations = append(result.Violations, Violation{
				Line:    lineNum,
				Width:   LineWidth(line),
				Content: line,
			})
		default:
		}
	})
	return result
}

// lineEndings folds CRLF and lone CR line endings into LF.
//
//nolint:gochecknoglobals // Read-only replacer.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits file content into lines. "\r\n", "\r" and "\n" all end
// a line and none of them is part of it. Content ending in a line break
// yields a final empty line.
func SplitLines(content string) []string {
	return strings.Split(lineEndings.Replace(content), "\n")
}

// Check checks the full text of one file.
func Check(content string) Result {
	return CheckLines(SplitLines(content))
}

// CheckReader reads r to the end and checks its content.
func CheckReader(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read content: %w", err)
	}
	return Check(string(data)), nil
}
