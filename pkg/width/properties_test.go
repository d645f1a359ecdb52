package width_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/yaklabco/mdwidth/pkg/width"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8080)
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 300
	return parameters
}

// singleLine strips line breaks so a generated string is one line.
func singleLine(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// notMarker turns block marker lines into plain content.
func notMarker(s string) string {
	s = singleLine(s)
	if width.IsFenceMarker(s) || width.IsDisplayMathMarker(s) {
		return "x" + s
	}
	return s
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

func TestCheckProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("lines within the limit are never violations", prop.ForAll(
		func(line string) bool {
			return !width.Check(line).HasViolations()
		},
		gen.AnyString().Map(func(s string) string {
			return truncateRunes(singleLine(s), width.MaxWidth)
		}),
	))

	properties.Property("headings are never reported", prop.ForAll(
		func(level int, text string) bool {
			result := width.Check(strings.Repeat("#", level) + " " + singleLine(text))
			return !result.HasViolations() && result.Inherent == 0
		},
		gen.IntRange(1, 6),
		gen.AnyString(),
	))

	properties.Property("table rows are never reported", prop.ForAll(
		func(cells []string) bool {
			for idx, cell := range cells {
				cells[idx] = singleLine(cell)
			}
			result := width.Check("| " + strings.Join(cells, " | ") + " |")
			return !result.HasViolations() && result.Inherent == 0
		},
		gen.SliceOfN(8, gen.AlphaString()),
	))

	properties.Property("content between fence markers is skipped", prop.ForAll(
		func(body []string) bool {
			lines := append([]string{"```"}, body...)
			lines = append(lines, "```")
			result := width.CheckLines(lines)
			return !result.HasViolations() && result.Inherent == 0
		},
		gen.SliceOf(gen.AnyString().Map(notMarker)),
	))

	properties.Property("an unclosed math block swallows the rest of the file", prop.ForAll(
		func(prefix, body []string) bool {
			lines := append([]string{}, prefix...)
			lines = append(lines, "$$")
			lines = append(lines, body...)

			withBlock := width.CheckLines(lines)
			before := width.CheckLines(prefix)
			return len(withBlock.Violations) == len(before.Violations) &&
				withBlock.Inherent == before.Inherent
		},
		gen.SliceOf(gen.AlphaString().Map(notMarker)),
		gen.SliceOf(gen.AnyString().Map(notMarker)),
	))

	properties.Property("wide non-exempt lines are exactly one of violation or inherent", prop.ForAll(
		func(line string) bool {
			result := width.Check(line)
			counted := len(result.Violations) + result.Inherent
			if width.LineWidth(line) > width.MaxWidth && !width.IsExempt(line) {
				return counted == 1
			}
			return counted == 0
		},
		gen.AnyString().Map(notMarker),
	))

	properties.Property("reported width is the line's rune count", prop.ForAll(
		func(line string) bool {
			for _, v := range width.Check(line).Violations {
				if v.Width != utf8.RuneCountInString(line) || v.Content != line || v.Line != 1 {
					return false
				}
			}
			return true
		},
		gen.AnyString().Map(notMarker),
	))

	properties.TestingRun(t)
}
