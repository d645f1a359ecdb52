package width

import "regexp"

// Exemption is a named structural shape that exempts a line from the width
// check regardless of its length.
type Exemption struct {
	// Name identifies the rule in debug output.
	Name string

	// Match reports whether the trimmed line has this shape.
	Match func(trimmed string) bool
}

// Patterns for structurally exempt lines. All are matched against the
// whitespace-trimmed line.
//
//nolint:gochecknoglobals // Compiled patterns are read-only.
var (
	headingRe       = regexp.MustCompile(`^#{1,6}[` + spaceClass + `]`)
	linkRefDefRe    = regexp.MustCompile(`^\[[^\]]+\]:[` + spaceClass + `]`)
	footnoteDefRe   = regexp.MustCompile(`^\[\^[^\]]+\]:[` + spaceClass + `]`)
	htmlTagRe       = regexp.MustCompile(`^</?[a-zA-Z][^>]*>$`)
	inlineMathRe    = regexp.MustCompile(`^\$[^$]+\$$`)
	tableRowRe      = regexp.MustCompile(`^\|.*\|$`)
	exemptionsTable = []Exemption{
		{Name: "blank", Match: func(s string) bool { return s == "" }},
		{Name: "heading", Match: headingRe.MatchString},
		{Name: "link-reference-definition", Match: linkRefDefRe.MatchString},
		{Name: "footnote-definition", Match: footnoteDefRe.MatchString},
		{Name: "html-tag", Match: htmlTagRe.MatchString},
		{Name: "inline-math", Match: inlineMathRe.MatchString},
		{Name: "table-row", Match: tableRowRe.MatchString},
	}
)

// Exemptions returns the structural exemption rules. The shapes are
// mutually exclusive in well-formed input, so their order carries no
// meaning.
func Exemptions() []Exemption {
	out := make([]Exemption, len(exemptionsTable))
	copy(out, exemptionsTable)
	return out
}

// MatchExemption returns the first exemption rule matching the line.
func MatchExemption(line string) (Exemption, bool) {
	trimmed := trimSpace(line)
	for _, rule := range exemptionsTable {
		if rule.Match(trimmed) {
			return rule, true
		}
	}
	return Exemption{}, false
}

// IsExempt reports whether the line's own shape exempts it from the width
// check.
func IsExempt(line string) bool {
	_, ok := MatchExemption(line)
	return ok
}
