package width

import "regexp"

// Reason names the heuristic that judged an over-width line unavoidable.
type Reason string

const (
	// ReasonLinkOnly marks a line made of inline links joined only by
	// punctuation and whitespace.
	ReasonLinkOnly Reason = "link-only"

	// ReasonMathParenthetical marks a line holding a parenthetical that
	// contains inline math.
	ReasonMathParenthetical Reason = "math-parenthetical"
)

//nolint:gochecknoglobals // Compiled patterns are read-only.
var (
	inlineLinkRe     = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	mathParenRe      = regexp.MustCompile(`\([^)]*\$[^$]+\$[^)]*\)`)
	joiningResidueRe = regexp.MustCompile(`^[/,.:;!?` + spaceClass + `]*$`)
)

// InherentReason reports whether an over-width line cannot be shortened
// without breaking an embedded link or math span, and which heuristic
// decided it.
func InherentReason(line string) (Reason, bool) {
	trimmed := trimSpace(line)

	// Only punctuation may remain once every inline link is gone.
	residue := inlineLinkRe.ReplaceAllLiteralString(trimmed, "")
	if residue != trimmed && joiningResidueRe.MatchString(residue) {
		return ReasonLinkOnly, true
	}

	if mathParenRe.MatchString(trimmed) {
		return ReasonMathParenthetical, true
	}

	return "", false
}

// IsInherentException reports whether an over-width line is an inherent
// exception rather than a violation.
func IsInherentException(line string) bool {
	_, ok := InherentReason(line)
	return ok
}
