package width

import (
	"strings"
	"unicode"
)

// spaceClass is the body of a regexp character class matching every
// whitespace rune: ASCII whitespace including \v, the information
// separators U+001C to U+001F, NEL, and the Unicode separators (Zs, Zl, Zp).
// RE2's \s alone is ASCII-only.
const spaceClass = `\s\x{0B}\x{1C}-\x{1F}\x{85}\p{Z}`

// isSpace reports whether r is whitespace for trimming and matching.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// trimSpace removes leading and trailing whitespace as isSpace defines it.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
