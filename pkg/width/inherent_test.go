package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdwidth/pkg/width"
)

func TestInherentReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantReason width.Reason
		wantOK     bool
	}{
		{
			name:       "single link",
			line:       "[spec](https://example.com/a/very/long/path/to/some/document/section)",
			wantReason: width.ReasonLinkOnly,
			wantOK:     true,
		},
		{
			name:       "link with trailing period",
			line:       "[x](http://example.com/very/long/path/aaaaaaaaaaaaaaaaaaaaaaaa).",
			wantReason: width.ReasonLinkOnly,
			wantOK:     true,
		},
		{
			name:       "links joined by punctuation",
			line:       "  [a](https://a.example.com/x), [b](https://b.example.com/y) / [c](https://c.example.com/z)!",
			wantReason: width.ReasonLinkOnly,
			wantOK:     true,
		},
		{
			name:       "links joined by no-break space",
			line:       "[a](https://a.example.com/x)\u00a0[b](https://b.example.com/y)\u2028",
			wantReason: width.ReasonLinkOnly,
			wantOK:     true,
		},
		{
			name:   "link with surrounding prose",
			line:   "See [spec](https://example.com/a/very/long/path/to/some/document/section) for more",
			wantOK: false,
		},
		{
			name:   "no link",
			line:   "plain text that is long but has neither a link nor math in it at all anywhere",
			wantOK: false,
		},
		{
			name:   "bare punctuation without links",
			line:   "...,,,;;;",
			wantOK: false,
		},
		{
			name:       "math in parentheses",
			line:       "the bound holds for every polynomial (with degree $d \\leq n - 1$ over the field) here",
			wantReason: width.ReasonMathParenthetical,
			wantOK:     true,
		},
		{
			name:   "math outside parentheses",
			line:   "the bound $d \\leq n$ holds (for every polynomial over the field)",
			wantOK: false,
		},
		{
			name:   "empty math in parentheses",
			line:   "costs ($$) nothing",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reason, ok := width.InherentReason(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
			assert.Equal(t, tt.wantOK, width.IsInherentException(tt.line))
		})
	}
}
