package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdwidth/pkg/width"
)

func TestIsFenceMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"bare fence", "```", true},
		{"fence with info string", "```rust", true},
		{"indented fence", "    ```", true},
		{"tab indented fence", "\t```go", true},
		{"four backticks", "````", true},
		{"two backticks", "``", false},
		{"inline code", "Use `x` here", false},
		{"text before fence", "a ```", false},
		{"tilde fence", "~~~", false},
		{"no-break space indent", "\u00a0```", true},
		{"em space indent", "\u2003```go", true},
		{"vertical tab indent", "\v```", true},
		{"zero-width space is not whitespace", "\u200b```", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, width.IsFenceMarker(tt.line))
		})
	}
}

func TestIsDisplayMathMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"bare marker", "$$", true},
		{"indented marker", "   $$", true},
		{"marker with content", "$$ x = y", true},
		{"single dollar", "$x$", false},
		{"dollar later in line", "cost is $$5", false},
		{"separator indent", "\x1c$$", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, width.IsDisplayMathMarker(tt.line))
		})
	}
}

func TestAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		state      width.BlockState
		wantState  width.BlockState
		wantMarker bool
	}{
		{"open fence", "```", width.Normal, width.InFence, true},
		{"close fence", "```", width.InFence, width.Normal, true},
		{"open math", "$$", width.Normal, width.InMath, true},
		{"close math", "$$", width.InMath, width.Normal, true},
		{"prose stays normal", "text", width.Normal, width.Normal, false},
		{"content inside fence", "text", width.InFence, width.InFence, false},
		{"content inside math", "x^2", width.InMath, width.InMath, false},
		{"math marker is fence content", "$$", width.InFence, width.InFence, false},
		{"fence marker is math content", "```", width.InMath, width.InMath, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state, marker := width.Advance(tt.line, tt.state)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantMarker, marker)
		})
	}
}

func TestAdvance_ToggleTwiceReturnsToNormal(t *testing.T) {
	t.Parallel()

	state := width.Normal
	state, _ = width.Advance("```python", state)
	assert.True(t, state.InBlock())

	state, _ = width.Advance("```", state)
	assert.Equal(t, width.Normal, state)
	assert.False(t, state.InBlock())
}

func TestBlockState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "normal", width.Normal.String())
	assert.Equal(t, "fence", width.InFence.String())
	assert.Equal(t, "math", width.InMath.String())
	assert.Equal(t, "unknown", width.BlockState(42).String())
}
