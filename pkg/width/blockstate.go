package width

import (
	"regexp"
	"strings"
)

// BlockState records whether the scan is inside a block whose interior is
// never classified or measured.
type BlockState int

const (
	// Normal means the current line is outside any tracked block.
	Normal BlockState = iota

	// InFence means the current line is inside a fenced literal block.
	InFence

	// InMath means the current line is inside a display-math block.
	InMath
)

// String returns a short name for the state, used in debug logs.
func (s BlockState) String() string {
	switch s {
	case Normal:
		return "normal"
	case InFence:
		return "fence"
	case InMath:
		return "math"
	default:
		return "unknown"
	}
}

// InBlock reports whether lines in this state are skipped wholesale.
func (s BlockState) InBlock() bool {
	return s == InFence || s == InMath
}

//nolint:gochecknoglobals // Compiled patterns are read-only.
var fenceMarkerRe = regexp.MustCompile("^[" + spaceClass + "]*```")

// displayMathMarker opens and closes a display-math block.
const displayMathMarker = "$$"

// IsFenceMarker reports whether the raw line opens or closes a fenced block.
func IsFenceMarker(line string) bool {
	return fenceMarkerRe.MatchString(line)
}

// IsDisplayMathMarker reports whether the line opens or closes a
// display-math block.
func IsDisplayMathMarker(line string) bool {
	return strings.HasPrefix(trimSpace(line), displayMathMarker)
}

// Advance feeds one line to the block tracker. It returns the state for the
// following line and whether the line was consumed as a block marker.
//
// Inside a block only that block's own marker closes it; a marker of the
// other kind is ordinary block content.
func Advance(line string, state BlockState) (BlockState, bool) {
	switch state {
	case InFence:
		if IsFenceMarker(line) {
			return Normal, true
		}
		return InFence, false
	case InMath:
		if IsDisplayMathMarker(line) {
			return Normal, true
		}
		return InMath, false
	default:
		if IsFenceMarker(line) {
			return InFence, true
		}
		if IsDisplayMathMarker(line) {
			return InMath, true
		}
		return Normal, false
	}
}
