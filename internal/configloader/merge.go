package configloader

import (
	"slices"

	"github.com/yaklabco/mdwidth/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Optional booleans: override wins whenever it is set, true or false
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Root != "" {
		result.Root = override.Root
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.FollowSymlinks != nil {
		follow := *override.FollowSymlinks
		result.FollowSymlinks = &follow
	}
	if override.Compact {
		result.Compact = true
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}
