// Package config defines core configuration types for mdwidth.
// These types are pure data structures with no dependency on the loader.
//
// The width limit and the exemption rules are fixed and deliberately absent
// from this package.
package config

// OutputFormat specifies the output format for the report.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSARIF:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdwidth.
type Config struct {
	// Root is the document root scanned when no paths are given.
	// Empty means "search upward for book/src".
	Root string `yaml:"root,omitempty"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// FollowSymlinks enables traversal of directory symlinks. Nil means
	// unset, so a later source can switch it off as well as on.
	FollowSymlinks *bool `yaml:"follow_symlinks,omitempty"`

	// Jobs is the number of parallel workers; 0 means one per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// Format is the report format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Color controls colorized output.
	Color ColorMode `yaml:"color,omitempty"`

	// CLI-level options (not persisted to config files).

	// Compact disables indentation in machine-readable output.
	Compact bool `yaml:"-"`
}

// FollowsSymlinks reports whether directory symlinks are traversed.
func (c *Config) FollowsSymlinks() bool {
	return c != nil && c.FollowSymlinks != nil && *c.FollowSymlinks
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Format: FormatText,
		Color:  ColorAuto,
		Jobs:   0, // 0 means use runtime.NumCPU()
	}
}
