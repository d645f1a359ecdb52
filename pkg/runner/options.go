// Package runner discovers Markdown files and checks their line widths
// concurrently.
package runner

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to check.
	// If empty, every Markdown file under Root is checked.
	Paths []string

	// Root is the document root. It is walked when Paths is empty and is
	// the base for display paths and ignore patterns.
	Root string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up when walking a directory. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// "**" matches across path separators.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}
