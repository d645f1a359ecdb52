package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/mdwidth/internal/logging"
)

// ErrNoInput indicates that neither paths nor a document root were given.
var ErrNoInput = errors.New("no paths given and no document root set")

// Discover finds the files to check for opts.
// It returns a deduplicated, sorted list of absolute file paths.
//
// With no Paths, Root is walked. A directory path is walked; a file path
// is taken as-is; a path that does not exist is logged and skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	logger := logging.FromContext(ctx)

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &walker{
		ctx:        ctx,
		opts:       opts,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		visited:    make(map[string]struct{}),
	}

	paths := opts.Paths
	if len(paths) == 0 {
		if opts.Root == "" {
			return nil, ErrNoInput
		}
		paths = []string{opts.Root}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, inputPath := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("path not found, skipping", logging.FieldPath, inputPath)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		discovered, err := walker.walk(absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)

	logger.Debug("discovery complete",
		logging.FieldPaths, len(paths),
		logging.FieldFilesDiscovered, len(files),
	)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// displayPath returns path relative to root when it lies under root,
// otherwise relative to workDir when it lies under workDir, otherwise path.
func displayPath(path, root, workDir string) string {
	for _, base := range []string{root, workDir} {
		if base == "" {
			continue
		}
		absBase, err := filepath.Abs(base)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absBase, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return rel
	}
	return path
}

// walker holds the state shared by one discovery pass.
type walker struct {
	ctx        context.Context //nolint:containedctx // Scoped to a single Discover call.
	opts       Options
	workDir    string
	extensions []string

	// visited holds resolved directories already walked through a symlink.
	visited map[string]struct{}
}

// walk recursively walks root and returns the matching files.
func (w *walker) walk(root string) ([]string, error) {
	logger := logging.FromContext(w.ctx)
	var files []string

	if realRoot, err := filepath.EvalSymlinks(root); err == nil {
		w.visited[realRoot] = struct{}{}
	}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				logger.Debug("permission denied, skipping", logging.FieldPath, path)
				return nil
			}
			return walkErr
		}

		relPath := displayPath(path, w.opts.Root, w.workDir)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && matchesAny(relPath, w.opts.ExcludeGlobs) {
				logger.Debug("ignored directory", logging.FieldPath, relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible symlink targets are skipped.
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks || matchesAny(relPath, w.opts.ExcludeGlobs) {
					return nil
				}
				if _, ok := w.visited[realPath]; ok {
					return nil
				}
				w.visited[realPath] = struct{}{}

				// WalkDir uses Lstat on its root, so walk the target itself.
				subFiles, err := w.walk(realPath)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if !hasMatchingExtension(path, w.extensions) {
			return nil
		}
		if matchesAny(relPath, w.opts.ExcludeGlobs) {
			logger.Debug("ignored file", logging.FieldPath, relPath)
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasMatchingExtension checks if the file has one of the extensions.
// The comparison is case-sensitive, so "notes.MD" does not match ".md".
func hasMatchingExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, filepath.Ext(path))
}

// matchesAny checks if the path matches any of the patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// A pattern without a separator also matches the base name, so "draft-*.md"
// matches at any depth. "**" matches any number of path segments.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "/") {
		return false
	}

	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchSegments matches path segments against pattern segments, where a
// "**" segment consumes zero or more path segments. A trailing "**" also
// matches the directory itself.
func matchSegments(pathParts, patternParts []string) bool {
	if len(patternParts) == 0 {
		return len(pathParts) == 0
	}

	head := patternParts[0]
	if head == "**" {
		rest := patternParts[1:]
		if len(rest) == 0 {
			return true
		}
		for skip := 0; skip <= len(pathParts); skip++ {
			if matchSegments(pathParts[skip:], rest) {
				return true
			}
		}
		return false
	}

	if len(pathParts) == 0 {
		return false
	}

	matched, err := filepath.Match(head, pathParts[0])
	if err != nil || !matched {
		return false
	}
	return matchSegments(pathParts[1:], patternParts[1:])
}
