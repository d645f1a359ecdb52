// Package docroot locates the document tree that mdwidth scans by default
// and reports paths relative to.
package docroot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdwidth/pkg/fsutil"
)

// ErrNotFound indicates that no document root could be located.
var ErrNotFound = errors.New("document root not found")

// DefaultRelPath is the location of the document sources relative to a
// project directory.
//
//nolint:gochecknoglobals // Read-only path components.
var DefaultRelPath = filepath.Join("book", "src")

// Find searches upward from startDir for a directory containing book/src
// and returns the book/src path.
func Find(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("find document root: %w", ctx.Err())
		default:
		}

		candidate := filepath.Join(currentDir, DefaultRelPath)
		if fsutil.IsDir(candidate) {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("%w: no %s above %s", ErrNotFound, DefaultRelPath, absDir)
		}
		currentDir = parentDir
	}
}

// Resolve returns the explicit root when one is configured, otherwise the
// result of Find. An explicit root must be an existing directory.
func Resolve(ctx context.Context, explicit, workDir string) (string, error) {
	if explicit == "" {
		return Find(ctx, workDir)
	}

	root := explicit
	if !filepath.IsAbs(root) && workDir != "" {
		root = filepath.Join(workDir, root)
	}

	if !fsutil.IsDir(root) {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absRoot, nil
}
