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
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/mdwidth/internal/logging"
)

// DefaultDebounce is how long Watch waits after the last change before
// checking again.
const DefaultDebounce = 250 * time.Millisecond

// ReportFunc receives the result of each run performed by Watch.
type ReportFunc func(ctx context.Context, result *Result) error

// Watch runs a check, hands the result to report, and repeats the check
// after every burst of changes to matching files until ctx is done.
// Cancellation is a normal stop and returns nil.
func (r *Runner) Watch(ctx context.Context, opts Options, debounce time.Duration, report ReportFunc) error {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	ctx = logging.WithLogger(ctx, logger)

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(ctx, opts)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	check := func() error {
		result, err := r.Run(ctx, opts)
		if err != nil {
			return err
		}
		return report(ctx, result)
	}

	if err := check(); err != nil {
		return stopped(ctx, err)
	}

	logger.Info("watching for changes",
		logging.FieldDirs, len(dirs),
		logging.FieldDebounce, debounce,
	)

	extensions := opts.effectiveExtensions()
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			if event.Has(fsnotify.Create) && isWatchableDir(event.Name) {
				added, err := addTree(ctx, watcher, event.Name, opts)
				if err != nil {
					logger.Warn("cannot watch new directory", logging.FieldPath, event.Name, logging.FieldError, err)
				}
				if added > 0 {
					timer.Reset(debounce)
				}
				continue
			}

			if !hasMatchingExtension(event.Name, extensions) {
				continue
			}

			logger.Debug("change detected", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)

		case <-timer.C:
			if err := check(); err != nil {
				return stopped(ctx, err)
			}
		}
	}
}

// stopped returns nil when err is due to ctx ending, and err otherwise.
func stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return nil
	}
	return err
}

// watchDirs returns every directory whose entries can change the set of
// checked files: the walked trees, and the parent of each file argument.
func watchDirs(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	paths := opts.Paths
	if len(paths) == 0 {
		if opts.Root == "" {
			return nil, ErrNoInput
		}
		paths = []string{opts.Root}
	}

	var dirs []string
	for _, inputPath := range paths {
		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(absPath))
			continue
		}

		tree, err := collectDirs(ctx, absPath, opts, workDir)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, tree...)
	}

	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

// collectDirs lists root and the directories below it that discovery
// would descend into.
func collectDirs(ctx context.Context, root string, opts Options, workDir string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root {
			if strings.HasPrefix(entry.Name(), ".") ||
				matchesAny(displayPath(path, opts.Root, workDir), opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return dirs, nil
}

// addTree starts watching a newly created directory and its subdirectories.
func addTree(ctx context.Context, watcher *fsnotify.Watcher, dir string, opts Options) (int, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return 0, err
	}
	if matchesAny(displayPath(dir, opts.Root, workDir), opts.ExcludeGlobs) {
		return 0, nil
	}

	dirs, err := collectDirs(ctx, dir, opts, workDir)
	if err != nil {
		return 0, err
	}
	for idx, sub := range dirs {
		if err := watcher.Add(sub); err != nil {
			return idx, fmt.Errorf("watch %s: %w", sub, err)
		}
	}
	return len(dirs), nil
}

func isWatchableDir(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
