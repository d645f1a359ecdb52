package runner

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdwidth/internal/logging"
	"github.com/yaklabco/mdwidth/pkg/fsutil"
	"github.com/yaklabco/mdwidth/pkg/width"
)

// Runner checks many files with a bounded worker pool.
type Runner struct {
	logger *log.Logger
}

// New creates a Runner. A nil logger falls back to the logger carried by
// the run context.
func New(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run discovers files for opts and checks them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// A file that cannot be read is recorded in its FileOutcome and does not
// stop the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	ctx = logging.WithLogger(ctx, logger)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("checking files", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[idx] = r.checkFile(groupCtx, logger, path, displayPath(path, opts.Root, workDir))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithViolations, result.Stats.FilesWithViolations,
		logging.FieldViolations, result.Stats.Violations,
		logging.FieldInherent, result.Stats.Inherent,
	)

	return result, nil
}

// checkFile reads and checks one file.
func (r *Runner) checkFile(ctx context.Context, logger *log.Logger, path, display string) FileOutcome {
	outcome := FileOutcome{Path: path, DisplayPath: display}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		logger.Debug("read failed", logging.FieldPath, display, logging.FieldError, err)
		outcome.Error = err
		return outcome
	}

	outcome.Result = width.Check(string(content))

	logger.Debug("checked file",
		logging.FieldPath, display,
		logging.FieldViolations, len(outcome.Result.Violations),
		logging.FieldInherent, outcome.Result.Inherent,
	)

	return outcome
}
