package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwidth/internal/configloader"
	"github.com/yaklabco/mdwidth/internal/docroot"
	"github.com/yaklabco/mdwidth/internal/logging"
	"github.com/yaklabco/mdwidth/pkg/config"
	"github.com/yaklabco/mdwidth/pkg/reporter"
	"github.com/yaklabco/mdwidth/pkg/runner"
)

type checkFlags struct {
	format         string
	root           string
	ignore         []string
	jobs           int
	compact        bool
	followSymlinks bool
	watch          bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files for over-width lines",
		Long:  checkLongDescription + "\n\n" + environmentHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif")
	cmd.Flags().StringVar(&flags.root, "root", "", "document root (default: search upward for book/src)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON/SARIF output")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-check whenever a Markdown file changes")

	return cmd
}

const checkLongDescription = `Check Markdown files for prose lines wider than 80 characters.

With no paths, every .md file under the document root is checked. The root
is the nearest book/src directory above the current directory unless set
with --root or the root config key. Directories given as paths are searched
recursively; files are checked as given; missing paths are skipped with a
warning. The document root must exist even when paths are given, since
reported paths are shown relative to it.

Exits with status 1 when any violation is found. With --watch the check
re-runs after every change until interrupted, and the exit status is 0.

Examples:
  mdwidth check                        # Check the whole book
  mdwidth check ch01/                  # Check one chapter
  mdwidth check intro.md               # Check a single file
  mdwidth check --format json          # Machine-readable output for CI
  mdwidth check --ignore 'drafts/**'   # Skip a directory
  mdwidth check --watch                # Re-check on every save`

// environmentHelp lists the MDWIDTH_* variables the check command reads.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	var builder strings.Builder
	builder.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&builder, "\n  %-24s %s", name, vars[name])
	}
	return builder.String()
}

// cliConfig maps explicitly set flags onto a config overlay.
func (f *checkFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("root") {
		cfg.Root = f.root
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("follow-symlinks") {
		cfg.FollowSymlinks = &f.followSymlinks
	}
	cfg.Compact = f.compact

	if changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(color)
	}

	return cfg, nil
}

// loadConfig resolves the configuration for a command run from the
// working directory.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)
	ctx = logging.WithLogger(ctx, logger)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	cfg, workDir, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldRoot, cfg.Root,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldIgnore, cfg.Ignore,
	)

	root, err := docroot.Resolve(ctx, cfg.Root, workDir)
	if err != nil {
		return fmt.Errorf("locate document root: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	runOpts := runner.Options{
		Paths:          args,
		Root:           root,
		WorkingDir:     workDir,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: cfg.FollowsSymlinks(),
		Jobs:           cfg.Jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldRoot, runOpts.Root,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       string(cfg.Color),
		Compact:     cfg.Compact,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if flags.watch {
		watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runner.New(logger).Watch(watchCtx, runOpts, runner.DefaultDebounce,
			func(ctx context.Context, result *runner.Result) error {
				if _, err := rep.Report(ctx, result); err != nil {
					return fmt.Errorf("report results: %w", err)
				}
				return nil
			})
	}

	result, err := runner.New(logger).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch {
	case result.HasViolations():
		return ErrViolationsFound
	case result.HasErrors():
		return ErrFilesUnreadable
	default:
		return nil
	}
}
