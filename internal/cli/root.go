// Package cli provides the Cobra command structure for mdwidth.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwidth/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdwidth command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdwidth",
		Short: "Report Markdown prose lines wider than 80 characters",
		Long: `mdwidth reports prose lines in Markdown sources that are wider than
80 characters.

Fenced code blocks, display math, headings, table rows, reference and
footnote definitions, HTML tag lines and single inline-math lines are
never reported. Lines whose width comes from an unbreakable link or
parenthesized math are counted as inherent exceptions instead.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newExplainCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
