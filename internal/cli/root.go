// Package cli provides the Cobra command structure for goweave.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goweave/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goweave command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goweave",
		Short: "A structural linter and highlighter for hybrid Markdown documents",
		Long: `goweave lints and highlights hybrid Markdown documents: Markdown
text interleaved with raw HTML, CSS style blocks and YAML frontmatter.

It checks HTML tag hierarchy, CSS declarations, YAML frontmatter shape,
link integrity and class usage against a class inventory, while leaving
fenced code and inline code untouched. Pure CSS files get the same CSS
checks standalone.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newCSSCommand())
	rootCmd.AddCommand(newClassesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
