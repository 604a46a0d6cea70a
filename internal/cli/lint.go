package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goweave/internal/configloader"
	"github.com/yaklabco/goweave/internal/logging"
	"github.com/yaklabco/goweave/pkg/config"
	"github.com/yaklabco/goweave/pkg/reporter"
	"github.com/yaklabco/goweave/pkg/runner"
)

// ErrIssuesFound is returned when lint issues are found.
var ErrIssuesFound = errors.New("issues found")

type lintFlags struct {
	format            string
	ignore            []string
	classes           []string
	severity          []string
	jobs              int
	spans             bool
	strict            bool
	noContext         bool
	compact           bool
	noClassCheck      bool
	noReservedClasses bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown and CSS files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint hybrid Markdown and CSS files for structural issues.

By default, lints all .md, .markdown and .css files in the current
directory and subdirectories. Specify paths to lint specific files or
directories. Markdown files get the full pipeline: YAML frontmatter,
embedded CSS, HTML hierarchy, link integrity and class inventory
checks. CSS files get the CSS checks standalone.

Examples:
  goweave lint                     # Lint current directory
  goweave lint docs/               # Lint docs directory
  goweave lint README.md           # Lint single file
  goweave lint --format json       # Output as JSON for CI
  goweave lint --strict            # Treat warnings as failures
  goweave lint --severity missing-blank-line=off docs/`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg, err := configFromFlags(cmd, flags)
	if err != nil {
		return err
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:             workDir,
		ExplicitPath:           configPath,
		DisableClassCheck:      flags.noClassCheck,
		DisableReservedClasses: flags.noReservedClasses,
		CLIConfig:              cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		"format", finalCfg.Format,
		"class_check", finalCfg.ClassCheck,
		"jobs", finalCfg.Jobs,
	)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		"working_dir", runOpts.WorkingDir,
		"jobs", runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		ShowSpans:   finalCfg.Spans,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

// configFromFlags maps lint flags onto a CLI-level config overlay.
// Only values explicitly provided on the command line are set, so file
// and environment configuration stay visible underneath.
func configFromFlags(cmd *cobra.Command, flags *lintFlags) (*config.Config, error) {
	cfg := &config.Config{Severity: make(map[string]config.Severity)}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Jobs = flags.jobs
	cfg.Spans = flags.spans
	if flags.ignore != nil {
		cfg.Ignore = flags.ignore
	}
	cfg.KnownClasses = flags.classes

	for _, pair := range flags.severity {
		kind, level, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid severity override %q: expected kind=level", pair)
		}
		cfg.Severity[kind] = config.Severity(level)
	}
	return cfg, nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.classes, "classes", nil, "additional known CSS class names")
	cmd.Flags().StringSliceVar(&flags.severity, "severity", nil,
		"severity overrides as kind=level (level: error, warning, off)")
	cmd.Flags().BoolVar(&flags.spans, "spans", false, "include styled spans in JSON output")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noClassCheck, "no-class-check", false, "disable the class inventory check")
	cmd.Flags().BoolVar(&flags.noReservedClasses, "no-reserved-classes", false,
		"exclude the reserved class set from the inventory")
}
