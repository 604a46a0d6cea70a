package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goweave/pkg/analyzer"
	"github.com/yaklabco/goweave/pkg/config"
	"github.com/yaklabco/goweave/pkg/highlight"
	"github.com/yaklabco/goweave/pkg/langdetect"
	"github.com/yaklabco/goweave/pkg/reporter"
	"github.com/yaklabco/goweave/pkg/runner"
)

type cssFlags struct {
	format  string
	spans   bool
	strict  bool
	compact bool
}

func newCSSCommand() *cobra.Command {
	flags := &cssFlags{}

	cmd := &cobra.Command{
		Use:   "css [file]",
		Short: "Lint a single CSS buffer",
		Long: `Lint one CSS buffer standalone, without Markdown context.

Reads the named file, or standard input when no file (or "-") is given.
The buffer gets the full CSS pipeline: selector and brace structure,
declaration checks and comment balance.

Examples:
  goweave css styles.css
  cat styles.css | goweave css
  goweave css --format json --spans styles.css`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().BoolVar(&flags.spans, "spans", false, "include styled spans in JSON output")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

func runCSS(cmd *cobra.Command, args []string, flags *cssFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, text, err := readBuffer(cmd, args)
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	diags := analyzer.LintCSS(text)

	fileResult := &runner.FileResult{
		Path:     path,
		Kind:     langdetect.KindCSS,
		Findings: runner.ResolveFindings(text, diags, cfg),
		Spans:    highlight.Combine(analyzer.HighlightCSS(text), diags),
	}

	result := &runner.Result{}
	result.Stats = statsForSingleBuffer(fileResult)
	result.Files = []runner.FileOutcome{{Path: path, Result: fileResult}}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      config.OutputFormat(flags.format),
		Color:       colorMode,
		ShowSummary: true,
		ShowSpans:   flags.spans,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

// readBuffer reads the single positional argument, or stdin when the
// argument is absent or "-".
func readBuffer(cmd *cobra.Command, args []string) (path, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}

// statsForSingleBuffer builds aggregate stats for one in-memory result.
func statsForSingleBuffer(fr *runner.FileResult) runner.Stats {
	stats := runner.Stats{
		FilesDiscovered:    1,
		FilesProcessed:     1,
		FindingsBySeverity: make(map[string]int),
	}
	if len(fr.Findings) > 0 {
		stats.FilesWithIssues = 1
	}
	for _, f := range fr.Findings {
		stats.FindingsTotal++
		stats.FindingsBySeverity[f.Severity.String()]++
	}
	return stats
}
