package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goweave/internal/ui/pretty"
	"github.com/yaklabco/goweave/pkg/analysis"
	"github.com/yaklabco/goweave/pkg/runner"
)

// SummaryReporter prints aggregate counts only: a per-kind breakdown
// followed by the one-line totals. Useful for CI logs where per-finding
// detail is noise.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.relPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
		}
	}

	analysisOpts := analysis.DefaultOptions()
	analysisOpts.WorkingDir = r.opts.WorkingDir
	report := analysis.Analyze(result, analysisOpts)

	if report.Totals.HasIssues() {
		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("Findings by kind:"))
		for _, ka := range report.ByKind {
			fmt.Fprintf(r.bw, "  %s %d\n", r.styles.Kind.Render(ka.Kind), ka.Issues)
		}
		fmt.Fprintln(r.bw)

		fmt.Fprintln(r.bw, r.styles.SummaryTitle.Render("Findings by file:"))
		for _, fa := range report.ByFile {
			fmt.Fprintf(r.bw, "  %s %d\n", r.styles.FilePath.Render(fa.Path), fa.Issues)
		}
		fmt.Fprintln(r.bw)
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	return report.Totals.Issues, nil
}
