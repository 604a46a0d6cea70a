package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/goweave/internal/ui/pretty"
	"github.com/yaklabco/goweave/pkg/runner"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 120

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	width  int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		width:  terminalWidth(opts.Writer),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}
	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.relPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}
	if file.Result == nil || len(file.Result.Findings) == 0 {
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))

	var lines []string
	if r.opts.ShowContext {
		lines = sourceLines(file.Path)
	}
	for _, f := range file.Result.Findings {
		sourceLine := ""
		if f.Line >= 1 && f.Line <= len(lines) {
			sourceLine = truncateLine(lines[f.Line-1], r.width)
		}
		fmt.Fprint(r.bw, r.styles.FormatFinding(path, f, sourceLine))
	}
	fmt.Fprintln(r.bw)

	return len(file.Result.Findings)
}

// sourceLines re-reads the file for context display. Failure just means
// findings print without their source line.
func sourceLines(path string) []string {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}

// terminalWidth reads the terminal width from the writer, falling back to
// defaultTermWidth for pipes and buffers.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// truncateLine caps a source context line at the terminal width, leaving
// room for the context indent.
func truncateLine(line string, width int) string {
	const indentWidth = 8
	max := width - indentWidth
	if max < 16 {
		max = 16
	}
	if len(line) <= max {
		return line
	}
	return line[:max-3] + "..."
}

// relativize wraps filepath.Rel, refusing paths that climb out of base.
func relativize(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path %s outside %s", path, base)
	}
	return rel, nil
}
