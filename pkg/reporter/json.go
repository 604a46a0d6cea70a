package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/goweave/pkg/runner"
	"github.com/yaklabco/goweave/pkg/span"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string           `json:"path"`
	Kind     string           `json:"kind,omitempty"`
	Findings []JSONFinding    `json:"findings"`
	Spans    []JSONStyledSpan `json:"spans,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Context     string `json:"context,omitempty"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// JSONStyledSpan is one combined highlight interval.
type JSONStyledSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style,omitempty"`
	Lint  string `json:"lint,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalFindings   int            `json:"totalFindings"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{BySeverity: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	output.Summary.FilesChecked = result.Stats.FilesProcessed
	output.Summary.FilesWithIssues = result.Stats.FilesWithIssues
	output.Summary.FilesErrored = result.Stats.FilesErrored
	output.Summary.TotalFindings = result.Stats.FindingsTotal
	for sev, n := range result.Stats.FindingsBySeverity {
		output.Summary.BySeverity[sev] = n
	}

	for _, file := range result.Files {
		output.Files = append(output.Files, r.buildFile(file))
	}
	return output
}

func (r *JSONReporter) buildFile(file runner.FileOutcome) JSONFileResult {
	out := JSONFileResult{
		Path:     r.opts.relPath(file.Path),
		Findings: make([]JSONFinding, 0),
	}
	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}
	if file.Result == nil {
		return out
	}

	out.Kind = file.Result.Kind.String()
	for _, f := range file.Result.Findings {
		out.Findings = append(out.Findings, JSONFinding{
			Kind:        f.Diagnostic.Kind.String(),
			Severity:    f.Severity.String(),
			Message:     f.Message,
			Context:     f.Context,
			StartOffset: f.Diagnostic.Start,
			EndOffset:   f.Diagnostic.End,
			StartLine:   f.Line,
			StartColumn: f.Col,
			EndLine:     f.EndLine,
			EndColumn:   f.EndCol,
		})
	}

	if r.opts.ShowSpans {
		for _, s := range file.Result.Spans {
			out.Spans = append(out.Spans, JSONStyledSpan{
				Start: s.Start,
				End:   s.End,
				Style: styleName(s.Style),
				Lint:  styleName(s.Lint),
			})
		}
	}
	return out
}

// styleName renders a style tag for JSON, with StyleNone as empty so
// omitempty drops it.
func styleName(tag span.StyleTag) string {
	if tag == span.StyleNone {
		return ""
	}
	return tag.String()
}
