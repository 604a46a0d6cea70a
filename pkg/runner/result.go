package runner

import (
	"github.com/yaklabco/goweave/pkg/highlight"
	"github.com/yaklabco/goweave/pkg/langdetect"
	"github.com/yaklabco/goweave/pkg/span"
)

// Finding is a diagnostic resolved for reporting: position, rendered
// message and configured severity attached.
type Finding struct {
	span.Diagnostic

	// Severity is the reporting severity after config overrides.
	Severity span.Severity

	// Message is the rendered human-readable message.
	Message string

	// 1-based positions for the start and end offsets.
	Line, Col       int
	EndLine, EndCol int
}

// FileResult holds the analysis output for one file.
type FileResult struct {
	// Path is the absolute file path.
	Path string

	// Kind is the surface the file was routed to.
	Kind langdetect.Kind

	// Findings are the reportable diagnostics in position order.
	Findings []Finding

	// Spans is the combined highlight sequence for the file.
	Spans []highlight.Span
}

// FileOutcome pairs a path with its result or processing error.
type FileOutcome struct {
	Path string

	// Result is nil when the file could not be processed.
	Result *FileResult

	// Error is set if the file could not be read or analyzed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesWithIssues int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity names to counts.
	FindingsBySeverity map[string]int
}

// Result is the overall runner result. Files are ordered
// deterministically by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any error-severity findings occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[span.SeverityError.String()] > 0
}

// HasIssues reports whether any findings were produced at all.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

func newStats() Stats {
	return Stats{FindingsBySeverity: make(map[string]int)}
}

// accumulate folds one outcome into the aggregate result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++

	if outcome.Result == nil {
		return
	}
	if len(outcome.Result.Findings) > 0 {
		r.Stats.FilesWithIssues++
	}
	for _, f := range outcome.Result.Findings {
		r.Stats.FindingsTotal++
		r.Stats.FindingsBySeverity[f.Severity.String()]++
	}
}
