package analysis

import "time"

// Report contains pre-computed views of a lint run.
// Computed once by Analyze(), used by renderers.
type Report struct {
	// ByFile groups findings by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind groups findings by diagnostic kind.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any errors.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Kinds    []string `json:"kinds,omitempty"`
}

// KindAnalysis contains aggregated data for a single diagnostic kind.
type KindAnalysis struct {
	Kind     string   `json:"kind"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Files    []string `json:"files,omitempty"`
}
