package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/pkg/runner"
	"github.com/yaklabco/goweave/pkg/span"
)

func finding(kind span.ErrorKind, sev span.Severity) runner.Finding {
	return runner.Finding{
		Diagnostic: span.Diagnostic{Kind: kind},
		Severity:   sev,
	}
}

func twoFileResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "file1.md",
				Result: &runner.FileResult{
					Path: "file1.md",
					Findings: []runner.Finding{
						finding(span.KindRedundantClosing, span.SeverityError),
						finding(span.KindRedundantClosing, span.SeverityError),
						finding(span.KindMissingBlankLine, span.SeverityWarning),
					},
				},
			},
			{
				Path: "file2.md",
				Result: &runner.FileResult{
					Path: "file2.md",
					Findings: []runner.Finding{
						finding(span.KindMissingBlankLine, span.SeverityWarning),
					},
				},
			},
		},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{}}

	report := Analyze(result, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Issues)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByKind)
	assert.False(t, report.Totals.HasIssues())
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.Equal(t, 0, report.Totals.Files)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(twoFileResult(), DefaultOptions())

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithIssues)
	assert.Equal(t, 4, report.Totals.Issues)
	assert.Equal(t, 2, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.True(t, report.Totals.HasIssues())
	assert.True(t, report.Totals.HasErrors())
}

func TestAnalyze_ByKind(t *testing.T) {
	t.Parallel()

	report := Analyze(twoFileResult(), DefaultOptions())

	require.Len(t, report.ByKind, 2)

	// Default sort is by count descending; both kinds have two findings,
	// so the alphabetical tie-break applies.
	assert.Equal(t, "missing-blank-line", report.ByKind[0].Kind)
	assert.Equal(t, 2, report.ByKind[0].Issues)
	assert.Equal(t, []string{"file1.md", "file2.md"}, report.ByKind[0].Files)

	assert.Equal(t, "redundant-closing-tag", report.ByKind[1].Kind)
	assert.Equal(t, 2, report.ByKind[1].Errors)
	assert.Equal(t, []string{"file1.md"}, report.ByKind[1].Files)
}

func TestAnalyze_ByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(twoFileResult(), DefaultOptions())

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "file1.md", report.ByFile[0].Path)
	assert.Equal(t, 3, report.ByFile[0].Issues)
	assert.Equal(t, 2, report.ByFile[0].Errors)
	assert.Equal(t, []string{"missing-blank-line", "redundant-closing-tag"}, report.ByFile[0].Kinds)

	assert.Equal(t, "file2.md", report.ByFile[1].Path)
	assert.Equal(t, 1, report.ByFile[1].Issues)
}

func TestAnalyze_SortBySeverity(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortBySeverity

	report := Analyze(twoFileResult(), opts)

	require.Len(t, report.ByKind, 2)
	assert.Equal(t, "redundant-closing-tag", report.ByKind[0].Kind)
}

func TestAnalyze_SortByAlpha(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha
	opts.SortDesc = false

	report := Analyze(twoFileResult(), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "file1.md", report.ByFile[0].Path)
	assert.Equal(t, "file2.md", report.ByFile[1].Path)
}

func TestAnalyze_ErroredFiles(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "broken.md", Error: errors.New("permission denied")},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 1, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesErrored)
	assert.Equal(t, 0, report.Totals.Issues)
}

func TestAnalyze_WorkingDirRelativizes(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/docs/a.md",
				Result: &runner.FileResult{
					Path: "/work/docs/a.md",
					Findings: []runner.Finding{
						finding(span.KindMissingColon, span.SeverityError),
					},
				},
			},
		},
	}

	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(result, opts)

	require.Len(t, report.ByFile, 1)
	assert.Equal(t, "docs/a.md", report.ByFile[0].Path)
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("size").IsValid())
}
