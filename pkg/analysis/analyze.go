// Package analysis aggregates runner results into per-file and per-kind
// views for summary rendering and machine consumption.
package analysis

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/yaklabco/goweave/pkg/runner"
	"github.com/yaklabco/goweave/pkg/span"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[string]*KindAnalysis
	fileMap   map[string]*FileAnalysis
	fileOrder []string
	kindFiles map[string]map[string]bool
	fileKinds map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[string]*KindAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		kindFiles: make(map[string]map[string]bool),
		fileKinds: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) fileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileKinds[path] = make(map[string]bool)
		ctx.fileOrder = append(ctx.fileOrder, path)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) kindAnalysis(kind string) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through findings to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil {
			continue
		}
		if len(file.Result.Findings) > 0 {
			report.Totals.FilesWithIssues++
		}

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.fileAnalysis(displayPath)

		for _, f := range file.Result.Findings {
			report.Totals.Issues++

			kind := f.Diagnostic.Kind.String()
			ka := ctx.kindAnalysis(kind)
			fa.Issues++
			ka.Issues++

			if f.Severity == span.SeverityError {
				report.Totals.Errors++
				fa.Errors++
				ka.Errors++
			} else {
				report.Totals.Warnings++
				fa.Warnings++
				ka.Warnings++
			}

			ctx.kindFiles[kind][displayPath] = true
			ctx.fileKinds[displayPath][kind] = true
		}
	}

	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}
	return report
}

// buildByKind constructs the ByKind slice from accumulated data.
func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for _, path := range ctx.fileOrder {
		fa := ctx.fileMap[path]
		if fa.Issues == 0 {
			continue
		}
		for k := range ctx.fileKinds[path] {
			fa.Kinds = append(fa.Kinds, k)
		}
		slices.Sort(fa.Kinds)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// compareCounts orders two entries by the configured field. Ties fall
// back to the name so output stays deterministic.
func compareCounts(field SortField, desc bool, aIssues, aErrors, aWarnings, bIssues, bErrors, bWarnings int, aName, bName string) int {
	var c int
	switch field {
	case SortBySeverity:
		c = bErrors - aErrors
		if c == 0 {
			c = bWarnings - aWarnings
		}
	case SortByAlpha:
		c = strings.Compare(aName, bName)
		if desc {
			c = -c
		}
	default:
		c = aIssues - bIssues
		if desc {
			c = -c
		}
	}
	if c == 0 {
		c = strings.Compare(aName, bName)
	}
	return c
}

func sortKindAnalysis(entries []KindAnalysis, field SortField, desc bool) {
	slices.SortStableFunc(entries, func(a, b KindAnalysis) int {
		return compareCounts(field, desc,
			a.Issues, a.Errors, a.Warnings,
			b.Issues, b.Errors, b.Warnings,
			a.Kind, b.Kind)
	})
}

func sortFileAnalysis(entries []FileAnalysis, field SortField, desc bool) {
	slices.SortStableFunc(entries, func(a, b FileAnalysis) int {
		return compareCounts(field, desc,
			a.Issues, a.Errors, a.Warnings,
			b.Issues, b.Errors, b.Warnings,
			a.Path, b.Path)
	})
}
