package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/goweave/pkg/analyzer"
	"github.com/yaklabco/goweave/pkg/config"
	"github.com/yaklabco/goweave/pkg/highlight"
	"github.com/yaklabco/goweave/pkg/langdetect"
	"github.com/yaklabco/goweave/pkg/parser/goldmark"
	"github.com/yaklabco/goweave/pkg/span"
)

// Runner orchestrates multi-file analysis.
type Runner struct {
	parser *goldmark.Parser
}

// New creates a new Runner.
func New() *Runner {
	return &Runner{parser: goldmark.New()}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
// It returns a deterministically ordered collection of FileOutcome values
// and aggregate stats.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, cfg)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index by path and rebuild in the
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	cfg *config.Config,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		fr, err := r.ProcessFile(ctx, path, cfg)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = fr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile analyzes a single file: read, route to a surface, analyze,
// resolve findings against the configuration.
func (r *Runner) ProcessFile(ctx context.Context, path string, cfg *config.Config) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	kind := langdetect.DetectPath(path, data)

	fr := &FileResult{Path: path, Kind: kind}

	var diags []span.Diagnostic
	switch kind {
	case langdetect.KindCSS:
		diags = analyzer.LintCSS(text)
		fr.Spans = highlight.Combine(analyzer.HighlightCSS(text), diags)
	default:
		doc, err := r.parser.Parse(ctx, data)
		if err != nil {
			return nil, err
		}
		result := analyzer.AnalyzeDocument(text, doc, analyzer.Options{
			KnownClasses: buildInventory(cfg, text),
		})
		diags = result.Diagnostics
		fr.Spans = result.Spans
	}

	fr.Findings = ResolveFindings(text, diags, cfg)
	return fr, nil
}

// buildInventory merges the configured class list with classes defined in
// the document's own style blocks, plus the reserved set when enabled.
// Returns nil when the class check is disabled.
func buildInventory(cfg *config.Config, text string) map[string]struct{} {
	inv := cfg.Inventory()
	if inv == nil {
		return nil
	}
	for _, name := range analyzer.ExtractClasses(text) {
		inv[name] = struct{}{}
	}
	if cfg.ReservedClasses {
		for name := range analyzer.DefaultReservedClasses() {
			inv[name] = struct{}{}
		}
	}
	return inv
}

// ResolveFindings renders diagnostics into reportable findings, applying
// severity overrides and dropping kinds switched off.
func ResolveFindings(text string, diags []span.Diagnostic, cfg *config.Config) []Finding {
	if len(diags) == 0 {
		return nil
	}

	li := span.NewLineIndex(text)
	findings := make([]Finding, 0, len(diags))
	for _, d := range diags {
		sev, enabled := cfg.SeverityFor(d.Kind)
		if !enabled {
			continue
		}
		line, col := li.Position(d.Start)
		endLine, endCol := li.Position(d.End)
		findings = append(findings, Finding{
			Diagnostic: d,
			Severity:   sev,
			Message:    span.Message(d.Kind, d.Context),
			Line:       line,
			Col:        col,
			EndLine:    endLine,
			EndCol:     endCol,
		})
	}
	return findings
}
