// Package analyzer is the engine facade: one call lints and highlights a
// hybrid Markdown/HTML/CSS/YAML document. Every entry point is a pure
// function of its inputs and returns freshly-allocated results, so
// concurrent calls need no locking. Internal failures degrade to empty
// results; a host running this on every keystroke cannot tolerate a
// panic.
package analyzer

import (
	"regexp"
	"sort"

	"github.com/yaklabco/goweave/pkg/csslint"
	"github.com/yaklabco/goweave/pkg/highlight"
	"github.com/yaklabco/goweave/pkg/htmllint"
	"github.com/yaklabco/goweave/pkg/linkcheck"
	"github.com/yaklabco/goweave/pkg/mdast"
	"github.com/yaklabco/goweave/pkg/shield"
	"github.com/yaklabco/goweave/pkg/span"
	"github.com/yaklabco/goweave/pkg/yamlfm"
)

// Options tunes a single analysis call.
type Options struct {
	// KnownClasses is the CSS class inventory for the missing-class
	// check. nil disables that check only; all other checks still run.
	KnownClasses map[string]struct{}

	// SearchRanges and DesignOverlays are host-supplied UI ranges that
	// join the span contest at their ladder positions.
	SearchRanges   []span.Range
	DesignOverlays []span.Range
}

// Result is the output of one analysis call.
type Result struct {
	Diagnostics []span.Diagnostic
	Spans       []highlight.Span
}

var styleElementRe = regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style\s*>`)

// AnalyzeDocument runs the full pipeline: shield, the four structural
// linters, the class inventory check, and the span combiner. The doc tree
// comes from the caller (pkg/parser/goldmark, or the host's own parser);
// a nil doc skips only the semantic Markdown spans.
func AnalyzeDocument(text string, doc *mdast.Node, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
		}
	}()

	shielded, diags := shield.Shield(text)

	// YAML runs against the raw text: the shield has no business inside
	// frontmatter, and frontmatter precedes any maskable element anyway.
	diags = append(diags, yamlfm.Lint(text)...)

	// CSS runs against the raw style bodies; the shield blanked them in
	// the shielded copy precisely so nothing else trips over them.
	for _, body := range styleBodies(text) {
		diags = append(diags, csslint.Lint(body.text, body.base)...)
	}

	diags = append(diags, htmllint.Lint(shielded)...)
	diags = append(diags, htmllint.LintClasses(shielded, opts.KnownClasses)...)
	diags = append(diags, linkcheck.Lint(shielded)...)
	diags = append(diags, htmllint.LintBlankLines(text)...)

	sortDiagnostics(diags)

	colors := highlight.Semantic(text, doc)
	colors = append(colors, highlight.Overlays(text)...)
	colors = append(colors, yamlfm.Spans(text)...)
	for _, body := range styleBodies(text) {
		colors = append(colors, csslint.Spans(body.text, body.base)...)
	}
	colors = append(colors, highlight.FromRanges(span.StyleSearchMatch, opts.SearchRanges)...)
	colors = append(colors, highlight.FromRanges(span.StyleDesignOverlay, opts.DesignOverlays)...)

	return Result{
		Diagnostics: diags,
		Spans:       highlight.Combine(colors, diags),
	}
}

// LintCSS lints a standalone CSS buffer, offsets 0-based against it.
func LintCSS(css string) (diags []span.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			diags = nil
		}
	}()
	diags = csslint.Lint(css, 0)
	sortDiagnostics(diags)
	return diags
}

// HighlightCSS produces styled spans for a standalone CSS buffer.
func HighlightCSS(css string) (spans []span.StyledSpan) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
		}
	}()
	return csslint.Spans(css, 0)
}

// ExtractClasses returns the class names defined by the document's own
// <style> blocks, in definition order.
func ExtractClasses(text string) (classes []string) {
	defer func() {
		if r := recover(); r != nil {
			classes = nil
		}
	}()
	seen := make(map[string]struct{})
	for _, body := range styleBodies(text) {
		for _, name := range csslint.Classes(body.text) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			classes = append(classes, name)
		}
	}
	return classes
}

// DefaultReservedClasses returns the framework-reserved class names hosts
// typically merge into the inventory so templates do not flag them.
func DefaultReservedClasses() map[string]struct{} {
	reserved := []string{
		"container", "row", "col", "page", "page-break",
		"toc", "footnote", "caption", "highlight",
	}
	set := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		set[name] = struct{}{}
	}
	return set
}

type styleBody struct {
	text string
	base int
}

// styleBodies locates <style> element bodies in the raw text.
func styleBodies(text string) []styleBody {
	var bodies []styleBody
	for _, m := range styleElementRe.FindAllStringSubmatchIndex(text, -1) {
		if start, end := m[2], m[3]; end > start {
			bodies = append(bodies, styleBody{text: text[start:end], base: start})
		}
	}
	return bodies
}

// sortDiagnostics orders diagnostics by position, then kind, so output
// never depends on which linter ran first.
func sortDiagnostics(diags []span.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Start != diags[j].Start {
			return diags[i].Start < diags[j].Start
		}
		if diags[i].End != diags[j].End {
			return diags[i].End < diags[j].End
		}
		return diags[i].Kind < diags[j].Kind
	})
}
