// Package yamlfm lints the optional YAML frontmatter block at the start of
// a document and produces its highlight spans. The checks are structural
// line-level ones; full YAML parsing stays with the host configuration
// layer, not here.
package yamlfm

import (
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

const delimiter = "---"

// Extract returns the byte range of the frontmatter body (the lines between
// the two '---' delimiters, exclusive) and whether a complete block exists.
func Extract(text string) (span.Range, bool) {
	block, ok := locate(text)
	if !ok || block.endDelim.IsEmpty() {
		return span.Range{}, false
	}
	return span.Range{Start: block.startDelim.End + 1, End: block.endDelim.Start}, true
}

// Lint validates delimiter pairing and per-line key/value syntax.
// A document without a leading '---' produces no diagnostics at all:
// absent frontmatter is not an error.
func Lint(text string) []span.Diagnostic {
	block, ok := locate(text)
	if !ok {
		return nil
	}

	if block.endDelim.IsEmpty() {
		// Report at the expected location: the end of the document.
		last := block.lines.LineRange(block.lines.LineCount())
		if last.IsEmpty() && block.lines.LineCount() > 1 {
			last = block.lines.LineRange(block.lines.LineCount() - 1)
		}
		return []span.Diagnostic{{
			Start:   last.Start,
			End:     last.End,
			Kind:    span.KindMissingYamlEndDelimiter,
			Context: "yaml",
		}}
	}

	var diags []span.Diagnostic
	for _, line := range block.bodyLines(text) {
		diags = append(diags, lintLine(text, line)...)
	}
	return diags
}

// lintLine checks one frontmatter body line for key/value syntax.
func lintLine(text string, line span.Range) []span.Diagnostic {
	content := text[line.Start:line.End]
	trimmed := strings.TrimSpace(content)

	if trimmed == "" || isComment(trimmed) {
		return nil
	}

	colon := strings.IndexByte(content, ':')
	if colon < 0 {
		return []span.Diagnostic{{
			Start:   line.Start,
			End:     line.End,
			Kind:    span.KindMissingColon,
			Context: "yaml",
		}}
	}

	value := strings.TrimSpace(content[colon+1:])
	if value == "" {
		return nil
	}
	valueStart := line.Start + colon + 1 + leadingSpace(content[colon+1:])

	var diags []span.Diagnostic

	if strings.HasSuffix(value, ";") && !isQuoted(value) {
		semi := valueStart + len(value) - 1
		diags = append(diags, span.Diagnostic{
			Start:   semi,
			End:     semi + 1,
			Kind:    span.KindRedundantSemicolon,
			Context: "yaml",
		})
	}

	if isQuoteByte(value[0]) && !isQuoted(value) {
		diags = append(diags, span.Diagnostic{
			Start:   valueStart,
			End:     valueStart + len(value),
			Kind:    span.KindMalformedAttribute,
			Context: "yaml",
		})
	}

	return diags
}

// isQuoted reports whether s is a properly quoted string: at least two
// characters, opening and closing with the same quote.
func isQuoted(s string) bool {
	return len(s) >= 2 && isQuoteByte(s[0]) && s[len(s)-1] == s[0]
}

func isQuoteByte(b byte) bool {
	return b == '"' || b == '\''
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "<!--")
}

func leadingSpace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// frontmatter describes a located frontmatter region.
type frontmatter struct {
	startDelim span.Range
	endDelim   span.Range // empty when the closing delimiter is missing
	lines      *span.LineIndex
}

// bodyLines returns the line ranges strictly between the delimiters.
func (b *frontmatter) bodyLines(text string) []span.Range {
	li := b.lines
	var out []span.Range

	startLine, _ := li.Position(b.startDelim.Start)
	endLine, _ := li.Position(b.endDelim.Start)
	for n := startLine + 1; n < endLine; n++ {
		out = append(out, li.LineRange(n))
	}
	return out
}

// locate finds the frontmatter delimiters. The opening delimiter must be
// the very first line of the document (leading whitespace allowed).
func locate(text string) (*frontmatter, bool) {
	li := span.NewLineIndex(text)
	first := li.LineRange(1)
	if strings.TrimSpace(text[first.Start:first.End]) != delimiter {
		return nil, false
	}

	block := &frontmatter{startDelim: first, lines: li}
	for n := 2; n <= li.LineCount(); n++ {
		line := li.LineRange(n)
		if strings.TrimSpace(text[line.Start:line.End]) == delimiter {
			block.endDelim = line
			return block, true
		}
	}
	return block, true
}
