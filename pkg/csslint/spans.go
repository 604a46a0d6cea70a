package csslint

import (
	"regexp"
	"sort"

	"github.com/yaklabco/goweave/pkg/span"
)

var atRuleNameRe = regexp.MustCompile(`@[A-Za-z-]+`)

// Spans returns highlight spans for css, shifted by base: comments,
// at-rule names, selectors, and property/value halves of declarations.
// The output is sorted by start offset and deterministic.
func Spans(css string, base int) []span.StyledSpan {
	var spans []span.StyledSpan

	for _, r := range commentRanges(css) {
		spans = append(spans, span.StyledSpan{Style: span.StyleCSSComment, Start: r.Start, End: r.End})
	}

	masked, _ := maskComments(css)

	for _, loc := range atRuleNameRe.FindAllStringIndex(masked, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StyleCSSAtRule, Start: loc[0], End: loc[1]})
	}

	for _, chunk := range selectorChunks(masked) {
		trimmed := trimRange(masked, chunk)
		if trimmed.IsEmpty() {
			continue
		}
		spans = append(spans, span.StyledSpan{Style: span.StyleCSSSelector, Start: trimmed.Start, End: trimmed.End})
	}

	pairs, _ := lintBraces(masked)
	for _, body := range leafBodies(masked, pairs) {
		spans = append(spans, declarationSpans(masked, body)...)
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	for i := range spans {
		spans[i].Start += base
		spans[i].End += base
	}
	return spans
}

// declarationSpans emits property and value spans for a leaf rule body.
// Statement boundaries use the same quote and paren tracking as the
// declaration linter, so a ';' inside url(...) or a quoted value does not
// cut a value span short.
func declarationSpans(masked string, body span.Range) []span.StyledSpan {
	var spans []span.StyledSpan

	text := masked[body.Start:body.End]
	segStart := 0
	for _, end := range append(statementEnds(text), len(text)) {
		seg := text[segStart:end]
		colons := colonPositions(seg)
		if len(colons) > 0 {
			colon := body.Start + segStart + colons[0]
			propStart := body.Start + segStart + propertyStart(seg, colons[0])
			if propStart < colon {
				spans = append(spans, span.StyledSpan{
					Style: span.StyleCSSProperty,
					Start: propStart,
					End:   colon,
				})
			}
			value := trimRange(masked, span.Range{Start: colon + 1, End: body.Start + end})
			if !value.IsEmpty() {
				spans = append(spans, span.StyledSpan{
					Style: span.StyleCSSValue,
					Start: value.Start,
					End:   value.End,
				})
			}
		}
		segStart = end + 1
	}

	return spans
}

// selectorChunks returns the ranges of selector text: everything between a
// block boundary ('{', '}', or ';') and the next opening brace.
func selectorChunks(masked string) []span.Range {
	var chunks []span.Range
	start := 0
	for i := 0; i < len(masked); i++ {
		switch masked[i] {
		case '{':
			if i > start {
				chunks = append(chunks, span.Range{Start: start, End: i})
			}
			start = i + 1
		case '}', ';':
			start = i + 1
		}
	}
	return chunks
}

// trimRange shrinks a range to exclude surrounding whitespace.
func trimRange(text string, r span.Range) span.Range {
	start, end := r.Start, r.End
	for start < end && isSpaceByte(text[start]) {
		start++
	}
	for end > start && isSpaceByte(text[end-1]) {
		end--
	}
	return span.Range{Start: start, End: end}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
