package yamlfm

import (
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// Spans returns highlight spans for the frontmatter block: delimiter lines,
// comment lines, and key/value halves of each mapping line. Returns nil
// when the document has no frontmatter.
func Spans(text string) []span.StyledSpan {
	block, ok := locate(text)
	if !ok {
		return nil
	}

	var spans []span.StyledSpan
	spans = appendLineSpan(spans, span.StyleYAMLDelimiter, block.startDelim)

	if block.endDelim.IsEmpty() {
		return spans
	}

	for _, line := range block.bodyLines(text) {
		content := text[line.Start:line.End]
		trimmed := strings.TrimSpace(content)

		switch {
		case trimmed == "":
		case isComment(trimmed):
			spans = appendLineSpan(spans, span.StyleYAMLComment, line)
		default:
			spans = append(spans, mappingSpans(content, line.Start)...)
		}
	}

	return appendLineSpan(spans, span.StyleYAMLDelimiter, block.endDelim)
}

// mappingSpans splits a 'key: value' line into key and value spans.
// A line without a colon still gets a value span so it is visibly YAML.
func mappingSpans(content string, base int) []span.StyledSpan {
	colon := strings.IndexByte(content, ':')
	if colon < 0 {
		return []span.StyledSpan{{
			Style: span.StyleYAMLValue,
			Start: base,
			End:   base + len(content),
		}}
	}

	spans := []span.StyledSpan{{
		Style: span.StyleYAMLKey,
		Start: base,
		End:   base + colon + 1,
	}}

	rest := content[colon+1:]
	if strings.TrimSpace(rest) != "" {
		valueStart := colon + 1 + leadingSpace(rest)
		spans = append(spans, span.StyledSpan{
			Style: span.StyleYAMLValue,
			Start: base + valueStart,
			End:   base + len(content),
		})
	}

	return spans
}

func appendLineSpan(spans []span.StyledSpan, style span.StyleTag, line span.Range) []span.StyledSpan {
	if line.IsEmpty() {
		return spans
	}
	return append(spans, span.StyledSpan{Style: style, Start: line.Start, End: line.End})
}
