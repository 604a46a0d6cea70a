package highlight

import (
	"regexp"

	"github.com/yaklabco/goweave/pkg/span"
)

var (
	htmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlTagRe     = regexp.MustCompile(`<(/?)([A-Za-z][A-Za-z0-9-]*)([^<>]*?)(/?)>`)
	placeholderRe = regexp.MustCompile(`\{\{[^{}\n]+\}\}`)
	pageBreakRe   = regexp.MustCompile(`(?m)^\\(?:newpage|pagebreak)[ \t]*\r?$`)

	// Common emoji blocks: symbols, pictographs, transport, supplemental,
	// flags, dingbats.
	emojiRe = regexp.MustCompile(`[\x{1F1E6}-\x{1F1FF}\x{1F300}-\x{1F5FF}` +
		`\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}` +
		`\x{2600}-\x{26FF}\x{2700}-\x{27BF}]+`)
)

// Overlays runs the regex extractors that do not depend on the Markdown
// tree: HTML tags and attribute strings, HTML comments, template
// placeholders, emoji runs and manual page-break markers.
func Overlays(text string) []span.StyledSpan {
	var spans []span.StyledSpan

	for _, m := range htmlCommentRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StyleHTMLComment, Start: m[0], End: m[1]})
	}

	for _, m := range htmlTagRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StyleHTMLTag, Start: m[0], End: m[1]})
		// Group 3 is the raw attribute string.
		if attrStart, attrEnd := m[6], m[7]; attrEnd > attrStart {
			spans = append(spans, span.StyledSpan{
				Style: span.StyleHTMLAttribute,
				Start: attrStart,
				End:   attrEnd,
			})
		}
	}

	for _, m := range placeholderRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StylePlaceholder, Start: m[0], End: m[1]})
	}

	for _, m := range emojiRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StyleEmoji, Start: m[0], End: m[1]})
	}

	for _, m := range pageBreakRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span.StyledSpan{Style: span.StylePageBreak, Start: m[0], End: m[1]})
	}

	return spans
}

// FromRanges tags host-supplied ranges, used for search matches and
// design-mode overlays.
func FromRanges(style span.StyleTag, ranges []span.Range) []span.StyledSpan {
	if len(ranges) == 0 {
		return nil
	}
	spans := make([]span.StyledSpan, 0, len(ranges))
	for _, r := range ranges {
		if r.Start < 0 || r.End <= r.Start {
			continue
		}
		spans = append(spans, span.StyledSpan{Style: style, Start: r.Start, End: r.End})
	}
	return spans
}
