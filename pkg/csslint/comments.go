package csslint

import (
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// maskComments validates /* */ pairing and returns a same-length copy of
// css with matched comments blanked out, so later passes never misread
// commented-out rules. Unmatched markers become diagnostics: an open with
// no close is UnclosedComment, a close with no open is RedundantCommentClosing.
func maskComments(css string) (string, []span.Diagnostic) {
	buf := []byte(css)
	var diags []span.Diagnostic

	openAt := -1
	i := 0
	for i < len(buf)-1 {
		switch {
		case buf[i] == '/' && buf[i+1] == '*' && openAt < 0:
			openAt = i
			i += 2
		case buf[i] == '*' && buf[i+1] == '/':
			if openAt < 0 {
				diags = append(diags, span.Diagnostic{
					Start:   i,
					End:     i + 2,
					Kind:    span.KindRedundantCommentClosing,
					Context: ContextRule,
				})
				i += 2
				continue
			}
			blank(buf, openAt, i+2)
			openAt = -1
			i += 2
		default:
			i++
		}
	}

	if openAt >= 0 {
		diags = append(diags, span.Diagnostic{
			Start:   openAt,
			End:     openAt + 2,
			Kind:    span.KindUnclosedComment,
			Context: ContextRule,
		})
		// Mask the dangling opener so brace and declaration passes do
		// not trip over whatever the half-written comment contains.
		blank(buf, openAt, len(buf))
	}

	return string(buf), diags
}

// blank replaces [start, end) with spaces, preserving line breaks.
func blank(buf []byte, start, end int) {
	for i := start; i < end; i++ {
		if buf[i] != '\n' && buf[i] != '\r' {
			buf[i] = ' '
		}
	}
}

// commentRanges returns the ranges of matched /* */ comments, used by the
// span extractor. Unmatched markers are ignored here; Lint reports them.
func commentRanges(css string) []span.Range {
	var out []span.Range
	i := 0
	for {
		open := strings.Index(css[i:], "/*")
		if open < 0 {
			return out
		}
		open += i
		closing := strings.Index(css[open+2:], "*/")
		if closing < 0 {
			return out
		}
		end := open + 2 + closing + 2
		out = append(out, span.Range{Start: open, End: end})
		i = end
	}
}
