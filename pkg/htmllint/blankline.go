package htmllint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// solitaryTagRe matches a line whose only content is a single HTML tag.
var solitaryTagRe = regexp.MustCompile(`^\s*</?([A-Za-z][A-Za-z0-9-]*)[^<>]*>\s*$`)

// verbatimContainers hold literal bodies the blank-line rule must not
// touch: the line after their opening tag is supposed to be content.
var verbatimContainers = map[string]bool{
	"pre": true, "code": true, "script": true, "style": true,
}

// LintBlankLines flags solitary HTML tag lines that run straight into
// Markdown content. CommonMark keeps consuming an HTML block until a blank
// line, so Markdown following such a tag silently renders as raw HTML.
// This heuristic deliberately works on the raw text: the quirk applies to
// exactly what the Markdown engine sees. Best-effort warning only.
func LintBlankLines(raw string) []span.Diagnostic {
	var diags []span.Diagnostic

	li := span.NewLineIndex(raw)
	for n := 1; n < li.LineCount(); n++ {
		line := li.LineRange(n)
		m := solitaryTagRe.FindStringSubmatch(raw[line.Start:line.End])
		if m == nil {
			continue
		}

		if verbatimContainers[strings.ToLower(m[1])] {
			continue
		}

		next := li.LineRange(n + 1)
		nextContent := strings.TrimSpace(raw[next.Start:next.End])
		if nextContent == "" || looksLikeTagLine(nextContent) {
			continue
		}

		diags = append(diags, span.Diagnostic{
			Start:   line.Start,
			End:     line.End,
			Kind:    span.KindMissingBlankLine,
			Context: strings.ToLower(m[1]),
		})
	}

	return diags
}

// looksLikeTagLine reports whether trimmed line content continues an HTML
// block, in which case the blank-line rule has not been broken yet.
func looksLikeTagLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "<")
}
