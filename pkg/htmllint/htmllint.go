// Package htmllint validates embedded HTML in hybrid documents: tag
// well-formedness, open/close nesting, attribute syntax, CSS class usage,
// and the CommonMark blank-line-after-HTML quirk. All passes except the
// blank-line heuristic run on shielded text, so tags inside code fences
// and verbatim bodies are invisible here.
package htmllint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// tagRe is the single permissive tag tokenizer: opener, name, raw
// attribute string, closer. Names followed by ':' are protocol URLs
// (autolinks like <https://...>), not tags.
var tagRe = regexp.MustCompile(`<(/?)([A-Za-z][A-Za-z0-9-]*)([^<>]*?)(/?)>`)

// commentRe matches complete HTML comments.
var commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

// declRe matches declarations such as <!DOCTYPE html>.
var declRe = regexp.MustCompile(`<![^>]*>`)

// voidElements never take a closing tag and never touch the stack.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// tagAnchor is a stack frame for the hierarchy check.
type tagAnchor struct {
	name  string
	start int
	end   int
}

// Lint runs the malformed-tag guard and then the hierarchy and attribute
// checks over shielded text. The guard must run first so runaway tags
// cannot corrupt the hierarchy stack.
func Lint(shielded string) []span.Diagnostic {
	diags := lintMalformed(shielded)
	diags = append(diags, lintHierarchy(shielded)...)
	return diags
}

// lintMalformed probes every '<' for a complete, single-'<' tag match
// starting exactly there. Comments, declarations, and protocol autolinks
// are skipped.
func lintMalformed(shielded string) []span.Diagnostic {
	var diags []span.Diagnostic

	i := 0
	for i < len(shielded) {
		if shielded[i] != '<' {
			i++
			continue
		}

		if loc := matchAt(commentRe, shielded, i); loc > 0 {
			i = loc
			continue
		}
		if loc := matchAt(declRe, shielded, i); loc > 0 {
			i = loc
			continue
		}
		if loc := tagMatchAt(shielded, i); loc > 0 {
			i = loc
			continue
		}
		if isAutolink(shielded, i) {
			i = skipAutolink(shielded, i)
			continue
		}

		diags = append(diags, span.Diagnostic{
			Start: i,
			End:   i + 1,
			Kind:  span.KindMalformedTag,
		})
		i++
	}

	return diags
}

// matchAt returns the end offset of a match starting exactly at i, or 0.
func matchAt(re *regexp.Regexp, text string, i int) int {
	loc := re.FindStringIndex(text[i:])
	if loc == nil || loc[0] != 0 {
		return 0
	}
	return i + loc[1]
}

// tagMatchAt returns the end offset of a plausible tag starting at i, or 0.
// The tokenizer's attribute region excludes '<', so a runaway tag that
// never closed before the next opener fails the probe and stays malformed.
func tagMatchAt(text string, i int) int {
	loc := tagRe.FindStringSubmatchIndex(text[i:])
	if loc == nil || loc[0] != 0 {
		return 0
	}
	attrs := text[i+loc[6] : i+loc[7]]
	if strings.HasPrefix(attrs, ":") {
		return 0 // autolink, handled by the caller
	}
	return i + loc[1]
}

// isAutolink reports whether i starts a <scheme:...> URL.
func isAutolink(text string, i int) bool {
	j := i + 1
	for j < len(text) && isSchemeByte(text[j]) {
		j++
	}
	return j > i+1 && j < len(text) && text[j] == ':'
}

// skipAutolink advances past the autolink's closing '>', or just past the
// '<' when the autolink itself is unterminated on the line.
func skipAutolink(text string, i int) int {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '>':
			return j + 1
		case '\n', '<':
			return i + 1
		}
	}
	return i + 1
}

func isSchemeByte(b byte) bool {
	return b == '+' || b == '.' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
