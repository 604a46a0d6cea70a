// Package linkcheck verifies bracket and parenthesis parity for Markdown
// links and images. It runs on shielded text so brackets inside code spans
// never count, and it never lets an intent marker match a closer on a
// later line: links and images do not span line breaks here.
package linkcheck

import "github.com/yaklabco/goweave/pkg/span"

// Lint scans for the three link intents: '![', '](', and a bare '['.
func Lint(shielded string) []span.Diagnostic {
	var diags []span.Diagnostic

	for i := 0; i < len(shielded); i++ {
		switch shielded[i] {
		case '!':
			if i+1 < len(shielded) && shielded[i+1] == '[' && !escaped(shielded, i) {
				if !closerOnLine(shielded, i+2, ']') {
					diags = append(diags, span.Diagnostic{
						Start: i,
						End:   i + 2,
						Kind:  span.KindMalformedImageTag,
					})
				}
				i++ // the '[' belongs to this image intent
			}
		case ']':
			if i+1 < len(shielded) && shielded[i+1] == '(' {
				if !closerOnLine(shielded, i+2, ')') {
					diags = append(diags, span.Diagnostic{
						Start: i,
						End:   i + 2,
						Kind:  span.KindUnclosedLinkParen,
					})
				}
				i++ // the '(' belongs to this URL intent
			}
		case '[':
			if escaped(shielded, i) {
				continue
			}
			if i > 0 && shielded[i-1] == '!' {
				continue
			}
			if !closerOnLine(shielded, i+1, ']') {
				diags = append(diags, span.Diagnostic{
					Start: i,
					End:   i + 1,
					Kind:  span.KindUnclosedLinkBracket,
				})
			}
		}
	}

	return diags
}

// closerOnLine reports whether want occurs at or after from, before the
// next line break.
func closerOnLine(text string, from int, want byte) bool {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case want:
			return true
		case '\n':
			return false
		}
	}
	return false
}

// escaped reports whether the character at i is preceded by an odd number
// of backslashes.
func escaped(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
