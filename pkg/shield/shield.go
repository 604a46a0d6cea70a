// Package shield produces the length-preserving masked copy of a document
// that the structural linters scan, so regex passes cannot misfire inside
// code fences, inline code spans, or verbatim HTML element bodies.
package shield

import (
	"regexp"

	"github.com/yaklabco/goweave/pkg/span"
)

// maskByte replaces every masked character except line breaks. Using a plain
// space keeps shielding idempotent: nothing in any later pass matches on it.
const maskByte = ' '

// verbatimElements are HTML elements whose bodies are taken verbatim.
// Only matched, possibly-attributed tag pairs are masked; a dangling opener
// is left alone for the hierarchy linter to report.
var verbatimElements = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<pre\b[^>]*>(.*?)</pre\s*>`),
	regexp.MustCompile(`(?is)<code\b[^>]*>(.*?)</code\s*>`),
	regexp.MustCompile(`(?is)<script\b[^>]*>(.*?)</script\s*>`),
	regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style\s*>`),
}

// Shield returns a same-length copy of text with all verbatim regions
// blanked out, plus diagnostics for backtick runs that never close.
//
// Invariants: len(result) == len(text), every '\n' and '\r' stays at its
// original offset, and Shield(Shield(text)) == Shield(text).
func Shield(text string) (string, []span.Diagnostic) {
	buf := []byte(text)

	// Verbatim element bodies first. Each pattern runs against the buffer
	// as already masked by the previous ones, so nested pairs (a <code>
	// inside a <pre>) are consumed by the outer element alone.
	for _, re := range verbatimElements {
		for _, loc := range re.FindAllSubmatchIndex(buf, -1) {
			maskRange(buf, loc[2], loc[3])
		}
	}

	diags := maskBackticks(buf)
	return string(buf), diags
}

// maskRange blanks [start, end) in buf, preserving line breaks.
func maskRange(buf []byte, start, end int) {
	for i := start; i < end; i++ {
		if buf[i] != '\n' && buf[i] != '\r' {
			buf[i] = maskByte
		}
	}
}

// lineBounds returns the byte range of the full line containing offset,
// excluding the trailing newline.
func lineBounds(buf []byte, offset int) (int, int) {
	start := offset
	for start > 0 && buf[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(buf) && buf[end] != '\n' {
		end++
	}
	if end > start && buf[end-1] == '\r' {
		end--
	}
	return start, end
}
