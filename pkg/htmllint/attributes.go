package htmllint

import (
	"regexp"

	"github.com/yaklabco/goweave/pkg/csslint"
	"github.com/yaklabco/goweave/pkg/span"
)

// styleAttrRe locates a complete, quoted style attribute value.
var styleAttrRe = regexp.MustCompile(`(?i)\bstyle\s*=\s*("([^"]*)"|'([^']*)')`)

// lintAttributes streams over the raw attribute string of one tag,
// checking quote pairing and the '=' before each opening quote, and hands
// complete style="..." values to the CSS declaration linter with the
// enclosing tag name as context.
func lintAttributes(attrs string, base int, tag string) []span.Diagnostic {
	var diags []span.Diagnostic

	var quote byte
	quoteAt := -1
	for i := 0; i < len(attrs); i++ {
		c := attrs[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			if prev := prevNonSpace(attrs, i); prev != '=' {
				diags = append(diags, span.Diagnostic{
					Start:   base + i,
					End:     base + i + 1,
					Kind:    span.KindMissingEquals,
					Context: tag,
				})
			}
			quote = c
			quoteAt = i
		case c == quote:
			quote = 0
		}
	}

	if quote != 0 {
		diags = append(diags, span.Diagnostic{
			Start:   base + quoteAt,
			End:     base + len(attrs),
			Kind:    span.KindMalformedAttribute,
			Context: tag,
		})
	}

	for _, loc := range styleAttrRe.FindAllStringSubmatchIndex(attrs, -1) {
		vStart, vEnd := loc[4], loc[5] // double-quoted value
		if vStart < 0 {
			vStart, vEnd = loc[6], loc[7] // single-quoted value
		}
		diags = append(diags, csslint.LintDeclarations(
			attrs[vStart:vEnd], base+vStart, tag)...)
	}

	return diags
}

// prevNonSpace returns the last non-whitespace byte before i, or 0.
func prevNonSpace(s string, i int) byte {
	for j := i - 1; j >= 0; j-- {
		switch s[j] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return s[j]
		}
	}
	return 0
}
