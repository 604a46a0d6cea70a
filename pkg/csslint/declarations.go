package csslint

import (
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// LintDeclarations validates a semicolon-delimited property list: the body
// of a leaf rule block, or the value of an inline style="" attribute. The
// context parameter tags the diagnostics; rule bodies pass ContextRule,
// inline styles pass the enclosing tag name.
func LintDeclarations(body string, base int, context string) []span.Diagnostic {
	valueContext := ContextValue
	if context != ContextRule {
		valueContext = context
	}

	var diags []span.Diagnostic

	segStart := 0
	for _, end := range statementEnds(body) {
		diags = append(diags, lintDeclaration(
			body[segStart:end], segStart, true, context, valueContext)...)
		segStart = end + 1
	}
	diags = append(diags, lintDeclaration(
		body[segStart:], segStart, false, context, valueContext)...)

	shift(diags, base)
	return diags
}

// statementEnds returns the offsets of statement-terminating semicolons.
// Semicolons inside quoted strings or parentheses belong to the value, as
// in url(data:image/png;base64,...) or content: "a;b", and never end a
// statement.
func statementEnds(body string) []int {
	var out []int
	var quote byte
	depth := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case c == quote:
			quote = 0
		case quote != 0:
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == ';' && depth == 0:
			out = append(out, i)
		}
	}
	return out
}

// lintDeclaration checks a single statement. terminated reports whether a
// ';' followed the statement; the final statement before a closing brace
// must still carry one.
func lintDeclaration(seg string, segStart int, terminated bool, context, valueContext string) []span.Diagnostic {
	lead := leadingSpace(seg)
	trimmed := strings.TrimSpace(seg)
	if trimmed == "" {
		return nil
	}
	trimStart := segStart + lead
	trimEnd := trimStart + len(trimmed)

	colons := colonPositions(seg)
	if len(colons) == 0 {
		return []span.Diagnostic{{
			Start:   trimStart,
			End:     trimEnd,
			Kind:    span.KindMissingColon,
			Context: context,
		}}
	}

	var diags []span.Diagnostic

	// A second colon in one statement means the previous value ran into
	// the next property without a ';' in between.
	for _, c := range colons[1:] {
		wordStart := propertyStart(seg, c)
		diags = append(diags, span.Diagnostic{
			Start:   segStart + wordStart,
			End:     segStart + c,
			Kind:    span.KindMissingSemicolon,
			Context: valueContext,
		})
	}

	valueDiags := lintValueQuotes(seg, segStart, colons[0]+1, valueContext)

	// An unterminated quote swallows any ';' after it, so the statement
	// reads as unterminated too. The quote diagnostic already covers that;
	// reporting a missing semicolon on top would just cascade.
	unterminatedQuote := false
	for _, d := range valueDiags {
		if d.Kind == span.KindMalformedAttribute {
			unterminatedQuote = true
		}
	}

	// Rule bodies require a ';' even on the declaration before the
	// closing brace. Inline style values end at their quote instead.
	if !terminated && context == ContextRule && !unterminatedQuote {
		diags = append(diags, span.Diagnostic{
			Start:   trimEnd - 1,
			End:     trimEnd,
			Kind:    span.KindMissingSemicolon,
			Context: valueContext,
		})
	}

	diags = append(diags, valueDiags...)
	return diags
}

// lintValueQuotes scans a value character by character for quote parity.
// A comma inside an open quote usually means a broken quoted list (such as
// a font stack missing its closing quote), reported as malformed.
func lintValueQuotes(seg string, segStart, valueOffset int, valueContext string) []span.Diagnostic {
	var diags []span.Diagnostic

	var quote byte
	quoteAt := -1
	for i := valueOffset; i < len(seg); i++ {
		c := seg[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
			quoteAt = i
		case c == quote:
			quote = 0
		case c == ',' && quote != 0:
			diags = append(diags, span.Diagnostic{
				Start:   segStart + i,
				End:     segStart + i + 1,
				Kind:    span.KindMalformedCssValue,
				Context: valueContext,
			})
		}
	}

	if quote != 0 {
		diags = append(diags, span.Diagnostic{
			Start:   segStart + quoteAt,
			End:     segStart + len(seg),
			Kind:    span.KindMalformedAttribute,
			Context: valueContext,
		})
	}

	return diags
}

// colonPositions returns the offsets of colons outside quoted strings and
// outside parentheses, so url(data:...) and color functions do not read as
// extra declarations.
func colonPositions(seg string) []int {
	var out []int
	var quote byte
	depth := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case c == quote:
			quote = 0
		case quote != 0:
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == ':' && depth == 0:
			out = append(out, i)
		}
	}
	return out
}

// propertyStart walks back from a colon to the start of the property word.
func propertyStart(seg string, colon int) int {
	i := colon
	for i > 0 && isPropertyByte(seg[i-1]) {
		i--
	}
	return i
}

func isPropertyByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func leadingSpace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t' || s[n] == '\n' || s[n] == '\r') {
		n++
	}
	return n
}
