// Package csslint validates the structure of CSS text: comment pairing,
// at-rule syntax, brace balance, and property/value declarations. The same
// checks serve embedded <style> blocks, inline style="" attributes, and a
// standalone CSS editing buffer; callers pass a base offset so diagnostics
// land in the coordinates of the enclosing document.
package csslint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// CSS contexts carried in Diagnostic.Context.
const (
	ContextRule  = "css-rule"
	ContextValue = "css-value"
)

// atRuleKeywords are keywords that must carry an '@' prefix when they open
// a block or statement.
var atRuleKeywords = map[string]bool{
	"media":     true,
	"keyframes": true,
	"font-face": true,
	"import":    true,
	"container": true,
	"supports":  true,
	"layer":     true,
	"page":      true,
}

// bareAtRuleRe finds a keyword in statement position (start of text, or
// after '}' or ';') followed eventually by an opening brace, with no '@'.
var bareAtRuleRe = regexp.MustCompile(
	`(?m)(^|[};])\s*(media|keyframes|font-face|import|container|supports|layer|page)\b[^{};]*\{`)

// Lint validates css and returns diagnostics with offsets shifted by base.
func Lint(css string, base int) []span.Diagnostic {
	masked, diags := maskComments(css)

	diags = append(diags, lintAtRules(masked)...)

	opens, braceDiags := lintBraces(masked)
	diags = append(diags, braceDiags...)

	for _, body := range leafBodies(masked, opens) {
		diags = append(diags, LintDeclarations(masked[body.Start:body.End], body.Start, ContextRule)...)
	}

	shift(diags, base)
	return diags
}

// lintAtRules reports statement-position at-rule keywords missing their '@'.
func lintAtRules(masked string) []span.Diagnostic {
	var diags []span.Diagnostic
	for _, loc := range bareAtRuleRe.FindAllStringSubmatchIndex(masked, -1) {
		start, end := loc[4], loc[5]
		diags = append(diags, span.Diagnostic{
			Start:   start,
			End:     end,
			Kind:    span.KindMalformedTag,
			Context: "@" + masked[start:end],
		})
	}
	return diags
}

// lintBraces validates brace balance with an explicit stack of open-brace
// offsets. It returns the matched pairs for declaration linting plus the
// diagnostics for unmatched braces, most recently opened first.
func lintBraces(masked string) ([]span.Range, []span.Diagnostic) {
	var stack []int
	var pairs []span.Range
	var diags []span.Diagnostic

	for i := 0; i < len(masked); i++ {
		switch masked[i] {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				diags = append(diags, span.Diagnostic{
					Start:   i,
					End:     i + 1,
					Kind:    span.KindRedundantBrace,
					Context: ContextRule,
				})
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, span.Range{Start: open, End: i + 1})
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		diags = append(diags, span.Diagnostic{
			Start:   stack[i],
			End:     stack[i] + 1,
			Kind:    span.KindUnclosedBrace,
			Context: ContextRule,
		})
	}

	return pairs, diags
}

// leafBodies returns the inner ranges of balanced blocks that contain no
// nested opening brace. Only leaf blocks hold declaration lists; outer
// blocks (such as @media wrappers) hold more rules.
func leafBodies(masked string, pairs []span.Range) []span.Range {
	var leaves []span.Range
	for _, p := range pairs {
		inner := span.Range{Start: p.Start + 1, End: p.End - 1}
		if inner.Start > inner.End {
			continue
		}
		if !strings.ContainsRune(masked[inner.Start:inner.End], '{') {
			leaves = append(leaves, inner)
		}
	}
	return leaves
}

func shift(diags []span.Diagnostic, base int) {
	for i := range diags {
		diags[i].Start += base
		diags[i].End += base
	}
}
