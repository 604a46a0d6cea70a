package htmllint

import (
	"strings"

	"github.com/yaklabco/goweave/pkg/span"
)

// lintHierarchy tokenizes tags and validates nesting with a stack, running
// the attribute checks on every tag as it streams past.
func lintHierarchy(shielded string) []span.Diagnostic {
	var diags []span.Diagnostic
	var stack []tagAnchor

	comments := commentRe.FindAllStringIndex(shielded, -1)

	for _, loc := range tagRe.FindAllStringSubmatchIndex(shielded, -1) {
		start, end := loc[0], loc[1]
		closing := loc[3] > loc[2]
		name := strings.ToLower(shielded[loc[4]:loc[5]])
		attrStart, attrEnd := loc[6], loc[7]
		selfClosed := loc[9] > loc[8]

		if strings.HasPrefix(shielded[attrStart:attrEnd], ":") {
			continue // autolink
		}
		if insideRanges(comments, start) {
			continue
		}

		diags = append(diags, lintAttributes(shielded[attrStart:attrEnd], attrStart, name)...)

		switch {
		case closing:
			matched := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == name {
					matched = i
					break
				}
			}
			if matched < 0 {
				diags = append(diags, span.Diagnostic{
					Start:   start,
					End:     end,
					Kind:    span.KindRedundantClosing,
					Context: name,
				})
				continue
			}
			// Everything above the match never closed; report each
			// orphaned frame individually.
			for i := len(stack) - 1; i > matched; i-- {
				diags = append(diags, span.Diagnostic{
					Start:   stack[i].start,
					End:     stack[i].end,
					Kind:    span.KindUnclosedOpening,
					Context: stack[i].name,
				})
			}
			stack = stack[:matched]

		case selfClosed || voidElements[name]:
			// Never affects the stack.

		default:
			stack = append(stack, tagAnchor{name: name, start: start, end: end})
		}
	}

	// Whatever is still open at end of document never closed.
	for i := len(stack) - 1; i >= 0; i-- {
		diags = append(diags, span.Diagnostic{
			Start:   stack[i].start,
			End:     stack[i].end,
			Kind:    span.KindUnclosedOpening,
			Context: stack[i].name,
		})
	}

	return diags
}

// insideRanges reports whether offset falls within any of the sorted
// [start, end) index pairs.
func insideRanges(ranges [][]int, offset int) bool {
	for _, loc := range ranges {
		if offset >= loc[0] && offset < loc[1] {
			return true
		}
		if loc[0] > offset {
			break
		}
	}
	return false
}
