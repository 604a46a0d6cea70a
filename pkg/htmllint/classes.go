package htmllint

import (
	"regexp"

	"github.com/yaklabco/goweave/pkg/span"
)

// classAttrRe locates complete, quoted class attribute values.
var classAttrRe = regexp.MustCompile(`(?i)\bclass\s*=\s*("([^"]*)"|'([^']*)')`)

// LintClasses scans every class attribute in the shielded text and reports
// tokens missing from the known-class inventory, positioned at the exact
// substring inside the attribute value. A nil inventory disables the check
// entirely; an empty one flags every class.
func LintClasses(shielded string, known map[string]struct{}) []span.Diagnostic {
	if known == nil {
		return nil
	}

	var diags []span.Diagnostic
	for _, loc := range classAttrRe.FindAllStringSubmatchIndex(shielded, -1) {
		vStart, vEnd := loc[4], loc[5]
		if vStart < 0 {
			vStart, vEnd = loc[6], loc[7]
		}
		diags = append(diags, lintClassValue(shielded[vStart:vEnd], vStart, known)...)
	}
	return diags
}

// lintClassValue splits a class attribute value on whitespace and checks
// each token against the inventory.
func lintClassValue(value string, base int, known map[string]struct{}) []span.Diagnostic {
	var diags []span.Diagnostic

	i := 0
	for i < len(value) {
		if isSpace(value[i]) {
			i++
			continue
		}
		j := i
		for j < len(value) && !isSpace(value[j]) {
			j++
		}
		token := value[i:j]
		if _, ok := known[token]; !ok {
			diags = append(diags, span.Diagnostic{
				Start:   base + i,
				End:     base + j,
				Kind:    span.KindMissingCssClass,
				Context: token,
			})
		}
		i = j
	}

	return diags
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
