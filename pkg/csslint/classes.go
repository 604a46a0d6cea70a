package csslint

import "regexp"

var classNameRe = regexp.MustCompile(`\.([A-Za-z_][A-Za-z0-9_-]*)`)

// Classes extracts the class names defined by selectors in css, in order
// of first appearance. It feeds the missing-class check for documents with
// a live <style> block and backs the standalone class inventory query.
func Classes(css string) []string {
	masked, _ := maskComments(css)

	var out []string
	seen := make(map[string]bool)
	for _, chunk := range selectorChunks(masked) {
		for _, m := range classNameRe.FindAllStringSubmatch(masked[chunk.Start:chunk.End], -1) {
			name := m[1]
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
