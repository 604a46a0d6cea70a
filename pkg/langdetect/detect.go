// Package langdetect routes buffers to the right analysis surface. It
// uses go-enry to classify content when the file extension gives no
// answer, so extensionless files still reach the correct linter.
package langdetect

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the analysis surface a buffer belongs to.
type Kind int

const (
	// KindMarkdown covers hybrid Markdown/HTML/YAML documents, the
	// full-pipeline surface. It is also the fallback.
	KindMarkdown Kind = iota
	// KindCSS covers pure-CSS buffers.
	KindCSS
)

func (k Kind) String() string {
	if k == KindCSS {
		return "css"
	}
	return "markdown"
}

// markdownExtensions and cssExtensions map lowercase file extensions to a
// surface without looking at content.
var (
	markdownExtensions = map[string]bool{".md": true, ".markdown": true, ".mdown": true}
	cssExtensions      = map[string]bool{".css": true}
)

var cssRuleRe = regexp.MustCompile(`(?s)^\s*(/\*.*?\*/\s*)*[.#]?[A-Za-z_@][\w-]*[^{}]*\{`)

// DetectPath classifies a file by extension, falling back to content
// classification for unknown extensions.
func DetectPath(path string, content []byte) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case markdownExtensions[ext]:
		return KindMarkdown
	case cssExtensions[ext]:
		return KindCSS
	}
	return Detect(content)
}

// Detect classifies content alone.
func Detect(content []byte) Kind {
	if len(content) == 0 {
		return KindMarkdown
	}

	trimmed := bytes.TrimSpace(content)

	// A buffer opening with a selector block is CSS regardless of what
	// the classifier thinks. "# " still means a Markdown heading.
	if cssRuleRe.Match(trimmed) && !bytes.HasPrefix(trimmed, []byte("# ")) {
		return KindCSS
	}

	if lang, safe := enry.GetLanguageByClassifier(content, []string{
		"Markdown", "CSS", "HTML",
	}); safe && lang == "CSS" {
		return KindCSS
	}

	return KindMarkdown
}
