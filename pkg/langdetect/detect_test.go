package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPath_Extensions(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"README.md", KindMarkdown},
		{"notes.markdown", KindMarkdown},
		{"theme.css", KindCSS},
		{"doc.MD", KindMarkdown},
		{"STYLE.CSS", KindCSS},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPath(tt.path, nil))
		})
	}
}

func TestDetect_Content(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Kind
	}{
		{"empty is markdown", "", KindMarkdown},
		{"heading is markdown", "# Title\n\nBody text.\n", KindMarkdown},
		{"prose is markdown", "Just a paragraph of text.\n", KindMarkdown},
		{"selector block is css", ".hero { color: red; }\n", KindCSS},
		{"id selector is css", "#main { margin: 0; }\n", KindCSS},
		{"leading comment is css", "/* theme */\n.a { color: red; }\n", KindCSS},
		{"element selector is css", "body { margin: 0; }\n", KindCSS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.content)))
		})
	}
}

func TestDetectPath_UnknownExtensionFallsBack(t *testing.T) {
	assert.Equal(t, KindCSS, DetectPath("theme.txt", []byte(".a { color: red; }")))
	assert.Equal(t, KindMarkdown, DetectPath("notes", []byte("# Title\n")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "markdown", KindMarkdown.String())
	assert.Equal(t, "css", KindCSS.String())
}
