package goldmark

import (
	"context"
	"strings"
	"testing"

	"github.com/yaklabco/goweave/pkg/mdast"
)

// collect returns every node of the given kind in document order.
func collect(root *mdast.Node, kind mdast.NodeKind) []*mdast.Node {
	var out []*mdast.Node
	_ = mdast.Walk(root, func(n *mdast.Node) error {
		if n.Kind == kind {
			out = append(out, n)
		}
		return nil
	})
	return out
}

// rangeText slices the source text a node's range covers.
func rangeText(content string, n *mdast.Node) string {
	if !n.HasRange() {
		return ""
	}
	return content[n.Start:n.End]
}

func TestParser_Parse_Basic(t *testing.T) {
	parser := New()
	content := "# Hello\n\nWorld\n"

	root, err := parser.Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root == nil {
		t.Fatal("expected non-nil root")
	}
	if root.Kind != mdast.NodeDocument {
		t.Errorf("root kind = %v, want NodeDocument", root.Kind)
	}
	if root.Start != 0 || root.End != len(content) {
		t.Errorf("root range = [%d, %d), want [0, %d)", root.Start, root.End, len(content))
	}
	if !root.HasChildren() {
		t.Error("expected root to have children")
	}
}

func TestParser_Parse_Cancelled(t *testing.T) {
	parser := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := parser.Parse(ctx, []byte("# x")); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestParser_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    mdast.NodeKind
		want    string
	}{
		{"atx heading", "# Title\n\nbody\n", mdast.NodeHeading, "# Title"},
		{"setext heading", "Title\n=====\n\nbody\n", mdast.NodeHeading, "Title\n====="},
		{"emphasis includes markers", "a *b* c\n", mdast.NodeEmphasis, "*b*"},
		{"strong includes markers", "a **b** c\n", mdast.NodeStrong, "**b**"},
		{"underscore emphasis", "a _b_ c\n", mdast.NodeEmphasis, "_b_"},
		{"strikethrough", "a ~~gone~~ c\n", mdast.NodeStrikethrough, "~~gone~~"},
		{"code span includes backticks", "use `x` here\n", mdast.NodeCodeSpan, "`x`"},
		{"fenced block includes fences", "```go\ncode\n```\n", mdast.NodeCodeBlock, "```go\ncode\n```"},
		{"link includes label and url", "see [label](url) now\n", mdast.NodeLink, "[label](url)"},
		{"image includes bang", "![alt](img.png)\n", mdast.NodeImage, "![alt](img.png)"},
		{"list item includes marker", "- one\n- two\n", mdast.NodeListItem, "- one"},
		{"blockquote includes marker", "> quoted\n", mdast.NodeBlockquote, "> quoted"},
	}

	parser := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parser.Parse(context.Background(), []byte(tt.content))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			nodes := collect(root, tt.kind)
			if len(nodes) == 0 {
				t.Fatalf("no %v node found", tt.kind)
			}
			if got := rangeText(tt.content, nodes[0]); got != tt.want {
				t.Errorf("range text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParser_HeadingLevels(t *testing.T) {
	content := "# One\n\n## Two\n\n### Three\n"
	root, err := New().Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	headings := collect(root, mdast.NodeHeading)
	if len(headings) != 3 {
		t.Fatalf("got %d headings, want 3", len(headings))
	}
	for i, want := range []int{1, 2, 3} {
		if headings[i].Level != want {
			t.Errorf("heading %d level = %d, want %d", i, headings[i].Level, want)
		}
	}
}

func TestParser_ThematicBreak(t *testing.T) {
	content := "above\n\n---\n\nbelow\n"
	root, err := New().Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	breaks := collect(root, mdast.NodeThematicBreak)
	if len(breaks) != 1 {
		t.Fatalf("got %d thematic breaks, want 1", len(breaks))
	}
	if !breaks[0].HasRange() {
		t.Fatal("thematic break has no range")
	}
	if got := strings.TrimSpace(rangeText(content, breaks[0])); got != "---" {
		t.Errorf("range text = %q, want %q", got, "---")
	}
}

func TestParser_Table(t *testing.T) {
	content := "| left | right |\n| ---- | ----- |\n| a    | b     |\n"
	root, err := New().Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tables := collect(root, mdast.NodeTable)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if !tables[0].HasRange() {
		t.Fatal("table has no range")
	}
	if got := rangeText(content, tables[0]); !strings.Contains(got, "left") {
		t.Errorf("table range text %q does not cover header", got)
	}

	cells := collect(root, mdast.NodeTableCell)
	if len(cells) != 4 {
		t.Errorf("got %d cells, want 4", len(cells))
	}
}

func TestParser_HTMLBlock(t *testing.T) {
	content := "<div>\ninner\n</div>\n"
	root, err := New().Parse(context.Background(), []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	blocks := collect(root, mdast.NodeHTMLBlock)
	if len(blocks) != 1 {
		t.Fatalf("got %d HTML blocks, want 1", len(blocks))
	}
	got := rangeText(content, blocks[0])
	if !strings.Contains(got, "<div>") || !strings.Contains(got, "</div>") {
		t.Errorf("HTML block range text = %q, want both tags covered", got)
	}
}
