package goldmark

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/goweave/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree with byte ranges.
type mapper struct {
	content []byte
}

func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewNode(mdast.NodeDocument)
	doc.Start, doc.End = 0, len(m.content)
	m.mapChildren(gmDoc, doc)
	m.fillGaps(doc)
	return doc
}

// mapChildren recursively maps all children of a goldmark node.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			mdast.AppendChild(parent, node)
		}
	}
}

// mapNode converts a single goldmark node, assigns its base range from
// goldmark segments, maps its children, and then widens the range to cover
// the node's syntax markers.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	kind, ok := nodeKind(gmNode)
	if !ok {
		return nil
	}

	node := mdast.NewNode(kind)
	if h, isHeading := gmNode.(*ast.Heading); isHeading {
		node.Level = h.Level
	}

	m.assignBaseRange(gmNode, node)
	m.mapChildren(gmNode, node)

	if !node.HasRange() {
		unionChildren(node)
	}
	m.widen(gmNode, node)

	return node
}

// nodeKind maps goldmark node types onto mdast kinds. Unrecognized nodes
// are dropped; their children do not matter to the highlighter.
func nodeKind(gmNode ast.Node) (mdast.NodeKind, bool) {
	switch gmn := gmNode.(type) {
	case *ast.Paragraph:
		return mdast.NodeParagraph, true
	case *ast.Heading:
		return mdast.NodeHeading, true
	case *ast.List:
		return mdast.NodeList, true
	case *ast.ListItem:
		return mdast.NodeListItem, true
	case *ast.Blockquote:
		return mdast.NodeBlockquote, true
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return mdast.NodeCodeBlock, true
	case *ast.ThematicBreak:
		return mdast.NodeThematicBreak, true
	case *ast.HTMLBlock:
		return mdast.NodeHTMLBlock, true
	case *ast.Text:
		return mdast.NodeText, true
	case *ast.Emphasis:
		if gmn.Level >= 2 {
			return mdast.NodeStrong, true
		}
		return mdast.NodeEmphasis, true
	case *east.Strikethrough:
		return mdast.NodeStrikethrough, true
	case *ast.CodeSpan:
		return mdast.NodeCodeSpan, true
	case *ast.Link:
		return mdast.NodeLink, true
	case *ast.Image:
		return mdast.NodeImage, true
	case *ast.RawHTML:
		return mdast.NodeHTMLInline, true
	case *east.Table:
		return mdast.NodeTable, true
	case *east.TableHeader, *east.TableRow:
		return mdast.NodeTableRow, true
	case *east.TableCell:
		return mdast.NodeTableCell, true
	default:
		return 0, false
	}
}

// assignBaseRange sets the node range straight from goldmark segments
// where they exist: block lines, text segments, raw HTML segments.
func (m *mapper) assignBaseRange(gmNode ast.Node, node *mdast.Node) {
	switch gmn := gmNode.(type) {
	case *ast.Text:
		node.Start, node.End = gmn.Segment.Start, gmn.Segment.Stop
	case *ast.RawHTML:
		if gmn.Segments.Len() > 0 {
			node.Start = gmn.Segments.At(0).Start
			node.End = gmn.Segments.At(gmn.Segments.Len() - 1).Stop
		}
	default:
		if gmNode.Type() == ast.TypeBlock {
			lines := gmNode.Lines()
			if lines != nil && lines.Len() > 0 {
				node.Start = lines.At(0).Start
				node.End = lines.At(lines.Len() - 1).Stop
			}
		}
	}

	// Normalize: segment stops may include the line break.
	for node.End > node.Start &&
		(m.content[node.End-1] == '\n' || m.content[node.End-1] == '\r') {
		node.End--
	}
}

// unionChildren sets a parent's range to the union of its ranged children.
func unionChildren(node *mdast.Node) {
	for child := node.FirstChild; child != nil; child = child.Next {
		if !child.HasRange() {
			continue
		}
		if node.Start < 0 || child.Start < node.Start {
			node.Start = child.Start
		}
		if child.End > node.End {
			node.End = child.End
		}
	}
}

// fillGaps assigns ranges to marker-only nodes (thematic breaks, empty
// blocks) from the source text between their ranged neighbors.
func (m *mapper) fillGaps(doc *mdast.Node) {
	_ = mdast.Walk(doc, func(n *mdast.Node) error {
		for child := n.FirstChild; child != nil; child = child.Next {
			if !child.HasRange() {
				m.fillFromNeighbors(n, child)
			}
		}
		return nil
	})
}

// fillFromNeighbors locates the first non-blank line in the gap between a
// node's ranged siblings and uses its full line as the range.
func (m *mapper) fillFromNeighbors(parent, node *mdast.Node) {
	gapStart := parent.Start
	for prev := node.Prev; prev != nil; prev = prev.Prev {
		if prev.HasRange() {
			gapStart = prev.End
			break
		}
	}
	gapEnd := parent.End
	for next := node.Next; next != nil; next = next.Next {
		if next.HasRange() {
			gapEnd = next.Start
			break
		}
	}
	if gapStart < 0 || gapEnd > len(m.content) || gapStart >= gapEnd {
		return
	}

	start := gapStart
	for start < gapEnd {
		lineEnd := start
		for lineEnd < gapEnd && m.content[lineEnd] != '\n' {
			lineEnd++
		}
		if !blank(m.content[start:lineEnd]) {
			node.Start, node.End = start, lineEnd
			return
		}
		start = lineEnd + 1
	}
}

func blank(line []byte) bool {
	for _, b := range line {
		if b != ' ' && b != '\t' && b != '\r' {
			return false
		}
	}
	return true
}
