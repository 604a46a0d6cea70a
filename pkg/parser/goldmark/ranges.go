package goldmark

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/goweave/pkg/mdast"
)

// widen grows a node's range to include the syntax markers goldmark keeps
// outside its segments: emphasis runs, code span backticks, heading
// prefixes, fence lines, link label and URL punctuation.
func (m *mapper) widen(gmNode ast.Node, node *mdast.Node) {
	if !node.HasRange() {
		return
	}

	switch gmn := gmNode.(type) {
	case *ast.Emphasis:
		m.extendRun(node, gmn.Level, '*', '_')
	case *east.Strikethrough:
		m.extendRun(node, 2, '~')
	case *ast.CodeSpan:
		m.extendRun(node, len(m.content), '`')
	case *ast.Heading:
		m.widenHeading(node)
	case *ast.FencedCodeBlock:
		m.widenFence(node)
	case *ast.Blockquote:
		node.Start = m.lineStart(node.Start)
	case *ast.ListItem:
		m.widenListItem(node)
	case *ast.Link:
		m.widenLink(node, false)
	case *ast.Image:
		m.widenLink(node, true)
	case *ast.HTMLBlock:
		if gmn.HasClosure() {
			stop := gmn.ClosureLine.Stop
			for stop > node.End &&
				(m.content[stop-1] == '\n' || m.content[stop-1] == '\r') {
				stop--
			}
			if stop > node.End {
				node.End = stop
			}
		}
	}
}

// extendRun grows the range outward over up to max marker characters.
func (m *mapper) extendRun(node *mdast.Node, max int, markers ...byte) {
	isMarker := func(b byte) bool {
		for _, c := range markers {
			if b == c {
				return true
			}
		}
		return false
	}
	for n := 0; n < max && node.Start > 0 && isMarker(m.content[node.Start-1]); n++ {
		node.Start--
	}
	for n := 0; n < max && node.End < len(m.content) && isMarker(m.content[node.End]); n++ {
		node.End++
	}
}

// widenHeading expands to full source lines, picking up the '#' prefix of
// ATX headings and the underline of setext headings.
func (m *mapper) widenHeading(node *mdast.Node) {
	node.Start = m.lineStart(node.Start)
	node.End = m.lineEnd(node.End)

	// A setext underline directly below belongs to the heading.
	next := m.nextLineStart(node.End)
	if next < len(m.content) {
		underEnd := m.lineEnd(next)
		if isSetextUnderline(m.content[next:underEnd]) {
			node.End = underEnd
		}
	}
}

// widenFence pulls the fence lines around a fenced block's content lines
// into the range.
func (m *mapper) widenFence(node *mdast.Node) {
	contentLine := m.lineStart(node.Start)
	if contentLine >= 2 {
		openStart := m.lineStart(contentLine - 2)
		if isFenceLine(m.content[openStart : contentLine-1]) {
			node.Start = openStart
		}
	}

	closeStart := m.nextLineStart(node.End)
	if closeStart < len(m.content) {
		closeEnd := m.lineEnd(closeStart)
		if isFenceLine(m.content[closeStart:closeEnd]) {
			node.End = closeEnd
		}
	}
}

// widenListItem walks back over the item's bullet or number marker.
func (m *mapper) widenListItem(node *mdast.Node) {
	lineStart := m.lineStart(node.Start)
	i := node.Start
	for i > lineStart && isSpaceOrTab(m.content[i-1]) {
		i--
	}
	for i > lineStart && isListMarkerByte(m.content[i-1]) {
		i--
	}
	node.Start = i
}

// widenLink pulls in the '[' (and '!' for images) before the label and the
// '](url)' or '[ref]' tail after it. The tail never crosses a line break.
func (m *mapper) widenLink(node *mdast.Node, image bool) {
	if node.Start > 0 && m.content[node.Start-1] == '[' {
		node.Start--
		if image && node.Start > 0 && m.content[node.Start-1] == '!' {
			node.Start--
		}
	}

	end := node.End
	if end < len(m.content) && m.content[end] == ']' {
		end++
		if end < len(m.content) && (m.content[end] == '(' || m.content[end] == '[') {
			want := byte(')')
			if m.content[end] == '[' {
				want = ']'
			}
			for i := end + 1; i < len(m.content); i++ {
				if m.content[i] == '\n' {
					break
				}
				if m.content[i] == want {
					end = i + 1
					break
				}
			}
		}
		node.End = end
	}
}

func (m *mapper) lineStart(offset int) int {
	i := offset
	for i > 0 && m.content[i-1] != '\n' {
		i--
	}
	return i
}

func (m *mapper) nextLineStart(offset int) int {
	i := offset
	for i < len(m.content) && m.content[i] != '\n' {
		i++
	}
	if i < len(m.content) {
		i++
	}
	return i
}

func (m *mapper) lineEnd(offset int) int {
	i := offset
	for i < len(m.content) && m.content[i] != '\n' {
		i++
	}
	if i > offset && m.content[i-1] == '\r' {
		i--
	}
	return i
}

func isFenceLine(line []byte) bool {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i < len(line) && (line[i] == '`' || line[i] == '~')
}

func isSetextUnderline(line []byte) bool {
	seen := false
	for _, b := range line {
		switch b {
		case '=', '-':
			seen = true
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return seen
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func isListMarkerByte(b byte) bool {
	return b == '-' || b == '*' || b == '+' || b == '.' || b == ')' ||
		(b >= '0' && b <= '9')
}
