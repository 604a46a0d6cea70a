// Package mdast defines the offset-based Markdown node tree consumed by
// the highlighter. It is deliberately small: the analysis engine only
// needs node kinds and byte ranges, not a token stream. Editor hosts that
// carry their own CommonMark tree can map it onto these nodes directly;
// the bundled goldmark parser does the same.
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock
	NodeTable
	NodeTableRow
	NodeTableCell

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeStrikethrough
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeHTMLInline
)

// Node represents a single node in the Markdown AST.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Start and End are the byte range of the node's full construct in
	// the source, including syntax markers. Both are -1 when the range
	// is unknown.
	Start int
	End   int

	// Level is the heading level for NodeHeading, otherwise 0.
	Level int

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// NewNode creates a detached node of the given kind with an unknown range.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Start: -1, End: -1}
}

// HasRange returns true if the node has a known byte range.
func (n *Node) HasRange() bool {
	return n.Start >= 0 && n.End >= n.Start
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// AppendChild attaches child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}
