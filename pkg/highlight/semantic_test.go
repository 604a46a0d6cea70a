package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/pkg/mdast"
	"github.com/yaklabco/goweave/pkg/span"
)

func rangedNode(kind mdast.NodeKind, start, end int) *mdast.Node {
	n := mdast.NewNode(kind)
	n.Start, n.End = start, end
	return n
}

func TestSemantic_BasicNodes(t *testing.T) {
	text := "# Title\n\nsome *emphasis* here\n"
	doc := rangedNode(mdast.NodeDocument, 0, len(text))

	heading := rangedNode(mdast.NodeHeading, 0, 7)
	heading.Level = 1
	mdast.AppendChild(doc, heading)

	para := rangedNode(mdast.NodeParagraph, 9, 29)
	mdast.AppendChild(doc, para)
	mdast.AppendChild(para, rangedNode(mdast.NodeEmphasis, 14, 24))

	got := Semantic(text, doc)

	want := []span.StyledSpan{
		{Style: span.StyleHeading, Start: 0, End: 7},
		{Style: span.StyleEmphasis, Start: 14, End: 24},
	}
	assert.Equal(t, want, got)
}

func TestSemantic_SkipsUnrangedNodes(t *testing.T) {
	doc := rangedNode(mdast.NodeDocument, 0, 10)
	mdast.AppendChild(doc, mdast.NewNode(mdast.NodeThematicBreak))

	assert.Empty(t, Semantic("0123456789", doc))
}

func TestSemantic_TableDelimiterRow(t *testing.T) {
	text := "| a | b |\n| - | - |\n| 1 | 2 |\n"
	doc := rangedNode(mdast.NodeDocument, 0, len(text))
	mdast.AppendChild(doc, rangedNode(mdast.NodeTable, 0, 29))

	got := Semantic(text, doc)
	require.Len(t, got, 2)

	assert.Equal(t, span.StyleTable, got[0].Style)
	assert.Equal(t, span.StyleTableDelimiter, got[1].Style)
	assert.Equal(t, "| - | - |", text[got[1].Start:got[1].End])
}

func TestSemantic_NilDocument(t *testing.T) {
	assert.Nil(t, Semantic("anything", nil))
}
