// Package highlight turns an analyzed document into styled spans: a
// semantic pass over the Markdown tree, regex overlay extractors for
// everything the tree does not describe, and a combiner that resolves all
// of it into one ordered, non-overlapping span sequence.
package highlight

import (
	"regexp"

	"github.com/yaklabco/goweave/pkg/mdast"
	"github.com/yaklabco/goweave/pkg/span"
)

// nodeStyles maps Markdown node kinds onto style tags. Kinds absent here
// produce no span of their own; their children still do.
var nodeStyles = map[mdast.NodeKind]span.StyleTag{
	mdast.NodeHeading:       span.StyleHeading,
	mdast.NodeEmphasis:      span.StyleEmphasis,
	mdast.NodeStrong:        span.StyleStrong,
	mdast.NodeStrikethrough: span.StyleStrikethrough,
	mdast.NodeCodeSpan:      span.StyleCodeSpan,
	mdast.NodeCodeBlock:     span.StyleCodeBlock,
	mdast.NodeListItem:      span.StyleList,
	mdast.NodeBlockquote:    span.StyleBlockquote,
	mdast.NodeThematicBreak: span.StyleThematicBreak,
	mdast.NodeLink:          span.StyleLink,
	mdast.NodeImage:         span.StyleImage,
	mdast.NodeTable:         span.StyleTable,
}

var tableDelimiterRe = regexp.MustCompile(`(?m)^[ \t]*\|?[-:| \t]*-[-:| \t]*\|?[ \t]*\r?$`)

// Semantic walks the document tree and emits one styled span per styled
// node. Table nodes additionally yield a delimiter-row span so the header
// separator can render distinctly.
func Semantic(text string, doc *mdast.Node) []span.StyledSpan {
	if doc == nil {
		return nil
	}

	var spans []span.StyledSpan
	_ = mdast.Walk(doc, func(n *mdast.Node) error {
		if !n.HasRange() || n.Start >= n.End {
			return nil
		}
		style, ok := nodeStyles[n.Kind]
		if !ok {
			return nil
		}
		spans = append(spans, span.StyledSpan{Style: style, Start: n.Start, End: n.End})

		if n.Kind == mdast.NodeTable {
			if d := tableDelimiterRow(text, n.Start, n.End); d != nil {
				spans = append(spans, *d)
			}
		}
		return nil
	})
	return spans
}

// tableDelimiterRow finds the header separator line inside a table range.
// The separator is not a node of its own, so it is located by pattern.
func tableDelimiterRow(text string, start, end int) *span.StyledSpan {
	if start < 0 || end > len(text) || start >= end {
		return nil
	}
	loc := tableDelimiterRe.FindStringIndex(text[start:end])
	if loc == nil {
		return nil
	}
	return &span.StyledSpan{
		Style: span.StyleTableDelimiter,
		Start: start + loc[0],
		End:   start + loc[1],
	}
}
