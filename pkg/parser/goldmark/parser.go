// Package goldmark parses Markdown with the goldmark library and maps the
// result onto the mdast node tree, filling in the byte ranges the
// highlighter needs. GFM extensions are enabled so tables and
// strikethrough carry ranges too.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/goweave/pkg/mdast"
)

// Parser implements Markdown parsing for the analysis engine.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new goldmark-based parser with GFM extensions.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
		),
	}
}

// Parse converts raw Markdown into a fully-ranged mdast tree.
// Returns nil and an error only when the context is cancelled; malformed
// input always produces a tree, because the engine must never fail a
// document.
func (p *Parser) Parse(ctx context.Context, content []byte) (*mdast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(content)
	doc := m.mapDocument(gmDoc)
	return doc, nil
}
