// Package span defines the data model shared by the goweave linters and the
// highlighter: byte-offset ranges, styled spans with explicit priorities, and
// structural diagnostics with a closed error-kind enumeration.
package span

// Range is a half-open [Start, End) byte range over the original document text.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Covers returns true if the other range lies entirely within this one.
func (r Range) Covers(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// StyleTag classifies a styled span. The set is closed: the combiner resolves
// overlaps by numeric priority, so tags must never be invented from strings.
type StyleTag uint8

// Style tags, grouped by namespace. Ordering within a namespace is not
// significant; priority is assigned explicitly by Priority.
const (
	StyleNone StyleTag = iota

	// Markdown semantic spans (from the AST walk).
	StyleHeading
	StyleEmphasis
	StyleStrong
	StyleStrikethrough
	StyleCodeSpan
	StyleCodeBlock
	StyleList
	StyleBlockquote
	StyleThematicBreak
	StyleLink
	StyleImage

	// HTML overlay spans.
	StyleHTMLTag
	StyleHTMLAttribute
	StyleHTMLComment

	// Table spans (GFM).
	StyleTable
	StyleTableDelimiter

	// YAML frontmatter spans.
	StyleYAMLDelimiter
	StyleYAMLKey
	StyleYAMLValue
	StyleYAMLComment

	// CSS spans (style blocks and standalone CSS buffers).
	StyleCSSSelector
	StyleCSSAtRule
	StyleCSSProperty
	StyleCSSValue
	StyleCSSComment

	// UI overlays.
	StylePlaceholder
	StyleEmoji
	StylePageBreak
	StyleSearchMatch
	StyleDesignOverlay

	// Lint channel. These never compete for the color slot; the combiner
	// carries at most one of them alongside the winning color tag.
	StyleLintError
	StyleLintWarning
)

// Namespace priorities. Higher wins the color contest.
const (
	priorityMarkdown    = 5
	priorityHTML        = 20
	priorityTable       = 25
	priorityYAML        = 30
	priorityYAMLComment = 35
	priorityCSS         = 40
	priorityPlaceholder = 50
	priorityEmoji       = 55
	priorityPageBreak   = 70
	priorityHTMLComment = 99
	prioritySearchMatch = 110
	priorityDesign      = 130
)

// Priority returns the combiner priority for this tag. Lint tags return 0:
// they are resolved on a separate channel and never occupy the color slot.
func (t StyleTag) Priority() uint8 {
	switch t {
	case StyleHeading, StyleEmphasis, StyleStrong, StyleStrikethrough,
		StyleCodeSpan, StyleCodeBlock, StyleList, StyleBlockquote,
		StyleThematicBreak, StyleLink, StyleImage:
		return priorityMarkdown
	case StyleHTMLTag, StyleHTMLAttribute:
		return priorityHTML
	case StyleTable, StyleTableDelimiter:
		return priorityTable
	case StyleYAMLDelimiter, StyleYAMLKey, StyleYAMLValue:
		return priorityYAML
	case StyleYAMLComment:
		return priorityYAMLComment
	case StyleCSSSelector, StyleCSSAtRule, StyleCSSProperty, StyleCSSValue,
		StyleCSSComment:
		return priorityCSS
	case StylePlaceholder:
		return priorityPlaceholder
	case StyleEmoji:
		return priorityEmoji
	case StylePageBreak:
		return priorityPageBreak
	case StyleHTMLComment:
		return priorityHTMLComment
	case StyleSearchMatch:
		return prioritySearchMatch
	case StyleDesignOverlay:
		return priorityDesign
	default:
		return 0
	}
}

// IsLint returns true for tags on the diagnostic underline channel.
func (t StyleTag) IsLint() bool {
	return t == StyleLintError || t == StyleLintWarning
}

var styleNames = map[StyleTag]string{
	StyleNone:           "none",
	StyleHeading:        "heading",
	StyleEmphasis:       "emphasis",
	StyleStrong:         "strong",
	StyleStrikethrough:  "strikethrough",
	StyleCodeSpan:       "code-span",
	StyleCodeBlock:      "code-block",
	StyleList:           "list",
	StyleBlockquote:     "blockquote",
	StyleThematicBreak:  "thematic-break",
	StyleLink:           "link",
	StyleImage:          "image",
	StyleHTMLTag:        "html-tag",
	StyleHTMLAttribute:  "html-attribute",
	StyleHTMLComment:    "html-comment",
	StyleTable:          "table",
	StyleTableDelimiter: "table-delimiter",
	StyleYAMLDelimiter:  "yaml-delimiter",
	StyleYAMLKey:        "yaml-key",
	StyleYAMLValue:      "yaml-value",
	StyleYAMLComment:    "yaml-comment",
	StyleCSSSelector:    "css-selector",
	StyleCSSAtRule:      "css-at-rule",
	StyleCSSProperty:    "css-property",
	StyleCSSValue:       "css-value",
	StyleCSSComment:     "css-comment",
	StylePlaceholder:    "placeholder",
	StyleEmoji:          "emoji",
	StylePageBreak:      "page-break",
	StyleSearchMatch:    "search-match",
	StyleDesignOverlay:  "design-overlay",
	StyleLintError:      "lint-error",
	StyleLintWarning:    "lint-warning",
}

// String returns the lowercase kebab-case tag name.
func (t StyleTag) String() string {
	if name, ok := styleNames[t]; ok {
		return name
	}
	return "unknown"
}

// StyledSpan is a half-open byte range tagged with a single style.
// The combiner guarantees the final output spans do not overlap.
type StyledSpan struct {
	Style StyleTag
	Start int
	End   int
}

// Range returns the span's byte range.
func (s StyledSpan) Range() Range {
	return Range{Start: s.Start, End: s.End}
}
