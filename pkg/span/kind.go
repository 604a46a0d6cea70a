package span

// ErrorKind identifies the structural problem a diagnostic reports.
// The set is closed and add-only; kinds are never inferred from strings.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota

	// Fences and verbatim regions.
	KindUnclosedCodeBlock

	// YAML frontmatter.
	KindMissingYamlEndDelimiter
	KindRedundantSemicolon

	// Shared between YAML key lines and CSS declarations; Context
	// distinguishes them for message rendering.
	KindMissingColon
	KindMissingSemicolon

	// CSS comments and braces.
	KindUnclosedComment
	KindRedundantCommentClosing
	KindUnclosedBrace
	KindRedundantBrace

	// CSS values.
	KindMalformedCssValue

	// HTML tags and hierarchy.
	KindMalformedTag
	KindUnclosedOpening
	KindRedundantClosing

	// HTML attributes.
	KindMissingEquals
	KindMalformedAttribute

	// Class inventory.
	KindMissingCssClass

	// Markdown links and images.
	KindMalformedImageTag
	KindUnclosedLinkParen
	KindUnclosedLinkBracket

	// CommonMark parsing quirk, raw-text heuristic.
	KindMissingBlankLine
)

var kindNames = map[ErrorKind]string{
	KindNone:                    "none",
	KindUnclosedCodeBlock:       "unclosed-code-block",
	KindMissingYamlEndDelimiter: "missing-yaml-end-delimiter",
	KindRedundantSemicolon:      "redundant-semicolon",
	KindMissingColon:            "missing-colon",
	KindMissingSemicolon:        "missing-semicolon",
	KindUnclosedComment:         "unclosed-comment",
	KindRedundantCommentClosing: "redundant-comment-closing",
	KindUnclosedBrace:           "unclosed-brace",
	KindRedundantBrace:          "redundant-brace",
	KindMalformedCssValue:       "malformed-css-value",
	KindMalformedTag:            "malformed-tag",
	KindUnclosedOpening:         "unclosed-opening-tag",
	KindRedundantClosing:        "redundant-closing-tag",
	KindMissingEquals:           "missing-equals",
	KindMalformedAttribute:      "malformed-attribute",
	KindMissingCssClass:         "missing-css-class",
	KindMalformedImageTag:       "malformed-image-tag",
	KindUnclosedLinkParen:       "unclosed-link-paren",
	KindUnclosedLinkBracket:     "unclosed-link-bracket",
	KindMissingBlankLine:        "missing-blank-line",
}

// String returns the stable machine-readable identifier for the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Severity indicates how a diagnostic should be rendered.
type Severity uint8

// Severity levels, ordered by increasing importance.
const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// DefaultSeverity returns the severity a kind carries unless the host
// configuration overrides it. Heuristic and inventory checks are warnings;
// everything structural is an error.
func (k ErrorKind) DefaultSeverity() Severity {
	switch k {
	case KindMissingBlankLine, KindMissingCssClass, KindRedundantSemicolon:
		return SeverityWarning
	default:
		return SeverityError
	}
}
