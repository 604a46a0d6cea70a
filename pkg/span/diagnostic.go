package span

import "fmt"

// Diagnostic represents a single structural issue found in a document.
// Offsets always index the original text, never a shielded copy.
type Diagnostic struct {
	// Start is the byte offset where the issue begins (inclusive).
	Start int

	// End is the byte offset where the issue ends (exclusive).
	End int

	// Kind identifies the structural problem.
	Kind ErrorKind

	// Context is a small free-form tag that parameterizes the rendered
	// message: an HTML tag name, a CSS context ("css-rule", "css-value"),
	// "yaml", or the offending class name. It carries no structure.
	Context string
}

// Range returns the diagnostic's byte range.
func (d Diagnostic) Range() Range {
	return Range{Start: d.Start, End: d.End}
}

// Severity returns the default severity for the diagnostic's kind.
func (d Diagnostic) Severity() Severity {
	return d.Kind.DefaultSeverity()
}

// Message renders the human-readable description for the diagnostic.
func (d Diagnostic) Message() string {
	return Message(d.Kind, d.Context)
}

// Message renders the human-readable description for a kind and context.
// It is the single source of truth for diagnostic wording: the UI renders
// these strings verbatim, so changes here are user-visible.
func Message(kind ErrorKind, context string) string {
	switch kind {
	case KindUnclosedCodeBlock:
		return "Code span or fence opened with backticks is never closed"
	case KindMissingYamlEndDelimiter:
		return "YAML frontmatter is missing its closing '---' delimiter"
	case KindRedundantSemicolon:
		if context == "yaml" {
			return "YAML value ends with a redundant ';'"
		}
		return "Redundant ';'"
	case KindMissingColon:
		if context == "yaml" {
			return "Expected 'key: value' but found no ':'"
		}
		return "CSS declaration is missing ':' between property and value"
	case KindMissingSemicolon:
		return "CSS declaration is missing its terminating ';'"
	case KindUnclosedComment:
		return "CSS comment '/*' is never closed"
	case KindRedundantCommentClosing:
		return "CSS comment closing '*/' has no matching '/*'"
	case KindUnclosedBrace:
		return "'{' is never closed"
	case KindRedundantBrace:
		return "'}' has no matching '{'"
	case KindMalformedCssValue:
		return "CSS value has unbalanced quotes around ','"
	case KindMalformedTag:
		if context != "" && context[0] == '@' {
			return fmt.Sprintf("At-rule '%s' is missing its '@' prefix", context[1:])
		}
		if context != "" {
			return fmt.Sprintf("Malformed tag '%s'", context)
		}
		return "Malformed tag: '<' does not start a valid tag"
	case KindUnclosedOpening:
		return fmt.Sprintf("Opening tag <%s> is never closed", context)
	case KindRedundantClosing:
		return fmt.Sprintf("Closing tag </%s> has no matching opening tag", context)
	case KindMissingEquals:
		return fmt.Sprintf("Attribute quote in <%s> is not preceded by '='", context)
	case KindMalformedAttribute:
		switch context {
		case "yaml":
			return "YAML value has unpaired quotes"
		case "css-value":
			return "CSS value has unpaired quotes"
		default:
			return fmt.Sprintf("Attribute in <%s> has unpaired quotes", context)
		}
	case KindMissingCssClass:
		return fmt.Sprintf("CSS class '%s' is not defined", context)
	case KindMalformedImageTag:
		return "Image tag '![' is missing its closing ']'"
	case KindUnclosedLinkParen:
		return "Link URL '](' is missing its closing ')'"
	case KindUnclosedLinkBracket:
		return "Link bracket '[' is missing its closing ']'"
	case KindMissingBlankLine:
		return fmt.Sprintf("HTML tag <%s> should be followed by a blank line", context)
	default:
		return "Unknown issue"
	}
}
