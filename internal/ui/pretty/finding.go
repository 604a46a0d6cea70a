package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goweave/pkg/runner"
	"github.com/yaklabco/goweave/pkg/span"
)

// FormatFinding formats a single finding for terminal output:
//
//	path:line:col  severity  message  (Kind)
//	        source line
//	        ^^^^
func (s *Styles) FormatFinding(path string, f runner.Finding, sourceLine string) string {
	var b strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path), f.Line, f.Col)

	b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(f.Severity),
		s.Message.Render(f.Message),
		s.Kind.Render("("+f.Diagnostic.Kind.String()+")"),
	))

	if sourceLine != "" {
		b.WriteString(s.FormatSourceContext(sourceLine, f.Col, f.Diagnostic.End-f.Diagnostic.Start))
	}

	return b.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev span.Severity) string {
	if sev == span.SeverityError {
		return s.Error.Render("error")
	}
	return s.Warning.Render("warning")
}

// FormatSourceContext formats the source line with a caret run under the
// offending range.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	const indent = "        "

	var b strings.Builder
	b.WriteString(indent + s.SourceLine.Render(strings.TrimRight(line, "\r\n")) + "\n")

	if column < 1 {
		column = 1
	}
	if width < 1 {
		width = 1
	}
	// Cap the caret run at the visible line end.
	if max := len(line) - column + 1; width > max && max > 0 {
		width = max
	}
	b.WriteString(indent + strings.Repeat(" ", column-1) +
		s.Caret.Render(strings.Repeat("^", width)) + "\n")

	return b.String()
}
