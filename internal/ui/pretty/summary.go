package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goweave/pkg/runner"
	"github.com/yaklabco/goweave/pkg/span"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 issues (3 errors, 2 warnings) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	issueWord := "issues"
	if stats.FindingsTotal == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors := stats.FindingsBySeverity[span.SeverityError.String()]; errors > 0 {
		word := "errors"
		if errors == 1 {
			word = "error"
		}
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", errors, word)))
	}
	if warnings := stats.FindingsBySeverity[span.SeverityWarning.String()]; warnings > 0 {
		word := "warnings"
		if warnings == 1 {
			word = "warning"
		}
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, word)))
	}

	counts := fmt.Sprintf("%d %s", stats.FindingsTotal, issueWord)
	if len(severityParts) > 0 {
		counts += " (" + strings.Join(severityParts, ", ") + ")"
	}

	fileWord := "files"
	if stats.FilesWithIssues == 1 {
		fileWord = "file"
	}

	line := fmt.Sprintf("%s in %d %s", counts, stats.FilesWithIssues, fileWord)
	if stats.FilesErrored > 0 {
		line += s.Failure.Render(fmt.Sprintf(", %d files errored", stats.FilesErrored))
	}
	return line + "\n"
}
