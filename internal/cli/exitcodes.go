package cli

import "github.com/yaklabco/goweave/pkg/runner"

// Exit codes for goweave.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates the run completed but found issues.
	ExitIssues = 1

	// ExitUsage indicates invalid command-line usage, configuration
	// errors or internal failures.
	ExitUsage = 2
)

// ExitCodeFromResult determines the exit code based on result and strict
// mode. Without strict, only error-severity findings fail the run.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitIssues
	}
	if strict && result.HasIssues() {
		return ExitIssues
	}
	return ExitSuccess
}
