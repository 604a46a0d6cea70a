package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/goweave/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// ShowContext includes the source line under each finding.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// ShowSpans includes styled spans in JSON output.
	ShowSpans bool

	// Compact uses minified JSON output.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}

// relPath makes a path relative to the working directory when possible.
func (o Options) relPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := relativize(o.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}
