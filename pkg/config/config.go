// Package config defines core configuration types for goweave.
// These types are pure data structures; loading and flag plumbing live in
// the CLI layer.
package config

import (
	"fmt"

	"github.com/yaklabco/goweave/pkg/span"
)

// Severity overrides how a diagnostic kind is reported.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	// SeverityOff drops the diagnostic kind entirely.
	SeverityOff Severity = "off"
)

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityOff:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for goweave.
type Config struct {
	// KnownClasses lists CSS class names considered defined, in addition
	// to classes extracted from each document's own <style> blocks.
	KnownClasses []string `yaml:"known_classes"`

	// ClassCheck enables the missing-CSS-class check. When false the
	// engine receives a nil inventory and skips that check only.
	ClassCheck bool `yaml:"class_check"`

	// ReservedClasses merges the framework-reserved class names into the
	// inventory so templates do not flag them.
	ReservedClasses bool `yaml:"reserved_classes"`

	// Severity overrides per diagnostic kind, keyed by kind name
	// (e.g. "missing-blank-line: off").
	Severity map[string]Severity `yaml:"severity"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Spans includes styled spans in JSON output.
	Spans bool `yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ClassCheck:      true,
		ReservedClasses: true,
		Severity:        make(map[string]Severity),
		Format:          FormatText,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("invalid output format: %q", c.Format)
	}
	for kind, sev := range c.Severity {
		if !sev.IsValid() {
			return fmt.Errorf("invalid severity %q for kind %q", sev, kind)
		}
		if !knownKindName(kind) {
			return fmt.Errorf("unknown diagnostic kind: %q", kind)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	return nil
}

// SeverityFor resolves the reporting severity for a diagnostic kind,
// falling back to the kind's built-in default. The second return is false
// when the kind is switched off.
func (c *Config) SeverityFor(kind span.ErrorKind) (span.Severity, bool) {
	if c != nil {
		if sev, ok := c.Severity[kind.String()]; ok {
			switch sev {
			case SeverityOff:
				return 0, false
			case SeverityError:
				return span.SeverityError, true
			case SeverityWarning:
				return span.SeverityWarning, true
			}
		}
	}
	return kind.DefaultSeverity(), true
}

// Inventory builds the base class inventory from configuration. Returns
// nil when the class check is disabled, which disables it in the engine.
func (c *Config) Inventory() map[string]struct{} {
	if c == nil || !c.ClassCheck {
		return nil
	}
	inv := make(map[string]struct{}, len(c.KnownClasses))
	for _, name := range c.KnownClasses {
		inv[name] = struct{}{}
	}
	return inv
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.KnownClasses != nil {
		clone.KnownClasses = make([]string, len(c.KnownClasses))
		copy(clone.KnownClasses, c.KnownClasses)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}
	if c.Severity != nil {
		clone.Severity = make(map[string]Severity, len(c.Severity))
		for k, v := range c.Severity {
			clone.Severity[k] = v
		}
	}
	return &clone
}

// knownKindName reports whether name matches a diagnostic kind.
func knownKindName(name string) bool {
	for k := span.ErrorKind(1); ; k++ {
		s := k.String()
		if s == "unknown" {
			return false
		}
		if s == name {
			return true
		}
	}
}
