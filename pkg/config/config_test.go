package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/pkg/span"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.ClassCheck)
	assert.True(t, cfg.ReservedClasses)
	assert.Equal(t, FormatText, cfg.Format)
	assert.NotNil(t, cfg.Severity)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"json format", func(c *Config) { c.Format = FormatJSON }, false},
		{"bad format", func(c *Config) { c.Format = "xml" }, true},
		{"severity override", func(c *Config) {
			c.Severity["missing-blank-line"] = SeverityOff
		}, false},
		{"bad severity value", func(c *Config) {
			c.Severity["missing-colon"] = "fatal"
		}, true},
		{"unknown kind name", func(c *Config) {
			c.Severity["NoSuchKind"] = SeverityError
		}, true},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeverityFor(t *testing.T) {
	cfg := NewConfig()
	cfg.Severity["missing-blank-line"] = SeverityOff
	cfg.Severity["redundant-semicolon"] = SeverityError

	_, enabled := cfg.SeverityFor(span.KindMissingBlankLine)
	assert.False(t, enabled)

	sev, enabled := cfg.SeverityFor(span.KindRedundantSemicolon)
	assert.True(t, enabled)
	assert.Equal(t, span.SeverityError, sev)

	// Unconfigured kinds fall back to their built-in default.
	sev, enabled = cfg.SeverityFor(span.KindMalformedTag)
	assert.True(t, enabled)
	assert.Equal(t, span.SeverityError, sev)
}

func TestInventory(t *testing.T) {
	cfg := NewConfig()
	cfg.KnownClasses = []string{"hero", "card"}

	inv := cfg.Inventory()
	require.NotNil(t, inv)
	assert.Contains(t, inv, "hero")
	assert.Contains(t, inv, "card")

	cfg.ClassCheck = false
	assert.Nil(t, cfg.Inventory())
}

func TestClone(t *testing.T) {
	cfg := NewConfig()
	cfg.KnownClasses = []string{"hero"}
	cfg.Ignore = []string{"vendor/**"}
	cfg.Severity["missing-colon"] = SeverityWarning

	clone := cfg.Clone()
	require.NotNil(t, clone)

	clone.KnownClasses[0] = "changed"
	clone.Severity["missing-colon"] = SeverityOff

	assert.Equal(t, "hero", cfg.KnownClasses[0])
	assert.Equal(t, SeverityWarning, cfg.Severity["missing-colon"])
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.KnownClasses = []string{"hero", "card"}
	cfg.Severity["missing-blank-line"] = SeverityOff
	cfg.Ignore = []string{"node_modules/**"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.KnownClasses, parsed.KnownClasses)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
	assert.Equal(t, SeverityOff, parsed.Severity["missing-blank-line"])
	assert.True(t, parsed.ClassCheck)
}

func TestFromYAML_PartialDocument(t *testing.T) {
	parsed, err := FromYAML([]byte("known_classes:\n  - hero\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"hero"}, parsed.KnownClasses)
	// Unspecified fields keep defaults.
	assert.True(t, parsed.ClassCheck)
	assert.True(t, parsed.ReservedClasses)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("known_classes: [unterminated"))
	assert.Error(t, err)
}
