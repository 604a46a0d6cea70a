package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goweave/pkg/config"
)

// envVarPrefix is the prefix for all goweave environment variables.
const envVarPrefix = "GOWEAVE_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Recognized variables:
//
//	GOWEAVE_FORMAT           output format (text, json, summary)
//	GOWEAVE_JOBS             number of parallel workers
//	GOWEAVE_IGNORE           comma-separated glob patterns
//	GOWEAVE_CLASS_CHECK      enable/disable the class inventory check
//	GOWEAVE_RESERVED_CLASSES include the reserved class set
//	GOWEAVE_SPANS            include styled spans in JSON output
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = n
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}

	for suffix, target := range map[string]*bool{
		"CLASS_CHECK":      &cfg.ClassCheck,
		"RESERVED_CLASSES": &cfg.ReservedClasses,
		"SPANS":            &cfg.Spans,
	} {
		v := os.Getenv(envVarPrefix + suffix)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s%s: %q (expected true/false/1/0)",
				envVarPrefix, suffix, v)
		}
		*target = b
	}

	return nil
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
