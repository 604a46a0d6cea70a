package configloader

import "github.com/yaklabco/goweave/pkg/config"

// fileConfig is the YAML overlay shape for one config file. Booleans are
// pointers so a file can turn class_check or reserved_classes off even
// though both default to true.
type fileConfig struct {
	KnownClasses    []string                   `yaml:"known_classes"`
	ClassCheck      *bool                      `yaml:"class_check"`
	ReservedClasses *bool                      `yaml:"reserved_classes"`
	Severity        map[string]config.Severity `yaml:"severity"`
	Ignore          []string                   `yaml:"ignore"`
}

// applyFile merges one file overlay into cfg. Unset fields leave cfg alone;
// slices replace, the severity map deep-merges.
func applyFile(cfg *config.Config, file *fileConfig) {
	if file == nil {
		return
	}

	if file.KnownClasses != nil {
		cfg.KnownClasses = file.KnownClasses
	}
	if file.ClassCheck != nil {
		cfg.ClassCheck = *file.ClassCheck
	}
	if file.ReservedClasses != nil {
		cfg.ReservedClasses = *file.ReservedClasses
	}
	if file.Ignore != nil {
		cfg.Ignore = file.Ignore
	}

	for kind, sev := range file.Severity {
		if cfg.Severity == nil {
			cfg.Severity = make(map[string]config.Severity)
		}
		cfg.Severity[kind] = sev
	}
}

// applyCLI merges CLI-provided values; these take highest precedence.
// Zero values mean the flag was not given, so false booleans cannot be
// expressed here. The CLI maps its negative flags before calling Load.
func applyCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}

	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.Jobs != 0 {
		cfg.Jobs = cli.Jobs
	}
	if cli.Spans {
		cfg.Spans = true
	}
	if cli.Ignore != nil {
		cfg.Ignore = cli.Ignore
	}
	if cli.KnownClasses != nil {
		cfg.KnownClasses = append(cfg.KnownClasses, cli.KnownClasses...)
	}
	for kind, sev := range cli.Severity {
		if cfg.Severity == nil {
			cfg.Severity = make(map[string]config.Severity)
		}
		cfg.Severity[kind] = sev
	}
}
