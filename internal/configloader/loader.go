// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical
// merging and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goweave/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// DisableClassCheck turns the class inventory check off regardless
	// of file configuration (from --no-class-check).
	DisableClassCheck bool

	// DisableReservedClasses drops the reserved class set regardless of
	// file configuration (from --no-reserved-classes).
	DisableReservedClasses bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig, Disable* options)
//  2. Environment variables (GOWEAVE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goweave.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/goweave/config.yaml)
//  6. System config (/etc/goweave/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	// Load and merge in order of increasing precedence.
	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := loadInto(cfg, paths.System, result); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
	}
	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := loadInto(cfg, paths.User, result); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
	}
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := loadInto(cfg, paths.Project, result); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}
	if opts.ExplicitPath != "" {
		if err := loadInto(cfg, opts.ExplicitPath, result); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	applyCLI(cfg, opts.CLIConfig)
	if opts.DisableClassCheck {
		cfg.ClassCheck = false
	}
	if opts.DisableReservedClasses {
		cfg.ReservedClasses = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result.Config = cfg
	return result, nil
}

// loadInto parses the YAML file at path and overlays it onto cfg.
func loadInto(cfg *config.Config, path string, result *LoadResult) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	file := &fileConfig{}
	if err := yaml.Unmarshal(content, file); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}

	applyFile(cfg, file)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
