// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

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

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (DOCSTYLE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.styleguide.yaml upward search)
//  5. User config ($XDG_CONFIG_HOME/docstyle/config.yaml)
//  6. System config (/etc/docstyle/config.yaml)
//  7. Built-in style guide defaults
//
// A missing config file is never fatal: the built-in defaults apply and a
// warning is recorded. A malformed config file is not fatal either: it is
// reported once as a warning and skipped, so checking proceeds with the
// remaining sources and the built-in defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

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
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load and merge in order (lowest to highest precedence). A file that
	// cannot be read or parsed is warned about and skipped: some checking
	// beats no checking.
	mergeFile := func(path string) {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ignoring unusable config %s: %v", path, err))
			return
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreSystemConfig && paths.System != "" {
		mergeFile(paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		mergeFile(paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		mergeFile(paths.Project)
	}

	if opts.ExplicitPath != "" {
		mergeFile(opts.ExplicitPath)
	}

	if len(result.LoadedFrom) == 0 && opts.ExplicitPath == "" {
		result.Warnings = append(result.Warnings,
			"no configuration file found; using built-in style guide defaults")
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Rule keys may be human-readable names; normalize to canonical IDs.
	normalizeRuleKeys(cfg, check.DefaultRegistry, result)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}

	return cfg, nil
}

// normalizeRuleKeys converts rule names to canonical IDs in the config.
// Family names pass through unchanged. If a rule is specified by both ID and
// name, warns and keeps the last value encountered.
func normalizeRuleKeys(cfg *config.Config, registry *check.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seenIDs := make(map[string]string) // canonical ID -> original key

	for key, ruleCfg := range cfg.Rules {
		if ruleFamilies[key] {
			normalized[key] = ruleCfg
			continue
		}

		rule, found := registry.Get(key)
		if !found {
			// Unknown rule: keep it as-is, validation warns about it later.
			normalized[key] = ruleCfg
			continue
		}

		canonicalID := rule.ID()
		if originalKey, exists := seenIDs[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
					originalKey, key, canonicalID))
		}

		seenIDs[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
