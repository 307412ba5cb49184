// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goemmet/pkg/config"
)

// FileConfig is the on-disk configuration document. Top-level fields
// apply to every syntax; the syntaxes map overlays per-syntax settings.
type FileConfig struct {
	// Syntax is the default output syntax when none is given on the CLI.
	Syntax string `yaml:"syntax,omitempty"`

	// Type forces the expansion pipeline: "markup" or "stylesheet".
	Type string `yaml:"type,omitempty"`

	// MaxRepeat caps the total number of nodes a repeated group may produce.
	MaxRepeat int `yaml:"maxRepeat,omitempty"`

	// Variables override ${name} substitutions (lang, charset, ...).
	Variables map[string]string `yaml:"variables,omitempty"`

	// Options are dotted option keys, e.g. "output.indent" or "bem.enabled".
	Options map[string]any `yaml:"options,omitempty"`

	// Snippets add or replace abbreviation snippets.
	Snippets map[string]string `yaml:"snippets,omitempty"`

	// Syntaxes holds per-syntax overrides keyed by syntax name.
	Syntaxes map[string]*config.UserConfig `yaml:"syntaxes,omitempty"`
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// Syntax selects which per-syntax section to overlay.
	Syntax string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.UserConfig
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration for the requested syntax.
	Config *config.UserConfig

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
//  2. Environment variables (GOEMMET_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goemmet.yaml upward search)
//  5. User config ($XDG_CONFIG_HOME/goemmet/config.yaml)
//  6. Defaults
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

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load and merge in order (lowest to highest precedence)

	file := &FileConfig{}

	// 1. User config
	if !opts.IgnoreUserConfig && paths.User != "" {
		userCfg, err := loadConfigFile(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		file = mergeFile(file, userCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	// 2. Project config
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		projectCfg, err := loadConfigFile(paths.Project)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		file = mergeFile(file, projectCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	// 3. Explicit config (--config flag)
	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		file = mergeFile(file, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	// Pick the syntax: CLI beats file default.
	syntax := opts.Syntax
	if syntax == "" {
		syntax = file.Syntax
	}

	user := flatten(file, syntax)

	// 4. Environment variables
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(user); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// 5. CLI config (highest precedence)
	if opts.CLIConfig != nil {
		user = mergeUser(user, opts.CLIConfig)
	}

	if err := validate(user); err != nil {
		return nil, err
	}

	result.Config = user
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &FileConfig{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, nil
}

// flatten projects the file document into a single UserConfig for the
// given syntax: global fields first, per-syntax overlay on top.
func flatten(file *FileConfig, syntax string) *config.UserConfig {
	if syntax == "" {
		syntax = "html"
	}

	user := &config.UserConfig{
		Syntax:    syntax,
		Type:      config.Type(file.Type),
		MaxRepeat: file.MaxRepeat,
		Variables: cloneStringMap(file.Variables),
		Options:   cloneAnyMap(file.Options),
		Snippets:  cloneStringMap(file.Snippets),
	}

	if overlay, ok := file.Syntaxes[syntax]; ok && overlay != nil {
		user = mergeUser(user, overlay)
		// The section key names the syntax; the section body cannot rename it.
		user.Syntax = syntax
	}

	return user
}

// validate rejects configurations the engine cannot resolve.
func validate(user *config.UserConfig) error {
	switch user.Type {
	case "", config.TypeMarkup, config.TypeStylesheet:
	default:
		return fmt.Errorf("invalid type %q: must be markup or stylesheet", user.Type)
	}

	if user.MaxRepeat < 0 {
		return fmt.Errorf("invalid maxRepeat %d: must be non-negative", user.MaxRepeat)
	}

	return nil
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
