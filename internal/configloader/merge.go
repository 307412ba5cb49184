package configloader

import "github.com/yaklabco/goemmet/pkg/config"

// mergeFile combines two file documents, with override taking precedence
// over base. Scalars overwrite when non-zero; maps deep-merge key by key.
func mergeFile(base, override *FileConfig) *FileConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Syntax != "" {
		result.Syntax = override.Syntax
	}
	if override.Type != "" {
		result.Type = override.Type
	}
	if override.MaxRepeat != 0 {
		result.MaxRepeat = override.MaxRepeat
	}

	result.Variables = mergeStringMap(base.Variables, override.Variables)
	result.Options = mergeAnyMap(base.Options, override.Options)
	result.Snippets = mergeStringMap(base.Snippets, override.Snippets)

	if len(override.Syntaxes) > 0 {
		merged := make(map[string]*config.UserConfig, len(base.Syntaxes)+len(override.Syntaxes))
		for k, v := range base.Syntaxes {
			merged[k] = v
		}
		for k, v := range override.Syntaxes {
			if existing, ok := merged[k]; ok {
				merged[k] = mergeUser(existing, v)
				continue
			}
			merged[k] = v
		}
		result.Syntaxes = merged
	}

	return &result
}

// mergeUser combines two user configurations, with override winning.
// Slices replace entirely; maps deep-merge.
func mergeUser(base, override *config.UserConfig) *config.UserConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Syntax != "" {
		result.Syntax = override.Syntax
	}
	if override.Type != "" {
		result.Type = override.Type
	}
	if override.MaxRepeat != 0 {
		result.MaxRepeat = override.MaxRepeat
	}
	if override.Context != nil {
		result.Context = override.Context
	}
	if override.Text != nil {
		result.Text = override.Text
	}
	if override.Cache != nil {
		result.Cache = override.Cache
	}

	result.Variables = mergeStringMap(base.Variables, override.Variables)
	result.Options = mergeAnyMap(base.Options, override.Options)
	result.Snippets = mergeStringMap(base.Snippets, override.Snippets)

	return &result
}

func mergeStringMap(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeAnyMap(base, override map[string]any) map[string]any {
	if len(override) == 0 {
		return base
	}
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
