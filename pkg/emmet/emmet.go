// Package emmet is the public entry point of the expansion engine. It
// resolves caller configuration and dispatches an abbreviation to the
// markup or stylesheet pipeline.
package emmet

import (
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/markup"
	"github.com/yaklabco/goemmet/pkg/stylesheet"
)

// Expand resolves the user configuration and expands an abbreviation.
// A nil user expands with pure defaults (HTML markup).
func Expand(abbr string, user *config.UserConfig) (string, error) {
	cfg, err := config.Resolve(user)
	if err != nil {
		return "", err
	}
	return ExpandWith(abbr, cfg)
}

// ExpandWith expands an abbreviation against an already-resolved
// configuration, letting callers reuse snippet caches across calls.
func ExpandWith(abbr string, cfg *config.Config) (string, error) {
	if cfg.Type == config.TypeStylesheet {
		return stylesheet.Expand(abbr, cfg)
	}
	return markup.Expand(abbr, cfg)
}
