// Package config builds the immutable per-expansion configuration bag:
// option defaults, syntax overlays, builtin snippet and variable tables,
// and caller overrides merged in that order.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type selects which expansion pipeline an abbreviation goes through.
type Type string

const (
	TypeMarkup     Type = "markup"
	TypeStylesheet Type = "stylesheet"
)

// Abbreviation context scopes for stylesheet resolution. A Context.Name
// equal to one of these selects a resolution scope instead of a concrete
// CSS property.
const (
	ScopeGlobal   = "@@global"
	ScopeSection  = "@@section"
	ScopeProperty = "@@property"
	ScopeValue    = "@@value"
)

// Context describes the syntactic position of the abbreviation: the
// enclosing tag for markup, or the CSS property / scope for stylesheets.
type Context struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Cache carries memoized artifacts across expansion calls sharing a
// configuration, currently the compiled stylesheet snippet set. It is an
// explicit object owned by the caller, never package state.
type Cache struct {
	StylesheetSnippets any
}

// Config is the resolved, immutable-per-expansion configuration.
type Config struct {
	Type      Type
	Syntax    string
	Variables map[string]string
	Snippets  map[string]string
	Options   *Options
	Context   *Context

	// Text supplies content for wrap-with-abbreviation: each entry is
	// one line bound to repeater placeholders.
	Text []string

	// MaxRepeat caps repeater unrolling; zero means the built-in limit.
	MaxRepeat int

	Cache *Cache
}

// UserConfig is the caller-facing (and YAML-facing) override set applied
// on top of the defaults by Resolve.
type UserConfig struct {
	Type      Type              `yaml:"type,omitempty"`
	Syntax    string            `yaml:"syntax,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
	Snippets  map[string]string `yaml:"snippets,omitempty"`
	Options   map[string]any    `yaml:"options,omitempty"`
	Context   *Context          `yaml:"context,omitempty"`
	Text      []string          `yaml:"text,omitempty"`
	MaxRepeat int               `yaml:"maxRepeat,omitempty"`
	Cache     *Cache            `yaml:"-"`
}

// ParseUserConfig decodes a YAML override document, typically the body
// of a per-syntax section of a user config file.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	var user UserConfig
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &user, nil
}

var defaultVariables = map[string]string{
	"lang":    "en",
	"locale":  "en-US",
	"charset": "UTF-8",
}

var stylesheetSyntaxes = map[string]bool{
	"css":    true,
	"scss":   true,
	"sass":   true,
	"less":   true,
	"sss":    true,
	"stylus": true,
}

// IsStylesheetSyntax reports whether a syntax name belongs to the
// stylesheet pipeline.
func IsStylesheetSyntax(syntax string) bool {
	return stylesheetSyntaxes[syntax]
}

// Resolve merges defaults, the syntax overlay, and the caller overrides
// into a ready-to-use Config. A nil user resolves pure defaults.
func Resolve(user *UserConfig) (*Config, error) {
	if user == nil {
		user = &UserConfig{}
	}

	syntax := user.Syntax
	if syntax == "" {
		syntax = "html"
	}

	typ := user.Type
	if typ == "" {
		if IsStylesheetSyntax(syntax) {
			typ = TypeStylesheet
		} else {
			typ = TypeMarkup
		}
	}

	opts := NewOptions()
	applySyntaxOptions(opts, syntax)
	if err := opts.ApplyMap(user.Options); err != nil {
		return nil, err
	}

	variables := make(map[string]string, len(defaultVariables)+len(user.Variables))
	for k, v := range defaultVariables {
		variables[k] = v
	}
	for k, v := range user.Variables {
		variables[k] = v
	}

	snippets := make(map[string]string)
	if typ == TypeStylesheet {
		mergeSnippets(snippets, stylesheetSnippets)
	} else {
		mergeSnippets(snippets, markupSnippets)
		switch syntax {
		case "xsl":
			mergeSnippets(snippets, xslSnippets)
		case "pug":
			mergeSnippets(snippets, pugSnippets)
		}
	}
	mergeSnippets(snippets, user.Snippets)

	cache := user.Cache
	if cache == nil {
		cache = &Cache{}
	}

	return &Config{
		Type:      typ,
		Syntax:    syntax,
		Variables: variables,
		Snippets:  snippets,
		Options:   opts,
		Context:   user.Context,
		Text:      user.Text,
		MaxRepeat: user.MaxRepeat,
		Cache:     cache,
	}, nil
}

// applySyntaxOptions layers per-syntax option defaults over the global
// ones, before caller overrides.
func applySyntaxOptions(opts *Options, syntax string) {
	switch syntax {
	case "xhtml":
		opts.SelfClosingStyle = SelfCloseXHTML
	case "xml", "xsl":
		opts.SelfClosingStyle = SelfCloseXML
	case "jsx":
		opts.JSXEnabled = true
	case "sass", "sss":
		opts.StylesheetAfter = ""
	case "stylus":
		opts.StylesheetBetween = " "
		opts.StylesheetAfter = ""
	}
}

// mergeSnippets copies entries into dst, expanding `|`-delimited alias
// keys into one entry per alias.
func mergeSnippets(dst, src map[string]string) {
	for key, value := range src {
		if !strings.Contains(key, "|") {
			dst[key] = value
			continue
		}
		for _, alias := range strings.Split(key, "|") {
			if alias != "" {
				dst[alias] = value
			}
		}
	}
}
