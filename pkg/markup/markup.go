// Package markup implements the markup half of the expansion pipeline:
// snippet resolution, the tree transform passes and the HTML and
// indent-style renderers.
package markup

import (
	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
)

// Expand parses and renders one markup abbreviation.
func Expand(source string, cfg *config.Config) (string, error) {
	tree, err := Parse(source, cfg)
	if err != nil {
		return "", err
	}
	return Render(tree, cfg), nil
}

// Parse builds the final node tree for an abbreviation: tokenize, parse,
// unroll repeaters, resolve snippets, then run the transform passes.
func Parse(source string, cfg *config.Config) (*abbr.Abbreviation, error) {
	opts := parseOptions(cfg)
	tree, err := abbr.Parse(source, opts)
	if err != nil {
		return nil, err
	}
	tree = resolveSnippets(tree, cfg, opts)
	Transform(tree, cfg)
	return tree, nil
}

// Transform runs the per-node transform passes in their fixed order.
func Transform(tree *abbr.Abbreviation, cfg *config.Config) {
	Walk(tree, func(node *abbr.Node, ancestors []*abbr.Node) {
		implicitTag(node, ancestors, cfg)
		mergeAttributes(node, cfg)
		loremText(node, ancestors, cfg)
		if cfg.Syntax == "xsl" {
			xslStrip(node)
		}
		if cfg.Options.JSXEnabled {
			jsxAttributes(node)
		}
		if cfg.Options.BEMEnabled {
			bem(node, ancestors, cfg)
		}
	})
}

// Render pretty-prints a transformed tree in the configured syntax.
func Render(tree *abbr.Abbreviation, cfg *config.Config) string {
	switch cfg.Syntax {
	case "pug", "haml", "slim":
		return renderIndent(tree, cfg.Syntax, cfg)
	default:
		return renderHTML(tree, cfg)
	}
}

func parseOptions(cfg *config.Config) *abbr.ParseOptions {
	return &abbr.ParseOptions{
		Text:      cfg.Text,
		Variables: cfg.Variables,
		MaxRepeat: cfg.MaxRepeat,
		JSX:       cfg.Options.JSXEnabled,
		Href:      cfg.Options.Href,
	}
}
