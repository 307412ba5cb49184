package markup

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
)

var (
	reBEMElement  = regexp.MustCompile(`(?i)^(-+)([a-z0-9]+[a-z0-9-]*)`)
	reBEMModifier = regexp.MustCompile(`(?i)^(_+)([a-z0-9]+[a-z0-9-_]*)`)

	reBlockWithDash = regexp.MustCompile(`(?i)^[a-z]-`)
	reBlockPlain    = regexp.MustCompile(`(?i)^[a-z]`)
)

// bem expands BEM class shorthand: compound `block__elem_mod` classes
// split into base+modifier pairs, and `-elem`/`_mod` prefixes resolve
// their block name from ancestor classes.
func bem(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	expandClassNames(node)
	// The node itself joins the lookup path: a compound class expanded
	// above supplies the block for its own bare `_mod` remainder.
	path := make([]*abbr.Node, 0, len(ancestors)+1)
	path = append(path, ancestors...)
	path = append(path, node)
	expandShortNotation(node, path, cfg)
}

// expandClassNames splits compound class names carrying a modifier into
// the base class plus the full modified class, so `block_mod` emits both
// `block` and `block_mod`.
func expandClassNames(node *abbr.Node) {
	classes := classList(node)
	if len(classes) == 0 {
		return
	}

	var names []string
	for _, cl := range classes {
		ix := strings.Index(cl, "_")
		if ix > 0 && !strings.HasPrefix(cl, "-") {
			names = append(names, cl[:ix], cl[ix:])
		} else {
			names = append(names, cl)
		}
	}
	setClassList(node, names)
}

// expandShortNotation resolves `-element` and `_modifier` prefixes
// against the nearest block name on the path. Extra leading dashes or
// underscores start the lookup one level higher per repetition.
func expandShortNotation(node *abbr.Node, path []*abbr.Node, cfg *config.Config) {
	classes := classList(node)
	if len(classes) == 0 {
		return
	}

	var names []string
	for _, original := range classes {
		cl := original
		prefix := ""

		if m := reBEMElement.FindStringSubmatch(cl); m != nil {
			prefix = blockName(path, len(m[1]), cfg) + cfg.Options.BEMElement + m[2]
			names = append(names, prefix)
			cl = cl[len(m[0]):]
		}
		if m := reBEMModifier.FindStringSubmatch(cl); m != nil {
			if prefix == "" {
				prefix = blockName(path, len(m[1]), cfg)
				names = append(names, prefix)
			}
			names = append(names, prefix+cfg.Options.BEMModifier+m[2])
			cl = cl[len(m[0]):]
		}
		if cl == original {
			names = append(names, original)
		}
	}
	setClassList(node, unique(names))
}

// blockName resolves a block class from the path, which ends with the
// node itself. A single dash or underscore starts at the node, each
// extra one starts a level higher; the walk continues toward the root
// until a candidate is found.
func blockName(path []*abbr.Node, depth int, cfg *config.Config) string {
	ix := len(path) - depth
	if ix < 0 {
		ix = 0
	}
	for i := ix; i >= 0 && i < len(path); i-- {
		if name := blockCandidate(classList(path[i])); name != "" {
			return name
		}
	}
	if cfg.Context != nil {
		if cl, ok := cfg.Context.Attributes["class"]; ok {
			return blockCandidate(strings.Fields(cl))
		}
	}
	return ""
}

// blockCandidate prefers `x-`-prefixed names over any letter-initial
// name.
func blockCandidate(classes []string) string {
	for _, cl := range classes {
		if reBlockWithDash.MatchString(cl) {
			return cl
		}
	}
	for _, cl := range classes {
		if reBlockPlain.MatchString(cl) {
			return cl
		}
	}
	return ""
}

func classList(node *abbr.Node) []string {
	if attr := findAttribute(node, "class"); attr != nil {
		return strings.Fields(attr.Value.String())
	}
	return nil
}

func setClassList(node *abbr.Node, classes []string) {
	if attr := findAttribute(node, "class"); attr != nil {
		attr.Value = abbr.Value{abbr.Text(strings.Join(classes, " "))}
	}
}

func findAttribute(node *abbr.Node, name string) *abbr.Attribute {
	for i := range node.Attributes {
		if node.Attributes[i].Name == name {
			return &node.Attributes[i]
		}
	}
	return nil
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
