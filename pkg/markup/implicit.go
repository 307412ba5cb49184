package markup

import (
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/output"
)

// elementMap names the child element implied by a given parent.
var elementMap = map[string]string{
	"p":        "span",
	"ul":       "li",
	"ol":       "li",
	"table":    "tr",
	"tr":       "td",
	"tbody":    "tr",
	"thead":    "tr",
	"tfoot":    "tr",
	"colgroup": "col",
	"select":   "option",
	"optgroup": "option",
	"audio":    "source",
	"video":    "source",
	"object":   "param",
	"map":      "area",
}

// implicitTag names nodes that carry attributes but no element name.
func implicitTag(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	if node.Name == "" && node.Attributes != nil {
		resolveImplicitTag(node, ancestors, cfg)
	}
}

func resolveImplicitTag(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	parentName := ""
	if parent := parentElement(ancestors); parent != nil {
		parentName = parent.Name
	} else if cfg.Context != nil {
		parentName = cfg.Context.Name
	}
	parentName = strings.ToLower(parentName)

	if name, ok := elementMap[parentName]; ok {
		node.Name = name
	} else if output.IsInline(parentName, cfg.Options) && parentName != "" {
		node.Name = "span"
	} else {
		node.Name = "div"
	}
}

// parentElement returns the nearest named ancestor.
func parentElement(ancestors []*abbr.Node) *abbr.Node {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Name != "" {
			return ancestors[i]
		}
	}
	return nil
}
