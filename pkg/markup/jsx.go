package markup

import "github.com/yaklabco/goemmet/pkg/abbr"

var jsxRename = map[string]string{
	"class": "className",
	"for":   "htmlFor",
}

// jsxAttributes renames HTML attributes to their JSX DOM-property
// equivalents.
func jsxAttributes(node *abbr.Node) {
	for i, attr := range node.Attributes {
		if name, ok := jsxRename[attr.Name]; ok {
			node.Attributes[i].Name = name
		}
	}
}
