package markup

import (
	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
)

// mergeAttributes de-duplicates same-named attributes on a node. Class
// values are concatenated; for other names the later occurrence wins
// unless reverseAttributes flips the direction.
func mergeAttributes(node *abbr.Node, cfg *config.Config) {
	if node.Attributes == nil {
		return
	}

	var attributes []abbr.Attribute
	lookup := map[string]int{}

	for _, attr := range node.Attributes {
		if attr.Name == "" {
			attributes = append(attributes, attr)
			continue
		}
		if ix, ok := lookup[attr.Name]; ok {
			prev := &attributes[ix]
			if attr.Name == "class" {
				prev.Value = mergeValue(prev.Value, attr.Value, " ")
			} else {
				mergeDeclarations(prev, attr, cfg)
			}
			continue
		}
		lookup[attr.Name] = len(attributes)
		attributes = append(attributes, attr)
	}

	node.Attributes = attributes
}

// mergeValue joins two attribute values with glue when both are present.
func mergeValue(prev, next abbr.Value, glue string) abbr.Value {
	if len(prev) != 0 && len(next) != 0 {
		out := append(abbr.Value(nil), prev...)
		out = append(out, abbr.Text(glue))
		return append(out, next...)
	}
	if len(next) != 0 {
		return next
	}
	return prev
}

// mergeDeclarations merges a duplicate attribute into dest, keeping
// already-set implied/boolean flags and expression value types.
func mergeDeclarations(dest *abbr.Attribute, src abbr.Attribute, cfg *config.Config) {
	dest.Name = src.Name
	if !cfg.Options.ReverseAttributes && src.Value != nil {
		dest.Value = src.Value
	}
	if !dest.Implied {
		dest.Implied = src.Implied
	}
	if !dest.Boolean {
		dest.Boolean = src.Boolean
	}
	if dest.ValueType != abbr.ValueExpression {
		dest.ValueType = src.ValueType
	}
}
