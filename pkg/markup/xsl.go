package markup

import "github.com/yaklabco/goemmet/pkg/abbr"

var xslBodyElements = map[string]bool{
	"xsl:variable":   true,
	"xsl:with-param": true,
}

// xslStrip drops the `select` attribute from xsl:variable and
// xsl:with-param nodes that carry body content, since the two would
// conflict.
func xslStrip(node *abbr.Node) {
	if !xslBodyElements[node.Name] || node.Attributes == nil {
		return
	}
	if len(node.Children) == 0 && node.Value == nil {
		return
	}
	kept := node.Attributes[:0]
	for _, attr := range node.Attributes {
		if attr.Name != "select" {
			kept = append(kept, attr)
		}
	}
	node.Attributes = kept
}
