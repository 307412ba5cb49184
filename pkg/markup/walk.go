package markup

import "github.com/yaklabco/goemmet/pkg/abbr"

// WalkFunc visits one node during a pre-order traversal. ancestors holds
// the chain of element ancestors, nearest last; it is empty for
// top-level nodes and must not be retained across calls.
type WalkFunc func(node *abbr.Node, ancestors []*abbr.Node)

// Walk traverses the tree pre-order, maintaining the ancestor chain.
func Walk(tree *abbr.Abbreviation, fn WalkFunc) {
	var ancestors []*abbr.Node
	var visit func(node *abbr.Node)
	visit = func(node *abbr.Node) {
		fn(node, ancestors)
		ancestors = append(ancestors, node)
		for _, child := range node.Children {
			visit(child)
		}
		ancestors = ancestors[:len(ancestors)-1]
	}
	for _, child := range tree.Children {
		visit(child)
	}
}
