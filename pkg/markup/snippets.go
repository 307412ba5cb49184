package markup

import (
	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
)

// snippetResolver expands named snippet references in a freshly-parsed
// tree. The visited stack holds snippet bodies currently being expanded;
// hitting one again means a circular reference and the node stays as-is.
type snippetResolver struct {
	cfg   *config.Config
	opts  *abbr.ParseOptions
	stack []string
}

// resolveSnippets recursively expands every node whose name matches a
// snippet key, splicing each snippet's tree in place of the node and
// re-attaching the node's own children beneath the deepest spliced
// descendant.
func resolveSnippets(tree *abbr.Abbreviation, cfg *config.Config, opts *abbr.ParseOptions) *abbr.Abbreviation {
	r := &snippetResolver{cfg: cfg, opts: opts}
	r.walk(&tree.Children)
	return tree
}

func (r *snippetResolver) walk(children *[]*abbr.Node) []*abbr.Node {
	var result []*abbr.Node
	for _, child := range *children {
		resolved := r.resolve(child)
		if resolved == nil {
			result = append(result, child)
			child.Children = r.walk(&child.Children)
			continue
		}
		result = append(result, resolved.Children...)
		// The original node's children hang beneath the deepest node of
		// the spliced tree.
		if len(resolved.Children) > 0 {
			deepest := abbr.DeepestNode(resolved.Children[len(resolved.Children)-1])
			deepest.Children = append(deepest.Children, r.walk(&child.Children)...)
		}
	}
	*children = result
	return result
}

// resolve expands one node. It returns nil when the node names no
// snippet, the snippet body fails to parse, or expansion would recurse
// into a snippet already on the stack.
func (r *snippetResolver) resolve(node *abbr.Node) *abbr.Abbreviation {
	if node.Name == "" {
		return nil
	}
	snippet, ok := r.cfg.Snippets[node.Name]
	if !ok {
		return nil
	}
	for _, s := range r.stack {
		if s == snippet {
			return nil
		}
	}

	// Snippet bodies parse without caller text: wrapped content belongs
	// to the referencing node, not to every expanded template.
	bodyOpts := *r.opts
	bodyOpts.Text = nil
	tree, err := abbr.Parse(snippet, &bodyOpts)
	if err != nil {
		return nil
	}

	r.stack = append(r.stack, snippet)
	r.walk(&tree.Children)
	r.stack = r.stack[:len(r.stack)-1]

	for _, top := range tree.Children {
		if node.Attributes != nil {
			from := top.Attributes
			to := node.Attributes
			if r.cfg.Options.ReverseAttributes {
				top.Attributes = append(append([]abbr.Attribute(nil), to...), from...)
			} else {
				top.Attributes = append(append([]abbr.Attribute(nil), from...), to...)
			}
		}
		mergeNodes(node, top)
	}
	return tree
}

// mergeNodes propagates the original node's own state onto a node of the
// resolved snippet tree.
func mergeNodes(from, to *abbr.Node) {
	if from.SelfClosing {
		to.SelfClosing = true
	}
	if from.Value != nil {
		to.Value = from.Value
	}
	if from.Repeat != nil {
		to.Repeat = from.Repeat
	}
}
