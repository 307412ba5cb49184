package markup

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/output"
)

type htmlRenderer struct {
	renderState
	comment commentOptions
}

// renderHTML pretty-prints the resolved tree as HTML/XML markup.
func renderHTML(tree *abbr.Abbreviation, cfg *config.Config) string {
	r := &htmlRenderer{
		renderState: newRenderState(cfg),
		comment:     commentOptionsFrom(cfg.Options),
	}
	for i, child := range tree.Children {
		r.element(child, i, tree.Children)
	}
	return r.out.String()
}

func (r *htmlRenderer) element(node *abbr.Node, index int, siblings []*abbr.Node) {
	opts := r.cfg.Options
	format := r.shouldFormat(node, index, siblings)

	level := r.indentLevel()
	r.out.Level += level
	if format {
		r.out.PushNewline(true)
	}

	if node.Name != "" {
		name := output.TagName(node.Name, opts)
		r.commentBefore(node)
		r.out.PushString("<" + name)
		for _, attr := range node.Attributes {
			r.pushAttribute(attr)
		}

		if node.SelfClosing && len(node.Children) == 0 && node.Value == nil {
			r.out.PushString(output.SelfClose(opts) + ">")
		} else {
			r.out.PushString(">")
			if !r.pushSnippet(node, r.element) {
				if node.Value != nil {
					inner := hasNewline(node.Value) || startsWithBlockTag(node.Value, opts)
					if inner {
						r.out.Level++
						r.out.PushNewline(true)
					}
					r.pushTokens(node.Value)
					if inner {
						r.out.Level--
						r.out.PushNewline(true)
					}
				}
				r.renderChildren(node, r.element)
				if node.Value == nil && len(node.Children) == 0 {
					inner := opts.FormatLeafNode || containsString(opts.FormatForce, node.Name)
					if inner {
						r.out.Level++
						r.out.PushNewline(true)
					}
					r.pushTokens(caret)
					if inner {
						r.out.Level--
						r.out.PushNewline(true)
					}
				}
			}
			r.out.PushString("</" + name + ">")
			r.commentAfter(node)
		}
	} else if !r.pushSnippet(node, r.element) && node.Value != nil {
		r.pushTokens(node.Value)
		r.renderChildren(node, r.element)
	}

	// Last formatted child emits the line break that places the parent's
	// closing tag on its own line.
	if format && index == len(siblings)-1 && r.parent != nil {
		offset := 1
		if r.parent.IsSnippet() {
			offset = 0
		}
		r.out.PushNewline(false)
		r.out.PushIndent(r.out.Level - offset)
	}

	r.out.Level -= level
}

func (r *htmlRenderer) pushAttribute(attr abbr.Attribute) {
	opts := r.cfg.Options
	if attr.Name == "" {
		return
	}
	// Implied attributes without a value are dropped from output.
	if attr.Implied && attr.Value == nil {
		return
	}

	name := output.AttrName(attr.Name, opts)
	lq, rq := attrQuotes(attr, opts)
	value := attr.Value

	if value == nil && (attr.Boolean || output.IsBooleanAttribute(attr.Name, opts)) {
		if opts.CompactBoolean {
			r.out.PushString(" " + name)
			return
		}
		value = abbr.Value{abbr.Text(name)}
	} else if value == nil {
		value = caret
	}

	r.out.PushString(" " + name + "=" + lq)
	r.pushTokens(value)
	r.out.PushString(rq)
}

func attrQuotes(attr abbr.Attribute, opts *config.Options) (string, string) {
	if attr.ValueType == abbr.ValueExpression {
		return "{", "}"
	}
	q := output.AttrQuote(opts)
	return q, q
}

func (r *htmlRenderer) indentLevel() int {
	if r.parent == nil {
		return 0
	}
	if r.parent.IsSnippet() {
		return 0
	}
	if containsString(r.cfg.Options.FormatSkip, strings.ToLower(r.parent.Name)) {
		return 0
	}
	return 1
}

func (r *htmlRenderer) shouldFormat(node *abbr.Node, index int, siblings []*abbr.Node) bool {
	opts := r.cfg.Options
	if !opts.Format {
		return false
	}
	if index == 0 && r.parent == nil {
		return false
	}
	// A lone child of a text-only snippet stays on the snippet's line.
	if r.parent != nil && r.parent.IsSnippet() && len(siblings) == 1 {
		return false
	}

	if node.IsSnippet() {
		prevSnippet := index > 0 && siblings[index-1].IsSnippet()
		nextSnippet := index < len(siblings)-1 && siblings[index+1].IsSnippet()
		if prevSnippet || nextSnippet ||
			hasNewline(node.Value) ||
			(node.Value.HasField() && len(node.Children) > 0) {
			return true
		}
	}

	if isInlineNode(node, opts) {
		if index == 0 {
			// Format a leading inline node when a block sibling follows.
			for _, sib := range siblings {
				if !isInlineNode(sib, opts) {
					return true
				}
			}
		} else if !isInlineNode(siblings[index-1], opts) {
			return true
		}

		if opts.InlineBreak > 0 {
			adjacent := 1
			for i := index - 1; i >= 0 && isInlineElement(siblings[i], opts); i-- {
				adjacent++
			}
			for i := index + 1; i < len(siblings) && isInlineElement(siblings[i], opts); i++ {
				adjacent++
			}
			if adjacent >= opts.InlineBreak {
				return true
			}
		}

		// An inline wrapper still breaks when a descendant needs it.
		for i, child := range node.Children {
			if r.shouldFormat(child, i, node.Children) {
				return true
			}
		}
		return false
	}

	return true
}

// isInlineElement is the named-element-only variant used for the
// inlineBreak run counting.
func isInlineElement(node *abbr.Node, opts *config.Options) bool {
	return node != nil && node.Name != "" && output.IsInline(node.Name, opts)
}

var reStartTag = regexp.MustCompile(`^<([\w\-:]+)[\s>]`)

// startsWithBlockTag reports whether a value begins with literal markup
// for a block-level element, which forces inner formatting.
func startsWithBlockTag(value abbr.Value, opts *config.Options) bool {
	if len(value) == 0 {
		return false
	}
	text, ok := value[0].(abbr.Text)
	if !ok {
		return false
	}
	m := reStartTag.FindStringSubmatch(string(text))
	return m != nil && !output.IsInline(strings.ToLower(m[1]), opts)
}
