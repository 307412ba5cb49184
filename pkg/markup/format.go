package markup

import (
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/output"
)

// caret marks where the editor cursor lands inside an empty element.
var caret = abbr.Value{abbr.Field{Index: 0}}

// renderState is the per-render bookkeeping shared by the HTML and
// indent-style formatters: the output stream, the node being rendered
// into (parent), and a running tabstop counter so field indices stay
// unique across the whole document.
type renderState struct {
	cfg    *config.Config
	out    *output.Stream
	parent *abbr.Node
	field  int
}

func newRenderState(cfg *config.Config) renderState {
	return renderState{cfg: cfg, out: output.New(cfg.Options, 0), field: 1}
}

// pushTokens emits a mixed text/field value, renumbering fields by the
// running document-wide counter.
func (s *renderState) pushTokens(value abbr.Value) {
	largest := -1
	for _, item := range value {
		switch t := item.(type) {
		case abbr.Text:
			s.out.PushString(string(t))
		case abbr.Field:
			s.out.PushField(s.field+t.Index, t.Name)
			if t.Index > largest {
				largest = t.Index
			}
		}
	}
	if largest != -1 {
		s.field += largest + 1
	}
}

// pushSnippet renders a node whose value hosts its children: the
// children are emitted as the content of the value's first field, with
// following text trimmed if the children broke the line.
func (s *renderState) pushSnippet(node *abbr.Node, next func(*abbr.Node, int, []*abbr.Node)) bool {
	if node.Value == nil || len(node.Children) == 0 {
		return false
	}
	fieldIx := -1
	for i, item := range node.Value {
		if _, ok := item.(abbr.Field); ok {
			fieldIx = i
			break
		}
	}
	if fieldIx == -1 {
		return false
	}

	s.pushTokens(node.Value[:fieldIx])
	offsetBefore := s.out.Offset()
	s.renderChildren(node, next)

	pos := fieldIx + 1
	if s.out.Offset() != offsetBefore && pos < len(node.Value) {
		if text, ok := node.Value[pos].(abbr.Text); ok {
			s.out.PushString(strings.TrimLeft(string(text), " \t"))
			pos++
		}
	}
	s.pushTokens(node.Value[pos:])
	return true
}

// renderChildren visits children with the parent pointer swapped in.
func (s *renderState) renderChildren(node *abbr.Node, next func(*abbr.Node, int, []*abbr.Node)) {
	prev := s.parent
	s.parent = node
	for i, child := range node.Children {
		next(child, i, node.Children)
	}
	s.parent = prev
}

// isInlineNode reports whether the node renders inline: text-only nodes
// and configured inline element names.
func isInlineNode(node *abbr.Node, opts *config.Options) bool {
	if node == nil {
		return false
	}
	if node.IsSnippet() {
		return true
	}
	return output.IsInline(node.Name, opts)
}

func hasNewline(value abbr.Value) bool {
	for _, item := range value {
		if text, ok := item.(abbr.Text); ok && strings.ContainsAny(string(text), "\r\n") {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
