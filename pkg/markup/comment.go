package markup

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
)

type commentOptions struct {
	enabled bool
	trigger []string
	before  string
	after   string
}

func commentOptionsFrom(opts *config.Options) commentOptions {
	return commentOptions{
		enabled: opts.CommentEnabled,
		trigger: opts.CommentTrigger,
		before:  opts.CommentBefore,
		after:   opts.CommentAfter,
	}
}

func (r *htmlRenderer) commentBefore(node *abbr.Node) {
	if r.comment.before != "" && r.shouldComment(node) {
		r.out.PushString(renderCommentTemplate(r.comment.before, node))
	}
}

func (r *htmlRenderer) commentAfter(node *abbr.Node) {
	if r.comment.after != "" && r.shouldComment(node) {
		r.out.PushString(renderCommentTemplate(r.comment.after, node))
	}
}

// shouldComment requires comments enabled and one of the trigger
// attributes present with a value.
func (r *htmlRenderer) shouldComment(node *abbr.Node) bool {
	if !r.comment.enabled || len(r.comment.trigger) == 0 || node.Attributes == nil {
		return false
	}
	for _, attr := range node.Attributes {
		if attr.Value != nil && containsString(r.comment.trigger, attr.Name) {
			return true
		}
	}
	return false
}

// Template groups like `[#ID]` or `[.CLASS]`: the bracketed group is
// emitted only when the named attribute carries a value, prefixed by the
// group's literal symbols.
var reCommentGroup = regexp.MustCompile(`\[([^\]A-Z]*)([A-Z]+)\]`)

func renderCommentTemplate(template string, node *abbr.Node) string {
	return reCommentGroup.ReplaceAllStringFunc(template, func(group string) string {
		m := reCommentGroup.FindStringSubmatch(group)
		prefix, attrName := m[1], strings.ToLower(m[2])
		attr := findAttribute(node, attrName)
		if attr == nil || attr.Value == nil {
			return ""
		}
		value := attr.Value.String()
		if attrName == "class" {
			// Multi-class values read as chained selectors.
			value = strings.Join(strings.Fields(value), ".")
		}
		return prefix + value
	})
}
