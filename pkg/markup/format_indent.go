package markup

import (
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/output"
)

// dialectOptions parameterize the shared indent-style renderer per
// target language.
type dialectOptions struct {
	beforeName      string
	beforeAttribute string
	afterAttribute  string
	glueAttribute   string
	beforeTextLine  string
	afterTextLine   string
	booleanValue    string
	selfClose       string
}

var indentDialects = map[string]dialectOptions{
	"pug": {
		beforeAttribute: "(",
		afterAttribute:  ")",
		glueAttribute:   ", ",
		booleanValue:    "true",
	},
	"haml": {
		beforeName:      "%",
		beforeAttribute: "(",
		afterAttribute:  ")",
		glueAttribute:   " ",
		afterTextLine:   " |",
		booleanValue:    "true",
		selfClose:       "/",
	},
	"slim": {
		beforeAttribute: " ",
		glueAttribute:   " ",
		beforeTextLine:  "| ",
		selfClose:       "/",
	},
}

type indentRenderer struct {
	renderState
	dialect dialectOptions
}

// renderIndent pretty-prints the resolved tree in an indentation-based
// dialect (pug, haml or slim).
func renderIndent(tree *abbr.Abbreviation, syntax string, cfg *config.Config) string {
	r := &indentRenderer{
		renderState: newRenderState(cfg),
		dialect:     indentDialects[syntax],
	}
	for i, child := range tree.Children {
		r.element(child, i, tree.Children)
	}
	return r.out.String()
}

func (r *indentRenderer) element(node *abbr.Node, index int, siblings []*abbr.Node) {
	primary, secondary := collectAttributes(node)

	level := 0
	if r.parent != nil {
		level = 1
	}
	r.out.Level += level

	if r.shouldFormat(node, index) {
		r.out.PushNewline(true)
	}

	// An unnamed-or-div node with shorthand attributes renders as bare
	// `.class`/`#id`.
	if node.Name != "" && (node.Name != "div" || len(primary) == 0) {
		r.out.PushString(r.dialect.beforeName + output.TagName(node.Name, r.cfg.Options))
	}

	r.pushPrimaryAttributes(primary)
	r.pushSecondaryAttributes(secondary)

	if node.SelfClosing && node.Value == nil && len(node.Children) == 0 {
		if r.dialect.selfClose != "" {
			r.out.PushString(r.dialect.selfClose)
		}
	} else {
		r.pushValue(node)
		r.renderChildren(node, r.element)
	}

	r.out.Level -= level
}

func (r *indentRenderer) shouldFormat(node *abbr.Node, index int) bool {
	if r.parent == nil && index == 0 {
		return false
	}
	return !node.IsSnippet()
}

// collectAttributes splits id/class (rendered with #/. shorthand) from
// the rest.
func collectAttributes(node *abbr.Node) (primary, secondary []abbr.Attribute) {
	for _, attr := range node.Attributes {
		if attr.Value != nil && (attr.Name == "id" || attr.Name == "class") {
			primary = append(primary, attr)
		} else {
			secondary = append(secondary, attr)
		}
	}
	return primary, secondary
}

func (r *indentRenderer) pushPrimaryAttributes(attrs []abbr.Attribute) {
	for _, attr := range attrs {
		value := strings.TrimSpace(attr.Value.String())
		if attr.Name == "class" {
			r.out.PushString("." + strings.Join(strings.Fields(value), "."))
		} else {
			r.out.PushString("#" + value)
		}
	}
}

func (r *indentRenderer) pushSecondaryAttributes(attrs []abbr.Attribute) {
	if len(attrs) == 0 {
		return
	}
	opts := r.cfg.Options

	r.out.PushString(r.dialect.beforeAttribute)
	for i, attr := range attrs {
		if attr.Implied && attr.Value == nil {
			continue
		}
		r.out.PushString(output.AttrName(attr.Name, opts))
		boolean := attr.Value == nil && (attr.Boolean || output.IsBooleanAttribute(attr.Name, opts))
		if boolean {
			if !opts.CompactBoolean && r.dialect.booleanValue != "" {
				r.out.PushString("=" + r.dialect.booleanValue)
			}
		} else {
			lq, rq := attrQuotes(attr, opts)
			r.out.PushString("=" + lq)
			if attr.Value != nil {
				r.pushTokens(attr.Value)
			} else {
				r.pushTokens(caret)
			}
			r.out.PushString(rq)
		}
		if i != len(attrs)-1 && r.dialect.glueAttribute != "" {
			r.out.PushString(r.dialect.glueAttribute)
		}
	}
	r.out.PushString(r.dialect.afterAttribute)
}

// pushValue writes the node's text. Multi-line values indent one level,
// each line wrapped in the dialect's text-line markers and right-padded
// to a common width when a trailing marker is configured.
func (r *indentRenderer) pushValue(node *abbr.Node) {
	if node.Value == nil && len(node.Children) > 0 {
		return
	}
	value := node.Value
	if value == nil {
		value = caret
	}

	lines := splitValueByLines(value)
	if len(lines) == 1 {
		if node.Name != "" || node.Attributes != nil {
			r.out.Push(" ")
		}
		r.pushTokens(value)
		return
	}

	maxLength := 0
	lengths := make([]int, len(lines))
	for i, line := range lines {
		lengths[i] = valueLength(line)
		if lengths[i] > maxLength {
			maxLength = lengths[i]
		}
	}

	r.out.Level++
	for i, line := range lines {
		r.out.PushNewline(true)
		if r.dialect.beforeTextLine != "" {
			r.out.Push(r.dialect.beforeTextLine)
		}
		r.pushTokens(line)
		if r.dialect.afterTextLine != "" {
			r.out.Push(strings.Repeat(" ", maxLength-lengths[i]))
			r.out.Push(r.dialect.afterTextLine)
		}
	}
	r.out.Level--
}

// splitValueByLines breaks a mixed text/field value into per-line
// values, splitting text items on newlines.
func splitValueByLines(value abbr.Value) []abbr.Value {
	lines := []abbr.Value{nil}
	for _, item := range value {
		text, ok := item.(abbr.Text)
		if !ok {
			lines[len(lines)-1] = append(lines[len(lines)-1], item)
			continue
		}
		parts := output.SplitByLines(string(text))
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], abbr.Text(part))
			}
		}
	}
	return lines
}

func valueLength(value abbr.Value) int {
	n := 0
	for _, item := range value {
		switch t := item.(type) {
		case abbr.Text:
			n += len([]rune(string(t)))
		case abbr.Field:
			n += len([]rune(t.Name))
		}
	}
	return n
}
