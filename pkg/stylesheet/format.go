package stylesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/cssabbr"
	"github.com/yaklabco/goemmet/pkg/output"
)

// Render formats resolved stylesheet nodes as CSS text, one declaration
// per line.
func Render(nodes []*ResolvedNode, cfg *config.Config) string {
	out := output.New(cfg.Options, 0)

	if cfg.Context != nil && cfg.Context.Name == config.ScopeSection {
		// Between rule sections only matched snippets make sense;
		// unresolved fragments would emit bare garbage.
		matched := nodes[:0:0]
		for _, node := range nodes {
			if node.Snippet != nil {
				matched = append(matched, node)
			}
		}
		nodes = matched
	}

	for i, node := range nodes {
		if cfg.Options.Format && i != 0 {
			out.PushNewline(true)
		}
		renderProperty(node.Property, out, cfg.Options)
	}
	return out.String()
}

func renderProperty(node *cssabbr.Property, out *output.Stream, opts *config.Options) {
	if node.Name == "" {
		// Raw snippet output: value groups only, no name/value framing.
		for i, cssVal := range node.Value {
			if i != 0 {
				out.Push(" ")
			}
			renderValue(cssVal, out, opts)
		}
		renderImportant(node, out, len(node.Value) > 0)
		return
	}

	name := node.Name
	if opts.StylesheetJSON {
		name = toCamelCase(name)
	}
	out.PushString(name + opts.StylesheetBetween)

	if len(node.Value) > 0 {
		renderPropertyValue(node, out, opts)
	} else {
		out.PushField(0, "")
	}

	if opts.StylesheetJSON {
		// CSS-in-JS declarations always end with a comma and have no
		// !important form.
		out.Push(",")
	} else {
		renderImportant(node, out, true)
		out.Push(opts.StylesheetAfter)
	}
}

func renderPropertyValue(node *cssabbr.Property, out *output.Stream, opts *config.Options) {
	if opts.StylesheetJSON {
		// A lone pixel or unitless number becomes a JS number.
		if num, ok := singleNumeric(node); ok && (num.Unit == "" || num.Unit == "px") {
			out.Push(frac(num.Value, 4))
			return
		}
	}

	quote := jsonQuote(opts)
	if opts.StylesheetJSON {
		out.Push(quote)
	}
	for i := range node.Value {
		if i != 0 {
			out.Push(" ")
		}
		renderValue(node.Value[i], out, opts)
	}
	if opts.StylesheetJSON {
		out.Push(quote)
	}
}

func renderImportant(node *cssabbr.Property, out *output.Stream, separator bool) {
	if !node.Important {
		return
	}
	if separator {
		out.Push(" ")
	}
	out.Push("!important")
}

// renderValue emits one value group with spaces between fragments. A
// field written flush against the previous token, as produced by
// `${1}${2}` snippet bodies, stays unseparated.
func renderValue(value cssabbr.CSSValue, out *output.Stream, opts *config.Options) {
	prevEnd := -1
	for i, item := range value.Value {
		if i != 0 && !fieldAt(item, prevEnd) {
			out.Push(" ")
		}
		renderToken(item, out, opts)
		prevEnd = itemEnd(item)
	}
}

func fieldAt(item cssabbr.ValueItem, pos int) bool {
	tok, ok := item.(cssabbr.TokenItem)
	if !ok {
		return false
	}
	f, ok := tok.Token.(cssabbr.Field)
	if !ok {
		return false
	}
	start, _ := f.Range()
	return start == pos
}

func itemEnd(item cssabbr.ValueItem) int {
	if tok, ok := item.(cssabbr.TokenItem); ok {
		_, end := tok.Token.Range()
		return end
	}
	return -1
}

func renderToken(item cssabbr.ValueItem, out *output.Stream, opts *config.Options) {
	switch t := item.(type) {
	case cssabbr.FunctionCall:
		out.Push(t.Name + "(")
		for i, arg := range t.Arguments {
			if i != 0 {
				out.Push(", ")
			}
			renderValue(arg, out, opts)
		}
		out.Push(")")
	case cssabbr.TokenItem:
		switch tok := t.Token.(type) {
		case cssabbr.ColorValue:
			out.Push(colorString(tok, opts.StylesheetShortHex))
		case cssabbr.Literal:
			out.PushString(tok.Value)
		case cssabbr.NumberValue:
			out.PushString(frac(tok.Value, 4) + tok.Unit)
		case cssabbr.StringValue:
			q := "'"
			if !tok.Single {
				q = "\""
			}
			out.PushString(q + tok.Value + q)
		case cssabbr.Field:
			out.PushField(tok.Index, tok.Name)
		}
	}
}

// colorString formats a parsed color shortcut. Fully transparent black
// becomes the transparent keyword, opaque colors become hex and
// anything else rgba().
func colorString(token cssabbr.ColorValue, shortHex bool) string {
	if token.R == 0 && token.G == 0 && token.B == 0 && token.A == 0 {
		return "transparent"
	}
	if token.A == 1 {
		if shortHex && isShortHex(token) {
			return fmt.Sprintf("#%x%x%x", token.R/17, token.G/17, token.B/17)
		}
		return fmt.Sprintf("#%02x%02x%02x", token.R, token.G, token.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", token.R, token.G, token.B, frac(token.A, 8))
}

// isShortHex reports whether each channel repeats a single hex nibble.
func isShortHex(token cssabbr.ColorValue) bool {
	return token.R%17 == 0 && token.G%17 == 0 && token.B%17 == 0
}

// frac formats a number with up to the given fraction digits, trimming
// trailing zeros.
func frac(num float64, digits int) string {
	s := strconv.FormatFloat(num, 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func singleNumeric(node *cssabbr.Property) (cssabbr.NumberValue, bool) {
	if len(node.Value) != 1 || len(node.Value[0].Value) != 1 {
		return cssabbr.NumberValue{}, false
	}
	tok, ok := node.Value[0].Value[0].(cssabbr.TokenItem)
	if !ok {
		return cssabbr.NumberValue{}, false
	}
	num, ok := tok.Token.(cssabbr.NumberValue)
	return num, ok
}

func jsonQuote(opts *config.Options) string {
	if opts.StylesheetJSONDoubleQuotes {
		return "\""
	}
	return "'"
}

func toCamelCase(name string) string {
	var sb strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
