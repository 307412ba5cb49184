package stylesheet

import (
	"strings"

	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/cssabbr"
)

// ResolvedNode is one stylesheet abbreviation statement after snippet
// resolution. Snippet points at the dictionary entry the statement
// matched, if any.
type ResolvedNode struct {
	Property *cssabbr.Property
	Snippet  *Snippet
}

// Expand converts a stylesheet abbreviation into formatted CSS.
func Expand(abbr string, cfg *config.Config) (string, error) {
	nodes, err := Parse(abbr, cfg)
	if err != nil {
		return "", err
	}
	return Render(nodes, cfg), nil
}

// Parse parses a stylesheet abbreviation and resolves each statement
// against the snippet dictionary.
func Parse(abbr string, cfg *config.Config) ([]*ResolvedNode, error) {
	snippets := snippetsForScope(cachedSnippets(cfg), cfg)

	props, err := cssabbr.Parse(abbr, cssabbr.ParseOptions{Value: isValueScope(cfg)})
	if err != nil {
		return nil, err
	}

	nodes := make([]*ResolvedNode, 0, len(props))
	for _, prop := range props {
		nodes = append(nodes, resolveNode(prop, snippets, cfg))
	}
	return nodes, nil
}

// isValueScope reports whether the abbreviation should resolve as the
// value of a known CSS property instead of a full declaration. That is
// the case inside an explicit value scope or when the context names a
// concrete property.
func isValueScope(cfg *config.Config) bool {
	if cfg.Context == nil {
		return false
	}
	return cfg.Context.Name == config.ScopeValue || !strings.HasPrefix(cfg.Context.Name, "@@")
}

// snippetsForScope filters the dictionary by the abbreviation context:
// between rule sections only raw snippets apply, in property position
// only property snippets do.
func snippetsForScope(snippets []*Snippet, cfg *config.Config) []*Snippet {
	if cfg.Context == nil {
		return snippets
	}
	switch cfg.Context.Name {
	case config.ScopeSection:
		return filterSnippets(snippets, func(s *Snippet) bool { return !s.IsProperty() })
	case config.ScopeProperty:
		return filterSnippets(snippets, (*Snippet).IsProperty)
	}
	return snippets
}

func filterSnippets(snippets []*Snippet, keep func(*Snippet) bool) []*Snippet {
	out := make([]*Snippet, 0, len(snippets))
	for _, s := range snippets {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func resolveNode(node *cssabbr.Property, snippets []*Snippet, cfg *config.Config) *ResolvedNode {
	resolved := &ResolvedNode{Property: node}
	opts := cfg.Options
	minScore := opts.StylesheetFuzzySearchMinScore

	if !resolveGradient(node, cfg) {
		if isValueScope(cfg) {
			// Resolve fragments as the value of the context property.
			propName := cfg.Context.Name
			for _, s := range snippets {
				if s.IsProperty() && s.Property == propName {
					resolved.Snippet = s
					break
				}
			}
			resolveValueKeywords(node, opts, resolved.Snippet, minScore)
		} else if node.Name != "" {
			if snippet := matchSnippet(node.Name, snippets, minScore); snippet != nil {
				resolved.Snippet = snippet
				if snippet.IsProperty() {
					resolveAsProperty(node, snippet, opts, minScore)
				} else {
					resolveAsRaw(node, snippet)
				}
			}
		}
	}

	// Numeric units apply to properties only, never to raw text output.
	if node.Name != "" || cfg.Context != nil {
		resolveNumericValue(node, opts)
	}

	return resolved
}

func matchSnippet(name string, snippets []*Snippet, minScore float64) *Snippet {
	keys := make([]string, len(snippets))
	for i, s := range snippets {
		keys[i] = s.Key
	}
	if idx := findBestMatch(name, keys, minScore, true); idx >= 0 {
		return snippets[idx]
	}
	return nil
}

// resolveGradient rewrites the `lg` shorthand into a linear-gradient
// value. Without an explicit context the gradient lands on
// background-image.
func resolveGradient(node *cssabbr.Property, cfg *config.Config) bool {
	var gradientFn *cssabbr.FunctionCall
	if len(node.Value) == 1 && len(node.Value[0].Value) == 1 {
		if fn, ok := node.Value[0].Value[0].(cssabbr.FunctionCall); ok && fn.Name == "lg" {
			gradientFn = &fn
		}
	}
	if gradientFn == nil && node.Name != "lg" {
		return false
	}

	var fn cssabbr.FunctionCall
	if gradientFn != nil {
		fn = *gradientFn
		fn.Name = "linear-gradient"
	} else {
		fn = cssabbr.FunctionCall{
			Name: "linear-gradient",
			Arguments: []cssabbr.CSSValue{{Value: []cssabbr.ValueItem{
				cssabbr.TokenItem{Token: cssabbr.Field{Index: 0, HasIndex: true}},
			}}},
		}
	}

	if cfg.Context == nil {
		node.Name = "background-image"
	}
	node.Value = []cssabbr.CSSValue{{Value: []cssabbr.ValueItem{fn}}}
	return true
}

// resolveAsProperty rewrites a matched abbreviation into its snippet's
// property. A trailing fragment the match did not consume, as in `dib`
// against the `d` key, must resolve as a value keyword or the node is
// left untouched.
func resolveAsProperty(node *cssabbr.Property, snippet *Snippet, opts *config.Options, minScore float64) {
	inline := getUnmatchedPart(node.Name, snippet.Key)
	if inline != "" {
		if len(node.Value) > 0 {
			return
		}
		kw, ok := resolveKeyword(inline, opts, snippet, minScore)
		if !ok {
			return
		}
		node.Value = append(node.Value, cssabbr.CSSValue{Value: []cssabbr.ValueItem{kw}})
	}

	node.Name = snippet.Property

	if len(node.Value) > 0 {
		resolveValueKeywords(node, opts, snippet, minScore)
	} else if len(snippet.Value) > 0 {
		node.Value = cloneValues(snippet.Value[0])
	}
}

// resolveAsRaw turns the node into verbatim snippet text.
func resolveAsRaw(node *cssabbr.Property, snippet *Snippet) {
	node.Name = ""
	node.Value = []cssabbr.CSSValue{{Value: []cssabbr.ValueItem{
		cssabbr.TokenItem{Token: cssabbr.Literal{Value: snippet.Raw}},
	}}}
}

// getUnmatchedPart returns the trailing fragment of abbr that does not
// participate in the subsequence match against str.
func getUnmatchedPart(abbr, str string) string {
	lastPos := 0
	for i := 0; i < len(abbr); i++ {
		pos := strings.IndexByte(str[lastPos:], abbr[i])
		if pos < 0 {
			return abbr[i:]
		}
		lastPos += pos + 1
	}
	return ""
}

// resolveValueKeywords replaces literal fragments and function-call
// names with the best-matching snippet or global keyword. Arguments
// given in the abbreviation override the matched call's leading
// arguments.
func resolveValueKeywords(node *cssabbr.Property, opts *config.Options, snippet *Snippet, minScore float64) {
	for vi := range node.Value {
		items := node.Value[vi].Value
		for ti, item := range items {
			switch t := item.(type) {
			case cssabbr.TokenItem:
				lit, ok := t.Token.(cssabbr.Literal)
				if !ok {
					continue
				}
				if kw, ok := resolveKeyword(lit.Value, opts, snippet, minScore); ok {
					items[ti] = kw
				}
			case cssabbr.FunctionCall:
				kw, ok := resolveKeyword(t.Name, opts, snippet, minScore)
				if !ok {
					continue
				}
				fn, ok := kw.(cssabbr.FunctionCall)
				if !ok {
					continue
				}
				merged := fn
				if len(fn.Arguments) > len(t.Arguments) {
					merged.Arguments = append(append([]cssabbr.CSSValue(nil), t.Arguments...), fn.Arguments[len(t.Arguments):]...)
				} else {
					merged.Arguments = t.Arguments
				}
				items[ti] = merged
			}
		}
	}
}

func resolveKeyword(kw string, opts *config.Options, snippet *Snippet, minScore float64) (cssabbr.ValueItem, bool) {
	if snippet != nil {
		// A shorthand answers for its longhands too: their keywords are
		// searched after the snippet's own.
		keywords := make([]Keyword, 0, len(snippet.Keywords))
		keywords = append(keywords, snippet.Keywords...)
		for _, dep := range snippet.Dependencies {
			keywords = append(keywords, dep.Keywords...)
		}
		names := make([]string, len(keywords))
		for i, k := range keywords {
			names[i] = k.Name
		}
		if idx := findBestMatch(kw, names, minScore, false); idx >= 0 {
			return keywords[idx].Token, true
		}
	}
	if idx := findBestMatch(kw, opts.StylesheetKeywords, minScore, false); idx >= 0 {
		return cssabbr.TokenItem{Token: cssabbr.Literal{Value: opts.StylesheetKeywords[idx]}}, true
	}
	return nil, false
}

// resolveNumericValue expands unit aliases and attaches the default
// int/float unit to bare numbers. Zero stays unitless, as do values of
// properties in the unitless list.
func resolveNumericValue(node *cssabbr.Property, opts *config.Options) {
	for vi := range node.Value {
		items := node.Value[vi].Value
		for ti, item := range items {
			tok, ok := item.(cssabbr.TokenItem)
			if !ok {
				continue
			}
			num, ok := tok.Token.(cssabbr.NumberValue)
			if !ok {
				continue
			}
			if num.Unit != "" {
				if alias, ok := opts.StylesheetUnitAliases[num.Unit]; ok {
					num.Unit = alias
				}
			} else if num.Value != 0 && !containsString(opts.StylesheetUnitless, node.Name) {
				if strings.Contains(num.RawValue, ".") {
					num.Unit = opts.StylesheetFloatUnit
				} else {
					num.Unit = opts.StylesheetIntUnit
				}
			}
			items[ti] = cssabbr.TokenItem{Token: num}
		}
	}
}

// cloneValues copies value groups so resolved nodes never mutate the
// cached snippet dictionary.
func cloneValues(values []cssabbr.CSSValue) []cssabbr.CSSValue {
	out := make([]cssabbr.CSSValue, len(values))
	for i, v := range values {
		items := make([]cssabbr.ValueItem, len(v.Value))
		copy(items, v.Value)
		out[i] = cssabbr.CSSValue{Value: items}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
