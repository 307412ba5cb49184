package stylesheet

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/cssabbr"
)

// Snippet is a compiled stylesheet dictionary entry: either a raw text
// block or a CSS property with default value alternatives, resolvable
// keywords and shorthand→longhand dependency edges.
type Snippet struct {
	Key string

	// Property is the canonical property name; empty for raw snippets.
	Property string

	// Raw holds the verbatim body of a raw snippet.
	Raw string

	// Value holds one parsed value list per `|` alternative.
	Value [][]cssabbr.CSSValue

	// Keywords are the literal and function-call fragments of the value
	// alternatives, addressable by fuzzy keyword resolution. Order
	// follows first appearance so matching is deterministic.
	Keywords []Keyword

	// Dependencies are longhand properties nested under this shorthand.
	Dependencies []*Snippet
}

// Keyword is one resolvable value fragment of a property snippet.
type Keyword struct {
	Name  string
	Token cssabbr.ValueItem
}

// IsProperty reports whether the snippet resolves as a CSS property.
func (s *Snippet) IsProperty() bool { return s.Property != "" }

var reProperty = regexp.MustCompile(`^([a-z-]+)(?:\s*:\s*(.+))?$`)

// createSnippet compiles one dictionary entry. Values matching the
// `property[:value]` shape become property snippets; anything else is
// kept raw.
func createSnippet(key, value string) *Snippet {
	m := reProperty.FindStringSubmatch(value)
	if m == nil {
		return &Snippet{Key: key, Raw: value}
	}

	snippet := &Snippet{Key: key, Property: m[1]}
	if m[2] != "" {
		for _, alt := range strings.Split(m[2], "|") {
			parsed := parseValue(alt)
			if parsed == nil {
				continue
			}
			snippet.Value = append(snippet.Value, parsed)
			for _, cssVal := range parsed {
				collectKeywords(cssVal, snippet)
			}
		}
	}
	return snippet
}

func parseValue(value string) []cssabbr.CSSValue {
	props, err := cssabbr.Parse(strings.TrimSpace(value), cssabbr.ParseOptions{Value: true})
	if err != nil || len(props) == 0 {
		return nil
	}
	return props[0].Value
}

func collectKeywords(cssVal cssabbr.CSSValue, snippet *Snippet) {
	for _, item := range cssVal.Value {
		switch t := item.(type) {
		case cssabbr.TokenItem:
			switch tok := t.Token.(type) {
			case cssabbr.Literal:
				snippet.addKeyword(tok.Value, item)
			case cssabbr.Field:
				// `${1:auto}` also resolves as the literal `auto`.
				if name := strings.TrimSpace(tok.Name); name != "" {
					snippet.addKeyword(name, cssabbr.TokenItem{Token: cssabbr.Literal{Value: name}})
				}
			}
		case cssabbr.FunctionCall:
			snippet.addKeyword(t.Name, item)
		}
	}
}

func (s *Snippet) addKeyword(name string, token cssabbr.ValueItem) {
	for _, kw := range s.Keywords {
		if kw.Name == name {
			return
		}
	}
	s.Keywords = append(s.Keywords, Keyword{Name: name, Token: token})
}

// compileSnippets builds the snippet list from a config dictionary and
// links the shorthand→longhand dependency graph.
func compileSnippets(dict map[string]string) []*Snippet {
	snippets := make([]*Snippet, 0, len(dict))
	for key, value := range dict {
		snippets = append(snippets, createSnippet(key, value))
	}
	return nest(snippets)
}

// nest sorts snippets by key and links each longhand property under the
// nearest shorthand whose property name prefixes it at a dash boundary
// (`background` → `background-position` → `background-position-x`).
func nest(snippets []*Snippet) []*Snippet {
	sort.Slice(snippets, func(i, j int) bool { return snippets[i].Key < snippets[j].Key })

	var stack []*Snippet
	for _, cur := range snippets {
		if !cur.IsProperty() {
			continue
		}
		for len(stack) > 0 {
			prev := stack[len(stack)-1]
			if strings.HasPrefix(cur.Property, prev.Property) &&
				len(cur.Property) > len(prev.Property) &&
				cur.Property[len(prev.Property)] == '-' {
				prev.Dependencies = append(prev.Dependencies, cur)
				stack = append(stack, cur)
				break
			}
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			stack = append(stack, cur)
		}
	}
	return snippets
}

// cachedSnippets compiles the config's snippet dictionary, memoizing the
// result in the config's cache object.
func cachedSnippets(cfg *config.Config) []*Snippet {
	if cfg.Cache != nil {
		if cached, ok := cfg.Cache.StylesheetSnippets.([]*Snippet); ok {
			return cached
		}
	}
	snippets := compileSnippets(cfg.Snippets)
	if cfg.Cache != nil {
		cfg.Cache.StylesheetSnippets = snippets
	}
	return snippets
}
