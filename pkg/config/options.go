package config

import (
	"fmt"
	"strconv"
)

// StringCase selects identifier casing in rendered output.
type StringCase string

const (
	CaseAsIs  StringCase = ""
	CaseLower StringCase = "lower"
	CaseUpper StringCase = "upper"
)

// SelfClosingStyle selects how empty elements are closed.
type SelfClosingStyle string

const (
	SelfCloseHTML  SelfClosingStyle = "html"  // <br>
	SelfCloseXHTML SelfClosingStyle = "xhtml" // <br />
	SelfCloseXML   SelfClosingStyle = "xml"   // <br/>
)

// FieldFunc renders a tabstop/field placeholder. The default
// implementation returns the placeholder text unchanged; editor
// integrations substitute their own marker syntax.
type FieldFunc func(index int, placeholder string) string

// Options is the flat bag of expansion toggles. Callers address
// individual options by their dotted names (`output.indent`,
// `bem.enabled`) through ApplyMap; renderers and resolvers read the
// struct fields directly.
type Options struct {
	// output.*
	Indent           string
	BaseIndent       string
	Newline          string
	TagCase          StringCase
	AttributeCase    StringCase
	AttributeQuotes  string // "double" or "single"
	Format           bool
	FormatLeafNode   bool
	FormatSkip       []string
	FormatForce      []string
	InlineBreak      int
	CompactBoolean   bool
	BooleanAttributes []string
	ReverseAttributes bool
	SelfClosingStyle SelfClosingStyle
	Field            FieldFunc

	// markup.*
	InlineElements []string
	Href           bool

	// comment.*
	CommentEnabled bool
	CommentTrigger []string
	CommentBefore  string
	CommentAfter   string

	// bem.*
	BEMEnabled  bool
	BEMElement  string
	BEMModifier string

	// jsx.*
	JSXEnabled bool

	// stylesheet.*
	StylesheetKeywords            []string
	StylesheetUnitless            []string
	StylesheetShortHex            bool
	StylesheetBetween             string
	StylesheetAfter               string
	StylesheetIntUnit             string
	StylesheetFloatUnit           string
	StylesheetUnitAliases         map[string]string
	StylesheetJSON                bool
	StylesheetJSONDoubleQuotes    bool
	StylesheetFuzzySearchMinScore float64
}

// NewOptions returns the global option defaults.
func NewOptions() *Options {
	return &Options{
		Indent:          "\t",
		Newline:         "\n",
		AttributeQuotes: "double",
		Format:          true,
		FormatSkip:      []string{"html"},
		FormatForce:     []string{"body"},
		InlineBreak:     3,
		BooleanAttributes: []string{
			"contenteditable", "seamless", "async", "autofocus",
			"autoplay", "checked", "controls", "defer", "disabled",
			"formnovalidate", "hidden", "ismap", "loop", "multiple",
			"muted", "novalidate", "readonly", "required", "reversed",
			"selected", "typemustmatch",
		},
		SelfClosingStyle: SelfCloseHTML,
		Field:            func(index int, placeholder string) string { return placeholder },

		InlineElements: []string{
			"a", "abbr", "acronym", "applet", "b", "basefont", "bdo",
			"big", "br", "button", "cite", "code", "del", "dfn", "em",
			"font", "i", "iframe", "img", "input", "ins", "kbd", "label",
			"map", "object", "q", "s", "samp", "select", "small", "span",
			"strike", "strong", "sub", "sup", "textarea", "tt", "u",
			"var",
		},
		Href: true,

		CommentTrigger: []string{"id", "class"},
		CommentAfter:   "\n<!-- /[#ID][.CLASS] -->",

		BEMElement:  "__",
		BEMModifier: "_",

		StylesheetKeywords: []string{"auto", "inherit", "unset", "none"},
		StylesheetUnitless: []string{
			"z-index", "line-height", "opacity", "font-weight", "zoom",
			"flex", "flex-grow", "flex-shrink",
		},
		StylesheetBetween:  ": ",
		StylesheetAfter:    ";",
		StylesheetIntUnit:  "px",
		StylesheetFloatUnit: "em",
		StylesheetUnitAliases: map[string]string{
			"e": "em",
			"p": "%",
			"x": "ex",
			"r": "rem",
		},
	}
}

// Clone returns a deep copy so per-expansion overrides never leak into
// shared defaults.
func (o *Options) Clone() *Options {
	out := *o
	out.FormatSkip = append([]string(nil), o.FormatSkip...)
	out.FormatForce = append([]string(nil), o.FormatForce...)
	out.BooleanAttributes = append([]string(nil), o.BooleanAttributes...)
	out.InlineElements = append([]string(nil), o.InlineElements...)
	out.CommentTrigger = append([]string(nil), o.CommentTrigger...)
	out.StylesheetKeywords = append([]string(nil), o.StylesheetKeywords...)
	out.StylesheetUnitless = append([]string(nil), o.StylesheetUnitless...)
	out.StylesheetUnitAliases = make(map[string]string, len(o.StylesheetUnitAliases))
	for k, v := range o.StylesheetUnitAliases {
		out.StylesheetUnitAliases[k] = v
	}
	return &out
}

// ApplyMap sets options addressed by dotted names, as they appear in
// user YAML config and the public API. Unknown names are an error so
// config typos surface instead of silently doing nothing.
func (o *Options) ApplyMap(opts map[string]any) error {
	for name, raw := range opts {
		if err := o.apply(name, raw); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) apply(name string, raw any) error {
	var err error
	switch name {
	case "output.indent":
		o.Indent, err = toString(raw)
	case "output.baseIndent":
		o.BaseIndent, err = toString(raw)
	case "output.newline":
		o.Newline, err = toString(raw)
	case "output.tagCase":
		var s string
		s, err = toString(raw)
		o.TagCase = StringCase(s)
	case "output.attributeCase":
		var s string
		s, err = toString(raw)
		o.AttributeCase = StringCase(s)
	case "output.attributeQuotes":
		o.AttributeQuotes, err = toString(raw)
	case "output.format":
		o.Format, err = toBool(raw)
	case "output.formatLeafNode":
		o.FormatLeafNode, err = toBool(raw)
	case "output.formatSkip":
		o.FormatSkip, err = toStringSlice(raw)
	case "output.formatForce":
		o.FormatForce, err = toStringSlice(raw)
	case "output.inlineBreak":
		o.InlineBreak, err = toInt(raw)
	case "output.compactBoolean":
		o.CompactBoolean, err = toBool(raw)
	case "output.booleanAttributes":
		o.BooleanAttributes, err = toStringSlice(raw)
	case "output.reverseAttributes":
		o.ReverseAttributes, err = toBool(raw)
	case "output.selfClosingStyle":
		var s string
		s, err = toString(raw)
		o.SelfClosingStyle = SelfClosingStyle(s)
	case "inlineElements", "markup.inlineElements":
		o.InlineElements, err = toStringSlice(raw)
	case "markup.href":
		o.Href, err = toBool(raw)
	case "comment.enabled":
		o.CommentEnabled, err = toBool(raw)
	case "comment.trigger":
		o.CommentTrigger, err = toStringSlice(raw)
	case "comment.before":
		o.CommentBefore, err = toString(raw)
	case "comment.after":
		o.CommentAfter, err = toString(raw)
	case "bem.enabled":
		o.BEMEnabled, err = toBool(raw)
	case "bem.element":
		o.BEMElement, err = toString(raw)
	case "bem.modifier":
		o.BEMModifier, err = toString(raw)
	case "jsx.enabled":
		o.JSXEnabled, err = toBool(raw)
	case "stylesheet.keywords":
		o.StylesheetKeywords, err = toStringSlice(raw)
	case "stylesheet.unitless":
		o.StylesheetUnitless, err = toStringSlice(raw)
	case "stylesheet.shortHex":
		o.StylesheetShortHex, err = toBool(raw)
	case "stylesheet.between":
		o.StylesheetBetween, err = toString(raw)
	case "stylesheet.after":
		o.StylesheetAfter, err = toString(raw)
	case "stylesheet.intUnit":
		o.StylesheetIntUnit, err = toString(raw)
	case "stylesheet.floatUnit":
		o.StylesheetFloatUnit, err = toString(raw)
	case "stylesheet.unitAliases":
		o.StylesheetUnitAliases, err = toStringMap(raw)
	case "stylesheet.json":
		o.StylesheetJSON, err = toBool(raw)
	case "stylesheet.jsonDoubleQuotes":
		o.StylesheetJSONDoubleQuotes, err = toBool(raw)
	case "stylesheet.fuzzySearchMinScore":
		o.StylesheetFuzzySearchMinScore, err = toFloat(raw)
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	if err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}
	return nil
}

func toString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func toBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected bool, got %T", v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("expected int, got %T", v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func toStringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, err := toString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string list, got %T", v)
}

func toStringMap(v any) (map[string]string, error) {
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			str, err := toString(item)
			if err != nil {
				return nil, err
			}
			out[k] = str
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string map, got %T", v)
}
