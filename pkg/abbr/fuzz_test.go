package abbr_test

import (
	"testing"

	"github.com/yaklabco/goemmet/pkg/abbr"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"ul>li.item$*3",
		"a[href=# title=\"hello\"]{text}",
		"(div>dl>(dt+dd)*3)+footer>p",
		"div[",
		"p*",
		"{unterminated",
		"a>b^^^c",
		"!!!",
		".#.#.",
		"sample$$$@-3*5",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tree, err := abbr.Parse(input, &abbr.ParseOptions{})
		if err != nil {
			return
		}
		if tree == nil {
			t.Fatalf("nil tree without error for %q", input)
		}
	})
}

func FuzzParseJSX(f *testing.F) {
	for _, seed := range []string{"Foo.Bar", "{expr}", "div.${class}", "a[onClick={handler}]"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		//nolint:errcheck // Only panics matter here.
		abbr.Parse(input, &abbr.ParseOptions{JSX: true})
	})
}
