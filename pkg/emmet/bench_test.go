package emmet_test

import (
	"testing"

	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/emmet"
)

func BenchmarkExpandMarkup(b *testing.B) {
	for b.Loop() {
		if _, err := emmet.Expand("ul>li.item$*10>a{Item $}", nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpandStylesheet(b *testing.B) {
	// A shared cache keeps the compiled snippet graph across iterations,
	// matching how an editor session behaves.
	user := &config.UserConfig{Syntax: "css", Cache: &config.Cache{}}
	for b.Loop() {
		if _, err := emmet.Expand("m10-20", user); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpandStylesheetCold(b *testing.B) {
	for b.Loop() {
		if _, err := emmet.Expand("m10-20", &config.UserConfig{Syntax: "css"}); err != nil {
			b.Fatal(err)
		}
	}
}
