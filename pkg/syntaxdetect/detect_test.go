package syntaxdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goemmet/pkg/syntaxdetect"
)

func TestDetect_ByExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"index.html", "html"},
		{"page.htm", "html"},
		{"styles.css", "css"},
		{"styles.scss", "scss"},
		{"styles.sass", "sass"},
		{"styles.less", "less"},
		{"styles.styl", "stylus"},
		{"app.jsx", "jsx"},
		{"app.tsx", "jsx"},
		{"app.js", "jsx"},
		{"App.vue", "vue"},
		{"App.svelte", "svelte"},
		{"layout.pug", "pug"},
		{"layout.jade", "pug"},
		{"view.haml", "haml"},
		{"view.slim", "slim"},
		{"feed.xml", "xml"},
		{"transform.xsl", "xsl"},
	}

	for _, testCase := range tests {
		t.Run(testCase.filename, func(t *testing.T) {
			assert.Equal(t, testCase.expected, syntaxdetect.Detect(testCase.filename, nil))
		})
	}
}

func TestDetect_UnknownFallsBackToHTML(t *testing.T) {
	assert.Equal(t, "html", syntaxdetect.Detect("notes.bin", nil))
	assert.Equal(t, "html", syntaxdetect.Detect("README", nil))
}

func TestDetect_ContentHelpsWithoutExtension(t *testing.T) {
	content := []byte("<!DOCTYPE html>\n<html><body></body></html>\n")
	assert.Equal(t, "html", syntaxdetect.Detect("template", content))
}
