package markup

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/goemmet/pkg/abbr"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/lorem"
)

var reLorem = regexp.MustCompile(`(?i)^lorem([a-z]*)(\d*)(-\d+)?$`)

// loremText replaces `lorem[lang][min[-max]]` nodes with generated
// filler text. The first iteration of a repeated lorem node opens with
// the canonical filler phrase.
func loremText(node *abbr.Node, ancestors []*abbr.Node, cfg *config.Config) {
	m := reLorem.FindStringSubmatch(node.Name)
	if m == nil {
		return
	}

	minWords := 30
	if m[2] != "" {
		minWords, _ = strconv.Atoi(m[2])
		if minWords < 1 {
			minWords = 1
		}
	}
	maxWords := minWords
	if m[3] != "" {
		maxWords, _ = strconv.Atoi(m[3][1:])
		if maxWords < minWords {
			maxWords = minWords
		}
	}
	wordCount := minWords
	if maxWords > minWords {
		wordCount += rand.IntN(maxWords - minWords + 1)
	}

	repeat := node.Repeat
	if repeat == nil {
		repeat = findRepeater(ancestors)
	}
	startWithCommon := repeat == nil || repeat.Value == 0

	hadRepeat := node.Repeat != nil
	node.Name = ""
	node.Attributes = nil
	node.Value = abbr.Value{abbr.Text(lorem.Paragraph(strings.ToLower(m[1]), wordCount, startWithCommon))}

	if hadRepeat && len(ancestors) > 0 {
		resolveImplicitTag(node, ancestors, cfg)
	}
}

func findRepeater(ancestors []*abbr.Node) *abbr.Repeat {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Repeat != nil {
			return ancestors[i].Repeat
		}
	}
	return nil
}
