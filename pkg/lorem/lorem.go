// Package lorem generates filler text paragraphs from per-language word
// banks. Word counts are exact; content is randomized.
package lorem

import (
	"math/rand/v2"
	"strings"
)

type vocabulary struct {
	common []string
	words  []string
}

var banks = map[string]vocabulary{
	"latin": {
		common: []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipisicing", "elit"},
		words: []string{
			"exercitationem", "perferendis", "perspiciatis", "laborum", "eveniet",
			"sunt", "iure", "nam", "nobis", "eum", "cum", "officiis", "excepturi",
			"odio", "consectetur", "quasi", "aut", "quisquam", "vel", "eligendi",
			"itaque", "non", "odit", "tempore", "quaerat", "dignissimos",
			"facilis", "neque", "nihil", "expedita", "vitae", "vero", "ipsum",
			"nisi", "animi", "cumque", "pariatur", "velit", "modi", "natus",
			"iusto", "eaque", "sequi", "illo", "sed", "ex", "et", "voluptatibus",
			"tempora", "veritatis", "ratione", "assumenda", "incidunt", "nostrum",
			"placeat", "aliquid", "fuga", "provident", "praesentium", "rem",
			"necessitatibus", "suscipit", "adipisci", "quidem", "possimus",
			"voluptas", "debitis", "sint", "accusantium", "unde", "sapiente",
			"voluptate", "qui", "aspernatur", "laudantium", "soluta", "amet",
			"quo", "aliquam", "saepe", "culpa", "libero", "ipsa", "dicta",
			"reiciendis", "nesciunt", "doloribus", "autem", "impedit", "minima",
			"maiores", "repudiandae", "ipsam", "obcaecati", "ullam", "enim",
			"totam", "delectus", "ducimus", "quis", "voluptates", "dolores",
			"molestiae", "harum", "dolorem", "quia", "voluptatem", "molestias",
			"magni", "distinctio", "omnis", "illum", "dolorum", "voluptatum", "ea",
			"quas", "quam", "corporis", "quae", "blanditiis", "atque", "deserunt",
			"laboriosam", "earum", "consequuntur", "hic", "cupiditate",
			"quibusdam", "accusamus", "ut", "rerum", "error", "minus", "eius",
			"ab", "ad", "nemo", "fugit", "officia", "at", "in", "id", "quos",
			"reprehenderit", "numquam", "iste", "fugiat", "sit", "inventore",
			"beatae", "repellendus", "magnam", "recusandae", "quod", "explicabo",
			"doloremque", "aperiam", "consequatur", "asperiores", "commodi",
			"optio", "dolor", "labore", "temporibus", "repellat", "veniam",
			"architecto", "est", "esse", "mollitia", "nulla", "a", "similique",
			"eos", "alias", "dolore", "tenetur", "deleniti", "porro", "facere",
			"maxime", "corrupti",
		},
	},
	"ru": {
		common: []string{"далеко-далеко", "за", "словесными", "горами", "в", "стране", "гласных", "и", "согласных", "живут", "рыбные", "тексты"},
		words: []string{
			"вдали", "от", "всех", "живут", "они", "в", "буквенных", "домах",
			"на", "берегу", "семантика", "большого", "языкового", "океана",
			"маленький", "ручеек", "даль", "журчит", "по", "всей", "обеспечивает",
			"ее", "всеми", "необходимыми", "правилами", "эта", "парадигматическая",
			"страна", "которой", "жаренные", "предложения", "залетают", "прямо",
			"рот", "даже", "всемогущая", "пунктуация", "не", "имеет", "власти",
			"над", "рыбными", "текстами", "ведущими", "безорфографичный", "образ",
			"жизни", "однажды", "одна", "маленькая", "строчка", "рыбного",
			"текста", "имени", "lorem", "ipsum", "решила", "выйти", "большой",
			"мир", "грамматики",
		},
	},
}

// HasLanguage reports whether a word bank exists for lang.
func HasLanguage(lang string) bool {
	_, ok := banks[lang]
	return ok
}

// Paragraph produces exactly wordCount words from the lang word bank
// (latin when lang is unknown), arranged into punctuated sentences. When
// startWithCommon is set the paragraph opens with the bank's canonical
// filler phrase.
func Paragraph(lang string, wordCount int, startWithCommon bool) string {
	bank, ok := banks[lang]
	if !ok {
		bank = banks["latin"]
	}
	if wordCount <= 0 {
		return ""
	}

	var sb strings.Builder
	total := 0

	if startWithCommon {
		n := min(wordCount, len(bank.common))
		sb.WriteString(sentence(bank.common[:n], total+n < wordCount))
		total += n
	}

	for total < wordCount {
		n := min(3+rand.IntN(10), wordCount-total)
		ws := sample(bank.words, n)
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sentence(ws, false))
		total += n
	}

	return sb.String()
}

// sample picks n words at random, avoiding immediate repeats.
func sample(words []string, n int) []string {
	out := make([]string, 0, n)
	prev := -1
	for len(out) < n {
		i := rand.IntN(len(words))
		if i == prev {
			continue
		}
		out = append(out, words[i])
		prev = i
	}
	return out
}

// sentence joins words with commas sprinkled in, capitalizes the first
// word and appends a terminator. continued swaps the terminator for a
// comma so a common-opener phrase can flow into the next sentence.
func sentence(words []string, continued bool) string {
	if len(words) == 0 {
		return ""
	}
	words = insertCommas(words)

	var sb strings.Builder
	sb.WriteString(capitalize(words[0]))
	for _, w := range words[1:] {
		sb.WriteByte(' ')
		sb.WriteString(w)
	}
	if continued {
		sb.WriteByte(',')
	} else {
		sb.WriteString(terminator())
	}
	return sb.String()
}

func insertCommas(words []string) []string {
	if len(words) < 4 {
		return words
	}
	out := make([]string, len(words))
	copy(out, words)
	commas := rand.IntN(len(words) / 4)
	for i := 0; i < commas; i++ {
		pos := 1 + rand.IntN(len(out)-2)
		if !strings.HasSuffix(out[pos], ",") {
			out[pos] += ","
		}
	}
	return out
}

func terminator() string {
	switch rand.IntN(10) {
	case 0:
		return "!"
	case 1:
		return "?"
	default:
		return "."
	}
}

func capitalize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
