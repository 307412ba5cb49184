// Package stylesheet implements the stylesheet half of the expansion
// pipeline: fuzzy snippet matching, the shorthand→longhand snippet
// graph, value/keyword/color resolution and the CSS renderer.
package stylesheet

import "strings"

// Score rates how well an abbreviation matches a candidate string in
// [0, 1]. The candidate must start with the abbreviation's first
// character and contain the rest as a subsequence; matches score higher
// the closer they sit to the candidate's start, doubled when a match
// directly follows a dash (so `bgc` rates `background-color` highly).
// With partialMatch set, a broken subsequence degrades the score instead
// of zeroing it.
func Score(abbr, str string, partialMatch bool) float64 {
	abbr = strings.ToLower(abbr)
	str = strings.ToLower(str)

	if abbr == str {
		return 1
	}
	if str == "" || abbr == "" || abbr[0] != str[0] {
		return 0
	}

	abbrLength := len(abbr)
	strLength := len(str)
	i, j := 1, 1
	score := float64(strLength)

	for i < abbrLength {
		ch := abbr[i]
		found := false
		acronym := false

		for j < strLength {
			if str[j] == ch {
				found = true
				bonus := 1.0
				if acronym {
					bonus = 2.0
				}
				score += float64(strLength-j) * bonus
				break
			}
			acronym = str[j] == '-'
			j++
		}

		if !found {
			if !partialMatch {
				return 0
			}
			break
		}
		i++
		j++
	}

	matchRatio := float64(i) / float64(abbrLength)
	delta := score / sumTo(strLength)
	return matchRatio * delta
}

func sumTo(n int) float64 {
	return float64(n) * float64(n+1) / 2
}

// findBestMatch returns the index of the best-scoring candidate, or -1
// when nothing clears minScore. Exact matches short-circuit; ties keep
// the first-found candidate.
func findBestMatch(abbr string, candidates []string, minScore float64, partialMatch bool) int {
	best := -1
	maxScore := 0.0
	for i, candidate := range candidates {
		score := Score(abbr, candidate, partialMatch)
		if score == 1 {
			return i
		}
		if score > maxScore {
			maxScore = score
			best = i
		}
	}
	if maxScore == 0 || maxScore < minScore {
		return -1
	}
	return best
}
