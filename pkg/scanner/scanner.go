// Package scanner provides a generic character-code cursor over a string.
// It is the foundation for every tokenizer in the engine: the markup
// abbreviation tokenizer, the stylesheet tokenizer, and the backward
// abbreviation extractor all drive a Scanner.
package scanner

// Matcher reports whether a character code should be consumed.
type Matcher func(code rune) bool

// Scanner is a mutable cursor over a string. Pos advances monotonically
// during a single tokenize pass; Start marks the beginning of the
// currently-accumulating token.
//
// Invariant: 0 <= Pos <= End <= len(source in runes). All consuming
// operations leave Pos unchanged on failure, so callers never need to
// roll back after a failed Eat.
type Scanner struct {
	source []rune
	start  int
	end    int

	// Start is the rune offset of the token currently being accumulated.
	Start int

	// Pos is the current rune offset.
	Pos int
}

// New creates a scanner over the full source string.
func New(source string) *Scanner {
	runes := []rune(source)
	return &Scanner{
		source: runes,
		start:  0,
		end:    len(runes),
	}
}

// Limit returns a view over the [start, end) sub-range sharing the same
// backing string. Offsets reported by the view remain absolute.
func (s *Scanner) Limit(start, end int) *Scanner {
	if start < 0 {
		start = 0
	}
	if end > len(s.source) {
		end = len(s.source)
	}
	return &Scanner{
		source: s.source,
		start:  start,
		end:    end,
		Start:  start,
		Pos:    start,
	}
}

// EOF reports whether the cursor reached the end of the scanned range.
func (s *Scanner) EOF() bool {
	return s.Pos >= s.end
}

// Peek returns the character code at the current position without
// consuming it, or 0 at EOF.
func (s *Scanner) Peek() rune {
	if s.Pos >= s.end || s.Pos < s.start {
		return 0
	}
	return s.source[s.Pos]
}

// Next consumes and returns the character code at the current position,
// or 0 at EOF.
func (s *Scanner) Next() rune {
	if s.EOF() {
		return 0
	}
	code := s.source[s.Pos]
	s.Pos++
	return code
}

// Eat consumes the next character if it matches the given character code
// and reports whether it did.
func (s *Scanner) Eat(code rune) bool {
	if s.Peek() == code && !s.EOF() {
		s.Pos++
		return true
	}
	return false
}

// EatFunc consumes the next character if the matcher accepts it.
func (s *Scanner) EatFunc(match Matcher) bool {
	if !s.EOF() && match(s.Peek()) {
		s.Pos++
		return true
	}
	return false
}

// EatWhile consumes characters while the matcher accepts them and reports
// whether at least one character was consumed.
func (s *Scanner) EatWhile(match Matcher) bool {
	start := s.Pos
	for !s.EOF() && match(s.Peek()) {
		s.Pos++
	}
	return s.Pos != start
}

// BackUp moves the cursor n characters back, clamped to the range start.
func (s *Scanner) BackUp(n int) {
	s.Pos -= n
	if s.Pos < s.start {
		s.Pos = s.start
	}
}

// Current returns the substring between Start and Pos.
func (s *Scanner) Current() string {
	return s.Substring(s.Start, s.Pos)
}

// Substring returns the source text between the given rune offsets.
func (s *Scanner) Substring(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.source) {
		end = len(s.source)
	}
	if start >= end {
		return ""
	}
	return string(s.source[start:end])
}

// Error creates a positioned error at the current cursor location.
func (s *Scanner) Error(message string) *Error {
	return &Error{Message: message, Pos: s.Pos}
}
