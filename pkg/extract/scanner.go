package extract

// bwScanner walks a line of text right to left. pos is the exclusive
// end of the remaining text; peek reads the character just before it.
type bwScanner struct {
	text  string
	start int
	pos   int
}

func (s *bwScanner) sol() bool { return s.pos <= s.start }

func (s *bwScanner) peek() byte {
	if s.pos <= s.start {
		return 0
	}
	return s.text[s.pos-1]
}

// consume steps left over one character matching the predicate.
func (s *bwScanner) consume(match func(byte) bool) bool {
	if !s.sol() && match(s.peek()) {
		s.pos--
		return true
	}
	return false
}

func (s *bwScanner) consumeWhile(match func(byte) bool) bool {
	start := s.pos
	for s.consume(match) {
	}
	return s.pos != start
}

// consumeString steps left over an exact string.
func (s *bwScanner) consumeString(str string) bool {
	if s.pos-len(str) < s.start {
		return false
	}
	if s.text[s.pos-len(str):s.pos] != str {
		return false
	}
	s.pos -= len(str)
	return true
}

// consumePair steps left over a balanced close..open run, quotes
// included verbatim.
func (s *bwScanner) consumePair(close, open byte) bool {
	start := s.pos
	if !s.consume(func(ch byte) bool { return ch == close }) {
		return false
	}
	for !s.sol() {
		if s.consume(func(ch byte) bool { return ch == open }) {
			return true
		}
		s.pos--
	}
	s.pos = start
	return false
}

// consumeQuoted steps left over a quoted string, honoring backslash
// escapes.
func (s *bwScanner) consumeQuoted() bool {
	start := s.pos
	quote := s.peek()
	if !isQuoteChar(quote) {
		return false
	}
	s.pos--
	for !s.sol() {
		ch := s.peek()
		s.pos--
		if ch == quote && s.peek() != '\\' {
			return true
		}
	}
	s.pos = start
	return false
}

// isAtHTMLTag reports whether the text behind the scanner ends with a
// complete HTML tag, which terminates abbreviation extraction.
func isAtHTMLTag(s *bwScanner) bool {
	start := s.pos
	ok := consumeHTMLTag(s)
	s.pos = start
	return ok
}

func consumeHTMLTag(s *bwScanner) bool {
	if !s.consume(func(ch byte) bool { return ch == '>' }) {
		return false
	}
	s.consume(isSlashChar) // self-closing tag

	for !s.sol() {
		s.consumeWhile(isSpaceChar)

		if consumeIdent(s) {
			// Either a tag name, a boolean attribute or an unquoted
			// attribute value.
			if s.consume(isSlashChar) {
				// closing tag: `</name>`
				return s.consume(func(ch byte) bool { return ch == '<' })
			}
			if s.consume(func(ch byte) bool { return ch == '<' }) {
				return true
			}
			if s.consume(isSpaceChar) {
				continue
			}
			if s.consume(func(ch byte) bool { return ch == '=' }) {
				if consumeIdent(s) {
					continue
				}
			}
			return false
		}

		if consumeAttribute(s) {
			continue
		}
		return false
	}
	return false
}

// consumeAttribute steps left over `name="value"`.
func consumeAttribute(s *bwScanner) bool {
	start := s.pos
	if s.consumeQuoted() &&
		s.consume(func(ch byte) bool { return ch == '=' }) &&
		consumeIdent(s) {
		return true
	}
	s.pos = start
	return false
}

func consumeIdent(s *bwScanner) bool {
	return s.consumeWhile(isIdentChar)
}

func isIdentChar(ch byte) bool {
	return ch == ':' || ch == '-' ||
		ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9'
}

func isSpaceChar(ch byte) bool { return ch == ' ' || ch == '\t' }
func isSlashChar(ch byte) bool { return ch == '/' }
