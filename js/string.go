package js

import (
	"unicode/utf8"
)

// consumeStringToken scans a single- or double-quoted string literal. The
// cooked value is a direct slice of the source until the first escape, after
// which it is accumulated in the scratch buffer.
func (s *Scanner) consumeStringToken(flags Flags) TokenType {
	delim := s.r.Peek(0)
	s.r.Move(1)
	chunkStart := s.r.Pos()
	escaped := false
	failed := false
	for {
		c := s.r.Peek(0)
		if c == delim {
			if escaped {
				s.literal = append(s.literal, s.r.Slice(chunkStart, s.r.Pos())...)
				s.cooked = s.literal
			} else {
				s.cooked = s.r.Slice(chunkStart, s.r.Pos())
			}
			s.r.Move(1)
			if failed {
				return ErrorToken
			}
			return StringToken
		} else if c == '\\' {
			if !escaped {
				s.literal = s.literal[:0]
				escaped = true
			}
			s.hasEscape = true
			s.literal = append(s.literal, s.r.Slice(chunkStart, s.r.Pos())...)
			if !s.consumeEscape(flags, false) {
				failed = true
			}
			chunkStart = s.r.Pos()
		} else if c == '\n' || c == '\r' {
			s.error(UnterminatedString, s.tokenPos)
			return ErrorToken
		} else if c == 0 && s.r.Pos() == s.r.Len() {
			s.error(UnterminatedString, s.tokenPos)
			return ErrorToken
		} else if 0xC0 <= c {
			if !s.consumeLineTerminator() { // U+2028 and U+2029 may appear raw
				_, n := s.r.PeekRune(0)
				s.r.Move(n)
			}
		} else {
			s.r.Move(1)
		}
	}
}

// consumeEscape decodes one backslash escape, appending its cooked form to
// the scratch buffer. In template mode nothing is reported: an escape without
// a cooked value marks the template invalid, and the tagged/untagged decision
// is deferred to the parser.
func (s *Scanner) consumeEscape(flags Flags, inTemplate bool) bool {
	escStart := s.r.Pos()
	s.r.Move(1)
	c := s.r.Peek(0)
	switch c {
	case 'n':
		s.r.Move(1)
		s.literal = append(s.literal, '\n')
	case 'r':
		s.r.Move(1)
		s.literal = append(s.literal, '\r')
	case 't':
		s.r.Move(1)
		s.literal = append(s.literal, '\t')
	case 'b':
		s.r.Move(1)
		s.literal = append(s.literal, '\b')
	case 'f':
		s.r.Move(1)
		s.literal = append(s.literal, '\f')
	case 'v':
		s.r.Move(1)
		s.literal = append(s.literal, '\v')
	case 'x':
		s.r.Move(1)
		h1 := hexDigit(s.r.Peek(0))
		h2 := hexDigit(s.r.Peek(1))
		if h1 < 0 || h2 < 0 {
			if inTemplate {
				s.templateInvalid = true
			} else {
				s.error(InvalidHexEscape, escStart)
			}
			return false
		}
		s.r.Move(2)
		s.literal = utf8.AppendRune(s.literal, rune(h1<<4|h2))
	case 'u':
		s.r.Move(-1) // consumeUnicodeEscape expects to be on the backslash
		r, ok := s.consumeUnicodeEscape(!inTemplate)
		if !ok {
			if inTemplate {
				s.templateInvalid = true
			}
			return false
		}
		s.literal = utf8.AppendRune(s.literal, r)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if d := s.r.Peek(1); c == '0' && (d < '0' || '9' < d) {
			s.r.Move(1)
			s.literal = append(s.literal, 0)
			break
		}
		// legacy octal escape
		if inTemplate {
			s.templateInvalid = true
			s.r.Move(1)
			s.consumeOctalTail(c)
			return false
		}
		if flags&StrictFlag != 0 {
			s.error(StrictOctalEscape, escStart)
		}
		s.r.Move(1)
		s.literal = utf8.AppendRune(s.literal, s.consumeOctalTail(c))
	case '8', '9':
		if inTemplate {
			s.templateInvalid = true
			s.r.Move(1)
			return false
		}
		if flags&StrictFlag != 0 || flags&NoWebCompatFlag != 0 {
			s.error(StrictOctalEscape, escStart)
		}
		s.r.Move(1)
		s.literal = append(s.literal, c)
	case 0:
		if s.r.Pos() == s.r.Len() {
			return true // the unterminated literal is reported by the caller
		}
		s.r.Move(1)
		s.literal = append(s.literal, 0)
	default:
		if s.consumeLineTerminator() {
			break // line continuation cooks to nothing
		}
		r, n := s.r.PeekRune(0)
		s.r.Move(n)
		s.literal = utf8.AppendRune(s.literal, r)
	}
	return true
}

// consumeOctalTail finishes a legacy octal escape whose first digit has been
// consumed and returns its value. Three digits are allowed when the first is
// at most 3, keeping the value below 256.
func (s *Scanner) consumeOctalTail(first byte) rune {
	v := rune(first - '0')
	if c := s.r.Peek(0); '0' <= c && c <= '7' {
		v = v<<3 | rune(c-'0')
		s.r.Move(1)
		if c := s.r.Peek(0); first <= '3' && '0' <= c && c <= '7' {
			v = v<<3 | rune(c-'0')
			s.r.Move(1)
		}
	}
	return v
}
