package js

// consumeRegExpToken scans a regular expression body and flag set. It assumes
// the dispatcher has already committed to regex mode on a /. The body is only
// delimited, not validated; pattern errors are the parser's concern.
func (s *Scanner) consumeRegExpToken(flags Flags) TokenType {
	start := s.r.Pos()
	s.r.Move(1)
	inClass := false
	for {
		c := s.r.Peek(0)
		if !inClass && c == '/' {
			s.regexpBody = s.r.Slice(start+1, s.r.Pos())
			s.r.Move(1)
			break
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '\\' {
			s.r.Move(1)
			c = s.r.Peek(0)
		}
		if c == '\n' || c == '\r' || c == 0 && s.r.Pos() == s.r.Len() {
			s.error(UnterminatedRegExp, s.tokenPos)
			return ErrorToken
		} else if 0xC0 <= c {
			r, n := s.r.PeekRune(0)
			if r == '\u2028' || r == '\u2029' {
				s.error(UnterminatedRegExp, s.tokenPos)
				return ErrorToken
			}
			s.r.Move(n)
			continue
		}
		s.r.Move(1)
	}

	flagStart := s.r.Pos()
	seen := 0
	for {
		c := s.r.Peek(0)
		if identifierTable[c] {
			switch c {
			case 'd', 'g', 'i', 'm', 's', 'u', 'y':
				// ok
			case 'v':
				if flags&NextFlag == 0 {
					s.error(UnexpectedTokenRegExpFlag, s.r.Pos(), rune(c))
				}
			default:
				s.error(UnexpectedTokenRegExpFlag, s.r.Pos(), rune(c))
				s.r.Move(1)
				continue
			}
			if bit := 1 << (c - 'a'); seen&bit != 0 {
				s.error(DuplicateRegExpFlag, s.r.Pos(), rune(c))
			} else {
				seen |= bit
			}
			s.r.Move(1)
		} else if 0xC0 <= c {
			r, n := s.r.PeekRune(0)
			if !isIdentifierPart(r) {
				break
			}
			s.error(UnexpectedTokenRegExpFlag, s.r.Pos(), r)
			s.r.Move(n)
		} else {
			break
		}
	}
	s.regexpFlags = s.r.Slice(flagStart, s.r.Pos())
	return RegExpToken
}
