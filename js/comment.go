package js

func (s *Scanner) consumeSingleLineComment() {
	for {
		c := s.r.Peek(0)
		if c == '\r' || c == '\n' || c == 0 && s.r.Pos() == s.r.Len() {
			break
		} else if 0xC0 <= c {
			if r, _ := s.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
				break
			}
		}
		s.r.Move(1)
	}
}

// consumeCommentToken consumes a // or /* comment. It assumes to be on a /
// followed by a / or *. Returns false when a multi-line comment is not closed
// before the end of the source. A line terminator inside a multi-line comment
// counts as a line break before the next token.
func (s *Scanner) consumeCommentToken() bool {
	if s.r.Peek(1) == '/' {
		s.r.Move(2)
		s.consumeSingleLineComment()
		return true
	}
	s.r.Move(2)
	for {
		c := s.r.Peek(0)
		if c == '*' && s.r.Peek(1) == '/' {
			s.r.Move(2)
			return true
		} else if c == 0 && s.r.Pos() == s.r.Len() {
			s.error(UnterminatedComment, s.tokenPos)
			return false
		} else if s.consumeLineTerminator() {
			s.prevLineTerminator = true
		} else {
			s.r.Move(1)
		}
	}
}

// consumeHTMLLikeComment consumes <!-- as a single-line comment, and --> as
// one when only trivia precedes it on its line. Both forms are web
// compatibility extensions for script code; module code never has them.
func (s *Scanner) consumeHTMLLikeComment(flags Flags, prevLineTerminator bool) bool {
	if flags&ModuleFlag != 0 {
		return false
	}
	if c := s.r.Peek(0); c == '<' {
		if s.r.Peek(1) != '!' || s.r.Peek(2) != '-' || s.r.Peek(3) != '-' {
			return false
		}
		if flags&NoWebCompatFlag != 0 {
			s.error(HtmlCommentInWebCompat, s.r.Pos())
		}
		s.r.Move(4)
	} else {
		if !prevLineTerminator || s.r.Peek(1) != '-' || s.r.Peek(2) != '>' {
			return false
		}
		if flags&NoWebCompatFlag != 0 {
			s.error(HtmlCommentInWebCompat, s.r.Pos())
		}
		s.r.Move(3)
	}
	s.consumeSingleLineComment()
	return true
}
