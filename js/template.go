package js

// consumeTemplateToken scans a template body part. It assumes to be on a
// backtick, or on the } that closes a substitution when already within a
// template. head distinguishes the first part from a continuation.
func (s *Scanner) consumeTemplateToken(flags Flags, head bool) TokenType {
	s.r.Move(1) // ` or }
	chunkStart := s.r.Pos()
	escaped := false
	for {
		c := s.r.Peek(0)
		if c == '`' {
			s.cookTemplate(escaped, chunkStart)
			s.r.Move(1)
			if len(s.templateLevels) != 0 {
				s.templateLevels = s.templateLevels[:len(s.templateLevels)-1]
			}
			if head {
				return TemplateToken
			}
			return TemplateTailToken
		} else if c == '$' && s.r.Peek(1) == '{' {
			s.cookTemplate(escaped, chunkStart)
			s.r.Move(2)
			s.level++
			if head {
				return TemplateHeadToken
			}
			return TemplateMiddleToken
		} else if c == '\\' {
			if !escaped {
				s.literal = s.literal[:0]
				escaped = true
			}
			s.hasEscape = true
			s.literal = append(s.literal, s.r.Slice(chunkStart, s.r.Pos())...)
			s.consumeEscape(flags, true)
			chunkStart = s.r.Pos()
		} else if c == '\r' {
			// CR and CRLF cook to LF
			if !escaped {
				s.literal = s.literal[:0]
				escaped = true
			}
			s.literal = append(s.literal, s.r.Slice(chunkStart, s.r.Pos())...)
			s.consumeLineTerminator()
			s.literal = append(s.literal, '\n')
			chunkStart = s.r.Pos()
		} else if c == '\n' {
			s.consumeLineTerminator()
		} else if c == 0 && s.r.Pos() == s.r.Len() {
			s.cookTemplate(escaped, chunkStart)
			s.error(UnterminatedTemplate, s.tokenPos)
			if len(s.templateLevels) != 0 {
				s.templateLevels = s.templateLevels[:len(s.templateLevels)-1]
			}
			return ErrorToken
		} else if 0xC0 <= c {
			if !s.consumeLineTerminator() {
				_, n := s.r.PeekRune(0)
				s.r.Move(n)
			}
		} else {
			s.r.Move(1)
		}
	}
}

func (s *Scanner) cookTemplate(escaped bool, chunkStart int) {
	if s.templateInvalid {
		s.cooked = nil
	} else if escaped {
		s.literal = append(s.literal, s.r.Slice(chunkStart, s.r.Pos())...)
		s.cooked = s.literal
	} else {
		s.cooked = s.r.Slice(chunkStart, s.r.Pos())
	}
}
