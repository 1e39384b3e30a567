package js

import (
	"strconv"
)

func isRadixDigit(c byte, base int) bool {
	switch base {
	case 16:
		return 0 <= hexDigit(c)
	case 8:
		return '0' <= c && c <= '7'
	case 2:
		return c == '0' || c == '1'
	}
	return '0' <= c && c <= '9'
}

// consumeDigitsSep consumes at least one digit of the given base, allowing
// numeric separators between digits. A separator not surrounded by digits is
// reported but recovered from so scanning can continue.
func (s *Scanner) consumeDigitsSep(base int, hasSep *bool) bool {
	if !isRadixDigit(s.r.Peek(0), base) {
		return false
	}
	s.r.Move(1)
	for {
		c := s.r.Peek(0)
		if c == '_' {
			*hasSep = true
			if s.r.Peek(1) == '_' {
				s.error(ContinuousNumericSeparator, s.r.Pos())
				s.r.Move(1)
			} else if !isRadixDigit(s.r.Peek(1), base) {
				s.error(TrailingNumericSeparator, s.r.Pos())
				s.r.Move(1)
				return true
			} else {
				s.r.Move(2)
			}
		} else if isRadixDigit(c, base) {
			s.r.Move(1)
		} else {
			break
		}
	}
	return true
}

// consumeNumericToken scans a numeric or bigint literal. It assumes to be on
// a decimal digit, or on a . followed by a decimal digit.
func (s *Scanner) consumeNumericToken(flags Flags) TokenType {
	start := s.r.Pos()
	base := 10
	hasSep := false
	isFloat := false
	legacy := false   // 0-prefixed octal
	nonOctal := false // leading zero followed by an 8 or 9

	c := s.r.Peek(0)
	if c == '.' {
		s.r.Move(1)
		isFloat = true
		s.consumeDigitsSep(10, &hasSep)
	} else if c == '0' {
		s.r.Move(1)
		switch n := s.r.Peek(0); {
		case n == 'x' || n == 'X':
			base = 16
		case n == 'o' || n == 'O':
			base = 8
		case n == 'b' || n == 'B':
			base = 2
		case '0' <= n && n <= '9':
			legacy = true
		}
		if base != 10 {
			s.r.Move(1)
			if s.r.Peek(0) == '_' {
				s.error(ContinuousNumericSeparator, s.r.Pos())
				s.r.Move(1)
				hasSep = true
			}
			if !s.consumeDigitsSep(base, &hasSep) {
				s.error(ExpectedHexDigits, start)
				return ErrorToken
			}
		} else if legacy {
			for {
				c := s.r.Peek(0)
				if c == '8' || c == '9' {
					nonOctal = true
					s.r.Move(1)
				} else if '0' <= c && c <= '7' {
					s.r.Move(1)
				} else {
					break
				}
			}
			if flags&StrictFlag != 0 {
				s.error(StrictOctalLiteral, start)
			}
		}
	} else {
		s.consumeDigitsSep(10, &hasSep)
	}

	if base == 10 && !(legacy && !nonOctal) {
		if !isFloat && s.r.Peek(0) == '.' {
			isFloat = true
			s.r.Move(1)
			s.consumeDigitsSep(10, &hasSep)
		}
		if c := s.r.Peek(0); c == 'e' || c == 'E' {
			mark := s.r.Pos()
			s.r.Move(1)
			if c := s.r.Peek(0); c == '+' || c == '-' {
				s.r.Move(1)
			}
			if s.consumeDigitsSep(10, &hasSep) {
				isFloat = true
			} else {
				// the e could belong to the next token
				s.r.Rewind(mark)
			}
		}
	}

	tt := NumericToken
	if s.r.Peek(0) == 'n' {
		s.r.Move(1)
		if isFloat || legacy {
			s.error(InvalidBigInt, start)
			return ErrorToken
		}
		tt = BigIntToken
	}

	if c := s.r.Peek(0); identifierTable[c] || 0xC0 <= c {
		if r, _ := s.r.PeekRune(0); c < 0xC0 || isIdentifierStart(r) {
			s.error(IdentifierAfterNumericLiteral, s.r.Pos())
		}
	}

	raw := s.r.Slice(start, s.r.Pos())
	if tt == BigIntToken {
		s.bigint = raw[:len(raw)-1]
		return tt
	}
	digits := raw
	if hasSep {
		s.literal = s.literal[:0]
		for _, c := range raw {
			if c != '_' {
				s.literal = append(s.literal, c)
			}
		}
		digits = s.literal
	}
	switch {
	case base != 10:
		s.number = parseRadix(digits[2:], base)
	case legacy && !nonOctal && 1 < len(digits):
		s.number = parseRadix(digits[1:], 8)
	default:
		s.number = parseDecimal(digits)
	}
	return tt
}

// parseRadix converts digits of the given base to a double, rounding through
// repeated float64 accumulation.
func parseRadix(digits []byte, base int) float64 {
	number := 0.0
	for _, c := range digits {
		number = number*float64(base) + float64(hexDigit(c))
	}
	return number
}

// parseDecimal converts a decimal literal to a double with IEEE-754
// round-to-nearest-even semantics.
func parseDecimal(digits []byte) float64 {
	number, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		return 0
	}
	return number
}
