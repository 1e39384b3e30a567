package js

import (
	"github.com/jslex/parse"
)

// Flags is the lexing context supplied for each scan. The scanner only reads
// the bits that affect lexing; scope bits are carried for the parser.
type Flags uint16

// Flags values.
const (
	StrictFlag Flags = 1 << iota // strict mode code
	ModuleFlag                   // module grammar, disables HTML comments
	RegExpFlag                   // a / may start a regular expression here
	NextFlag                     // stage-3 proposal syntax
	RawFlag                      // raw slices requested; not read by the scanner
	NoWebCompatFlag              // disable Annex B web compatibility
	TemplateFlag                 // a } re-enters a template body here
)

// Options are the scan options of the parse entry point. Only Module, Next,
// WebCompat, Strict, and ImpliedStrict affect the scanner. Raw maps to
// RawFlag, which the scanner does not read since Raw() is always available;
// the remaining fields are carried for the syntactic parser.
type Options struct {
	Module        bool
	Next          bool
	Raw           bool
	WebCompat     bool
	Strict        bool
	ImpliedStrict bool
	Loc           bool
	Ranges        bool
	Directives    bool
	GlobalReturn  bool
	JSX           bool
	SpecDeviation bool
}

// DefaultOptions returns the options used when none are given: script mode
// with web compatibility enabled.
func DefaultOptions() Options {
	return Options{WebCompat: true}
}

// Flags converts the options to their context bits.
func (o Options) Flags() Flags {
	var flags Flags
	if o.Module {
		flags |= ModuleFlag
	}
	if o.Next {
		flags |= NextFlag
	}
	if o.Raw {
		flags |= RawFlag
	}
	if !o.WebCompat {
		flags |= NoWebCompatFlag
	}
	if o.Strict || o.ImpliedStrict {
		flags |= StrictFlag
	}
	return flags
}

// Scanner is the state for the lexer. It is constructed once per parse and
// mutated by every call to Next.
type Scanner struct {
	r    *parse.Input
	opts Flags

	line      int // 1-based line of the position
	lineStart int // offset of the first byte of the current line

	tokenPos    int // offset where the current token begins
	startPos    int // offset where the current scan began, before trivia
	tokenLine   int
	tokenColumn int

	prevLineTerminator bool
	token              TokenType

	literal   []byte // scratch buffer for escape decoding, reused across tokens
	cooked    []byte // cooked value of the last string/template/identifier
	hasEscape bool
	number    float64
	bigint    []byte

	regexpBody  []byte
	regexpFlags []byte

	templateInvalid bool // the last template had an unrepresentable escape

	level          int
	templateLevels []int

	diagnostics []Diagnostic
}

// NewScanner returns a new Scanner for a given Input and options.
func NewScanner(r *parse.Input, o Options) *Scanner {
	return &Scanner{
		r:                  r,
		opts:               o.Flags(),
		line:               1,
		prevLineTerminator: true,
	}
}

// Source returns the source buffer being scanned.
func (s *Scanner) Source() []byte {
	return s.r.Bytes()
}

// Offset returns the current position in the source, the end of the last token.
func (s *Scanner) Offset() int {
	return s.r.Pos()
}

// TokenOffset returns the offset at which the last token begins.
func (s *Scanner) TokenOffset() int {
	return s.tokenPos
}

// StartOffset returns the offset at which the last scan began, before any
// whitespace and comments were skipped.
func (s *Scanner) StartOffset() int {
	return s.startPos
}

// Line returns the 1-based line number of the last token.
func (s *Scanner) Line() int {
	return s.tokenLine
}

// Column returns the 0-based column of the last token.
func (s *Scanner) Column() int {
	return s.tokenColumn
}

// Token returns the kind of the last token.
func (s *Scanner) Token() TokenType {
	return s.token
}

// PrevLineTerminator returns true if a line terminator appeared between the
// previous token and the last token.
func (s *Scanner) PrevLineTerminator() bool {
	return s.prevLineTerminator
}

// Raw returns the raw source slice of the last token.
func (s *Scanner) Raw() []byte {
	return s.r.Slice(s.tokenPos, s.r.Pos())
}

// Literal returns the cooked value of the last identifier, string, or
// template token. For templates with an unrepresentable escape it is nil.
func (s *Scanner) Literal() []byte {
	return s.cooked
}

// HasEscape returns true if the last identifier, string, or template
// contained an escape sequence.
func (s *Scanner) HasEscape() bool {
	return s.hasEscape
}

// Number returns the value of the last numeric literal.
func (s *Scanner) Number() float64 {
	return s.number
}

// BigInt returns the digit string of the last bigint literal, without the n
// suffix. Value conversion is left to the caller.
func (s *Scanner) BigInt() []byte {
	return s.bigint
}

// RegExpPattern returns the pattern of the last regular expression token,
// without the enclosing slashes.
func (s *Scanner) RegExpPattern() []byte {
	return s.regexpBody
}

// RegExpFlags returns the flags of the last regular expression token.
func (s *Scanner) RegExpFlags() []byte {
	return s.regexpFlags
}

// HasInvalidEscape returns true if the last template token contained an
// escape that has no cooked value. Whether that is an error depends on the
// tagged-template context which the parser holds.
func (s *Scanner) HasInvalidEscape() bool {
	return s.templateInvalid
}

// Diagnostics returns the lexical errors recorded so far, in lexical order.
func (s *Scanner) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Err returns the input error or the first fatal diagnostic, if any.
func (s *Scanner) Err() error {
	if err := s.r.Err(); err != nil {
		return err
	}
	for _, d := range s.diagnostics {
		if d.Severity == Fatal {
			return d
		}
	}
	return nil
}

func (s *Scanner) error(kind ErrorKind, offset int, args ...interface{}) {
	severity := Recoverable
	switch kind {
	case UnterminatedString, UnterminatedRegExp, UnterminatedComment, UnterminatedTemplate:
		severity = Fatal
	}
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:     kind,
		Severity: severity,
		Offset:   offset,
		Args:     args,
	})
}

func (s *Scanner) emit(tt TokenType) (TokenType, []byte) {
	s.token = tt
	return tt, s.r.Slice(s.tokenPos, s.r.Pos())
}

// Next returns the next token. Whitespace, line terminators, and comments are
// consumed as trivia; a line terminator crossed before the token is recorded
// in PrevLineTerminator. At the end of the source it returns EndOfSourceToken.
func (s *Scanner) Next(ctx Flags) (TokenType, []byte) {
	flags := s.opts | ctx
	s.prevLineTerminator = false
	s.startPos = s.r.Pos()
	s.hasEscape = false
	s.templateInvalid = false
	s.cooked = nil

	for {
		s.tokenPos = s.r.Pos()
		s.tokenLine = s.line
		s.tokenColumn = s.tokenPos - s.lineStart
		c := s.r.Peek(0)
		switch c {
		case ' ', '\t', '\v', '\f':
			s.r.Move(1)
			continue
		case '\n', '\r':
			s.consumeLineTerminator()
			s.prevLineTerminator = true
			continue
		case '(':
			s.level++
			s.r.Move(1)
			return s.emit(OpenParenToken)
		case ')':
			s.level--
			s.r.Move(1)
			return s.emit(CloseParenToken)
		case '{':
			s.level++
			s.r.Move(1)
			return s.emit(OpenBraceToken)
		case '}':
			if flags&TemplateFlag != 0 {
				return s.emit(s.consumeTemplateToken(flags, false))
			}
			s.level--
			if len(s.templateLevels) != 0 && s.level == s.templateLevels[len(s.templateLevels)-1] {
				return s.emit(s.consumeTemplateToken(flags, false))
			}
			s.r.Move(1)
			return s.emit(CloseBraceToken)
		case '[':
			s.r.Move(1)
			return s.emit(OpenBracketToken)
		case ']':
			s.r.Move(1)
			return s.emit(CloseBracketToken)
		case ';':
			s.r.Move(1)
			return s.emit(SemicolonToken)
		case ',':
			s.r.Move(1)
			return s.emit(CommaToken)
		case ':':
			s.r.Move(1)
			return s.emit(ColonToken)
		case '~':
			s.r.Move(1)
			return s.emit(BitNotToken)
		case '<', '-':
			if s.consumeHTMLLikeComment(flags, s.prevLineTerminator || s.startPos == 0) {
				continue
			}
			return s.emit(s.consumeOperatorToken())
		case '>', '=', '!', '+', '*', '%', '&', '|', '^':
			return s.emit(s.consumeOperatorToken())
		case '?':
			return s.emit(s.consumeQuestionToken())
		case '/':
			if c2 := s.r.Peek(1); c2 == '/' || c2 == '*' {
				if !s.consumeCommentToken() {
					return s.emit(ErrorToken)
				}
				continue
			}
			if flags&RegExpFlag != 0 {
				return s.emit(s.consumeRegExpToken(flags))
			}
			return s.emit(s.consumeOperatorToken())
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return s.emit(s.consumeNumericToken(flags))
		case '.':
			if d := s.r.Peek(1); '0' <= d && d <= '9' {
				return s.emit(s.consumeNumericToken(flags))
			}
			s.r.Move(1)
			if s.r.Peek(0) == '.' && s.r.Peek(1) == '.' {
				s.r.Move(2)
				return s.emit(EllipsisToken)
			}
			return s.emit(DotToken)
		case '\'', '"':
			return s.emit(s.consumeStringToken(flags))
		case '`':
			s.templateLevels = append(s.templateLevels, s.level)
			return s.emit(s.consumeTemplateToken(flags, true))
		case '#':
			if s.tokenPos == 0 && s.r.Peek(1) == '!' {
				s.r.Move(2)
				s.consumeSingleLineComment()
				continue
			}
			return s.emit(s.consumePrivateIdentifierToken())
		case '\\':
			return s.emit(s.consumeIdentifierToken(flags))
		case 0:
			if s.r.Pos() == s.r.Len() {
				return s.emit(EndOfSourceToken)
			}
			s.error(InvalidCharacter, s.r.Pos(), rune(0))
			s.r.Move(1)
			return s.emit(ErrorToken)
		default:
			if c < 0x80 {
				if identifierStartTable[c] {
					return s.emit(s.consumeIdentifierToken(flags))
				}
				s.error(InvalidCharacter, s.r.Pos(), rune(c))
				s.r.Move(1)
				return s.emit(ErrorToken)
			}
			if s.consumeLineTerminator() {
				s.prevLineTerminator = true
				continue
			}
			if c < 0xC0 {
				// a stray continuation byte, not valid UTF-8
				s.error(InvalidSMPCharacter, s.r.Pos())
				s.r.Move(1)
				return s.emit(ErrorToken)
			}
			r, n := s.r.PeekRune(0)
			if isIdentifierStart(r) {
				return s.emit(s.consumeIdentifierToken(flags))
			} else if isExoticWhitespace(r) {
				s.r.Move(n)
				continue
			} else if r == 0xFFFD && n == 1 {
				s.error(InvalidSMPCharacter, s.r.Pos())
				s.r.Move(1)
				return s.emit(ErrorToken)
			}
			s.error(InvalidCharacter, s.r.Pos(), r)
			s.r.Move(n)
			return s.emit(ErrorToken)
		}
	}
}

// RegExp reparses the input for a regular expression. It is assumed that the
// last token was DivToken or DivEqToken; this function goes back and reads it
// as a regular expression instead.
func (s *Scanner) RegExp() (TokenType, []byte) {
	if 0 < s.r.Pos() && s.r.Peek(-1) == '/' {
		s.r.Move(-1)
	} else if 1 < s.r.Pos() && s.r.Peek(-1) == '=' && s.r.Peek(-2) == '/' {
		s.r.Move(-2)
	} else {
		return ErrorToken, nil
	}
	s.tokenPos = s.r.Pos()
	return s.emit(s.consumeRegExpToken(s.opts))
}

// TemplateTail reparses the input for a template middle or tail. It is
// assumed that the last token was CloseBraceToken closing a template
// substitution; this function goes back and reads the following template
// body part instead.
func (s *Scanner) TemplateTail() (TokenType, []byte) {
	if 0 < s.r.Pos() && s.r.Peek(-1) == '}' {
		s.r.Move(-1)
		s.level++ // undo the close-brace bookkeeping
		s.tokenPos = s.r.Pos()
		s.hasEscape = false
		s.templateInvalid = false
		s.cooked = nil
		return s.emit(s.consumeTemplateToken(s.opts, false))
	}
	return ErrorToken, nil
}

func (s *Scanner) consumeLineTerminator() bool {
	c := s.r.Peek(0)
	if c == '\n' {
		s.r.Move(1)
	} else if c == '\r' {
		if s.r.Peek(1) == '\n' {
			s.r.Move(2)
		} else {
			s.r.Move(1)
		}
	} else if 0xC0 <= c {
		if r, n := s.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
			s.r.Move(n)
		} else {
			return false
		}
	} else {
		return false
	}
	s.line++
	s.lineStart = s.r.Pos()
	return true
}

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
}

var opOpEqTokens = map[byte]TokenType{
	'*': ExpEqToken,
	'&': AndEqToken,
	'|': OrEqToken,
}

func (s *Scanner) consumeOperatorToken() TokenType {
	c := s.r.Peek(0)
	s.r.Move(1)
	if s.r.Peek(0) == '=' {
		s.r.Move(1)
		if s.r.Peek(0) == '=' && (c == '!' || c == '=') {
			s.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if s.r.Peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|') {
		s.r.Move(1)
		if s.r.Peek(0) == '=' && c != '+' && c != '-' {
			s.r.Move(1)
			return opOpEqTokens[c]
		}
		return opOpTokens[c]
	} else if c == '=' && s.r.Peek(0) == '>' {
		s.r.Move(1)
		return ArrowToken
	} else if c == '<' && s.r.Peek(0) == '<' {
		s.r.Move(1)
		if s.r.Peek(0) == '=' {
			s.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && s.r.Peek(0) == '>' {
		s.r.Move(1)
		if s.r.Peek(0) == '>' {
			s.r.Move(1)
			if s.r.Peek(0) == '=' {
				s.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if s.r.Peek(0) == '=' {
			s.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

func (s *Scanner) consumeQuestionToken() TokenType {
	s.r.Move(1)
	if s.r.Peek(0) == '?' {
		s.r.Move(1)
		if s.r.Peek(0) == '=' {
			s.r.Move(1)
			return NullishEqToken
		}
		return NullishToken
	} else if s.r.Peek(0) == '.' {
		// ?.5 is a conditional with the fraction .5, not optional chaining
		if d := s.r.Peek(1); d < '0' || '9' < d {
			s.r.Move(1)
			return OptChainToken
		}
	}
	return QuestionToken
}
