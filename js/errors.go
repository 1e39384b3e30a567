package js

import (
	"bytes"
	"fmt"

	"github.com/jslex/parse"
)

// ErrorKind identifies a lexical error.
type ErrorKind int

// ErrorKind values.
const (
	UnterminatedString ErrorKind = iota
	UnterminatedRegExp
	UnterminatedComment
	UnterminatedTemplate
	InvalidCharacter
	InvalidSMPCharacter
	InvalidUnicodeEscape
	InvalidCodePoint
	InvalidHexEscape
	StrictOctalLiteral
	StrictOctalEscape
	DuplicateRegExpFlag
	UnexpectedTokenRegExpFlag
	HtmlCommentInWebCompat
	IdentifierAfterNumericLiteral
	ContinuousNumericSeparator
	TrailingNumericSeparator
	InvalidBigInt
	ExpectedHexDigits
)

var errorMessages = map[ErrorKind]string{
	UnterminatedString:            "unterminated string literal",
	UnterminatedRegExp:            "unterminated regular expression",
	UnterminatedComment:           "unterminated multi-line comment",
	UnterminatedTemplate:          "unterminated template literal",
	InvalidCharacter:              "unexpected character %q",
	InvalidSMPCharacter:           "invalid supplementary-plane character",
	InvalidUnicodeEscape:          "invalid unicode escape sequence",
	InvalidCodePoint:              "invalid code point 0x%X",
	InvalidHexEscape:              "invalid hexadecimal escape sequence",
	StrictOctalLiteral:            "legacy octal literals are not allowed in strict mode",
	StrictOctalEscape:             "legacy octal escape sequences are not allowed in strict mode",
	DuplicateRegExpFlag:           "duplicate regular expression flag %q",
	UnexpectedTokenRegExpFlag:     "unexpected regular expression flag %q",
	HtmlCommentInWebCompat:        "HTML comments are only allowed with web compatibility enabled",
	IdentifierAfterNumericLiteral: "identifier starts immediately after numeric literal",
	ContinuousNumericSeparator:    "numeric separator must come after a digit",
	TrailingNumericSeparator:      "numeric literal cannot end with a numeric separator",
	InvalidBigInt:                 "invalid BigInt literal",
	ExpectedHexDigits:             "missing digits after number base prefix",
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedRegExp:
		return "UnterminatedRegExp"
	case UnterminatedComment:
		return "UnterminatedComment"
	case UnterminatedTemplate:
		return "UnterminatedTemplate"
	case InvalidCharacter:
		return "InvalidCharacter"
	case InvalidSMPCharacter:
		return "InvalidSMPCharacter"
	case InvalidUnicodeEscape:
		return "InvalidUnicodeEscape"
	case InvalidCodePoint:
		return "InvalidCodePoint"
	case InvalidHexEscape:
		return "InvalidHexEscape"
	case StrictOctalLiteral:
		return "StrictOctalLiteral"
	case StrictOctalEscape:
		return "StrictOctalEscape"
	case DuplicateRegExpFlag:
		return "DuplicateRegExpFlag"
	case UnexpectedTokenRegExpFlag:
		return "UnexpectedTokenRegExpFlag"
	case HtmlCommentInWebCompat:
		return "HtmlCommentInWebCompat"
	case IdentifierAfterNumericLiteral:
		return "IdentifierAfterNumericLiteral"
	case ContinuousNumericSeparator:
		return "ContinuousNumericSeparator"
	case TrailingNumericSeparator:
		return "TrailingNumericSeparator"
	case InvalidBigInt:
		return "InvalidBigInt"
	case ExpectedHexDigits:
		return "ExpectedHexDigits"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Severity partitions lexical errors. Recoverable errors let the caller keep
// scanning for further diagnostics; a fatal error signals that the token
// stream cannot continue.
type Severity int

// Severity values.
const (
	Recoverable Severity = iota
	Fatal
)

// Diagnostic is a single lexical error, recorded at a byte offset into the
// source. Args hold the format arguments of the error message.
type Diagnostic struct {
	Kind     ErrorKind
	Severity Severity
	Offset   int
	Args     []interface{}
}

// Message returns the formatted error message.
func (d Diagnostic) Message() string {
	return fmt.Sprintf(errorMessages[d.Kind], d.Args...)
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", d.Kind, d.Message(), d.Offset)
}

// Position resolves the diagnostic against its source into a parse.Error with
// line, column, and context line.
func (d Diagnostic) Position(source []byte) *parse.Error {
	return parse.NewError(d.Message(), bytes.NewBuffer(source), d.Offset)
}
