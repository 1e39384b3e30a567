package js

import (
	"unicode"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
)

// identifierTable is a lookup table for ASCII identifier bytes. The zero-width
// joiners and non-ASCII identifier characters take the rune path instead.
var identifierStartTable, identifierTable [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if 'a' <= i && i <= 'z' || 'A' <= i && i <= 'Z' || i == '$' || i == '_' {
			identifierStartTable[i] = true
			identifierTable[i] = true
		}
		if '0' <= i && i <= '9' {
			identifierTable[i] = true
		}
	}
}

// isIdentifierStart returns true when the code point may start an identifier.
func isIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return identifierStartTable[r]
	}
	return unicodeid.IsIDStartUnicode(r)
}

// isIdentifierPart returns true when the code point may continue an identifier.
func isIdentifierPart(r rune) bool {
	if r < utf8.RuneSelf {
		return identifierTable[r]
	}
	return r == '\u200C' || r == '\u200D' || unicodeid.IsIDContinueUnicode(r)
}

// isLineTerminator returns true for the four ECMAScript line terminators.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isExoticWhitespace returns true for non-ASCII horizontal whitespace: NBSP,
// BOM, and the Zs category.
func isExoticWhitespace(r rune) bool {
	return r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r)
}
