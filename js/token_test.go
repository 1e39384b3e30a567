package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Identifier", IdentifierToken.String())
	assert.Equal(t, "EndOfSource", EndOfSourceToken.String())
	assert.Equal(t, "?.", OptChainToken.String())
	assert.Equal(t, "??=", NullishEqToken.String())
	assert.Equal(t, ">>>=", GtGtGtEqToken.String())
	assert.Equal(t, "instanceof", InstanceofToken.String())
	assert.Equal(t, "TemplateMiddle", TemplateMiddleToken.String())
	assert.Equal(t, "EscapedReserved", EscapedReservedToken.String())
	assert.Equal(t, "Invalid(7f000000)", TokenType(0x7F000000).String())
}

func TestTokenAttributes(t *testing.T) {
	assert.True(t, IsPunctuator(OpenBraceToken))
	assert.True(t, IsPunctuator(OptChainToken))
	assert.False(t, IsPunctuator(AddToken))

	assert.True(t, IsOperator(AddToken))
	assert.True(t, IsOperator(NullishToken))
	assert.False(t, IsOperator(SemicolonToken))

	assert.True(t, IsAssign(EqToken))
	assert.True(t, IsAssign(NullishEqToken))
	assert.False(t, IsAssign(EqEqToken))

	assert.True(t, IsIdentifierName(IdentifierToken))
	assert.True(t, IsIdentifierName(BreakToken))
	assert.True(t, IsIdentifierName(AsyncToken))
	assert.False(t, IsIdentifierName(StringToken))

	assert.True(t, IsReserved(IfToken))
	assert.True(t, IsReserved(InToken))
	assert.False(t, IsReserved(LetToken))

	assert.True(t, IsStrictReserved(LetToken))
	assert.True(t, IsStrictReserved(ImplementsToken))
	assert.False(t, IsStrictReserved(AsyncToken))

	assert.True(t, IsContextualKeyword(OfToken))
	assert.True(t, IsContextualKeyword(YieldToken))
	assert.False(t, IsContextualKeyword(IfToken))
}

func TestTokenPrecedence(t *testing.T) {
	assert.True(t, IsBinaryOp(AddToken))
	assert.True(t, IsBinaryOp(InToken))
	assert.False(t, IsBinaryOp(NotToken))
	assert.False(t, IsBinaryOp(EqToken))

	assert.Equal(t, OpCoalesce, Precedence(NullishToken))
	assert.Equal(t, OpOr, Precedence(OrToken))
	assert.Equal(t, OpAnd, Precedence(AndToken))
	assert.Equal(t, OpEquals, Precedence(EqEqEqToken))
	assert.Equal(t, OpCompare, Precedence(LtToken))
	assert.Equal(t, OpCompare, Precedence(InstanceofToken))
	assert.Equal(t, OpShift, Precedence(GtGtGtToken))
	assert.Equal(t, OpAdd, Precedence(SubToken))
	assert.Equal(t, OpMul, Precedence(DivToken))
	assert.Equal(t, OpExp, Precedence(ExpToken))
	assert.Equal(t, OpEnd, Precedence(CommaToken))

	// the parser binds tighter precedences first
	assert.True(t, Precedence(MulToken) > Precedence(AddToken))
	assert.True(t, Precedence(AddToken) > Precedence(LtLtToken))
}

func TestKeywordMap(t *testing.T) {
	for name, tt := range Keywords {
		assert.Equal(t, name, tt.String(), "keyword token prints its own name")
		assert.True(t, IsIdentifierName(tt))
	}
	_, ok := Keywords["undefined"]
	assert.False(t, ok, "undefined is a global, not a keyword")
}
