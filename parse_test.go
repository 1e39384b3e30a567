package parse

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"
)

func TestInput(t *testing.T) {
	z := NewInputString("abc")
	test.T(t, z.Len(), 3)
	test.T(t, z.Peek(0), byte('a'))
	test.T(t, z.Peek(2), byte('c'))
	test.T(t, z.Peek(3), byte(0), "NULL at end")
	test.T(t, z.Peek(100), byte(0), "NULL far past end")

	z.Move(2)
	test.T(t, z.Pos(), 2)
	test.T(t, z.Peek(0), byte('c'))
	z.Rewind(0)
	test.T(t, z.Pos(), 0)

	test.String(t, string(z.Bytes()), "abc")
	test.String(t, string(z.Slice(1, 3)), "bc")
}

func TestInputRune(t *testing.T) {
	z := NewInputString("aπ𝒜")
	r, n := z.PeekRune(0)
	test.T(t, r, 'a')
	test.T(t, n, 1)
	r, n = z.PeekRune(1)
	test.T(t, r, 'π')
	test.T(t, n, 2)
	r, n = z.PeekRune(3)
	test.T(t, r, '𝒜')
	test.T(t, n, 4)
}

func TestInputReader(t *testing.T) {
	z := NewInput(bytes.NewBufferString("input"))
	test.T(t, z.Err(), nil)
	test.String(t, string(z.Bytes()), "input")
}

func TestPosition(t *testing.T) {
	tests := []struct {
		src    string
		offset int
		line   int
		col    int
	}{
		{"x", 0, 1, 1},
		{"xx", 1, 1, 2},
		{"x\nx", 2, 2, 1},
		{"x\r\nx", 3, 2, 1},
		{"x\u2028x", 4, 2, 1},
		{"\n\n\nx", 3, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			line, col, _ := Position(bytes.NewBufferString(tt.src), tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestError(t *testing.T) {
	err := NewError("message", bytes.NewBufferString("buffer"), 3)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
}
