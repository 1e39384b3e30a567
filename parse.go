// Package parse contains buffered source readers and position helpers shared by the parsers in its subpackages.
package parse

import (
	"io"
	"unicode/utf8"
)

// Input is an in-memory source buffer used by the lexers. The buffer is
// terminated by a NULL byte so that end-of-input checks reduce to a zero test.
type Input struct {
	bytes []byte
	pos   int
	err   error
}

// NewInput returns a new Input for a given io.Reader. The reader is consumed
// entirely; a read failure is reported through Err.
func NewInput(r io.Reader) *Input {
	var b []byte
	var err error
	if buffer, ok := r.(interface {
		Bytes() []byte
	}); ok {
		b = buffer.Bytes()
	} else {
		b, err = io.ReadAll(r)
	}
	return &Input{
		bytes: append(b, 0),
		err:   err,
	}
}

// NewInputBytes returns a new Input for a given byte slice.
func NewInputBytes(b []byte) *Input {
	return &Input{
		bytes: append(b, 0),
	}
}

// NewInputString returns a new Input for a given string.
func NewInputString(s string) *Input {
	return NewInputBytes([]byte(s))
}

// Err returns the error from reading the input, if any.
func (z *Input) Err() error {
	return z.err
}

// Peek returns the ith byte relative to the current position, or 0 when
// peeking beyond the end of the buffer.
func (z *Input) Peek(i int) byte {
	if z.pos+i >= len(z.bytes) {
		return 0
	}
	return z.bytes[z.pos+i]
}

// PeekRune returns the rune and rune length at the ith byte relative to the
// current position.
func (z *Input) PeekRune(i int) (rune, int) {
	c := z.Peek(i)
	if c < 0xC0 || z.pos+i+1 >= len(z.bytes) {
		return rune(c), 1
	}
	return utf8.DecodeRune(z.bytes[z.pos+i : len(z.bytes)-1])
}

// Move advances the position.
func (z *Input) Move(n int) {
	z.pos += n
}

// Pos returns the current position, a byte offset into the buffer.
func (z *Input) Pos() int {
	return z.pos
}

// Rewind sets the position to an earlier offset obtained from Pos.
func (z *Input) Rewind(pos int) {
	z.pos = pos
}

// Len returns the length of the underlying buffer.
func (z *Input) Len() int {
	return len(z.bytes) - 1
}

// Bytes returns the underlying buffer without the trailing NULL byte.
func (z *Input) Bytes() []byte {
	return z.bytes[:len(z.bytes)-1]
}

// Slice returns the bytes between two offsets of the buffer.
func (z *Input) Slice(start, end int) []byte {
	return z.bytes[start:end:end]
}
