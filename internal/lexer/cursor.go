package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"reef/internal/source"
)

// Cursor is a position inside one lexed buffer. Base is the byte offset of
// the buffer inside its file, so spans of sub-range lexes still point at
// the right file bytes.
type Cursor struct {
	src  []byte
	file source.FileID
	base uint32
	off  uint32
}

func NewCursor(src []byte, file source.FileID, base uint32) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	return Cursor{src: src, file: file, base: base}
}

func (c *Cursor) EOF() bool {
	return c.off >= uint32(len(c.src))
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Bump advances one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Mark remembers a position for SpanFrom.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom builds the file-relative span of the bytes scanned since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.file,
		Start: c.base + uint32(m),
		End:   c.base + c.off,
	}
}

// SpanHere is the empty span at the current position.
func (c *Cursor) SpanHere() source.Span {
	return c.SpanFrom(c.Mark())
}
