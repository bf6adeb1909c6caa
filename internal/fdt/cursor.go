package fdt

import (
	"bytes"
	"encoding/binary"
)

// cursor is a bounds-checked reader over an immutable byte buffer. It is the
// only way the decoder touches blob bytes: every access is checked against
// the buffer end and fails with ErrReadPastEnd instead of slicing out of
// range. The cursor holds no state beyond the buffer and a position.
//
// Slices returned by readBytes and friends alias the underlying buffer; the
// decoder copies anything it retains in the tree.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// Pos returns the current byte offset, used for error reporting.
func (c *cursor) Pos() int {
	return c.pos
}

// readBytes returns the next n bytes and advances past them. A read that
// ends exactly at the buffer end is valid.
func (c *cursor) readBytes(n int) ([]byte, error) {
	b, err := c.peekBytes(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// peekBytes is readBytes without advancing.
func (c *cursor) peekBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, ErrReadPastEnd
	}
	return c.buf[c.pos : c.pos+n], nil
}

// readUint32 decodes the next 4 bytes as a big-endian integer and advances.
func (c *cursor) readUint32() (uint32, error) {
	v, err := c.peekUint32()
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return v, nil
}

// peekUint32 is readUint32 without advancing.
func (c *cursor) peekUint32() (uint32, error) {
	b, err := c.peekBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// readString0 reads up to and including the next NUL byte and returns the
// bytes before it. Fails if the buffer ends before a terminator.
func (c *cursor) readString0() ([]byte, error) {
	i := bytes.IndexByte(c.buf[c.pos:], 0)
	if i < 0 {
		return nil, ErrReadPastEnd
	}
	s := c.buf[c.pos : c.pos+i]
	c.pos += i + 1
	return s, nil
}

// align advances the position to the next multiple of 4 relative to the
// buffer start. No-op when already aligned.
func (c *cursor) align() error {
	rem := c.pos % 4
	if rem == 0 {
		return nil
	}
	next := c.pos + 4 - rem
	if next > len(c.buf) {
		return ErrReadPastEnd
	}
	c.pos = next
	return nil
}

// seek moves to an absolute position, which must lie strictly inside the
// buffer. Every seek in the format is immediately followed by a read, so a
// position at the buffer end is never useful.
func (c *cursor) seek(pos int) error {
	if pos < 0 || pos >= len(c.buf) {
		return ErrReadPastEnd
	}
	c.pos = pos
	return nil
}
