package osc

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a byte sequence used both as an encoding target and as a
// decoding cursor. Writes always go to the end. Reads always take bytes
// from the front, so Len reports how much is left to parse.
//
// A Buffer must not be used by more than one goroutine at a time.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer returns a Buffer that reads from data. The slice is not copied;
// callers must not modify it while the Buffer is in use.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// newBufferSize returns an empty Buffer with room for n bytes.
func newBufferSize(n int) *Buffer {
	return &Buffer{data: make([]byte, 0, n)}
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

// Bytes returns the unread bytes without consuming them. The slice aliases
// the buffer and is only valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.data[b.off:]
}

// Write appends p to the buffer. It never returns an error.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to the buffer. It never returns an error.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// Next removes the first n bytes from the buffer and returns them. The
// returned slice aliases the buffer. If fewer than n bytes remain, nothing
// is consumed and ErrTruncated is returned.
func (b *Buffer) Next(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, fmt.Errorf("Next: need %d bytes, have %d: %w", n, b.Len(), ErrTruncated)
	}
	p := b.data[b.off : b.off+n : b.off+n]
	b.off += n
	return p, nil
}

func (b *Buffer) writeUint32(v uint32) {
	b.data = binary.BigEndian.AppendUint32(b.data, v)
}

func (b *Buffer) writeUint64(v uint64) {
	b.data = binary.BigEndian.AppendUint64(b.data, v)
}

// writeZeros appends n zero bytes.
func (b *Buffer) writeZeros(n int) {
	for ; n > 0; n-- {
		b.data = append(b.data, 0)
	}
}

func (b *Buffer) readUint32() (uint32, error) {
	p, err := b.Next(bit32Size)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

func (b *Buffer) readUint64() (uint64, error) {
	p, err := b.Next(bit64Size)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}
