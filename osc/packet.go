package osc

import (
	"encoding"
	"fmt"
)

// Packet is the interface for Message and Bundle. It is also the element
// type of a bundle, so bundles can hold messages and other bundles. No other
// implementations exist.
type Packet interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Space returns the encoded size of the packet in bytes.
	Space() int
	// AppendBinary appends the encoded packet to dst.
	AppendBinary(dst []byte) ([]byte, error)

	appendTo(b *Buffer) error
}

// ParsePacket parses an OSC packet, either a Message or a Bundle. data is
// not retained.
func ParsePacket(data []byte) (Packet, error) {
	b := NewBuffer(data)
	if len(data) > 0 && data[0] == '#' {
		bundle, err := ParseBundle(b)
		if err != nil {
			return nil, err
		}
		return bundle, nil
	}

	m, err := ParseMessage(b)
	if err != nil {
		return nil, err
	}
	if b.Len() != 0 {
		return nil, fmt.Errorf("ParsePacket: %d trailing bytes: %w", b.Len(), ErrInvalidMessage)
	}
	return m, nil
}
