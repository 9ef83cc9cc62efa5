package osc

import (
	"bytes"
	"fmt"
	"time"
)

const (
	bundleTagString = "#bundle"

	// bundleHeaderSize is the padded "#bundle" string plus the time tag.
	bundleHeaderSize = 16

	// MaxBundleDepth limits how deeply bundles may nest when decoding.
	MaxBundleDepth = 64
)

// bundleMarker is bundleTagString as it appears on the wire.
var bundleMarker = []byte(bundleTagString + "\x00")

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns an OSC Bundle time tagged with the current time.
func NewBundle(elems ...Packet) *Bundle {
	return &Bundle{Timetag: NewTimetag(), Elements: elems}
}

// NewBundleWithTime returns an OSC Bundle for the given time.
func NewBundleWithTime(time time.Time, elems ...Packet) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(time), Elements: elems}
}

// NewBundleWithTimetag returns an OSC Bundle with the given time tag.
func NewBundleWithTimetag(tt Timetag, elems ...Packet) *Bundle {
	return &Bundle{Timetag: tt, Elements: elems}
}

// Append appends an OSC bundle or OSC message to the bundle and returns the
// bundle so calls can be chained.
func (b *Bundle) Append(pck Packet) *Bundle {
	b.Elements = append(b.Elements, pck)
	return b
}

// String implements the fmt.Stringer interface.
func (b *Bundle) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%s %s (%d elements)", bundleTagString, b.Timetag, len(b.Elements))
}

// Space returns the encoded size of the bundle in bytes.
func (b *Bundle) Space() int {
	n := bundleHeaderSize
	for _, e := range b.Elements {
		if e != nil {
			n += bit32Size + e.Space()
		}
	}
	return n
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// bundle is serialized as follows:
// 1. Bundle string: '#bundle'
// 2. OSC timetag
// 3. Length of first OSC bundle element
// 4. First bundle element
// 5. Length of n OSC bundle element
// 6. n bundle element
func (b *Bundle) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, b.Space()))
}

// AppendBinary appends the encoded bundle to dst.
func (b *Bundle) AppendBinary(dst []byte) ([]byte, error) {
	buf := &Buffer{data: dst}
	if err := b.appendTo(buf); err != nil {
		return dst, err
	}
	return buf.data, nil
}

func (b *Bundle) appendTo(buf *Buffer) error {
	// Add the '#bundle' string
	buf.Write(bundleMarker)

	// Add the time tag
	buf.writeUint64(uint64(b.Timetag))

	// Process all Bundle elements
	for i, e := range b.Elements {
		if e == nil {
			return fmt.Errorf("MarshalBinary: element %d is nil: %w", i, ErrInvalidBundle)
		}

		// Write the size of the element, then the element itself
		buf.writeUint32(uint32(e.Space()))
		if err := e.appendTo(buf); err != nil {
			return fmt.Errorf("MarshalBinary: element %d: %w", i, err)
		}
	}

	return nil
}

// NewBundleFromData returns a new OSC bundle created from the parsed data.
func NewBundleFromData(data []byte) (*Bundle, error) {
	b := &Bundle{}
	if err := b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	bundle, err := ParseBundle(NewBuffer(data))
	if err != nil {
		return err
	}

	*b = *bundle
	return nil
}

// IsBundle reports whether the buffer starts with the "#bundle" marker.
// Nothing is consumed.
func IsBundle(b *Buffer) bool {
	return bytes.HasPrefix(b.Bytes(), bundleMarker)
}

// ParseBundle decodes a bundle from the buffer. Elements are read until the
// buffer is empty, so the buffer must hold exactly one bundle.
func ParseBundle(b *Buffer) (*Bundle, error) {
	return parseBundle(b, 1)
}

func parseBundle(b *Buffer, depth int) (*Bundle, error) {
	if depth > MaxBundleDepth {
		return nil, fmt.Errorf("ParseBundle: nested deeper than %d: %w", MaxBundleDepth, ErrInvalidBundle)
	}

	// Read the '#bundle' OSC string
	if !IsBundle(b) {
		return nil, fmt.Errorf("ParseBundle: missing %q marker: %w", bundleTagString, ErrInvalidBundle)
	}
	_, _ = b.Next(len(bundleMarker))

	// Read the timetag
	tt, err := b.readUint64()
	if err != nil {
		return nil, fmt.Errorf("ParseBundle: time tag: %w", err)
	}

	bundle := &Bundle{Timetag: Timetag(tt)}

	// Read until the end of the buffer
	for b.Len() > 0 {
		// Read the size of the bundle element
		n, err := b.readUint32()
		if err != nil {
			return nil, fmt.Errorf("ParseBundle: element size: %w", err)
		}

		length := int(int32(n))
		if length < 0 {
			return nil, fmt.Errorf("ParseBundle: negative element size %d: %w", length, ErrInvalidBundle)
		}

		data, err := b.Next(length)
		if err != nil {
			return nil, fmt.Errorf("ParseBundle: element: %w", err)
		}

		p, err := parseElement(NewBuffer(data), depth)
		if err != nil {
			return nil, fmt.Errorf("ParseBundle: element %d: %w", len(bundle.Elements), err)
		}
		bundle.Elements = append(bundle.Elements, p)
	}

	return bundle, nil
}

// parseElement parses a bundle element, which must fill the buffer exactly.
func parseElement(b *Buffer, depth int) (Packet, error) {
	if !IsMessage(b) {
		bundle, err := parseBundle(b, depth+1)
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
		return nil, fmt.Errorf("%d bytes after message: %w", b.Len(), ErrInvalidBundle)
	}
	return m, nil
}
