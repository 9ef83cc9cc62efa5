package osc

import (
	"fmt"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []Value
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Value) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list and returns the
// message so calls can be chained.
func (m *Message) Append(args ...Value) *Message {
	m.Arguments = append(m.Arguments, args...)
	return m
}

// Clear removes the address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() string {
	return TypeTags(m.Arguments)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address)
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())

	for _, arg := range m.Arguments {
		fmt.Fprintf(&sb, " %v", arg)
	}

	return sb.String()
}

// Space returns the encoded size of the message in bytes.
func (m *Message) Space() int {
	n := paddedStringSize(m.Address) + typeTagsSize(len(m.Arguments))
	for _, arg := range m.Arguments {
		if arg != nil {
			n += arg.Space()
		}
	}
	return n
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The byte
// buffer has the following format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, m.Space()))
}

// AppendBinary appends the encoded message to dst.
func (m *Message) AppendBinary(dst []byte) ([]byte, error) {
	b := &Buffer{data: dst}
	if err := m.appendTo(b); err != nil {
		return dst, err
	}
	return b.data, nil
}

func (m *Message) appendTo(b *Buffer) error {
	for i, arg := range m.Arguments {
		if arg == nil {
			return fmt.Errorf("MarshalBinary: argument %d is nil: %w", i, ErrInvalidValue)
		}
	}

	if err := writePaddedString(m.Address, b); err != nil {
		return fmt.Errorf("MarshalBinary: address: %w", err)
	}

	// Tag strings never contain a NUL.
	_ = writePaddedString(m.TypeTags(), b)

	for i, arg := range m.Arguments {
		if err := arg.appendTo(b); err != nil {
			return fmt.Errorf("MarshalBinary: argument %d: %w", i, err)
		}
	}

	return nil
}

// NewMessageFromData returns a new OSC message created from the parsed data.
func NewMessageFromData(data []byte) (*Message, error) {
	m := &Message{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// whole of data must be a single message.
func (m *Message) UnmarshalBinary(data []byte) error {
	b := NewBuffer(data)
	msg, err := ParseMessage(b)
	if err != nil {
		return err
	}
	if b.Len() != 0 {
		return fmt.Errorf("UnmarshalBinary: %d trailing bytes: %w", b.Len(), ErrInvalidMessage)
	}

	*m = *msg
	return nil
}

// IsMessage reports whether the next frame in the buffer looks like a
// message, i.e. its address starts with '/'. Nothing is consumed.
func IsMessage(b *Buffer) bool {
	data := b.Bytes()
	return len(data) > 0 && data[0] == '/'
}

// ParseMessage decodes a message from the front of the buffer, consuming the
// bytes it reads. On error the state of the buffer is undefined.
func ParseMessage(b *Buffer) (*Message, error) {
	if !IsMessage(b) {
		return nil, fmt.Errorf("ParseMessage: address must start with '/': %w", ErrInvalidMessage)
	}

	addr, err := readPaddedString(b)
	if err != nil {
		return nil, fmt.Errorf("ParseMessage: address: %w", err)
	}

	m := &Message{Address: addr}
	if err = m.readArguments(b); err != nil {
		return nil, fmt.Errorf("ParseMessage: %w", err)
	}

	return m, nil
}

// readArguments reads the type tag string and then one argument per tag.
func (m *Message) readArguments(b *Buffer) error {
	typetags, err := readPaddedString(b)
	if err != nil {
		return fmt.Errorf("readArguments: type tags: %w", err)
	}

	// If the typetag doesn't start with ',', it's not valid
	if len(typetags) == 0 || typetags[0] != ',' {
		return fmt.Errorf("readArguments: unsupported typetag string %q: %w", typetags, ErrInvalidMessage)
	}

	if n := len(typetags) - 1; n > 0 {
		m.Arguments = make([]Value, 0, n)
	}
	for i := 1; i < len(typetags); i++ {
		v, err := ParseValue(b, TypeTag(typetags[i]))
		if err != nil {
			return fmt.Errorf("readArguments: argument %d: %w", i-1, err)
		}
		m.Arguments = append(m.Arguments, v)
	}

	return nil
}
