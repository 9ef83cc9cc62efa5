package osc

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a single OSC argument. The set of implementations is closed:
// Int32, Float32, String, Blob, Int64, Timetag, Double, Char, Bool, Nil and
// Infinitum.
type Value interface {
	// TypeTag returns the tag character announcing the value in a message's
	// type tag string.
	TypeTag() TypeTag
	// Space returns the number of payload bytes the value occupies on the
	// wire. Bool, Nil and Infinitum are carried by the tag alone.
	Space() int

	appendTo(b *Buffer) error
}

type (
	// Int32 is a 32-bit big-endian two's complement integer ('i').
	Int32 int32
	// Float32 is a 32-bit big-endian IEEE 754 float ('f').
	Float32 float32
	// String is a NUL terminated, 4 byte padded string ('s'). It must not
	// contain a NUL byte.
	String string
	// Blob is a length prefixed, 4 byte padded byte array ('b').
	Blob []byte
	// Int64 is a 64-bit big-endian two's complement integer ('h').
	Int64 int64
	// Double is a 64-bit big-endian IEEE 754 float ('d').
	Double float64
	// Char is a single ASCII character sent as a 32-bit integer ('c').
	Char byte
	// Bool is 'T' or 'F' and has no payload.
	Bool bool
	// Nil has no payload ('N').
	Nil struct{}
	// Infinitum has no payload ('I').
	Infinitum struct{}
)

var (
	_ Value = Int32(0)
	_ Value = Float32(0)
	_ Value = String("")
	_ Value = Blob(nil)
	_ Value = Int64(0)
	_ Value = Timetag(0)
	_ Value = Double(0)
	_ Value = Char(0)
	_ Value = Bool(false)
	_ Value = Nil{}
	_ Value = Infinitum{}
)

func (v Int32) TypeTag() TypeTag   { return TypeInt32 }
func (v Float32) TypeTag() TypeTag { return TypeFloat32 }
func (v String) TypeTag() TypeTag  { return TypeString }
func (v Blob) TypeTag() TypeTag    { return TypeBlob }
func (v Int64) TypeTag() TypeTag   { return TypeInt64 }
func (v Double) TypeTag() TypeTag  { return TypeFloat64 }
func (v Char) TypeTag() TypeTag    { return TypeChar }
func (v Nil) TypeTag() TypeTag     { return TypeNil }

func (v Infinitum) TypeTag() TypeTag { return TypeInfinitum }

func (v Bool) TypeTag() TypeTag {
	if v {
		return TypeTrue
	}
	return TypeFalse
}

func (v Int32) Space() int     { return bit32Size }
func (v Float32) Space() int   { return bit32Size }
func (v String) Space() int    { return paddedStringSize(string(v)) }
func (v Blob) Space() int      { return blobSize(v) }
func (v Int64) Space() int     { return bit64Size }
func (v Double) Space() int    { return bit64Size }
func (v Char) Space() int      { return bit32Size }
func (v Bool) Space() int      { return 0 }
func (v Nil) Space() int       { return 0 }
func (v Infinitum) Space() int { return 0 }

func (v Int32) appendTo(b *Buffer) error {
	b.writeUint32(uint32(v))
	return nil
}

func (v Float32) appendTo(b *Buffer) error {
	b.writeUint32(math.Float32bits(float32(v)))
	return nil
}

func (v String) appendTo(b *Buffer) error {
	return writePaddedString(string(v), b)
}

func (v Blob) appendTo(b *Buffer) error {
	if int64(len(v)) > math.MaxInt32 {
		return fmt.Errorf("blob of %d bytes: %w", len(v), ErrInvalidValue)
	}
	writeBlob(v, b)
	return nil
}

func (v Int64) appendTo(b *Buffer) error {
	b.writeUint64(uint64(v))
	return nil
}

func (v Double) appendTo(b *Buffer) error {
	b.writeUint64(math.Float64bits(float64(v)))
	return nil
}

func (v Char) appendTo(b *Buffer) error {
	b.writeUint32(uint32(v))
	return nil
}

func (v Bool) appendTo(*Buffer) error      { return nil }
func (v Nil) appendTo(*Buffer) error       { return nil }
func (v Infinitum) appendTo(*Buffer) error { return nil }

func (v Int32) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float32) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v String) String() string  { return string(v) }
func (v Blob) String() string    { return fmt.Sprintf("blob(%d)", len(v)) }
func (v Int64) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Double) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Char) String() string    { return strconv.QuoteRune(rune(v)) }
func (v Bool) String() string    { return strconv.FormatBool(bool(v)) }
func (v Nil) String() string     { return "Nil" }

func (v Infinitum) String() string { return "Infinitum" }

// ParseValue decodes a single value announced by tag from the front of the
// buffer.
func ParseValue(b *Buffer, tag TypeTag) (Value, error) {
	switch tag {
	case TypeInt32:
		i, err := b.readUint32()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: int32: %w", err)
		}
		return Int32(i), nil

	case TypeFloat32:
		f, err := b.readUint32()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: float32: %w", err)
		}
		return Float32(math.Float32frombits(f)), nil

	case TypeString:
		s, err := readPaddedString(b)
		if err != nil {
			return nil, fmt.Errorf("ParseValue: %w", err)
		}
		return String(s), nil

	case TypeBlob:
		data, err := readBlob(b)
		if err != nil {
			return nil, fmt.Errorf("ParseValue: %w", err)
		}
		return Blob(data), nil

	case TypeInt64:
		i, err := b.readUint64()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: int64: %w", err)
		}
		return Int64(i), nil

	case TypeTimeTag:
		t, err := b.readUint64()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: time tag: %w", err)
		}
		return Timetag(t), nil

	case TypeFloat64:
		d, err := b.readUint64()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: double: %w", err)
		}
		return Double(math.Float64frombits(d)), nil

	case TypeChar:
		c, err := b.readUint32()
		if err != nil {
			return nil, fmt.Errorf("ParseValue: char: %w", err)
		}
		return Char(c), nil

	case TypeTrue:
		return Bool(true), nil
	case TypeFalse:
		return Bool(false), nil
	case TypeNil:
		return Nil{}, nil
	case TypeInfinitum:
		return Infinitum{}, nil
	}

	return nil, fmt.Errorf("ParseValue: %q: %w", rune(tag), ErrInvalidTag)
}
