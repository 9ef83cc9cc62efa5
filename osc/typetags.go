package osc

// TypeTag identifies the wire type of a single argument in a message's type
// tag string.
type TypeTag byte

const (
	TypeInt32     TypeTag = 'i'
	TypeFloat32   TypeTag = 'f'
	TypeString    TypeTag = 's'
	TypeBlob      TypeTag = 'b'
	TypeInt64     TypeTag = 'h'
	TypeTimeTag   TypeTag = 't'
	TypeFloat64   TypeTag = 'd'
	TypeChar      TypeTag = 'c'
	TypeTrue      TypeTag = 'T'
	TypeFalse     TypeTag = 'F'
	TypeNil       TypeTag = 'N'
	TypeInfinitum TypeTag = 'I'
	TypeInvalid   TypeTag = 0
)

// IsValid reports whether t is one of the supported type tags.
func (t TypeTag) IsValid() bool {
	switch t {
	case TypeInt32, TypeFloat32, TypeString, TypeBlob, TypeInt64, TypeTimeTag,
		TypeFloat64, TypeChar, TypeTrue, TypeFalse, TypeNil, TypeInfinitum:
		return true
	}
	return false
}

// String returns the tag character.
func (t TypeTag) String() string {
	return string(rune(t))
}

// TypeTags returns the OSC type tag string for the given arguments: a ','
// followed by one tag per argument. Nil arguments have no tag and are
// skipped.
func TypeTags(args []Value) string {
	tt := make([]byte, 0, len(args)+1)
	tt = append(tt, ',')
	for _, arg := range args {
		if arg == nil {
			continue
		}
		tt = append(tt, byte(arg.TypeTag()))
	}
	return string(tt)
}

// typeTagsSize returns the encoded size of the type tag string for n
// arguments.
func typeTagsSize(n int) int {
	return padded(n + 2)
}
