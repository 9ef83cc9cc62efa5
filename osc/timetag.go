package osc

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// Immediate is the special time tag meaning "execute now". It is the
	// value with 63 zero bits followed by a one.
	Immediate Timetag = 1

	// secondsFrom1900To1970 shifts the Unix epoch to the NTP epoch: 70 years
	// plus 17 leap days.
	secondsFrom1900To1970 = (70*365 + 17) * 24 * 60 * 60

	// fractionsPerSecond is the resolution of the low 32 bits.
	fractionsPerSecond = 1 << 32
)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
//
// Timetag is also a Value and encodes with the 't' type tag.
type Timetag uint64

// NewTimetag returns a time tag for the current time.
func NewTimetag() Timetag {
	return NewTimetagFromTime(time.Now())
}

// NewImmediateTimetag returns the "immediately" time tag.
func NewImmediateTimetag() Timetag {
	return Immediate
}

// NewTimetagFromTime returns a new OSC time tag object from a time.Time.
// Only times between 1900 and early 2036 (NTP era 0) are representable; the
// seconds of other times wrap around.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return Timetag(timeToTimetag(timeStamp))
}

// Time returns the time. The immediate time tag has no meaningful time and
// returns the NTP epoch.
func (t Timetag) Time() time.Time {
	return timetagToTime(t)
}

// IsImmediate reports whether t is the "immediately" time tag.
func (t Timetag) IsImmediate() bool {
	return t == Immediate
}

// Fraction returns the last 32 bits of the OSC time tag. Specifies the
// fractional part of a second.
func (t Timetag) Fraction() uint32 {
	return uint32(t)
}

// Seconds returns the first 32 bits (the number of seconds since the
// midnight 1900) from the OSC time tag.
func (t Timetag) Seconds() uint32 {
	return uint32(t >> 32)
}

// SetTime sets the value of the OSC time tag.
func (t *Timetag) SetTime(time time.Time) {
	*t = Timetag(timeToTimetag(time))
}

// ExpiresIn calculates the time until the current time is the same as the
// value of the time tag. It returns zero if the time tag is in the past or
// immediate.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= Immediate {
		return 0
	}

	d := time.Until(timetagToTime(t))
	if d <= 0 {
		return 0
	}

	return d
}

// MarshalBinary converts the OSC time tag to a byte array.
func (t Timetag) MarshalBinary() ([]byte, error) {
	b := make([]byte, bit64Size)
	binary.BigEndian.PutUint64(b, uint64(t))
	return b, nil
}

// UnmarshalBinary sets the time tag from its 8 byte encoding.
func (t *Timetag) UnmarshalBinary(data []byte) error {
	if len(data) != bit64Size {
		return fmt.Errorf("UnmarshalBinary: time tag is %d bytes, want %d: %w", len(data), bit64Size, ErrTruncated)
	}
	*t = Timetag(binary.BigEndian.Uint64(data))
	return nil
}

// String implements the fmt.Stringer interface.
func (t Timetag) String() string {
	if t.IsImmediate() {
		return "immediate"
	}
	return t.Time().UTC().Format(time.RFC3339Nano)
}

// TypeTag implements Value.
func (t Timetag) TypeTag() TypeTag { return TypeTimeTag }

// Space implements Value.
func (t Timetag) Space() int { return bit64Size }

func (t Timetag) appendTo(b *Buffer) error {
	b.writeUint64(uint64(t))
	return nil
}

// timeToTimetag converts the given time to an OSC time tag. The fraction is
// rounded to the nearest 1/2^32 second, which keeps timetagToTime an exact
// inverse at nanosecond resolution.
func timeToTimetag(t time.Time) uint64 {
	secs := uint64(t.Unix() + secondsFrom1900To1970)
	frac := (uint64(t.Nanosecond())*fractionsPerSecond + uint64(time.Second)/2) / uint64(time.Second)
	return secs<<32 | frac
}

// timetagToTime converts the given timetag to a time object.
func timetagToTime(timetag Timetag) time.Time {
	secs := int64(timetag.Seconds()) - secondsFrom1900To1970
	nsec := (uint64(timetag.Fraction())*uint64(time.Second) + fractionsPerSecond/2) / fractionsPerSecond
	return time.Unix(secs, int64(nsec))
}
