package osc

import "errors"

// Errors returned by the encoder and decoder. They are usually wrapped with
// the name of the failing operation, so compare them with errors.Is.
var (
	// ErrTruncated means fewer bytes remain than the next field requires.
	ErrTruncated = errors.New("osc: truncated packet")
	// ErrInvalidTag means a type tag character isn't one of "ifsbhtdcTFNI".
	ErrInvalidTag = errors.New("osc: invalid type tag")
	// ErrInvalidValue means a value can't be encoded or decoded, e.g. a
	// string with an embedded NUL or a string missing its terminator.
	ErrInvalidValue = errors.New("osc: invalid value")
	// ErrInvalidMessage means the address or type tag string framing is broken.
	ErrInvalidMessage = errors.New("osc: invalid message")
	// ErrInvalidBundle means the "#bundle" marker or element framing is broken.
	ErrInvalidBundle = errors.New("osc: invalid bundle")
)
