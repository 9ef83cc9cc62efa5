package osc

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	bit32Size = 4
	bit64Size = 8
)

////
// De/Encoding functions
////

// padded rounds n up to the next multiple of 4.
func padded(n int) int {
	return n + padBytesNeeded(n)
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// paddedStringSize returns the encoded size of str, including the NUL
// terminator and padding.
func paddedStringSize(str string) int {
	return padded(len(str) + 1)
}

// writePaddedString writes a NUL terminated string with padding bytes to the
// buffer. Strings that already contain a NUL can't be represented.
func writePaddedString(str string, b *Buffer) error {
	if strings.IndexByte(str, 0) != -1 {
		return fmt.Errorf("writePaddedString: NUL inside %q: %w", str, ErrInvalidValue)
	}

	b.WriteString(str)
	b.writeZeros(1 + padBytesNeeded(len(str)+1))
	return nil
}

// readPaddedString reads a padded string from the buffer and consumes its
// terminator and padding bytes. The returned string is a copy.
func readPaddedString(b *Buffer) (string, error) {
	pos := bytes.IndexByte(b.Bytes(), 0)
	if pos == -1 {
		return "", fmt.Errorf("readPaddedString: missing NUL terminator: %w", ErrInvalidValue)
	}

	data, err := b.Next(padded(pos + 1))
	if err != nil {
		return "", fmt.Errorf("readPaddedString: %w", err)
	}

	return string(data[:pos]), nil
}

// blobSize returns the encoded size of a blob with the given payload.
func blobSize(data []byte) int {
	return bit32Size + padded(len(data))
}

// writeBlob writes the data byte array as an OSC blob into the buffer. If the
// length of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(data []byte, b *Buffer) {
	b.writeUint32(uint32(len(data)))
	b.Write(data)
	b.writeZeros(padBytesNeeded(len(data)))
}

// readBlob reads an OSC blob from the buffer. Padding bytes are consumed and
// not returned. The returned slice is a copy.
func readBlob(b *Buffer) ([]byte, error) {
	n, err := b.readUint32()
	if err != nil {
		return nil, fmt.Errorf("readBlob: length: %w", err)
	}

	blobLen := int(int32(n))
	if blobLen < 0 {
		return nil, fmt.Errorf("readBlob: negative length %d: %w", blobLen, ErrInvalidValue)
	}

	data, err := b.Next(padded(blobLen))
	if err != nil {
		return nil, fmt.Errorf("readBlob: %w", err)
	}

	blob := make([]byte, blobLen)
	copy(blob, data)
	return blob, nil
}
