package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Next(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 6, b.Len())

	p, err := b.Next(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, p)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []byte{5, 6}, b.Bytes())

	_, err = b.Next(3)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 2, b.Len(), "failed Next consumed input")

	_, err = b.Next(-1)
	assert.ErrorIs(t, err, ErrTruncated)

	p, err = b.Next(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6}, p)
	assert.Zero(t, b.Len())

	p, err = b.Next(0)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestBuffer_Write(t *testing.T) {
	b := newBufferSize(8)
	n, err := b.Write([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	b.writeUint32(0x03040506)
	b.writeZeros(2)
	b.WriteString("ab")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0, 0, 'a', 'b'}, b.Bytes())

	v, err := b.readUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)

	_, err = b.readUint64()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestBuffer_NextDoesNotGrowIntoTail(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4})
	p, err := b.Next(2)
	require.NoError(t, err)

	p = append(p, 9)
	assert.Equal(t, []byte{3, 4}, b.Bytes())
	assert.Equal(t, []byte{1, 2, 9}, p)
}
