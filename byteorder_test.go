package tiff6

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeaderLittleEndian(t *testing.T) {
	buf := encodeHeader(binary.LittleEndian, 8)
	order, ifdOffset, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, order)
	assert.Equal(t, uint32(8), ifdOffset)
}

func TestDecodeHeaderBigEndian(t *testing.T) {
	buf := encodeHeader(binary.BigEndian, 1234)
	order, ifdOffset, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, order)
	assert.Equal(t, uint32(1234), ifdOffset)
}

func TestDecodeHeaderBadMarker(t *testing.T) {
	var buf [HeaderSize]byte
	copy(buf[:], []byte{'X', 'X', 42, 0, 0, 0, 0, 0})
	_, _, err := decodeHeader(buf)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecodeHeaderBadMagicNumber(t *testing.T) {
	var buf [HeaderSize]byte
	buf[0], buf[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(buf[2:4], 43)
	_, _, err := decodeHeader(buf)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}
