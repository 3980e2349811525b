package tiff6

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSeeker wraps a byte slice to satisfy io.ReadSeeker, as a stand-in
// for a file during entry-level tests.
func fakeSeeker(b []byte) io.ReadSeeker {
	return bytes.NewReader(b)
}

func TestDecodeValueInlineShort(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 640)

	v, err := decodeValue(fakeSeeker(nil), order, e)
	require.NoError(t, err)
	assert.Equal(t, []uint16{640}, v.Shorts)
}

func TestDecodeValueOutOfLineLong(t *testing.T) {
	order := binary.BigEndian
	payload := make([]byte, 8)
	order.PutUint32(payload[0:], 100)
	order.PutUint32(payload[4:], 200)

	src := fakeSeeker(append(make([]byte, 16), payload...))
	e := rawEntry{Tag: TagStripOffsets, Type: TypeLong, Count: 2}
	order.PutUint32(e.Slot[:], 16)

	v, err := decodeValue(src, order, e)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100, 200}, v.Longs)
}

func TestDecodeValueInlineOffsetBoundary(t *testing.T) {
	order := binary.LittleEndian
	// Exactly 4 bytes (two Shorts) must stay inline, never seek.
	e := rawEntry{Tag: TagBitsPerSample, Type: TypeShort, Count: 2}
	order.PutUint16(e.Slot[0:2], 8)
	order.PutUint16(e.Slot[2:4], 16)

	v, err := decodeValue(fakeSeeker(nil), order, e)
	require.NoError(t, err)
	assert.Equal(t, []uint16{8, 16}, v.Shorts)
}

func TestSplitAsciiMultipleStrings(t *testing.T) {
	strs, err := splitAscii([]byte("foo\x00bar\x00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, strs)
}

func TestSplitAsciiRejectsNonASCII(t *testing.T) {
	_, err := splitAscii([]byte{0xFF, 0x00})
	assert.ErrorIs(t, err, ErrAsciiEncoding)
}

func TestEncodeValueRoundTripRational(t *testing.T) {
	order := binary.LittleEndian
	v := RationalValue([]Rational{{Num: 3, Denom: 2}})
	typ, count, payload, err := encodeValue(v, order)
	require.NoError(t, err)
	assert.Equal(t, TypeRational, typ)
	assert.Equal(t, uint32(1), count)

	e := rawEntry{Type: TypeRational, Count: 1}
	src := fakeSeeker(append(make([]byte, 0), payload...))
	order.PutUint32(e.Slot[:], 0)
	got, err := decodeValue(src, order, e)
	require.NoError(t, err)
	assert.Equal(t, v.Rationals, got.Rationals)
}

func TestEncodeAsciiRejectsNonASCII(t *testing.T) {
	_, _, _, err := encodeAscii([]string{"héllo"})
	assert.ErrorIs(t, err, ErrFieldEncoding)
}
