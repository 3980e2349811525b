package tiff6

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSingleDirectoryRoundTrip(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	require.NoError(t, w.SetField(&ImageWidth{shortLongScalarField{V: 640}}))
	require.NoError(t, w.SetField(&ImageLength{shortLongScalarField{V: 480}}))
	require.NoError(t, w.SetField(&Software{asciiField{V: "tiff6"}}))

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, r.DirectoryCount())

	width, ok := GetFieldFromReader[ImageWidth](r)
	require.True(t, ok)
	assert.Equal(t, uint32(640), width.V)

	length, ok := GetFieldFromReader[ImageLength](r)
	require.True(t, ok)
	assert.Equal(t, uint32(480), length.V)

	sw, ok := GetFieldFromReader[Software](r)
	require.True(t, ok)
	assert.Equal(t, "tiff6", sw.V)
}

func TestWriterMultiDirectoryChain(t *testing.T) {
	w := NewWriter(binary.BigEndian)
	require.NoError(t, w.SetField(&ImageWidth{shortLongScalarField{V: 100}}))
	require.NoError(t, w.InsertDirectoryAt(1))
	require.NoError(t, w.SetField(&ImageWidth{shortLongScalarField{V: 200}}))

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, r.DirectoryCount())

	require.NoError(t, r.SetCurrentDirectory(0))
	w0, _ := GetFieldFromReader[ImageWidth](r)
	assert.Equal(t, uint32(100), w0.V)

	require.NoError(t, r.SetCurrentDirectory(1))
	w1, _ := GetFieldFromReader[ImageWidth](r)
	assert.Equal(t, uint32(200), w1.V)
}

func TestWriterOutOfLinePayloadEvenAlignment(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	// An odd-length ASCII string forces an odd-sized out-of-line
	// payload; the next field's offset must still land on an even byte.
	require.NoError(t, w.SetField(&ImageDescription{asciiField{V: "odd-length"}}))
	require.NoError(t, w.SetField(&Software{asciiField{V: "also-odd-ish"}}))

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	desc, ok := GetFieldFromReader[ImageDescription](r)
	require.True(t, ok)
	assert.Equal(t, "odd-length", desc.V)
	sw, ok := GetFieldFromReader[Software](r)
	require.True(t, ok)
	assert.Equal(t, "also-odd-ish", sw.V)
}

func TestWriterRejectsAfterWrite(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	assert.ErrorIs(t, w.Write(&bytes.Buffer{}), ErrWriterClosed)
	assert.ErrorIs(t, w.SetField(&ImageWidth{shortLongScalarField{V: 1}}), ErrWriterClosed)
}

func TestWriterSetCurrentDirectoryOutOfRange(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	err := w.SetCurrentDirectory(5)
	assert.ErrorIs(t, err, ErrDirectoryIndex)
}
