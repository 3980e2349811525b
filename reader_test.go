package tiff6

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalTIFF(t *testing.T) []byte {
	t.Helper()
	w := NewWriter(binary.LittleEndian)
	require.NoError(t, w.SetField(&ImageWidth{shortLongScalarField{V: 16}}))
	require.NoError(t, w.SetField(&ImageLength{shortLongScalarField{V: 16}}))
	require.NoError(t, w.SetValueForTag(TagStripOffsets, LongValue([]uint32{200})))
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	return buf.Bytes()
}

func TestReaderRejectsGarbageHeader(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not a tiff file at all")))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestReaderCurrentDirectoryTags(t *testing.T) {
	r, err := NewReader(bytes.NewReader(minimalTIFF(t)))
	require.NoError(t, err)
	tags := r.CurrentDirectoryTags()
	assert.Contains(t, tags, TagImageWidth)
	assert.Contains(t, tags, TagImageLength)
	assert.Contains(t, tags, TagStripOffsets)
}

func TestReaderValueForTagMissing(t *testing.T) {
	r, err := NewReader(bytes.NewReader(minimalTIFF(t)))
	require.NoError(t, err)
	_, ok := r.ValueForTag(TagCopyright)
	assert.False(t, ok)
}

func TestReaderSetCurrentDirectoryOutOfRange(t *testing.T) {
	r, err := NewReader(bytes.NewReader(minimalTIFF(t)))
	require.NoError(t, err)
	assert.ErrorIs(t, r.SetCurrentDirectory(9), ErrDirectoryIndex)
}

func TestReaderValueForTagCachesResult(t *testing.T) {
	r, err := NewReader(bytes.NewReader(minimalTIFF(t)))
	require.NoError(t, err)
	first, ok := r.ValueForTag(TagImageWidth)
	require.True(t, ok)
	second, ok := r.ValueForTag(TagImageWidth)
	require.True(t, ok)
	assert.Equal(t, first, second)
}
