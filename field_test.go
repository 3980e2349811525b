package tiff6

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[Tag]Value) func(Tag) (Value, bool) {
	return func(tag Tag) (Value, bool) {
		v, ok := values[tag]
		return v, ok
	}
}

func TestGetFieldShortLongScalar(t *testing.T) {
	lookup := lookupFrom(map[Tag]Value{TagImageWidth: ShortValue([]uint16{800})})
	f, ok := GetField[ImageWidth](lookup)
	require.True(t, ok)
	assert.Equal(t, uint32(800), f.V)
}

func TestGetFieldMissingTag(t *testing.T) {
	_, ok := GetField[ImageWidth](lookupFrom(nil))
	assert.False(t, ok)
}

func TestGetFieldWrongType(t *testing.T) {
	lookup := lookupFrom(map[Tag]Value{TagImageWidth: AsciiValue([]string{"nope"})})
	_, ok := GetField[ImageWidth](lookup)
	assert.False(t, ok)
}

func TestShortLongScalarEncodePicksSmallestType(t *testing.T) {
	f := ImageWidth{shortLongScalarField{V: 100}}
	v, err := f.EncodeValue()
	require.NoError(t, err)
	assert.Equal(t, TypeShort, v.Type)

	big := ImageWidth{shortLongScalarField{V: 100000}}
	v, err = big.EncodeValue()
	require.NoError(t, err)
	assert.Equal(t, TypeLong, v.Type)
}

func TestShortLongVectorFieldEncodeUsesLongWhenAnyElementOverflows(t *testing.T) {
	f := StripOffsets{shortLongVectorField{V: []uint32{10, 70000}}}
	v, err := f.EncodeValue()
	require.NoError(t, err)
	assert.Equal(t, TypeLong, v.Type)
}

func TestPhotometricInterpretationRoundTrip(t *testing.T) {
	lookup := lookupFrom(map[Tag]Value{TagPhotometricInterpretation: ShortValue([]uint16{2})})
	var p PhotometricInterpretation
	ok := p.DecodeFrom(mustGet(lookup, TagPhotometricInterpretation))
	require.True(t, ok)
	assert.Equal(t, PhotometricRGB, p)

	v, err := p.EncodeValue()
	require.NoError(t, err)
	assert.Equal(t, []uint16{2}, v.Shorts)
}

func TestPhotometricInterpretationRejectsOutOfRange(t *testing.T) {
	var p PhotometricInterpretation
	assert.False(t, p.DecodeFrom(ShortValue([]uint16{99})))
}

func TestExtraSamplesRoundTrip(t *testing.T) {
	var e ExtraSamples
	ok := e.DecodeFrom(ShortValue([]uint16{0, 2}))
	require.True(t, ok)
	assert.Equal(t, []ExtraSampleKind{ExtraSampleUnspecified, ExtraSampleUnassociatedAlpha}, e.V)

	v, err := e.EncodeValue()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 2}, v.Shorts)
}

func TestAsciiFieldRoundTrip(t *testing.T) {
	f := Software{asciiField{V: "tiff6"}}
	v, err := f.EncodeValue()
	require.NoError(t, err)

	var got Software
	require.True(t, got.DecodeFrom(v))
	assert.Equal(t, "tiff6", got.V)
}

func mustGet(lookup func(Tag) (Value, bool), tag Tag) Value {
	v, _ := lookup(tag)
	return v
}
