package tiff6

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeElementSize(t *testing.T) {
	assert.Equal(t, uint32(1), TypeByte.ElementSize())
	assert.Equal(t, uint32(2), TypeShort.ElementSize())
	assert.Equal(t, uint32(4), TypeLong.ElementSize())
	assert.Equal(t, uint32(8), TypeRational.ElementSize())
	assert.Equal(t, uint32(8), TypeDouble.ElementSize())
}

func TestTypeElementSizeUnknownFallsBackToOne(t *testing.T) {
	assert.Equal(t, uint32(1), Type(999).ElementSize())
}

func TestValueCount(t *testing.T) {
	assert.Equal(t, 3, LongValue([]uint32{1, 2, 3}).Count())
	assert.Equal(t, 2, AsciiValue([]string{"a", "b"}).Count())
	assert.Equal(t, 0, ShortValue(nil).Count())
}

func TestTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "Undefined", Type(0xBEEF).String())
}
