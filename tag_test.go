package tiff6

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagNameKnown(t *testing.T) {
	assert.Equal(t, "ImageWidth", TagImageWidth.Name())
}

func TestTagNameUnknown(t *testing.T) {
	tag := TagFromUint16(0x9999)
	assert.Equal(t, "Unknown(0x9999)", tag.Name())
}

func TestTagFromUint16RoundTrip(t *testing.T) {
	tag := TagFromUint16(0x0100)
	assert.Equal(t, TagImageWidth, tag)
	assert.Equal(t, uint16(0x0100), tag.Value())
}
