package tiff6

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// littleMagic and bigMagic are the byte-order markers at the start of a
// TIFF header: "II" for little-endian, "MM" for big-endian.
const (
	littleMagic = 0x4949
	bigMagic    = 0x4D4D

	// magicNumber is the fixed value that must follow the byte-order
	// marker, decoded in the byte order the marker selects.
	magicNumber = 42
)

// wordReader wraps an io.Reader with byte-order-aware fixed-width reads.
// It supplies the C1 "endian primitives" used by the directory chain (C5):
// the 16-bit entry count and 32-bit next-IFD offset are read through these
// calls, never through an ad hoc binary.Read. Entry payloads (including
// 8-byte Rational/Double elements) are read in bulk and decoded
// element-by-element directly against order in entry.go instead, since
// their size isn't known until the type code is inspected.
type wordReader struct {
	r     io.Reader
	order binary.ByteOrder
}

func newWordReader(r io.Reader, order binary.ByteOrder) wordReader {
	return wordReader{r: r, order: order}
}

func (w wordReader) readU16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(w.r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "tiff6: read u16")
	}
	return w.order.Uint16(buf[:]), nil
}

func (w wordReader) readU32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(w.r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "tiff6: read u32")
	}
	return w.order.Uint32(buf[:]), nil
}

// decodeHeader parses the 8-byte TIFF header from buf (exactly HeaderSize
// bytes), returning the discovered byte order and the offset of the 0th
// IFD. It is the sole place the byte-order marker and the classic-TIFF
// magic number are validated.
func decodeHeader(buf [HeaderSize]byte) (binary.ByteOrder, uint32, error) {
	var order binary.ByteOrder
	switch uint16(buf[0])<<8 | uint16(buf[1]) {
	case littleMagic:
		order = binary.LittleEndian
	case bigMagic:
		order = binary.BigEndian
	default:
		return nil, 0, errors.Wrap(ErrInvalidHeader, "unrecognized byte-order marker")
	}
	if order.Uint16(buf[2:4]) != magicNumber {
		return nil, 0, errors.Wrap(ErrInvalidHeader, "magic number is not 42")
	}
	return order, order.Uint32(buf[4:8]), nil
}

// encodeHeader serializes a TIFF header with the given byte order and
// first-IFD offset.
func encodeHeader(order binary.ByteOrder, ifdOffset uint32) [HeaderSize]byte {
	var buf [HeaderSize]byte
	if order == binary.LittleEndian {
		buf[0], buf[1] = 0x49, 0x49
	} else {
		buf[0], buf[1] = 0x4D, 0x4D
	}
	order.PutUint16(buf[2:4], magicNumber)
	order.PutUint32(buf[4:8], ifdOffset)
	return buf
}

// HeaderSize is the fixed size of a TIFF header: byte order (2) + magic
// number (2) + first-IFD offset (4).
const HeaderSize = 8
