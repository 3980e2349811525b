package tiff6

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// entrySize is the on-disk size of one IFD entry record: tag (2) + type
// (2) + count (4) + value-or-offset (4).
const entrySize = 12

// rawEntry is the as-parsed 12-byte IFD entry record, before its payload
// has been resolved to a Value. Keeping the raw slot around (rather than
// eagerly decoding) lets the directory chain (C5) read an entire IFD with
// a single pass over 12-byte records and defer payload I/O to the reader
// facade, exactly as spec'd.
type rawEntry struct {
	Tag   Tag
	Type  Type
	Count uint32
	// Slot holds the 4-byte value-or-offset field exactly as it
	// appeared on the wire: when the payload fits inline, this is the
	// payload itself, left-justified in file order (not a byte-order
	// encoded integer); otherwise it is the big/little-endian encoded
	// file offset of the out-of-line payload.
	Slot [4]byte
}

func (e rawEntry) payloadSize() uint32 {
	return e.Count * e.Type.ElementSize()
}

// decodeRawEntry reads one 12-byte entry record from r.
func decodeRawEntry(r io.Reader, order binary.ByteOrder) (rawEntry, error) {
	var buf [entrySize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return rawEntry{}, errors.Wrap(err, "tiff6: read IFD entry")
	}
	var e rawEntry
	e.Tag = Tag(order.Uint16(buf[0:2]))
	e.Type = Type(order.Uint16(buf[2:4]))
	e.Count = order.Uint32(buf[4:8])
	copy(e.Slot[:], buf[8:12])
	return e, nil
}

// decodeValue resolves a raw entry's payload into a typed Value. src must
// support seeking to an absolute offset when the payload is out-of-line.
func decodeValue(src io.ReadSeeker, order binary.ByteOrder, e rawEntry) (Value, error) {
	size := e.payloadSize()

	payload, err := readPayload(src, order, e, size)
	if err != nil {
		return Value{}, err
	}

	switch e.Type {
	case TypeByte:
		return ByteValue(payload), nil
	case TypeSByte:
		out := make([]int8, len(payload))
		for i, b := range payload {
			out[i] = int8(b)
		}
		return SByteValue(out), nil
	case TypeASCII:
		strs, err := splitAscii(payload)
		if err != nil {
			return Value{}, err
		}
		return AsciiValue(strs), nil
	case TypeShort:
		out := make([]uint16, e.Count)
		for i := range out {
			out[i] = order.Uint16(payload[i*2:])
		}
		return ShortValue(out), nil
	case TypeSShort:
		out := make([]int16, e.Count)
		for i := range out {
			out[i] = int16(order.Uint16(payload[i*2:]))
		}
		return SShortValue(out), nil
	case TypeLong:
		out := make([]uint32, e.Count)
		for i := range out {
			out[i] = order.Uint32(payload[i*4:])
		}
		return LongValue(out), nil
	case TypeSLong:
		out := make([]int32, e.Count)
		for i := range out {
			out[i] = int32(order.Uint32(payload[i*4:]))
		}
		return SLongValue(out), nil
	case TypeRational:
		out := make([]Rational, e.Count)
		for i := range out {
			out[i] = Rational{
				Num:   order.Uint32(payload[i*8:]),
				Denom: order.Uint32(payload[i*8+4:]),
			}
		}
		return RationalValue(out), nil
	case TypeSRational:
		out := make([]SRational, e.Count)
		for i := range out {
			out[i] = SRational{
				Num:   int32(order.Uint32(payload[i*8:])),
				Denom: int32(order.Uint32(payload[i*8+4:])),
			}
		}
		return SRationalValue(out), nil
	case TypeFloat:
		out := make([]float32, e.Count)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(payload[i*4:]))
		}
		return FloatValue(out), nil
	case TypeDouble:
		out := make([]float64, e.Count)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(payload[i*8:]))
		}
		return DoubleValue(out), nil
	default:
		// Unknown type codes degrade to Undefined with the raw bytes
		// preserved, per spec: they never error.
		return UndefinedValue(payload), nil
	}
}

// readPayload returns the size bytes of an entry's payload, reading
// in-line from the entry's value-or-offset slot when it fits, or seeking
// to the out-of-line offset otherwise.
func readPayload(src io.ReadSeeker, order binary.ByteOrder, e rawEntry, size uint32) ([]byte, error) {
	if size <= 4 {
		// Inline payloads are left-justified file-order bytes in the
		// slot -- never reinterpret the slot as an endian-encoded
		// u32, or smaller element widths decode backwards on
		// big-endian files.
		return append([]byte(nil), e.Slot[:size]...), nil
	}
	offset := order.Uint32(e.Slot[:])
	if _, err := src.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "tiff6: seek to payload for tag %s", e.Tag)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, errors.Wrapf(err, "tiff6: read payload for tag %s", e.Tag)
	}
	return buf, nil
}

// splitAscii splits a packed, NUL-terminated byte string into its
// component strings, validating that every byte is 7-bit ASCII (a
// subset of UTF-8).
func splitAscii(b []byte) ([]string, error) {
	if !utf8.Valid(b) {
		return nil, errors.Wrap(ErrAsciiEncoding, "non-UTF8 bytes in ASCII field")
	}
	for _, c := range b {
		if c > 0x7F {
			return nil, errors.Wrap(ErrAsciiEncoding, "non-ASCII byte in ASCII field")
		}
	}
	var out []string
	start := 0
	for i, c := range b {
		if c == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out, nil
}

// encodeValue serializes a Value into its wire (type code, element
// count, payload) triple, using order for every multi-byte element. For
// ASCII the count is the payload's byte length (NUL terminators
// included), since decodeValue reads count x element-width bytes. This
// is the writer-side counterpart of decodeValue.
func encodeValue(v Value, order binary.ByteOrder) (Type, uint32, []byte, error) {
	switch v.Type {
	case TypeByte:
		return TypeByte, uint32(len(v.Bytes)), append([]byte(nil), v.Bytes...), nil
	case TypeSByte:
		buf := make([]byte, len(v.SBytes))
		for i, b := range v.SBytes {
			buf[i] = byte(b)
		}
		return TypeSByte, uint32(len(v.SBytes)), buf, nil
	case TypeUndefined:
		return TypeUndefined, uint32(len(v.Undefined)), append([]byte(nil), v.Undefined...), nil
	case TypeASCII:
		return encodeAscii(v.Asciis)
	case TypeShort:
		buf := make([]byte, len(v.Shorts)*2)
		for i, s := range v.Shorts {
			order.PutUint16(buf[i*2:], s)
		}
		return TypeShort, uint32(len(v.Shorts)), buf, nil
	case TypeSShort:
		buf := make([]byte, len(v.SShorts)*2)
		for i, s := range v.SShorts {
			order.PutUint16(buf[i*2:], uint16(s))
		}
		return TypeSShort, uint32(len(v.SShorts)), buf, nil
	case TypeLong:
		buf := make([]byte, len(v.Longs)*4)
		for i, l := range v.Longs {
			order.PutUint32(buf[i*4:], l)
		}
		return TypeLong, uint32(len(v.Longs)), buf, nil
	case TypeSLong:
		buf := make([]byte, len(v.SLongs)*4)
		for i, l := range v.SLongs {
			order.PutUint32(buf[i*4:], uint32(l))
		}
		return TypeSLong, uint32(len(v.SLongs)), buf, nil
	case TypeRational:
		buf := make([]byte, len(v.Rationals)*8)
		for i, r := range v.Rationals {
			order.PutUint32(buf[i*8:], r.Num)
			order.PutUint32(buf[i*8+4:], r.Denom)
		}
		return TypeRational, uint32(len(v.Rationals)), buf, nil
	case TypeSRational:
		buf := make([]byte, len(v.SRationals)*8)
		for i, r := range v.SRationals {
			order.PutUint32(buf[i*8:], uint32(r.Num))
			order.PutUint32(buf[i*8+4:], uint32(r.Denom))
		}
		return TypeSRational, uint32(len(v.SRationals)), buf, nil
	case TypeFloat:
		buf := make([]byte, len(v.Floats)*4)
		for i, f := range v.Floats {
			order.PutUint32(buf[i*4:], math.Float32bits(f))
		}
		return TypeFloat, uint32(len(v.Floats)), buf, nil
	case TypeDouble:
		buf := make([]byte, len(v.Doubles)*8)
		for i, f := range v.Doubles {
			order.PutUint64(buf[i*8:], math.Float64bits(f))
		}
		return TypeDouble, uint32(len(v.Doubles)), buf, nil
	default:
		return 0, 0, nil, errors.Wrapf(ErrFieldEncoding, "unsupported value type %v", v.Type)
	}
}

func encodeAscii(strs []string) (Type, uint32, []byte, error) {
	var buf []byte
	for _, s := range strs {
		for i := 0; i < len(s); i++ {
			if s[i] > 0x7F {
				return 0, 0, nil, errors.Wrapf(ErrFieldEncoding, "non-ASCII byte in string %q", s)
			}
		}
		buf = append(buf, s...)
		buf = append(buf, 0)
	}
	return TypeASCII, uint32(len(buf)), buf, nil
}

// inlineSlot packs payload into a 4-byte value-or-offset slot,
// left-justified and zero-padded, for entries whose payload fits inline.
func inlineSlot(payload []byte) [4]byte {
	var slot [4]byte
	copy(slot[:], payload)
	return slot
}
