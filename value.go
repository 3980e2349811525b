package tiff6

// Type is the wire type code of a TIFF field's data (one of the twelve
// TIFF 6.0 primitive types). Codes outside 1..12 still decode, but as
// Undefined with the raw bytes preserved (see entry.go).
type Type uint16

const (
	TypeByte      Type = 1
	TypeASCII     Type = 2
	TypeShort     Type = 3
	TypeLong      Type = 4
	TypeRational  Type = 5
	TypeSByte     Type = 6
	TypeUndefined Type = 7
	TypeSShort    Type = 8
	TypeSLong     Type = 9
	TypeSRational Type = 10
	TypeFloat     Type = 11
	TypeDouble    Type = 12
)

var typeSizes = map[Type]uint32{
	TypeByte:      1,
	TypeASCII:     1,
	TypeShort:     2,
	TypeLong:      4,
	TypeRational:  8,
	TypeSByte:     1,
	TypeUndefined: 1,
	TypeSShort:    2,
	TypeSLong:     4,
	TypeSRational: 8,
	TypeFloat:     4,
	TypeDouble:    8,
}

var typeNames = map[Type]string{
	TypeByte:      "Byte",
	TypeASCII:     "ASCII",
	TypeShort:     "Short",
	TypeLong:      "Long",
	TypeRational:  "Rational",
	TypeSByte:     "SByte",
	TypeUndefined: "Undefined",
	TypeSShort:    "SShort",
	TypeSLong:     "SLong",
	TypeSRational: "SRational",
	TypeFloat:     "Float",
	TypeDouble:    "Double",
}

// ElementSize returns the byte width of a single element of this type, or
// 1 for any code outside the known set (matching the Undefined fallback).
func (t Type) ElementSize() uint32 {
	if size, ok := typeSizes[t]; ok {
		return size
	}
	return 1
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Undefined"
}

// Rational is an unsigned numerator/denominator pair. The denominator may
// be zero; interpretation is the consumer's responsibility.
type Rational struct {
	Num, Denom uint32
}

// SRational is the signed counterpart of Rational.
type SRational struct {
	Num, Denom int32
}

// Value is the decoded payload of an IFD entry: a tagged union over the
// twelve TIFF primitive types. Exactly one of the typed slices is
// populated, selected by Type. This mirrors the wire format's type code
// directly, rather than being a generic byte blob the caller must
// reinterpret.
type Value struct {
	Type Type

	Bytes      []uint8
	Asciis     []string
	Shorts     []uint16
	Longs      []uint32
	Rationals  []Rational
	SBytes     []int8
	Undefined  []uint8
	SShorts    []int16
	SLongs     []int32
	SRationals []SRational
	Floats     []float32
	Doubles    []float64
}

// Count returns the value's element count (for ASCII, the number of
// strings).
func (v Value) Count() int {
	switch v.Type {
	case TypeByte:
		return len(v.Bytes)
	case TypeASCII:
		return len(v.Asciis)
	case TypeShort:
		return len(v.Shorts)
	case TypeLong:
		return len(v.Longs)
	case TypeRational:
		return len(v.Rationals)
	case TypeSByte:
		return len(v.SBytes)
	case TypeSShort:
		return len(v.SShorts)
	case TypeSLong:
		return len(v.SLongs)
	case TypeSRational:
		return len(v.SRationals)
	case TypeFloat:
		return len(v.Floats)
	case TypeDouble:
		return len(v.Doubles)
	default:
		return len(v.Undefined)
	}
}

// ByteValue constructs a Byte-typed Value.
func ByteValue(v []uint8) Value { return Value{Type: TypeByte, Bytes: v} }

// AsciiValue constructs an ASCII-typed Value from an ordered sequence of
// strings (the packed, NUL-terminated wire form is an implementation
// detail of entry encoding, not of this constructor).
func AsciiValue(v []string) Value { return Value{Type: TypeASCII, Asciis: v} }

// ShortValue constructs a Short-typed Value.
func ShortValue(v []uint16) Value { return Value{Type: TypeShort, Shorts: v} }

// LongValue constructs a Long-typed Value.
func LongValue(v []uint32) Value { return Value{Type: TypeLong, Longs: v} }

// RationalValue constructs a Rational-typed Value.
func RationalValue(v []Rational) Value { return Value{Type: TypeRational, Rationals: v} }

// SByteValue constructs an SByte-typed Value.
func SByteValue(v []int8) Value { return Value{Type: TypeSByte, SBytes: v} }

// UndefinedValue constructs an Undefined-typed Value from opaque bytes.
func UndefinedValue(v []uint8) Value { return Value{Type: TypeUndefined, Undefined: v} }

// SShortValue constructs an SShort-typed Value.
func SShortValue(v []int16) Value { return Value{Type: TypeSShort, SShorts: v} }

// SLongValue constructs an SLong-typed Value.
func SLongValue(v []int32) Value { return Value{Type: TypeSLong, SLongs: v} }

// SRationalValue constructs an SRational-typed Value.
func SRationalValue(v []SRational) Value { return Value{Type: TypeSRational, SRationals: v} }

// FloatValue constructs a Float-typed Value.
func FloatValue(v []float32) Value { return Value{Type: TypeFloat, Floats: v} }

// DoubleValue constructs a Double-typed Value.
func DoubleValue(v []float64) Value { return Value{Type: TypeDouble, Doubles: v} }
