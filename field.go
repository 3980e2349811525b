package tiff6

// Field is a strongly typed view onto one tag's Value. Concrete field
// types (ImageWidth, Compression, StripOffsets, ...) embed one of the
// family structs below and add only a Tag method, so the wire-level
// decode/encode rules for "a Short-or-Long scalar" or "a vector of
// Shorts" are written once per family rather than once per tag.
type Field interface {
	Tag() Tag
	DecodeFrom(Value) bool
	EncodeValue() (Value, error)
}

// fieldPtr constrains a generic field helper to pointer-receiver types
// implementing Field, so GetField can construct a zero T and decode into
// it without the caller naming the concrete type's methods directly.
type fieldPtr[T any] interface {
	*T
	Field
}

// GetField looks up tag's raw entry in a directory-like entry lookup and
// decodes it into a T, returning false if the tag is absent or its Value
// doesn't match T's expected shape.
func GetField[T any, PT fieldPtr[T]](lookup func(Tag) (Value, bool)) (T, bool) {
	var zero T
	p := PT(&zero)
	v, ok := lookup(p.Tag())
	if !ok {
		return zero, false
	}
	return zero, p.DecodeFrom(v)
}

// GetFieldOrDefault is GetField with TIFF 6.0's defined default substituted
// for an absent tag, for the fields where the spec defines one (e.g.
// ResolutionUnit absent means Centimeter, not "unknown").
func GetFieldOrDefault[T any, PT fieldPtr[T]](lookup func(Tag) (Value, bool), def T) T {
	v, ok := GetField[T, PT](lookup)
	if !ok {
		return def
	}
	return v
}

// PutField encodes f's value, pairing it with f's tag for insertion into
// a writer.
func PutField(f Field) (Tag, Value, error) {
	v, err := f.EncodeValue()
	if err != nil {
		return 0, Value{}, err
	}
	return f.Tag(), v, nil
}

// --- field families -------------------------------------------------

// asciiField holds a single text value (TIFF's ASCII fields are almost
// always a single NUL-terminated string; the rare multi-string fields
// use their own vector type below).
type asciiField struct{ V string }

func (f *asciiField) DecodeFrom(v Value) bool {
	if v.Type != TypeASCII || len(v.Asciis) == 0 {
		return false
	}
	f.V = v.Asciis[0]
	return true
}

func (f *asciiField) EncodeValue() (Value, error) {
	return AsciiValue([]string{f.V}), nil
}

// asciiVectorField holds the rare ASCII fields (InkNames) that pack more
// than one NUL-terminated string into a single entry.
type asciiVectorField struct{ V []string }

func (f *asciiVectorField) DecodeFrom(v Value) bool {
	if v.Type != TypeASCII {
		return false
	}
	f.V = v.Asciis
	return true
}

func (f *asciiVectorField) EncodeValue() (Value, error) {
	return AsciiValue(f.V), nil
}

// shortScalarField holds a single Short value.
type shortScalarField struct{ V uint16 }

func (f *shortScalarField) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	f.V = v.Shorts[0]
	return true
}

func (f *shortScalarField) EncodeValue() (Value, error) {
	return ShortValue([]uint16{f.V}), nil
}

// longScalarField holds a single Long value.
type longScalarField struct{ V uint32 }

func (f *longScalarField) DecodeFrom(v Value) bool {
	if v.Type != TypeLong || len(v.Longs) == 0 {
		return false
	}
	f.V = v.Longs[0]
	return true
}

func (f *longScalarField) EncodeValue() (Value, error) {
	return LongValue([]uint32{f.V}), nil
}

// shortLongScalarField holds a single count-like value that may be
// stored as either Short or Long on the wire (ImageWidth, TileWidth,
// RowsPerStrip, ...); it always decodes either, and re-encodes as Short
// when the value fits to keep files compact.
type shortLongScalarField struct{ V uint32 }

func (f *shortLongScalarField) DecodeFrom(v Value) bool {
	switch v.Type {
	case TypeShort:
		if len(v.Shorts) == 0 {
			return false
		}
		f.V = uint32(v.Shorts[0])
		return true
	case TypeLong:
		if len(v.Longs) == 0 {
			return false
		}
		f.V = v.Longs[0]
		return true
	default:
		return false
	}
}

func (f *shortLongScalarField) EncodeValue() (Value, error) {
	if f.V <= 0xFFFF {
		return ShortValue([]uint16{uint16(f.V)}), nil
	}
	return LongValue([]uint32{f.V}), nil
}

// shortVectorField holds a vector of Shorts (BitsPerSample, MinSampleValue, ...).
type shortVectorField struct{ V []uint16 }

func (f *shortVectorField) DecodeFrom(v Value) bool {
	if v.Type != TypeShort {
		return false
	}
	f.V = v.Shorts
	return true
}

func (f *shortVectorField) EncodeValue() (Value, error) {
	return ShortValue(f.V), nil
}

// longVectorField holds a vector of Longs (FreeOffsets, FreeByteCounts, ...).
type longVectorField struct{ V []uint32 }

func (f *longVectorField) DecodeFrom(v Value) bool {
	if v.Type != TypeLong {
		return false
	}
	f.V = v.Longs
	return true
}

func (f *longVectorField) EncodeValue() (Value, error) {
	return LongValue(f.V), nil
}

// shortLongVectorField holds a vector of counts (StripOffsets,
// StripByteCounts, TileByteCounts, ...) that may be stored as either
// Short or Long, re-encoding as Short only when every element fits.
type shortLongVectorField struct{ V []uint32 }

func (f *shortLongVectorField) DecodeFrom(v Value) bool {
	switch v.Type {
	case TypeShort:
		out := make([]uint32, len(v.Shorts))
		for i, s := range v.Shorts {
			out[i] = uint32(s)
		}
		f.V = out
		return true
	case TypeLong:
		f.V = v.Longs
		return true
	default:
		return false
	}
}

func (f *shortLongVectorField) EncodeValue() (Value, error) {
	for _, n := range f.V {
		if n > 0xFFFF {
			return LongValue(f.V), nil
		}
	}
	out := make([]uint16, len(f.V))
	for i, n := range f.V {
		out[i] = uint16(n)
	}
	return ShortValue(out), nil
}

// rationalField holds a single unsigned Rational (XResolution, WhitePoint
// components, ...).
type rationalField struct{ V Rational }

func (f *rationalField) DecodeFrom(v Value) bool {
	if v.Type != TypeRational || len(v.Rationals) == 0 {
		return false
	}
	f.V = v.Rationals[0]
	return true
}

func (f *rationalField) EncodeValue() (Value, error) {
	return RationalValue([]Rational{f.V}), nil
}

// rationalVectorField holds a vector of Rationals (PrimaryChromaticities,
// ReferenceBlackWhite, ...).
type rationalVectorField struct{ V []Rational }

func (f *rationalVectorField) DecodeFrom(v Value) bool {
	if v.Type != TypeRational {
		return false
	}
	f.V = v.Rationals
	return true
}

func (f *rationalVectorField) EncodeValue() (Value, error) {
	return RationalValue(f.V), nil
}

// --- scalar / vector concrete fields ---------------------------------

type NewSubfileType struct{ longScalarField }

func (NewSubfileType) Tag() Tag { return TagNewSubfileType }

// IsReducedImage reports whether this subfile is a reduced-resolution
// version of another image in the file.
func (f NewSubfileType) IsReducedImage() bool { return f.V&0x1 != 0 }

// IsMultiPage reports whether this subfile is one page of a multi-page
// document.
func (f NewSubfileType) IsMultiPage() bool { return f.V&0x2 != 0 }

// IsTransparencyMask reports whether this subfile defines a transparency
// mask for another image in the file.
func (f NewSubfileType) IsTransparencyMask() bool { return f.V&0x4 != 0 }

type ImageWidth struct{ shortLongScalarField }

func (ImageWidth) Tag() Tag { return TagImageWidth }

type ImageLength struct{ shortLongScalarField }

func (ImageLength) Tag() Tag { return TagImageLength }

type BitsPerSample struct{ shortVectorField }

func (BitsPerSample) Tag() Tag { return TagBitsPerSample }

func defaultBitsPerSample() BitsPerSample {
	return BitsPerSample{shortVectorField{V: []uint16{1}}}
}

type Threshholding struct{ shortScalarField }

func (Threshholding) Tag() Tag { return TagThreshholding }

func defaultThreshholding() Threshholding {
	return Threshholding{shortScalarField{V: 1}}
}

type CellWidth struct{ shortScalarField }

func (CellWidth) Tag() Tag { return TagCellWidth }

type CellLength struct{ shortScalarField }

func (CellLength) Tag() Tag { return TagCellLength }

type DocumentName struct{ asciiField }

func (DocumentName) Tag() Tag { return TagDocumentName }

type ImageDescription struct{ asciiField }

func (ImageDescription) Tag() Tag { return TagImageDescription }

type Make struct{ asciiField }

func (Make) Tag() Tag { return TagMake }

type Model struct{ asciiField }

func (Model) Tag() Tag { return TagModel }

type StripOffsets struct{ shortLongVectorField }

func (StripOffsets) Tag() Tag { return TagStripOffsets }

type SamplesPerPixel struct{ shortScalarField }

func (SamplesPerPixel) Tag() Tag { return TagSamplesPerPixel }

func defaultSamplesPerPixel() SamplesPerPixel {
	return SamplesPerPixel{shortScalarField{V: 1}}
}

type RowsPerStrip struct{ shortLongScalarField }

func (RowsPerStrip) Tag() Tag { return TagRowsPerStrip }

type StripByteCounts struct{ shortLongVectorField }

func (StripByteCounts) Tag() Tag { return TagStripByteCounts }

type MinSampleValue struct{ shortVectorField }

func (MinSampleValue) Tag() Tag { return TagMinSampleValue }

type MaxSampleValue struct{ shortVectorField }

func (MaxSampleValue) Tag() Tag { return TagMaxSampleValue }

type XResolution struct{ rationalField }

func (XResolution) Tag() Tag { return TagXResolution }

type YResolution struct{ rationalField }

func (YResolution) Tag() Tag { return TagYResolution }

type PageName struct{ asciiField }

func (PageName) Tag() Tag { return TagPageName }

type XPosition struct{ rationalField }

func (XPosition) Tag() Tag { return TagXPosition }

type YPosition struct{ rationalField }

func (YPosition) Tag() Tag { return TagYPosition }

type FreeOffsets struct{ longVectorField }

func (FreeOffsets) Tag() Tag { return TagFreeOffsets }

type FreeByteCounts struct{ longVectorField }

func (FreeByteCounts) Tag() Tag { return TagFreeByteCounts }

type GrayResponseCurve struct{ shortVectorField }

func (GrayResponseCurve) Tag() Tag { return TagGrayResponseCurve }

type T4Options struct{ longScalarField }

func (T4Options) Tag() Tag { return TagT4Options }

type T6Options struct{ longScalarField }

func (T6Options) Tag() Tag { return TagT6Options }

type PageNumber struct{ shortVectorField }

func (PageNumber) Tag() Tag { return TagPageNumber }

type TransferFunction struct{ shortVectorField }

func (TransferFunction) Tag() Tag { return TagTransferFunction }

type Software struct{ asciiField }

func (Software) Tag() Tag { return TagSoftware }

// DateTime holds the TIFF DateTime field's "YYYY:MM:DD HH:MM:SS" text
// verbatim. The format deliberately omits a timezone, so it is kept as a
// string rather than parsed into a fixed Go time type -- round-tripping
// the exact text is more useful for a codec library than guessing a
// zone.
type DateTime struct{ asciiField }

func (DateTime) Tag() Tag { return TagDateTime }

type Artist struct{ asciiField }

func (Artist) Tag() Tag { return TagArtist }

type HostComputer struct{ asciiField }

func (HostComputer) Tag() Tag { return TagHostComputer }

type WhitePoint struct{ rationalVectorField }

func (WhitePoint) Tag() Tag { return TagWhitePoint }

type PrimaryChromaticities struct{ rationalVectorField }

func (PrimaryChromaticities) Tag() Tag { return TagPrimaryChromaticities }

type ColorMap struct{ shortVectorField }

func (ColorMap) Tag() Tag { return TagColorMap }

type HalftoneHints struct{ shortVectorField }

func (HalftoneHints) Tag() Tag { return TagHalftoneHints }

type TileWidth struct{ shortLongScalarField }

func (TileWidth) Tag() Tag { return TagTileWidth }

type TileLength struct{ shortLongScalarField }

func (TileLength) Tag() Tag { return TagTileLength }

type TileOffsets struct{ longVectorField }

func (TileOffsets) Tag() Tag { return TagTileOffsets }

type TileByteCounts struct{ shortLongVectorField }

func (TileByteCounts) Tag() Tag { return TagTileByteCounts }

type InkNames struct{ asciiVectorField }

func (InkNames) Tag() Tag { return TagInkNames }

type NumberOfInks struct{ shortScalarField }

func (NumberOfInks) Tag() Tag { return TagNumberOfInks }

func defaultNumberOfInks() NumberOfInks {
	return NumberOfInks{shortScalarField{V: 4}}
}

type DotRange struct{ shortVectorField }

func (DotRange) Tag() Tag { return TagDotRange }

type TargetPrinter struct{ asciiField }

func (TargetPrinter) Tag() Tag { return TagTargetPrinter }

type SMinSampleValue struct{ shortLongVectorField }

func (SMinSampleValue) Tag() Tag { return TagSMinSampleValue }

type SMaxSampleValue struct{ shortLongVectorField }

func (SMaxSampleValue) Tag() Tag { return TagSMaxSampleValue }

type TransferRange struct{ shortVectorField }

func (TransferRange) Tag() Tag { return TagTransferRange }

type JPEGProc struct{ longScalarField }

func (JPEGProc) Tag() Tag { return TagJPEGProc }

type JPEGInterchangeFormat struct{ longScalarField }

func (JPEGInterchangeFormat) Tag() Tag { return TagJPEGInterchangeFormat }

type JPEGInterchangeFormatLength struct{ longScalarField }

func (JPEGInterchangeFormatLength) Tag() Tag { return TagJPEGInterchangeFormatLength }

type JPEGRestartInterval struct{ shortScalarField }

func (JPEGRestartInterval) Tag() Tag { return TagJPEGRestartInterval }

type JPEGQTables struct{ longVectorField }

func (JPEGQTables) Tag() Tag { return TagJPEGQTables }

type JPEGDCTables struct{ longVectorField }

func (JPEGDCTables) Tag() Tag { return TagJPEGDCTables }

type JPEGACTables struct{ longVectorField }

func (JPEGACTables) Tag() Tag { return TagJPEGACTables }

type YCbCrCoefficients struct{ rationalVectorField }

func (YCbCrCoefficients) Tag() Tag { return TagYCbCrCoefficients }

type YCbCrSubSampling struct{ shortVectorField }

func (YCbCrSubSampling) Tag() Tag { return TagYCbCrSubSampling }

func defaultYCbCrSubSampling() YCbCrSubSampling {
	return YCbCrSubSampling{shortVectorField{V: []uint16{2, 2}}}
}

type ReferenceBlackWhite struct{ rationalVectorField }

func (ReferenceBlackWhite) Tag() Tag { return TagReferenceBlackWhite }

type Copyright struct{ asciiField }

func (Copyright) Tag() Tag { return TagCopyright }

// --- enumerated fields ------------------------------------------------
// These encode to/from a small closed set of Short codes; out-of-range
// codes fail to decode rather than silently aliasing to a default, so
// callers can tell "absent" from "unrecognized" when that distinction
// matters.

// PhotometricInterpretation identifies the color space of the image data.
type PhotometricInterpretation uint16

const (
	PhotometricWhiteIsZero PhotometricInterpretation = iota
	PhotometricBlackIsZero
	PhotometricRGB
	PhotometricPaletteColor
	PhotometricTransparencyMask
	PhotometricCMYK
	PhotometricYCbCr
)

func (PhotometricInterpretation) Tag() Tag { return TagPhotometricInterpretation }

func (p *PhotometricInterpretation) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 || v.Shorts[0] > uint16(PhotometricYCbCr) {
		return false
	}
	*p = PhotometricInterpretation(v.Shorts[0])
	return true
}

func (p PhotometricInterpretation) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(p)}), nil
}

// ResolutionUnit is the unit XResolution/YResolution are expressed in.
type ResolutionUnit uint16

const (
	ResolutionUnitNone ResolutionUnit = iota + 1
	ResolutionUnitInch
	ResolutionUnitCentimeter
)

func (ResolutionUnit) Tag() Tag { return TagResolutionUnit }

func (r *ResolutionUnit) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch ResolutionUnit(v.Shorts[0]) {
	case ResolutionUnitNone, ResolutionUnitInch, ResolutionUnitCentimeter:
		*r = ResolutionUnit(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (r ResolutionUnit) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(r)}), nil
}

func defaultResolutionUnit() ResolutionUnit { return ResolutionUnitCentimeter }

// PlanarConfiguration describes how pixel components are interleaved.
type PlanarConfiguration uint16

const (
	PlanarChunky PlanarConfiguration = iota + 1
	PlanarPlanar
)

func (PlanarConfiguration) Tag() Tag { return TagPlanarConfiguration }

func (p *PlanarConfiguration) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch PlanarConfiguration(v.Shorts[0]) {
	case PlanarChunky, PlanarPlanar:
		*p = PlanarConfiguration(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (p PlanarConfiguration) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(p)}), nil
}

func defaultPlanarConfiguration() PlanarConfiguration { return PlanarChunky }

// Predictor is the differencing scheme applied to samples before
// compression.
type Predictor uint16

const (
	PredictorNone Predictor = iota + 1
	PredictorHorizontalDifferencing
)

func (Predictor) Tag() Tag { return TagPredictor }

func (p *Predictor) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch Predictor(v.Shorts[0]) {
	case PredictorNone, PredictorHorizontalDifferencing:
		*p = Predictor(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (p Predictor) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(p)}), nil
}

func defaultPredictor() Predictor { return PredictorNone }

// SubfileType is the deprecated predecessor of NewSubfileType.
type SubfileType uint16

const (
	SubfileFullResolutionImage SubfileType = iota + 1
	SubfileReducedResolutionImage
	SubfileSinglePageImage
)

func (SubfileType) Tag() Tag { return TagSubfileType }

func (s *SubfileType) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch SubfileType(v.Shorts[0]) {
	case SubfileFullResolutionImage, SubfileReducedResolutionImage, SubfileSinglePageImage:
		*s = SubfileType(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (s SubfileType) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(s)}), nil
}

// Compression identifies the scheme the strip/tile data is compressed
// with. Only the baseline codes are enumerated here; a reader that
// encounters any other code should treat the field as opaque (use
// GetField's ok=false to fall back to the raw Short).
type Compression uint16

const (
	CompressionNone             Compression = 1
	CompressionModifiedHuffman  Compression = 2
	CompressionPackBits         Compression = 32773
)

func (Compression) Tag() Tag { return TagCompression }

func (c *Compression) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch Compression(v.Shorts[0]) {
	case CompressionNone, CompressionModifiedHuffman, CompressionPackBits:
		*c = Compression(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (c Compression) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(c)}), nil
}

func defaultCompression() Compression { return CompressionNone }

// FillOrder is the bit order within a byte of packed sub-byte samples.
type FillOrder uint16

const (
	FillOrderMSBFirst FillOrder = iota + 1
	FillOrderLSBFirst
)

func (FillOrder) Tag() Tag { return TagFillOrder }

func (f *FillOrder) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch FillOrder(v.Shorts[0]) {
	case FillOrderMSBFirst, FillOrderLSBFirst:
		*f = FillOrder(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (f FillOrder) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(f)}), nil
}

func defaultFillOrder() FillOrder { return FillOrderMSBFirst }

// GrayResponseUnit is the precision of GrayResponseCurve's entries.
type GrayResponseUnit uint16

const (
	GrayResponseTenths GrayResponseUnit = iota + 1
	GrayResponseHundredths
	GrayResponseThousandths
	GrayResponseTenThousandths
	GrayResponseHundredThousandths
)

func (GrayResponseUnit) Tag() Tag { return TagGrayResponseUnit }

func (g *GrayResponseUnit) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch GrayResponseUnit(v.Shorts[0]) {
	case GrayResponseTenths, GrayResponseHundredths, GrayResponseThousandths,
		GrayResponseTenThousandths, GrayResponseHundredThousandths:
		*g = GrayResponseUnit(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (g GrayResponseUnit) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(g)}), nil
}

func defaultGrayResponseUnit() GrayResponseUnit { return GrayResponseHundredths }

// Orientation describes the row-0/column-0 placement relative to the
// visual image.
type Orientation uint16

const (
	OrientationTopLeft Orientation = iota + 1
	OrientationTopRight
	OrientationBottomRight
	OrientationBottomLeft
	OrientationLeftTop
	OrientationRightTop
	OrientationRightBottom
	OrientationLeftBottom
)

func (Orientation) Tag() Tag { return TagOrientation }

func (o *Orientation) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	val := v.Shorts[0]
	if val < uint16(OrientationTopLeft) || val > uint16(OrientationLeftBottom) {
		return false
	}
	*o = Orientation(val)
	return true
}

func (o Orientation) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(o)}), nil
}

func defaultOrientation() Orientation { return OrientationTopLeft }

// InkSet identifies the ink set used in a separated image.
type InkSet uint16

const (
	InkSetCMYK InkSet = iota + 1
	InkSetNotCMYK
)

func (InkSet) Tag() Tag { return TagInkSet }

func (s *InkSet) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch InkSet(v.Shorts[0]) {
	case InkSetCMYK, InkSetNotCMYK:
		*s = InkSet(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (s InkSet) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(s)}), nil
}

func defaultInkSet() InkSet { return InkSetCMYK }

// YCbCrPositioning describes how subsampled chrominance samples align
// with luma samples.
type YCbCrPositioning uint16

const (
	YCbCrPositionCentered YCbCrPositioning = iota + 1
	YCbCrPositionCosited
)

func (YCbCrPositioning) Tag() Tag { return TagYCbCrPositioning }

func (p *YCbCrPositioning) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	switch YCbCrPositioning(v.Shorts[0]) {
	case YCbCrPositionCentered, YCbCrPositionCosited:
		*p = YCbCrPositioning(v.Shorts[0])
		return true
	default:
		return false
	}
}

func (p YCbCrPositioning) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(p)}), nil
}

func defaultYCbCrPositioning() YCbCrPositioning { return YCbCrPositionCentered }

// ExtraSampleKind classifies one extra (non-color) component described
// by the ExtraSamples field.
type ExtraSampleKind uint16

const (
	ExtraSampleUnspecified ExtraSampleKind = iota
	ExtraSampleAssociatedAlpha
	ExtraSampleUnassociatedAlpha
)

// ExtraSamples describes the interpretation of each sample beyond what
// PhotometricInterpretation and SamplesPerPixel account for.
type ExtraSamples struct{ V []ExtraSampleKind }

func (ExtraSamples) Tag() Tag { return TagExtraSamples }

func (e *ExtraSamples) DecodeFrom(v Value) bool {
	if v.Type != TypeShort {
		return false
	}
	out := make([]ExtraSampleKind, len(v.Shorts))
	for i, s := range v.Shorts {
		if s > uint16(ExtraSampleUnassociatedAlpha) {
			return false
		}
		out[i] = ExtraSampleKind(s)
	}
	e.V = out
	return true
}

func (e ExtraSamples) EncodeValue() (Value, error) {
	out := make([]uint16, len(e.V))
	for i, k := range e.V {
		out[i] = uint16(k)
	}
	return ShortValue(out), nil
}

// SampleFormat specifies how to interpret each data sample in a pixel.
type SampleFormat uint16

const (
	SampleFormatUnsignedInteger SampleFormat = iota + 1
	SampleFormatSignedInteger
	SampleFormatFloatingPoint
	SampleFormatUndefined
)

func (SampleFormat) Tag() Tag { return TagSampleFormat }

func (s *SampleFormat) DecodeFrom(v Value) bool {
	if v.Type != TypeShort || len(v.Shorts) == 0 {
		return false
	}
	val := v.Shorts[0]
	if val < uint16(SampleFormatUnsignedInteger) || val > uint16(SampleFormatUndefined) {
		return false
	}
	*s = SampleFormat(val)
	return true
}

func (s SampleFormat) EncodeValue() (Value, error) {
	return ShortValue([]uint16{uint16(s)}), nil
}

func defaultSampleFormat() SampleFormat { return SampleFormatUnsignedInteger }
