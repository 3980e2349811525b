package tiff6

import "fmt"

// Tag is a 16-bit TIFF field identifier. Equality, ordering and hashing
// are defined over the numeric value alone (Tag is a plain uint16), so a
// Tag registered under multiple names is still a single Tag, and an
// unrecognized value simply carries no name.
type Tag uint16

// Well-known TIFF 6.0 tags. Names follow the spec; values are from the
// TIFF 6.0 table (the same registry the teacher codec used).
const (
	TagNewSubfileType            Tag = 0x0FE
	TagSubfileType                Tag = 0x0FF
	TagImageWidth                 Tag = 0x100
	TagImageLength                Tag = 0x101
	TagBitsPerSample              Tag = 0x102
	TagCompression                Tag = 0x103
	TagPhotometricInterpretation  Tag = 0x106
	TagThreshholding              Tag = 0x107
	TagCellWidth                  Tag = 0x108
	TagCellLength                 Tag = 0x109
	TagFillOrder                  Tag = 0x10A
	TagDocumentName               Tag = 0x10D
	TagImageDescription           Tag = 0x10E
	TagMake                       Tag = 0x10F
	TagModel                      Tag = 0x110
	TagStripOffsets               Tag = 0x111
	TagOrientation                Tag = 0x112
	TagSamplesPerPixel            Tag = 0x115
	TagRowsPerStrip               Tag = 0x116
	TagStripByteCounts            Tag = 0x117
	TagMinSampleValue             Tag = 0x118
	TagMaxSampleValue             Tag = 0x119
	TagXResolution                Tag = 0x11A
	TagYResolution                Tag = 0x11B
	TagPlanarConfiguration        Tag = 0x11C
	TagPageName                   Tag = 0x11D
	TagXPosition                  Tag = 0x11E
	TagYPosition                  Tag = 0x11F
	TagFreeOffsets                Tag = 0x120
	TagFreeByteCounts             Tag = 0x121
	TagGrayResponseUnit           Tag = 0x122
	TagGrayResponseCurve          Tag = 0x123
	TagT4Options                  Tag = 0x124
	TagT6Options                  Tag = 0x125
	TagResolutionUnit             Tag = 0x128
	TagPageNumber                 Tag = 0x129
	TagTransferFunction           Tag = 0x12D
	TagSoftware                   Tag = 0x131
	TagDateTime                   Tag = 0x132
	TagArtist                     Tag = 0x13B
	TagHostComputer                Tag = 0x13C
	TagPredictor                  Tag = 0x13D
	TagWhitePoint                 Tag = 0x13E
	TagPrimaryChromaticities      Tag = 0x13F
	TagColorMap                   Tag = 0x140
	TagHalftoneHints              Tag = 0x141
	TagTileWidth                  Tag = 0x142
	TagTileLength                 Tag = 0x143
	TagTileOffsets                Tag = 0x144
	TagTileByteCounts             Tag = 0x145
	TagInkSet                     Tag = 0x14C
	TagInkNames                   Tag = 0x14D
	TagNumberOfInks               Tag = 0x14E
	TagDotRange                   Tag = 0x150
	TagTargetPrinter              Tag = 0x151
	TagExtraSamples               Tag = 0x152
	TagSampleFormat                Tag = 0x153
	TagSMinSampleValue            Tag = 0x154
	TagSMaxSampleValue            Tag = 0x155
	TagTransferRange              Tag = 0x156
	TagJPEGProc                   Tag = 0x200
	TagJPEGInterchangeFormat       Tag = 0x201
	TagJPEGInterchangeFormatLength Tag = 0x202
	TagJPEGRestartInterval         Tag = 0x203
	TagJPEGQTables                 Tag = 0x207
	TagJPEGDCTables                 Tag = 0x208
	TagJPEGACTables                 Tag = 0x209
	TagYCbCrCoefficients           Tag = 0x211
	TagYCbCrSubSampling            Tag = 0x212
	TagYCbCrPositioning            Tag = 0x213
	TagReferenceBlackWhite         Tag = 0x214
	TagCopyright                  Tag = 0x8298
	TagExifIFD                    Tag = 0x8769
	TagGPSIFD                     Tag = 0x8825
)

// tagNames maps well-known tags to their symbolic name, used only for
// diagnostics; it plays no part in Tag equality or ordering.
var tagNames = map[Tag]string{
	TagNewSubfileType:              "NewSubfileType",
	TagSubfileType:                 "SubfileType",
	TagImageWidth:                  "ImageWidth",
	TagImageLength:                 "ImageLength",
	TagBitsPerSample:               "BitsPerSample",
	TagCompression:                 "Compression",
	TagPhotometricInterpretation:   "PhotometricInterpretation",
	TagThreshholding:               "Threshholding",
	TagCellWidth:                   "CellWidth",
	TagCellLength:                  "CellLength",
	TagFillOrder:                   "FillOrder",
	TagDocumentName:                "DocumentName",
	TagImageDescription:            "ImageDescription",
	TagMake:                        "Make",
	TagModel:                       "Model",
	TagStripOffsets:                "StripOffsets",
	TagOrientation:                 "Orientation",
	TagSamplesPerPixel:             "SamplesPerPixel",
	TagRowsPerStrip:                "RowsPerStrip",
	TagStripByteCounts:             "StripByteCounts",
	TagMinSampleValue:              "MinSampleValue",
	TagMaxSampleValue:              "MaxSampleValue",
	TagXResolution:                 "XResolution",
	TagYResolution:                 "YResolution",
	TagPlanarConfiguration:         "PlanarConfiguration",
	TagPageName:                    "PageName",
	TagXPosition:                   "XPosition",
	TagYPosition:                   "YPosition",
	TagFreeOffsets:                 "FreeOffsets",
	TagFreeByteCounts:              "FreeByteCounts",
	TagGrayResponseUnit:            "GrayResponseUnit",
	TagGrayResponseCurve:           "GrayResponseCurve",
	TagT4Options:                   "T4Options",
	TagT6Options:                   "T6Options",
	TagResolutionUnit:              "ResolutionUnit",
	TagPageNumber:                  "PageNumber",
	TagTransferFunction:            "TransferFunction",
	TagSoftware:                    "Software",
	TagDateTime:                    "DateTime",
	TagArtist:                      "Artist",
	TagHostComputer:                "HostComputer",
	TagPredictor:                   "Predictor",
	TagWhitePoint:                  "WhitePoint",
	TagPrimaryChromaticities:       "PrimaryChromaticities",
	TagColorMap:                    "ColorMap",
	TagHalftoneHints:               "HalftoneHints",
	TagTileWidth:                   "TileWidth",
	TagTileLength:                  "TileLength",
	TagTileOffsets:                 "TileOffsets",
	TagTileByteCounts:              "TileByteCounts",
	TagInkSet:                      "InkSet",
	TagInkNames:                    "InkNames",
	TagNumberOfInks:                "NumberOfInks",
	TagDotRange:                    "DotRange",
	TagTargetPrinter:               "TargetPrinter",
	TagExtraSamples:                "ExtraSamples",
	TagSampleFormat:                "SampleFormat",
	TagSMinSampleValue:             "SMinSampleValue",
	TagSMaxSampleValue:             "SMaxSampleValue",
	TagTransferRange:               "TransferRange",
	TagJPEGProc:                    "JPEGProc",
	TagJPEGInterchangeFormat:       "JPEGInterchangeFormat",
	TagJPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	TagJPEGRestartInterval:         "JPEGRestartInterval",
	TagJPEGQTables:                 "JPEGQTables",
	TagJPEGDCTables:                "JPEGDCTables",
	TagJPEGACTables:                "JPEGACTables",
	TagYCbCrCoefficients:           "YCbCrCoefficients",
	TagYCbCrSubSampling:            "YCbCrSubSampling",
	TagYCbCrPositioning:            "YCbCrPositioning",
	TagReferenceBlackWhite:         "ReferenceBlackWhite",
	TagCopyright:                   "Copyright",
	TagExifIFD:                     "ExifIFD",
	TagGPSIFD:                      "GPSIFD",
}

// TagFromUint16 returns the well-known Tag for n, or n itself (as an
// Unknown value) if it isn't one of the recognized constants. Since Tag
// is a plain numeric type, an "unknown" tag is just a Tag whose value
// doesn't appear in tagNames; there's no separate Unknown wrapper to
// construct.
func TagFromUint16(n uint16) Tag {
	return Tag(n)
}

// Value returns the tag's numeric identifier.
func (t Tag) Value() uint16 {
	return uint16(t)
}

// Name returns the tag's symbolic name, or a diagnostic placeholder for
// tags outside the well-known set.
func (t Tag) Name() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint16(t))
}

func (t Tag) String() string {
	return t.Name()
}
