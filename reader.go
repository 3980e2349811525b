package tiff6

import (
	"encoding/binary"
	"io"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// valueCacheSize bounds the per-reader LRU of decoded Values, keyed by
// (directory index, tag). Directories rarely carry more than a few dozen
// entries, so this comfortably covers a multi-directory file without
// re-decoding a field every time a caller asks for it twice.
const valueCacheSize = 256

type valueCacheKey struct {
	dirIndex int
	tag      Tag
}

// Reader is a random-access facade over a classic TIFF byte stream: it
// parses the header and the full directory chain up front, then resolves
// individual field values lazily and on demand.
type Reader struct {
	src   io.ReadSeeker
	order binary.ByteOrder
	dirs  []directory
	cur   int
	cache *lru.Cache
}

// NewReader parses src's header and directory chain and returns a Reader
// positioned at directory 0. src must support Seek because out-of-line
// field payloads, and every directory after the first, are found by
// absolute offset rather than by sequential scan.
func NewReader(src io.ReadSeeker) (*Reader, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(src, hdr[:]); err != nil {
		return nil, errors.Wrap(ErrInvalidHeader, err.Error())
	}
	order, firstIFD, err := decodeHeader(hdr)
	if err != nil {
		return nil, err
	}

	dirs, err := readDirectoryChain(src, order, firstIFD)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New(valueCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "tiff6: allocate value cache")
	}

	return &Reader{src: src, order: order, dirs: dirs, cache: cache}, nil
}

// Endianness returns the byte order the file was written in.
func (r *Reader) Endianness() binary.ByteOrder {
	return r.order
}

// DirectoryCount returns the number of IFDs in the file's directory
// chain.
func (r *Reader) DirectoryCount() int {
	return len(r.dirs)
}

// CurrentDirectory returns the index of the directory that
// ValueForTag/CurrentDirectoryTags operate on.
func (r *Reader) CurrentDirectory() int {
	return r.cur
}

// SetCurrentDirectory selects which directory subsequent tag lookups
// apply to.
func (r *Reader) SetCurrentDirectory(i int) error {
	if i < 0 || i >= len(r.dirs) {
		return errors.Wrapf(ErrDirectoryIndex, "index %d, have %d directories", i, len(r.dirs))
	}
	r.cur = i
	return nil
}

// CurrentDirectoryTags returns the tags present in the current
// directory, in file order.
func (r *Reader) CurrentDirectoryTags() []Tag {
	dir := r.dirs[r.cur]
	tags := make([]Tag, len(dir.entries))
	for i, e := range dir.entries {
		tags[i] = e.Tag
	}
	return tags
}

// ValueForTag resolves tag in the current directory. A decode failure
// (malformed ASCII, an I/O error following an out-of-line offset) is
// reported as ok=false rather than propagated: a single bad field should
// not prevent a caller from reading the rest of a directory.
func (r *Reader) ValueForTag(tag Tag) (Value, bool) {
	key := valueCacheKey{dirIndex: r.cur, tag: tag}
	if cached, ok := r.cache.Get(key); ok {
		return cached.(Value), true
	}

	dir := r.dirs[r.cur]
	e, ok := dir.entryFor(tag)
	if !ok {
		return Value{}, false
	}

	v, err := decodeValue(r.src, r.order, e)
	if err != nil {
		return Value{}, false
	}

	r.cache.Add(key, v)
	return v, true
}

// lookupInCurrentDirectory adapts ValueForTag to the lookup signature
// GetField expects.
func (r *Reader) lookupInCurrentDirectory(tag Tag) (Value, bool) {
	return r.ValueForTag(tag)
}

// GetFieldFromReader decodes tag T's value from the reader's current directory.
func GetFieldFromReader[T any, PT fieldPtr[T]](r *Reader) (T, bool) {
	return GetField[T, PT](r.lookupInCurrentDirectory)
}

// GetFieldOrDefaultFromReader is GetFieldOrDefault scoped to the reader's
// current directory, for fields TIFF 6.0 defines a default for.
func GetFieldOrDefaultFromReader[T any, PT fieldPtr[T]](r *Reader, def T) T {
	return GetFieldOrDefault[T, PT](r.lookupInCurrentDirectory, def)
}

// ResolutionUnit returns the current directory's resolution unit,
// defaulting to Centimeter when the tag is absent.
func (r *Reader) ResolutionUnit() ResolutionUnit {
	v, ok := GetField[ResolutionUnit](r.lookupInCurrentDirectory)
	if !ok {
		return defaultResolutionUnit()
	}
	return v
}

// PlanarConfiguration returns the current directory's planar
// configuration, defaulting to Chunky per TIFF 6.0 when the tag is absent.
func (r *Reader) PlanarConfiguration() PlanarConfiguration {
	v, ok := GetField[PlanarConfiguration](r.lookupInCurrentDirectory)
	if !ok {
		return defaultPlanarConfiguration()
	}
	return v
}

// Compression returns the current directory's compression scheme,
// defaulting to None per TIFF 6.0 when the tag is absent.
func (r *Reader) Compression() Compression {
	v, ok := GetField[Compression](r.lookupInCurrentDirectory)
	if !ok {
		return defaultCompression()
	}
	return v
}

// Predictor returns the current directory's predictor, defaulting to
// None per TIFF 6.0 when the tag is absent.
func (r *Reader) Predictor() Predictor {
	v, ok := GetField[Predictor](r.lookupInCurrentDirectory)
	if !ok {
		return defaultPredictor()
	}
	return v
}

// FillOrder returns the current directory's bit fill order, defaulting
// to MSBFirst per TIFF 6.0 when the tag is absent.
func (r *Reader) FillOrder() FillOrder {
	v, ok := GetField[FillOrder](r.lookupInCurrentDirectory)
	if !ok {
		return defaultFillOrder()
	}
	return v
}

// Orientation returns the current directory's image orientation,
// defaulting to TopLeft per TIFF 6.0 when the tag is absent.
func (r *Reader) Orientation() Orientation {
	v, ok := GetField[Orientation](r.lookupInCurrentDirectory)
	if !ok {
		return defaultOrientation()
	}
	return v
}

// SampleFormat returns the current directory's sample format,
// defaulting to UnsignedInteger per TIFF 6.0 when the tag is absent.
func (r *Reader) SampleFormat() SampleFormat {
	v, ok := GetField[SampleFormat](r.lookupInCurrentDirectory)
	if !ok {
		return defaultSampleFormat()
	}
	return v
}

// SamplesPerPixel returns the current directory's samples-per-pixel
// count, defaulting to 1 per TIFF 6.0 when the tag is absent.
func (r *Reader) SamplesPerPixel() SamplesPerPixel {
	v, ok := GetField[SamplesPerPixel](r.lookupInCurrentDirectory)
	if !ok {
		return defaultSamplesPerPixel()
	}
	return v
}

// BitsPerSample returns the current directory's bits-per-sample vector,
// defaulting to a single 1-bit sample per TIFF 6.0 when the tag is absent.
func (r *Reader) BitsPerSample() BitsPerSample {
	v, ok := GetField[BitsPerSample](r.lookupInCurrentDirectory)
	if !ok {
		return defaultBitsPerSample()
	}
	return v
}

// Threshholding returns the current directory's threshholding mode,
// defaulting to NoDithering per TIFF 6.0 when the tag is absent.
func (r *Reader) Threshholding() Threshholding {
	v, ok := GetField[Threshholding](r.lookupInCurrentDirectory)
	if !ok {
		return defaultThreshholding()
	}
	return v
}

// NumberOfInks returns the current directory's ink count, defaulting to
// 4 per TIFF 6.0 when the tag is absent.
func (r *Reader) NumberOfInks() NumberOfInks {
	v, ok := GetField[NumberOfInks](r.lookupInCurrentDirectory)
	if !ok {
		return defaultNumberOfInks()
	}
	return v
}

// YCbCrSubSampling returns the current directory's chroma subsampling
// factors, defaulting to {2, 2} per TIFF 6.0 when the tag is absent.
func (r *Reader) YCbCrSubSampling() YCbCrSubSampling {
	v, ok := GetField[YCbCrSubSampling](r.lookupInCurrentDirectory)
	if !ok {
		return defaultYCbCrSubSampling()
	}
	return v
}

// YCbCrPositioning returns the current directory's chroma positioning,
// defaulting to Centered per TIFF 6.0 when the tag is absent.
func (r *Reader) YCbCrPositioning() YCbCrPositioning {
	v, ok := GetField[YCbCrPositioning](r.lookupInCurrentDirectory)
	if !ok {
		return defaultYCbCrPositioning()
	}
	return v
}

// InkSet returns the current directory's ink set, defaulting to CMYK
// per TIFF 6.0 when the tag is absent.
func (r *Reader) InkSet() InkSet {
	v, ok := GetField[InkSet](r.lookupInCurrentDirectory)
	if !ok {
		return defaultInkSet()
	}
	return v
}

// GrayResponseUnit returns the current directory's gray response unit,
// defaulting to Hundredths per TIFF 6.0 when the tag is absent.
func (r *Reader) GrayResponseUnit() GrayResponseUnit {
	v, ok := GetField[GrayResponseUnit](r.lookupInCurrentDirectory)
	if !ok {
		return defaultGrayResponseUnit()
	}
	return v
}

// RawBytes reads length bytes starting at the absolute file offset
// offset, bypassing directory/entry interpretation entirely. This backs
// strip/tile data access, where the caller already has the offset and
// byte count from StripOffsets/StripByteCounts (or their tile
// equivalents) and just wants the bytes.
func (r *Reader) RawBytes(offset uint32, length uint32) ([]byte, error) {
	if _, err := r.src.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "tiff6: seek to raw offset %d", offset)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, errors.Wrapf(err, "tiff6: read %d raw bytes at offset %d", length, offset)
	}
	return buf, nil
}
