package tiff6

import "github.com/pkg/errors"

// Error taxonomy, per the format grammar. I/O errors from the underlying
// source/sink are surfaced verbatim (wrapped for context), not replaced.
var (
	// ErrInvalidHeader is returned when the first 8 bytes don't form a
	// valid TIFF header: bad byte-order magic, or the 42 magic number
	// is missing under the discovered order.
	ErrInvalidHeader = errors.New("tiff6: invalid header")

	// ErrNoIFD is returned when header parsing succeeds but the
	// directory chain yields no directories at all.
	ErrNoIFD = errors.New("tiff6: no IFD found")

	// ErrAsciiEncoding is returned when an ASCII field's bytes don't
	// decode as valid UTF-8 (equivalently, aren't 7-bit ASCII).
	ErrAsciiEncoding = errors.New("tiff6: invalid ASCII field data")

	// ErrFieldEncoding is returned when a field's Go value can't be
	// encoded into a legal Value (e.g. non-ASCII string for an ASCII
	// field).
	ErrFieldEncoding = errors.New("tiff6: field value cannot be encoded")

	// ErrDirectoryIndex is returned when a caller selects a directory
	// index outside [0, DirectoryCount()).
	ErrDirectoryIndex = errors.New("tiff6: directory index out of bounds")

	// ErrLayoutOverflow is returned when the writer's computed layout
	// would require an offset beyond what fits in 32 bits.
	ErrLayoutOverflow = errors.New("tiff6: layout exceeds 32-bit offsets")

	// ErrWriterClosed is returned when SetField/SetValueForTag/Write is
	// called on a writer that has already completed a successful Write.
	ErrWriterClosed = errors.New("tiff6: writer already written")
)
