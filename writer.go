package tiff6

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// writerDirectory accumulates the fields destined for one IFD, keyed by
// tag so repeated SetField/SetValueForTag calls for the same tag
// overwrite rather than duplicate.
type writerDirectory struct {
	values map[Tag]Value
}

func newWriterDirectory() *writerDirectory {
	return &writerDirectory{values: make(map[Tag]Value)}
}

// Writer builds a classic TIFF byte stream. Fields are collected per
// directory in any order; Write performs the full layout pass (entry
// sort, inline/out-of-line placement, alignment, chain offsets) exactly
// once.
type Writer struct {
	order   binary.ByteOrder
	dirs    []*writerDirectory
	cur     int
	written bool
}

// NewWriter returns a Writer for a single, empty directory, using order
// for every multi-byte field on the wire.
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{order: order, dirs: []*writerDirectory{newWriterDirectory()}}
}

// DirectoryCount returns the number of directories queued for writing.
func (w *Writer) DirectoryCount() int {
	return len(w.dirs)
}

// SetCurrentDirectory selects which directory subsequent SetField /
// SetValueForTag calls apply to.
func (w *Writer) SetCurrentDirectory(i int) error {
	if i < 0 || i >= len(w.dirs) {
		return errors.Wrapf(ErrDirectoryIndex, "index %d, have %d directories", i, len(w.dirs))
	}
	w.cur = i
	return nil
}

// InsertDirectoryAt inserts a new, empty directory at index i in the
// chain (0 <= i <= DirectoryCount()) and makes it current.
func (w *Writer) InsertDirectoryAt(i int) error {
	if w.written {
		return ErrWriterClosed
	}
	if i < 0 || i > len(w.dirs) {
		return errors.Wrapf(ErrDirectoryIndex, "index %d, have %d directories", i, len(w.dirs))
	}
	w.dirs = append(w.dirs, nil)
	copy(w.dirs[i+1:], w.dirs[i:])
	w.dirs[i] = newWriterDirectory()
	w.cur = i
	return nil
}

// SetField encodes f and installs it in the current directory under
// f.Tag().
func (w *Writer) SetField(f Field) error {
	if w.written {
		return ErrWriterClosed
	}
	tag, v, err := PutField(f)
	if err != nil {
		return err
	}
	w.dirs[w.cur].values[tag] = v
	return nil
}

// SetValueForTag installs an already-constructed Value directly, for
// tags with no dedicated Field type.
func (w *Writer) SetValueForTag(tag Tag, v Value) error {
	if w.written {
		return ErrWriterClosed
	}
	w.dirs[w.cur].values[tag] = v
	return nil
}

// encodedEntry is one directory's field reduced to its wire components,
// ready for placement.
type encodedEntry struct {
	tag     Tag
	typ     Type
	count   uint32
	payload []byte
}

// Write serializes the full directory chain to dst: header, then each
// directory's entry block immediately followed by its out-of-line data,
// in chain order. Every out-of-line block starts at an even offset, per
// the format's alignment rule; a one-byte pad is inserted before it when
// needed.
func (w *Writer) Write(dst io.Writer) error {
	if w.written {
		return ErrWriterClosed
	}
	if len(w.dirs) == 0 {
		return ErrNoIFD
	}

	encodedDirs := make([][]encodedEntry, len(w.dirs))
	for i, d := range w.dirs {
		entries, err := encodeDirectory(d, w.order)
		if err != nil {
			return err
		}
		encodedDirs[i] = entries
	}

	layout, err := layoutChain(encodedDirs)
	if err != nil {
		return err
	}

	hdr := encodeHeader(w.order, layout.dirOffsets[0])
	if _, err := dst.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "tiff6: write header")
	}

	buf := make([]byte, layout.totalSize-HeaderSize)
	for i, entries := range encodedDirs {
		next := uint32(0)
		if i+1 < len(layout.dirOffsets) {
			next = layout.dirOffsets[i+1]
		}
		writeDirectoryInto(buf, layout.dirOffsets[i], entries, w.order, layout.dataOffsets[i], next)
	}
	if _, err := dst.Write(buf); err != nil {
		return errors.Wrap(err, "tiff6: write directory chain")
	}

	w.written = true
	return nil
}

// encodeDirectory reduces a writerDirectory to its ascending-tag entry
// list, ready for layout. The format requires entries to appear in
// ascending tag order within an IFD.
func encodeDirectory(d *writerDirectory, order binary.ByteOrder) ([]encodedEntry, error) {
	tags := make([]Tag, 0, len(d.values))
	for t := range d.values {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	entries := make([]encodedEntry, 0, len(tags))
	for _, t := range tags {
		typ, count, payload, err := encodeValue(d.values[t], order)
		if err != nil {
			return nil, errors.Wrapf(err, "tiff6: encode tag %s", t)
		}
		entries = append(entries, encodedEntry{tag: t, typ: typ, count: count, payload: payload})
	}
	return entries, nil
}

type chainLayout struct {
	dirOffsets  []uint32
	dataOffsets []uint32 // per-directory start of its out-of-line data block
	totalSize   uint32
}

// layoutChain computes every directory's absolute offset and its
// out-of-line data block's start offset, walking the chain once.
// Directories are placed back to back: entry block, then data block,
// with a single pad byte before the data block when the entry block
// ends at an odd offset.
func layoutChain(dirs [][]encodedEntry) (chainLayout, error) {
	pos := uint64(HeaderSize)
	dirOffsets := make([]uint32, len(dirs))
	dataOffsets := make([]uint32, len(dirs))

	for i, entries := range dirs {
		if pos%2 != 0 {
			pos++
		}
		if pos > 0xFFFFFFFF {
			return chainLayout{}, ErrLayoutOverflow
		}
		dirOffsets[i] = uint32(pos)

		dirBlockSize := uint64(2 + len(entries)*entrySize + 4)
		dataStart := pos + dirBlockSize
		if dataStart%2 != 0 {
			dataStart++
		}
		dataOffsets[i] = uint32(dataStart)

		dataEnd := dataStart
		for _, e := range entries {
			if uint32(len(e.payload)) > 4 {
				dataEnd += uint64(len(e.payload))
				if dataEnd%2 != 0 {
					dataEnd++
				}
			}
		}
		pos = dataEnd
	}

	if pos > 0xFFFFFFFF {
		return chainLayout{}, ErrLayoutOverflow
	}
	return chainLayout{dirOffsets: dirOffsets, dataOffsets: dataOffsets, totalSize: uint32(pos)}, nil
}

// writeDirectoryInto serializes one directory's entry block and
// out-of-line data into buf. dirOffset and dataStart are absolute file
// offsets (as computed by layoutChain); buf itself holds only the bytes
// following the 8-byte header, so every index into buf is the
// corresponding absolute offset minus HeaderSize.
func writeDirectoryInto(buf []byte, dirOffset uint32, entries []encodedEntry, order binary.ByteOrder, dataStart uint32, next uint32) {
	pos := dirOffset - HeaderSize
	order.PutUint16(buf[pos:], uint16(len(entries)))
	pos += 2

	datapos := dataStart
	for _, e := range entries {
		order.PutUint16(buf[pos:], uint16(e.tag))
		order.PutUint16(buf[pos+2:], uint16(e.typ))
		order.PutUint32(buf[pos+4:], e.count)
		if len(e.payload) <= 4 {
			slot := inlineSlot(e.payload)
			copy(buf[pos+8:pos+12], slot[:])
		} else {
			order.PutUint32(buf[pos+8:], datapos)
			bufData := datapos - HeaderSize
			copy(buf[bufData:bufData+uint32(len(e.payload))], e.payload)
			datapos += uint32(len(e.payload))
			if datapos%2 != 0 {
				datapos++
			}
		}
		pos += entrySize
	}
	order.PutUint32(buf[pos:], next)
}
