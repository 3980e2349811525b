package tiff6

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// directory is one parsed IFD: its entries (last-writer-wins on duplicate
// tags, as the format's undefined-but-conventional handling) plus the
// file offset of the next directory in the chain (0 if this is the last).
type directory struct {
	offset  uint32
	entries []rawEntry
	next    uint32
}

// entryFor returns the raw entry for tag, if present.
func (d *directory) entryFor(tag Tag) (rawEntry, bool) {
	for _, e := range d.entries {
		if e.Tag == tag {
			return e, true
		}
	}
	return rawEntry{}, false
}

// readDirectoryChain walks the linked list of IFDs starting at
// firstOffset, returning them in file order. A cycle (an offset already
// visited) or an offset of 0 silently ends the chain -- this is not an
// error, since a well-formed single-image file simply terminates with a
// next-offset of 0, and guarding against cycles protects against corrupt
// or adversarial files without surfacing noise to the caller.
func readDirectoryChain(src io.ReadSeeker, order binary.ByteOrder, firstOffset uint32) ([]directory, error) {
	var dirs []directory
	visited := make(map[uint32]bool)

	offset := firstOffset
	for offset != 0 && !visited[offset] {
		visited[offset] = true

		dir, ok, err := readDirectory(src, order, offset)
		if err != nil {
			return nil, err
		}
		if !ok {
			// A zero-entry IFD terminates the chain right there, per
			// the format grammar; it contributes no directory of its
			// own, so a file whose only IFD is empty yields none.
			break
		}
		dirs = append(dirs, dir)
		offset = dir.next
	}

	if len(dirs) == 0 {
		return nil, ErrNoIFD
	}
	return dirs, nil
}

// readDirectory reads a single IFD at offset: a 16-bit entry count, that
// many 12-byte entries, then a 4-byte next-IFD offset. Per spec.md §4.5
// ("Read the 16-bit entry count; if zero, terminate"), an entry count of
// zero stops right there -- ok is false and no next-IFD offset is read,
// mirroring the teacher's GetIFD, which returns next=0 immediately when
// entries==0 rather than reading past a count that may be the last thing
// in the file.
func readDirectory(src io.ReadSeeker, order binary.ByteOrder, offset uint32) (directory, bool, error) {
	if _, err := src.Seek(int64(offset), io.SeekStart); err != nil {
		return directory{}, false, errors.Wrapf(err, "tiff6: seek to IFD at offset %d", offset)
	}

	w := newWordReader(src, order)
	count, err := w.readU16()
	if err != nil {
		return directory{}, false, errors.Wrapf(err, "tiff6: read entry count at offset %d", offset)
	}
	if count == 0 {
		return directory{}, false, nil
	}

	entries := make([]rawEntry, 0, count)
	for i := uint16(0); i < count; i++ {
		e, err := decodeRawEntry(src, order)
		if err != nil {
			return directory{}, false, errors.Wrapf(err, "tiff6: read entry %d of IFD at offset %d", i, offset)
		}
		entries = dedupeInsert(entries, e)
	}

	next, err := w.readU32()
	if err != nil {
		return directory{}, false, errors.Wrapf(err, "tiff6: read next-IFD offset at offset %d", offset)
	}

	return directory{offset: offset, entries: entries, next: next}, true, nil
}

// dedupeInsert appends e to entries, replacing any existing entry for
// the same tag so the last occurrence in file order wins.
func dedupeInsert(entries []rawEntry, e rawEntry) []rawEntry {
	for i, existing := range entries {
		if existing.Tag == e.Tag {
			entries[i] = e
			return entries
		}
	}
	return append(entries, e)
}
