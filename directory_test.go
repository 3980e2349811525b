package tiff6

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildIFD serializes a minimal IFD at the current write position:
// entry count, entries (tag/type/count/slot), next-IFD offset.
func buildIFD(order binary.ByteOrder, entries []rawEntry, next uint32) []byte {
	buf := &bytes.Buffer{}
	var tmp [2]byte
	order.PutUint16(tmp[:], uint16(len(entries)))
	buf.Write(tmp[:])
	for _, e := range entries {
		var rec [12]byte
		order.PutUint16(rec[0:2], uint16(e.Tag))
		order.PutUint16(rec[2:4], uint16(e.Type))
		order.PutUint32(rec[4:8], e.Count)
		copy(rec[8:12], e.Slot[:])
		buf.Write(rec[:])
	}
	var nextBuf [4]byte
	order.PutUint32(nextBuf[:], next)
	buf.Write(nextBuf[:])
	return buf.Bytes()
}

func TestReadDirectoryChainSingle(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 100)
	// 0 is the chain-terminal sentinel, so the IFD sits after a header-sized gap.
	const start = HeaderSize
	data := append(make([]byte, start), buildIFD(order, []rawEntry{e}, 0)...)

	dirs, err := readDirectoryChain(bytes.NewReader(data), order, start)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	assert.Len(t, dirs[0].entries, 1)
	assert.Equal(t, uint32(0), dirs[0].next)
}

func TestReadDirectoryChainMulti(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 100)

	const start = HeaderSize
	first := buildIFD(order, []rawEntry{e}, 0) // placeholder, patched below
	// First IFD's "next" must point past itself; compute offset.
	secondOffset := uint32(start + len(first))
	first = buildIFD(order, []rawEntry{e}, secondOffset)
	second := buildIFD(order, []rawEntry{e}, 0)

	data := append(make([]byte, start), first...)
	data = append(data, second...)
	dirs, err := readDirectoryChain(bytes.NewReader(data), order, start)
	require.NoError(t, err)
	assert.Len(t, dirs, 2)
}

func TestReadDirectoryChainCycleTerminates(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 100)
	// Two IFDs whose next-offsets point at each other must not loop
	// forever: each is read once and the chain stops at the repeat.
	const start = HeaderSize
	first := buildIFD(order, []rawEntry{e}, 0) // placeholder, patched below
	secondOffset := uint32(start + len(first))
	first = buildIFD(order, []rawEntry{e}, secondOffset)
	second := buildIFD(order, []rawEntry{e}, start)

	data := append(make([]byte, start), first...)
	data = append(data, second...)
	dirs, err := readDirectoryChain(bytes.NewReader(data), order, start)
	require.NoError(t, err)
	assert.Len(t, dirs, 2)
}

func TestReadDirectoryChainSelfLoopTerminates(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 100)
	// Pad so the IFD sits at a non-zero offset (0 is the chain-terminal
	// sentinel, so a genuine self-reference needs a non-zero start).
	const start = 16
	padded := make([]byte, start)
	padded = append(padded, buildIFD(order, []rawEntry{e}, start)...)

	dirs, err := readDirectoryChain(bytes.NewReader(padded), order, start)
	require.NoError(t, err)
	assert.Len(t, dirs, 1, "a next-IFD offset pointing back at itself must not be re-visited")
}

func TestDedupeInsertLastWriterWins(t *testing.T) {
	order := binary.LittleEndian
	first := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(first.Slot[:], 1)
	second := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(second.Slot[:], 2)

	entries := dedupeInsert(nil, first)
	entries = dedupeInsert(entries, second)

	require.Len(t, entries, 1)
	assert.Equal(t, second, entries[0])
}

func TestReadDirectoryChainEmptyIsNoIFD(t *testing.T) {
	_, err := readDirectoryChain(bytes.NewReader(nil), binary.LittleEndian, 0)
	assert.ErrorIs(t, err, ErrNoIFD)
}

func TestReadDirectoryChainZeroEntryFirstIFDIsNoIFD(t *testing.T) {
	// spec.md §8 scenario 1: 49 49 2A 00 08 00 00 00 00 00.
	data := []byte{0x49, 0x49, 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}

	_, err := readDirectoryChain(bytes.NewReader(data), binary.LittleEndian, HeaderSize)
	assert.ErrorIs(t, err, ErrNoIFD)
}

func TestReadDirectoryChainZeroEntryMidChainTerminates(t *testing.T) {
	order := binary.LittleEndian
	e := rawEntry{Tag: TagImageWidth, Type: TypeShort, Count: 1}
	order.PutUint16(e.Slot[:], 100)

	const start = HeaderSize
	first := buildIFD(order, []rawEntry{e}, 0)
	secondOffset := uint32(start + len(first))
	first = buildIFD(order, []rawEntry{e}, secondOffset)
	// Second IFD has zero entries: the chain must stop there, without
	// contributing a directory or reading a next-IFD offset.
	second := buildIFD(order, nil, 0)

	data := append(make([]byte, start), first...)
	data = append(data, second...)
	dirs, err := readDirectoryChain(bytes.NewReader(data), order, start)
	require.NoError(t, err)
	assert.Len(t, dirs, 1)
}
