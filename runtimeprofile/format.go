package runtimeprofile

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

const (
	headerSize = 12 // uiFunctionID u32 + uiOffset u32 + uiNumPaths u32
	entrySize  = 12 // uLPathID u64 + uiExecCount u32
)

// Header is one record of the header table: which procedure, where its
// path table starts, and how many entries it has.
type Header struct {
	FunctionID uint32
	Offset     uint32
	NumPaths   uint32
}

// PathEntry is one recorded (path id, execution count) pair.
type PathEntry struct {
	PathID    uint64
	ExecCount uint32
}

// Profile is a fully decoded capture: every procedure's path table,
// keyed by procedure id.
type Profile struct {
	Procedures map[uint32][]PathEntry
}

func maxProcID(p *Profile) (int64, bool) {
	max := int64(-1)
	found := false
	for id := range p.Procedures {
		found = true
		if int64(id) > max {
			max = int64(id)
		}
	}
	return max, found
}

// Encode writes p in the bit-exact on-disk format: a dense header table
// covering procedure ids 0..=maxProcID (procedures absent from p carry a
// zero-path header of their own), a zero-uiNumPaths sentinel header, and
// the concatenated path tables in procedure-id order.
func Encode(w io.Writer, p *Profile) error {
	max, found := maxProcID(p)
	if !found {
		max = -1
	}

	headerCount := max + 2 // real procedures 0..=max, plus the sentinel
	bodyOffset := uint32(headerCount) * headerSize

	cursor := bodyOffset
	headers := make([]Header, 0, headerCount)
	for id := int64(0); id <= max; id++ {
		entries := sortedEntries(p.Procedures[uint32(id)])
		headers = append(headers, Header{
			FunctionID: uint32(id),
			Offset:     cursor,
			NumPaths:   uint32(len(entries)),
		})
		cursor += uint32(len(entries)) * entrySize
	}
	headers = append(headers, Header{FunctionID: 0, Offset: cursor, NumPaths: 0})

	buf := make([]byte, headerSize)
	for _, h := range headers {
		binary.LittleEndian.PutUint32(buf[0:4], h.FunctionID)
		binary.LittleEndian.PutUint32(buf[4:8], h.Offset)
		binary.LittleEndian.PutUint32(buf[8:12], h.NumPaths)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("runtimeprofile: write header: %w", err)
		}
	}

	entryBuf := make([]byte, entrySize)
	for id := int64(0); id <= max; id++ {
		for _, e := range sortedEntries(p.Procedures[uint32(id)]) {
			binary.LittleEndian.PutUint64(entryBuf[0:8], e.PathID)
			binary.LittleEndian.PutUint32(entryBuf[8:12], e.ExecCount)
			if _, err := w.Write(entryBuf); err != nil {
				return fmt.Errorf("runtimeprofile: write path entry: %w", err)
			}
		}
	}
	return nil
}

func sortedEntries(entries []PathEntry) []PathEntry {
	out := make([]PathEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].PathID < out[j].PathID })
	return out
}

// Decode reads a profile written by Encode. The header table starts at
// offset 0, and the first header's offset (where the body begins) fixes
// how many headers the table holds. Headers with zero paths (the
// trailing sentinel and any procedure id with no recorded paths) are
// skipped; for every other header Decode seeks to its recorded offset
// to read that procedure's path table.
func Decode(r io.ReadSeeker) (*Profile, error) {
	p := &Profile{Procedures: map[uint32][]PathEntry{}}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("runtimeprofile: seek header table: %w", err)
	}

	buf := make([]byte, headerSize)
	var headers []Header
	headerCount := uint32(1)
	for i := uint32(0); i < headerCount; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("runtimeprofile: read header: %w", err)
		}
		h := Header{
			FunctionID: binary.LittleEndian.Uint32(buf[0:4]),
			Offset:     binary.LittleEndian.Uint32(buf[4:8]),
			NumPaths:   binary.LittleEndian.Uint32(buf[8:12]),
		}
		if i == 0 {
			// The first path table starts right after the header table.
			headerCount = h.Offset / headerSize
		}
		if h.NumPaths == 0 {
			continue
		}
		headers = append(headers, h)
	}

	entryBuf := make([]byte, entrySize)
	for _, h := range headers {
		if _, err := r.Seek(int64(h.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("runtimeprofile: seek procedure %d body: %w", h.FunctionID, err)
		}
		entries := make([]PathEntry, 0, h.NumPaths)
		for i := uint32(0); i < h.NumPaths; i++ {
			if _, err := io.ReadFull(r, entryBuf); err != nil {
				return nil, fmt.Errorf("runtimeprofile: read path entry for procedure %d: %w", h.FunctionID, err)
			}
			entries = append(entries, PathEntry{
				PathID:    binary.LittleEndian.Uint64(entryBuf[0:8]),
				ExecCount: binary.LittleEndian.Uint32(entryBuf[8:12]),
			})
		}
		p.Procedures[h.FunctionID] = entries
	}
	return p, nil
}
