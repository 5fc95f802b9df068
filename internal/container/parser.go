package container

import "fmt"

// ParseUncompressed builds a resource Table from a raw RIFX/XFIR buffer via
// a single-pass incremental chunk walk: read the imap subchunk, seek to
// mmap, then read its fixed records.
func ParseUncompressed(data []byte, hdr Header) (*Table, error) {
	r := NewReader(data[12:], hdr.Endian)

	imapTag, err := r.FourCC()
	if err != nil {
		return nil, err
	}
	if imapTag != TagIMAP {
		return nil, fmt.Errorf("container: expected imap, got %q: %w", imapTag, ErrTruncatedFile)
	}
	if _, err := r.U32(); err != nil { // imap length, unused
		return nil, err
	}
	mmapOffset, err := r.U32()
	if err != nil {
		return nil, err
	}

	// mmapOffset is relative to the start of the file (past the 12-byte
	// container header is offset 12; the stored value is absolute from the
	// very first byte of the buffer per observed files).
	if int(mmapOffset) < 0 || int(mmapOffset) > len(data) {
		return nil, fmt.Errorf("container: mmap offset %d out of range: %w", mmapOffset, ErrTruncatedFile)
	}
	mr := NewReader(data[mmapOffset:], hdr.Endian)

	mmapTag, err := mr.FourCC()
	if err != nil {
		return nil, err
	}
	if mmapTag != TagMMAP {
		return nil, fmt.Errorf("container: expected mmap, got %q: %w", mmapTag, ErrTruncatedFile)
	}
	if _, err := mr.U32(); err != nil { // mmap length, unused
		return nil, err
	}
	if _, err := mr.U16(); err != nil { // headerLen, unused
		return nil, err
	}
	entryLen, err := mr.U16()
	if err != nil {
		return nil, err
	}
	maxEntries, err := mr.U32()
	if err != nil {
		return nil, err
	}
	usedEntries, err := mr.U32()
	if err != nil {
		return nil, err
	}
	_ = maxEntries
	if err := mr.Skip(12); err != nil { // free-list pointers, unused
		return nil, err
	}

	table := NewTable(hdr.Endian, hdr.MovieType, fetchUncompressed(data))

	for i := 0; i < int(usedEntries); i++ {
		entryStart := mr.Pos()
		fourcc, err := mr.FourCC()
		if err != nil {
			return nil, err
		}
		length, err := mr.U32()
		if err != nil {
			return nil, err
		}
		offset, err := mr.U32()
		if err != nil {
			return nil, err
		}
		if _, err := mr.U16(); err != nil { // flags, unused
			return nil, err
		}
		if _, err := mr.U16(); err != nil { // padding, unused
			return nil, err
		}
		if _, err := mr.U32(); err != nil { // link, unused
			return nil, err
		}
		// entryLen may exceed the fixed 20 bytes consumed above in newer
		// layouts; skip any trailing, unspecified bytes per entry.
		if consumed := mr.Pos() - entryStart; entryLen > 0 && int(entryLen) > consumed {
			if err := mr.Skip(int(entryLen) - consumed); err != nil {
				return nil, err
			}
		}

		if fourcc == (FourCC{}) || offset == 0 {
			continue // gap slot
		}
		table.Add(ResourceInfo{
			ID:                 i,
			FourCC:             fourcc,
			Offset:             int64(offset) + 8, // past the resource's own tag+length header
			Length:             int64(length),
			UncompressedLength: int64(length),
		})
	}

	return table, nil
}

func fetchUncompressed(data []byte) func(ResourceInfo) ([]byte, error) {
	return func(info ResourceInfo) ([]byte, error) {
		end := info.Offset + info.Length
		if info.Offset < 0 || end > int64(len(data)) {
			return nil, fmt.Errorf("container: resource %d payload [%d,%d) out of range: %w", info.ID, info.Offset, end, ErrTruncatedFile)
		}
		return data[info.Offset:end], nil
	}
}
