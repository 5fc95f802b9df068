package container

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedContainer is returned when the first 4 bytes are
	// neither "RIFX" nor "XFIR".
	ErrUnsupportedContainer = errors.New("container: unsupported container header")
	// ErrTruncatedFile is returned when the buffer is too short to hold a
	// container header, or the imap/mmap subchunks run off the end.
	ErrTruncatedFile = errors.New("container: truncated file")
	// ErrCorruptResource is returned when an inflated payload's length does
	// not match its declared uncompressed size.
	ErrCorruptResource = errors.New("container: corrupt resource")
	// ErrMissingResource is returned by Table.Payload/Table.Info for an
	// unknown resource id.
	ErrMissingResource = errors.New("container: missing resource")
)

// ResourceInfo is a resource-table record: FourCC, payload location and
// stored/uncompressed lengths, keyed externally by resource id (the slot
// index in the uncompressed mmap, or the resourceId field in an Afterburner
// ABMP record).
type ResourceInfo struct {
	ID                 int
	FourCC             FourCC
	Offset             int64 // offset into the canonical payload space
	Length             int64 // stored (possibly compressed) length
	UncompressedLength int64
}

// Header is the parsed container preamble: byte order, total declared
// length, and the movie-type codec tag that determines whether the
// resource directory is read verbatim (RIFX/XFIR) or through Afterburner
// (FGDM/FGDC).
type Header struct {
	Endian    Endian
	Length    uint32
	MovieType FourCC
}

// ParseHeader reads the 12-byte container preamble.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < 12 {
		return Header{}, fmt.Errorf("container: header needs 12 bytes, have %d: %w", len(data), ErrTruncatedFile)
	}
	tag := FourCC{data[0], data[1], data[2], data[3]}
	var endian Endian
	switch tag {
	case tagRIFX:
		endian = BigEndian
	case tagXFIR:
		endian = LittleEndian
	default:
		return Header{}, fmt.Errorf("container: tag %q is neither RIFX nor XFIR: %w", tag, ErrUnsupportedContainer)
	}
	r := NewReader(data[4:], endian)
	length, err := r.U32()
	if err != nil {
		return Header{}, err
	}
	movieType, err := r.FourCC()
	if err != nil {
		return Header{}, err
	}
	return Header{Endian: endian, Length: length, MovieType: movieType}, nil
}

// IsAfterburner reports whether a movie-type tag indicates the Afterburner
// compressed layout rather than the plain RIFX/XFIR resource directory.
func IsAfterburner(movieType FourCC) bool {
	return movieType == TagFGDM || movieType == TagFGDC
}

// Table is the uniform id→ResourceInfo resource directory plus a payload
// fetcher, the output of both the uncompressed and Afterburner readers.
type Table struct {
	Endian    Endian
	MovieType FourCC
	byID      map[int]ResourceInfo
	order     []int // ids in ascending resource-table order, for pass-2 walks

	fetch func(ResourceInfo) ([]byte, error)
}

// NewTable builds an empty table; callers populate it via Add and set a
// fetch function for payload retrieval.
func NewTable(endian Endian, movieType FourCC, fetch func(ResourceInfo) ([]byte, error)) *Table {
	return &Table{
		Endian:    endian,
		MovieType: movieType,
		byID:      make(map[int]ResourceInfo),
		fetch:     fetch,
	}
}

// Add records a resource, in the order resources are discovered.
func (t *Table) Add(info ResourceInfo) {
	if _, exists := t.byID[info.ID]; !exists {
		t.order = append(t.order, info.ID)
	}
	t.byID[info.ID] = info
}

// Info returns the ResourceInfo for id.
func (t *Table) Info(id int) (ResourceInfo, error) {
	info, ok := t.byID[id]
	if !ok {
		return ResourceInfo{}, fmt.Errorf("container: resource %d: %w", id, ErrMissingResource)
	}
	return info, nil
}

// Payload fetches (and, for Afterburner, inflates) the resource's bytes.
func (t *Table) Payload(id int) ([]byte, error) {
	info, err := t.Info(id)
	if err != nil {
		return nil, err
	}
	return t.fetch(info)
}

// IDs returns every resource id in ascending resource-table order.
func (t *Table) IDs() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of resources in the table.
func (t *Table) Len() int { return len(t.byID) }
