package chunks

import "github.com/deepteams/shockwave/internal/container"

// CastLibEntry describes one cast library in an MCsL chunk.
type CastLibEntry struct {
	Name      string
	Path      string
	ID        int
	MinMember int
	MaxMember int
	Flags     uint32
}

// External reports whether this cast library is stored in a separate file.
func (e CastLibEntry) External() bool { return e.Path != "" }

// CastList holds the ordered cast-library descriptors from an MCsL chunk.
type CastList struct {
	Libraries []CastLibEntry
}

func (CastList) Kind() Kind { return KindCastList }

// DecodeCastList reads an MCsL payload. The pascal-string length width
// (u8 vs u16) follows the container's byte order.
func DecodeCastList(r *container.Reader, id int, directorVersion int) (*CastList, error) {
	strWidth := 1
	if r.Endian() == container.BigEndian {
		strWidth = 2
	}

	count, err := r.U16()
	if err != nil {
		return nil, truncated(err)
	}
	cl := &CastList{}
	for i := 0; i < int(count); i++ {
		name, err := r.PascalString(strWidth)
		if err != nil {
			return nil, truncated(err)
		}
		path, err := r.PascalString(strWidth)
		if err != nil {
			return nil, truncated(err)
		}
		libID, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		minMember, err := r.U16()
		if err != nil {
			return nil, truncated(err)
		}
		maxMember, err := r.U16()
		if err != nil {
			return nil, truncated(err)
		}
		flags, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		cl.Libraries = append(cl.Libraries, CastLibEntry{
			Name:      name,
			Path:      path,
			ID:        int(libID),
			MinMember: int(minMember),
			MaxMember: int(maxMember),
			Flags:     flags,
		})
	}
	return cl, nil
}
