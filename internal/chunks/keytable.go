package chunks

import "github.com/deepteams/shockwave/internal/container"

// KeyEntry is one (sectionId, ownerCastId, fourcc) triple.
type KeyEntry struct {
	SectionID   int
	OwnerCastID int
	FourCC      container.FourCC
}

// KeyTable is the join index from a cast member id to every auxiliary
// chunk it owns.
type KeyTable struct {
	Entries []KeyEntry
	byOwner map[int][]KeyEntry
}

func (KeyTable) Kind() Kind { return KindKeyTable }

// ForOwner returns every entry owned by castID, or nil.
func (k *KeyTable) ForOwner(castID int) []KeyEntry {
	return k.byOwner[castID]
}

// DecodeKeyTable reads a KEYp payload: a header then usedEntries records of
// (sectionId, castId, fourcc).
func DecodeKeyTable(r *container.Reader, id int, directorVersion int) (*KeyTable, error) {
	entryLen, err := r.U16()
	if err != nil {
		return nil, truncated(err)
	}
	headerLen, err := r.U16()
	if err != nil {
		return nil, truncated(err)
	}
	if _, err := r.U32(); err != nil { // maxEntries
		return nil, truncated(err)
	}
	usedEntries, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	if extra := int(headerLen) - 12; extra > 0 {
		if err := r.Skip(extra); err != nil {
			return nil, truncated(err)
		}
	}

	kt := &KeyTable{byOwner: make(map[int][]KeyEntry)}
	for i := 0; i < int(usedEntries); i++ {
		start := r.Pos()
		sectionID, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		castID, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		fourcc, err := r.FourCC()
		if err != nil {
			return nil, truncated(err)
		}
		if consumed := r.Pos() - start; int(entryLen) > consumed {
			if err := r.Skip(int(entryLen) - consumed); err != nil {
				return nil, truncated(err)
			}
		}
		e := KeyEntry{SectionID: int(sectionID), OwnerCastID: int(castID), FourCC: fourcc}
		kt.Entries = append(kt.Entries, e)
		kt.byOwner[e.OwnerCastID] = append(kt.byOwner[e.OwnerCastID], e)
	}
	return kt, nil
}
