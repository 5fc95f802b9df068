package chunks

import (
	"strconv"

	"github.com/deepteams/shockwave/internal/container"
)

// MemberType classifies a CastMember's specificData layout.
type MemberType int

const (
	MemberNull MemberType = iota
	MemberBitmap
	MemberFilmLoop
	MemberText
	MemberPalette5
	MemberPalette
	MemberButton
	MemberShape
	MemberMovie
	MemberDigitalVideo
	MemberSound
	MemberFlash
	MemberRTE
)

// memberTypeTags maps the raw u32 tag observed in files to MemberType.
// Unknown tags fall back to MemberNull.
var memberTypeTags = map[uint32]MemberType{
	0: MemberNull,
	1: MemberBitmap,
	2: MemberFilmLoop,
	3: MemberText,
	4: MemberPalette,
	5: MemberPalette5,
	6: MemberButton,
	7: MemberShape,
	8: MemberMovie,
	9: MemberDigitalVideo,
	10: MemberSound,
	11: MemberFlash,
	12: MemberRTE,
}

func memberTypeFromTag(tag uint32) MemberType {
	if mt, ok := memberTypeTags[tag]; ok {
		return mt
	}
	return MemberNull
}

// CastMember is a single cast member's header plus an opaque blob for
// type-specific decoding.
type CastMember struct {
	ID           int
	Type         MemberType
	Name         string
	ScriptID     int // 1-based index into ScriptContext.Entries, or 0
	SpecificData []byte
}

func (CastMember) Kind() Kind { return KindCastMember }

// DisplayName returns Name, falling back to "Unnamed #<id>" for an empty
// name.
func (m *CastMember) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return "Unnamed #" + strconv.Itoa(m.ID)
}

// DecodeCastMember reads a CASt payload: memberType, infoLen, specificLen,
// an info block (carrying the name and scriptId) and a verbatim
// specificData blob.
func DecodeCastMember(r *container.Reader, id int, directorVersion int) (*CastMember, error) {
	typeTag, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	infoLen, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	specificLen, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}

	m := &CastMember{ID: id, Type: memberTypeFromTag(typeTag)}

	specBytes, err := r.Bytes(int(specificLen))
	if err != nil {
		return nil, truncated(err)
	}
	m.SpecificData = specBytes

	infoBytes, err := r.Bytes(int(infoLen))
	if err != nil {
		return nil, truncated(err)
	}
	ir := container.NewReader(infoBytes, r.Endian())
	if ir.Len() >= 4 {
		if _, err := ir.U32(); err != nil { // infoLen self-field, unused
			return m, nil
		}
	}
	if ir.Len() >= 2 {
		if v, err := ir.U16(); err == nil {
			m.ScriptID = int(v)
		}
	}
	// Name is typically the first pascal string in whatever remains of the
	// info block; tolerate its absence rather than failing the whole
	// member.
	if ir.Len() > 0 {
		if name, err := ir.PascalString(1); err == nil {
			m.Name = name
		}
	}
	return m, nil
}

