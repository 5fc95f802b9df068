package chunks

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/deepteams/shockwave/internal/container"
)

func TestDecodeCastMember_BitmapWithName(t *testing.T) {
	var info bytes.Buffer
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], 11) // infoLen self-field, unused
	info.Write(u32[:])
	var u16 [2]byte
	binary.BigEndian.PutUint16(u16[:], 7) // scriptID
	info.Write(u16[:])
	info.WriteByte(4)
	info.WriteString("Test")

	var buf bytes.Buffer
	binary.BigEndian.PutUint32(u32[:], 1) // typeTag = bitmap
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], uint32(info.Len()))
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], 3) // specificLen
	buf.Write(u32[:])
	buf.Write([]byte{0xAA, 0xBB, 0xCC}) // specificData, read before info per layout
	buf.Write(info.Bytes())

	r := container.NewReader(buf.Bytes(), container.BigEndian)
	m, err := DecodeCastMember(r, 42, 0)
	if err != nil {
		t.Fatalf("DecodeCastMember: %v", err)
	}
	if m.ID != 42 {
		t.Errorf("ID = %d, want 42", m.ID)
	}
	if m.Type != MemberBitmap {
		t.Errorf("Type = %v, want MemberBitmap", m.Type)
	}
	if m.ScriptID != 7 {
		t.Errorf("ScriptID = %d, want 7", m.ScriptID)
	}
	if m.Name != "Test" {
		t.Errorf("Name = %q, want Test", m.Name)
	}
	if m.DisplayName() != "Test" {
		t.Errorf("DisplayName() = %q, want Test", m.DisplayName())
	}
	if len(m.SpecificData) != 3 {
		t.Errorf("len(SpecificData) = %d, want 3", len(m.SpecificData))
	}
}

func TestDecodeCastMember_UnknownTypeFallsBackToNull(t *testing.T) {
	var buf bytes.Buffer
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], 9999) // unrecognized type tag
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], 0) // infoLen
	buf.Write(u32[:])
	binary.BigEndian.PutUint32(u32[:], 0) // specificLen
	buf.Write(u32[:])

	r := container.NewReader(buf.Bytes(), container.BigEndian)
	m, err := DecodeCastMember(r, 1, 0)
	if err != nil {
		t.Fatalf("DecodeCastMember: %v", err)
	}
	if m.Type != MemberNull {
		t.Errorf("Type = %v, want MemberNull for an unrecognized tag", m.Type)
	}
}

func TestCastMember_DisplayName_FallsBackToUnnamed(t *testing.T) {
	m := &CastMember{ID: 7}
	if got := m.DisplayName(); got != "Unnamed #7" {
		t.Errorf("DisplayName() = %q, want Unnamed #7", got)
	}
}

func TestCastMember_Kind(t *testing.T) {
	var m CastMember
	if m.Kind() != KindCastMember {
		t.Fatalf("Kind() = %v, want KindCastMember", m.Kind())
	}
}
