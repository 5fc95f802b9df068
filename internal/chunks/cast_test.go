package chunks

import (
	"encoding/binary"
	"testing"

	"github.com/deepteams/shockwave/internal/container"
)

func TestDecodeCast(t *testing.T) {
	data := make([]byte, 4+4*3)
	binary.BigEndian.PutUint32(data[0:4], 3)
	binary.BigEndian.PutUint32(data[4:8], 10)
	binary.BigEndian.PutUint32(data[8:12], 0)
	binary.BigEndian.PutUint32(data[12:16], 12)

	r := container.NewReader(data, container.BigEndian)
	c, err := DecodeCast(r, 1, 0)
	if err != nil {
		t.Fatalf("DecodeCast: %v", err)
	}
	if len(c.MemberIDs) != 3 {
		t.Fatalf("len(MemberIDs) = %d, want 3", len(c.MemberIDs))
	}

	if got := c.Slot(1); got != 10 {
		t.Errorf("Slot(1) = %d, want 10", got)
	}
	if got := c.Slot(2); got != 0 {
		t.Errorf("Slot(2) = %d, want 0 (empty)", got)
	}
	if got := c.Slot(3); got != 12 {
		t.Errorf("Slot(3) = %d, want 12", got)
	}
	if got := c.Slot(0); got != 0 {
		t.Errorf("Slot(0) = %d, want 0 (out of range)", got)
	}
	if got := c.Slot(4); got != 0 {
		t.Errorf("Slot(4) = %d, want 0 (out of range)", got)
	}
}

func TestDecodeCast_Truncated(t *testing.T) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, 5)
	r := container.NewReader(data, container.BigEndian)
	if _, err := DecodeCast(r, 1, 0); err == nil {
		t.Fatal("expected an error when fewer member ids are present than declared")
	}
}

func TestCast_Kind(t *testing.T) {
	var c Cast
	if c.Kind() != KindCast {
		t.Fatalf("Kind() = %v, want KindCast", c.Kind())
	}
}
