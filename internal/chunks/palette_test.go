package chunks

import "testing"

func TestDecodePalette(t *testing.T) {
	data := []byte{
		0xff, 0x00, 0x00, // red
		0x00, 0xff, 0x00, // green
		0x00, 0x00, 0xff, // blue
	}
	p, err := DecodePalette(data)
	if err != nil {
		t.Fatalf("DecodePalette: %v", err)
	}
	if len(p.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(p.Entries))
	}
	if p.Entries[0].ARGB() != 0xffff0000 {
		t.Errorf("Entries[0].ARGB() = %#x, want 0xffff0000", p.Entries[0].ARGB())
	}
	if p.Entries[2].ARGB() != 0xff0000ff {
		t.Errorf("Entries[2].ARGB() = %#x, want 0xff0000ff", p.Entries[2].ARGB())
	}
}

func TestDecodePalette_TruncatesPartialTrailingEntry(t *testing.T) {
	data := []byte{0xff, 0x00, 0x00, 0x11, 0x22} // 5 bytes: 1 full entry + 2 stray bytes
	p, err := DecodePalette(data)
	if err != nil {
		t.Fatalf("DecodePalette: %v", err)
	}
	if len(p.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1 (trailing partial entry dropped)", len(p.Entries))
	}
}

func TestPalette_At_WrapsOutOfRangeIndex(t *testing.T) {
	p := &Palette{Entries: []RGB{{R: 1}, {R: 2}, {R: 3}}}
	if got := p.At(3); got.R != 1 {
		t.Errorf("At(3) = %+v, want wraparound to index 0", got)
	}
	if got := p.At(-1); got.R != 3 {
		t.Errorf("At(-1) = %+v, want wraparound to last index", got)
	}
}

func TestPalette_At_EmptyPalette(t *testing.T) {
	p := &Palette{}
	if got := p.At(5); got != (RGB{}) {
		t.Errorf("At(5) on empty palette = %+v, want zero value", got)
	}
}

func TestPalette_Kind(t *testing.T) {
	var p Palette
	if p.Kind() != KindPalette {
		t.Fatalf("Kind() = %v, want KindPalette", p.Kind())
	}
}
