package chunks

// Palette is an ordered list of up to 256 RGB triples from a CLUT chunk.
type Palette struct {
	Entries []RGB
}

// RGB is one 8-bit-per-channel palette entry.
type RGB struct {
	R, G, B uint8
}

func (Palette) Kind() Kind { return KindPalette }

// ARGB packs a palette entry as 0xAARRGGBB with alpha 0xFF.
func (c RGB) ARGB() uint32 {
	return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// At returns the palette entry at index, wrapping with modulo for
// out-of-range indices.
func (p *Palette) At(index int) RGB {
	if len(p.Entries) == 0 {
		return RGB{}
	}
	return p.Entries[((index%len(p.Entries))+len(p.Entries))%len(p.Entries)]
}

// DecodePalette reads a CLUT payload: a sequence of 3-byte RGB triples,
// entry count derived from payload length.
func DecodePalette(data []byte) (*Palette, error) {
	n := len(data) / 3
	p := &Palette{Entries: make([]RGB, 0, n)}
	for i := 0; i < n; i++ {
		o := i * 3
		p.Entries = append(p.Entries, RGB{R: data[o], G: data[o+1], B: data[o+2]})
	}
	return p, nil
}
