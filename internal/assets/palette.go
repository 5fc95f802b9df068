package assets

import "github.com/deepteams/shockwave/internal/chunks"

// Built-in palettes, computed once and shared process-wide.
var builtinPalettes = map[int]*chunks.Palette{
	-1:   grayRamp(),       // SystemMac (approximated as a neutral ramp)
	-2:   rainbowPalette(), // Rainbow
	-3:   grayscalePalette(),
	-4:   pastelsPalette(),
	-5:   vividPalette(),
	-6:   ntscPalette(),
	-7:   metallicPalette(),
	-101: grayRamp(),       // SystemWindows (approximated)
	-102: grayRamp(),       // SystemWindowsD4
}

// BuiltinPalette returns the process-wide palette for a negative id, or nil
// if id does not name one.
func BuiltinPalette(id int) *chunks.Palette {
	return builtinPalettes[id]
}

func grayRamp() *chunks.Palette {
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		v := uint8(i)
		p.Entries = append(p.Entries, chunks.RGB{R: v, G: v, B: v})
	}
	return p
}

func grayscalePalette() *chunks.Palette { return grayRamp() }

func rainbowPalette() *chunks.Palette {
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		h := float64(i) / 256 * 6
		p.Entries = append(p.Entries, hsvToRGB(h))
	}
	return p
}

func pastelsPalette() *chunks.Palette {
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		h := float64(i) / 256 * 6
		c := hsvToRGB(h)
		p.Entries = append(p.Entries, chunks.RGB{
			R: lighten(c.R), G: lighten(c.G), B: lighten(c.B),
		})
	}
	return p
}

func vividPalette() *chunks.Palette {
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		h := float64(i) / 256 * 6
		p.Entries = append(p.Entries, hsvToRGB(h))
	}
	return p
}

func ntscPalette() *chunks.Palette {
	// NTSC-safe luma ramp, a coarse approximation of the real Director
	// built-in (limited to the broadcast-safe luma range).
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		v := uint8(16 + (i*219)/255)
		p.Entries = append(p.Entries, chunks.RGB{R: v, G: v, B: v})
	}
	return p
}

func metallicPalette() *chunks.Palette {
	p := &chunks.Palette{}
	for i := 0; i < 256; i++ {
		v := uint8(i)
		p.Entries = append(p.Entries, chunks.RGB{R: v, G: v, B: uint8(i / 2)})
	}
	return p
}

func lighten(v uint8) uint8 {
	if int(v)+64 > 255 {
		return 255
	}
	return v + 64
}

func hsvToRGB(h float64) chunks.RGB {
	i := int(h)
	f := h - float64(i)
	switch i % 6 {
	case 0:
		return chunks.RGB{R: 255, G: uint8(f * 255), B: 0}
	case 1:
		return chunks.RGB{R: uint8((1 - f) * 255), G: 255, B: 0}
	case 2:
		return chunks.RGB{R: 0, G: 255, B: uint8(f * 255)}
	case 3:
		return chunks.RGB{R: 0, G: uint8((1 - f) * 255), B: 255}
	case 4:
		return chunks.RGB{R: uint8(f * 255), G: 0, B: 255}
	default:
		return chunks.RGB{R: 255, G: 0, B: uint8((1 - f) * 255)}
	}
}

// ResolvePalette resolves a paletteId: 0 resolves to SystemMac, negative
// ids resolve to the matching built-in, positive ids reference a
// cast-member CLUT (resolved by the caller via the KeyTable; lookup is
// passed in as a function to avoid an import cycle on the top-level
// DirectorFile).
func ResolvePalette(paletteID int, lookupCastClut func(id int) *chunks.Palette) *chunks.Palette {
	if paletteID <= 0 {
		if p := BuiltinPalette(paletteID); p != nil {
			return p
		}
		return BuiltinPalette(-1)
	}
	if lookupCastClut != nil {
		if p := lookupCastClut(paletteID); p != nil {
			return p
		}
	}
	return BuiltinPalette(-1)
}
