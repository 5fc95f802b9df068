// Package assets implements the bitmap, palette, sound and Lingo
// disassembly decoders that turn parsed chunks into usable domain objects:
// lookup tables plus simple scalar expansion for color conversion, and a
// row-RLE unfilter for bitmap planes.
package assets

// rgb555Table expands a 5-bit channel value (0-31) to an 8-bit channel
// value (0-255), precomputed once at init instead of per-pixel math.
var rgb555Table [32]uint8

func init() {
	for i := range rgb555Table {
		// Replicate the top 3 bits into the low 3 bits, the standard
		// 5-bit-to-8-bit channel expansion.
		rgb555Table[i] = uint8((i << 3) | (i >> 2))
	}
}

// ExpandRGB555 unpacks a 16-bit 5-5-5 pixel (high bit ignored) into 8-bit
// R, G, B channels.
func ExpandRGB555(pixel uint16) (r, g, b uint8) {
	r = rgb555Table[(pixel>>10)&0x1f]
	g = rgb555Table[(pixel>>5)&0x1f]
	b = rgb555Table[pixel&0x1f]
	return
}

// PackARGB assembles 8-bit channels into a 0xAARRGGBB pixel.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
