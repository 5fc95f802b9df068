package assets

import (
	"errors"

	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
	"github.com/deepteams/shockwave/internal/pool"
)

// ErrBitmapOverrun is returned when the RLE stream or pixel assembly would
// read or write past the declared bitmap dimensions: decode errors return
// an absent result, not a panic.
var ErrBitmapOverrun = errors.New("assets: bitmap RLE overrun")

// Bitmap is a decoded width×height ARGB pixel grid; len(Pixels) is always
// width*height.
type Bitmap struct {
	Width  int
	Height int
	Pixels []uint32 // row-major, one ARGB word per pixel
}

// unpackBITD decodes the PackBits-style row RLE: for each row of rowBytes,
// a control byte n selects copy-run (n<0x80), repeat-run (n>0x80), or
// no-op (n==0x80).
func unpackBITD(data []byte, rowBytes, rows int) ([]byte, error) {
	out := pool.Get(rowBytes * rows)
	pos := 0
	row := 0
	col := 0
	for row < rows {
		if pos >= len(data) {
			return nil, ErrBitmapOverrun
		}
		n := data[pos]
		pos++
		switch {
		case n == 0x80:
			// no-op
		case n < 0x80:
			count := int(n) + 1
			if pos+count > len(data) {
				return nil, ErrBitmapOverrun
			}
			for i := 0; i < count && row < rows; i++ {
				out[row*rowBytes+col] = data[pos+i]
				col++
				if col == rowBytes {
					col = 0
					row++
				}
			}
			pos += count
		default:
			count := 257 - int(n)
			if pos >= len(data) {
				return nil, ErrBitmapOverrun
			}
			v := data[pos]
			pos++
			for i := 0; i < count && row < rows; i++ {
				out[row*rowBytes+col] = v
				col++
				if col == rowBytes {
					col = 0
					row++
				}
			}
		}
	}
	return out, nil
}

// DecodeBitmap decodes a BITD payload into an ARGB pixel grid, resolving
// palette indices for depths <=8 and assembling planar rows for 24/32-bit
// depths.
func DecodeBitmap(bitd []byte, info *chunks.BitmapInfo, palette *chunks.Palette, endian container.Endian) (*Bitmap, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return nil, ErrBitmapOverrun
	}
	rowBytes := (info.Width*info.BitDepth + 7) / 8
	plane, err := unpackBITD(bitd, rowBytes, info.Height)
	if err != nil {
		return nil, err
	}
	defer pool.Put(plane)

	bmp := &Bitmap{Width: info.Width, Height: info.Height, Pixels: make([]uint32, info.Width*info.Height)}

	switch info.BitDepth {
	case 1, 2, 4, 8:
		decodePaletted(bmp, plane, rowBytes, info.BitDepth, palette)
	case 16:
		decodeRGB555(bmp, plane, rowBytes, endian)
	case 24:
		decodePlanar24(bmp, plane, rowBytes)
	case 32:
		decodePlanar32(bmp, plane, rowBytes)
	default:
		return nil, ErrBitmapOverrun
	}
	return bmp, nil
}

func decodePaletted(bmp *Bitmap, plane []byte, rowBytes, depth int, palette *chunks.Palette) {
	perByte := 8 / depth
	mask := byte(1<<depth) - 1
	for y := 0; y < bmp.Height; y++ {
		row := plane[y*rowBytes : (y+1)*rowBytes]
		x := 0
		for _, b := range row {
			for shift := perByte - 1; shift >= 0 && x < bmp.Width; shift-- {
				idx := int((b >> (uint(shift) * uint(depth))) & mask)
				var c chunks.RGB
				if palette != nil {
					c = palette.At(idx)
				}
				bmp.Pixels[y*bmp.Width+x] = PackARGB(0xff, c.R, c.G, c.B)
				x++
			}
		}
	}
}

func decodeRGB555(bmp *Bitmap, plane []byte, rowBytes int, endian container.Endian) {
	for y := 0; y < bmp.Height; y++ {
		row := plane[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < bmp.Width; x++ {
			o := x * 2
			if o+2 > len(row) {
				break
			}
			var pixel uint16
			if endian == container.BigEndian {
				pixel = uint16(row[o])<<8 | uint16(row[o+1])
			} else {
				pixel = uint16(row[o+1])<<8 | uint16(row[o])
			}
			r, g, b := ExpandRGB555(pixel)
			bmp.Pixels[y*bmp.Width+x] = PackARGB(0xff, r, g, b)
		}
	}
}

// decodePlanar24 reassembles per-row R,G,B planes into interleaved pixels.
func decodePlanar24(bmp *Bitmap, plane []byte, rowBytes int) {
	w := bmp.Width
	for y := 0; y < bmp.Height; y++ {
		row := plane[y*rowBytes : (y+1)*rowBytes]
		if len(row) < w*3 {
			continue
		}
		rPlane, gPlane, bPlane := row[0:w], row[w:2*w], row[2*w:3*w]
		for x := 0; x < w; x++ {
			bmp.Pixels[y*w+x] = PackARGB(0xff, rPlane[x], gPlane[x], bPlane[x])
		}
	}
}

// decodePlanar32 reassembles per-row A,R,G,B planes: each row stores an
// A plane, R plane, G plane, then B plane in sequence.
func decodePlanar32(bmp *Bitmap, plane []byte, rowBytes int) {
	w := bmp.Width
	for y := 0; y < bmp.Height; y++ {
		row := plane[y*rowBytes : (y+1)*rowBytes]
		if len(row) < w*4 {
			continue
		}
		aPlane, rPlane, gPlane, bPlane := row[0:w], row[w:2*w], row[2*w:3*w], row[3*w:4*w]
		for x := 0; x < w; x++ {
			bmp.Pixels[y*w+x] = PackARGB(aPlane[x], rPlane[x], gPlane[x], bPlane[x])
		}
	}
}
