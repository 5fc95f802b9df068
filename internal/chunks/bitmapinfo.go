package chunks

import "github.com/deepteams/shockwave/internal/container"

// BitmapInfo is parsed from a bitmap CastMember's specificData.
type BitmapInfo struct {
	Width     int
	Height    int
	BitDepth  int
	PaletteID int
}

func (BitmapInfo) Kind() Kind { return KindBitmapInfo }

// DecodeBitmapInfo reads a bitmap member's specificData: a rect (top, left,
// bottom, right), a bitDepth field, and a paletteId whose width (i16 vs
// i32) varies by version. i32 is tried first; if the value
// falls outside both the built-in range and any plausible cast-member id,
// the low 16 bits are reinterpreted as a sign-extended i16.
func DecodeBitmapInfo(data []byte, endian container.Endian) (*BitmapInfo, error) {
	r := container.NewReader(data, endian)
	top, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	left, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	bottom, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	right, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	depthField, err := r.U16()
	if err != nil {
		return nil, truncated(err)
	}

	bi := &BitmapInfo{
		Width:    int(right - left),
		Height:   int(bottom - top),
		BitDepth: int(depthField & 0xff),
	}
	if bi.BitDepth == 0 {
		bi.BitDepth = 8
	}

	if r.Len() >= 4 {
		v, err := r.I32()
		if err == nil {
			bi.PaletteID = plausiblePaletteID(v)
			return bi, nil
		}
	}
	if r.Len() >= 2 {
		v, err := r.I16()
		if err == nil {
			bi.PaletteID = int(v)
		}
	}
	return bi, nil
}

func plausiblePaletteID(v int32) int {
	if v >= container.PaletteSystemWindowsD4 && v <= 0 {
		return int(v) // built-in range or SystemMac default
	}
	if v > 0 && v < 1<<16 {
		return int(v) // plausible cast-member id
	}
	// Fall back to the low 16 bits, sign-extended.
	return int(int16(uint32(v) & 0xffff))
}
