// Package container implements the Shockwave container layer: the RIFX/XFIR
// header, the uncompressed imap/mmap resource directory, the Afterburner
// (Fver/Fcdr/ABMP/FGEI) compressed directory, and the resulting uniform
// resource table that the chunk decoders and dispatcher build on.
package container

import "fmt"

// FourCC is a 4-byte ASCII tag such as "RIFX" or "CASt". Tag bytes are
// always read in ASCII-normal order regardless of container endianness;
// RIFX/XFIR is the only endianness signal — tags are never byte-reversed.
type FourCC [4]byte

// String renders the tag as its four ASCII characters.
func (f FourCC) String() string {
	return string(f[:])
}

// NewFourCC packs four bytes read in file order into a FourCC.
func NewFourCC(a, b, c, d byte) FourCC {
	return FourCC{a, b, c, d}
}

// FourCCFromString builds a FourCC from an exactly-4-byte string, panicking
// otherwise; used only for compile-time constant tags below.
func FourCCFromString(s string) FourCC {
	if len(s) != 4 {
		panic(fmt.Sprintf("container: FourCC literal %q is not 4 bytes", s))
	}
	return FourCC{s[0], s[1], s[2], s[3]}
}

var (
	tagRIFX = FourCCFromString("RIFX")
	tagXFIR = FourCCFromString("XFIR")
)

// Endian identifies the byte order a container was written in.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}
