package assets

import (
	"testing"

	"github.com/deepteams/shockwave/internal/chunks"
)

func TestBuiltinPalette_KnownIDs(t *testing.T) {
	for _, id := range []int{-1, -2, -3, -4, -5, -6, -7, -101, -102} {
		p := BuiltinPalette(id)
		if p == nil {
			t.Errorf("BuiltinPalette(%d) = nil, want a palette", id)
			continue
		}
		if len(p.Entries) != 256 {
			t.Errorf("BuiltinPalette(%d) has %d entries, want 256", id, len(p.Entries))
		}
	}
}

func TestBuiltinPalette_UnknownIDReturnsNil(t *testing.T) {
	if p := BuiltinPalette(-999); p != nil {
		t.Errorf("BuiltinPalette(-999) = %v, want nil", p)
	}
}

func TestResolvePalette_ZeroResolvesToSystemMac(t *testing.T) {
	p := ResolvePalette(0, nil)
	if p != BuiltinPalette(-1) {
		t.Error("ResolvePalette(0, nil) did not resolve to SystemMac")
	}
}

func TestResolvePalette_NegativeResolvesToMatchingBuiltin(t *testing.T) {
	p := ResolvePalette(-3, nil)
	if p != BuiltinPalette(-3) {
		t.Error("ResolvePalette(-3, nil) did not resolve to the grayscale builtin")
	}
}

func TestResolvePalette_PositiveUsesCastLookup(t *testing.T) {
	custom := &chunks.Palette{Entries: []chunks.RGB{{R: 1, G: 2, B: 3}}}
	p := ResolvePalette(5, func(id int) *chunks.Palette {
		if id == 5 {
			return custom
		}
		return nil
	})
	if p != custom {
		t.Error("ResolvePalette(5, ...) did not return the looked-up cast CLUT")
	}
}

func TestResolvePalette_PositiveFallsBackWhenLookupMisses(t *testing.T) {
	p := ResolvePalette(5, func(id int) *chunks.Palette { return nil })
	if p != BuiltinPalette(-1) {
		t.Error("ResolvePalette(5, missing lookup) did not fall back to SystemMac")
	}
}

func TestResolvePalette_PositiveWithNilLookup(t *testing.T) {
	p := ResolvePalette(5, nil)
	if p != BuiltinPalette(-1) {
		t.Error("ResolvePalette(5, nil) did not fall back to SystemMac")
	}
}
