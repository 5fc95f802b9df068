package shockwave

import (
	"encoding/binary"
	"testing"
)

func makeBitmapBenchFile(width, height, depth int) []byte {
	rowBytes := width * depth / 8
	if rowBytes == 0 {
		rowBytes = 1
	}
	total := rowBytes * height
	bitd := make([]byte, 0, total/128+2)
	remaining := total
	for remaining > 0 {
		n := remaining
		if n > 128 {
			n = 128
		}
		bitd = append(bitd, byte(257-n), 3)
		remaining -= n
	}
	castPayload := castMemberPayload(1, "Bench", bitmapInfoPayload(width, height, depth, -1))
	kt := keyTablePayload([][]byte{keyTableEntry(1, 0, "BITD")})
	return buildRIFXFile([]namedResource{
		{tag: "CASt", payload: castPayload},
		{tag: "BITD", payload: bitd},
		{tag: "KEY*", payload: kt},
	})
}

func makeSoundBenchFile(audioBytes int) []byte {
	payload := make([]byte, 0x2c+audioBytes)
	binary.BigEndian.PutUint32(payload[0x2a:0x2e], 22050)
	castPayload := castMemberPayload(10, "Bench", nil)
	kt := keyTablePayload([][]byte{keyTableEntry(1, 0, "snd ")})
	return buildRIFXFile([]namedResource{
		{tag: "CASt", payload: castPayload},
		{tag: "snd ", payload: payload},
		{tag: "KEY*", payload: kt},
	})
}

func BenchmarkLoad_Minimal(b *testing.B) {
	data := buildRIFXFile([]namedResource{
		{tag: "DRCF", payload: configPayload(640, 480, 30, 1300)},
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(data); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(len(data)))
}

func BenchmarkLoad_ManyResources(b *testing.B) {
	resources := make([]namedResource, 0, 200)
	for i := 0; i < 200; i++ {
		resources = append(resources, namedResource{
			tag:     "CASt",
			payload: castMemberPayload(1, "Member", nil),
		})
	}
	data := buildRIFXFile(resources)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(data); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(len(data)))
}

func BenchmarkDecodeBitmap_640x480x8(b *testing.B) {
	data := makeBitmapBenchFile(640, 480, 8)
	df, err := Load(data)
	if err != nil {
		b.Fatal(err)
	}
	member, _ := df.CastMember(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := df.DecodeBitmap(member); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeBitmap_DepthSweep(b *testing.B) {
	for _, depth := range []int{1, 2, 4, 8, 16} {
		b.Run(depthLabel(depth), func(b *testing.B) {
			data := makeBitmapBenchFile(320, 240, depth)
			df, err := Load(data)
			if err != nil {
				b.Fatal(err)
			}
			member, _ := df.CastMember(0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := df.DecodeBitmap(member); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func depthLabel(depth int) string {
	switch depth {
	case 1:
		return "1bit"
	case 2:
		return "2bit"
	case 4:
		return "4bit"
	case 8:
		return "8bit"
	case 16:
		return "16bit"
	default:
		return "other"
	}
}

func BenchmarkDecodeSound_PCM1Second(b *testing.B) {
	data := makeSoundBenchFile(44100)
	df, err := Load(data)
	if err != nil {
		b.Fatal(err)
	}
	member, _ := df.CastMember(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := df.DecodeSound(member); err != nil {
			b.Fatal(err)
		}
	}
}
