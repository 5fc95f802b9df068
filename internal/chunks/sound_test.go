package chunks

import (
	"testing"

	"github.com/deepteams/shockwave/internal/container"
)

func TestDecodeSound_MP3SyncDetected(t *testing.T) {
	data := make([]byte, 20)
	data[5] = 0xff
	data[6] = 0xfb

	sc, err := DecodeSound(data, container.BigEndian, 0)
	if err != nil {
		t.Fatalf("DecodeSound: %v", err)
	}
	if sc.Codec != CodecMP3 {
		t.Errorf("Codec = %v, want CodecMP3", sc.Codec)
	}
	if len(sc.AudioData) != len(data)-5 {
		t.Errorf("len(AudioData) = %d, want %d", len(sc.AudioData), len(data)-5)
	}
}

func TestDecodeSound_PCMFallsBackToDefaultRate(t *testing.T) {
	data := make([]byte, 48) // header (0x2c) + a few audio bytes, all zero
	sc, err := DecodeSound(data, container.BigEndian, 0)
	if err != nil {
		t.Fatalf("DecodeSound: %v", err)
	}
	if sc.Codec != CodecPCM {
		t.Errorf("Codec = %v, want CodecPCM", sc.Codec)
	}
	if sc.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16 (default)", sc.BitsPerSample)
	}
	if sc.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050 (default)", sc.SampleRate)
	}
	if len(sc.AudioData) != 4 {
		t.Errorf("len(AudioData) = %d, want 4", len(sc.AudioData))
	}
}

func TestDecodeSound_IMAADPCMDetectedByFourBits(t *testing.T) {
	data := make([]byte, 48)
	data[0x16] = 0x00
	data[0x17] = 0x04 // bits field = 4, big-endian u16

	sc, err := DecodeSound(data, container.BigEndian, 0)
	if err != nil {
		t.Fatalf("DecodeSound: %v", err)
	}
	if sc.Codec != CodecIMAADPCM {
		t.Errorf("Codec = %v, want CodecIMAADPCM", sc.Codec)
	}
	if sc.BitsPerSample != 4 {
		t.Errorf("BitsPerSample = %d, want 4", sc.BitsPerSample)
	}
}

func TestDecodeSound_TooShort(t *testing.T) {
	data := make([]byte, 10)
	if _, err := DecodeSound(data, container.BigEndian, 0); err == nil {
		t.Fatal("expected an error for a too-short non-MP3 sound payload")
	}
}

func TestSoundChunk_DurationSeconds(t *testing.T) {
	sc := &SoundChunk{Codec: CodecPCM, SampleRate: 22050, BitsPerSample: 16, Channels: 1, AudioData: make([]byte, 44100)}
	got := sc.DurationSeconds()
	want := 2.0
	if got != want {
		t.Errorf("DurationSeconds() = %v, want %v", got, want)
	}
}

func TestSoundChunk_DurationSeconds_ZeroForNonPCM(t *testing.T) {
	sc := &SoundChunk{Codec: CodecMP3, SampleRate: 22050, BitsPerSample: 16, Channels: 1, AudioData: make([]byte, 100)}
	if got := sc.DurationSeconds(); got != 0 {
		t.Errorf("DurationSeconds() = %v, want 0 for non-PCM", got)
	}
}

func TestSoundChunk_Kind(t *testing.T) {
	var sc SoundChunk
	if sc.Kind() != KindSound {
		t.Fatalf("Kind() = %v, want KindSound", sc.Kind())
	}
}
