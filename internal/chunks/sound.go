package chunks

import "github.com/deepteams/shockwave/internal/container"

// CodecKind classifies a SoundChunk's audio encoding.
type CodecKind int

const (
	CodecPCM CodecKind = iota
	CodecMP3
	CodecIMAADPCM
)

// SoundChunk is decoded from an snd_/ediM payload.
type SoundChunk struct {
	Codec         CodecKind
	SampleRate    int
	BitsPerSample int
	Channels      int
	AudioData     []byte
}

func (SoundChunk) Kind() Kind { return KindSound }

// DurationSeconds computes PCM duration; returns 0 for non-PCM codecs.
func (s *SoundChunk) DurationSeconds() float64 {
	if s.Codec != CodecPCM || s.SampleRate == 0 || s.Channels == 0 || s.BitsPerSample == 0 {
		return 0
	}
	bytesPerSample := s.BitsPerSample / 8
	return float64(len(s.AudioData)) / float64(s.SampleRate*s.Channels*bytesPerSample)
}

// mp3SyncBytes are the two-byte MP3 frame sync patterns (0xFF 0xFB /
// 0xFF 0xFA, MPEG1 Layer III with and without CRC).
var mp3SyncBytes = [2]byte{0xfb, 0xfa}

// findMP3Start scans the first 1024 bytes for an MP3 frame sync.
func findMP3Start(data []byte) (int, bool) {
	limit := len(data)
	if limit > 1024 {
		limit = 1024
	}
	for i := 0; i+1 < limit; i++ {
		if data[i] != 0xff {
			continue
		}
		b := data[i+1]
		if b == mp3SyncBytes[0] || b == mp3SyncBytes[1] {
			return i, true
		}
	}
	return 0, false
}

// DecodeSound reads an snd_/ediM payload: MP3 sync-scan detection first,
// then a bits-per-sample check for IMA ADPCM (4 bits/sample) vs PCM, and a
// version-dependent fixed-offset sample rate field.
func DecodeSound(data []byte, endian container.Endian, directorVersion int) (*SoundChunk, error) {
	if off, ok := findMP3Start(data); ok {
		return &SoundChunk{Codec: CodecMP3, AudioData: data[off:]}, nil
	}

	if len(data) < 0x2c {
		return nil, truncated(container.ErrTruncatedChunk)
	}

	bitsOffset := 0x16
	if directorVersion >= 1100 {
		bitsOffset = 0x2a
	}
	if bitsOffset+2 > len(data) {
		bitsOffset = 0x16
	}

	var bits uint16
	if bitsOffset+2 <= len(data) {
		br := container.NewReader(data[bitsOffset:], endian)
		v, err := br.U16()
		if err == nil {
			bits = v
		}
	}

	sc := &SoundChunk{BitsPerSample: int(bits), Channels: 1}
	if bits == 4 {
		sc.Codec = CodecIMAADPCM
		sc.BitsPerSample = 4
	} else {
		sc.Codec = CodecPCM
		if sc.BitsPerSample == 0 {
			sc.BitsPerSample = 16
		}
	}

	rateOffset := 0x16
	if directorVersion >= 1100 {
		rateOffset = 0x2a
	}
	if rateOffset+4 <= len(data) {
		rr := container.NewReader(data[rateOffset:], endian)
		if v, err := rr.U32(); err == nil && v > 0 {
			sc.SampleRate = int(v)
		}
	}
	if sc.SampleRate == 0 {
		sc.SampleRate = 22050
	}

	headerLen := 0x2c
	if headerLen > len(data) {
		headerLen = len(data)
	}
	sc.AudioData = data[headerLen:]
	return sc, nil
}
