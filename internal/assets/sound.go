package assets

import (
	"encoding/binary"

	"github.com/deepteams/shockwave/internal/chunks"
)

// imaIndexTable and imaStepTable are the standard IMA ADPCM step/index
// tables.
var imaIndexTable = [16]int{-1, -1, -1, -1, 2, 4, 6, 8, -1, -1, -1, -1, 2, 4, 6, 8}

var imaStepTable = [89]int{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17,
	19, 21, 23, 25, 28, 31, 34, 37, 41, 45,
	50, 55, 60, 66, 73, 80, 88, 97, 107, 118,
	130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796,
	876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878, 2066,
	2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358,
	5894, 6484, 7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794, 32767,
}

// DecodeIMAADPCM decodes Intel IMA ADPCM nibbles to 16-bit signed
// little-endian PCM: two samples per byte, low nibble first, index
// clamped to [0,88], predictor clamped to [-32768,32767]. n
// input bytes produce exactly 4n output bytes.
func DecodeIMAADPCM(data []byte) []byte {
	out := make([]byte, 0, len(data)*4)
	predictor := 0
	index := 0

	decodeNibble := func(nibble byte) int16 {
		step := imaStepTable[index]
		diff := step >> 3
		if nibble&1 != 0 {
			diff += step >> 2
		}
		if nibble&2 != 0 {
			diff += step >> 1
		}
		if nibble&4 != 0 {
			diff += step
		}
		if nibble&8 != 0 {
			diff = -diff
		}
		predictor += diff
		if predictor > 32767 {
			predictor = 32767
		} else if predictor < -32768 {
			predictor = -32768
		}
		index += imaIndexTable[nibble]
		if index < 0 {
			index = 0
		} else if index > 88 {
			index = 88
		}
		return int16(predictor)
	}

	for _, b := range data {
		lo := b & 0x0f
		hi := (b >> 4) & 0x0f
		s0 := decodeNibble(lo)
		s1 := decodeNibble(hi)
		var buf [4]byte
		binary.LittleEndian.PutUint16(buf[0:2], uint16(s0))
		binary.LittleEndian.PutUint16(buf[2:4], uint16(s1))
		out = append(out, buf[:]...)
	}
	return out
}

const wavHeaderSize = 44

// ToWAV wraps PCM samples in a standard RIFF WAVE header, grounded on the
// resona codec package's header-then-samples framing. 16-bit samples are
// normalized to little-endian if the source was big-endian.
func ToWAV(sound *chunks.SoundChunk, sourceBigEndian bool) []byte {
	samples := sound.AudioData
	if sound.BitsPerSample == 16 && sourceBigEndian {
		samples = swap16(samples)
	}

	out := make([]byte, wavHeaderSize+len(samples))
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(samples)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // formatTag = PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(sound.Channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sound.SampleRate))
	blockAlign := sound.Channels * sound.BitsPerSample / 8
	byteRate := sound.SampleRate * blockAlign
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], uint16(sound.BitsPerSample))
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(samples)))
	copy(out[44:], samples)
	return out
}

// Synthesize dispatches a decoded SoundChunk to its appropriate output
// form: PCM and IMA ADPCM are wrapped in a WAV container; MP3
// is returned unchanged.
func Synthesize(sound *chunks.SoundChunk, bigEndian bool) []byte {
	switch sound.Codec {
	case chunks.CodecMP3:
		return sound.AudioData
	case chunks.CodecIMAADPCM:
		pcm := &chunks.SoundChunk{
			Codec:         chunks.CodecPCM,
			SampleRate:    sound.SampleRate,
			BitsPerSample: 16,
			Channels:      sound.Channels,
			AudioData:     DecodeIMAADPCM(sound.AudioData),
		}
		return ToWAV(pcm, false)
	default:
		return ToWAV(sound, bigEndian)
	}
}

func swap16(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}
