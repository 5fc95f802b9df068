package container

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptAfterburner is returned when Fver/Fcdr/ABMP/FGEI cannot be
// parsed; this is a fatal load error.
var ErrCorruptAfterburner = errors.New("container: corrupt afterburner directory")

// abmpEntry is one record of the inflated ABMP memory map.
type abmpEntry struct {
	resourceID     int
	offset         int64
	compressedSize int64
	uncompressedSize int64
	fourcc         FourCC
	compressorIdx  int
}

// ParseAfterburner builds a resource Table from an Afterburner-compressed
// buffer: Fver (version), Fcdr (compressor registry), ABMP (the compressed
// memory map itself), FGEI (the compressed payload pool), via an
// incremental chunk walk over zlib-wrapped subchunks.
func ParseAfterburner(data []byte, hdr Header) (*Table, directorVersionHint, error) {
	r := NewReader(data[12:], hdr.Endian)

	var hint directorVersionHint
	var fcdrSeen bool
	var abmpEntries []abmpEntry
	var fgeiOffset int64
	var haveFGEI bool

	for r.Len() >= 8 {
		tagStart := r.Pos()
		tag, err := r.FourCC()
		if err != nil {
			break
		}
		length, err := r.U32()
		if err != nil {
			return nil, hint, err
		}
		payloadStart := r.Pos()
		if int64(payloadStart)+int64(length) > int64(len(data)-12) {
			return nil, hint, fmt.Errorf("container: %q subchunk length %d runs off end: %w", tag, length, ErrCorruptAfterburner)
		}

		switch tag {
		case TagFver:
			sub, err := r.Sub(int(length))
			if err != nil {
				return nil, hint, err
			}
			hint.version, hint.hasVersion = parseFverVersion(sub)
		case TagFcdr:
			if err := r.Skip(int(length)); err != nil {
				return nil, hint, err
			}
			fcdrSeen = true
		case TagABMP:
			sub, err := r.Bytes(int(length))
			if err != nil {
				return nil, hint, err
			}
			abmpEntries, err = parseABMP(sub, hdr.Endian)
			if err != nil {
				return nil, hint, err
			}
		case TagFGEI:
			fgeiOffset = int64(payloadStart) + 12 // absolute offset into data
			haveFGEI = true
			if err := r.Skip(int(length)); err != nil {
				return nil, hint, err
			}
		default:
			if err := r.Skip(int(length)); err != nil {
				return nil, hint, err
			}
		}
		if length%2 == 1 { // chunks are word-aligned
			r.Skip(1)
		}
		_ = tagStart
	}
	_ = fcdrSeen

	if !haveFGEI || abmpEntries == nil {
		return nil, hint, fmt.Errorf("container: missing ABMP or FGEI: %w", ErrCorruptAfterburner)
	}

	table := NewTable(hdr.Endian, hdr.MovieType, fetchAfterburner(data, fgeiOffset))
	for _, e := range abmpEntries {
		table.Add(ResourceInfo{
			ID:                 e.resourceID,
			FourCC:             e.fourcc,
			Offset:             e.offset,
			Length:             e.compressedSize,
			UncompressedLength: e.uncompressedSize,
		})
	}
	return table, hint, nil
}

type directorVersionHint struct {
	version    int
	hasVersion bool
}

func parseFverVersion(r *Reader) (int, bool) {
	v, err := readVarInt(r)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseABMP inflates the ABMP payload and decodes its variable-length
// integer record stream.
func parseABMP(compressed []byte, endian Endian) ([]abmpEntry, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("container: ABMP inflate: %w", err)
	}
	defer zr.Close()
	inflated, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("container: ABMP inflate: %w", err)
	}

	r := NewReader(inflated, endian)
	// Leading header fields (compressed-size, uncompressed-size of the
	// table itself, resourceCount) are variable-length integers in
	// observed files; resourceCount bounds the records loop.
	if _, err := readVarInt(r); err != nil {
		return nil, err
	}
	if _, err := readVarInt(r); err != nil {
		return nil, err
	}
	resourceCount, err := readVarInt(r)
	if err != nil {
		return nil, err
	}

	entries := make([]abmpEntry, 0, resourceCount)
	for i := 0; r.Len() > 0 && i < resourceCount; i++ {
		resourceID, err := readVarInt(r)
		if err != nil {
			break
		}
		offset, err := readVarInt(r)
		if err != nil {
			return nil, err
		}
		compSize, err := readVarInt(r)
		if err != nil {
			return nil, err
		}
		uncompSize, err := readVarInt(r)
		if err != nil {
			return nil, err
		}
		compressorIdx, err := readVarInt(r)
		if err != nil {
			return nil, err
		}
		fourcc, err := r.FourCC()
		if err != nil {
			return nil, err
		}
		entries = append(entries, abmpEntry{
			resourceID:       resourceID,
			offset:           int64(offset),
			compressedSize:   int64(compSize),
			uncompressedSize: int64(uncompSize),
			fourcc:           fourcc,
			compressorIdx:    compressorIdx,
		})
	}
	return entries, nil
}

// readVarInt decodes Director's variable-length integer encoding: 7 bits of
// payload per byte, high bit set to continue, most-significant group first.
func readVarInt(r *Reader) (int, error) {
	var v int
	for i := 0; i < 5; i++ {
		b, err := r.U8()
		if err != nil {
			return 0, err
		}
		v = (v << 7) | int(b&0x7f)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("container: varint exceeds 5 bytes: %w", ErrCorruptAfterburner)
}

func fetchAfterburner(data []byte, fgeiOffset int64) func(ResourceInfo) ([]byte, error) {
	return func(info ResourceInfo) ([]byte, error) {
		start := fgeiOffset + info.Offset
		end := start + info.Length
		if start < 0 || end > int64(len(data)) {
			return nil, fmt.Errorf("container: resource %d payload out of range: %w", info.ID, ErrTruncatedFile)
		}
		compressed := data[start:end]
		if info.Length == info.UncompressedLength {
			// Some resources (already-small or pre-inflated entries) are
			// stored verbatim; a zlib header check disambiguates.
			if !looksLikeZlib(compressed) {
				return compressed, nil
			}
		}
		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("container: resource %d inflate: %w", info.ID, ErrCorruptResource)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("container: resource %d inflate: %w", info.ID, ErrCorruptResource)
		}
		if int64(len(out)) != info.UncompressedLength {
			return nil, fmt.Errorf("container: resource %d inflated to %d bytes, expected %d: %w", info.ID, len(out), info.UncompressedLength, ErrCorruptResource)
		}
		return out, nil
	}
}

func looksLikeZlib(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	// zlib header: CMF/FLG, with (CMF*256+FLG) % 31 == 0 and CM == 8.
	cmf, flg := b[0], b[1]
	return cmf&0x0f == 8 && (int(cmf)*256+int(flg))%31 == 0
}
