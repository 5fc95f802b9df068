package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncatedChunk is returned whenever a read runs past the end of the
// buffer a Reader was constructed over.
var ErrTruncatedChunk = errors.New("container: truncated chunk")

// Reader is a typed little/big-endian cursor over a byte slice with
// bounded slicing, at byte granularity: every Shockwave field is
// byte/word/dword aligned, so no bit-level window is needed here.
type Reader struct {
	data   []byte
	pos    int
	endian Endian
}

// NewReader wraps data for sequential reads in the given byte order.
func NewReader(data []byte, endian Endian) *Reader {
	return &Reader{data: data, endian: endian}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Seek repositions the cursor to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("container: seek %d out of range [0,%d]: %w", pos, len(r.data), ErrTruncatedChunk)
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("container: need %d bytes at %d, have %d: %w", n, r.pos, len(r.data)-r.pos, ErrTruncatedChunk)
	}
	return nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Remaining returns every unread byte without advancing the cursor.
func (r *Reader) Remaining() []byte {
	return r.data[r.pos:]
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// U16 reads an unsigned 16-bit field in the reader's byte order.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	if r.endian == BigEndian {
		return binary.BigEndian.Uint16(b), nil
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads an unsigned 32-bit field in the reader's byte order.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	if r.endian == BigEndian {
		return binary.BigEndian.Uint32(b), nil
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I16 reads a signed 16-bit field.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// I32 reads a signed 32-bit field.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads an IEEE-754 32-bit float.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// FourCC reads a 4-byte tag in ASCII-normal order, independent of the
// reader's numeric endianness.
func (r *Reader) FourCC() (FourCC, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return FourCC{}, err
	}
	return FourCC{b[0], b[1], b[2], b[3]}, nil
}

// PascalString reads a length-prefixed string; widthBytes selects a 1-byte
// (classic Mac) or 2-byte length prefix, since the length-width varies by
// CastList variant.
func (r *Reader) PascalString(widthBytes int) (string, error) {
	var n int
	switch widthBytes {
	case 1:
		b, err := r.U8()
		if err != nil {
			return "", err
		}
		n = int(b)
	case 2:
		b, err := r.U16()
		if err != nil {
			return "", err
		}
		n = int(b)
	default:
		return "", fmt.Errorf("container: unsupported pascal string width %d", widthBytes)
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Endian reports the reader's configured byte order.
func (r *Reader) Endian() Endian { return r.endian }

// SetEndian overrides the reader's byte order for subsequent scalar reads;
// used by decoders that must switch interpretation mid-stream based on an
// earlier field.
func (r *Reader) SetEndian(e Endian) { r.endian = e }

// Sub returns a new Reader over the next n bytes without copying, advancing
// this reader past them.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b, r.endian), nil
}
