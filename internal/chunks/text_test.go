package chunks

import (
	"encoding/binary"
	"testing"

	"github.com/deepteams/shockwave/internal/container"
)

func TestDecodeText_WithOneRun(t *testing.T) {
	data := make([]byte, 12+5+10)
	binary.BigEndian.PutUint32(data[0:4], 12) // payloadOffset
	binary.BigEndian.PutUint32(data[4:8], 5)  // textLen
	binary.BigEndian.PutUint32(data[8:12], 10) // runsLen
	copy(data[12:17], "hello")

	run := data[17:27]
	binary.BigEndian.PutUint32(run[0:4], 0) // startOffset
	binary.BigEndian.PutUint16(run[4:6], 1) // fontID
	binary.BigEndian.PutUint16(run[6:8], 12) // fontSize
	binary.BigEndian.PutUint16(run[8:10], 0) // styleBits

	r := container.NewReader(data, container.BigEndian)
	tc, err := DecodeText(r, 0)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if tc.Text != "hello" {
		t.Errorf("Text = %q, want hello", tc.Text)
	}
	if len(tc.Runs) != 1 {
		t.Fatalf("len(Runs) = %d, want 1", len(tc.Runs))
	}
	if tc.Runs[0].FontID != 1 || tc.Runs[0].FontSize != 12 {
		t.Errorf("Runs[0] = %+v, unexpected", tc.Runs[0])
	}
}

func TestDecodeText_NormalizesLineEndings(t *testing.T) {
	text := "a\r\nb\rc"
	data := make([]byte, 12+len(text))
	binary.BigEndian.PutUint32(data[0:4], 12)
	binary.BigEndian.PutUint32(data[4:8], uint32(len(text)))
	binary.BigEndian.PutUint32(data[8:12], 0)
	copy(data[12:], text)

	r := container.NewReader(data, container.BigEndian)
	tc, err := DecodeText(r, 0)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if tc.Text != "a\nb\nc" {
		t.Errorf("Text = %q, want %q", tc.Text, "a\nb\nc")
	}
}

func TestDecodeText_TruncatedHeader(t *testing.T) {
	r := container.NewReader([]byte{0, 1, 2}, container.BigEndian)
	if _, err := DecodeText(r, 0); err == nil {
		t.Fatal("expected an error for a too-short text header")
	}
}

func TestTextChunk_Kind(t *testing.T) {
	var tc TextChunk
	if tc.Kind() != KindText {
		t.Fatalf("Kind() = %v, want KindText", tc.Kind())
	}
}
