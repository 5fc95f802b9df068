package chunks

import (
	"strings"

	"github.com/deepteams/shockwave/internal/container"
)

// TextRun is a formatting run within a TextChunk.
type TextRun struct {
	StartOffset int
	FontID      int
	FontSize    int
	StyleBits   int
}

// TextChunk is decoded from an STXT payload.
type TextChunk struct {
	Text string
	Runs []TextRun
}

func (TextChunk) Kind() Kind { return KindText }

// DecodeText reads an STXT payload: a header giving payloadOffset, textLen,
// runsLen, then the text bytes and fixed-size run records.
// Text is normalized to \n line endings.
func DecodeText(r *container.Reader, directorVersion int) (*TextChunk, error) {
	payloadOffset, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	textLen, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	runsLen, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	if err := r.Seek(int(payloadOffset)); err != nil {
		return nil, truncated(err)
	}
	textBytes, err := r.Bytes(int(textLen))
	if err != nil {
		return nil, truncated(err)
	}

	tc := &TextChunk{Text: normalizeLineEndings(string(textBytes))}

	remaining := int(runsLen)
	for remaining >= 10 {
		start, err := r.U32()
		if err != nil {
			break
		}
		fontID, err := r.U16()
		if err != nil {
			break
		}
		fontSize, err := r.U16()
		if err != nil {
			break
		}
		styleBits, err := r.U16()
		if err != nil {
			break
		}
		tc.Runs = append(tc.Runs, TextRun{
			StartOffset: int(start),
			FontID:      int(fontID),
			FontSize:    int(fontSize),
			StyleBits:   int(styleBits),
		})
		remaining -= 10
	}
	return tc, nil
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
