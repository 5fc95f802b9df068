// Package chunks implements the typed decoders for each Shockwave resource
// kind: config, key table, cast list, cast, cast member, script
// context, script names, script, score, frame labels, bitmap info, palette,
// text and sound. Each decoder is a pure function of a container.Reader
// positioned just past the resource's own tag+length header, the resource
// id, the discovered Director version and the container's byte order.
package chunks

import "github.com/deepteams/shockwave/internal/container"

// Kind tags which concrete type a Chunk value holds, replacing the source's
// reflection-based getChunk(id, Class) downcast with a closed enum that
// cannot fail at runtime on the wrong variant.
type Kind int

const (
	KindRaw Kind = iota
	KindConfig
	KindKeyTable
	KindCastList
	KindCast
	KindCastMember
	KindScriptContext
	KindScriptNames
	KindScript
	KindScore
	KindFrameLabels
	KindBitmapInfo
	KindPalette
	KindText
	KindSound
)

// Chunk is the tagged-union interface every decoded resource satisfies.
type Chunk interface {
	Kind() Kind
}

// RawChunk is the fallback for unknown FourCC tags and for resources whose
// typed decoder failed: the dispatcher always
// produces a non-nil Chunk for every resource id.
type RawChunk struct {
	FourCC container.FourCC
	Data   []byte
}

func (RawChunk) Kind() Kind { return KindRaw }

// DecodeError is the structured failure a decoder returns; the dispatcher
// demotes it to a RawChunk plus a Diagnostic rather than aborting.
type DecodeError struct {
	Kind  string // "truncated", "malformed", "unsupported-version"
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return "chunks: " + e.Kind + " (" + e.Field + "): " + e.Err.Error()
	}
	return "chunks: " + e.Kind + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncated(err error) error {
	return &DecodeError{Kind: "truncated", Err: err}
}

func malformed(field string, err error) error {
	return &DecodeError{Kind: "malformed", Field: field, Err: err}
}
