// Package resource implements the chunk dispatcher: given a built
// container.Table it runs the two-pass decode (tentative version
// discovery, then full per-FourCC decode) and exposes a uniform
// id→chunks.Chunk index plus a diagnostic log of per-chunk decode
// failures.
package resource

import (
	"sort"

	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
	"github.com/deepteams/shockwave/internal/score"
)

// Diagnostic records one per-chunk decode failure: the
// dispatcher substitutes a RawChunk and continues rather than aborting.
type Diagnostic struct {
	ResourceID int
	FourCC     container.FourCC
	Cause      error
}

// Table is the dispatcher's output: every resource id mapped to a decoded
// Chunk (or RawChunk on failure), plus the diagnostics collected along the
// way and the Director version discovered during pass 1.
type Table struct {
	ct              *container.Table
	ids             []int // ascending resource-table order
	byID            map[int]chunks.Chunk
	diagnostics     []Diagnostic
	directorVersion int
}

// Dispatch runs both passes over ct:
//
//	Pass 1: find the first DRCF/VWCF payload, decode it tentatively with
//	version=0, and use the resulting DirectorVersion for pass 2.
//	Pass 2: decode every resource by FourCC using that version. A
//	script-context chunk's Lctx/LctX tag is tracked and propagated to every
//	subsequently decoded Lscr chunk (ascending id order stands in for
//	"encounter order" — the resource table carries no independent
//	timestamp).
//
// Individual decode failures never abort the walk: the offending resource
// becomes a RawChunk and a Diagnostic is recorded.
func Dispatch(ct *container.Table) (*Table, error) {
	ids := append([]int(nil), ct.IDs()...)
	sort.Ints(ids)

	t := &Table{
		ct:   ct,
		ids:  ids,
		byID: make(map[int]chunks.Chunk, len(ids)),
	}

	for _, id := range ids {
		info, err := ct.Info(id)
		if err != nil {
			continue
		}
		if info.FourCC != container.TagDRCF && info.FourCC != container.TagVWCF {
			continue
		}
		payload, err := ct.Payload(id)
		if err != nil {
			continue
		}
		r := container.NewReader(payload, ct.Endian)
		cfg, err := chunks.DecodeConfig(r, id, 0)
		if err != nil {
			continue
		}
		t.directorVersion = cfg.DirectorVersion
		break
	}

	capitalX := false
	for _, id := range ids {
		info, err := ct.Info(id)
		if err != nil {
			continue
		}
		payload, err := ct.Payload(id)
		if err != nil {
			t.diagnostics = append(t.diagnostics, Diagnostic{ResourceID: id, FourCC: info.FourCC, Cause: err})
			t.byID[id] = chunks.RawChunk{FourCC: info.FourCC}
			continue
		}

		c, nextCapitalX, err := t.decodeOne(info.FourCC, payload, id, capitalX)
		if err != nil {
			t.diagnostics = append(t.diagnostics, Diagnostic{ResourceID: id, FourCC: info.FourCC, Cause: err})
			t.byID[id] = chunks.RawChunk{FourCC: info.FourCC, Data: payload}
			continue
		}
		capitalX = nextCapitalX
		t.byID[id] = c
	}

	return t, nil
}

// decodeOne dispatches a single resource's payload to its typed decoder by
// FourCC. The returned bool is the capitalX flag to carry
// forward into subsequent Lscr decodes.
func (t *Table) decodeOne(fourcc container.FourCC, payload []byte, id int, capitalX bool) (chunks.Chunk, bool, error) {
	endian := t.ct.Endian
	switch fourcc {
	case container.TagDRCF, container.TagVWCF:
		c, err := chunks.DecodeConfig(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagKEYp:
		c, err := chunks.DecodeKeyTable(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagMCsL:
		c, err := chunks.DecodeCastList(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagCASp:
		c, err := chunks.DecodeCast(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagCASt:
		c, err := chunks.DecodeCastMember(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagLctx, container.TagLctX:
		isX := fourcc == container.TagLctX
		c, err := chunks.DecodeScriptContext(container.NewReader(payload, endian), id, t.directorVersion, isX)
		if err != nil {
			return nil, capitalX, err
		}
		return c, isX, nil
	case container.TagLnam:
		c, err := chunks.DecodeScriptNames(container.NewReader(payload, endian), id, t.directorVersion)
		return c, capitalX, err
	case container.TagLscr:
		c, err := chunks.DecodeScript(container.NewReader(payload, endian), id, t.directorVersion, capitalX)
		return c, capitalX, err
	case container.TagVWSC, container.TagSCVW:
		c, err := score.DecodeScore(container.NewReader(payload, endian))
		return c, capitalX, err
	case container.TagVWLB:
		c, err := score.DecodeFrameLabels(container.NewReader(payload, endian))
		return c, capitalX, err
	case container.TagCLUT:
		c, err := chunks.DecodePalette(payload)
		return c, capitalX, err
	case container.TagSTXT:
		c, err := chunks.DecodeText(container.NewReader(payload, endian), t.directorVersion)
		return c, capitalX, err
	case container.TagSnd, container.TagEdiM:
		c, err := chunks.DecodeSound(payload, endian, t.directorVersion)
		return c, capitalX, err
	default:
		return chunks.RawChunk{FourCC: fourcc, Data: payload}, capitalX, nil
	}
}

// IDs returns every resource id in ascending order.
func (t *Table) IDs() []int {
	return append([]int(nil), t.ids...)
}

// Info returns the ResourceInfo for id.
func (t *Table) Info(id int) (container.ResourceInfo, error) {
	return t.ct.Info(id)
}

// Payload fetches (and, for Afterburner, inflates) a resource's raw bytes.
func (t *Table) Payload(id int) ([]byte, error) {
	return t.ct.Payload(id)
}

// Chunk returns the decoded Chunk for id, or a zero-value RawChunk for an
// unknown id; it never returns nil.
func (t *Table) Chunk(id int) chunks.Chunk {
	if c, ok := t.byID[id]; ok {
		return c
	}
	return chunks.RawChunk{}
}

// Diagnostics returns every per-chunk decode failure recorded during pass 2.
func (t *Table) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), t.diagnostics...)
}

// DirectorVersion returns the version discovered during pass 1 (0 if no
// DRCF/VWCF chunk decoded successfully).
func (t *Table) DirectorVersion() int { return t.directorVersion }

// Endian returns the container's byte order.
func (t *Table) Endian() container.Endian { return t.ct.Endian }

// MovieType returns the container's movie-type tag.
func (t *Table) MovieType() container.FourCC { return t.ct.MovieType }

// Len returns the number of resources in the table.
func (t *Table) Len() int { return len(t.ids) }
