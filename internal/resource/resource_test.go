package resource

import (
	"encoding/binary"
	"testing"

	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
)

func configPayload(stageVersion int) []byte {
	data := make([]byte, 50)
	binary.BigEndian.PutUint16(data[8:10], 0)
	binary.BigEndian.PutUint16(data[10:12], 0)
	binary.BigEndian.PutUint16(data[48:50], uint16(stageVersion))
	return data
}

func TestDispatch_VersionDiscoveryThenFullDecode(t *testing.T) {
	cfgPayload := configPayload(1150)
	castPayload := make([]byte, 8) // count=1 (u32) + 1 member id (u32)
	binary.BigEndian.PutUint32(castPayload[0:4], 1)
	binary.BigEndian.PutUint32(castPayload[4:8], 5)

	payloads := map[int][]byte{
		0: cfgPayload,
		1: castPayload,
	}
	ct := container.NewTable(container.BigEndian, container.TagMV93, func(info container.ResourceInfo) ([]byte, error) {
		return payloads[info.ID], nil
	})
	ct.Add(container.ResourceInfo{ID: 0, FourCC: container.TagDRCF, Length: int64(len(cfgPayload))})
	ct.Add(container.ResourceInfo{ID: 1, FourCC: container.TagCASp, Length: int64(len(castPayload))})

	table, err := Dispatch(ct)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if table.DirectorVersion() != 1150 {
		t.Fatalf("DirectorVersion() = %d, want 1150", table.DirectorVersion())
	}

	cfgChunk, ok := chunks.As[*chunks.ConfigChunk](table.Chunk(0))
	if !ok {
		t.Fatal("Chunk(0) is not a *ConfigChunk")
	}
	if cfgChunk.DirectorVersion != 1150 {
		t.Errorf("cfgChunk.DirectorVersion = %d, want 1150", cfgChunk.DirectorVersion)
	}

	castChunk, ok := chunks.As[*chunks.Cast](table.Chunk(1))
	if !ok {
		t.Fatal("Chunk(1) is not a *Cast")
	}
	if castChunk.Slot(1) != 5 {
		t.Errorf("castChunk.Slot(1) = %d, want 5", castChunk.Slot(1))
	}

	if len(table.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want empty", table.Diagnostics())
	}
}

func TestDispatch_FailedDecodeDemotesToRawChunkAndLogsDiagnostic(t *testing.T) {
	ct := container.NewTable(container.BigEndian, container.TagMV93, func(info container.ResourceInfo) ([]byte, error) {
		return []byte{0x01}, nil // far too short for any real decoder
	})
	ct.Add(container.ResourceInfo{ID: 0, FourCC: container.TagCASp, Length: 1})

	table, err := Dispatch(ct)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	c := table.Chunk(0)
	if c.Kind() != chunks.KindRaw {
		t.Fatalf("Chunk(0).Kind() = %v, want KindRaw after a decode failure", c.Kind())
	}
	diags := table.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("len(Diagnostics()) = %d, want 1", len(diags))
	}
	if diags[0].ResourceID != 0 || diags[0].FourCC != container.TagCASp {
		t.Errorf("diagnostic = %+v, unexpected", diags[0])
	}
}

func TestDispatch_UnknownIDReturnsNonNilRawChunk(t *testing.T) {
	ct := container.NewTable(container.BigEndian, container.TagMV93, nil)
	table, err := Dispatch(ct)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	c := table.Chunk(999)
	if c == nil {
		t.Fatal("Chunk(999) = nil, want a non-nil RawChunk")
	}
	if c.Kind() != chunks.KindRaw {
		t.Errorf("Chunk(999).Kind() = %v, want KindRaw", c.Kind())
	}
}

func TestDispatch_LctXPropagatesCapitalXToSubsequentLscr(t *testing.T) {
	lctxPayload := make([]byte, 8) // count=0, lnamID=0
	lscrPayload := make([]byte, 44) // all-zero fixed header: zero properties/globals/handlers/literals

	payloads := map[int][]byte{
		0: lctxPayload,
		1: lscrPayload,
	}
	ct := container.NewTable(container.BigEndian, container.TagMV93, func(info container.ResourceInfo) ([]byte, error) {
		return payloads[info.ID], nil
	})
	ct.Add(container.ResourceInfo{ID: 0, FourCC: container.TagLctX, Length: int64(len(lctxPayload))})
	ct.Add(container.ResourceInfo{ID: 1, FourCC: container.TagLscr, Length: int64(len(lscrPayload))})

	table, err := Dispatch(ct)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	scChunk, ok := chunks.As[*chunks.ScriptContext](table.Chunk(0))
	if !ok {
		t.Fatal("Chunk(0) is not a *ScriptContext")
	}
	if !scChunk.CapitalX {
		t.Error("CapitalX = false, want true for an LctX tag")
	}

	// The Lscr decode itself only needs a valid fixed header; we only assert
	// it decoded successfully (no diagnostic), confirming capitalX flowed
	// through decodeOne without error.
	if c := table.Chunk(1); c.Kind() != chunks.KindScript {
		t.Errorf("Chunk(1).Kind() = %v, want KindScript", c.Kind())
	}
}
