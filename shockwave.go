package shockwave

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/deepteams/shockwave/internal/assets"
	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
	"github.com/deepteams/shockwave/internal/resource"
	"github.com/deepteams/shockwave/internal/score"
)

// Re-exported sentinel errors. Callers
// use errors.Is against these rather than internal/container's copies.
var (
	ErrUnsupportedContainer = container.ErrUnsupportedContainer
	ErrTruncatedFile        = container.ErrTruncatedFile
	ErrInflateError         = container.ErrCorruptResource
	ErrMissingResource      = container.ErrMissingResource
	ErrUnsupportedVersion   = errors.New("shockwave: unsupported director version")
)

// LoadError is a fatal band-1 load failure: no
// DirectorFile is produced. Op names the stage that failed.
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("shockwave: %s: %v", e.Op, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Diagnostic is a per-chunk decode failure recorded during load; the
// offending resource is represented as a RawChunk instead.
type Diagnostic = resource.Diagnostic

// DirectorFile is the parsed root of a Shockwave movie. It owns
// the resource table and every decoded chunk; consumers borrow references
// by integer id, never by pointer, and no parsed object outlives the
// DirectorFile.
//
// A DirectorFile is immutable after construction except for the bitmap
// decode cache, which is guarded by mu so DecodeBitmap may be called
// concurrently from multiple goroutines sharing one DirectorFile.
type DirectorFile struct {
	mu sync.RWMutex

	endian      container.Endian
	afterburner bool
	movieType   container.FourCC
	basePath    string

	table *resource.Table

	config          *chunks.ConfigChunk
	keyTable        *chunks.KeyTable
	castList        *chunks.CastList
	scriptContext   *chunks.ScriptContext
	scriptNames     *chunks.ScriptNames
	scriptNamesByID map[int]*chunks.ScriptNames
	scoreChunk      *score.Score
	frameLabels     *score.FrameLabels
	casts           []*chunks.Cast
	castMembers     map[int]*chunks.CastMember
	scripts         map[int]*chunks.Script
	palettes        map[int]*chunks.Palette

	bitmapCache map[int]*assets.Bitmap
}

// Load parses a byte buffer into a DirectorFile.
func Load(data []byte) (*DirectorFile, error) {
	return build(data, "")
}

// LoadPath reads path and parses it, setting DirectorFile.BasePath for
// external-cast resolution.
func LoadPath(path string) (*DirectorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Op: "read file", Err: err}
	}
	return build(data, path)
}

func build(data []byte, basePath string) (*DirectorFile, error) {
	hdr, err := container.ParseHeader(data)
	if err != nil {
		return nil, &LoadError{Op: "parse header", Err: err}
	}

	var ct *container.Table
	afterburner := container.IsAfterburner(hdr.MovieType)
	if afterburner {
		t, _, err := container.ParseAfterburner(data, hdr)
		if err != nil {
			return nil, &LoadError{Op: "parse afterburner directory", Err: err}
		}
		ct = t
	} else {
		t, err := container.ParseUncompressed(data, hdr)
		if err != nil {
			return nil, &LoadError{Op: "parse resource directory", Err: err}
		}
		ct = t
	}

	rt, err := resource.Dispatch(ct)
	if err != nil {
		return nil, &LoadError{Op: "dispatch chunks", Err: err}
	}

	df := &DirectorFile{
		endian:          hdr.Endian,
		afterburner:     afterburner,
		movieType:       hdr.MovieType,
		basePath:        basePath,
		table:           rt,
		castMembers:     make(map[int]*chunks.CastMember),
		scripts:         make(map[int]*chunks.Script),
		palettes:        make(map[int]*chunks.Palette),
		scriptNamesByID: make(map[int]*chunks.ScriptNames),
		bitmapCache:     make(map[int]*assets.Bitmap),
	}
	df.indexChunks()
	return df, nil
}

// indexChunks walks the dispatched resource table once, in ascending id
// (encounter) order, populating the typed cross-cut shortcuts used by the
// accessor methods below.
func (df *DirectorFile) indexChunks() {
	for _, id := range df.table.IDs() {
		switch v := df.table.Chunk(id).(type) {
		case *chunks.ConfigChunk:
			df.config = v
		case *chunks.KeyTable:
			df.keyTable = v
		case *chunks.CastList:
			df.castList = v
		case *chunks.Cast:
			df.casts = append(df.casts, v)
		case *chunks.CastMember:
			df.castMembers[id] = v
		case *chunks.ScriptContext:
			// First-nonempty-wins; fall back to
			// the first one seen at all if none turn out nonempty.
			if df.scriptContext == nil {
				df.scriptContext = v
			} else if len(df.scriptContext.Entries) == 0 && len(v.Entries) > 0 {
				df.scriptContext = v
			}
		case *chunks.ScriptNames:
			df.scriptNamesByID[id] = v
			if v.NonEmpty() {
				// Most-recent-nonempty-wins: later ascending ids
				// keep overwriting as long as they are themselves nonempty.
				df.scriptNames = v
			}
		case *chunks.Script:
			df.scripts[id] = v
		case *score.Score:
			df.scoreChunk = v
		case *score.FrameLabels:
			df.frameLabels = v
		case *chunks.Palette:
			df.palettes[id] = v
		}
	}
}

// Metadata accessors.

func (df *DirectorFile) Endian() container.Endian { return df.endian }
func (df *DirectorFile) Afterburner() bool         { return df.afterburner }
func (df *DirectorFile) MovieType() string         { return df.movieType.String() }
func (df *DirectorFile) BasePath() string           { return df.basePath }

func (df *DirectorFile) DirectorVersion() int {
	if df.config != nil {
		return df.config.DirectorVersion
	}
	return df.table.DirectorVersion()
}

func (df *DirectorFile) StageWidth() int {
	if df.config == nil {
		return 0
	}
	return df.config.StageWidth
}

func (df *DirectorFile) StageHeight() int {
	if df.config == nil {
		return 0
	}
	return df.config.StageHeight
}

func (df *DirectorFile) Tempo() int {
	if df.config == nil {
		return 0
	}
	return df.config.Tempo
}

func (df *DirectorFile) ChannelCount() int {
	if df.config != nil {
		return df.config.ChannelCount
	}
	return container.ChannelCountForVersion(df.DirectorVersion())
}

// Resource enumeration.

// Resources returns every ResourceInfo in ascending id order.
func (df *DirectorFile) Resources() []container.ResourceInfo {
	ids := df.table.IDs()
	out := make([]container.ResourceInfo, 0, len(ids))
	for _, id := range ids {
		if info, err := df.table.Info(id); err == nil {
			out = append(out, info)
		}
	}
	return out
}

// Chunk returns the decoded Chunk for id; never nil.
func (df *DirectorFile) Chunk(id int) chunks.Chunk { return df.table.Chunk(id) }

// Diagnostics returns every per-chunk decode failure recorded during load.
func (df *DirectorFile) Diagnostics() []Diagnostic { return df.table.Diagnostics() }

// Cast access.

func (df *DirectorFile) Casts() []*chunks.Cast { return append([]*chunks.Cast(nil), df.casts...) }

func (df *DirectorFile) CastMembers() []*chunks.CastMember {
	return sortedValues(df.castMembers)
}

func (df *DirectorFile) CastMember(id int) (*chunks.CastMember, bool) {
	m, ok := df.castMembers[id]
	return m, ok
}

func (df *DirectorFile) Scripts() []*chunks.Script {
	return sortedValues(df.scripts)
}

func (df *DirectorFile) Script(id int) (*chunks.Script, bool) {
	s, ok := df.scripts[id]
	return s, ok
}

func (df *DirectorFile) Palettes() []*chunks.Palette {
	return sortedValues(df.palettes)
}

func (df *DirectorFile) PaletteByID(id int) (*chunks.Palette, bool) {
	if p := assets.BuiltinPalette(id); p != nil {
		return p, true
	}
	p, ok := df.palettes[id]
	return p, ok
}

func (df *DirectorFile) Config() *chunks.ConfigChunk             { return df.config }
func (df *DirectorFile) KeyTable() *chunks.KeyTable               { return df.keyTable }
func (df *DirectorFile) CastList() *chunks.CastList               { return df.castList }
func (df *DirectorFile) ScriptContext() *chunks.ScriptContext     { return df.scriptContext }
func (df *DirectorFile) ScriptNames() *chunks.ScriptNames         { return df.scriptNames }
func (df *DirectorFile) ScoreChunk() *score.Score                 { return df.scoreChunk }
func (df *DirectorFile) FrameLabelsChunk() *score.FrameLabels     { return df.frameLabels }
func (df *DirectorFile) HasScore() bool                           { return df.scoreChunk != nil }

func (df *DirectorFile) ScriptNamesByID(id int) (*chunks.ScriptNames, bool) {
	sn, ok := df.scriptNamesByID[id]
	return sn, ok
}

func (df *DirectorFile) HasExternalCasts() bool {
	if df.castList == nil {
		return false
	}
	for _, lib := range df.castList.Libraries {
		if lib.External() {
			return true
		}
	}
	return false
}

func (df *DirectorFile) ExternalCastPaths() []string {
	if df.castList == nil {
		return nil
	}
	var out []string
	for _, lib := range df.castList.Libraries {
		if lib.External() {
			out = append(out, lib.Path)
		}
	}
	return out
}

// Asset decoding.

// DecodeBitmap resolves a bitmap cast member's BITD payload via the
// KeyTable and its palette via BitmapInfo.PaletteID, returning the decoded
// ARGB pixel grid. Results are memoized per cast member id.
func (df *DirectorFile) DecodeBitmap(member *chunks.CastMember) (*assets.Bitmap, error) {
	if member == nil {
		return nil, errors.New("shockwave: nil cast member")
	}
	if member.Type != chunks.MemberBitmap {
		return nil, fmt.Errorf("shockwave: cast member %d is not a bitmap", member.ID)
	}

	df.mu.RLock()
	if b, ok := df.bitmapCache[member.ID]; ok {
		df.mu.RUnlock()
		return b, nil
	}
	df.mu.RUnlock()

	info, err := chunks.DecodeBitmapInfo(member.SpecificData, df.endian)
	if err != nil {
		return nil, fmt.Errorf("shockwave: decode bitmap info for member %d: %w", member.ID, err)
	}

	bitdID := df.findOwnedResource(member.ID, container.TagBITD)
	if bitdID == 0 {
		return nil, fmt.Errorf("shockwave: no BITD owned by cast member %d", member.ID)
	}
	bitd, err := df.table.Payload(bitdID)
	if err != nil {
		return nil, err
	}

	palette := df.resolvePaletteFor(info.PaletteID)
	bmp, err := assets.DecodeBitmap(bitd, info, palette, df.endian)
	if err != nil {
		return nil, fmt.Errorf("shockwave: decode bitmap for member %d: %w", member.ID, err)
	}

	df.mu.Lock()
	df.bitmapCache[member.ID] = bmp
	df.mu.Unlock()
	return bmp, nil
}

func (df *DirectorFile) findOwnedResource(ownerID int, fourcc container.FourCC) int {
	if df.keyTable == nil {
		return 0
	}
	for _, e := range df.keyTable.ForOwner(ownerID) {
		if e.FourCC == fourcc {
			return e.SectionID
		}
	}
	return 0
}

// resolvePaletteFor resolves a bitmap's paletteId: <=0 resolves to a
// built-in palette, >0 resolves to the CLUT owned by that cast member.
func (df *DirectorFile) resolvePaletteFor(paletteID int) *chunks.Palette {
	return assets.ResolvePalette(paletteID, func(castMemberID int) *chunks.Palette {
		clutID := df.findOwnedResource(castMemberID, container.TagCLUT)
		if clutID == 0 {
			return nil
		}
		p, ok := df.palettes[clutID]
		if !ok {
			return nil
		}
		return p
	})
}

// DecodeSound resolves a sound cast member's snd_/ediM payload via the
// KeyTable and synthesizes a WAV (PCM/ADPCM) or returns the raw stream
// unchanged (MP3).
func (df *DirectorFile) DecodeSound(member *chunks.CastMember) ([]byte, error) {
	if member == nil {
		return nil, errors.New("shockwave: nil cast member")
	}
	if member.Type != chunks.MemberSound {
		return nil, fmt.Errorf("shockwave: cast member %d is not a sound", member.ID)
	}
	sndID := df.findOwnedResource(member.ID, container.TagSnd)
	if sndID == 0 {
		sndID = df.findOwnedResource(member.ID, container.TagEdiM)
	}
	if sndID == 0 {
		return nil, fmt.Errorf("shockwave: no sound resource owned by cast member %d", member.ID)
	}
	sc, ok := chunks.As[*chunks.SoundChunk](df.table.Chunk(sndID))
	if !ok {
		return nil, fmt.Errorf("shockwave: resource %d did not decode as a sound chunk", sndID)
	}
	return assets.Synthesize(sc, df.endian == container.BigEndian), nil
}

// Symbol resolution, handler-name lookup and disassembly helpers.

// ResolveSymbol looks up index in the default ScriptNames table.
func (df *DirectorFile) ResolveSymbol(index int) string {
	if df.scriptNames == nil {
		return fmt.Sprintf("<unknown:%d>", index)
	}
	return df.scriptNames.Name(index)
}

// HandlerName resolves a handler's name via the default ScriptNames table.
func (df *DirectorFile) HandlerName(h *chunks.Handler) string {
	return df.ResolveSymbol(h.NameID)
}

// Disassemble renders every instruction of h as "[offset] MNEMONIC arg",
// resolving name-table references, local/param indices, literal pushes and
// jump targets.
func (df *DirectorFile) Disassemble(script *chunks.Script, h *chunks.Handler) []string {
	lines := make([]string, 0, len(h.Instructions))
	for _, ins := range h.Instructions {
		lines = append(lines, fmt.Sprintf("[%d] %s%s", ins.Offset, ins.Op.String(), df.disassembleArg(ins, script, h)))
	}
	return lines
}

func (df *DirectorFile) disassembleArg(ins chunks.Instruction, script *chunks.Script, h *chunks.Handler) string {
	switch ins.Op {
	case chunks.OpGetGlobal, chunks.OpSetGlobal, chunks.OpPushSymb, chunks.OpGetProp, chunks.OpSetProp:
		return " " + df.ResolveSymbol(int(ins.Argument))
	case chunks.OpGetLocal, chunks.OpSetLocal:
		if int(ins.Argument) >= 0 && int(ins.Argument) < len(h.LocalNameIDs) {
			return " " + df.ResolveSymbol(h.LocalNameIDs[ins.Argument])
		}
		return fmt.Sprintf(" local#%d", ins.Argument)
	case chunks.OpGetParam, chunks.OpSetParam:
		if int(ins.Argument) >= 0 && int(ins.Argument) < len(h.ArgNameIDs) {
			return " " + df.ResolveSymbol(h.ArgNameIDs[ins.Argument])
		}
		return fmt.Sprintf(" param#%d", ins.Argument)
	case chunks.OpPushLiteral:
		if script != nil && int(ins.Argument) >= 0 && int(ins.Argument) < len(script.Literals) {
			lit := script.Literals[ins.Argument]
			switch lit.Kind {
			case chunks.LiteralString:
				return fmt.Sprintf(" %q", lit.Str)
			case chunks.LiteralInt:
				return fmt.Sprintf(" %d", lit.Int)
			case chunks.LiteralFloat:
				return fmt.Sprintf(" %g", lit.Float)
			default:
				return " <literal>"
			}
		}
		return fmt.Sprintf(" <literal:%d>", ins.Argument)
	case chunks.OpJmp, chunks.OpJmpIfZ, chunks.OpEndRepeat:
		return fmt.Sprintf(" %d", ins.Offset+int(ins.Argument))
	case chunks.OpPushInt8:
		return fmt.Sprintf(" %d", ins.Argument)
	default:
		if ins.Length > 1 {
			return fmt.Sprintf(" %d", ins.Argument)
		}
		return ""
	}
}

func sortedValues[T any](m map[int]T) []T {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
