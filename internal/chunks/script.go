package chunks

import "github.com/deepteams/shockwave/internal/container"

// LiteralKind classifies a Script literal's decoded value.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralOther
)

// Literal is one entry of a script's literal pool.
type Literal struct {
	Kind   LiteralKind
	Str    string
	Int    int32
	Float  float32
}

// Instruction is one decoded bytecode instruction.
type Instruction struct {
	Offset   int
	RawOp    byte
	Op       Opcode
	Argument int32
	Length   int
}

// Handler is a named Lingo function body: arguments, locals and bytecode.
type Handler struct {
	NameID        int
	ArgNameIDs    []int
	LocalNameIDs  []int
	BytecodeOffset int
	BytecodeLength int
	Instructions  []Instruction
}

// Script is decoded from an Lscr payload: handler table, properties,
// globals and literals.
type Script struct {
	Handlers   []Handler
	Properties []int // nameIds
	Globals    []int // nameIds
	Literals   []Literal
}

func (Script) Kind() Kind { return KindScript }

// scriptHeader is the Lscr payload's fixed header: offsets into the
// payload for each subtable, every one relative to the start of the
// payload.
type scriptHeader struct {
	propertyCount  int
	propertyOffset int
	globalCount    int
	globalOffset   int
	handlerCount   int
	handlerOffset  int
	literalCount   int
	literalOffset  int
	literalPool    int
}

// DecodeScript reads an Lscr payload and eagerly walks every handler's
// bytecode range to produce its instruction list. capitalX selects the
// wide (u32) or narrow (u16) argNameIds/localNameIds field width, per the
// owning ScriptContext's tag (Lctx vs LctX).
func DecodeScript(r *container.Reader, id int, directorVersion int, capitalX bool) (*Script, error) {
	payload := r.Remaining()
	if len(payload) < 44 {
		return nil, truncated(container.ErrTruncatedChunk)
	}
	hr := container.NewReader(payload, r.Endian())

	if _, err := hr.U32(); err != nil { // totalLength
		return nil, truncated(err)
	}
	if _, err := hr.U32(); err != nil { // totalLength2 (duplicate)
		return nil, truncated(err)
	}
	if _, err := hr.U16(); err != nil { // headerLength
		return nil, truncated(err)
	}
	if _, err := hr.U16(); err != nil { // scriptFlags
		return nil, truncated(err)
	}
	if _, err := hr.U32(); err != nil { // reserved
		return nil, truncated(err)
	}

	var hdr scriptHeader
	if v, err := hr.U16(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.propertyCount = int(v)
	}
	if v, err := hr.U32(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.propertyOffset = int(v)
	}
	if v, err := hr.U16(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.globalCount = int(v)
	}
	if v, err := hr.U32(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.globalOffset = int(v)
	}
	if v, err := hr.U16(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.handlerCount = int(v)
	}
	if v, err := hr.U32(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.handlerOffset = int(v)
	}
	if v, err := hr.U16(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.literalCount = int(v)
	}
	if v, err := hr.U32(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.literalOffset = int(v)
	}
	if v, err := hr.U32(); err != nil {
		return nil, truncated(err)
	} else {
		hdr.literalPool = int(v)
	}

	s := &Script{}

	if err := readIDTable(payload, r.Endian(), hdr.propertyOffset, hdr.propertyCount, &s.Properties); err != nil {
		return nil, err
	}
	if err := readIDTable(payload, r.Endian(), hdr.globalOffset, hdr.globalCount, &s.Globals); err != nil {
		return nil, err
	}
	if err := decodeLiterals(payload, r.Endian(), hdr, s); err != nil {
		return nil, err
	}
	if err := decodeHandlers(payload, r.Endian(), hdr, capitalX, s); err != nil {
		return nil, err
	}

	return s, nil
}

func readIDTable(payload []byte, endian container.Endian, offset, count int, out *[]int) error {
	if count == 0 {
		return nil
	}
	if offset < 0 || offset+count*2 > len(payload) {
		return truncated(container.ErrTruncatedChunk)
	}
	tr := container.NewReader(payload[offset:], endian)
	for i := 0; i < count; i++ {
		v, err := tr.U16()
		if err != nil {
			return truncated(err)
		}
		*out = append(*out, int(v))
	}
	return nil
}

func decodeLiterals(payload []byte, endian container.Endian, hdr scriptHeader, s *Script) error {
	if hdr.literalCount == 0 {
		return nil
	}
	if hdr.literalOffset < 0 || hdr.literalOffset+hdr.literalCount*6 > len(payload) {
		return truncated(container.ErrTruncatedChunk)
	}
	lr := container.NewReader(payload[hdr.literalOffset:], endian)
	type rec struct {
		kind   uint16
		offset uint32
	}
	recs := make([]rec, hdr.literalCount)
	for i := range recs {
		k, err := lr.U16()
		if err != nil {
			return truncated(err)
		}
		o, err := lr.U32()
		if err != nil {
			return truncated(err)
		}
		recs[i] = rec{k, o}
	}
	for _, rc := range recs {
		pos := hdr.literalPool + int(rc.offset)
		if pos < 0 || pos > len(payload) {
			return malformed("literal", container.ErrTruncatedChunk)
		}
		vr := container.NewReader(payload[pos:], endian)
		var lit Literal
		switch rc.kind {
		case 0:
			lit.Kind = LiteralString
			if str, err := vr.PascalString(2); err == nil {
				lit.Str = str
			} else if n, err2 := vr.U32(); err2 == nil {
				if b, err3 := vr.Bytes(int(n)); err3 == nil {
					lit.Str = string(b)
				}
			}
		case 1:
			lit.Kind = LiteralInt
			if v, err := vr.I32(); err == nil {
				lit.Int = v
			}
		case 2:
			lit.Kind = LiteralFloat
			if v, err := vr.F32(); err == nil {
				lit.Float = v
			}
		default:
			lit.Kind = LiteralOther
		}
		s.Literals = append(s.Literals, lit)
	}
	return nil
}

func decodeHandlers(payload []byte, endian container.Endian, hdr scriptHeader, capitalX bool, s *Script) error {
	if hdr.handlerCount == 0 {
		return nil
	}
	if hdr.handlerOffset < 0 || hdr.handlerOffset > len(payload) {
		return truncated(container.ErrTruncatedChunk)
	}
	hr := container.NewReader(payload[hdr.handlerOffset:], endian)
	idWidth := 2
	if capitalX {
		idWidth = 4
	}
	for i := 0; i < hdr.handlerCount; i++ {
		nameID, err := hr.U16()
		if err != nil {
			return truncated(err)
		}
		argCount, err := hr.U16()
		if err != nil {
			return truncated(err)
		}
		argIDs, err := readWideIDs(hr, int(argCount), idWidth)
		if err != nil {
			return err
		}
		localCount, err := hr.U16()
		if err != nil {
			return truncated(err)
		}
		localIDs, err := readWideIDs(hr, int(localCount), idWidth)
		if err != nil {
			return err
		}
		bcOffset, err := hr.U32()
		if err != nil {
			return truncated(err)
		}
		bcLength, err := hr.U32()
		if err != nil {
			return truncated(err)
		}

		h := Handler{
			NameID:         int(nameID),
			ArgNameIDs:     argIDs,
			LocalNameIDs:   localIDs,
			BytecodeOffset: int(bcOffset),
			BytecodeLength: int(bcLength),
		}
		if h.BytecodeOffset < 0 || h.BytecodeOffset+h.BytecodeLength > len(payload) {
			return malformed("bytecode", container.ErrTruncatedChunk)
		}
		h.Instructions = DecodeInstructions(payload[h.BytecodeOffset:h.BytecodeOffset+h.BytecodeLength], endian)
		s.Handlers = append(s.Handlers, h)
	}
	return nil
}

func readWideIDs(r *container.Reader, count, width int) ([]int, error) {
	ids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if width == 2 {
			v, err := r.U16()
			if err != nil {
				return nil, truncated(err)
			}
			ids = append(ids, int(v))
		} else {
			v, err := r.U32()
			if err != nil {
				return nil, truncated(err)
			}
			ids = append(ids, int(v))
		}
	}
	return ids, nil
}

// DecodeInstructions walks a handler's bytecode range, classifying each
// opcode and reading its argument. A truncated trailing opcode (fewer
// bytes remain than its declared argument width) consumes only what is
// present rather than failing, so the final instruction's offset+length
// always equals len(bytecode).
func DecodeInstructions(bytecode []byte, endian container.Endian) []Instruction {
	var out []Instruction
	pos := 0
	for pos < len(bytecode) {
		raw := bytecode[pos]
		width := ArgWidth(raw)
		avail := len(bytecode) - pos - 1
		if width > avail {
			width = avail
		}
		var arg int32
		switch width {
		case 1:
			arg = int32(int8(bytecode[pos+1]))
		case 2:
			v := readU16(bytecode[pos+1:pos+3], endian)
			arg = int32(int16(v))
		case 4:
			v := readU32(bytecode[pos+1:pos+5], endian)
			arg = int32(v)
		}
		out = append(out, Instruction{
			Offset:   pos,
			RawOp:    raw,
			Op:       Classify(raw),
			Argument: arg,
			Length:   1 + width,
		})
		pos += 1 + width
	}
	return out
}

func readU16(b []byte, endian container.Endian) uint16 {
	if endian == container.BigEndian {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[1])<<8 | uint16(b[0])
}

func readU32(b []byte, endian container.Endian) uint32 {
	if endian == container.BigEndian {
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}
