package chunks

import "github.com/deepteams/shockwave/internal/container"

// ScriptContext maps a cast member's 1-based scriptId to the Lscr resource
// id implementing it. CapitalX records whether this
// chunk was tagged LctX, which widens certain Lscr header fields downstream.
type ScriptContext struct {
	Entries       []int // Entries[scriptId-1] = Lscr resource id, or 0
	LnamSectionID int
	CapitalX      bool
}

func (ScriptContext) Kind() Kind { return KindScriptContext }

// Resolve returns the Lscr resource id for a 1-based scriptId, or 0.
func (c *ScriptContext) Resolve(scriptID int) int {
	if scriptID < 1 || scriptID > len(c.Entries) {
		return 0
	}
	return c.Entries[scriptID-1]
}

// DecodeScriptContext reads an Lctx/LctX payload: a count and per-entry
// (id:u32) table, plus the owning Lnam's resource id.
func DecodeScriptContext(r *container.Reader, id int, directorVersion int, capitalX bool) (*ScriptContext, error) {
	count, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	lnamID, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	sc := &ScriptContext{LnamSectionID: int(lnamID), CapitalX: capitalX}
	for i := 0; i < int(count); i++ {
		entryID, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		sc.Entries = append(sc.Entries, int(entryID))
	}
	return sc, nil
}
