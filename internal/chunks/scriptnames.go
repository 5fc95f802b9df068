package chunks

import (
	"strconv"

	"github.com/deepteams/shockwave/internal/container"
)

// ScriptNames is the symbol table for handler names, identifiers and symbol
// literals; multiple may exist in one file, each keyed by its own
// resource id.
type ScriptNames struct {
	Names []string
}

func (ScriptNames) Kind() Kind { return KindScriptNames }

// Name looks up a symbol by index, returning "<unknown:N>" rather than
// failing for an out-of-range index.
func (n *ScriptNames) Name(index int) string {
	if index < 0 || index >= len(n.Names) {
		return "<unknown:" + strconv.Itoa(index) + ">"
	}
	return n.Names[index]
}

// NonEmpty reports whether this table holds any names, used to select the
// default ScriptNames among several.
func (n *ScriptNames) NonEmpty() bool { return len(n.Names) > 0 }

// DecodeScriptNames reads an Lnam payload: a count followed by that many
// pascal-encoded strings.
func DecodeScriptNames(r *container.Reader, id int, directorVersion int) (*ScriptNames, error) {
	count, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	sn := &ScriptNames{Names: make([]string, 0, count)}
	for i := 0; i < int(count); i++ {
		name, err := r.PascalString(1)
		if err != nil {
			return nil, truncated(err)
		}
		sn.Names = append(sn.Names, name)
	}
	return sn, nil
}

