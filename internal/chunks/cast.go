package chunks

import "github.com/deepteams/shockwave/internal/container"

// Cast is an ordered sequence of member-chunk resource ids, 1-based slot
// numbering; 0 marks an unoccupied slot.
type Cast struct {
	MemberIDs []int
}

func (Cast) Kind() Kind { return KindCast }

// Slot returns the resource id occupying 1-based slot n, or 0 if empty or
// out of range.
func (c *Cast) Slot(n int) int {
	if n < 1 || n > len(c.MemberIDs) {
		return 0
	}
	return c.MemberIDs[n-1]
}

// DecodeCast reads a CASp payload: a member count followed by that many
// u32 member-chunk ids.
func DecodeCast(r *container.Reader, id int, directorVersion int) (*Cast, error) {
	count, err := r.U32()
	if err != nil {
		return nil, truncated(err)
	}
	c := &Cast{MemberIDs: make([]int, 0, count)}
	for i := 0; i < int(count); i++ {
		memberID, err := r.U32()
		if err != nil {
			return nil, truncated(err)
		}
		c.MemberIDs = append(c.MemberIDs, int(memberID))
	}
	return c, nil
}
