package score

import (
	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
)

// Label is one (frameNum, label) entry from a VWLB chunk.
type Label struct {
	FrameNum int
	Text     string
}

// FrameLabels is the sorted list of named frames.
type FrameLabels struct {
	Labels []Label
}

func (FrameLabels) Kind() chunks.Kind { return chunks.KindFrameLabels }

// DecodeFrameLabels reads a VWLB payload: count, count (frameNum, offset)
// records, then a trailing string pool. Entries are assembled
// in ascending frameNum order; real files already store them sorted, but
// the decoder re-sorts defensively to satisfy the "sorted list" invariant.
func DecodeFrameLabels(r *container.Reader) (*FrameLabels, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	type rec struct {
		frame  uint16
		offset uint16
	}
	recs := make([]rec, count)
	for i := range recs {
		f, err := r.U16()
		if err != nil {
			return nil, err
		}
		o, err := r.U16()
		if err != nil {
			return nil, err
		}
		recs[i] = rec{f, o}
	}
	poolStart := r.Pos()
	pool := r.Remaining()

	fl := &FrameLabels{}
	for i, rc := range recs {
		start := int(rc.offset)
		end := len(pool)
		if i+1 < len(recs) {
			end = int(recs[i+1].offset)
		}
		if start < 0 || end > len(pool) || start > end {
			continue
		}
		fl.Labels = append(fl.Labels, Label{FrameNum: int(rc.frame), Text: string(pool[start:end])})
	}
	_ = poolStart

	for i := 1; i < len(fl.Labels); i++ {
		for j := i; j > 0 && fl.Labels[j-1].FrameNum > fl.Labels[j].FrameNum; j-- {
			fl.Labels[j-1], fl.Labels[j] = fl.Labels[j], fl.Labels[j-1]
		}
	}
	return fl, nil
}
