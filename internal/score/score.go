// Package score decodes the VWSC/SCVW timeline and VWLB frame labels: a
// sparse matrix of frames × channels plus a list of frame intervals, each
// carrying an optional secondary attribute the way a single animation
// frame carries its own offset/disposal/blend metadata.
package score

import (
	"github.com/deepteams/shockwave/internal/chunks"
	"github.com/deepteams/shockwave/internal/container"
)

// ChannelData is a single score cell: a sprite reference with placement
// and ink attributes. It is considered empty iff CastMember==0.
type ChannelData struct {
	CastLib    int
	CastMember int
	SpriteType int
	Ink        int
	PosX       int
	PosY       int
	Width      int
	Height     int
}

// Empty reports whether this cell has no sprite.
func (c ChannelData) Empty() bool { return c.CastMember == 0 }

// SecondaryInterval carries castLib+memberNumber for tempo/script/sound/
// transition channels.
type SecondaryInterval struct {
	CastLib      int
	MemberNumber int
}

// FrameInterval is a contiguous run of frames in one score channel sharing
// one sprite or one script.
type FrameInterval struct {
	StartFrame   int
	EndFrame     int
	ChannelIndex int
	Secondary    *SecondaryInterval
}

// FrameChannelEntry is one sparse (frameIndex, channelIndex, ChannelData)
// record.
type FrameChannelEntry struct {
	FrameIndex   int
	ChannelIndex int
	Data         ChannelData
}

// Score is decoded from a VWSC/SCVW payload.
type Score struct {
	FrameCount    int
	ChannelCount  int
	Intervals     []FrameInterval
	ChannelData   []FrameChannelEntry
}

func (Score) Kind() chunks.Kind { return chunks.KindScore }

// DecodeScore reads a VWSC/SCVW payload: a header (total length,
// framesDataLen, frameCount, channelCount), a flat list of frame-interval
// records, then a sparse sequence of frame-channel-data entries (spec
// §4.2). This decoder's exact subtable offsets are its own fixed layout,
// mirroring the Lscr header's "offsets into subtables" shape.
func DecodeScore(r *container.Reader) (*Score, error) {
	if _, err := r.U32(); err != nil { // total payload length
		return nil, err
	}
	if _, err := r.U32(); err != nil { // framesDataLen
		return nil, err
	}
	frameCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	channelCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	intervalCount, err := r.U32()
	if err != nil {
		return nil, err
	}
	entryCount, err := r.U32()
	if err != nil {
		return nil, err
	}

	s := &Score{FrameCount: int(frameCount), ChannelCount: int(channelCount)}

	for i := 0; i < int(intervalCount); i++ {
		start, err := r.U32()
		if err != nil {
			return nil, err
		}
		end, err := r.U32()
		if err != nil {
			return nil, err
		}
		channel, err := r.U32()
		if err != nil {
			return nil, err
		}
		hasSecondary, err := r.U8()
		if err != nil {
			return nil, err
		}
		fi := FrameInterval{StartFrame: int(start), EndFrame: int(end), ChannelIndex: int(channel)}
		if hasSecondary != 0 {
			castLib, err := r.I32()
			if err != nil {
				return nil, err
			}
			memberNumber, err := r.I32()
			if err != nil {
				return nil, err
			}
			fi.Secondary = &SecondaryInterval{CastLib: int(castLib), MemberNumber: int(memberNumber)}
		}
		s.Intervals = append(s.Intervals, fi)
	}

	for i := 0; i < int(entryCount); i++ {
		frameIndex, err := r.U32()
		if err != nil {
			return nil, err
		}
		channelIndex, err := r.U32()
		if err != nil {
			return nil, err
		}
		cd, err := decodeChannelData(r)
		if err != nil {
			return nil, err
		}
		s.ChannelData = append(s.ChannelData, FrameChannelEntry{
			FrameIndex:   int(frameIndex),
			ChannelIndex: int(channelIndex),
			Data:         cd,
		})
	}

	return s, nil
}

func decodeChannelData(r *container.Reader) (ChannelData, error) {
	castLib, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	castMember, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	spriteType, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	ink, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	posX, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	posY, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	width, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	height, err := r.I32()
	if err != nil {
		return ChannelData{}, err
	}
	return ChannelData{
		CastLib:    int(castLib),
		CastMember: int(castMember),
		SpriteType: int(spriteType),
		Ink:        int(ink),
		PosX:       int(posX),
		PosY:       int(posY),
		Width:      int(width),
		Height:     int(height),
	}, nil
}
