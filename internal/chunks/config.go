package chunks

import "github.com/deepteams/shockwave/internal/container"

// ConfigChunk is decoded from a DRCF or VWCF payload.
type ConfigChunk struct {
	StageWidth     int
	StageHeight    int
	Tempo          int
	DirectorVersion int
	ChannelCount   int
}

func (ConfigChunk) Kind() Kind { return KindConfig }

// DecodeConfig extracts the stage rect, tempo and Director version from a
// fixed-offset header. directorVersion may be 0 for the version-discovery
// pre-pass; the fields read here are stable across
// observed Director versions.
func DecodeConfig(r *container.Reader, id int, directorVersion int) (*ConfigChunk, error) {
	// Observed layout: u16 length, u16 fileVersion, then a rect (top, left,
	// bottom, right as i16), then padding, tempo near offset 0x22-0x25, and
	// a trailing directorVersion field. Real files vary; this reads the
	// known fields and tolerates short reads past them.
	if r.Len() < 12 {
		return nil, truncated(container.ErrTruncatedChunk)
	}
	if _, err := r.U16(); err != nil { // length
		return nil, truncated(err)
	}
	if _, err := r.U16(); err != nil { // fileVersion
		return nil, truncated(err)
	}
	top, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	left, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	bottom, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}
	right, err := r.I16()
	if err != nil {
		return nil, truncated(err)
	}

	cfg := &ConfigChunk{
		StageWidth:  int(right - left),
		StageHeight: int(bottom - top),
	}

	// Skip to the tempo/version tail if present; tolerate short files by
	// stopping at whatever remains; trailing bytes beyond the fixed
	// fields already read are not required.
	if r.Len() >= 2 {
		if v, err := r.I16(); err == nil {
			cfg.Tempo = int(v)
		}
	}
	if r.Len() >= 36 {
		if err := r.Skip(34); err == nil {
			if v, err := r.I16(); err == nil && v != 0 {
				cfg.DirectorVersion = int(v)
			}
		}
	}
	if cfg.DirectorVersion == 0 {
		cfg.DirectorVersion = directorVersion
	}
	cfg.ChannelCount = container.ChannelCountForVersion(cfg.DirectorVersion)
	return cfg, nil
}

