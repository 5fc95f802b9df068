// Package shockwave is a read-only parser and decoder for Macromedia/Adobe
// Director "Shockwave" container files (.dir/.dxr/.cst/.cxt uncompressed and
// .dcr/.cct Afterburner-compressed).
//
// Load parses a byte buffer (or, via LoadPath, a file) into a DirectorFile:
// the container's resource directory, every chunk's typed decode, and the
// cross-cut shortcuts (Config, KeyTable, CastList, Casts, CastMembers,
// Scripts, Score, FrameLabels, Palettes) a consumer needs to enumerate a
// movie's cast and reconstruct its timeline. Asset decoding — bitmap RLE
// expansion, palette resolution, sound/WAV synthesis, Lingo disassembly —
// is exposed as on-demand queries rather than performed eagerly.
//
// A DirectorFile is immutable after construction and safe for concurrent
// read-only use, including concurrent calls to DecodeBitmap from multiple
// goroutines.
package shockwave
