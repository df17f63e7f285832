// Package xsb decodes binary XACT sound banks (XSB files), as found in
// Xbox-era titles, into a fully resolved in-memory description.
//
// A sound bank aggregates cues, sounds, tracks, timed events, and
// wave-bank references. The format packs several cross-referencing tables
// at byte offsets computed from header fields, uses bit-packed 32-bit
// descriptors for variation selection, and gives every timed event a
// variable-length payload whose size and interpretation depend on flag
// bits read earlier in the same record.
//
// DecodeSoundBank performs a single bounds-checked pass over the raw bytes
// and returns either a complete *SoundBank or a *FormatError; no partial
// result is ever produced. The returned bank is immutable and safe to
// share across goroutines.
//
// The package only describes a bank. The raw audio samples live in
// external wave banks referenced by name and index; mixing and playback
// scheduling are out of scope, as is writing the format.
package xsb
