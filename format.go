package xsb

import (
	"errors"
	"fmt"
)

// Binary layout of an XSB file, version 11. All multi-byte integers are
// little-endian except the magic tag, which is a big-endian ASCII tag.
var magicTag = [4]byte{'S', 'D', 'B', 'K'}

const (
	supportedVersion = 11

	bankNameSize     = 16
	waveBankNameSize = 16

	cueRecordSize      = 20
	soundRecordSize    = 20
	params3DRecordSize = 40
	trackRecordSize    = 4

	maxRollOffCurvePoints = 10

	// Sentinels marking an absent offset or sound index.
	noOffset     uint32 = 0xFFFFFFFF
	noSoundIndex uint16 = 0xFFFF
)

// Bank-level flag bits.
const bankFlagNoCueNames = 0x0001

// Sound flag byte bits.
const (
	soundFlag3D        = 0x01
	soundFlagGainBoost = 0x02
	soundFlagEQ        = 0x04
	soundFlagTrivial   = 0x08
	soundFlagSimple    = 0x10
)

// Event flag byte bits. Pitch and volume events share a flag layout.
const (
	playEventMultipleVariations = 0x04

	fadeEventVariation = 0x04
	fadeEventRelative  = 0x10
	fadeEventFade      = 0x20

	lowPassEventRandom   = 0x04
	lowPassEventRelative = 0x10
	lowPassEventSweep    = 0x20

	markerEventRepeat = 0x20
)

var (
	// ErrNotSoundBank is returned when the magic tag doesn't match.
	ErrNotSoundBank = errors.New("not a binary XACT sound bank")
	// ErrUnsupportedVersion is returned for any version other than 11.
	ErrUnsupportedVersion = errors.New("unsupported sound bank version")
	// ErrUnexpectedEnd is returned when an offset or read resolves past
	// the end of the buffer.
	ErrUnexpectedEnd = errors.New("read past the end of the sound bank")
	// ErrBadTrackCount is returned for a trivial or simple sound whose
	// declared track count is not exactly one.
	ErrBadTrackCount = errors.New("trivial/simple sound with a track count other than one")
)

// FormatError reports a structural inconsistency found while decoding a
// sound bank. Offset is the buffer position the problem was detected at.
type FormatError struct {
	Offset int64
	Reason string

	err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("xsb: %s (offset 0x%X)", e.Reason, e.Offset)
}

// Unwrap exposes the matching sentinel error, so callers can test with
// errors.Is(err, ErrNotSoundBank) and friends.
func (e *FormatError) Unwrap() error { return e.err }

func formatErrorf(offset int, sentinel error, format string, args ...any) *FormatError {
	return &FormatError{
		Offset: int64(offset),
		Reason: fmt.Sprintf(format, args...),
		err:    sentinel,
	}
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func clampUint16(v, lo, hi uint16) uint16 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// pitchFromRaw converts a raw fixed-point pitch field to semitones.
func pitchFromRaw(v int16) float32 {
	return clampFloat32(float32(v)*12/4096, -24, 24)
}

// volumeFromRaw converts a raw centi-decibel volume field to decibels.
func volumeFromRaw(v int16) float32 {
	return clampFloat32(float32(v)/100, -64, 64)
}
