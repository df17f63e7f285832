package xsb

import "math"

// Helpers to build in-memory sound bank fixtures byte by byte.

const testHeaderSize = 56

// bankFixture describes the fixed file header of a test bank.
type bankFixture struct {
	flags uint16

	soundCount uint16
	cueCount   uint16
	bankCount  uint16

	offsetWaveBanks uint32
	offset3DParams  uint32

	name string
}

func (f bankFixture) header() []byte {
	b := make([]byte, 0, testHeaderSize)

	b = append(b, 'S', 'D', 'B', 'K')
	b = appendUint16(b, 11) // version
	b = appendUint16(b, 0)  // CRC
	b = appendUint32(b, f.offsetWaveBanks)
	b = appendUint32(b, 0) // unused table offset
	b = appendUint32(b, f.offset3DParams)
	b = appendUint32(b, 0) // unused table offset
	b = appendUint16(b, f.flags)
	b = appendUint16(b, 0) // unused count
	b = appendUint16(b, f.soundCount)
	b = appendUint16(b, f.cueCount)
	b = appendUint16(b, 0) // unused count
	b = appendUint16(b, f.bankCount)
	b = appendUint32(b, 0) // unknown
	b = appendFixedString(b, f.name, 16)

	return b
}

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func appendInt16(b []byte, v int16) []byte {
	return appendUint16(b, uint16(v))
}

func appendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16))
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendFloat32(b []byte, v float32) []byte {
	return appendUint32(b, math.Float32bits(v))
}

func appendFixedString(b []byte, s string, size int) []byte {
	for i := 0; i < size; i++ {
		if i < len(s) {
			b = append(b, s[i])
		} else {
			b = append(b, 0)
		}
	}

	return b
}

func appendZeros(b []byte, n int) []byte {
	return append(b, make([]byte, n)...)
}

// appendCueRecord appends a 20-byte cue table record.
func appendCueRecord(b []byte, soundIndex uint16, offsetName, offsetEntry uint32) []byte {
	b = appendUint16(b, 0) // unknown
	b = appendUint16(b, soundIndex)
	b = appendUint32(b, offsetName)
	b = appendUint32(b, offsetEntry)
	b = appendZeros(b, 8) // reserved

	return b
}

// soundRecord mirrors the 20-byte sound table record layout.
type soundRecord struct {
	indicesOrOffset uint32
	volume          uint16
	pitch           int16
	trackCount      uint8
	layer           uint8
	category        uint8
	flags           uint8
	index3D         uint16
	priority        uint8
	volume3D        uint8
	eqGain          int16
	eq              uint16
}

func appendSoundRecord(b []byte, s soundRecord) []byte {
	b = appendUint32(b, s.indicesOrOffset)
	b = appendUint16(b, s.volume)
	b = appendInt16(b, s.pitch)
	b = append(b, s.trackCount, s.layer, s.category, s.flags)
	b = appendUint16(b, s.index3D)
	b = append(b, s.priority, s.volume3D)
	b = appendInt16(b, s.eqGain)
	b = appendUint16(b, s.eq)

	return b
}

// appendEventHeader appends the 6 fixed bytes every event record starts
// with; the declared payload follows.
func appendEventHeader(b []byte, typ uint8, timestamp uint32, paramSize, flags uint8) []byte {
	b = append(b, typ)
	b = appendUint24(b, timestamp)
	b = append(b, paramSize, flags)

	return b
}

// variationWord packs a 32-bit variation table descriptor.
func variationWord(flags uint8, current uint16, method SelectMethod, count uint16) uint32 {
	return uint32(flags)<<30 |
		uint32(current&0x1FFF)<<17 |
		uint32(method&0x0F)<<13 |
		uint32(count&0x1FFF)
}

// buildTrivialBankData builds the smallest interesting bank: one wave
// bank, one cue with a direct sound reference, one trivial sound.
//
// Layout: header [0,56), cue table [56,76), sound table [76,96),
// wave-bank names [96,112).
func buildTrivialBankData() []byte {
	b := bankFixture{
		soundCount:      1,
		cueCount:        1,
		bankCount:       1,
		offsetWaveBanks: 96,
		name:            "GLOBAL",
	}.header()

	b = appendCueRecord(b, 0, noOffset, noOffset)

	b = appendSoundRecord(b, soundRecord{
		indicesOrOffset: 7, // bank 0, wave 7
		trackCount:      1,
		flags:           soundFlagTrivial,
	})

	b = appendFixedString(b, "MUSIC_BANK", waveBankNameSize)

	return b
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
