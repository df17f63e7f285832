package xsb

import (
	"fmt"
	"io"
)

// DecodeSoundBank decodes a binary XACT sound bank from data.
//
// The decode is a single synchronous pass with nested seeks; the buffer
// is only read, never retained. On any structural inconsistency the
// whole decode fails with a *FormatError and no partial bank is
// returned.
func DecodeSoundBank(data []byte) (*SoundBank, error) {
	d := &decoder{r: newByteReader(data)}

	bank, err := d.decode()
	if err != nil {
		return nil, err
	}

	return bank, nil
}

// ReadSoundBank reads all of r and decodes it as a sound bank.
func ReadSoundBank(r io.Reader) (*SoundBank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound bank data: %w", err)
	}

	return DecodeSoundBank(data)
}

// decoder holds the state of one decode pass.
type decoder struct {
	r    *byteReader
	bank *SoundBank

	offset3DParams uint32
}

// header is the fixed file header plus the two table positions computed
// from it. The cue table starts directly after the header; the sound
// table follows the cue table.
type header struct {
	offsetWaveBanks uint32
	offset3DParams  uint32

	flags uint16

	soundCount uint16
	cueCount   uint16
	bankCount  uint16

	name string

	offsetCues   int
	offsetSounds int
}

func (d *decoder) decode() (*SoundBank, error) {
	hdr, err := d.readHeader()
	if err != nil {
		return nil, err
	}

	d.offset3DParams = hdr.offset3DParams
	d.bank = &SoundBank{
		Name:    hdr.name,
		cueMap:  make(map[string]*Cue),
		bankMap: make(map[string]*WaveBank),
	}

	// The wave banks must be loaded first: sound and track decoding
	// resolves bank indices against them.
	if err := d.readWaveBanks(hdr.offsetWaveBanks, hdr.bankCount); err != nil {
		return nil, err
	}

	if err := d.readCues(hdr.flags, hdr.offsetCues, hdr.cueCount); err != nil {
		return nil, err
	}

	if err := d.readSounds(hdr.offsetSounds, hdr.soundCount); err != nil {
		return nil, err
	}

	return d.bank, nil
}

func (d *decoder) readHeader() (header, error) {
	var h header

	r := d.r

	tag := r.readTag()
	if err := r.Err(); err != nil {
		return h, err
	}

	if tag != magicTag {
		return h, formatErrorf(0, ErrNotSoundBank, "bad magic tag %q", tag[:])
	}

	version := r.readUint16()
	if err := r.Err(); err != nil {
		return h, err
	}

	if version != supportedVersion {
		return h, formatErrorf(4, ErrUnsupportedVersion, "sound bank version %d", version)
	}

	r.skip(2) // CRC, read but not verified

	h.offsetWaveBanks = r.readUint32()
	r.skip(4) // unused table offset
	h.offset3DParams = r.readUint32()
	r.skip(4) // unused table offset

	h.flags = r.readUint16()

	r.skip(2) // unused count
	h.soundCount = r.readUint16()
	h.cueCount = r.readUint16()
	r.skip(2) // unused count
	h.bankCount = r.readUint16()

	r.skip(4) // unknown

	h.name = r.readFixedString(bankNameSize)

	h.offsetCues = r.pos()
	h.offsetSounds = h.offsetCues + int(h.cueCount)*cueRecordSize

	return h, r.Err()
}

func (d *decoder) readWaveBanks(offset uint32, count uint16) error {
	d.bank.WaveBanks = make([]WaveBank, count)
	if count == 0 {
		return nil
	}

	d.r.seek(int(offset))

	for i := range d.bank.WaveBanks {
		bank := &d.bank.WaveBanks[i]

		bank.Name = d.r.readFixedString(waveBankNameSize)
		d.bank.bankMap[bank.Name] = bank
	}

	return d.r.Err()
}
