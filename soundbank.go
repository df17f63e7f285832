package xsb

// SelectMethod is the policy a playback engine uses to pick among the
// variations of a cue or track. The raw 4-bit field is preserved for
// values this package has no name for.
type SelectMethod uint8

const (
	SelectMethodRandomNoRepeats SelectMethod = iota
	SelectMethodOrdered
	SelectMethodShuffle
	SelectMethodParameter
	SelectMethodRandom
	SelectMethodOrderedFromRandom
)

func (m SelectMethod) String() string {
	switch m {
	case SelectMethodRandomNoRepeats:
		return "random-no-repeats"
	case SelectMethodOrdered:
		return "ordered"
	case SelectMethodShuffle:
		return "shuffle"
	case SelectMethodParameter:
		return "parameter"
	case SelectMethodRandom:
		return "random"
	case SelectMethodOrderedFromRandom:
		return "ordered-from-random"
	default:
		return "unknown"
	}
}

// SoundBank is the root aggregate decoded from an XSB file. Once
// returned by DecodeSoundBank it is never mutated and may be shared
// freely across goroutines.
type SoundBank struct {
	// Name is the bank's fixed-width display name from the file header.
	Name string

	WaveBanks []WaveBank
	Cues      []Cue
	Sounds    []Sound

	cueMap  map[string]*Cue
	bankMap map[string]*WaveBank
}

// Cue returns the cue registered under name, or nil.
func (b *SoundBank) Cue(name string) *Cue {
	if b == nil {
		return nil
	}

	return b.cueMap[name]
}

// WaveBank returns the wave bank registered under name, or nil.
func (b *SoundBank) WaveBank(name string) *WaveBank {
	if b == nil {
		return nil
	}

	return b.bankMap[name]
}

// WaveBank names an external container of raw audio samples. Sounds and
// tracks reference waves by bank name and index; the sample data itself
// never appears in an XSB file.
type WaveBank struct {
	Name string
}

// Cue is a named or indexed entry point selecting among one or more
// sound variations.
type Cue struct {
	// Name is empty for unnamed cues and for banks compiled without
	// cue names.
	Name string

	VariationSelectMethod SelectMethod
	Variations            []CueVariation
}

// CueVariation is one weighted choice of sound within a cue.
type CueVariation struct {
	SoundIndex uint16

	WeightMin uint16
	WeightMax uint16
}

// Sound describes the playback parameters of one entry in the sound
// table, plus the tracks it plays.
type Sound struct {
	Volume float32 // dB
	Pitch  float32 // semitones, [-24, 24]

	Layer         uint8
	CategoryIndex uint8
	Priority      uint8

	GainBoost bool

	ParametricEQ     bool
	ParametricEQGain float32 // [-1, 4]
	ParametricEQQ    float32
	ParametricEQFreq uint16 // Hz, [30, 8000]

	Is3D bool
	// Params3D is nil unless Is3D is set.
	Params3D *Sound3DParams

	Tracks []Track
}

// Sound3DParams holds the spatialization block of a 3D sound.
type Sound3DParams struct {
	VolumeLFE   float32 // dB
	VolumeI3DL2 float32 // dB, [-64, 0]

	ConeInsideAngle   uint16 // degrees, [0, 360]
	ConeOutsideAngle  uint16 // degrees, [0, 360]
	ConeOutsideVolume float32 // dB, [-64, 0]

	DistanceMin float32
	DistanceMax float32

	DistanceFactor float32
	RollOffFactor  float32
	DopplerFactor  float32

	Mode uint8

	// RollOffCurve holds at most 10 normalized samples.
	RollOffCurve []float32
}

// Track is an ordered timeline of events plus the wave variations it
// may play.
type Track struct {
	VariationSelectMethod SelectMethod

	Waves  []WaveVariation
	Events []Event
}

// WaveVariation is one weighted choice of wave within a track.
type WaveVariation struct {
	// Index selects a wave inside the owning wave bank.
	Index uint16
	// Bank is the owning wave bank's name; empty when the packed bank
	// index doesn't resolve to a loaded wave bank.
	Bank string

	WeightMin uint16
	WeightMax uint16
}
