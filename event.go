package xsb

// EventType is the wire tag identifying an event's kind.
type EventType uint8

const (
	EventTypePlay        EventType = 0x00
	EventTypePlayComplex EventType = 0x01
	EventTypePitch       EventType = 0x04
	EventTypeVolume      EventType = 0x05
	EventTypeLowPass     EventType = 0x07
	EventTypeLFOMulti    EventType = 0x09
	EventTypeLoop        EventType = 0x0C
	EventTypeMarker      EventType = 0x0F
)

func (t EventType) String() string {
	switch t {
	case EventTypePlay:
		return "play"
	case EventTypePlayComplex:
		return "play-complex"
	case EventTypePitch:
		return "pitch"
	case EventTypeVolume:
		return "volume"
	case EventTypeLowPass:
		return "low-pass"
	case EventTypeLFOMulti:
		return "lfo-multi"
	case EventTypeLoop:
		return "loop"
	case EventTypeMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Event is a timestamped instruction on a track's timeline. Each
// concrete variant carries only the fields meaningful to its kind.
type Event interface {
	// Type returns the wire tag the event was decoded from.
	Type() EventType
	// Time returns the event's 24-bit timestamp.
	Time() uint32
}

// EventHeader carries the fields shared by every event record.
type EventHeader struct {
	Tag       EventType
	Timestamp uint32
	// RawFlags preserves the record's flag byte; the per-variant bools
	// are decoded from it.
	RawFlags uint8
}

func (h EventHeader) Type() EventType { return h.Tag }

func (h EventHeader) Time() uint32 { return h.Timestamp }

// PlayEvent starts playback of the track's waves. It covers both the
// plain and the complex play tags; the extended payload fields are zero
// when the record doesn't carry them.
type PlayEvent struct {
	EventHeader

	PitchVariationMin float32 // semitones, [-24, 24]
	PitchVariationMax float32

	VolumeVariationMin float32 // dB, [-64, 64]
	VolumeVariationMax float32

	Delay uint16
}

// PitchEvent ramps or sets the playback pitch.
type PitchEvent struct {
	EventHeader

	Relative  bool
	Fade      bool
	Variation bool

	FadeStepCount uint16

	PitchStart   float32 // semitones, [-24, 24]
	PitchEnd     float32
	FadeDuration uint32
}

// VolumeEvent ramps or sets the playback volume.
type VolumeEvent struct {
	EventHeader

	Relative  bool
	Fade      bool
	Variation bool

	FadeStepCount uint16

	VolumeStart  float32 // dB, [-64, 64]
	VolumeEnd    float32
	FadeDuration uint32
}

// LowPassEvent sweeps or sets a low-pass filter.
type LowPassEvent struct {
	EventHeader

	Relative    bool
	Random      bool
	SweepCutOff bool

	SweepStepCount uint16

	CutOffStart   uint16 // [0, 8192]
	CutOffEnd     uint16
	SweepDuration uint32

	ResonanceStart float32 // [0, 32]
	ResonanceEnd   float32
}

// LFOMultiEvent modulates pitch, filter, and amplitude with one LFO.
type LFOMultiEvent struct {
	EventHeader

	Delta     float32
	Pitch     float32
	Filter    float32
	Amplitude float32
}

// LoopEvent repeats a span of the track.
type LoopEvent struct {
	EventHeader

	Count uint16
}

// MarkerEvent emits a user marker during playback.
type MarkerEvent struct {
	EventHeader

	Repeat bool

	RepeatCount    uint16
	Value          uint32
	RepeatDuration uint32
}

// UnknownEvent preserves an unrecognized event tag. The declared-size
// skip keeps the surrounding stream synchronized, so unknown kinds are
// carried through rather than rejected.
type UnknownEvent struct {
	EventHeader
}
