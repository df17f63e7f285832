package xsb

// readTracks resolves a sound's indices-or-offset word and populates its
// tracks. Trivial sounds encode a single packed wave reference directly
// in the word; simple sounds point it at a wave-variation table; complex
// sounds point it at a table of per-track event-list descriptors.
func (d *decoder) readTracks(sound *Sound, indicesOrOffset uint32, count uint8, flags uint8) error {
	if flags&(soundFlagTrivial|soundFlagSimple) != 0 && count != 1 {
		return formatErrorf(d.r.pos(), ErrBadTrackCount,
			"trivial/simple sound with track count %d", count)
	}

	sound.Tracks = make([]Track, count)

	switch {
	case flags&soundFlagTrivial != 0:
		// One track, one wave, one synthesized play event.
		track := &sound.Tracks[0]
		track.VariationSelectMethod = SelectMethodOrdered

		d.addWaveVariation(track, indicesOrOffset, WeightMinimum, WeightMaximum)
		track.Events = []Event{&PlayEvent{EventHeader: EventHeader{Tag: EventTypePlay}}}

		return nil

	case flags&soundFlagSimple != 0:
		// One track, multiple waves, one synthesized play event.
		track := &sound.Tracks[0]

		d.readWaveVariations(track, indicesOrOffset)
		track.Events = []Event{&PlayEvent{EventHeader: EventHeader{Tag: EventTypePlay}}}

		return d.r.Err()
	}

	for i := range sound.Tracks {
		d.r.seek(int(indicesOrOffset) + i*trackRecordSize)

		if err := d.readComplexTrack(&sound.Tracks[i]); err != nil {
			return err
		}
	}

	return nil
}

// trackState carries the per-track decode state the event variants feed:
// the track under construction and the deferred wave-variation table
// offset a play event may capture.
type trackState struct {
	track *Track

	wavesOffset uint32
}

// readComplexTrack decodes one track-pointer record and the event list
// it references. A deferred wave-variation offset captured by a play
// event is resolved only after the whole event list is scanned.
func (d *decoder) readComplexTrack(track *Track) error {
	r := d.r

	trackData := r.readUint32()

	eventCount := int(trackData & 0xFF)
	eventsOffset := trackData >> 8

	if err := r.Err(); err != nil {
		return err
	}

	state := &trackState{track: track, wavesOffset: noOffset}

	r.seek(int(eventsOffset))

	for i := 0; i < eventCount; i++ {
		if err := d.readEvent(state); err != nil {
			return err
		}
	}

	if state.wavesOffset != noOffset {
		d.readWaveVariations(track, state.wavesOffset)
	}

	return r.Err()
}

func (d *decoder) readWaveVariations(track *Track, offset uint32) {
	d.r.seek(int(offset))

	desc := decodeVariationDescriptor(d.r.readUint32())
	track.VariationSelectMethod = desc.selectMethod

	for i := 0; i < int(desc.count); i++ {
		indices := d.r.readUint32()

		min := d.r.readUint16()
		max := d.r.readUint16()

		d.addWaveVariation(track, indices, min, max)
	}
}

// addWaveVariation appends a wave variation from a packed
// (bank-index:16, sound-index:16) word. A bank index beyond the loaded
// wave banks leaves the bank name empty.
func (d *decoder) addWaveVariation(track *Track, indices uint32, weightMin, weightMax uint16) {
	bankIndex := indices >> 16

	wave := WaveVariation{Index: uint16(indices & 0xFFFF)}
	if int(bankIndex) < len(d.bank.WaveBanks) {
		wave.Bank = d.bank.WaveBanks[bankIndex].Name
	}

	wave.WeightMin, wave.WeightMax = orderWeights(weightMin, weightMax)

	track.Waves = append(track.Waves, wave)
}

// eventFrame bounds the decode of a single event: the shared header
// fields and the absolute end of the declared payload region. Variants
// must never read past end; whatever they leave unconsumed is skipped.
type eventFrame struct {
	header EventHeader
	end    int
	state  *trackState
}

// remaining returns how many declared payload bytes are left.
func (f *eventFrame) remaining(r *byteReader) int {
	return f.end - r.pos()
}

// eventDecoders dispatches event payload decoding by type tag. Tags
// without an entry fall through to decodeUnknownEvent.
var eventDecoders = map[EventType]func(*decoder, *eventFrame) Event{
	EventTypePlay:        (*decoder).decodePlayEvent,
	EventTypePlayComplex: (*decoder).decodePlayEvent,
	EventTypePitch:       (*decoder).decodePitchEvent,
	EventTypeVolume:      (*decoder).decodeVolumeEvent,
	EventTypeLowPass:     (*decoder).decodeLowPassEvent,
	EventTypeLFOMulti:    (*decoder).decodeLFOMultiEvent,
	EventTypeLoop:        (*decoder).decodeLoopEvent,
	EventTypeMarker:      (*decoder).decodeMarkerEvent,
}

// readEvent decodes one event record. The stream always ends up exactly
// the declared parameter size past the flag byte, so a mis-modeled or
// truncated payload cannot desynchronize the events that follow.
func (d *decoder) readEvent(state *trackState) error {
	r := d.r

	tag := EventType(r.readByte())
	timestamp := r.readUint24()
	paramSize := int(r.readByte())
	flags := r.readByte()

	if err := r.Err(); err != nil {
		return err
	}

	frame := &eventFrame{
		header: EventHeader{Tag: tag, Timestamp: timestamp, RawFlags: flags},
		end:    r.pos() + paramSize,
		state:  state,
	}

	if frame.end > r.size() {
		return formatErrorf(r.pos(), ErrUnexpectedEnd,
			"event payload of %d bytes exceeds sound bank", paramSize)
	}

	decode := eventDecoders[tag]
	if decode == nil {
		decode = (*decoder).decodeUnknownEvent
	}

	state.track.Events = append(state.track.Events, decode(d, frame))

	// Declared size always wins.
	r.skip(frame.remaining(r))

	return r.Err()
}

func (d *decoder) decodePlayEvent(f *eventFrame) Event {
	r := d.r
	event := &PlayEvent{EventHeader: f.header}

	if f.remaining(r) >= 2 {
		r.skip(2) // unused
	}

	if f.remaining(r) < 4 {
		return event
	}

	indicesOrOffset := r.readUint32()

	if f.remaining(r) >= 12 {
		event.PitchVariationMin = pitchFromRaw(r.readInt16())
		event.PitchVariationMax = pitchFromRaw(r.readInt16())

		event.VolumeVariationMin = volumeFromRaw(r.readInt16())
		event.VolumeVariationMax = volumeFromRaw(r.readInt16())

		event.Delay = r.readUint16()

		r.skip(2) // unknown
	}

	if f.header.RawFlags&playEventMultipleVariations == 0 {
		// Direct wave reference.
		f.state.track.VariationSelectMethod = SelectMethodOrdered
		d.addWaveVariation(f.state.track, indicesOrOffset, WeightMinimum, WeightMaximum)
	} else {
		// Wave-variation table, resolved after the event list.
		f.state.wavesOffset = indicesOrOffset
	}

	return event
}

func (d *decoder) decodePitchEvent(f *eventFrame) Event {
	r := d.r
	event := &PitchEvent{EventHeader: f.header}

	event.Relative = f.header.RawFlags&fadeEventRelative != 0
	event.Fade = f.header.RawFlags&fadeEventFade != 0
	event.Variation = f.header.RawFlags&fadeEventVariation != 0

	if f.remaining(r) >= 2 {
		event.FadeStepCount = r.readUint16()
	}

	if f.remaining(r) >= 8 {
		event.PitchStart = pitchFromRaw(r.readInt16())
		event.PitchEnd = pitchFromRaw(r.readInt16())

		r.skip(1) // unknown

		event.FadeDuration = r.readUint24()
	}

	return event
}

func (d *decoder) decodeVolumeEvent(f *eventFrame) Event {
	r := d.r
	event := &VolumeEvent{EventHeader: f.header}

	event.Relative = f.header.RawFlags&fadeEventRelative != 0
	event.Fade = f.header.RawFlags&fadeEventFade != 0
	event.Variation = f.header.RawFlags&fadeEventVariation != 0

	if f.remaining(r) >= 2 {
		event.FadeStepCount = r.readUint16()
	}

	if f.remaining(r) >= 8 {
		event.VolumeStart = volumeFromRaw(r.readInt16())
		event.VolumeEnd = volumeFromRaw(r.readInt16())

		r.skip(1) // unknown

		event.FadeDuration = r.readUint24()
	}

	return event
}

func (d *decoder) decodeLowPassEvent(f *eventFrame) Event {
	r := d.r
	event := &LowPassEvent{EventHeader: f.header}

	event.Relative = f.header.RawFlags&lowPassEventRelative != 0
	event.Random = f.header.RawFlags&lowPassEventRandom != 0
	event.SweepCutOff = f.header.RawFlags&lowPassEventSweep != 0

	if f.remaining(r) >= 2 {
		event.SweepStepCount = r.readUint16()
	}

	if f.remaining(r) >= 12 {
		event.CutOffStart = clampUint16(r.readUint16(), 0, 8192)
		event.CutOffEnd = clampUint16(r.readUint16(), 0, 8192)

		r.skip(1) // unknown

		event.SweepDuration = r.readUint24()

		event.ResonanceStart = clampFloat32(float32(r.readInt16())/100, 0, 32)
		event.ResonanceEnd = clampFloat32(float32(r.readInt16())/100, 0, 32)
	}

	return event
}

func (d *decoder) decodeLFOMultiEvent(f *eventFrame) Event {
	r := d.r
	event := &LFOMultiEvent{EventHeader: f.header}

	if f.remaining(r) >= 2 {
		r.skip(2) // unused
	}

	if f.remaining(r) >= 6 {
		r.skip(2) // unknown

		event.Delta = float32(r.readByte()) * 23.4 / 255
		event.Pitch = float32(r.readInt8()) * 12 / 128
		event.Filter = float32(r.readInt8()) * 96 / 128
		event.Amplitude = float32(r.readInt8()) * 16 / 128
	}

	return event
}

func (d *decoder) decodeLoopEvent(f *eventFrame) Event {
	event := &LoopEvent{EventHeader: f.header}

	if f.remaining(d.r) >= 2 {
		event.Count = d.r.readUint16()
	}

	return event
}

func (d *decoder) decodeMarkerEvent(f *eventFrame) Event {
	r := d.r
	event := &MarkerEvent{EventHeader: f.header}

	event.Repeat = f.header.RawFlags&markerEventRepeat != 0

	if f.remaining(r) >= 2 {
		event.RepeatCount = r.readUint16()
	}

	if f.remaining(r) >= 8 {
		event.Value = r.readUint32()

		r.skip(1) // unknown

		event.RepeatDuration = r.readUint24()
	}

	return event
}

func (d *decoder) decodeUnknownEvent(f *eventFrame) Event {
	if f.remaining(d.r) >= 2 {
		d.r.skip(2) // unknown
	}

	return &UnknownEvent{EventHeader: f.header}
}
