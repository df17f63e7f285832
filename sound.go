package xsb

// readSounds loads the fixed-size sound table. Each record packs volume,
// pitch, EQ, and flag fields into narrow integers, optionally references
// a block in the separate 3D-parameter table, and ends in the
// indices-or-offset word whose meaning the track decoder resolves.
func (d *decoder) readSounds(offset int, count uint16) error {
	d.bank.Sounds = make([]Sound, count)

	for i := range d.bank.Sounds {
		d.r.seek(offset + i*soundRecordSize)

		if err := d.readSound(&d.bank.Sounds[i]); err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) readSound(sound *Sound) error {
	r := d.r

	indicesOrOffset := r.readUint32()

	packedVolume := r.readUint16()
	sound.Volume = -float32(packedVolume&0x1FF) * 0.16

	sound.Pitch = pitchFromRaw(r.readInt16())

	trackCount := r.readByte()

	sound.Layer = r.readByte()
	sound.CategoryIndex = r.readByte()

	flags := r.readByte()

	index3D := r.readUint16()

	sound.Priority = r.readByte()

	volume3D := r.readByte()

	sound.ParametricEQ = flags&soundFlagEQ != 0
	sound.ParametricEQGain = clampFloat32(float32(r.readInt16())/8192, -1, 4)

	eq := r.readUint16()
	sound.ParametricEQQ = 1 / float32(int(1)<<(eq&7))
	sound.ParametricEQFreq = clampUint16((eq>>3)&0x1FFF, 30, 8000)

	sound.GainBoost = flags&soundFlagGainBoost != 0
	sound.Is3D = flags&soundFlag3D != 0

	if err := r.Err(); err != nil {
		return err
	}

	if sound.Is3D {
		if err := d.read3DParams(sound, packedVolume, volume3D, index3D); err != nil {
			return err
		}
	}

	return d.readTracks(sound, indicesOrOffset, trackCount, flags)
}

// read3DParams decodes a 40-byte spatialization block from the
// 3D-parameter table. The two volume fields come from the sound record
// itself, not the block.
func (d *decoder) read3DParams(sound *Sound, packedVolume uint16, volume3D uint8, index uint16) error {
	r := d.r

	params := &Sound3DParams{
		VolumeLFE:   -float32((packedVolume>>9)&0x7F) * 0.50,
		VolumeI3DL2: clampFloat32(-float32(volume3D)*2.56, -64, 0),
	}

	r.seek(int(d.offset3DParams) + int(index)*params3DRecordSize)

	params.ConeInsideAngle = clampUint16(r.readUint16(), 0, 360)
	params.ConeOutsideAngle = clampUint16(r.readUint16(), 0, 360)
	params.ConeOutsideVolume = clampFloat32(float32(r.readInt16())/100, -64, 0)

	r.skip(2) // unknown

	params.DistanceMin = r.readFloat32()
	params.DistanceMax = r.readFloat32()

	params.DistanceFactor = r.readFloat32()
	params.RollOffFactor = r.readFloat32()
	params.DopplerFactor = r.readFloat32()

	params.Mode = r.readByte()

	// The curve length byte wins over the block size, but never past the
	// documented maximum.
	points := int(r.readByte())
	if points > maxRollOffCurvePoints {
		points = maxRollOffCurvePoints
	}

	params.RollOffCurve = make([]float32, points)
	for i := range params.RollOffCurve {
		params.RollOffCurve[i] = float32(r.readByte()) / 255
	}

	sound.Params3D = params

	return r.Err()
}
