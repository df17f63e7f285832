package xsb

// readCues loads the fixed-size cue table that starts directly after the
// file header. Cue names and explicit variation lists hang off each
// record through secondary absolute offsets.
func (d *decoder) readCues(bankFlags uint16, offset int, count uint16) error {
	d.bank.Cues = make([]Cue, count)

	for i := range d.bank.Cues {
		cue := &d.bank.Cues[i]

		d.r.seek(offset + i*cueRecordSize)
		d.r.skip(2) // unknown

		soundIndex := d.r.readUint16()
		offsetName := d.r.readUint32()
		offsetEntry := d.r.readUint32()
		// 8 reserved bytes close the record; they are never read.

		if err := d.r.Err(); err != nil {
			return err
		}

		// Banks compiled without cue names may still carry stale name
		// offsets; the flag wins.
		if bankFlags&bankFlagNoCueNames == 0 && offsetName != noOffset {
			d.r.seek(int(offsetName))

			cue.Name = d.r.readCString()
			d.bank.cueMap[cue.Name] = cue
		}

		switch {
		case offsetEntry != noOffset:
			d.readCueVariations(cue, offsetEntry)
		case soundIndex != noSoundIndex:
			// No explicit variation list, but a direct sound reference:
			// synthesize a single full-weight variation.
			cue.VariationSelectMethod = SelectMethodOrdered
			cue.Variations = []CueVariation{{
				SoundIndex: soundIndex,
				WeightMin:  WeightMinimum,
				WeightMax:  WeightMaximum,
			}}
		}

		if err := d.r.Err(); err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) readCueVariations(cue *Cue, offset uint32) {
	d.r.seek(int(offset))

	desc := decodeVariationDescriptor(d.r.readUint32())
	cue.VariationSelectMethod = desc.selectMethod

	cue.Variations = make([]CueVariation, desc.count)
	for i := range cue.Variations {
		variation := &cue.Variations[i]

		variation.SoundIndex = d.r.readUint16()
		d.r.skip(2) // unknown

		min := d.r.readUint16()
		max := d.r.readUint16()
		variation.WeightMin, variation.WeightMax = orderWeights(min, max)
	}
}
