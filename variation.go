package xsb

// Legal range for cue and wave variation weights. Synthesized variations
// cover the full range.
const (
	WeightMinimum = 0
	WeightMaximum = 255
)

// variationDescriptor is the unpacked form of the 32-bit word prefixing
// both cue-level and wave-level variation tables:
//
//	bits 30-31  flags
//	bits 17-29  current index
//	bits 13-16  selection method
//	bits  0-12  variation count
type variationDescriptor struct {
	count        uint16
	currentIndex uint16
	selectMethod SelectMethod
	flags        uint8
}

func decodeVariationDescriptor(word uint32) variationDescriptor {
	return variationDescriptor{
		flags:        uint8(word >> 30),
		currentIndex: uint16((word >> 17) & 0x1FFF),
		selectMethod: SelectMethod((word >> 13) & 0x0F),
		count:        uint16(word & 0x1FFF),
	}
}

// orderWeights clamps both weights to the legal range independently,
// then swaps them if needed so that min <= max always holds.
func orderWeights(min, max uint16) (uint16, uint16) {
	min = clampUint16(min, WeightMinimum, WeightMaximum)
	max = clampUint16(max, WeightMinimum, WeightMaximum)

	if min > max {
		min, max = max, min
	}

	return min, max
}
