// SPDX-License-Identifier: EPL-2.0

package utils

// ScaleUp converts value from a srcBits wide field to a dstBits wide field
// using the MIDI 2.0 Min-Center-Max rule: the minimum, center and maximum
// source values map exactly onto the minimum, center and maximum destination
// values, and values above the center repeat their low bits into the new
// low-order bits.
func ScaleUp(value uint32, srcBits, dstBits uint) uint32 {
	if srcBits == 0 || dstBits <= srcBits {
		return value
	}

	scaleBits := dstBits - srcBits
	shifted := value << scaleBits

	center := uint32(1) << (srcBits - 1)
	if value <= center {
		return shifted
	}

	repeatBits := srcBits - 1
	repeatMask := uint32(1)<<repeatBits - 1
	repeat := value & repeatMask
	if scaleBits > repeatBits {
		repeat <<= scaleBits - repeatBits
	} else {
		repeat >>= repeatBits - scaleBits
	}

	for repeat != 0 {
		shifted |= repeat
		repeat >>= repeatBits
	}

	return shifted
}

// ScaleDown drops the low-order bits of a dstBits wide value.
func ScaleDown(value uint32, srcBits, dstBits uint) uint32 {
	if dstBits >= srcBits {
		return value
	}

	return value >> (srcBits - dstBits)
}

// Upscale7To16 converts a MIDI 1.0 velocity to a MIDI 2.0 velocity.
func Upscale7To16(v uint8) uint16 {
	return uint16(ScaleUp(uint32(v&0x7F), 7, 16))
}

// Upscale7To32 converts a MIDI 1.0 data byte to a MIDI 2.0 32-bit value.
func Upscale7To32(v uint8) uint32 {
	return ScaleUp(uint32(v&0x7F), 7, 32)
}

// Upscale14To32 converts a MIDI 1.0 pitch bend value to 32 bits.
func Upscale14To32(v uint16) uint32 {
	return ScaleUp(uint32(v&0x3FFF), 14, 32)
}

func Downscale16To7(v uint16) uint8 {
	return uint8(ScaleDown(uint32(v), 16, 7))
}

func Downscale32To7(v uint32) uint8 {
	return uint8(ScaleDown(v, 32, 7))
}

func Downscale32To14(v uint32) uint16 {
	return uint16(ScaleDown(v, 32, 14))
}
