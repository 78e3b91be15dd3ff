// SPDX-License-Identifier: EPL-2.0

package ump

// NewNoOp returns a NOOP utility word.
func NewNoOp() uint32 {
	return 0
}

// NewDeltaClockstamp returns a Delta Clockstamp word. ticks is truncated to
// 20 bits; use SplitDeltaClockstamps for larger values.
func NewDeltaClockstamp(ticks uint32) uint32 {
	return uint32(UtilityDeltaClockstamp)<<20 | ticks&MaxDeltaClockstamp
}

// NewDeltaClockstampTPQN returns a Delta Clockstamp Ticks Per Quarter Note word.
func NewDeltaClockstampTPQN(tpqn uint16) uint32 {
	return uint32(UtilityDeltaClockstampTPQN)<<20 | uint32(tpqn)
}

// SplitDeltaClockstamps returns the Delta Clockstamp words needed to advance
// the clock by ticks. Zero ticks yields no words.
func SplitDeltaClockstamps(ticks uint64) []uint32 {
	var words []uint32
	for ticks > 0 {
		step := min(ticks, MaxDeltaClockstamp)
		words = append(words, NewDeltaClockstamp(uint32(step)))
		ticks -= step
	}

	return words
}

// NewSystem returns a system common or real time word.
func NewSystem(group, status, data1, data2 uint8) uint32 {
	return uint32(MessageTypeSystem)<<28 |
		uint32(group&0xF)<<24 |
		uint32(status)<<16 |
		uint32(data1&0x7F)<<8 |
		uint32(data2&0x7F)
}

// NewMIDI1ChannelVoice packs a MIDI 1.0 channel voice message. status is the
// MIDI 1.0 status byte (opcode and channel).
func NewMIDI1ChannelVoice(group, status, data1, data2 uint8) uint32 {
	return uint32(MessageTypeMIDI1ChannelVoice)<<28 |
		uint32(group&0xF)<<24 |
		uint32(status)<<16 |
		uint32(data1&0x7F)<<8 |
		uint32(data2&0x7F)
}

// NewMIDI2ChannelVoice packs a MIDI 2.0 channel voice message.
func NewMIDI2ChannelVoice(group, opcode, channel uint8, index uint16, data uint32) []uint32 {
	return []uint32{
		uint32(MessageTypeMIDI2ChannelVoice)<<28 |
			uint32(group&0xF)<<24 |
			uint32(opcode&0xF)<<20 |
			uint32(channel&0xF)<<16 |
			uint32(index),
		data,
	}
}

// NewSysEx7 packs up to six SysEx payload bytes into one data 64 packet.
// Extra bytes are ignored; SplitSysEx7 produces a full packet sequence.
func NewSysEx7(group, status uint8, data []byte) []uint32 {
	n := min(len(data), 6)

	var all [6]byte
	copy(all[:], data[:n])

	return []uint32{
		uint32(MessageTypeData64)<<28 |
			uint32(group&0xF)<<24 |
			uint32(status&0xF)<<20 |
			uint32(n)<<16 |
			uint32(all[0])<<8 |
			uint32(all[1]),
		uint32(all[2])<<24 | uint32(all[3])<<16 | uint32(all[4])<<8 | uint32(all[5]),
	}
}

// SplitSysEx7 returns the data 64 packets carrying a SysEx payload (without
// the F0/F7 framing bytes).
func SplitSysEx7(group uint8, data []byte) []uint32 {
	if len(data) <= 6 {
		return NewSysEx7(group, SysExComplete, data)
	}

	var words []uint32
	for i := 0; i < len(data); i += 6 {
		end := min(i+6, len(data))

		status := SysExContinue
		switch {
		case i == 0:
			status = SysExStart
		case end == len(data):
			status = SysExEnd
		}

		words = append(words, NewSysEx7(group, status, data[i:end])...)
	}

	return words
}

// NewSetTempo returns a flex data Set Tempo message. tempo is the number of
// 10 ns units per quarter note.
func NewSetTempo(group uint8, tempo uint32) []uint32 {
	return []uint32{
		newFlexHeader(group, FlexBankSetup, FlexSetTempo),
		tempo,
		0,
		0,
	}
}

// NewSetTimeSignature returns a flex data Set Time Signature message.
// denominator is a power of two exponent, as in Standard MIDI Files.
func NewSetTimeSignature(group, numerator, denominator, thirtySeconds uint8) []uint32 {
	return []uint32{
		newFlexHeader(group, FlexBankSetup, FlexSetTimeSignature),
		uint32(numerator)<<24 | uint32(denominator)<<16 | uint32(thirtySeconds)<<8,
		0,
		0,
	}
}

// complete format, group addressed
func newFlexHeader(group, bank, status uint8) uint32 {
	return uint32(MessageTypeFlexData)<<28 |
		uint32(group&0xF)<<24 |
		1<<20 |
		uint32(bank)<<8 |
		uint32(status)
}

// NewStartOfClip returns the UMP stream Start of Clip message.
func NewStartOfClip() []uint32 {
	return []uint32{uint32(MessageTypeStream)<<28 | uint32(StreamStartOfClip)<<16, 0, 0, 0}
}

// NewEndOfClip returns the UMP stream End of Clip message.
func NewEndOfClip() []uint32 {
	return []uint32{uint32(MessageTypeStream)<<28 | uint32(StreamEndOfClip)<<16, 0, 0, 0}
}
