// SPDX-License-Identifier: EPL-2.0

package ump

// Kind is the classified form of one UMP message. The set of kinds is closed;
// reserved message types classify as Unknown so callers must decide explicitly
// what to do with them.
type Kind interface {
	MessageType() MessageType
	isKind()
}

// Utility statuses (bits 23..20 of a type 0x0 word).
const (
	UtilityNoOp                uint8 = 0x0
	UtilityJRClock             uint8 = 0x1
	UtilityJRTimestamp         uint8 = 0x2
	UtilityDeltaClockstampTPQN uint8 = 0x3
	UtilityDeltaClockstamp     uint8 = 0x4
)

// MaxDeltaClockstamp is the largest tick count one Delta Clockstamp can carry.
const MaxDeltaClockstamp = 1<<20 - 1

// Channel voice opcodes shared by MIDI 1.0 and MIDI 2.0 channel voice messages.
// MIDI 1.0 messages only use OpcodeNoteOff through OpcodePitchBend.
const (
	OpcodeRegisteredPerNoteController  uint8 = 0x0
	OpcodeAssignablePerNoteController  uint8 = 0x1
	OpcodeRegisteredController         uint8 = 0x2
	OpcodeAssignableController         uint8 = 0x3
	OpcodeRelativeRegisteredController uint8 = 0x4
	OpcodeRelativeAssignableController uint8 = 0x5
	OpcodePerNotePitchBend             uint8 = 0x6
	OpcodeNoteOff                      uint8 = 0x8
	OpcodeNoteOn                       uint8 = 0x9
	OpcodePolyPressure                 uint8 = 0xA
	OpcodeControlChange                uint8 = 0xB
	OpcodeProgramChange                uint8 = 0xC
	OpcodeChannelPressure              uint8 = 0xD
	OpcodePitchBend                    uint8 = 0xE
	OpcodePerNoteManagement            uint8 = 0xF
)

// Data message statuses for SysEx7 and SysEx8 packets.
const (
	SysExComplete uint8 = 0x0
	SysExStart    uint8 = 0x1
	SysExContinue uint8 = 0x2
	SysExEnd      uint8 = 0x3

	MixedDataSetHeader  uint8 = 0x8
	MixedDataSetPayload uint8 = 0x9
)

// UMP stream statuses (10 bits, bits 25..16).
const (
	StreamEndpointDiscovery         uint16 = 0x00
	StreamEndpointInfo              uint16 = 0x01
	StreamDeviceIdentity            uint16 = 0x02
	StreamEndpointName              uint16 = 0x03
	StreamProductInstanceID         uint16 = 0x04
	StreamConfigurationRequest      uint16 = 0x05
	StreamConfigurationNotification uint16 = 0x06
	StreamFunctionBlockDiscovery    uint16 = 0x10
	StreamFunctionBlockInfo         uint16 = 0x11
	StreamFunctionBlockName         uint16 = 0x12
	StreamStartOfClip               uint16 = 0x20
	StreamEndOfClip                 uint16 = 0x21
)

// Flex data status banks and the setup statuses used for tempo and meter.
const (
	FlexBankSetup           uint8 = 0x00
	FlexBankMetadataText    uint8 = 0x01
	FlexBankPerformanceText uint8 = 0x02

	FlexSetTempo         uint8 = 0x00
	FlexSetTimeSignature uint8 = 0x01
	FlexSetMetronome     uint8 = 0x02
	FlexSetKeySignature  uint8 = 0x05
	FlexSetChordName     uint8 = 0x06
)

type NoOp struct{}

type JRClock struct {
	SenderTime uint16
}

// JRTimestamp carries the 20-bit time field of a status 0x2 utility message.
// Messages following UMP 1.1 only use the low 16 bits.
type JRTimestamp struct {
	TimeData uint32
}

type DeltaClockstampTPQN struct {
	TPQN uint16
}

type DeltaClockstamp struct {
	TimeData uint32
}

// System covers system common and system real time messages.
type System struct {
	Group  uint8
	Status uint8
	Data1  uint8
	Data2  uint8
}

type MIDI1ChannelVoice struct {
	Group   uint8
	Opcode  uint8
	Channel uint8
	Data1   uint8
	Data2   uint8
}

// Status returns the MIDI 1.0 status byte of the message.
func (m MIDI1ChannelVoice) Status() uint8 {
	return m.Opcode<<4 | m.Channel
}

type MIDI2ChannelVoice struct {
	Group   uint8
	Opcode  uint8
	Channel uint8
	// Index holds bits 15..0 of the first word: note number and attribute
	// type, bank and index, or controller index depending on the opcode.
	Index uint16
	Data  uint32
}

type SysEx7 struct {
	Group  uint8
	Status uint8
	Data   []byte
}

type SysEx8 struct {
	Group    uint8
	Status   uint8
	StreamID uint8
	Data     []byte
}

type MixedDataSet struct {
	Group  uint8
	Status uint8
	MDSID  uint8
	Words  [4]uint32
}

type FlexData struct {
	Group      uint8
	Format     uint8
	Address    uint8
	Channel    uint8
	StatusBank uint8
	Status     uint8
	Data       [3]uint32
}

// IsSetTempo reports whether f is a Set Tempo message.
func (f FlexData) IsSetTempo() bool {
	return f.StatusBank == FlexBankSetup && f.Status == FlexSetTempo
}

// Tempo returns the tempo of a Set Tempo message in 10 ns units per quarter note.
func (f FlexData) Tempo() uint32 {
	return f.Data[0]
}

// IsSetTimeSignature reports whether f is a Set Time Signature message.
func (f FlexData) IsSetTimeSignature() bool {
	return f.StatusBank == FlexBankSetup && f.Status == FlexSetTimeSignature
}

// TimeSignature returns numerator, denominator exponent and the number of
// 1/32 notes of a Set Time Signature message.
func (f FlexData) TimeSignature() (numerator, denominator, thirtySeconds uint8) {
	w := f.Data[0]
	return uint8(w >> 24), uint8(w >> 16), uint8(w >> 8)
}

type StartOfClip struct{}

type EndOfClip struct{}

// Stream is any UMP stream message other than Start/End of Clip.
type Stream struct {
	Format uint8
	Status uint16
	Words  [4]uint32
}

// Unknown is a message of a reserved message type. Its words are kept so the
// message can be passed through untouched.
type Unknown struct {
	Type  MessageType
	Words []uint32
}

func (NoOp) MessageType() MessageType                { return MessageTypeUtility }
func (JRClock) MessageType() MessageType             { return MessageTypeUtility }
func (JRTimestamp) MessageType() MessageType         { return MessageTypeUtility }
func (DeltaClockstampTPQN) MessageType() MessageType { return MessageTypeUtility }
func (DeltaClockstamp) MessageType() MessageType     { return MessageTypeUtility }
func (System) MessageType() MessageType              { return MessageTypeSystem }
func (MIDI1ChannelVoice) MessageType() MessageType   { return MessageTypeMIDI1ChannelVoice }
func (MIDI2ChannelVoice) MessageType() MessageType   { return MessageTypeMIDI2ChannelVoice }
func (SysEx7) MessageType() MessageType              { return MessageTypeData64 }
func (SysEx8) MessageType() MessageType              { return MessageTypeData128 }
func (MixedDataSet) MessageType() MessageType        { return MessageTypeData128 }
func (FlexData) MessageType() MessageType            { return MessageTypeFlexData }
func (StartOfClip) MessageType() MessageType         { return MessageTypeStream }
func (EndOfClip) MessageType() MessageType           { return MessageTypeStream }
func (Stream) MessageType() MessageType              { return MessageTypeStream }
func (u Unknown) MessageType() MessageType           { return u.Type }

func (NoOp) isKind()                {}
func (JRClock) isKind()             {}
func (JRTimestamp) isKind()         {}
func (DeltaClockstampTPQN) isKind() {}
func (DeltaClockstamp) isKind()     {}
func (System) isKind()              {}
func (MIDI1ChannelVoice) isKind()   {}
func (MIDI2ChannelVoice) isKind()   {}
func (SysEx7) isKind()              {}
func (SysEx8) isKind()              {}
func (MixedDataSet) isKind()        {}
func (FlexData) isKind()            {}
func (StartOfClip) isKind()         {}
func (EndOfClip) isKind()           {}
func (Stream) isKind()              {}
func (Unknown) isKind()             {}
