// SPDX-License-Identifier: EPL-2.0

package ump

import "fmt"

// Classify decodes the message starting at words[0]. Only the first
// WordCount(words[0]) words are inspected; extra words are ignored so a caller
// may pass the remainder of a stream.
//
// Reserved message types are not an error: they classify as Unknown and the
// caller decides whether to keep them. Every other failure means the message
// is malformed and must not be guessed at.
func Classify(words []uint32) (Kind, error) {
	if len(words) == 0 {
		return nil, ErrEmptyMessage
	}

	mt := TypeOf(words[0])
	n := mt.WordCount()
	if len(words) < n {
		return nil, fmt.Errorf("%w: %s message needs %d words, got %d", ErrTruncatedMessage, mt, n, len(words))
	}
	words = words[:n]

	switch mt {
	case MessageTypeUtility:
		return classifyUtility(words[0])
	case MessageTypeSystem:
		return classifySystem(words[0])
	case MessageTypeMIDI1ChannelVoice:
		return classifyMIDI1(words[0])
	case MessageTypeData64:
		return classifySysEx7(words)
	case MessageTypeMIDI2ChannelVoice:
		return classifyMIDI2(words)
	case MessageTypeData128:
		return classifyData128(words)
	case MessageTypeFlexData:
		return classifyFlexData(words)
	case MessageTypeStream:
		return classifyStream(words)
	}

	return Unknown{Type: mt, Words: append([]uint32(nil), words...)}, nil
}

func group(w uint32) uint8 { return uint8(w>>24) & 0xF }

func classifyUtility(w uint32) (Kind, error) {
	status := uint8(w>>20) & 0xF

	switch status {
	case UtilityNoOp:
		return NoOp{}, nil
	case UtilityJRClock:
		return JRClock{SenderTime: uint16(w)}, nil
	case UtilityJRTimestamp:
		return JRTimestamp{TimeData: w & MaxDeltaClockstamp}, nil
	case UtilityDeltaClockstampTPQN:
		return DeltaClockstampTPQN{TPQN: uint16(w)}, nil
	case UtilityDeltaClockstamp:
		return DeltaClockstamp{TimeData: w & MaxDeltaClockstamp}, nil
	}

	return nil, fmt.Errorf("%w: utility status %#x", ErrUnexpectedStatus, status)
}

func classifySystem(w uint32) (Kind, error) {
	m := System{
		Group:  group(w),
		Status: uint8(w >> 16),
		Data1:  uint8(w >> 8),
		Data2:  uint8(w),
	}

	switch m.Status {
	case 0xF1, 0xF2, 0xF3, 0xF6, 0xF8, 0xFA, 0xFB, 0xFC, 0xFE, 0xFF:
	default:
		return nil, fmt.Errorf("%w: system status %#x", ErrUnexpectedStatus, m.Status)
	}

	if m.Data1&0x80 != 0 || m.Data2&0x80 != 0 {
		return nil, fmt.Errorf("%w: system %#x", ErrDataOutOfRange, m.Status)
	}

	return m, nil
}

func classifyMIDI1(w uint32) (Kind, error) {
	m := MIDI1ChannelVoice{
		Group:   group(w),
		Opcode:  uint8(w>>20) & 0xF,
		Channel: uint8(w>>16) & 0xF,
		Data1:   uint8(w >> 8),
		Data2:   uint8(w),
	}

	if m.Opcode < OpcodeNoteOff || m.Opcode > OpcodePitchBend {
		return nil, fmt.Errorf("%w: MIDI 1.0 channel voice opcode %#x", ErrUnexpectedStatus, m.Opcode)
	}

	if m.Data1&0x80 != 0 || m.Data2&0x80 != 0 {
		return nil, fmt.Errorf("%w: MIDI 1.0 status %#x", ErrDataOutOfRange, m.Status())
	}

	return m, nil
}

func classifySysEx7(words []uint32) (Kind, error) {
	status := uint8(words[0]>>20) & 0xF
	if status > SysExEnd {
		return nil, fmt.Errorf("%w: data 64 status %#x", ErrUnexpectedStatus, status)
	}

	count := int(words[0]>>16) & 0xF
	if count > 6 {
		return nil, fmt.Errorf("%w: SysEx7 packet with %d bytes", ErrInvalidByteCount, count)
	}

	all := [6]byte{
		byte(words[0] >> 8), byte(words[0]),
		byte(words[1] >> 24), byte(words[1] >> 16), byte(words[1] >> 8), byte(words[1]),
	}

	data := make([]byte, count)
	for i := range count {
		if all[i]&0x80 != 0 {
			return nil, fmt.Errorf("%w: SysEx7 byte %d is %#x", ErrDataOutOfRange, i, all[i])
		}
		data[i] = all[i]
	}

	return SysEx7{Group: group(words[0]), Status: status, Data: data}, nil
}

func classifyMIDI2(words []uint32) (Kind, error) {
	m := MIDI2ChannelVoice{
		Group:   group(words[0]),
		Opcode:  uint8(words[0]>>20) & 0xF,
		Channel: uint8(words[0]>>16) & 0xF,
		Index:   uint16(words[0]),
		Data:    words[1],
	}

	if m.Opcode == 0x7 {
		return nil, fmt.Errorf("%w: MIDI 2.0 channel voice opcode %#x", ErrUnexpectedStatus, m.Opcode)
	}

	switch m.Opcode {
	case OpcodeNoteOff, OpcodeNoteOn, OpcodePolyPressure, OpcodePerNotePitchBend,
		OpcodeRegisteredPerNoteController, OpcodeAssignablePerNoteController:
		if m.Index&0x8000 != 0 {
			return nil, fmt.Errorf("%w: note number %d", ErrDataOutOfRange, m.Index>>8)
		}
	case OpcodeRegisteredController, OpcodeAssignableController,
		OpcodeRelativeRegisteredController, OpcodeRelativeAssignableController:
		if m.Index&0x8080 != 0 {
			return nil, fmt.Errorf("%w: controller bank/index %#04x", ErrDataOutOfRange, m.Index)
		}
	case OpcodeControlChange:
		if m.Index&0x8000 != 0 {
			return nil, fmt.Errorf("%w: controller %d", ErrDataOutOfRange, m.Index>>8)
		}
	case OpcodeProgramChange:
		if m.Data&0x80000000 != 0 || m.Data&0x8080 != 0 {
			return nil, fmt.Errorf("%w: program change %#08x", ErrDataOutOfRange, m.Data)
		}
	}

	return m, nil
}

func classifyData128(words []uint32) (Kind, error) {
	status := uint8(words[0]>>20) & 0xF
	g := group(words[0])

	switch {
	case status <= SysExEnd:
		count := int(words[0]>>16) & 0xF
		if count == 0 || count > 14 {
			return nil, fmt.Errorf("%w: SysEx8 packet with %d bytes", ErrInvalidByteCount, count)
		}

		var all [14]byte
		all[0] = byte(words[0] >> 8)
		all[1] = byte(words[0])
		for i := 1; i < 4; i++ {
			w := words[i]
			all[2+(i-1)*4] = byte(w >> 24)
			all[3+(i-1)*4] = byte(w >> 16)
			all[4+(i-1)*4] = byte(w >> 8)
			all[5+(i-1)*4] = byte(w)
		}

		// the stream ID is counted as the first byte
		return SysEx8{
			Group:    g,
			Status:   status,
			StreamID: all[0],
			Data:     append([]byte(nil), all[1:count]...),
		}, nil
	case status == MixedDataSetHeader || status == MixedDataSetPayload:
		return MixedDataSet{
			Group:  g,
			Status: status,
			MDSID:  uint8(words[0]>>16) & 0xF,
			Words:  [4]uint32{words[0], words[1], words[2], words[3]},
		}, nil
	}

	return nil, fmt.Errorf("%w: data 128 status %#x", ErrUnexpectedStatus, status)
}

func classifyFlexData(words []uint32) (Kind, error) {
	w := words[0]
	m := FlexData{
		Group:      group(w),
		Format:     uint8(w>>22) & 0x3,
		Address:    uint8(w>>20) & 0x3,
		Channel:    uint8(w>>16) & 0xF,
		StatusBank: uint8(w >> 8),
		Status:     uint8(w),
		Data:       [3]uint32{words[1], words[2], words[3]},
	}

	switch m.StatusBank {
	case FlexBankSetup, FlexBankMetadataText, FlexBankPerformanceText:
	default:
		return nil, fmt.Errorf("%w: flex data status bank %#x", ErrUnexpectedStatus, m.StatusBank)
	}

	if m.Address > 1 {
		return nil, fmt.Errorf("%w: flex data address %d", ErrDataOutOfRange, m.Address)
	}

	return m, nil
}

func classifyStream(words []uint32) (Kind, error) {
	format := uint8(words[0]>>26) & 0x3
	status := uint16(words[0]>>16) & 0x3FF

	switch status {
	case StreamStartOfClip:
		if format != 0 {
			return nil, fmt.Errorf("%w: start of clip with format %d", ErrUnexpectedStatus, format)
		}
		return StartOfClip{}, nil
	case StreamEndOfClip:
		if format != 0 {
			return nil, fmt.Errorf("%w: end of clip with format %d", ErrUnexpectedStatus, format)
		}
		return EndOfClip{}, nil
	case StreamEndpointDiscovery, StreamEndpointInfo, StreamDeviceIdentity,
		StreamEndpointName, StreamProductInstanceID, StreamConfigurationRequest,
		StreamConfigurationNotification, StreamFunctionBlockDiscovery,
		StreamFunctionBlockInfo, StreamFunctionBlockName:
		return Stream{
			Format: format,
			Status: status,
			Words:  [4]uint32{words[0], words[1], words[2], words[3]},
		}, nil
	}

	return nil, fmt.Errorf("%w: UMP stream status %#x", ErrUnexpectedStatus, status)
}
