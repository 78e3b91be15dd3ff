// SPDX-License-Identifier: EPL-2.0

package ump

import "fmt"

// MessageType is the 4-bit message type carried in bits 31..28 of the first
// word of every UMP message.
type MessageType uint8

const (
	MessageTypeUtility           MessageType = 0x0
	MessageTypeSystem            MessageType = 0x1
	MessageTypeMIDI1ChannelVoice MessageType = 0x2
	MessageTypeData64            MessageType = 0x3
	MessageTypeMIDI2ChannelVoice MessageType = 0x4
	MessageTypeData128           MessageType = 0x5
	MessageTypeFlexData          MessageType = 0xD
	MessageTypeStream            MessageType = 0xF
)

// word counts indexed by message type
var wordCounts = [16]int{
	1, 1, 1, 2, // utility, system, MIDI 1.0 channel voice, data 64
	2, 4, 1, 1, // MIDI 2.0 channel voice, data 128, reserved, reserved
	2, 2, 2, 3, // reserved
	3, 4, 4, 4, // reserved, flex data, reserved, stream
}

// TypeOf returns the message type of the message starting with word.
func TypeOf(word uint32) MessageType {
	return MessageType(word >> 28)
}

// WordCount returns the number of words in the message starting with word.
func WordCount(word uint32) int {
	return TypeOf(word).WordCount()
}

// WordCount returns the length in words of messages of type t.
func (t MessageType) WordCount() int {
	return wordCounts[t&0xF]
}

// Reserved reports whether t is not assigned by the UMP format.
func (t MessageType) Reserved() bool {
	switch t {
	case MessageTypeUtility, MessageTypeSystem, MessageTypeMIDI1ChannelVoice,
		MessageTypeData64, MessageTypeMIDI2ChannelVoice, MessageTypeData128,
		MessageTypeFlexData, MessageTypeStream:
		return false
	}

	return true
}

func (t MessageType) String() string {
	switch t {
	case MessageTypeUtility:
		return "utility"
	case MessageTypeSystem:
		return "system"
	case MessageTypeMIDI1ChannelVoice:
		return "MIDI 1.0 channel voice"
	case MessageTypeData64:
		return "data 64"
	case MessageTypeMIDI2ChannelVoice:
		return "MIDI 2.0 channel voice"
	case MessageTypeData128:
		return "data 128"
	case MessageTypeFlexData:
		return "flex data"
	case MessageTypeStream:
		return "UMP stream"
	}

	return fmt.Sprintf("reserved(%#x)", uint8(t))
}
