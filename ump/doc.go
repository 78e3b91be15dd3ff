// SPDX-License-Identifier: EPL-2.0

// Package ump provides the Universal MIDI Packet primitives used by the clip
// and SMF formats.
//
// This package contains the building blocks shared by every container:
//   - Big-endian word reading and writing
//   - Message types and message lengths
//   - The message classifier
//   - Message builders
//   - The Clip value and its Assembler
//   - Codec interfaces and a format registry
//   - Tick resolution rescaling
//
// # Words
//
// UMP is a stream of 32-bit words stored most significant byte first:
//
//	words, err := ump.ReadWords(r, 2)
//	err = ump.WriteWords(w, words...)
//
// The word functions know nothing about what a word means.
//
// # Message Types
//
// The top four bits of the first word of a message select its type, and the
// type decides how many words the message spans:
//
//	n := ump.WordCount(words[0]) // 1 to 4
//
// # Classification
//
// Classify turns the words of one message into a typed Kind:
//
//	kind, err := ump.Classify(words)
//	switch m := kind.(type) {
//	case ump.DeltaClockstamp:
//	    fmt.Println("ticks:", m.TimeData)
//	case ump.MIDI1ChannelVoice:
//	    fmt.Println("status:", m.Status())
//	case ump.Unknown:
//	    // reserved message type, words in m.Words
//	}
//
// A failed classification means the message is malformed; the error wraps
// one of ErrTruncatedMessage, ErrUnexpectedStatus, ErrDataOutOfRange or
// ErrInvalidByteCount.
//
// # Clips
//
// A Clip is an immutable ordered list of words. Decoders build one with an
// Assembler:
//
//	var a ump.Assembler
//	a.Append(ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(480))
//	c := a.Clip()
//
//	for msg, err := range c.Messages() {
//	    // one message per iteration
//	}
//
// # Format Registry
//
// The registry maps format keys to codecs:
//
//	registry := ump.NewRegistry()
//	registry.Register("clip", clip.Codec{})
//	codec, _ := registry.Get(".clip")
package ump
