// SPDX-License-Identifier: EPL-2.0

// Package smf translates between Standard MIDI Files and MIDI 2.0 clips.
//
// SMF parsing and writing is done by gitlab.com/gomidi/midi/v2/smf; this
// package maps SMF events onto UMP messages and back.
//
// # Reading
//
//	f, _ := os.Open("song.mid")
//	c, err := smf.ReadSMF(f)
//
// All tracks are merged into one timeline. The clip starts with the
// configuration header (the SMF resolution becomes the TPQN), then Start of
// Clip, then one Delta Clockstamp before every event that moves the clock,
// then End of Clip. Events are translated as follows:
//   - Channel voice: MIDI 1.0 channel voice UMP, or MIDI 2.0 channel voice
//     UMP with Min-Center-Max upscaling when Decoder.Protocol is
//     ProtocolMIDI2
//   - Set Tempo: flex data Set Tempo
//   - Time Signature: flex data Set Time Signature
//   - SysEx: SysEx7 packets
//
// Other meta events are skipped. Only metrical time is supported; SMPTE
// timed files fail with ErrUnsupportedTimeFormat.
//
// # Writing
//
//	err := smf.WriteSMF(out, c)
//
// The clip is validated with the clip file rules first and validation errors
// from the clip package are returned unchanged. The result is a single track
// SMF. MIDI 2.0 channel voice messages are scaled down; registered and
// assignable controllers become RPN and NRPN controller sequences and a
// program change with a valid bank is preceded by bank select. Messages
// without an SMF equivalent are skipped.
package smf
