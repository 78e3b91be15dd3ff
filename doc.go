// SPDX-License-Identifier: EPL-2.0

// Package umpclip reads, writes and converts MIDI 2.0 Clip Files.
//
// A clip file (".clip") holds one MIDI clip as a stream of Universal MIDI
// Packet words behind an 8-byte "SMF2CLIP" header and a configuration header
// declaring the clip's timing. This package ties the format packages
// together:
//   - ump: words, message classification, the Clip value and tick rescaling
//   - formats/clip: the clip file container
//   - formats/smf: translation to and from Standard MIDI Files
//
// # Quick Start
//
// Convert a Standard MIDI File to a clip file:
//
//	in, _ := os.Open("song.mid")
//	out, _ := os.Create("song.clip")
//	err := umpclip.ConvertSMFToClip(in, out, umpclip.Options{})
//
// And back:
//
//	err := umpclip.ConvertClipToSMF(in, out, umpclip.Options{})
//
// # Options
//
// Options selects the channel voice protocol produced from SMF input, the UMP
// group, an optional target resolution and whether reserved message types
// are kept:
//
//	opts := umpclip.Options{
//	    Protocol: smf.ProtocolMIDI2,
//	    TPQN:     960,
//	}
//
// # Format Registry
//
// NewRegistry returns the codecs keyed by file extension, so a tool can pick
// them from file names:
//
//	reg := umpclip.NewRegistry(opts)
//	dec, ok := reg.Get(filepath.Ext(inPath))
//	enc, ok := reg.Get(filepath.Ext(outPath))
//	err := umpclip.Transcode(in, dec, out, enc, opts.TPQN)
//
// # Logging
//
// The codecs log through the global zerolog logger at debug level only.
// SetLogLevel adjusts the global level:
//
//	umpclip.SetLogLevel("debug")
//
// See the individual subpackages for more detailed documentation.
package umpclip
