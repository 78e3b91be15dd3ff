// SPDX-License-Identifier: EPL-2.0

// Package clip reads and writes MIDI 2.0 Clip Files.
//
// A clip file is a flat stream of big-endian UMP words:
//
//	offset    size   field
//	0         8      magic "SMF2CLIP"
//	8         4*k    profile declarations (optional)
//	8+4k      4      Delta Clockstamp, time data 0
//	12+4k     4      Delta Clockstamp Ticks Per Quarter Note
//	16+4k     rest   UMP messages
//
// # Reading
//
//	f, _ := os.Open("song.clip")
//	c, err := clip.ReadClip(f)
//	if err != nil {
//	    // Handle error
//	}
//	tpqn, _ := c.TPQN()
//
// A file holding nothing but the magic header decodes to an empty clip.
// Decoder exposes the options:
//
//	d := clip.Decoder{
//	    Profiles:     myValidator, // nil means MIDICIProfiles
//	    AllowUnknown: true,        // keep reserved message types
//	}
//	c, err := d.Decode(f)
//
// # Writing
//
// Writing is symmetric with reading: WriteClip emits the magic header, the
// profile declarations, the clockstamp pair and the event stream. The clip
// is validated first, nothing is written when validation fails.
//
//	err := clip.WriteClip(out, c)
//
// # Profile Declarations
//
// Every message before the first utility message is a profile declaration.
// A ProfileValidator decides which messages are acceptable; the default
// MIDICIProfiles accepts SysEx7 packets carrying MIDI-CI profile
// configuration messages. Declarations are kept apart from the clip words and
// are available through Clip.Profiles.
//
// # Error Handling
//
// The package reports four kinds of failure:
//   - ErrIncorrectHeader: missing, short or wrong magic header
//   - *ParseError: a violation of the file structure, such as a non-zero
//     initial clockstamp or data after End of Clip
//   - *FormatError: a message that fails UMP field validation; it wraps a ump
//     sentinel such as ump.ErrUnexpectedStatus
//   - *IOError: the reader or writer failed, or the file ended inside the
//     configuration header or inside a message
//
// All of them are returned as they are and can be inspected with errors.Is
// and errors.As:
//
//	var perr *clip.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println("bad clip at byte", perr.Offset)
//	}
package clip
