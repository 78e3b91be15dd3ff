// SPDX-License-Identifier: EPL-2.0

package umpclip

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/ik5/umpclip/formats/clip"
	"github.com/ik5/umpclip/formats/smf"
	"github.com/ik5/umpclip/ump"
)

// Options configures the codecs returned by NewRegistry and the Convert
// functions. The zero value reads MIDI 1.0 channel voice messages on group 0,
// keeps the source resolution and rejects reserved message types.
type Options struct {
	// Protocol of the channel voice messages produced from an SMF.
	Protocol smf.Protocol

	// Group is the UMP group SMF events are addressed to.
	Group uint8

	// TPQN rescales the clip to this many ticks per quarter note before it
	// is written. 0 keeps the source resolution.
	TPQN uint16

	// AllowUnknown keeps reserved UMP message types in clip files.
	AllowUnknown bool
}

// NewRegistry returns a registry holding the clip codec under "clip" and the
// SMF codec under "mid", "midi" and "smf".
func NewRegistry(opts Options) *ump.Registry {
	reg := ump.NewRegistry()

	clipCodec := clip.Codec{AllowUnknown: opts.AllowUnknown}
	smfCodec := smf.Codec{Protocol: opts.Protocol, Group: opts.Group}

	reg.Register("clip", clipCodec)
	reg.Register("mid", smfCodec)
	reg.Register("midi", smfCodec)
	reg.Register("smf", smfCodec)

	return reg
}

// Transcode decodes r with dec and encodes the result to w with enc,
// rescaling to tpqn ticks per quarter note first when tpqn is not 0.
func Transcode(r io.Reader, dec ump.Decoder, w io.Writer, enc ump.Encoder, tpqn uint16) error {
	c, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if tpqn != 0 && c.Len() > 0 {
		src, _ := c.TPQN()
		if c, err = ump.Rescale(c, tpqn); err != nil {
			return fmt.Errorf("rescale: %w", err)
		}
		log.Debug().Uint16("from", src).Uint16("to", tpqn).Msg("umpclip: rescaled")
	}

	if err := enc.Encode(w, c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// ConvertSMFToClip reads a Standard MIDI File from r and writes it to w as a
// MIDI 2.0 clip file.
func ConvertSMFToClip(r io.Reader, w io.Writer, opts Options) error {
	dec := smf.Decoder{Protocol: opts.Protocol, Group: opts.Group}
	enc := clip.Encoder{AllowUnknown: opts.AllowUnknown}

	return Transcode(r, dec, w, enc, opts.TPQN)
}

// ConvertClipToSMF reads a MIDI 2.0 clip file from r and writes it to w as a
// single track Standard MIDI File.
func ConvertClipToSMF(r io.Reader, w io.Writer, opts Options) error {
	dec := clip.Decoder{AllowUnknown: opts.AllowUnknown}

	return Transcode(r, dec, w, smf.Encoder{}, opts.TPQN)
}
