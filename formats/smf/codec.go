// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"io"

	"github.com/ik5/umpclip/ump"
)

// Codec translates between Standard MIDI Files and clips. It implements
// ump.Codec.
type Codec struct {
	Protocol Protocol
	Group    uint8
}

var _ ump.Codec = Codec{}

func (c Codec) Decode(r io.Reader) (*ump.Clip, error) {
	return Decoder{Protocol: c.Protocol, Group: c.Group}.Decode(r)
}

func (c Codec) Encode(w io.Writer, clip *ump.Clip) error {
	return Encoder{}.Encode(w, clip)
}
