// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"io"

	"github.com/ik5/umpclip/ump"
)

// Codec reads and writes clip files with one set of options. It implements
// ump.Codec.
type Codec struct {
	Profiles     ProfileValidator
	AllowUnknown bool
}

var _ ump.Codec = Codec{}

func (c Codec) Decode(r io.Reader) (*ump.Clip, error) {
	return Decoder{Profiles: c.Profiles, AllowUnknown: c.AllowUnknown}.Decode(r)
}

func (c Codec) Encode(w io.Writer, clip *ump.Clip) error {
	return Encoder{Profiles: c.Profiles, AllowUnknown: c.AllowUnknown}.Encode(w, clip)
}
