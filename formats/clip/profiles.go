// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/umpclip/ump"
)

// ProfileValidator decides whether a message found before the initial delta
// clockstamp is an acceptable profile declaration.
type ProfileValidator interface {
	ValidateProfile(kind ump.Kind) error
}

// ProfileFunc adapts a function to the ProfileValidator interface.
type ProfileFunc func(kind ump.Kind) error

func (f ProfileFunc) ValidateProfile(kind ump.Kind) error {
	return f(kind)
}

// MIDI-CI profile configuration messages are universal non-real-time SysEx
// messages with sub-ID#1 0x0D and sub-ID#2 in 0x20..0x2F.
const (
	universalNonRealTime = 0x7E
	subIDMIDICI          = 0x0D
	firstProfileSubID    = 0x20
	lastProfileSubID     = 0x2F
)

// MIDICIProfiles accepts SysEx7 packets carrying MIDI-CI profile
// configuration messages. Continuation packets are accepted as they are; the
// first packet of a message must identify itself as a profile message when
// it is long enough to do so.
type MIDICIProfiles struct{}

func (MIDICIProfiles) ValidateProfile(kind ump.Kind) error {
	m, ok := kind.(ump.SysEx7)
	if !ok {
		return fmt.Errorf("%s message is not a profile declaration", kind.MessageType())
	}

	if m.Status != ump.SysExComplete && m.Status != ump.SysExStart {
		return nil
	}

	if len(m.Data) < 4 {
		return nil
	}

	if m.Data[0] != universalNonRealTime || m.Data[2] != subIDMIDICI ||
		m.Data[3] < firstProfileSubID || m.Data[3] > lastProfileSubID {
		return fmt.Errorf("SysEx7 packet % X is not a MIDI-CI profile message", m.Data[:4])
	}

	return nil
}

func profileValidator(v ProfileValidator) ProfileValidator {
	if v == nil {
		return MIDICIProfiles{}
	}

	return v
}
