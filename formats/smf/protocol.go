// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"fmt"
	"strings"
)

// Protocol selects the channel voice message type produced when reading an
// SMF.
type Protocol int

const (
	// ProtocolMIDI1 keeps channel voice messages as MIDI 1.0 UMP (type 0x2).
	ProtocolMIDI1 Protocol = iota
	// ProtocolMIDI2 translates them to MIDI 2.0 UMP (type 0x4).
	ProtocolMIDI2
)

func (p Protocol) String() string {
	switch p {
	case ProtocolMIDI1:
		return "midi1"
	case ProtocolMIDI2:
		return "midi2"
	}

	return fmt.Sprintf("Protocol(%d)", int(p))
}

// ParseProtocol accepts "midi1" and "midi2", case-insensitively. An empty
// string selects ProtocolMIDI1.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "midi1":
		return ProtocolMIDI1, nil
	case "midi2":
		return ProtocolMIDI2, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
}
