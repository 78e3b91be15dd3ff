// SPDX-License-Identifier: EPL-2.0

package smf

import "errors"

var (
	ErrUnsupportedTimeFormat = errors.New("only metrical SMF time format is supported")
	ErrEmptyClip             = errors.New("clip has no configuration header to write")
	ErrUnknownProtocol       = errors.New("unknown MIDI protocol")
)
