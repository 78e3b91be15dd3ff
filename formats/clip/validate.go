// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/umpclip/ump"
)

// checker holds the ordering rules shared by the decoder and the encoder.
// offsets are byte offsets in the clip file.
type checker struct {
	profiles     ProfileValidator
	allowUnknown bool

	ended bool
}

func newChecker(profiles ProfileValidator, allowUnknown bool) *checker {
	return &checker{
		profiles:     profileValidator(profiles),
		allowUnknown: allowUnknown,
	}
}

func (c *checker) classify(offset int64, msg []uint32) (ump.Kind, error) {
	kind, err := ump.Classify(msg)
	if err != nil {
		return nil, &FormatError{Offset: offset, Word: msg[0], Err: err}
	}

	return kind, nil
}

func (c *checker) checkProfile(offset int64, msg []uint32) error {
	kind, err := c.classify(offset, msg)
	if err != nil {
		return err
	}

	if err := c.profiles.ValidateProfile(kind); err != nil {
		return &ParseError{Offset: offset, Reason: err.Error()}
	}

	return nil
}

// checkInitialClockstamp accepts a Delta Clockstamp, or a status 0x2
// timestamp as written by UMP 1.0 era tools, with zero time data.
func (c *checker) checkInitialClockstamp(offset int64, word uint32) error {
	kind, err := c.classify(offset, []uint32{word})
	if err != nil {
		return err
	}

	var timeData uint32
	switch m := kind.(type) {
	case ump.DeltaClockstamp:
		timeData = m.TimeData
	case ump.JRTimestamp:
		timeData = m.TimeData
	default:
		return &FormatError{
			Offset: offset,
			Word:   word,
			Err:    fmt.Errorf("%w: expected delta clockstamp, got %T", ump.ErrUnexpectedStatus, kind),
		}
	}

	if timeData != 0 {
		return &ParseError{Offset: offset, Reason: ReasonNonZeroClockstamp}
	}

	return nil
}

func (c *checker) checkTPQN(offset int64, word uint32) (uint16, error) {
	kind, err := c.classify(offset, []uint32{word})
	if err != nil {
		return 0, err
	}

	m, ok := kind.(ump.DeltaClockstampTPQN)
	if !ok {
		return 0, &FormatError{
			Offset: offset,
			Word:   word,
			Err:    fmt.Errorf("%w: expected delta clockstamp TPQN, got %T", ump.ErrUnexpectedStatus, kind),
		}
	}

	return m.TPQN, nil
}

func (c *checker) checkEvent(offset int64, msg []uint32) error {
	if c.ended {
		return &ParseError{Offset: offset, Reason: ReasonAfterEndOfClip}
	}

	kind, err := c.classify(offset, msg)
	if err != nil {
		return err
	}

	switch kind.(type) {
	case ump.Unknown:
		if !c.allowUnknown {
			return &FormatError{
				Offset: offset,
				Word:   msg[0],
				Err:    fmt.Errorf("%w: %s", ump.ErrReservedMessageType, kind.MessageType()),
			}
		}
	case ump.EndOfClip:
		c.ended = true
	}

	return nil
}
