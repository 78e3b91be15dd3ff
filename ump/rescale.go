// SPDX-License-Identifier: EPL-2.0

package ump

import "fmt"

// Rescaler converts delta tick counts from one ticks-per-quarter-note
// resolution to another. It tracks the absolute position on both sides so
// rounding never accumulates: every converted position is within half a tick
// of the exact value.
type Rescaler struct {
	srcTPQN uint64
	dstTPQN uint64

	// absolute positions in source and destination ticks
	srcPos uint64
	dstPos uint64
}

func NewRescaler(srcTPQN, dstTPQN uint16) (*Rescaler, error) {
	if srcTPQN == 0 || dstTPQN == 0 {
		return nil, ErrInvalidTPQN
	}

	return &Rescaler{
		srcTPQN: uint64(srcTPQN),
		dstTPQN: uint64(dstTPQN),
	}, nil
}

// Next advances the source position by delta ticks and returns the matching
// delta in destination ticks.
func (r *Rescaler) Next(delta uint64) uint64 {
	r.srcPos += delta
	// round to nearest
	pos := (r.srcPos*r.dstTPQN + r.srcTPQN/2) / r.srcTPQN

	d := pos - r.dstPos
	r.dstPos = pos

	return d
}

// Rescale returns a copy of c declaring tpqn ticks per quarter note, with
// every Delta Clockstamp converted to the new resolution. Clockstamps that
// overflow 20 bits after conversion are split.
func Rescale(c *Clip, tpqn uint16) (*Clip, error) {
	src, ok := c.TPQN()
	if !ok {
		return nil, ErrMissingConfiguration
	}

	r, err := NewRescaler(src, tpqn)
	if err != nil {
		return nil, err
	}

	var a Assembler
	for _, p := range c.profiles {
		a.AppendProfile(p...)
	}
	a.Append(c.words[0], NewDeltaClockstampTPQN(tpqn))

	rest := &Clip{words: c.words[2:]}
	for msg, err := range rest.Messages() {
		if err != nil {
			return nil, fmt.Errorf("rescale: %w", err)
		}

		kind, err := Classify(msg)
		if err != nil {
			return nil, fmt.Errorf("rescale: %w", err)
		}

		dc, ok := kind.(DeltaClockstamp)
		if !ok {
			a.Append(msg...)
			continue
		}

		words := SplitDeltaClockstamps(r.Next(uint64(dc.TimeData)))
		if len(words) == 0 {
			words = []uint32{NewDeltaClockstamp(0)}
		}
		a.Append(words...)
	}

	return a.Clip(), nil
}
