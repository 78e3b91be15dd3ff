// SPDX-License-Identifier: EPL-2.0

package ump

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Clip is a decoded MIDI clip: the ordered UMP words of the clip and the
// profile declarations that preceded them. Once non-empty, the first two
// words are the initial Delta Clockstamp and the Delta Clockstamp TPQN
// message.
//
// A Clip is immutable; accessors return copies.
type Clip struct {
	profiles [][]uint32
	words    []uint32
}

// NewClip returns a clip holding words, in order.
func NewClip(words ...uint32) *Clip {
	return &Clip{words: slices.Clone(words)}
}

// Words returns a copy of the clip's words.
func (c *Clip) Words() []uint32 {
	return slices.Clone(c.words)
}

// Profiles returns a copy of the profile declaration messages.
func (c *Clip) Profiles() [][]uint32 {
	out := make([][]uint32, len(c.profiles))
	for i, p := range c.profiles {
		out[i] = slices.Clone(p)
	}

	return out
}

// Len returns the number of words in the clip, profile declarations excluded.
func (c *Clip) Len() int {
	return len(c.words)
}

// Equal reports whether c and other hold the same words and profiles.
func (c *Clip) Equal(other *Clip) bool {
	if c == nil || other == nil {
		return c == other
	}

	return slices.Equal(c.words, other.words) &&
		slices.EqualFunc(c.profiles, other.profiles, slices.Equal[[]uint32])
}

// TPQN returns the ticks per quarter note declared by the configuration
// header. ok is false when the clip has no configuration header.
func (c *Clip) TPQN() (tpqn uint16, ok bool) {
	if len(c.words) < 2 {
		return 0, false
	}

	kind, err := Classify(c.words[1:2])
	if err != nil {
		return 0, false
	}

	m, ok := kind.(DeltaClockstampTPQN)
	return m.TPQN, ok
}

// Messages iterates over the clip's words one message at a time. A message
// cut short by the end of the clip is reported with ErrTruncatedMessage and
// ends the iteration.
func (c *Clip) Messages() iter.Seq2[[]uint32, error] {
	return func(yield func([]uint32, error) bool) {
		for i := 0; i < len(c.words); {
			n := WordCount(c.words[i])
			if i+n > len(c.words) {
				yield(nil, fmt.Errorf("%w: %d of %d words at index %d", ErrTruncatedMessage, len(c.words)-i, n, i))
				return
			}

			if !yield(c.words[i:i+n:i+n], nil) {
				return
			}
			i += n
		}
	}
}

func (c *Clip) String() string {
	var sb strings.Builder
	sb.WriteString("Clip[")
	for i, w := range c.words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08X", w)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Assembler accumulates words in stream order and produces a Clip. It never
// reorders, drops or merges words.
type Assembler struct {
	profiles [][]uint32
	words    []uint32
}

// Append adds words to the end of the clip.
func (a *Assembler) Append(words ...uint32) {
	a.words = append(a.words, words...)
}

// AppendProfile records one profile declaration message.
func (a *Assembler) AppendProfile(message ...uint32) {
	a.profiles = append(a.profiles, slices.Clone(message))
}

// Len returns the number of words appended so far.
func (a *Assembler) Len() int {
	return len(a.words)
}

// Clip returns a snapshot of the assembled clip.
func (a *Assembler) Clip() *Clip {
	c := &Clip{words: slices.Clone(a.words)}
	if len(a.profiles) > 0 {
		c.profiles = make([][]uint32, len(a.profiles))
		for i, p := range a.profiles {
			c.profiles[i] = slices.Clone(p)
		}
	}

	return c
}
