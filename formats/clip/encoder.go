// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/ik5/umpclip/ump"
)

// Encoder writes MIDI 2.0 clip files. A clip is validated with the same rules
// Decoder applies before a single byte is written, so whatever Encoder
// accepts Decoder reads back unchanged.
type Encoder struct {
	// Profiles validates the clip's profile declarations. nil selects
	// MIDICIProfiles.
	Profiles ProfileValidator

	// AllowUnknown accepts messages of reserved types.
	AllowUnknown bool
}

// Encode writes the magic header, the configuration header and the event
// stream of c to w. An empty clip is written as the magic header alone.
func (e Encoder) Encode(w io.Writer, c *ump.Clip) error {
	chk := newChecker(e.Profiles, e.AllowUnknown)

	offset, err := checkConfigurationHeader(chk, c)
	if err != nil {
		return err
	}

	words := c.Words()
	if len(words) > 2 {
		if err := checkEvents(chk, offset, words[2:]); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)

	if err := WriteHeader(bw); err != nil {
		return err
	}
	if err := writeConfigurationHeader(bw, c); err != nil {
		return err
	}
	if len(words) > 2 {
		if err := ump.WriteWords(bw, words[2:]...); err != nil {
			return &IOError{Op: "write events", Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	log.Debug().Int("words", len(words)).Int("profiles", len(c.Profiles())).Msg("clip: encoded")

	return nil
}

// WriteClip encodes c to w with the default Encoder.
func WriteClip(w io.Writer, c *ump.Clip) error {
	return Encoder{}.Encode(w, c)
}

// WriteConfigurationHeader validates and writes the profile declarations and
// the clockstamp pair of c. It writes nothing for an empty clip.
func WriteConfigurationHeader(w io.Writer, c *ump.Clip) error {
	if _, err := checkConfigurationHeader(newChecker(nil, false), c); err != nil {
		return err
	}

	return writeConfigurationHeader(w, c)
}

func writeConfigurationHeader(w io.Writer, c *ump.Clip) error {
	words := c.Words()
	if len(words) == 0 {
		return nil
	}

	var header []uint32
	for _, p := range c.Profiles() {
		header = append(header, p...)
	}
	header = append(header, words[:2]...)

	if err := ump.WriteWords(w, header...); err != nil {
		return &IOError{Op: "write configuration header", Err: err}
	}

	return nil
}

// checkConfigurationHeader returns the file offset of the first event.
func checkConfigurationHeader(chk *checker, c *ump.Clip) (int64, error) {
	offset := int64(HeaderSize)

	words := c.Words()
	profiles := c.Profiles()

	if len(words) == 0 {
		if len(profiles) > 0 {
			return 0, &ParseError{Offset: offset, Reason: ReasonProfilesWithoutHeader}
		}
		return offset, nil
	}

	for _, p := range profiles {
		if err := checkProfileShape(offset, p); err != nil {
			return 0, err
		}
		if err := chk.checkProfile(offset, p); err != nil {
			return 0, err
		}
		offset += int64(len(p)) * ump.WordSize
	}

	if len(words) < 2 {
		return 0, &ParseError{Offset: offset, Reason: ReasonIncompleteHeader}
	}

	if err := chk.checkInitialClockstamp(offset, words[0]); err != nil {
		return 0, err
	}
	offset += ump.WordSize

	if _, err := chk.checkTPQN(offset, words[1]); err != nil {
		return 0, err
	}
	offset += ump.WordSize

	return offset, nil
}

// checkProfileShape rejects declarations a reader would split differently:
// a profile must be exactly one non-utility message.
func checkProfileShape(offset int64, p []uint32) error {
	if len(p) == 0 {
		return &FormatError{Offset: offset, Err: ump.ErrEmptyMessage}
	}

	if ump.TypeOf(p[0]) == ump.MessageTypeUtility {
		return &FormatError{
			Offset: offset,
			Word:   p[0],
			Err:    fmt.Errorf("%w: utility message in profile declarations", ump.ErrUnexpectedStatus),
		}
	}

	if n := ump.WordCount(p[0]); n != len(p) {
		return &FormatError{
			Offset: offset,
			Word:   p[0],
			Err:    fmt.Errorf("%w: profile declaration spans %d words, message needs %d", ump.ErrInvalidByteCount, len(p), n),
		}
	}

	return nil
}

func checkEvents(chk *checker, offset int64, words []uint32) error {
	for i := 0; i < len(words); {
		n := ump.WordCount(words[i])
		end := min(i+n, len(words))

		if err := chk.checkEvent(offset, words[i:end]); err != nil {
			return err
		}

		offset += int64(end-i) * ump.WordSize
		i = end
	}

	return nil
}
