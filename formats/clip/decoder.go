// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bufio"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/ik5/umpclip/ump"
)

// Decoder reads MIDI 2.0 clip files. The zero value validates profile
// declarations with MIDICIProfiles and rejects reserved message types.
type Decoder struct {
	// Profiles validates the messages found before the initial delta
	// clockstamp. nil selects MIDICIProfiles.
	Profiles ProfileValidator

	// AllowUnknown keeps messages of reserved types instead of failing.
	AllowUnknown bool
}

// Decode reads a whole clip file from r. No partial clip is returned on
// failure.
func (d Decoder) Decode(r io.Reader) (*ump.Clip, error) {
	br := bufio.NewReader(r)

	if err := ReadHeader(br); err != nil {
		return nil, err
	}

	wr := &wordReader{r: br, offset: HeaderSize}
	chk := newChecker(d.Profiles, d.AllowUnknown)

	var a ump.Assembler

	ok, err := readConfigurationHeader(wr, chk, &a)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug().Msg("clip: empty clip")
		return a.Clip(), nil
	}

	if err := readEvents(wr, chk, &a); err != nil {
		return nil, err
	}

	c := a.Clip()
	log.Debug().
		Int("words", c.Len()).
		Int("profiles", len(c.Profiles())).
		Int64("bytes", wr.offset).
		Msg("clip: decoded")

	return c, nil
}

// ReadClip decodes a clip file with the default Decoder.
func ReadClip(r io.Reader) (*ump.Clip, error) {
	return Decoder{}.Decode(r)
}

// ReadConfigurationHeader reads the configuration header that follows the
// magic header and returns its words in file order: profile declarations,
// the initial delta clockstamp and the TPQN word. Unlike Decoder it treats
// an empty source as an incomplete header.
func ReadConfigurationHeader(r io.Reader) ([]uint32, error) {
	wr := &wordReader{r: r, offset: HeaderSize}

	var a ump.Assembler

	ok, err := readConfigurationHeader(wr, newChecker(nil, false), &a)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ioError("read configuration header", io.EOF)
	}

	c := a.Clip()

	var words []uint32
	for _, p := range c.Profiles() {
		words = append(words, p...)
	}

	return append(words, c.Words()...), nil
}

// readConfigurationHeader reports false when the stream ends right after the
// magic header.
func readConfigurationHeader(wr *wordReader, chk *checker, a *ump.Assembler) (bool, error) {
	const op = "read configuration header"

	w, err := wr.peek()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, ioError(op, err)
	}

	for ump.TypeOf(w) != ump.MessageTypeUtility {
		offset := wr.offset

		msg, err := wr.readMessage()
		if err != nil {
			return false, ioError(op, err)
		}

		if err := chk.checkProfile(offset, msg); err != nil {
			return false, err
		}
		a.AppendProfile(msg...)

		log.Debug().Int64("offset", offset).Int("words", len(msg)).Msg("clip: profile declaration")

		if w, err = wr.peek(); err != nil {
			return false, ioError(op, err)
		}
	}

	offset := wr.offset
	dc, err := wr.read()
	if err != nil {
		return false, ioError(op, err)
	}
	if err := chk.checkInitialClockstamp(offset, dc); err != nil {
		return false, err
	}

	offset = wr.offset
	tpqn, err := wr.read()
	if err != nil {
		return false, ioError(op, err)
	}
	ticks, err := chk.checkTPQN(offset, tpqn)
	if err != nil {
		return false, err
	}

	a.Append(dc, tpqn)
	log.Debug().Uint16("tpqn", ticks).Msg("clip: configuration header")

	return true, nil
}

func readEvents(wr *wordReader, chk *checker, a *ump.Assembler) error {
	for {
		offset := wr.offset

		msg, err := wr.readMessage()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return ioError("read event", err)
		}

		if err := chk.checkEvent(offset, msg); err != nil {
			return err
		}
		a.Append(msg...)
	}
}
