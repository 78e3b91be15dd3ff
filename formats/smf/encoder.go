// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gitlab.com/gomidi/midi/v2"
	midismf "gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/umpclip/formats/clip"
	"github.com/ik5/umpclip/ump"
	"github.com/ik5/umpclip/utils"
)

// Controllers used to express MIDI 2.0 messages in MIDI 1.0.
const (
	ccBankSelectMSB = 0
	ccBankSelectLSB = 32
	ccDataEntryMSB  = 6
	ccDataEntryLSB  = 38
	ccNRPNLSB       = 98
	ccNRPNMSB       = 99
	ccRPNLSB        = 100
	ccRPNMSB        = 101
)

// Encoder writes a clip as a single track Standard MIDI File using the clip's
// ticks per quarter note.
type Encoder struct{}

// Encode validates c as a clip file would be validated and writes it to w.
// Messages with no SMF equivalent are skipped.
func (Encoder) Encode(w io.Writer, c *ump.Clip) error {
	if c.Len() == 0 {
		return ErrEmptyClip
	}

	if err := (clip.Encoder{AllowUnknown: true}).Encode(io.Discard, c); err != nil {
		return err
	}

	tpqn, _ := c.TPQN()
	if tpqn == 0 {
		return ump.ErrInvalidTPQN
	}

	words := c.Words()
	tr, err := buildTrack(ump.NewClip(words[2:]...))
	if err != nil {
		return err
	}

	s := midismf.New()
	s.TimeFormat = midismf.MetricTicks(tpqn)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write SMF: %w", err)
	}

	log.Debug().Int("events", len(tr)).Uint16("tpqn", tpqn).Msg("smf: written")

	return nil
}

// WriteSMF writes c to w with the default Encoder.
func WriteSMF(w io.Writer, c *ump.Clip) error {
	return Encoder{}.Encode(w, c)
}

func buildTrack(events *ump.Clip) (midismf.Track, error) {
	var tr midismf.Track
	var b trackBuilder

	for msg, err := range events.Messages() {
		if err != nil {
			return nil, err
		}

		kind, err := ump.Classify(msg)
		if err != nil {
			return nil, err
		}

		if dc, ok := kind.(ump.DeltaClockstamp); ok {
			b.pending += uint64(dc.TimeData)
			continue
		}

		for _, m := range b.convert(kind) {
			delta, err := b.takeDelta()
			if err != nil {
				return nil, err
			}
			tr.Add(delta, m)
		}
	}

	delta, err := b.takeDelta()
	if err != nil {
		return nil, err
	}
	tr.Close(delta)

	return tr, nil
}

var errDeltaOverflow = errors.New("delta time exceeds SMF range")

// trackBuilder turns classified messages into SMF events. It accumulates
// delta clockstamps until the next emitted event and reassembles SysEx
// messages split over several packets.
type trackBuilder struct {
	pending uint64

	sysex   []byte
	inSysEx bool
}

// SMF delta times are variable length quantities of at most four bytes.
const maxSMFDelta = 1<<28 - 1

func (b *trackBuilder) takeDelta() (uint32, error) {
	if b.pending > maxSMFDelta {
		return 0, fmt.Errorf("%w: %d ticks", errDeltaOverflow, b.pending)
	}

	d := uint32(b.pending)
	b.pending = 0

	return d, nil
}

func (b *trackBuilder) convert(kind ump.Kind) [][]byte {
	switch m := kind.(type) {
	case ump.MIDI1ChannelVoice:
		return midi1Message(m.Opcode, m.Channel, m.Data1, m.Data2)
	case ump.MIDI2ChannelVoice:
		return midi2Messages(m)
	case ump.SysEx7:
		return b.sysEx(m)
	case ump.FlexData:
		switch {
		case m.IsSetTempo():
			return [][]byte{tempoMeta(m.Tempo() / 100)}
		case m.IsSetTimeSignature():
			num, den, thirtySeconds := m.TimeSignature()
			if thirtySeconds == 0 {
				thirtySeconds = 8
			}
			return [][]byte{timeSignatureMeta(num, den, thirtySeconds)}
		}
	case ump.StartOfClip, ump.EndOfClip, ump.NoOp:
		return nil
	}

	log.Debug().Str("type", kind.MessageType().String()).Msg("smf: message has no SMF equivalent")

	return nil
}

func (b *trackBuilder) sysEx(m ump.SysEx7) [][]byte {
	switch m.Status {
	case ump.SysExComplete:
		b.sysex, b.inSysEx = nil, false
		return [][]byte{sysExEvent(m.Data)}
	case ump.SysExStart:
		b.sysex, b.inSysEx = append([]byte(nil), m.Data...), true
	case ump.SysExContinue:
		if b.inSysEx {
			b.sysex = append(b.sysex, m.Data...)
		}
	case ump.SysExEnd:
		if !b.inSysEx {
			log.Debug().Msg("smf: SysEx end without start")
			return nil
		}
		data := append(b.sysex, m.Data...)
		b.sysex, b.inSysEx = nil, false
		return [][]byte{sysExEvent(data)}
	}

	return nil
}

func midi1Message(opcode, channel, data1, data2 uint8) [][]byte {
	var msg midi.Message

	switch opcode {
	case ump.OpcodeNoteOff:
		msg = midi.NoteOffVelocity(channel, data1, data2)
	case ump.OpcodeNoteOn:
		msg = midi.NoteOn(channel, data1, data2)
	case ump.OpcodePolyPressure:
		msg = midi.PolyAfterTouch(channel, data1, data2)
	case ump.OpcodeControlChange:
		msg = midi.ControlChange(channel, data1, data2)
	case ump.OpcodeProgramChange:
		msg = midi.ProgramChange(channel, data1)
	case ump.OpcodeChannelPressure:
		msg = midi.AfterTouch(channel, data1)
	case ump.OpcodePitchBend:
		msg = midi.Pitchbend(channel, int16(uint16(data2)<<7|uint16(data1))-8192)
	default:
		return nil
	}

	return [][]byte{msg}
}

func midi2Messages(m ump.MIDI2ChannelVoice) [][]byte {
	note := uint8(m.Index>>8) & 0x7F

	switch m.Opcode {
	case ump.OpcodeNoteOff:
		return midi1Message(ump.OpcodeNoteOff, m.Channel, note, utils.Downscale16To7(uint16(m.Data>>16)))
	case ump.OpcodeNoteOn:
		velocity := utils.Downscale16To7(uint16(m.Data >> 16))
		if velocity == 0 {
			// zero would read as a note off
			velocity = 1
		}
		return midi1Message(ump.OpcodeNoteOn, m.Channel, note, velocity)
	case ump.OpcodePolyPressure:
		return midi1Message(ump.OpcodePolyPressure, m.Channel, note, utils.Downscale32To7(m.Data))
	case ump.OpcodeControlChange:
		return midi1Message(ump.OpcodeControlChange, m.Channel, note, utils.Downscale32To7(m.Data))
	case ump.OpcodeProgramChange:
		var msgs [][]byte
		if m.Index&0x1 != 0 {
			msgs = append(msgs,
				midi.ControlChange(m.Channel, ccBankSelectMSB, uint8(m.Data>>8)&0x7F),
				midi.ControlChange(m.Channel, ccBankSelectLSB, uint8(m.Data)&0x7F),
			)
		}
		return append(msgs, midi.ProgramChange(m.Channel, uint8(m.Data>>24)&0x7F))
	case ump.OpcodeChannelPressure:
		return midi1Message(ump.OpcodeChannelPressure, m.Channel, utils.Downscale32To7(m.Data), 0)
	case ump.OpcodePitchBend:
		v := utils.Downscale32To14(m.Data)
		return midi1Message(ump.OpcodePitchBend, m.Channel, uint8(v)&0x7F, uint8(v>>7)&0x7F)
	case ump.OpcodeRegisteredController:
		return parameterNumber(m, ccRPNMSB, ccRPNLSB)
	case ump.OpcodeAssignableController:
		return parameterNumber(m, ccNRPNMSB, ccNRPNLSB)
	}

	log.Debug().Uint8("opcode", m.Opcode).Msg("smf: MIDI 2.0 message has no MIDI 1.0 equivalent")

	return nil
}

// parameterNumber expresses a registered or assignable controller as the
// MIDI 1.0 parameter number and data entry controller sequence.
func parameterNumber(m ump.MIDI2ChannelVoice, msbController, lsbController uint8) [][]byte {
	bank := uint8(m.Index>>8) & 0x7F
	index := uint8(m.Index) & 0x7F
	v := utils.Downscale32To14(m.Data)

	return [][]byte{
		midi.ControlChange(m.Channel, msbController, bank),
		midi.ControlChange(m.Channel, lsbController, index),
		midi.ControlChange(m.Channel, ccDataEntryMSB, uint8(v>>7)&0x7F),
		midi.ControlChange(m.Channel, ccDataEntryLSB, uint8(v)&0x7F),
	}
}
