// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog/log"
	midismf "gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/umpclip/ump"
	"github.com/ik5/umpclip/utils"
)

// Decoder translates a Standard MIDI File into a clip.
type Decoder struct {
	// Protocol selects MIDI 1.0 or MIDI 2.0 channel voice messages.
	Protocol Protocol

	// Group is the UMP group (0..15) every message is addressed to.
	Group uint8
}

// timedEvent is an SMF event placed on the merged timeline.
type timedEvent struct {
	tick uint64
	msg  []byte
}

// Decode reads an SMF from r. All tracks are merged into one timeline;
// events on the same tick keep their track order.
func (d Decoder) Decode(r io.Reader) (*ump.Clip, error) {
	s, err := midismf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read SMF: %w", err)
	}

	ticks, ok := s.TimeFormat.(midismf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTimeFormat, s.TimeFormat)
	}

	tpqn := ticks.Resolution()
	if tpqn == 0 {
		return nil, ump.ErrInvalidTPQN
	}

	events := mergeTracks(s.Tracks)
	log.Debug().
		Int("tracks", len(s.Tracks)).
		Int("events", len(events)).
		Uint16("tpqn", tpqn).
		Msg("smf: read")

	t := translator{protocol: d.Protocol, group: d.Group & 0xF}

	var a ump.Assembler
	a.Append(ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(tpqn))
	a.Append(ump.NewStartOfClip()...)

	var last uint64
	for _, ev := range events {
		words := t.translate(ev.msg)
		if len(words) == 0 {
			continue
		}

		a.Append(ump.SplitDeltaClockstamps(ev.tick - last)...)
		a.Append(words...)
		last = ev.tick
	}

	if len(events) > 0 {
		a.Append(ump.SplitDeltaClockstamps(events[len(events)-1].tick - last)...)
	}
	a.Append(ump.NewEndOfClip()...)

	return a.Clip(), nil
}

// ReadSMF translates an SMF with the default Decoder.
func ReadSMF(r io.Reader) (*ump.Clip, error) {
	return Decoder{}.Decode(r)
}

func mergeTracks(tracks []midismf.Track) []timedEvent {
	var events []timedEvent
	for _, tr := range tracks {
		var tick uint64
		for _, ev := range tr {
			tick += uint64(ev.Delta)
			events = append(events, timedEvent{tick: tick, msg: ev.Message})
		}
	}

	slices.SortStableFunc(events, func(a, b timedEvent) int {
		return cmp.Compare(a.tick, b.tick)
	})

	return events
}

type translator struct {
	protocol Protocol
	group    uint8
}

// translate returns the UMP words for one SMF event, nil when the event has
// no clip equivalent.
func (t translator) translate(msg []byte) []uint32 {
	if len(msg) == 0 {
		return nil
	}

	switch status := msg[0]; {
	case status >= 0x80 && status < 0xF0:
		return t.channelVoice(msg)
	case status == 0xF0:
		return ump.SplitSysEx7(t.group, sysExData(msg))
	case status == 0xFF:
		return t.meta(msg)
	}

	log.Debug().Hex("event", msg).Msg("smf: skipping event")

	return nil
}

func (t translator) channelVoice(msg []byte) []uint32 {
	status := msg[0]
	var data1, data2 uint8
	if len(msg) > 1 {
		data1 = msg[1] & 0x7F
	}
	if len(msg) > 2 {
		data2 = msg[2] & 0x7F
	}

	if t.protocol == ProtocolMIDI1 {
		return []uint32{ump.NewMIDI1ChannelVoice(t.group, status, data1, data2)}
	}

	opcode := status >> 4
	channel := status & 0xF

	var index uint16
	var data uint32

	switch opcode {
	case ump.OpcodeNoteOff:
		index = uint16(data1) << 8
		data = uint32(utils.Upscale7To16(data2)) << 16
	case ump.OpcodeNoteOn:
		index = uint16(data1) << 8
		if data2 == 0 {
			// a zero velocity note on releases the note
			opcode = ump.OpcodeNoteOff
			data = uint32(utils.Upscale7To16(64)) << 16
		} else {
			data = uint32(utils.Upscale7To16(data2)) << 16
		}
	case ump.OpcodePolyPressure:
		index = uint16(data1) << 8
		data = utils.Upscale7To32(data2)
	case ump.OpcodeControlChange:
		index = uint16(data1) << 8
		data = utils.Upscale7To32(data2)
	case ump.OpcodeProgramChange:
		data = uint32(data1) << 24
	case ump.OpcodeChannelPressure:
		data = utils.Upscale7To32(data1)
	case ump.OpcodePitchBend:
		data = utils.Upscale14To32(uint16(data2)<<7 | uint16(data1))
	}

	return ump.NewMIDI2ChannelVoice(t.group, opcode, channel, index, data)
}

func (t translator) meta(msg []byte) []uint32 {
	typ, data, ok := parseMeta(msg)
	if !ok {
		log.Debug().Hex("event", msg).Msg("smf: malformed meta event")
		return nil
	}

	switch {
	case typ == metaTempo && len(data) == 3:
		microseconds := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
		return ump.NewSetTempo(t.group, microseconds*100)
	case typ == metaTimeSignature && len(data) == 4:
		return ump.NewSetTimeSignature(t.group, data[0], data[1], data[3])
	case typ == metaEndOfTrack:
		return nil
	}

	log.Debug().Hex("type", []byte{typ}).Int("length", len(data)).Msg("smf: skipping meta event")

	return nil
}
