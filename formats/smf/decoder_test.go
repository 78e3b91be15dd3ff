// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/umpclip/ump"
	"github.com/ik5/umpclip/utils"
)

var (
	tempo120   = []byte{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20} // 500000 µs per quarter note
	meter3of4  = []byte{0xFF, 0x58, 0x04, 0x03, 0x02, 0x18, 0x08}
	trackName  = []byte{0xFF, 0x03, 0x04, 'L', 'e', 'a', 'd'}
	noteOnC4   = []byte{0x90, 0x3C, 0x64}
	noteOffC4  = []byte{0x80, 0x3C, 0x00}
	ccVolume   = []byte{0xB1, 0x07, 0x50}
	program5   = []byte{0xC1, 0x05}
	pitchBend  = []byte{0xE0, 0x00, 0x60}
	sysExShort = []byte{0xF0, 0x05, 0x43, 0x10, 0x4C, 0x00, 0xF7}
)

func concat(parts ...[]uint32) []uint32 {
	var out []uint32
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func TestReadSMF_MIDI1(t *testing.T) {
	t.Parallel()

	data := smfFile(96, track(
		event{0, tempo120},
		event{0, meter3of4},
		event{0, trackName},
		event{0, noteOnC4},
		event{96, noteOffC4},
	))

	c, err := ReadSMF(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		ump.NewSetTempo(0, 50_000_000),
		ump.NewSetTimeSignature(0, 3, 2, 8),
		[]uint32{0x20903C64, ump.NewDeltaClockstamp(96), 0x20803C00},
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())

	tpqn, ok := c.TPQN()
	assert.True(t, ok)
	assert.Equal(t, uint16(96), tpqn)
}

func TestReadSMF_ChannelMessages(t *testing.T) {
	t.Parallel()

	data := smfFile(480, track(
		event{0, ccVolume},
		event{0, program5},
		event{0, pitchBend},
		event{0, []byte{0xA2, 0x3C, 0x20}},
		event{0, []byte{0xD3, 0x40}},
	))

	c, err := Decoder{Group: 2}.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(480)},
		ump.NewStartOfClip(),
		[]uint32{0x22B10750, 0x22C10500, 0x22E00060, 0x22A23C20, 0x22D34000},
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_MIDI2(t *testing.T) {
	t.Parallel()

	data := smfFile(96, track(
		event{0, noteOnC4},
		event{0, ccVolume},
		event{0, program5},
		event{0, pitchBend},
		event{48, []byte{0x90, 0x3C, 0x00}},
	))

	c, err := Decoder{Protocol: ProtocolMIDI2}.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		ump.NewMIDI2ChannelVoice(0, ump.OpcodeNoteOn, 0, 0x3C00, uint32(utils.Upscale7To16(100))<<16),
		ump.NewMIDI2ChannelVoice(0, ump.OpcodeControlChange, 1, 0x0700, utils.Upscale7To32(0x50)),
		ump.NewMIDI2ChannelVoice(0, ump.OpcodeProgramChange, 1, 0, 0x05000000),
		ump.NewMIDI2ChannelVoice(0, ump.OpcodePitchBend, 0, 0, utils.Upscale14To32(0x3000)),
		[]uint32{ump.NewDeltaClockstamp(48)},
		ump.NewMIDI2ChannelVoice(0, ump.OpcodeNoteOff, 0, 0x3C00, 0x80000000),
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_MergesTracks(t *testing.T) {
	t.Parallel()

	data := smfFile(96,
		track(event{0, tempo120}, event{48, []byte{0x90, 0x40, 0x64}}),
		track(event{0, noteOnC4}, event{48, noteOffC4}, event{48, []byte{0x80, 0x40, 0x00}}),
	)

	c, err := ReadSMF(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		ump.NewSetTempo(0, 50_000_000),
		[]uint32{
			0x20903C64,
			ump.NewDeltaClockstamp(48),
			0x20904064, // first track wins on the same tick
			0x20803C00,
			ump.NewDeltaClockstamp(48),
			0x20804000,
		},
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_LongDelta(t *testing.T) {
	t.Parallel()

	data := smfFile(96, track(event{0, noteOnC4}, event{2_000_000, noteOffC4}))

	c, err := ReadSMF(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		[]uint32{
			0x20903C64,
			ump.NewDeltaClockstamp(ump.MaxDeltaClockstamp),
			ump.NewDeltaClockstamp(2_000_000 - ump.MaxDeltaClockstamp),
			0x20803C00,
		},
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_TrailingTime(t *testing.T) {
	t.Parallel()

	// the end of track marker sits 96 ticks after the last note
	data := smfFile(96, []byte{
		0x00, 0x90, 0x3C, 0x64,
		0x60, 0xFF, 0x2F, 0x00,
	})

	c, err := ReadSMF(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		[]uint32{0x20903C64, ump.NewDeltaClockstamp(96)},
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_SysEx(t *testing.T) {
	t.Parallel()

	long := []byte{0xF0, 0x08, 0x43, 0x10, 0x4C, 0x00, 0x00, 0x7E, 0x00, 0xF7}
	data := smfFile(96, track(event{0, sysExShort}, event{0, long}))

	c, err := ReadSMF(bytes.NewReader(data))
	require.NoError(t, err)

	want := concat(
		[]uint32{ump.NewDeltaClockstamp(0), ump.NewDeltaClockstampTPQN(96)},
		ump.NewStartOfClip(),
		ump.SplitSysEx7(0, []byte{0x43, 0x10, 0x4C, 0x00}),
		ump.SplitSysEx7(0, []byte{0x43, 0x10, 0x4C, 0x00, 0x00, 0x7E, 0x00}),
		ump.NewEndOfClip(),
	)
	assert.Equal(t, want, c.Words())
}

func TestReadSMF_SMPTE(t *testing.T) {
	t.Parallel()

	// 30 frames per second, 40 subframes
	data := smfFile(0xE228, track(event{0, noteOnC4}))

	_, err := ReadSMF(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedTimeFormat)
}

func TestReadSMF_NotSMF(t *testing.T) {
	t.Parallel()

	_, err := ReadSMF(bytes.NewReader([]byte("SMF2CLIP")))
	assert.Error(t, err)
}

func TestParseProtocol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Protocol
		wantErr bool
	}{
		{"", ProtocolMIDI1, false},
		{"midi1", ProtocolMIDI1, false},
		{"MIDI2", ProtocolMIDI2, false},
		{" midi2 ", ProtocolMIDI2, false},
		{"midi3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseProtocol(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownProtocol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProtocol_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "midi1", ProtocolMIDI1.String())
	assert.Equal(t, "midi2", ProtocolMIDI2.String())
	assert.Equal(t, "Protocol(7)", Protocol(7).String())
}

func TestParseMeta(t *testing.T) {
	t.Parallel()

	typ, data, ok := parseMeta(tempo120)
	require.True(t, ok)
	assert.Equal(t, byte(metaTempo), typ)
	assert.Equal(t, []byte{0x07, 0xA1, 0x20}, data)

	_, _, ok = parseMeta([]byte{0xFF, 0x51, 0x03, 0x07})
	assert.False(t, ok, "short data")

	_, _, ok = parseMeta(noteOnC4)
	assert.False(t, ok, "channel message")
}
