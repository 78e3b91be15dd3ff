// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	midismf "gitlab.com/gomidi/midi/v2/smf"
)

// varLen encodes v as an SMF variable length quantity.
func varLen(v uint32) []byte {
	out := []byte{byte(v & 0x7F)}
	for v >>= 7; v > 0; v >>= 7 {
		out = append([]byte{byte(v&0x7F) | 0x80}, out...)
	}

	return out
}

// event is one raw track event: a delta time followed by the message bytes.
type event struct {
	delta uint32
	msg   []byte
}

func track(events ...event) []byte {
	var buffer bytes.Buffer
	for _, ev := range events {
		buffer.Write(varLen(ev.delta))
		buffer.Write(ev.msg)
	}
	buffer.Write([]byte{0x00, 0xFF, 0x2F, 0x00})

	return buffer.Bytes()
}

// smfFile builds a Standard MIDI File image. division is written as is, so
// SMPTE divisions can be expressed too.
func smfFile(division uint16, tracks ...[]byte) []byte {
	var buffer bytes.Buffer

	format := uint16(0)
	if len(tracks) > 1 {
		format = 1
	}

	buffer.WriteString("MThd")
	binary.Write(&buffer, binary.BigEndian, uint32(6))
	binary.Write(&buffer, binary.BigEndian, format)
	binary.Write(&buffer, binary.BigEndian, uint16(len(tracks)))
	binary.Write(&buffer, binary.BigEndian, division)

	for _, tr := range tracks {
		buffer.WriteString("MTrk")
		binary.Write(&buffer, binary.BigEndian, uint32(len(tr)))
		buffer.Write(tr)
	}

	return buffer.Bytes()
}

// timedMessage is an SMF event read back with its absolute tick.
type timedMessage struct {
	Tick uint64
	Msg  []byte
}

// readEvents parses an SMF with gomidi and returns the events of every track
// except end of track markers.
func readEvents(t *testing.T, data []byte) (midismf.MetricTicks, []timedMessage) {
	t.Helper()

	s, err := midismf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)

	ticks, ok := s.TimeFormat.(midismf.MetricTicks)
	require.True(t, ok, "time format %v is not metric", s.TimeFormat)

	var out []timedMessage
	for _, tr := range s.Tracks {
		var tick uint64
		for _, ev := range tr {
			tick += uint64(ev.Delta)
			if typ, _, ok := parseMeta(ev.Message); ok && typ == metaEndOfTrack {
				continue
			}
			out = append(out, timedMessage{Tick: tick, Msg: append([]byte(nil), ev.Message...)})
		}
	}

	return ticks, out
}
