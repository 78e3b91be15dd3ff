// SPDX-License-Identifier: EPL-2.0

package smf

// Meta event types carried over to flex data messages.
const (
	metaEndOfTrack    = 0x2F
	metaTempo         = 0x51
	metaTimeSignature = 0x58
)

// SMF time signatures count the metronome click in MIDI clocks; flex data
// has no such field.
const defaultClocksPerClick = 24

// parseMeta splits a raw meta event (FF type length data) into its type and
// data. ok is false for anything that is not a well formed meta event.
func parseMeta(msg []byte) (typ byte, data []byte, ok bool) {
	if len(msg) < 3 || msg[0] != 0xFF {
		return 0, nil, false
	}

	length, n := readVarLen(msg[2:])
	if n == 0 || 2+n+int(length) > len(msg) {
		return 0, nil, false
	}

	start := 2 + n
	return msg[1], msg[start : start+int(length)], true
}

// readVarLen decodes an SMF variable length quantity. n is the number of
// bytes consumed, 0 when b holds no complete quantity.
func readVarLen(b []byte) (v uint32, n int) {
	for i := 0; i < len(b) && i < 4; i++ {
		v = v<<7 | uint32(b[i]&0x7F)
		if b[i]&0x80 == 0 {
			return v, i + 1
		}
	}

	return 0, 0
}

func tempoMeta(microseconds uint32) []byte {
	return []byte{0xFF, metaTempo, 0x03, byte(microseconds >> 16), byte(microseconds >> 8), byte(microseconds)}
}

func timeSignatureMeta(numerator, denominator, thirtySeconds uint8) []byte {
	return []byte{0xFF, metaTimeSignature, 0x04, numerator, denominator, defaultClocksPerClick, thirtySeconds}
}

// sysExData strips the F0/F7 framing of a SysEx event.
func sysExData(msg []byte) []byte {
	if len(msg) == 0 || msg[0] != 0xF0 {
		return nil
	}

	data := msg[1:]
	if n := len(data); n > 0 && data[n-1] == 0xF7 {
		data = data[:n-1]
	}

	return data
}

func sysExEvent(data []byte) []byte {
	msg := make([]byte, 0, len(data)+2)
	msg = append(msg, 0xF0)
	msg = append(msg, data...)

	return append(msg, 0xF7)
}
