// SPDX-License-Identifier: EPL-2.0

package umptest

import (
	"encoding/binary"
	"errors"
)

// Magic is the clip file header. It is repeated here so the helpers do not
// import the packages they are used to test.
var Magic = []byte{0x53, 0x4D, 0x46, 0x32, 0x43, 0x4C, 0x49, 0x50}

// ErrInjected is returned by FailingReader and FailingWriter when no other
// error is configured.
var ErrInjected = errors.New("injected failure")

// Bytes encodes words big-endian.
func Bytes(words ...uint32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}

	return buf
}

// ClipFile returns a clip file image: the magic header followed by words.
func ClipFile(words ...uint32) []byte {
	return append(append([]byte(nil), Magic...), Bytes(words...)...)
}

// FailingReader yields Data and then fails with Err (ErrInjected if nil).
type FailingReader struct {
	Data []byte
	Err  error

	pos int
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.Data) {
		if r.Err == nil {
			return 0, ErrInjected
		}
		return 0, r.Err
	}

	n := copy(p, r.Data[r.pos:])
	r.pos += n

	return n, nil
}

// FailingWriter accepts Limit bytes and then fails with Err (ErrInjected if nil).
type FailingWriter struct {
	Limit int
	Err   error

	Written []byte
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	room := w.Limit - len(w.Written)
	if room >= len(p) {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}

	if room > 0 {
		w.Written = append(w.Written, p[:room]...)
	} else {
		room = 0
	}

	if w.Err == nil {
		return room, ErrInjected
	}
	return room, w.Err
}
