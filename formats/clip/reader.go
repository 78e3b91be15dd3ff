// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"io"

	"github.com/ik5/umpclip/ump"
)

// wordReader reads UMP words and tracks the byte offset of the next unread
// word.
type wordReader struct {
	r      io.Reader
	offset int64

	peeked bool
	next   uint32
}

func (wr *wordReader) peek() (uint32, error) {
	if wr.peeked {
		return wr.next, nil
	}

	w, err := ump.ReadWord(wr.r)
	if err != nil {
		return 0, err
	}

	wr.peeked = true
	wr.next = w

	return w, nil
}

func (wr *wordReader) read() (uint32, error) {
	w, err := wr.peek()
	if err != nil {
		return 0, err
	}

	wr.peeked = false
	wr.offset += ump.WordSize

	return w, nil
}

// readMessage reads one complete message. It returns io.EOF only when the
// stream ends cleanly before the first word.
func (wr *wordReader) readMessage() ([]uint32, error) {
	first, err := wr.read()
	if err != nil {
		return nil, err
	}

	n := ump.WordCount(first)
	if n == 1 {
		return []uint32{first}, nil
	}

	rest, err := ump.ReadWords(wr.r, n-1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	wr.offset += int64(len(rest)) * ump.WordSize

	return append([]uint32{first}, rest...), nil
}

// ioError wraps a read failure. A clean end of stream is unexpected wherever
// this is used.
func ioError(op string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return &IOError{Op: op, Err: err}
}
