// SPDX-License-Identifier: EPL-2.0

package ump

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WordSize is the size in bytes of a single UMP word on the wire.
const WordSize = 4

// ReadWord reads a single big-endian word from r.
// It returns io.EOF when r is exhausted before the first byte and
// io.ErrUnexpectedEOF when the word is cut short.
func ReadWord(r io.Reader) (uint32, error) {
	var buf [WordSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadWords reads count big-endian words from r, in stream order.
func ReadWords(r io.Reader, count int) ([]uint32, error) {
	if count <= 0 {
		return nil, nil
	}

	buf := make([]byte, count*WordSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	words := make([]uint32, count)
	for i := range count {
		words[i] = binary.BigEndian.Uint32(buf[i*WordSize:])
	}

	return words, nil
}

// WriteWords writes words to w, most significant byte first.
func WriteWords(w io.Writer, words ...uint32) error {
	if len(words) == 0 {
		return nil
	}

	buf := make([]byte, len(words)*WordSize)
	for i, word := range words {
		binary.BigEndian.PutUint32(buf[i*WordSize:], word)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
