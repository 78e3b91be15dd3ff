// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"errors"
	"io"
)

// Magic is the 8-byte marker every clip file starts with ("SMF2CLIP").
var Magic = []byte{0x53, 0x4D, 0x46, 0x32, 0x43, 0x4C, 0x49, 0x50}

// HeaderSize is the length of the magic header in bytes.
const HeaderSize = 8

// ReadHeader consumes the magic header from r. A short read, an empty source
// and a mismatching byte all fail with ErrIncorrectHeader. Any other failure
// of r is returned as an *IOError.
func ReadHeader(r io.Reader) error {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrIncorrectHeader
		}
		return &IOError{Op: "read header", Err: err}
	}

	if !bytes.Equal(header, Magic) {
		return ErrIncorrectHeader
	}

	return nil
}

// WriteHeader writes the magic header to w.
func WriteHeader(w io.Writer) error {
	if _, err := w.Write(Magic); err != nil {
		return &IOError{Op: "write header", Err: err}
	}

	return nil
}
