// SPDX-License-Identifier: EPL-2.0

package umptest

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBytes_BigEndian(t *testing.T) {
	t.Parallel()

	got := Bytes(0x12345678, 0x9ABCDEF0)
	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % X, want % X", got, want)
	}
}

func TestClipFile_PrefixesMagic(t *testing.T) {
	t.Parallel()

	got := ClipFile(0x00400000)
	if !bytes.HasPrefix(got, []byte("SMF2CLIP")) {
		t.Errorf("ClipFile() = % X, missing magic", got)
	}
	if len(got) != 12 {
		t.Errorf("len(ClipFile()) = %d, want 12", len(got))
	}
}

func TestFailingReader(t *testing.T) {
	t.Parallel()

	r := &FailingReader{Data: []byte{1, 2, 3}}
	got, err := io.ReadAll(r)
	if !errors.Is(err, ErrInjected) {
		t.Errorf("ReadAll() error = %v, want ErrInjected", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("ReadAll() = %v, want [1 2 3]", got)
	}
}

func TestFailingWriter(t *testing.T) {
	t.Parallel()

	w := &FailingWriter{Limit: 2}
	n, err := w.Write([]byte{1, 2, 3})
	if n != 2 {
		t.Errorf("Write() n = %d, want 2", n)
	}
	if !errors.Is(err, ErrInjected) {
		t.Errorf("Write() error = %v, want ErrInjected", err)
	}

	custom := errors.New("disk full")
	w = &FailingWriter{Limit: 0, Err: custom}
	if _, err := w.Write([]byte{1}); !errors.Is(err, custom) {
		t.Errorf("Write() error = %v, want %v", err, custom)
	}
}
