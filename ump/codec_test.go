// SPDX-License-Identifier: EPL-2.0

package ump

import (
	"errors"
	"io"
	"slices"
	"testing"
)

// mockCodec is a test codec implementation
type mockCodec struct {
	name string
}

func (c *mockCodec) Decode(r io.Reader) (*Clip, error) {
	return NewClip(NewDeltaClockstamp(0), NewDeltaClockstampTPQN(480)), nil
}

func (c *mockCodec) Encode(w io.Writer, clip *Clip) error {
	return WriteWords(w, clip.Words()...)
}

// failingCodec always returns an error
type failingCodec struct{}

func (c *failingCodec) Decode(r io.Reader) (*Clip, error) {
	return nil, errors.New("decode failed")
}

func (c *failingCodec) Encode(w io.Writer, clip *Clip) error {
	return errors.New("encode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	codec := &mockCodec{name: "clip"}

	registry.Register("clip", codec)

	got, ok := registry.Get("clip")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered codec")
	}

	if got != codec {
		t.Error("Registry.Get() returned different codec instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	clipCodec := &mockCodec{name: "clip"}
	smfCodec := &mockCodec{name: "mid"}
	failing := &failingCodec{}

	registry.Register("clip", clipCodec)
	registry.Register("mid", smfCodec)
	registry.Register("broken", failing)

	tests := []struct {
		format string
		want   Codec
		wantOK bool
	}{
		{"clip", clipCodec, true},
		{".clip", clipCodec, true},
		{"MID", smfCodec, true},
		{"broken", failing, true},
		{"wav", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong codec", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	codec1 := &mockCodec{name: "first"}
	codec2 := &mockCodec{name: "second"}

	registry.Register("clip", codec1)
	registry.Register("clip", codec2)

	got, ok := registry.Get("clip")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != codec2 {
		t.Error("Registry.Get() did not return the overwritten codec")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("mid", &mockCodec{})
	registry.Register(".Clip", &mockCodec{})
	registry.Register("smf", &mockCodec{})

	got := registry.Formats()
	want := []string{"clip", "mid", "smf"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	codec := &mockCodec{name: "test"}

	// Register concurrently
	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", codec)
			done <- true
		}()
	}

	// Get concurrently
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != codec {
		t.Error("Registry returned wrong codec after concurrent operations")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.codecs == nil {
		t.Error("NewRegistry() did not initialize codecs map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving codecs
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("clip", &mockCodec{})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("clip")
	}
}
