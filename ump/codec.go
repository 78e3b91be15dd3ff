// SPDX-License-Identifier: EPL-2.0

package ump

import (
	"io"
	"slices"
	"strings"
	"sync"
)

// Decoder constructs a Clip from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Encoder serializes a Clip to an output writer.
type Encoder interface {
	Encode(w io.Writer, c *Clip) error
}

// Codec reads and writes one container format.
type Codec interface {
	Decoder
	Encoder
}

// Registry of codecs by format key (e.g., "clip", "mid").
// Keys are case-insensitive and may carry a leading dot.
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = c
}

func (r *Registry) Get(format string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[normalizeFormat(format)]
	return c, ok
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
