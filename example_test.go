// SPDX-License-Identifier: EPL-2.0

package umpclip_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/umpclip"
	"github.com/ik5/umpclip/formats/clip"
)

// Example_convertSMFToClip demonstrates converting a Standard MIDI File held
// in memory to a clip file.
func Example_convertSMFToClip() {
	midiFile := []byte{
		'M', 'T', 'h', 'd', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x01, 0x00, 0x60,
		'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x0C,
		0x00, 0x90, 0x3C, 0x64, // note on
		0x60, 0x80, 0x3C, 0x00, // note off, one quarter note later
		0x00, 0xFF, 0x2F, 0x00,
	}

	out := new(bytes.Buffer)
	if err := umpclip.ConvertSMFToClip(bytes.NewReader(midiFile), out, umpclip.Options{}); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	c, err := clip.ReadClip(out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(c)
	// Output:
	// Clip[00400000 00300060 F0200000 00000000 00000000 00000000 20903C64 00400060 20803C00 F0210000 00000000 00000000 00000000]
}

// Example_registry demonstrates choosing codecs by file extension.
func Example_registry() {
	reg := umpclip.NewRegistry(umpclip.Options{})

	for _, name := range []string{"song.clip", "song.MID", "song.wav"} {
		_, ok := reg.Get(name[len("song"):])
		fmt.Printf("%s: %v\n", name, ok)
	}
	// Output:
	// song.clip: true
	// song.MID: true
	// song.wav: false
}
