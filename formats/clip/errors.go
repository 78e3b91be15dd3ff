// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"fmt"
)

var (
	// ErrIncorrectHeader indicates a missing, truncated or wrong magic header
	ErrIncorrectHeader = errors.New("incorrect MIDI 2.0 clip file header")

	// ErrParse matches every *ParseError through errors.Is
	ErrParse = errors.New("clip parse error")

	// ErrFormatValidation matches every *FormatError through errors.Is
	ErrFormatValidation = errors.New("UMP format validation failed")
)

// Parse error reasons.
const (
	ReasonNonZeroClockstamp     = "initial delta clockstamp must be zero"
	ReasonIncompleteHeader      = "configuration header is incomplete"
	ReasonProfilesWithoutHeader = "profile declarations without configuration header"
	ReasonAfterEndOfClip        = "message after end of clip"
)

// ParseError reports a structural or semantic violation of the clip format.
type ParseError struct {
	// Offset is the byte offset of the offending message in the file.
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("clip parse error at offset %d: %s", e.Offset, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FormatError reports a UMP message that failed field validation. Err wraps
// one of the ump package sentinels.
type FormatError struct {
	Offset int64
	Word   uint32
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid UMP message %#08x at offset %d: %v", e.Word, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormatValidation
}

// IOError wraps a failure of the underlying byte source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("clip %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
