// SPDX-License-Identifier: EPL-2.0

package ump

import "errors"

var (
	ErrEmptyMessage         = errors.New("empty UMP message")
	ErrTruncatedMessage     = errors.New("truncated UMP message")
	ErrUnexpectedStatus     = errors.New("unexpected UMP status")
	ErrDataOutOfRange       = errors.New("UMP data byte out of range")
	ErrInvalidByteCount     = errors.New("invalid UMP byte count")
	ErrReservedMessageType  = errors.New("reserved UMP message type")
	ErrMissingConfiguration = errors.New("clip has no configuration header")
	ErrInvalidTPQN          = errors.New("ticks per quarter note must be positive")
)
