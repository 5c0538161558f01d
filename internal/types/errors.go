package types

import "errors"

var (
	// ErrTruncatedInput is returned when fewer than HeaderLength bytes are
	// available where a header was expected.
	ErrTruncatedInput = errors.New("truncated input: LIF header requires 32 bytes")

	// ErrUnknownType is returned for a file type with no length encoding or a
	// mnemonic with no registry entry.
	ErrUnknownType = errors.New("unknown LIF file type")

	// ErrInvalidName is returned when a LIF file name cannot be derived.
	ErrInvalidName = errors.New("invalid LIF file name")

	// ErrIOFailure is returned when a stream read or write comes up short.
	ErrIOFailure = errors.New("I/O failure")

	// ErrLengthOutOfRange is returned when a payload is too long for the
	// length encoding of its file type.
	ErrLengthOutOfRange = errors.New("length not representable for LIF file type")
)
