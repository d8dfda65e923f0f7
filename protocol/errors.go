package protocol

import "errors"

// Bounds errors are raised by the byte cursor when a read would exceed its
// window or a varint is malformed. They indicate truncation or a corrupt
// encoding, not protocol semantics.
var (
	ErrUnexpectedEOF = errors.New("protocol: unexpected end of buffer")
	// ErrVarIntTooLong is returned when a varint's continuation bit is still
	// set after the maximum 5 groups a 32-bit value can need.
	ErrVarIntTooLong = errors.New("protocol: varint exceeds 5 groups")
	// ErrVarIntOverflow is returned when a 5-group varint terminates within
	// budget but its final group carries bits beyond the 32nd, i.e. the
	// decoded magnitude cannot fit in a uint32. Distinct from
	// ErrVarIntTooLong, which rejects a 6th continued group regardless of
	// what it would have contributed.
	ErrVarIntOverflow = errors.New("protocol: varint overflows 32 bits")
)
