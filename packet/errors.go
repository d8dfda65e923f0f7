package packet

import "fmt"

// DecodeError is raised when bytes parse but violate protocol rules: an
// unknown action ID, an enum/postfix index out of range, a
// parameter type bitfield missing ENUM/POSTFIX/VALID, or a constraint
// referencing a value the enum doesn't have. It is distinct from a bounds
// error (protocol.ErrUnexpectedEOF): the bytes were all there, but they
// don't mean anything valid. An unknown packet ID is reported separately,
// as ErrUnknownPacket.
type DecodeError struct {
	Packet string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("packet: decode %s: %s", e.Packet, e.Reason)
}

// EncodeError is raised when the in-memory catalog handed to an encoder is
// internally inconsistent — e.g. a parameter references an enum the intern
// builder never interned. This is a programmer error in the caller, not a
// data error, and should never occur for a catalog built by this package's
// own decoder.
type EncodeError struct {
	Packet string
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("packet: encode %s: %s", e.Packet, e.Reason)
}

// ErrUnknownPacket is returned by Decode when the header's network ID has
// no entry in the registry (Invariant V4): decoding an unknown ID is an
// error, not a silent drop.
type ErrUnknownPacket struct {
	NetworkID uint32
}

func (e *ErrUnknownPacket) Error() string {
	return fmt.Sprintf("packet: unknown network id %d", e.NetworkID)
}
