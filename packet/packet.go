// Package packet implements the Bedrock Edition packet polymorphism model:
// a closed set of message variants over the protocol-aware substrate in
// package protocol, each with a stable network ID, a direction, and
// matching decode/encode routines.
package packet

import "github.com/gstoney/bedrockproto/protocol"

// Direction classifies which side of a connection is expected to send a
// given packet variant.
type Direction uint8

const (
	ServerBound Direction = iota
	ClientBound
	Bidirectional
)

// Packet is the contract every packet variant satisfies. The header
// (network ID, and on protocols that carry one, the sender/receiver
// sub-ID byte) is consumed by the codec before DecodePayload runs, and
// produced after EncodePayload returns — a packet's own payload methods
// never see it.
type Packet interface {
	// ID returns the packet's stable network ID for this closed set.
	ID() uint32
	// Direction reports which side of a connection sends this packet.
	Direction() Direction
	// DecodePayload populates the packet's fields from r. It must consume
	// exactly the bytes EncodePayload would produce for the same value and
	// protocol version (Invariant V7).
	DecodePayload(r *protocol.Reader) error
	// EncodePayload emits the bytes DecodePayload would consume.
	EncodePayload(w *protocol.Writer) error
	// Handle invokes the one method on h that matches this packet's type
	// and reports whether h claimed it.
	Handle(h Handler) bool
}
