package packet

import "github.com/gstoney/bedrockproto/protocol"

// Decode reads a framed packet payload (header included) against pool and
// returns the fully decoded Packet. An unknown network ID is
// ErrUnknownPacket, never a silent drop (Invariant V4). Decode does not
// itself check that the whole payload was consumed (P3) — callers that
// care can check r.Remaining() == 0 after Decode returns.
func Decode(r *protocol.Reader, pool Pool) (Packet, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	newPacket, ok := pool[header.NetworkID]
	if !ok {
		return nil, &ErrUnknownPacket{NetworkID: header.NetworkID}
	}
	pk := newPacket()
	if err := pk.DecodePayload(r); err != nil {
		return nil, err
	}
	return pk, nil
}

// Encode writes pk's header followed by its payload under the given
// protocol version.
func Encode(pk Packet, protocolID uint32) ([]byte, error) {
	w := protocol.NewWriter(protocolID)
	if err := WriteHeader(w, Header{NetworkID: pk.ID()}); err != nil {
		return nil, err
	}
	if err := pk.EncodePayload(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
