package packet

import "github.com/gstoney/bedrockproto/protocol"

// Header is the per-packet framing consumed before DecodePayload runs and
// produced after EncodePayload returns (§6.2). It is not part of any
// packet's own payload grammar.
type Header struct {
	NetworkID     uint32
	SenderSubID   uint8
	ReceiverSubID uint8
}

const (
	headerIDMask     = 0x3FF
	senderSubIDShift = 10
	senderSubIDMask  = 0x3
	receiverSubShift = 12
	receiverSubMask  = 0x3
)

// ReadHeader decodes the unsigned-varint header word that precedes every
// packet payload: networkId | (senderSubId << 10) | (receiverSubId << 12).
func ReadHeader(r *protocol.Reader) (Header, error) {
	var raw uint32
	if err := r.ReadVarUint32(&raw); err != nil {
		return Header{}, err
	}
	return Header{
		NetworkID:     raw & headerIDMask,
		SenderSubID:   uint8((raw >> senderSubIDShift) & senderSubIDMask),
		ReceiverSubID: uint8((raw >> receiverSubShift) & receiverSubMask),
	}, nil
}

// WriteHeader encodes h as the unsigned-varint header word.
func WriteHeader(w *protocol.Writer, h Header) error {
	raw := (h.NetworkID & headerIDMask) |
		uint32(h.SenderSubID&senderSubIDMask)<<senderSubIDShift |
		uint32(h.ReceiverSubID&receiverSubMask)<<receiverSubShift
	return w.WriteVarUint32(raw)
}
