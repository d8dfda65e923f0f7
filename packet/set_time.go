package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDSetTime is SetTime's stable network ID.
const IDSetTime uint32 = 10

// SetTime sets the client's world time, in ticks, as a signed varint.
type SetTime struct {
	Time int32
}

func (pk *SetTime) ID() uint32           { return IDSetTime }
func (pk *SetTime) Direction() Direction { return ClientBound }
func (pk *SetTime) Handle(h Handler) bool {
	return h.HandleSetTime(pk)
}

func (pk *SetTime) DecodePayload(r *protocol.Reader) error {
	return r.ReadVarInt32(&pk.Time)
}

func (pk *SetTime) EncodePayload(w *protocol.Writer) error {
	return w.WriteVarInt32(pk.Time)
}
