package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDDisconnect is Disconnect's stable network ID.
const IDDisconnect uint32 = 5

// Disconnect tells the receiving side the connection is closing and why.
// Message is omitted on the wire when HideDisconnectScreen is set: the
// client is expected to close without showing any reason at all.
type Disconnect struct {
	HideDisconnectScreen bool
	Message              string
}

func (pk *Disconnect) ID() uint32           { return IDDisconnect }
func (pk *Disconnect) Direction() Direction { return ClientBound }
func (pk *Disconnect) Handle(h Handler) bool {
	return h.HandleDisconnect(pk)
}

func (pk *Disconnect) DecodePayload(r *protocol.Reader) error {
	if err := r.ReadBool(&pk.HideDisconnectScreen); err != nil {
		return err
	}
	if pk.HideDisconnectScreen {
		pk.Message = ""
		return nil
	}
	return r.ReadString(&pk.Message)
}

func (pk *Disconnect) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteBool(pk.HideDisconnectScreen); err != nil {
		return err
	}
	if pk.HideDisconnectScreen {
		return nil
	}
	return w.WriteString(pk.Message)
}
