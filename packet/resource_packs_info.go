package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDResourcePacksInfo is ResourcePacksInfo's stable network ID.
const IDResourcePacksInfo uint32 = 6

// ResourcePacksInfo tells the client which resource/behavior packs the
// server wants it to download before entering the world. The per-pack
// entry sub-codec is outside the core's hard-case scope (§3.6); PackCount
// is decoded and re-encoded faithfully, but the struct has no entries
// field: decode stops after PackCount, so any per-pack entry bytes that
// follow a nonzero count are left unread.
type ResourcePacksInfo struct {
	MustAccept bool
	HasAddons  bool
	HasScripts bool
	PackCount  uint32
}

func (pk *ResourcePacksInfo) ID() uint32           { return IDResourcePacksInfo }
func (pk *ResourcePacksInfo) Direction() Direction { return ClientBound }
func (pk *ResourcePacksInfo) Handle(h Handler) bool {
	return h.HandleResourcePacksInfo(pk)
}

func (pk *ResourcePacksInfo) DecodePayload(r *protocol.Reader) error {
	if err := r.ReadBool(&pk.MustAccept); err != nil {
		return err
	}
	if err := r.ReadBool(&pk.HasAddons); err != nil {
		return err
	}
	if err := r.ReadBool(&pk.HasScripts); err != nil {
		return err
	}
	return r.ReadVarUint32(&pk.PackCount)
}

func (pk *ResourcePacksInfo) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteBool(pk.MustAccept); err != nil {
		return err
	}
	if err := w.WriteBool(pk.HasAddons); err != nil {
		return err
	}
	if err := w.WriteBool(pk.HasScripts); err != nil {
		return err
	}
	return w.WriteVarUint32(pk.PackCount)
}
