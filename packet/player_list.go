package packet

import (
	"github.com/google/uuid"

	"github.com/gstoney/bedrockproto/protocol"
)

// IDPlayerList is PlayerList's stable network ID.
const IDPlayerList uint32 = 63

// PlayerListType distinguishes an add-entries update from a remove-entries
// one; the wire shape of each PlayerListEntry depends on it.
type PlayerListType uint8

const (
	PlayerListAdd PlayerListType = iota
	PlayerListRemove
)

// PlayerListEntry is one row of a PlayerList update. Fields below the
// ADD-only comment are only populated (and only meaningful) when the
// packet's Type is PlayerListAdd.
type PlayerListEntry struct {
	UUID           uuid.UUID
	ActorUniqueID  int32
	Username       string

	// ADD-only fields.
	XboxUserID     string
	PlatformChatID string
	BuildPlatform  int32
	Skin           protocol.SkinData
	IsTeacher      bool
	IsHost         bool

	// Verified is filled in by PlayerList's trailing verified-skin band on
	// protocols >= 1.14.60 (§4.6); it is meaningless on REMOVE entries and
	// on older protocols it is always false because the trailer doesn't
	// exist on the wire.
	Verified bool
}

// PlayerList is the player-list codec (§4.6): a type-switched list of
// entries, with legacy (pre-1.13.0) skin reconstruction on ADD and a
// positional verified-skin trailer on ADD for protocols >= 1.14.60.
type PlayerList struct {
	Type    PlayerListType
	Entries []PlayerListEntry
}

// PlayerListAddEntries builds a PlayerList update of type ADD.
func PlayerListAddEntries(entries []PlayerListEntry) *PlayerList {
	return &PlayerList{Type: PlayerListAdd, Entries: entries}
}

// PlayerListRemoveEntries builds a PlayerList update of type REMOVE; only
// each entry's UUID is meaningful.
func PlayerListRemoveEntries(entries []PlayerListEntry) *PlayerList {
	return &PlayerList{Type: PlayerListRemove, Entries: entries}
}

func (pk *PlayerList) ID() uint32           { return IDPlayerList }
func (pk *PlayerList) Direction() Direction { return ClientBound }
func (pk *PlayerList) Handle(h Handler) bool {
	return h.HandlePlayerList(pk)
}

// DecodePayload is specified as a two-pass decode (§9.6 Open Questions):
// the main loop decodes every entry's base shape first, then — only for
// ADD on protocols >= 1.14.60 — a second pass reads the positional
// verified-flag trailer and mutates the already-decoded entries in order.
// Interleaving the two passes is wire-incompatible.
func (pk *PlayerList) DecodePayload(r *protocol.Reader) error {
	typeByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	pk.Type = PlayerListType(typeByte)

	var count uint32
	if err := r.ReadVarUint32(&count); err != nil {
		return err
	}
	pk.Entries = make([]PlayerListEntry, count)
	for i := range pk.Entries {
		if err := pk.decodeEntry(r, &pk.Entries[i]); err != nil {
			return err
		}
	}

	if pk.Type == PlayerListAdd && r.ProtocolID() >= protocol.Proto1_14_60 {
		for i := range pk.Entries {
			if err := r.ReadBool(&pk.Entries[i].Verified); err != nil {
				return err
			}
		}
	}
	return nil
}

func (pk *PlayerList) decodeEntry(r *protocol.Reader, e *PlayerListEntry) error {
	if err := r.ReadUUID(&e.UUID); err != nil {
		return err
	}
	if pk.Type == PlayerListRemove {
		return nil
	}

	if err := r.ReadActorUniqueID(&e.ActorUniqueID); err != nil {
		return err
	}
	if err := r.ReadString(&e.Username); err != nil {
		return err
	}

	if r.ProtocolID() >= protocol.Proto1_13_0 {
		if err := r.ReadString(&e.XboxUserID); err != nil {
			return err
		}
		if err := r.ReadString(&e.PlatformChatID); err != nil {
			return err
		}
		if err := r.ReadLInt32(&e.BuildPlatform); err != nil {
			return err
		}
		if err := r.ReadSkin(&e.Skin); err != nil {
			return err
		}
		if err := r.ReadBool(&e.IsTeacher); err != nil {
			return err
		}
		return r.ReadBool(&e.IsHost)
	}

	// Legacy (< 1.13.0): ReadSkin already reconstructs the canonical
	// SkinData from the cut-down 5-string wire representation.
	if err := r.ReadSkin(&e.Skin); err != nil {
		return err
	}
	if err := r.ReadString(&e.XboxUserID); err != nil {
		return err
	}
	return r.ReadString(&e.PlatformChatID)
}

// EncodePayload mirrors DecodePayload's two-pass shape: entries first,
// then (ADD, proto >= 1.14.60) the verified-flag trailer in the same
// entry order.
func (pk *PlayerList) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteByte(uint8(pk.Type)); err != nil {
		return err
	}
	if err := w.WriteVarUint32(uint32(len(pk.Entries))); err != nil {
		return err
	}
	for _, e := range pk.Entries {
		if err := pk.encodeEntry(w, e); err != nil {
			return err
		}
	}

	if pk.Type == PlayerListAdd && w.ProtocolID() >= protocol.Proto1_14_60 {
		for _, e := range pk.Entries {
			if err := w.WriteBool(e.Verified); err != nil {
				return err
			}
		}
	}
	return nil
}

func (pk *PlayerList) encodeEntry(w *protocol.Writer, e PlayerListEntry) error {
	if err := w.WriteUUID(e.UUID); err != nil {
		return err
	}
	if pk.Type == PlayerListRemove {
		return nil
	}

	if err := w.WriteActorUniqueID(e.ActorUniqueID); err != nil {
		return err
	}
	if err := w.WriteString(e.Username); err != nil {
		return err
	}

	if w.ProtocolID() >= protocol.Proto1_13_0 {
		if err := w.WriteString(e.XboxUserID); err != nil {
			return err
		}
		if err := w.WriteString(e.PlatformChatID); err != nil {
			return err
		}
		if err := w.WriteLInt32(e.BuildPlatform); err != nil {
			return err
		}
		if err := w.WriteSkin(e.Skin); err != nil {
			return err
		}
		if err := w.WriteBool(e.IsTeacher); err != nil {
			return err
		}
		return w.WriteBool(e.IsHost)
	}

	if err := w.WriteSkin(e.Skin); err != nil {
		return err
	}
	if err := w.WriteString(e.XboxUserID); err != nil {
		return err
	}
	return w.WriteString(e.PlatformChatID)
}
