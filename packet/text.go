package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDText is Text's stable network ID.
const IDText uint32 = 9

// Text chat-message type codes. Only Chat, Whisper and Announcement carry a
// SourceName; the rest are server-authored system messages.
const (
	TextTypeRaw uint8 = iota
	TextTypeChat
	TextTypeTranslation
	TextTypePopup
	TextTypeJukeboxPopup
	TextTypeTip
	TextTypeSystem
	TextTypeWhisper
	TextTypeAnnouncement
	TextTypeJSONWhisper
	TextTypeJSON
	TextTypeJSONAnnouncement
)

// Text is the chat/system-message packet (§3.6). Its shape is the same in
// both directions; SourceName is only present on the wire for TextTypeChat,
// TextTypeWhisper and TextTypeAnnouncement.
type Text struct {
	TextType         uint8
	NeedsTranslation bool
	SourceName       string
	Message          string
	Parameters       []string
	XUID             string
	PlatformChatID   string
}

func (pk *Text) ID() uint32           { return IDText }
func (pk *Text) Direction() Direction { return Bidirectional }
func (pk *Text) Handle(h Handler) bool {
	return h.HandleText(pk)
}

func hasTextSourceName(textType uint8) bool {
	return textType == TextTypeChat || textType == TextTypeWhisper || textType == TextTypeAnnouncement
}

func (pk *Text) DecodePayload(r *protocol.Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	pk.TextType = b

	if err := r.ReadBool(&pk.NeedsTranslation); err != nil {
		return err
	}

	if hasTextSourceName(pk.TextType) {
		if err := r.ReadString(&pk.SourceName); err != nil {
			return err
		}
	}
	if err := r.ReadString(&pk.Message); err != nil {
		return err
	}

	if pk.TextType == TextTypeTranslation || pk.TextType == TextTypeJukeboxPopup {
		var n uint32
		if err := r.ReadVarUint32(&n); err != nil {
			return err
		}
		pk.Parameters = make([]string, n)
		for i := range pk.Parameters {
			if err := r.ReadString(&pk.Parameters[i]); err != nil {
				return err
			}
		}
	}

	if err := r.ReadString(&pk.XUID); err != nil {
		return err
	}
	return r.ReadString(&pk.PlatformChatID)
}

func (pk *Text) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteByte(pk.TextType); err != nil {
		return err
	}
	if err := w.WriteBool(pk.NeedsTranslation); err != nil {
		return err
	}

	if hasTextSourceName(pk.TextType) {
		if err := w.WriteString(pk.SourceName); err != nil {
			return err
		}
	}
	if err := w.WriteString(pk.Message); err != nil {
		return err
	}

	if pk.TextType == TextTypeTranslation || pk.TextType == TextTypeJukeboxPopup {
		if err := w.WriteVarUint32(uint32(len(pk.Parameters))); err != nil {
			return err
		}
		for _, p := range pk.Parameters {
			if err := w.WriteString(p); err != nil {
				return err
			}
		}
	}

	if err := w.WriteString(pk.XUID); err != nil {
		return err
	}
	return w.WriteString(pk.PlatformChatID)
}
