package packet

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/gstoney/bedrockproto/protocol"
)

// TestPlayerListRemove is scenario S3: a REMOVE update carries only each
// entry's UUID, as two little-endian u64 halves.
func TestPlayerListRemove(t *testing.T) {
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	pk := PlayerListRemoveEntries([]PlayerListEntry{{UUID: id}})

	want := []byte{0x01, 0x01,
		0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00,
		0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA, 0x99, 0x88,
	}

	w := protocol.NewWriter(protocol.Proto1_19_50)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("EncodePayload: got %x, want %x", w.Bytes(), want)
	}

	var got PlayerList
	r := protocol.NewReader(want, protocol.Proto1_19_50)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}
	if got.Type != PlayerListRemove {
		t.Errorf("Type: got %v, want PlayerListRemove", got.Type)
	}
	if len(got.Entries) != 1 || got.Entries[0].UUID != id {
		t.Errorf("Entries: got %+v", got.Entries)
	}
}

func samplePlayerListEntry(name string) PlayerListEntry {
	return PlayerListEntry{
		UUID:          uuid.New(),
		ActorUniqueID: 7,
		Username:      name,
		XboxUserID:    "xuid-" + name,
		BuildPlatform: 2,
		Skin:          protocol.SkinData{SkinID: "skin-" + name},
	}
}

// TestPlayerListAddVerifiedTrailerIndependence is scenario S4: on
// proto >= 1.14.60, the trailing verified-flag band is positional, not
// interleaved, and mutating only those trailing bytes must change each
// entry's Verified flag independently of everything decoded before it.
func TestPlayerListAddVerifiedTrailerIndependence(t *testing.T) {
	entries := []PlayerListEntry{samplePlayerListEntry("alice"), samplePlayerListEntry("bob")}
	pk := PlayerListAddEntries(entries)

	w := protocol.NewWriter(protocol.Proto1_19_50)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	encoded := append([]byte(nil), w.Bytes()...)
	if len(encoded) < 2 {
		t.Fatalf("encoded payload too short: %x", encoded)
	}

	// The two trailing bytes are the verified flags, in entry order.
	trailer := encoded[len(encoded)-2:]
	if trailer[0] != 0 || trailer[1] != 0 {
		t.Fatalf("expected zero verified trailer, got %x", trailer)
	}

	flip := func(idx int) PlayerList {
		mutated := append([]byte(nil), encoded...)
		mutated[len(mutated)-2+idx] = 1

		var got PlayerList
		r := protocol.NewReader(mutated, protocol.Proto1_19_50)
		if err := got.DecodePayload(r); err != nil {
			t.Fatalf("DecodePayload after flipping trailer[%d]: %v", idx, err)
		}
		return got
	}

	firstFlipped := flip(0)
	if !firstFlipped.Entries[0].Verified || firstFlipped.Entries[1].Verified {
		t.Errorf("flipping trailer[0]: got verified=%v,%v, want true,false",
			firstFlipped.Entries[0].Verified, firstFlipped.Entries[1].Verified)
	}
	if firstFlipped.Entries[0].Username != "alice" || firstFlipped.Entries[1].Username != "bob" {
		t.Errorf("flipping the trailer must not disturb decoded entry fields: got %+v", firstFlipped.Entries)
	}

	secondFlipped := flip(1)
	if secondFlipped.Entries[0].Verified || !secondFlipped.Entries[1].Verified {
		t.Errorf("flipping trailer[1]: got verified=%v,%v, want false,true",
			secondFlipped.Entries[0].Verified, secondFlipped.Entries[1].Verified)
	}
}

// TestPlayerListAddLegacySkinReconstruction exercises the pre-1.13.0 path:
// ReadSkin must reconstruct a complete SkinData from the cut-down 5-string
// wire representation, with no post-fixup step required by the caller.
func TestPlayerListAddLegacySkinReconstruction(t *testing.T) {
	id := uuid.New()
	entry := PlayerListEntry{
		UUID:          id,
		ActorUniqueID: 3,
		Username:      "carol",
		Skin: protocol.SkinData{
			SkinID:       "geometry.humanoid.custom",
			SkinImage:    protocol.SkinImage{Width: 64, Height: 32, Pixels: make([]byte, 64*32*4)},
			CapeImage:    protocol.SkinImage{Width: 64, Height: 32, Pixels: make([]byte, 64*32*4)},
			GeometryName: "geometry.humanoid.custom",
			GeometryData: []byte(`{"geometry":{}}`),
		},
		XboxUserID:     "xuid-carol",
		PlatformChatID: "",
	}
	pk := PlayerListAddEntries([]PlayerListEntry{entry})

	proto := protocol.Proto1_13_0 - 1
	w := protocol.NewWriter(proto)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	var got PlayerList
	r := protocol.NewReader(w.Bytes(), proto)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}

	gotEntry := got.Entries[0]
	if gotEntry.Skin.SkinID != entry.Skin.SkinID {
		t.Errorf("SkinID: got %q, want %q", gotEntry.Skin.SkinID, entry.Skin.SkinID)
	}
	if gotEntry.Skin.ResourcePatch != nil {
		t.Errorf("legacy skin must decode with an empty resource patch, got %v", gotEntry.Skin.ResourcePatch)
	}
	if gotEntry.Skin.SkinImage.Width != 64 || gotEntry.Skin.SkinImage.Height != 32 {
		t.Errorf("SkinImage dims: got %dx%d, want 64x32", gotEntry.Skin.SkinImage.Width, gotEntry.Skin.SkinImage.Height)
	}
}
