package packet

import (
	"testing"

	"github.com/gstoney/bedrockproto/protocol"
)

// TestItemStackRequestActionRenumbering is scenario S7: on a protocol
// older than 1.18.10, LabTableCombine's canonical tag collapses onto the
// wire tag PLACE_INTO_BUNDLE, which doesn't otherwise exist on that wire.
func TestItemStackRequestActionRenumbering(t *testing.T) {
	proto := protocol.Proto1_17_10
	if proto >= protocol.Proto1_18_10 {
		t.Fatal("test fixture assumption broken: Proto1_17_10 must be < Proto1_18_10")
	}

	action := &LabTableCombineAction{}
	w := protocol.NewWriter(proto)
	if err := encodeAction(w, action); err != nil {
		t.Fatalf("encodeAction: %v", err)
	}
	wire := w.Bytes()
	if len(wire) == 0 || wire[0] != actionPlaceIntoBundle {
		t.Fatalf("wire tag: got %v, want first byte %d (PLACE_INTO_BUNDLE)", wire, actionPlaceIntoBundle)
	}

	r := protocol.NewReader(wire, proto)
	decoded, err := decodeAction(r)
	if err != nil {
		t.Fatalf("decodeAction: %v", err)
	}
	if decoded.ActionTag() != actionLabTableCombine {
		t.Errorf("decoded tag: got %d, want actionLabTableCombine (%d)", decoded.ActionTag(), actionLabTableCombine)
	}
	if _, ok := decoded.(*LabTableCombineAction); !ok {
		t.Errorf("decoded type: got %T, want *LabTableCombineAction", decoded)
	}
}

// TestItemStackRequestActionRenumberingNewProtocol checks the identity
// side of the shim: on protocols >= 1.18.10 the canonical and wire tags
// coincide.
func TestItemStackRequestActionRenumberingNewProtocol(t *testing.T) {
	if wireActionTag(actionLabTableCombine, protocol.Proto1_18_10) != actionLabTableCombine {
		t.Errorf("wireActionTag on new proto should be identity")
	}
	if canonicalActionTag(actionLabTableCombine, protocol.Proto1_18_10) != actionLabTableCombine {
		t.Errorf("canonicalActionTag on new proto should be identity")
	}
}

// TestItemStackRequestRoundTrip is P1 applied to the full packet: a sample
// of seven action kinds, plus the filterStrings/filterStringCause trailers
// gated at their own protocol thresholds.
func TestItemStackRequestRoundTrip(t *testing.T) {
	pk := &ItemStackRequest{
		RequestID: -42,
		Actions: []ItemStackRequestAction{
			&TakeAction{Count: 3, Source: StackRequestSlotInfo{ContainerID: 1, Slot: 2, StackNetworkID: 5}, Destination: StackRequestSlotInfo{ContainerID: 3, Slot: 4, StackNetworkID: 6}},
			&SwapAction{Source: StackRequestSlotInfo{ContainerID: 1, Slot: 1}, Destination: StackRequestSlotInfo{ContainerID: 2, Slot: 2}},
			&DropAction{Count: 1, Source: StackRequestSlotInfo{ContainerID: 0, Slot: 9}, Randomly: true},
			&MineBlockAction{SlotID: 4, ItemNetworkID: 100, ItemMetadata: 0},
			&CraftRecipeAction{RecipeNetworkID: 77},
			&LabTableCombineAction{},
			&BeaconPaymentAction{PrimaryEffect: 1, SecondaryEffect: 2},
		},
		FilterStrings:     []string{"renamed item"},
		FilterStringCause: 5,
	}

	proto := protocol.Proto1_19_80
	w := protocol.NewWriter(proto)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	var got ItemStackRequest
	r := protocol.NewReader(w.Bytes(), proto)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}
	if got.RequestID != pk.RequestID {
		t.Errorf("RequestID: got %d, want %d", got.RequestID, pk.RequestID)
	}
	if len(got.Actions) != len(pk.Actions) {
		t.Fatalf("Actions: got %d, want %d", len(got.Actions), len(pk.Actions))
	}
	for i := range pk.Actions {
		if got.Actions[i].ActionTag() != pk.Actions[i].ActionTag() {
			t.Errorf("Actions[%d] tag: got %d, want %d", i, got.Actions[i].ActionTag(), pk.Actions[i].ActionTag())
		}
	}
	if len(got.FilterStrings) != 1 || got.FilterStrings[0] != "renamed item" {
		t.Errorf("FilterStrings: got %v", got.FilterStrings)
	}
	if got.FilterStringCause != 5 {
		t.Errorf("FilterStringCause: got %d, want 5", got.FilterStringCause)
	}
}

// TestItemStackRequestPreFilterStringsProtocol checks the additive gate on
// FilterStrings/FilterStringCause (§4.5.1): older protocols carry neither.
func TestItemStackRequestPreFilterStringsProtocol(t *testing.T) {
	pk := &ItemStackRequest{
		RequestID: 1,
		Actions:   []ItemStackRequestAction{&DestroyAction{Count: 1, Source: StackRequestSlotInfo{}}},
	}
	proto := protocol.Proto1_16_200 - 1
	w := protocol.NewWriter(proto)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	var got ItemStackRequest
	r := protocol.NewReader(w.Bytes(), proto)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}
	if got.FilterStrings != nil {
		t.Errorf("FilterStrings: got %v, want nil on pre-1.16.200 protocol", got.FilterStrings)
	}
	if got.FilterStringCause != 0 {
		t.Errorf("FilterStringCause: got %d, want 0 on pre-1.19.50 protocol", got.FilterStringCause)
	}
}

// TestItemStackRequestUnknownActionTag is §7's "unknown action ID" decode
// error: an unrecognized wire tag must fail decode, never silently drop.
func TestItemStackRequestUnknownActionTag(t *testing.T) {
	r := protocol.NewReader([]byte{0xFE}, protocol.Proto1_19_80)
	if _, err := decodeAction(r); err == nil {
		t.Fatal("decodeAction: got nil error for unknown tag, want a decode error")
	} else if _, ok := err.(*DecodeError); !ok {
		t.Errorf("decodeAction: got %T, want *DecodeError", err)
	}
}

// TestItemStackRequestPrefixSafety is P2 for the action union.
func TestItemStackRequestPrefixSafety(t *testing.T) {
	a := &TakeAction{Count: 2, Source: StackRequestSlotInfo{ContainerID: 1, Slot: 2, StackNetworkID: 9}, Destination: StackRequestSlotInfo{ContainerID: 3, Slot: 4, StackNetworkID: 10}}
	w := protocol.NewWriter(protocol.Proto1_19_80)
	if err := encodeAction(w, a); err != nil {
		t.Fatalf("encodeAction: %v", err)
	}
	full := w.Bytes()
	for n := 0; n < len(full); n++ {
		r := protocol.NewReader(full[:n], protocol.Proto1_19_80)
		if _, err := decodeAction(r); err != protocol.ErrUnexpectedEOF {
			t.Errorf("truncated to %d bytes: got err %v, want ErrUnexpectedEOF", n, err)
		}
	}
}
