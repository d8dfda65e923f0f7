package packet

import (
	"bytes"
	"testing"

	"github.com/gstoney/bedrockproto/protocol"
)

// TestDecodeEncodeRoundTrip is Invariant V3/P1 exercised through the
// registry: Decode consumes a full framed payload (header + body) and
// Encode must reproduce it byte-for-byte for the same protocol.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	proto := protocol.Proto1_19_80
	pk := SpawnPositionWorld(0, protocol.BlockPosition{X: 1, Y: 2, Z: 3}, 0)

	encoded, err := Encode(pk, proto)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	pool := NewClientPool()
	r := protocol.NewReader(encoded, proto)
	decoded, err := Decode(r, pool)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Decode left %d bytes unconsumed", r.Remaining())
	}

	reEncoded, err := Encode(decoded, proto)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(encoded, reEncoded) {
		t.Errorf("round trip mismatch: got %x, want %x", reEncoded, encoded)
	}
}

// TestDecodeUnknownPacket is Invariant V4: an unknown network ID in the
// header must surface as a structured error, never a silent drop.
func TestDecodeUnknownPacket(t *testing.T) {
	w := protocol.NewWriter(protocol.Proto1_19_80)
	if err := WriteHeader(w, Header{NetworkID: 0x3FE}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.Proto1_19_80)
	_, err := Decode(r, NewClientPool())
	if err == nil {
		t.Fatal("Decode: got nil error for unknown packet, want ErrUnknownPacket")
	}
	unknown, ok := err.(*ErrUnknownPacket)
	if !ok {
		t.Fatalf("Decode: got %T, want *ErrUnknownPacket", err)
	}
	if unknown.NetworkID != 0x3FE {
		t.Errorf("ErrUnknownPacket.NetworkID: got %d, want %d", unknown.NetworkID, 0x3FE)
	}
}

// TestHandlerDispatch is §6.3: Handle invokes exactly the one method that
// matches the packet's type and reports whether it was consumed.
func TestHandlerDispatch(t *testing.T) {
	pk := SpawnPositionWorld(0, protocol.BlockPosition{}, 0)

	claimed := struct{ NopHandler }{}
	var calledWith *SetSpawnPosition
	h := handlerFunc{NopHandler: claimed.NopHandler, onSetSpawnPosition: func(p *SetSpawnPosition) bool {
		calledWith = p
		return true
	}}
	if !pk.Handle(h) {
		t.Error("Handle: got false, want true (handler claimed it)")
	}
	if calledWith != pk {
		t.Error("Handle: handler was not invoked with the packet instance")
	}
}

type handlerFunc struct {
	NopHandler
	onSetSpawnPosition func(*SetSpawnPosition) bool
}

func (h handlerFunc) HandleSetSpawnPosition(pk *SetSpawnPosition) bool {
	return h.onSetSpawnPosition(pk)
}
