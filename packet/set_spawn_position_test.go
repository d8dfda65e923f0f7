package packet

import (
	"bytes"
	"testing"

	"github.com/gstoney/bedrockproto/protocol"
)

// TestSetSpawnPositionPlayerSpawn is scenario S1: protocol 1.16.0+, a
// player spawn with an explicit (sentinel) causing block.
func TestSetSpawnPositionPlayerSpawn(t *testing.T) {
	pk := SpawnPositionPlayer(1, protocol.BlockPosition{X: 10, Y: 64, Z: -20}, 0, protocol.MinInt32Position)
	want := []byte{
		0x02, 0x14, 0x80, 0x01, 0x27, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0x0F,
		0xFF, 0xFF, 0xFF, 0xFF, 0x0F,
		0xFF, 0xFF, 0xFF, 0xFF, 0x0F,
	}

	w := protocol.NewWriter(protocol.Proto1_16_0)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("EncodePayload: got %x, want %x", w.Bytes(), want)
	}

	var got SetSpawnPosition
	r := protocol.NewReader(want, protocol.Proto1_16_0)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}
	if got != *pk {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, *pk)
	}
}

// TestSetSpawnPositionLegacy is scenario S2: protocol 1.14, the
// spawnForced legacy tail instead of dimension/causing-block.
func TestSetSpawnPositionLegacy(t *testing.T) {
	pk := &SetSpawnPosition{
		SpawnType:     0,
		SpawnPosition: protocol.BlockPosition{X: 0, Y: 0, Z: 0},
		SpawnForced:   true,
	}
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x01}

	w := protocol.NewWriter(protocol.Proto1_14_60 - 1)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("EncodePayload: got %x, want %x", w.Bytes(), want)
	}

	var got SetSpawnPosition
	r := protocol.NewReader(want, protocol.Proto1_14_60-1)
	if err := got.DecodePayload(r); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("DecodePayload left %d bytes unconsumed", r.Remaining())
	}
	if got != *pk {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, *pk)
	}
}

// TestSetSpawnPositionPrefixSafety is P2 applied to the baseline pattern
// packet: every truncation of a valid encoding must fail bounds-safely.
func TestSetSpawnPositionPrefixSafety(t *testing.T) {
	pk := SpawnPositionWorld(0, protocol.BlockPosition{X: 1, Y: 2, Z: 3}, 0)
	w := protocol.NewWriter(protocol.Proto1_16_0)
	if err := pk.EncodePayload(w); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	full := w.Bytes()
	for n := 0; n < len(full); n++ {
		r := protocol.NewReader(full[:n], protocol.Proto1_16_0)
		var got SetSpawnPosition
		if err := got.DecodePayload(r); err != protocol.ErrUnexpectedEOF {
			t.Errorf("truncated to %d bytes: got err %v, want ErrUnexpectedEOF", n, err)
		}
	}
}
