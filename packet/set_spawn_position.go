package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDSetSpawnPosition is SetSpawnPosition's stable network ID.
const IDSetSpawnPosition uint32 = 43

// SetSpawnPosition is the representative "baseline pattern" packet (§4.7):
// a version gate between an additive pair of fields (Dimension,
// CausingBlockPosition, proto >= 1.16.0) and a single legacy field
// (SpawnForced) it replaced.
//
// Use SpawnPositionPlayer or SpawnPositionWorld rather than constructing
// this directly — they encode the two shapes §6.4 calls out.
type SetSpawnPosition struct {
	SpawnType             int32
	SpawnPosition         protocol.BlockPosition
	Dimension             int32
	CausingBlockPosition  protocol.BlockPosition
	SpawnForced           bool
}

// SpawnPositionPlayer builds a SetSpawnPosition naming an explicit block
// that caused the respawn point to be set (e.g. a bed).
func SpawnPositionPlayer(spawnType int32, spawnPosition protocol.BlockPosition, dimension int32, causingBlockPosition protocol.BlockPosition) *SetSpawnPosition {
	return &SetSpawnPosition{
		SpawnType:            spawnType,
		SpawnPosition:        spawnPosition,
		Dimension:            dimension,
		CausingBlockPosition: causingBlockPosition,
	}
}

// SpawnPositionWorld builds a SetSpawnPosition for the world spawn, which
// has no causing block; the field is filled with the INT32_MIN sentinel
// triple instead of being left indeterminate.
func SpawnPositionWorld(spawnType int32, spawnPosition protocol.BlockPosition, dimension int32) *SetSpawnPosition {
	return &SetSpawnPosition{
		SpawnType:            spawnType,
		SpawnPosition:        spawnPosition,
		Dimension:            dimension,
		CausingBlockPosition: protocol.MinInt32Position,
	}
}

func (pk *SetSpawnPosition) ID() uint32           { return IDSetSpawnPosition }
func (pk *SetSpawnPosition) Direction() Direction { return ClientBound }

func (pk *SetSpawnPosition) DecodePayload(r *protocol.Reader) error {
	if err := r.ReadVarInt32(&pk.SpawnType); err != nil {
		return err
	}
	if err := r.ReadBlockPosition(&pk.SpawnPosition); err != nil {
		return err
	}
	if r.ProtocolID() >= protocol.Proto1_16_0 {
		pk.SpawnForced = false
		if err := r.ReadVarInt32(&pk.Dimension); err != nil {
			return err
		}
		return r.ReadBlockPosition(&pk.CausingBlockPosition)
	}
	pk.Dimension = 0
	pk.CausingBlockPosition = protocol.BlockPosition{}
	return r.ReadBool(&pk.SpawnForced)
}

func (pk *SetSpawnPosition) EncodePayload(w *protocol.Writer) error {
	if err := w.WriteVarInt32(pk.SpawnType); err != nil {
		return err
	}
	if err := w.WriteBlockPosition(pk.SpawnPosition); err != nil {
		return err
	}
	if w.ProtocolID() >= protocol.Proto1_16_0 {
		if err := w.WriteVarInt32(pk.Dimension); err != nil {
			return err
		}
		return w.WriteBlockPosition(pk.CausingBlockPosition)
	}
	return w.WriteBool(pk.SpawnForced)
}

func (pk *SetSpawnPosition) Handle(h Handler) bool {
	return h.HandleSetSpawnPosition(pk)
}
