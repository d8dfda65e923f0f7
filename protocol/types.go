package protocol

// BlockPosition is a voxel coordinate. On the wire it is three signed
// varints (x, y, z); unlike an actor position it carries no sub-block
// precision.
type BlockPosition struct {
	X, Y, Z int32
}

// ReadBlockPosition reads three signed varints into a BlockPosition.
func (r *Reader) ReadBlockPosition(v *BlockPosition) error {
	if err := r.ReadVarInt32(&v.X); err != nil {
		return err
	}
	if err := r.ReadVarInt32(&v.Y); err != nil {
		return err
	}
	return r.ReadVarInt32(&v.Z)
}

// WriteBlockPosition writes a BlockPosition as three signed varints.
func (w *Writer) WriteBlockPosition(v BlockPosition) error {
	if err := w.WriteVarInt32(v.X); err != nil {
		return err
	}
	if err := w.WriteVarInt32(v.Y); err != nil {
		return err
	}
	return w.WriteVarInt32(v.Z)
}

// MinInt32Position is the sentinel triple used by SetSpawnPosition's
// "world spawn" constructor for the causing block, since a world spawn has
// no causing block.
var MinInt32Position = BlockPosition{X: minInt32, Y: minInt32, Z: minInt32}

const minInt32 = -2147483648

// ReadActorUniqueID reads an actor's unique ID, a signed varint.
func (r *Reader) ReadActorUniqueID(v *int32) error {
	return r.ReadVarInt32(v)
}

// WriteActorUniqueID writes an actor's unique ID as a signed varint.
func (w *Writer) WriteActorUniqueID(v int32) error {
	return w.WriteVarInt32(v)
}

// ReadGenericTypeNetworkID reads a generic network-scoped ID (used by
// ItemStackRequest for its request ID), a signed varint.
func (r *Reader) ReadGenericTypeNetworkID(v *int32) error {
	return r.ReadVarInt32(v)
}

// WriteGenericTypeNetworkID writes a generic network-scoped ID as a signed
// varint.
func (w *Writer) WriteGenericTypeNetworkID(v int32) error {
	return w.WriteVarInt32(v)
}
