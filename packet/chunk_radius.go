package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDRequestChunkRadius is RequestChunkRadius's stable network ID.
const IDRequestChunkRadius uint32 = 69

// RequestChunkRadius asks the server for a given view-distance radius, in
// chunks.
type RequestChunkRadius struct {
	Radius int32
}

func (pk *RequestChunkRadius) ID() uint32           { return IDRequestChunkRadius }
func (pk *RequestChunkRadius) Direction() Direction { return ServerBound }
func (pk *RequestChunkRadius) Handle(h Handler) bool {
	return h.HandleRequestChunkRadius(pk)
}

func (pk *RequestChunkRadius) DecodePayload(r *protocol.Reader) error {
	return r.ReadVarInt32(&pk.Radius)
}

func (pk *RequestChunkRadius) EncodePayload(w *protocol.Writer) error {
	return w.WriteVarInt32(pk.Radius)
}

// IDChunkRadiusUpdated is ChunkRadiusUpdated's stable network ID.
const IDChunkRadiusUpdated uint32 = 70

// ChunkRadiusUpdated is the server's reply to RequestChunkRadius, carrying
// the radius it actually granted (which may be clamped below what was
// requested).
type ChunkRadiusUpdated struct {
	Radius int32
}

func (pk *ChunkRadiusUpdated) ID() uint32           { return IDChunkRadiusUpdated }
func (pk *ChunkRadiusUpdated) Direction() Direction { return ClientBound }
func (pk *ChunkRadiusUpdated) Handle(h Handler) bool {
	return h.HandleChunkRadiusUpdated(pk)
}

func (pk *ChunkRadiusUpdated) DecodePayload(r *protocol.Reader) error {
	return r.ReadVarInt32(&pk.Radius)
}

func (pk *ChunkRadiusUpdated) EncodePayload(w *protocol.Writer) error {
	return w.WriteVarInt32(pk.Radius)
}
