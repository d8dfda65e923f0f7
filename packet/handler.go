package packet

// Handler is implemented by application code that wants to react to
// decoded packets. Each method corresponds to one packet variant; it
// returns whether it claimed the packet. Returning false lets the caller
// offer the packet to the next handler in a chain (§6.3). Failing a
// handle is a protocol violation and should be signalled by the handler's
// own panic/error path, not by this interface.
type Handler interface {
	HandleSetSpawnPosition(pk *SetSpawnPosition) bool
	HandleDisconnect(pk *Disconnect) bool
	HandleText(pk *Text) bool
	HandleSetTime(pk *SetTime) bool
	HandleRequestChunkRadius(pk *RequestChunkRadius) bool
	HandleChunkRadiusUpdated(pk *ChunkRadiusUpdated) bool
	HandleResourcePacksInfo(pk *ResourcePacksInfo) bool
	HandleAvailableCommands(pk *AvailableCommands) bool
	HandleItemStackRequest(pk *ItemStackRequest) bool
	HandlePlayerList(pk *PlayerList) bool
}

// NopHandler implements Handler by refusing every packet. Embed it in a
// partial handler to only override the variants you care about.
type NopHandler struct{}

func (NopHandler) HandleSetSpawnPosition(*SetSpawnPosition) bool         { return false }
func (NopHandler) HandleDisconnect(*Disconnect) bool                     { return false }
func (NopHandler) HandleText(*Text) bool                                 { return false }
func (NopHandler) HandleSetTime(*SetTime) bool                           { return false }
func (NopHandler) HandleRequestChunkRadius(*RequestChunkRadius) bool     { return false }
func (NopHandler) HandleChunkRadiusUpdated(*ChunkRadiusUpdated) bool     { return false }
func (NopHandler) HandleResourcePacksInfo(*ResourcePacksInfo) bool       { return false }
func (NopHandler) HandleAvailableCommands(*AvailableCommands) bool       { return false }
func (NopHandler) HandleItemStackRequest(*ItemStackRequest) bool         { return false }
func (NopHandler) HandlePlayerList(*PlayerList) bool                     { return false }
