package packet

// Pool maps a network ID to a constructor for the packet variant it names.
// It is immutable after construction and safe for concurrent reads from
// multiple goroutines decoding distinct packets (§5).
type Pool map[uint32]func() Packet

// NewServerPool returns the registry of packets a server decodes, i.e.
// every server-bound and bidirectional variant this package defines.
func NewServerPool() Pool {
	return newPool(ClientBound)
}

// NewClientPool returns the registry of packets a client decodes, i.e.
// every client-bound and bidirectional variant this package defines.
func NewClientPool() Pool {
	return newPool(ServerBound)
}

func newPool(excluded Direction) Pool {
	p := make(Pool)
	for _, pk := range registry {
		sample := pk()
		if sample.Direction() == excluded {
			continue
		}
		p[sample.ID()] = pk
	}
	return p
}

// registry lists every packet variant this package knows how to construct.
// It backs both NewServerPool and NewClientPool and is the single place a
// new packet variant must be added to become decodable (Invariant V4: the
// set of variants is closed and known at build time).
var registry = []func() Packet{
	func() Packet { return &SetSpawnPosition{} },
	func() Packet { return &Disconnect{} },
	func() Packet { return &Text{} },
	func() Packet { return &SetTime{} },
	func() Packet { return &RequestChunkRadius{} },
	func() Packet { return &ChunkRadiusUpdated{} },
	func() Packet { return &ResourcePacksInfo{} },
	func() Packet { return &AvailableCommands{} },
	func() Packet { return &ItemStackRequest{} },
	func() Packet { return &PlayerList{} },
}
