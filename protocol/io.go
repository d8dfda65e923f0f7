package protocol

// IO is the shared surface of Reader and Writer: both carry an immutable
// protocol version alongside their direction-specific read or write
// methods, mirroring the Encodable/Decodable split in
// ethaniccc-estatz__io.go, where Encode and Decode each take their own
// directional IO type rather than one bidirectional stream. Structured
// helpers that only need the version (not a read or write) can accept IO
// instead of choosing a direction.
type IO interface {
	ProtocolID() uint32
}

var (
	_ IO = (*Reader)(nil)
	_ IO = (*Writer)(nil)
)
