package protocol

import (
	"bytes"
	"math"

	"github.com/google/uuid"
)

// Writer accumulates an encoded packet payload into a growable buffer. Like
// Reader, it carries the protocol version that version-gated helpers and
// packet codecs branch on.
type Writer struct {
	buf        *bytes.Buffer
	protocolID uint32
}

// NewWriter returns a Writer that encodes under the given protocol version.
func NewWriter(protocolID uint32) *Writer {
	return &Writer{buf: new(bytes.Buffer), protocolID: protocolID}
}

// ProtocolID returns the protocol version this Writer was constructed with.
func (w *Writer) ProtocolID() uint32 { return w.protocolID }

// Bytes returns the accumulated buffer. The slice is only valid until the
// next write.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// WriteByte writes a single unsigned byte.
func (w *Writer) WriteByte(v byte) error {
	w.buf.WriteByte(v)
	return nil
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

// WriteLInt32 writes a 4-byte little-endian signed integer.
func (w *Writer) WriteLInt32(v int32) error {
	u := uint32(v)
	w.buf.Write([]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)})
	return nil
}

// WriteLUint16 writes a 2-byte little-endian unsigned short.
func (w *Writer) WriteLUint16(v uint16) error {
	w.buf.Write([]byte{byte(v), byte(v >> 8)})
	return nil
}

// WriteLFloat32 writes a 4-byte little-endian IEEE-754 binary32 float.
func (w *Writer) WriteLFloat32(v float32) error {
	bits := math.Float32bits(v)
	w.buf.Write([]byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)})
	return nil
}

// WriteVarUint32 writes an unsigned LEB128 varint.
func (w *Writer) WriteVarUint32(v uint32) error {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return nil
		}
	}
}

// WriteVarInt32 writes a zig-zag encoded signed LEB128 varint.
func (w *Writer) WriteVarInt32(v int32) error {
	u := uint32(v<<1) ^ uint32(v>>31)
	return w.WriteVarUint32(u)
}

// WriteString writes an unsigned-varint length prefix followed by the raw
// UTF-8 bytes of v. No null terminator, no BOM.
func (w *Writer) WriteString(v string) error {
	if err := w.WriteVarUint32(uint32(len(v))); err != nil {
		return err
	}
	w.buf.WriteString(v)
	return nil
}

// WriteBytes writes v prefixed by its unsigned-varint length.
func (w *Writer) WriteBytes(v []byte) error {
	if err := w.WriteVarUint32(uint32(len(v))); err != nil {
		return err
	}
	w.buf.Write(v)
	return nil
}

// WriteUUID writes v as two little-endian u64 halves, most-significant half
// first, mirroring Reader.ReadUUID.
func (w *Writer) WriteUUID(v uuid.UUID) error {
	var raw [16]byte
	for i := 0; i < 8; i++ {
		raw[i] = v[7-i]
	}
	for i := 0; i < 8; i++ {
		raw[8+i] = v[15-i]
	}
	w.buf.Write(raw[:])
	return nil
}
