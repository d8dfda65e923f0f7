package protocol

import (
	"math"

	"github.com/google/uuid"
)

// Reader is a windowed byte cursor over a decoded packet payload. It carries
// the protocol version the payload was produced under: version-gated
// helpers (such as the skin codec) and packet codecs branch on that
// version, so the field is immutable for the lifetime of a single decode.
//
// A Reader never reads past its window; doing so returns ErrUnexpectedEOF
// rather than panicking.
type Reader struct {
	buf        []byte
	off        int
	protocolID uint32
}

// NewReader wraps buf for decoding under the given protocol version. buf is
// borrowed, not copied.
func NewReader(buf []byte, protocolID uint32) *Reader {
	return &Reader{buf: buf, protocolID: protocolID}
}

// ProtocolID returns the protocol version this Reader was constructed with.
func (r *Reader) ProtocolID() uint32 { return r.protocolID }

// Remaining reports the number of unread bytes left in the window.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.buf) {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadByte reads a single unsigned byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a single byte; any nonzero value decodes to true.
func (r *Reader) ReadBool(v *bool) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	*v = b != 0
	return nil
}

// ReadLInt32 reads a 4-byte little-endian signed integer.
func (r *Reader) ReadLInt32(v *int32) error {
	b, err := r.take(4)
	if err != nil {
		return err
	}
	*v = int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	return nil
}

// ReadLUint16 reads a 2-byte little-endian unsigned short.
func (r *Reader) ReadLUint16(v *uint16) error {
	b, err := r.take(2)
	if err != nil {
		return err
	}
	*v = uint16(b[0]) | uint16(b[1])<<8
	return nil
}

// ReadLFloat32 reads a 4-byte little-endian IEEE-754 binary32 float.
func (r *Reader) ReadLFloat32(v *float32) error {
	b, err := r.take(4)
	if err != nil {
		return err
	}
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	*v = math.Float32frombits(bits)
	return nil
}

// ReadVarUint32 reads an unsigned LEB128 varint, at most 5 groups. The 5th
// group only has 4 bits of room in a 32-bit result; a final group with bits
// set above that is ErrVarIntOverflow, distinct from running past 5 groups
// entirely (ErrVarIntTooLong).
func (r *Reader) ReadVarUint32(v *uint32) error {
	var out uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b&0x80 == 0 {
			if i == 4 && b&0x7F > 0x0F {
				return ErrVarIntOverflow
			}
			out |= uint32(b&0x7F) << (7 * i)
			*v = out
			return nil
		}
		out |= uint32(b&0x7F) << (7 * i)
	}
	return ErrVarIntTooLong
}

// ReadVarInt32 reads a zig-zag encoded signed LEB128 varint.
func (r *Reader) ReadVarInt32(v *int32) error {
	var u uint32
	if err := r.ReadVarUint32(&u); err != nil {
		return err
	}
	*v = int32(u>>1) ^ -int32(u&1)
	return nil
}

// ReadString reads an unsigned-varint length prefix followed by that many
// raw UTF-8 bytes. The length is bounded by the remaining window.
func (r *Reader) ReadString(v *string) error {
	var length uint32
	if err := r.ReadVarUint32(&length); err != nil {
		return err
	}
	b, err := r.take(int(length))
	if err != nil {
		return err
	}
	*v = string(b)
	return nil
}

// ReadBytes reads a raw byte slice prefixed by its unsigned-varint length.
func (r *Reader) ReadBytes(v *[]byte) error {
	var length uint32
	if err := r.ReadVarUint32(&length); err != nil {
		return err
	}
	b, err := r.take(int(length))
	if err != nil {
		return err
	}
	*v = append([]byte(nil), b...)
	return nil
}

// ReadUUID reads two little-endian u64 halves, most-significant half first,
// as a single 16-byte google/uuid.UUID.
func (r *Reader) ReadUUID(v *uuid.UUID) error {
	b, err := r.take(16)
	if err != nil {
		return err
	}
	var raw [16]byte
	// the two halves are independently little-endian; reverse each 8-byte
	// half in place so the result matches uuid.UUID's big-endian byte order.
	for i := 0; i < 8; i++ {
		raw[i] = b[7-i]
	}
	for i := 0; i < 8; i++ {
		raw[8+i] = b[15-i]
	}
	*v = uuid.UUID(raw)
	return nil
}
