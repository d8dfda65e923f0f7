package protocol

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

type varIntCase struct {
	desc      string
	v         int32
	ser       []byte
	expectErr error
}

var varInt32Cases = []varIntCase{
	{desc: "zero", v: 0, ser: []byte{0x00}},
	{desc: "one", v: 1, ser: []byte{0x02}},
	{desc: "ten", v: 10, ser: []byte{0x14}},
	{desc: "sixty-four", v: 64, ser: []byte{0x80, 0x01}},
	{desc: "negative twenty", v: -20, ser: []byte{0x27}},
	{desc: "int32 min", v: -2147483648, ser: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	{desc: "too long", v: 0, ser: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, expectErr: ErrVarIntTooLong},
	{desc: "unexpected eof", v: 0, ser: []byte{0xFF, 0xFF}, expectErr: ErrUnexpectedEOF},
}

func TestVarInt32RoundTrip(t *testing.T) {
	for _, tc := range varInt32Cases {
		t.Run(tc.desc, func(t *testing.T) {
			r := NewReader(tc.ser, Proto1_19_50)
			var got int32
			err := r.ReadVarInt32(&got)

			if tc.expectErr != nil {
				if err != tc.expectErr {
					t.Fatalf("ReadVarInt32: got err %v, want %v", err, tc.expectErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadVarInt32: %v", err)
			}
			if got != tc.v {
				t.Errorf("ReadVarInt32: got %d, want %d", got, tc.v)
			}
			if r.Remaining() != 0 {
				t.Errorf("ReadVarInt32 left %d bytes unconsumed", r.Remaining())
			}

			w := NewWriter(Proto1_19_50)
			if err := w.WriteVarInt32(tc.v); err != nil {
				t.Fatalf("WriteVarInt32: %v", err)
			}
			if !bytes.Equal(w.Bytes(), tc.ser) {
				t.Errorf("WriteVarInt32: got %x, want %x", w.Bytes(), tc.ser)
			}
		})
	}
}

// TestVarUint32Overflow is P4: a varint that terminates within 5 groups but
// whose final group carries bits beyond the 32nd is ErrVarIntOverflow, not
// a silently truncated value and not ErrVarIntTooLong (which covers a 6th
// continued group instead).
func TestVarUint32Overflow(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x10}, Proto1_19_50)
	var got uint32
	err := r.ReadVarUint32(&got)
	if err != ErrVarIntOverflow {
		t.Fatalf("ReadVarUint32: got err %v, want %v", err, ErrVarIntOverflow)
	}
}

// TestVarInt32PrefixSafety is P2: every truncation of a valid encoding
// must fail with a bounds error, never panic.
func TestVarInt32PrefixSafety(t *testing.T) {
	full := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	for n := 0; n < len(full); n++ {
		r := NewReader(full[:n], Proto1_19_50)
		var v int32
		if err := r.ReadVarInt32(&v); err != ErrUnexpectedEOF {
			t.Errorf("truncated to %d bytes: got err %v, want ErrUnexpectedEOF", n, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []struct {
		desc string
		v    string
		ser  []byte
	}{
		{desc: "empty", v: "", ser: []byte{0x00}},
		{desc: "ascii", v: "ping", ser: []byte{0x04, 'p', 'i', 'n', 'g'}},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			w := NewWriter(Proto1_19_50)
			if err := w.WriteString(tc.v); err != nil {
				t.Fatalf("WriteString: %v", err)
			}
			if !bytes.Equal(w.Bytes(), tc.ser) {
				t.Errorf("WriteString: got %x, want %x", w.Bytes(), tc.ser)
			}

			r := NewReader(tc.ser, Proto1_19_50)
			var got string
			if err := r.ReadString(&got); err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tc.v {
				t.Errorf("ReadString: got %q, want %q", got, tc.v)
			}
			if r.Remaining() != 0 {
				t.Errorf("ReadString left %d bytes unconsumed", r.Remaining())
			}
		})
	}
}

// TestStringPrefixSafety exercises P2 on length-prefixed content: a string
// claiming more bytes than remain in the window must fail bounds-safely.
func TestStringPrefixSafety(t *testing.T) {
	ser := []byte{0x05, 'h', 'e', 'l'}
	r := NewReader(ser, Proto1_19_50)
	var v string
	if err := r.ReadString(&v); err != ErrUnexpectedEOF {
		t.Errorf("got err %v, want ErrUnexpectedEOF", err)
	}
}

// TestUUIDRoundTrip is scenario S3's wire shape in isolation: two
// little-endian u64 halves, most-significant half first.
func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	want := []byte{
		0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00,
		0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA, 0x99, 0x88,
	}

	w := NewWriter(Proto1_19_50)
	if err := w.WriteUUID(id); err != nil {
		t.Fatalf("WriteUUID: %v", err)
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteUUID: got %x, want %x", w.Bytes(), want)
	}

	r := NewReader(want, Proto1_19_50)
	var got uuid.UUID
	if err := r.ReadUUID(&got); err != nil {
		t.Fatalf("ReadUUID: %v", err)
	}
	if got != id {
		t.Errorf("ReadUUID: got %s, want %s", got, id)
	}
}

func TestLIntAndLShortBounds(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, Proto1_19_50)
	var i32 int32
	if err := r.ReadLInt32(&i32); err != ErrUnexpectedEOF {
		t.Errorf("ReadLInt32 on short buffer: got %v, want ErrUnexpectedEOF", err)
	}

	r2 := NewReader([]byte{0x2A, 0x00}, Proto1_19_50)
	var u16 uint16
	if err := r2.ReadLUint16(&u16); err != nil {
		t.Fatalf("ReadLUint16: %v", err)
	}
	if u16 != 42 {
		t.Errorf("ReadLUint16: got %d, want 42", u16)
	}
}
