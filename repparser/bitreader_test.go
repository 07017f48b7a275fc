package repparser

import (
	"errors"
	"testing"
)

func TestReadBits(t *testing.T) {
	w := new(bitWriter)
	w.writeBits(0b101, 3)
	w.writeBits(0x3ff, 10)
	w.writeBit(false)
	w.writeUint32(0xdeadbeef)

	br := &bitReader{b: w.b}
	if v, err := br.readBits(3); err != nil || v != 0b101 {
		t.Errorf("expected 0b101, got %d (%v)", v, err)
	}
	if v, err := br.readBits(10); err != nil || v != 0x3ff {
		t.Errorf("expected 0x3ff, got %d (%v)", v, err)
	}
	if bit, err := br.readBit(); err != nil || bit {
		t.Errorf("expected false bit (%v)", err)
	}
	if v, err := br.readUint32(); err != nil || v != 0xdeadbeef {
		t.Errorf("expected 0xdeadbeef, got %#x (%v)", v, err)
	}
}

func TestReadBitsPastEnd(t *testing.T) {
	br := &bitReader{b: []byte{0xff}}
	if _, err := br.readBits(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := br.readBits(3)
	var bitErr *BitstreamError
	if !errors.As(err, &bitErr) {
		t.Fatalf("expected BitstreamError, got %v", err)
	}
	if bitErr.BitPos != 6 {
		t.Errorf("expected bit position 6, got %d", bitErr.BitPos)
	}
}

func TestReadBitsMax(t *testing.T) {
	cases := []struct {
		value uint32
		max   uint32
		bits  int // exact width the encoding must consume
	}{
		{0, 1024, 10},   // power of two maxes are fixed width
		{1023, 1024, 10},
		{5, 20, 4},  // 5+16 >= 20: the 16s bit is never read
		{17, 20, 5}, // 1+16 < 20: all five bits are read
		{0, 2, 1},
		{6, 7, 3},
	}

	for _, c := range cases {
		w := new(bitWriter)
		w.writeBitsMax(c.value, c.max)
		if w.pos != c.bits {
			t.Errorf("writeBitsMax(%d, %d): expected %d bits written, got %d", c.value, c.max, c.bits, w.pos)
		}
		br := &bitReader{b: w.b}
		got, err := br.readBitsMax(c.max)
		if err != nil {
			t.Errorf("readBitsMax(%d, %d): unexpected error: %v", c.value, c.max, err)
			continue
		}
		if got != c.value {
			t.Errorf("readBitsMax(%d, %d): got %d", c.value, c.max, got)
		}
		if br.pos != c.bits {
			t.Errorf("readBitsMax(%d, %d): expected %d bits read, got %d", c.value, c.max, c.bits, br.pos)
		}
	}
}

func TestReadVector(t *testing.T) {
	w := new(bitWriter)
	w.writeVector(4, -13, 0, 27)

	br := &bitReader{b: w.b}
	v, err := br.readVector()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.X != -13 || v.Y != 0 || v.Z != 27 {
		t.Errorf("unexpected vector: %+v", v)
	}
}

func TestReadRotation(t *testing.T) {
	w := new(bitWriter)
	w.writeBit(true)
	w.writeByte(0xfe) // -2
	w.writeBit(false)
	w.writeBit(true)
	w.writeByte(100)

	br := &bitReader{b: w.b}
	rot, err := br.readRotation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rot.Yaw == nil || *rot.Yaw != -2 {
		t.Errorf("unexpected yaw: %v", rot.Yaw)
	}
	if rot.Pitch != nil {
		t.Errorf("expected absent pitch, got %v", *rot.Pitch)
	}
	if rot.Roll == nil || *rot.Roll != 100 {
		t.Errorf("unexpected roll: %v", rot.Roll)
	}
}

func TestReadFloat32(t *testing.T) {
	w := new(bitWriter)
	w.writeBit(true) // unaligned on purpose
	w.writeFloat32(4.5)

	br := &bitReader{b: w.b}
	if _, err := br.readBit(); err != nil {
		t.Fatal(err)
	}
	f, err := br.readFloat32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 4.5 {
		t.Errorf("expected 4.5, got %v", f)
	}
}

func TestReadText(t *testing.T) {
	raw := new(repWriter)
	raw.putText("boosted")

	w := new(bitWriter)
	w.writeBit(true) // shift the whole string off byte alignment
	for _, b := range raw.Bytes() {
		w.writeByte(b)
	}

	br := &bitReader{b: w.b}
	if _, err := br.readBit(); err != nil {
		t.Fatal(err)
	}
	s, err := br.readText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "boosted" {
		t.Errorf("expected %q, got %q", "boosted", s)
	}
}
