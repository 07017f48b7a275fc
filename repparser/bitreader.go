// This file contains the bit reader the network decoder runs on. It views
// the raw network-data slice of the body without copying it and reads bits
// least significant first, the way the engine serializes them.

package repparser

import (
	"math"

	"github.com/hexhaus/rlrep/rep/repnet"
)

// bitReader is a bit-granular cursor over a byte slice.
type bitReader struct {
	// b is the byte slice to read from
	b []byte

	// pos is the index of the next bit to read
	pos int
}

// bitsRemaining returns the number of unread bits.
func (br *bitReader) bitsRemaining() int {
	return len(br.b)*8 - br.pos
}

// readBit returns the next bit.
func (br *bitReader) readBit() (bool, error) {
	if br.pos >= len(br.b)*8 {
		return false, &BitstreamError{Needed: 1, BitPos: br.pos}
	}
	bit := br.b[br.pos>>3]>>(br.pos&7)&1 == 1
	br.pos++
	return bit, nil
}

// readBits returns the next n bits (n <= 32), least significant first.
func (br *bitReader) readBits(n uint) (uint32, error) {
	if br.bitsRemaining() < int(n) {
		return 0, &BitstreamError{Needed: int(n), BitPos: br.pos}
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		if br.b[br.pos>>3]>>(br.pos&7)&1 == 1 {
			v |= 1 << i
		}
		br.pos++
	}
	return v, nil
}

// readByte returns the next 8 bits.
func (br *bitReader) readByte() (byte, error) {
	v, err := br.readBits(8)
	return byte(v), err
}

// readBytes returns the next n bytes.
func (br *bitReader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := range buf {
		b, err := br.readByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// readUint32 returns the next 32 bits.
func (br *bitReader) readUint32() (uint32, error) {
	return br.readBits(32)
}

// readInt32 returns the next 32 bits as a signed value.
func (br *bitReader) readInt32() (int32, error) {
	v, err := br.readBits(32)
	return int32(v), err
}

// readUint64 returns the next 64 bits.
func (br *bitReader) readUint64() (uint64, error) {
	lo, err := br.readBits(32)
	if err != nil {
		return 0, err
	}
	hi, err := br.readBits(32)
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// readFloat32 returns the next 32 bits as a float.
func (br *bitReader) readFloat32() (float32, error) {
	v, err := br.readBits(32)
	return math.Float32frombits(v), err
}

// readBitsMax reads a serialized int: a variable-width value in [0, max)
// accumulated least significant bit first for as long as setting the next
// bit could still yield a value below max.
func (br *bitReader) readBitsMax(max uint32) (uint32, error) {
	var v uint32
	for mask := uint32(1); mask != 0 && v+mask < max; mask <<= 1 {
		bit, err := br.readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			v += mask
		}
	}
	return v, nil
}

// readText reads a length-prefixed string from the bit stream. Same framing
// as the byte level strings, payload bytes read bit by bit.
func (br *bitReader) readText() (string, error) {
	size, err := br.readInt32()
	if err != nil {
		return "", err
	}
	byteLen, utf16 := int(size), false
	if size < 0 {
		if size == math.MinInt32 {
			return "", &StringSizeError{Size: size}
		}
		byteLen, utf16 = int(-size)*2, true
	}
	if byteLen*8 > br.bitsRemaining() {
		return "", &StringSizeError{Size: size}
	}
	raw, err := br.readBytes(byteLen)
	if err != nil {
		return "", err
	}
	return decodeText(raw, utf16)
}

// readVector reads a compressed vector: a serialized bit count followed by
// three biased magnitudes, each two bits wider than that count.
func (br *bitReader) readVector() (repnet.Vector, error) {
	size, err := br.readBitsMax(maxVectorBits)
	if err != nil {
		return repnet.Vector{}, err
	}
	bias := int32(1) << (size + 1)
	width := uint(size) + 2
	var xyz [3]int32
	for i := range xyz {
		m, err := br.readBits(width)
		if err != nil {
			return repnet.Vector{}, err
		}
		xyz[i] = int32(m) - bias
	}
	return repnet.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// maxVectorBits bounds the per-component bit count of a compressed vector.
const maxVectorBits = 20

// readRotation reads three bit-gated signed byte axes.
func (br *bitReader) readRotation() (repnet.Rotation, error) {
	var rot repnet.Rotation
	var err error
	if rot.Yaw, err = br.readOptByte(); err != nil {
		return rot, err
	}
	if rot.Pitch, err = br.readOptByte(); err != nil {
		return rot, err
	}
	if rot.Roll, err = br.readOptByte(); err != nil {
		return rot, err
	}
	return rot, nil
}

// readOptByte reads a bit-gated signed byte.
func (br *bitReader) readOptByte() (*int8, error) {
	present, err := br.readBit()
	if err != nil || !present {
		return nil, err
	}
	b, err := br.readByte()
	if err != nil {
		return nil, err
	}
	v := int8(b)
	return &v, nil
}
