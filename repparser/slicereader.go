// This file contains a slice reader which aids reading data from a byte
// slice. All reads are bounds checked and little-endian; the read position is
// an absolute offset into the replay file so errors can report where they
// happened.

package repparser

import (
	"encoding/binary"
	"math"
)

// sliceReader aids reading data from a byte slice.
type sliceReader struct {
	// b is the byte slice to read from
	b []byte

	// pos is the index of the next byte to read
	pos int
}

// remaining returns the number of unread bytes.
func (sr *sliceReader) remaining() int {
	return len(sr.b) - sr.pos
}

// need errors if fewer than n bytes are left. Negative sizes, which can come
// from hostile length prefixes, never pass.
func (sr *sliceReader) need(n int) error {
	if rem := sr.remaining(); n < 0 || rem < n {
		return &InsufficientDataError{Expected: n, Remaining: rem, Offset: sr.pos}
	}
	return nil
}

// getByte returns the next byte.
func (sr *sliceReader) getByte() (byte, error) {
	if err := sr.need(1); err != nil {
		return 0, err
	}
	r := sr.b[sr.pos]
	sr.pos++
	return r, nil
}

// getUint32 returns the next 4 bytes as an uint32 value.
func (sr *sliceReader) getUint32() (uint32, error) {
	if err := sr.need(4); err != nil {
		return 0, err
	}
	r := binary.LittleEndian.Uint32(sr.b[sr.pos:])
	sr.pos += 4
	return r, nil
}

// getInt32 returns the next 4 bytes as an int32 value.
func (sr *sliceReader) getInt32() (int32, error) {
	r, err := sr.getUint32()
	return int32(r), err
}

// getUint64 returns the next 8 bytes as an uint64 value.
func (sr *sliceReader) getUint64() (uint64, error) {
	if err := sr.need(8); err != nil {
		return 0, err
	}
	r := binary.LittleEndian.Uint64(sr.b[sr.pos:])
	sr.pos += 8
	return r, nil
}

// getFloat32 returns the next 4 bytes as a float32 value.
func (sr *sliceReader) getFloat32() (float32, error) {
	r, err := sr.getUint32()
	return math.Float32frombits(r), err
}

// view returns the next size bytes without copying and advances the position.
func (sr *sliceReader) view(size int) ([]byte, error) {
	if err := sr.need(size); err != nil {
		return nil, err
	}
	r := sr.b[sr.pos : sr.pos+size]
	sr.pos += size
	return r, nil
}

// peek returns the next size bytes without copying or advancing.
func (sr *sliceReader) peek(size int) ([]byte, error) {
	if err := sr.need(size); err != nil {
		return nil, err
	}
	return sr.b[sr.pos : sr.pos+size], nil
}

// skip advances the position by n bytes.
func (sr *sliceReader) skip(n int) error {
	if err := sr.need(n); err != nil {
		return err
	}
	sr.pos += n
	return nil
}

// getText reads a length-prefixed string. A positive length selects
// Windows-1252, a negative one UTF-16LE with twice the byte count; both drop
// the trailing NUL the game writes.
func (sr *sliceReader) getText() (string, error) {
	size, err := sr.getInt32()
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
	if byteLen > sr.remaining() {
		return "", &StringSizeError{Size: size}
	}
	raw, err := sr.view(byteLen)
	if err != nil {
		return "", err
	}
	return decodeText(raw, utf16)
}

// getTextList reads a length-prefixed list of strings.
func (sr *sliceReader) getTextList() ([]string, error) {
	// The shortest string is its 4 byte length prefix.
	return listOf(sr, 4, (*sliceReader).getText)
}

// listOf reads a non-negative 32 bit count and then that many elements.
// Counts that cannot fit in the remaining bytes, assuming minSize bytes per
// element, fail fast before any allocation.
func listOf[T any](sr *sliceReader, minSize int, read func(*sliceReader) (T, error)) ([]T, error) {
	count, err := sr.getInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 || int64(count)*int64(minSize) > int64(sr.remaining()) {
		return nil, &ListTooLargeError{Size: count, Remaining: sr.remaining()}
	}
	list := make([]T, 0, count)
	for i := int32(0); i < count; i++ {
		v, err := read(sr)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}
