// This file contains the typed errors the parser reports. Byte level decode
// failures are wrapped in a SectionError carrying the section label and the
// absolute byte offset. The bit reader, unknown attribute and actor channel
// errors carry a bit offset. The other errors (frame count, object id range,
// unknown class, unimplemented attribute, unique id, class cycle) carry no
// offset.

package repparser

import (
	"errors"
	"fmt"
)

// ErrParsing indicates that an unexpected error occurred, which may be
// due to corrupt / invalid replay file, or some implementation error.
var ErrParsing = errors.New("parsing")

// InsufficientDataError indicates a read past the end of the input.
type InsufficientDataError struct {
	// Expected is the number of bytes the read needed
	Expected int

	// Remaining is the number of bytes that were left
	Remaining int

	// Offset is the byte offset the read started at
	Offset int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("Insufficient data. Expected %d bytes, but only %d bytes left", e.Expected, e.Remaining)
}

// StringSizeError indicates a string length prefix that decodes to an
// implausible value.
type StringSizeError struct {
	// Size is the raw length prefix
	Size int32
}

func (e *StringSizeError) Error() string {
	return fmt.Sprintf("Unexpected size for string: %d", e.Size)
}

// ListTooLargeError indicates a declared list count that cannot fit in the
// remaining buffer.
type ListTooLargeError struct {
	// Size is the declared element count
	Size int32

	// Remaining is the number of bytes that were left
	Remaining int
}

func (e *ListTooLargeError) Error() string {
	return fmt.Sprintf("list of size %d is too large", e.Size)
}

// SectionError wraps a decode failure with the replay section and the
// absolute byte offset it happened at.
type SectionError struct {
	// Section label, e.g. "debug info"
	Section string

	// Offset is the absolute byte offset of the failure
	Offset int

	// Err is the cause
	Err error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("Could not decode replay %s at offset (%d): %v", e.Section, e.Offset, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// CrcMismatchError indicates a section failed its integrity check under the
// CrcCheckAlways policy.
type CrcMismatchError struct {
	// Expected is the checksum stored in the replay
	Expected uint32

	// Actual is the checksum computed over the section bytes
	Actual uint32
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("Crc mismatch. Expected %d but received %d", e.Expected, e.Actual)
}

// CorruptReplayError indicates a section failed to decode and its checksum
// disagreed too, so the input itself is damaged. The original decode failure
// is preserved as the cause.
type CorruptReplayError struct {
	// Section that failed, "header" or "body"
	Section string

	// Err is the decode failure that triggered the check
	Err error
}

func (e *CorruptReplayError) Error() string {
	return fmt.Sprintf("Failed to parse %s and crc check failed. Replay is corrupt", e.Section)
}

func (e *CorruptReplayError) Unwrap() error { return e.Err }

// PropertyError indicates a header property of an unknown type.
type PropertyError struct {
	// Type is the unrecognized property type name
	Type string
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("unknown property type %q", e.Type)
}

// BitstreamError indicates a bit-level read past the end of the network data.
type BitstreamError struct {
	// Needed is the number of bits the read needed
	Needed int

	// BitPos is the bit offset the read started at
	BitPos int
}

func (e *BitstreamError) Error() string {
	return fmt.Sprintf("not enough bits left in the network stream: needed %d at bit %d", e.Needed, e.BitPos)
}

// TooManyFramesError indicates a frame count beyond the sanity bound.
type TooManyFramesError struct {
	// Frames is the declared frame count
	Frames int32
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("Too many frames to decode: %d", e.Frames)
}

// ObjectIDRangeError indicates an object id beyond the objects table.
type ObjectIDRangeError struct {
	// ObjectID is the out of range id
	ObjectID int32
}

func (e *ObjectIDRangeError) Error() string {
	return fmt.Sprintf("Object Id of %d exceeds range", e.ObjectID)
}

// UnknownClassError indicates an object whose class has no resolvable
// property cache.
type UnknownClassError struct {
	// ObjectID of the actor's archetype
	ObjectID int32

	// Object name, when the id resolved
	Object string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class for object %q (id %d)", e.Object, e.ObjectID)
}

// UnknownAttributeError indicates a stream id that resolves to no decoder for
// the actor's class.
type UnknownAttributeError struct {
	// StreamID that was received
	StreamID int32

	// Class the actor belongs to
	Class string

	// BitPos is the bit offset the stream id was read at
	BitPos int
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute stream id %d for class %q at bit %d", e.StreamID, e.Class, e.BitPos)
}

// UnimplementedAttributeError indicates a replicated property the attribute
// registry has no decoder for.
type UnimplementedAttributeError struct {
	// Name is the fully-qualified property name
	Name string
}

func (e *UnimplementedAttributeError) Error() string {
	return fmt.Sprintf("no decoder implemented for attribute %q", e.Name)
}

// UnknownActorError indicates an update or delete for a channel that is
// not open.
type UnknownActorError struct {
	// ActorID that was addressed
	ActorID int32

	// BitPos is the bit offset of the record
	BitPos int
}

func (e *UnknownActorError) Error() string {
	return fmt.Sprintf("update for unopened actor id %d at bit %d", e.ActorID, e.BitPos)
}

// ActorAlreadyOpenError indicates a spawn on a channel that is already open.
type ActorAlreadyOpenError struct {
	// ActorID that was spawned twice
	ActorID int32

	// BitPos is the bit offset of the record
	BitPos int
}

func (e *ActorAlreadyOpenError) Error() string {
	return fmt.Sprintf("actor id %d is already open at bit %d", e.ActorID, e.BitPos)
}

// UniqueIDError indicates a player id of an unknown platform.
type UniqueIDError struct {
	// System is the unrecognized platform id
	System uint8
}

func (e *UniqueIDError) Error() string {
	return fmt.Sprintf("unknown system id %d in unique id", e.System)
}

// ClassCycleError indicates a cycle in the class parent chain.
type ClassCycleError struct {
	// Class where the cycle was detected
	Class string
}

func (e *ClassCycleError) Error() string {
	return fmt.Sprintf("class parent chain of %q contains a cycle", e.Class)
}
