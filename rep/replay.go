// This file contains the Replay type and its components which model a complete
// Rocket League replay.

package rep

import "github.com/hexhaus/rlrep/rep/repnet"

// Replay models a Rocket League replay.
type Replay struct {
	// HeaderSize is the byte length of the header section.
	HeaderSize int32

	// HeaderCRC is the stored checksum of the header section.
	HeaderCRC uint32

	// Header of the replay
	Header *Header

	// ContentSize is the byte length of the body section.
	ContentSize int32

	// ContentCRC is the stored checksum of the body section.
	ContentCRC uint32

	// NetworkFrames is the decoded network stream.
	// It is nil when network parsing is skipped or was abandoned on error.
	NetworkFrames *repnet.Frames `json:",omitempty"`

	// Levels lists the level packages loaded by the match.
	Levels []string

	// KeyFrames are the seek points of the replay.
	KeyFrames []KeyFrame

	// DebugInfo entries recorded by the game.
	DebugInfo []DebugInfo

	// TickMarks are the timeline markers (goals, saves).
	TickMarks []TickMark

	// Packages, Objects and Names are the three name tables of the body.
	Packages []string
	Objects  []string
	Names    []string

	// ClassIndices maps class names to object table indices.
	ClassIndices []ClassIndex

	// NetCache is the engine-serialized class property cache graph.
	NetCache []ClassNetCache
}
