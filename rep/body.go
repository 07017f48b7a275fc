// This file contains the types describing the replay body tables.

package rep

// KeyFrame is a seek point into the network stream.
type KeyFrame struct {
	// Time of the keyframe, in seconds since match start
	Time float32

	// Frame is the network frame the keyframe refers to
	Frame int32

	// Position is the bit position of the frame in the network data
	Position int32
}

// TickMark is a timeline marker such as a goal or a save.
type TickMark struct {
	// Description names the event, e.g. "Team1Goal"
	Description string

	// Frame the event happened in
	Frame int32
}

// DebugInfo is a debug log entry recorded into the replay.
type DebugInfo struct {
	Frame int32
	User  string
	Text  string
}

// ClassIndex assigns an object table index to a class name.
type ClassIndex struct {
	// Class name, e.g. "TAGame.Car_TA"
	Class string

	// Index into the objects table
	Index int32
}

// CacheProp binds a replicated property object to its per-class stream id.
type CacheProp struct {
	// ObjectInd is the index of the property name in the objects table
	ObjectInd int32

	// StreamID is the per-class numeric handle of the property
	StreamID int32
}

// ClassNetCache is one node of the engine-serialized class property cache
// graph. ParentID refers to the CacheID of an earlier entry; zero means the
// entry has no parent.
type ClassNetCache struct {
	// ObjectInd is the index of the class name in the objects table
	ObjectInd int32

	// ParentID is the CacheID of the parent entry, or zero
	ParentID int32

	// CacheID identifies this entry for later ParentID references
	CacheID int32

	// Properties replicated by the class itself (not inherited)
	Properties []CacheProp
}
