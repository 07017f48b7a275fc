// Package repnet contains the types modeling the decoded network stream of a
// replay: the per-frame actor events and the attribute payloads they carry.
package repnet

// Frames is the decoded network stream.
type Frames struct {
	// Frames of the stream, in wire order
	Frames []Frame

	// Warnings collected during decoding, e.g. non-monotonic frame times.
	// Warnings never fail a parse.
	Warnings []string `json:",omitempty"`
}

// Frame is the state delta of a single network tick.
type Frame struct {
	// Time of the frame, in seconds since match start
	Time float32

	// Delta since the previous frame, in seconds
	Delta float32

	// NewActors spawned in this frame
	NewActors []NewActor `json:",omitempty"`

	// UpdatedActors lists attribute updates, in wire order
	UpdatedActors []UpdatedAttribute `json:",omitempty"`

	// DeletedActors lists the ids of actors whose channel closed
	DeletedActors []int32 `json:",omitempty"`
}

// NewActor describes an actor spawn.
type NewActor struct {
	// ActorID is the channel the actor was bound to
	ActorID int32

	// NameID indexes the names table. Only present in newer replays.
	NameID *int32 `json:",omitempty"`

	// Static is set for actors that never move
	Static bool

	// ObjectID indexes the objects table and selects the actor's archetype
	ObjectID int32

	// InitialTrajectory of the actor
	InitialTrajectory Trajectory
}

// UpdatedAttribute is a single replicated property change of an open actor.
type UpdatedAttribute struct {
	// ActorID is the channel the update applies to
	ActorID int32

	// StreamID is the per-class handle the property was sent under
	StreamID int32

	// ObjectID indexes the objects table with the property's qualified name
	ObjectID int32

	// Attribute is the decoded payload
	Attribute Attribute
}

// Trajectory is the initial placement of a spawned actor. Whether location
// and rotation are present depends on the actor's class.
type Trajectory struct {
	Location *Vector   `json:",omitempty"`
	Rotation *Rotation `json:",omitempty"`
}

// Vector is a compressed world-space vector.
type Vector struct {
	X, Y, Z int32
}

func (Vector) attr() {}

// Rotation holds optional per-axis byte rotations.
// Axes the wire omitted are nil.
type Rotation struct {
	Yaw   *int8 `json:",omitempty"`
	Pitch *int8 `json:",omitempty"`
	Roll  *int8 `json:",omitempty"`
}
