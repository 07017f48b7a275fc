// This file contains the attribute payload types the network decoder can
// produce. Each type is one wire shape; the attribute registry decides which
// shape a given replicated property uses.

package repnet

// Attribute is the decoded value of a single replicated property.
type Attribute interface {
	// attr marks implementations; the set of shapes is closed.
	attr()
}

// Boolean is a single-bit attribute.
type Boolean bool

func (Boolean) attr() {}

// Byte is an 8 bit attribute.
type Byte uint8

func (Byte) attr() {}

// Int is a 32 bit signed attribute.
type Int int32

func (Int) attr() {}

// Float is a 32 bit float attribute.
type Float float32

func (Float) attr() {}

// QWord is a 64 bit attribute.
type QWord uint64

func (QWord) attr() {}

// Str is a length-prefixed string attribute.
type Str string

func (Str) attr() {}

// Enum is an 11 bit enumeration attribute.
type Enum uint16

func (Enum) attr() {}

// Flagged is an actor reference: a presence flag and the referenced
// actor's id.
type Flagged struct {
	Flag    bool
	ActorID int32
}

func (Flagged) attr() {}

// GameMode identifies the played game mode.
type GameMode uint8

func (GameMode) attr() {}

// Pickup reports a boost pad interaction.
type Pickup struct {
	// InstigatorID is the actor that drove over the pad, if any
	InstigatorID *int32 `json:",omitempty"`
	PickedUp     bool
}

func (Pickup) attr() {}

// Demolish describes a car demolition.
type Demolish struct {
	AttackerFlag   bool
	AttackerID     int32
	VictimFlag     bool
	VictimID       int32
	AttackVelocity Vector
	VictimVelocity Vector
}

func (Demolish) attr() {}

// Explosion describes a ball explosion (goal).
type Explosion struct {
	Flag     bool
	ActorID  int32
	Location Vector
}

func (Explosion) attr() {}

// ExtendedExplosion is an Explosion followed by a second actor reference.
type ExtendedExplosion struct {
	Explosion
	UnknownFlag bool
	UnknownID   int32
}

func (ExtendedExplosion) attr() {}

// DamageState is the state of a breakout platform tile.
type DamageState struct {
	// State of the tile (0 intact, 1 damaged, 2 destroyed)
	State        uint8
	Damaged      bool
	Offender     int32
	BallPosition Vector
	DirectHit    bool
	Unknown1     bool
}

func (DamageState) attr() {}

// AppliedDamage is a damage event against the breakout ball.
type AppliedDamage struct {
	ID          uint8
	Position    Vector
	DamageIndex int32
	TotalDamage int32
}

func (AppliedDamage) attr() {}

// CamSettings is a player's camera configuration.
type CamSettings struct {
	FOV         float32
	Height      float32
	Angle       float32
	Distance    float32
	Stiffness   float32
	SwivelSpeed float32
}

func (CamSettings) attr() {}

// ClubColors are the custom team colors of a club match.
type ClubColors struct {
	BlueFlag    bool
	BlueColor   uint8
	OrangeFlag  bool
	OrangeColor uint8
}

func (ClubColors) attr() {}

// TeamPaint is a car's team-colored paint job.
type TeamPaint struct {
	Team          uint8
	PrimaryColor  uint8
	AccentColor   uint8
	PrimaryFinish uint32
	AccentFinish  uint32
}

func (TeamPaint) attr() {}

// MusicStinger triggers a crowd music cue.
type MusicStinger struct {
	Flag    bool
	Cue     uint32
	Trigger uint8
}

func (MusicStinger) attr() {}

// CompressedRotation is a rigid body rotation with each axis serialized
// against a 16 bit maximum.
type CompressedRotation struct {
	Pitch uint32
	Yaw   uint32
	Roll  uint32
}

// RigidBody is the replicated physics state of an actor. Velocities are only
// present while the body is awake.
type RigidBody struct {
	Sleeping        bool
	Location        Vector
	Rotation        CompressedRotation
	LinearVelocity  *Vector `json:",omitempty"`
	AngularVelocity *Vector `json:",omitempty"`
}

func (RigidBody) attr() {}

// WeldedInfo describes an actor welded to another (e.g. batarang ball).
type WeldedInfo struct {
	Active   bool
	ActorID  int32
	Offset   Vector
	Mass     float32
	Rotation Rotation
}

func (WeldedInfo) attr() {}

// Loadout is a player's car item selection.
type Loadout struct {
	Version     uint8
	Body        uint32
	Decal       uint32
	Wheels      uint32
	RocketTrail uint32
	Antenna     uint32
	Topper      uint32
	Unknown1    uint32
	Unknown2    *uint32 `json:",omitempty"`
}

func (Loadout) attr() {}

// Product is a single online item with an optional paint/color value.
type Product struct {
	Unknown   bool
	ObjectInd uint32
	Value     *uint32 `json:",omitempty"`
}

// LoadoutOnline is the online-item view of a loadout: one product list per
// item slot.
type LoadoutOnline [][]Product

func (LoadoutOnline) attr() {}

// TeamLoadout carries a loadout per team color.
type TeamLoadout struct {
	Blue   Loadout
	Orange Loadout
}

func (TeamLoadout) attr() {}

// LoadoutsOnline carries an online loadout per team color.
type LoadoutsOnline struct {
	Blue     LoadoutOnline
	Orange   LoadoutOnline
	Unknown1 bool
	Unknown2 bool
}

func (LoadoutsOnline) attr() {}

// PrivateMatchSettings is the configuration of a private match.
type PrivateMatchSettings struct {
	Mutators       string
	JoinableBy     uint32
	MaxPlayerCount uint32
	GameName       string
	Password       string
	Flag           bool
}

func (PrivateMatchSettings) attr() {}

// PartyLeader identifies the party leader of a player, if any.
type PartyLeader struct {
	ID *UniqueID `json:",omitempty"`
}

func (PartyLeader) attr() {}

// Reservation is a match slot reservation.
type Reservation struct {
	Number   uint32
	ID       UniqueID
	Name     *string `json:",omitempty"`
	Unknown1 bool
	Unknown2 bool
}

func (Reservation) attr() {}
