package repparser

import (
	"errors"
	"testing"

	"github.com/hexhaus/rlrep/rep"
	"github.com/hexhaus/rlrep/rep/repnet"
)

// ballObjects is a minimal objects table around the default ball: the
// archetype, its class and two replicated properties.
var ballObjects = []string{
	"Archetypes.Ball.Ball_Default",
	"TAGame.Ball_TA",
	"TAGame.RBActor_TA:bFrozen",
	"TAGame.Ball_TA:HitTeamNum",
}

func ballTables() ([]rep.ClassIndex, []rep.ClassNetCache) {
	return []rep.ClassIndex{{Class: "TAGame.Ball_TA", Index: 1}},
		[]rep.ClassNetCache{{
			ObjectInd: 1,
			ParentID:  0,
			CacheID:   1,
			Properties: []rep.CacheProp{
				{ObjectInd: 2, StreamID: 0},
				{ObjectInd: 3, StreamID: 1},
			},
		}}
}

// netProps adds the header properties the network decoder consults.
func netProps(numFrames int32) func(w *repWriter) {
	return func(w *repWriter) {
		w.putIntProperty("NumFrames", numFrames)
		w.putIntProperty("MaxChannels", 1023)
	}
}

const ballActorID = 5

// writeBallSpawn writes an actor record spawning the default ball.
func writeBallSpawn(w *bitWriter) {
	w.writeBit(true) // actor record
	w.writeBits(ballActorID, 10)
	w.writeBit(true)  // alive
	w.writeBit(true)  // newly spawned
	w.writeBit(false) // not static
	w.writeUint32(0)  // object: Archetypes.Ball.Ball_Default
	w.writeVector(4, 12, -4, 9)
	w.writeBit(false) // no yaw
	w.writeBit(false) // no pitch
	w.writeBit(false) // no roll
}

func TestParseNetwork(t *testing.T) {
	w := new(bitWriter)

	// First frame: spawn the ball, then update both of its properties.
	w.writeFloat32(0.03)
	w.writeFloat32(0.03)
	writeBallSpawn(w)
	w.writeBit(true) // actor record
	w.writeBits(ballActorID, 10)
	w.writeBit(true)  // alive
	w.writeBit(false) // updating
	w.writeBit(true)  // another attribute follows
	w.writeBitsMax(0, 2)
	w.writeBit(true) // bFrozen = true
	w.writeBit(true)
	w.writeBitsMax(1, 2)
	w.writeByte(2)    // HitTeamNum = 2
	w.writeBit(false) // end of attributes
	w.writeBit(false) // end of actor records

	// Second frame: close the channel.
	w.writeFloat32(0.06)
	w.writeFloat32(0.03)
	w.writeBit(true)
	w.writeBits(ballActorID, 10)
	w.writeBit(false) // closed
	w.writeBit(false)

	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(2),
		networkData:  w.b,
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	r, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NetworkFrames == nil || len(r.NetworkFrames.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %+v", r.NetworkFrames)
	}
	if len(r.NetworkFrames.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.NetworkFrames.Warnings)
	}

	first := r.NetworkFrames.Frames[0]
	if first.Time != 0.03 || first.Delta != 0.03 {
		t.Errorf("unexpected frame times: %+v", first)
	}
	if len(first.NewActors) != 1 {
		t.Fatalf("expected 1 new actor, got %d", len(first.NewActors))
	}
	actor := first.NewActors[0]
	if actor.ActorID != ballActorID || actor.ObjectID != 0 || actor.Static || actor.NameID != nil {
		t.Errorf("unexpected new actor: %+v", actor)
	}
	loc := actor.InitialTrajectory.Location
	if loc == nil || loc.X != 12 || loc.Y != -4 || loc.Z != 9 {
		t.Errorf("unexpected spawn location: %+v", loc)
	}
	rot := actor.InitialTrajectory.Rotation
	if rot == nil || rot.Yaw != nil || rot.Pitch != nil || rot.Roll != nil {
		t.Errorf("unexpected spawn rotation: %+v", rot)
	}

	if len(first.UpdatedActors) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(first.UpdatedActors))
	}
	frozen := first.UpdatedActors[0]
	if frozen.StreamID != 0 || frozen.ObjectID != 2 || frozen.Attribute != repnet.Boolean(true) {
		t.Errorf("unexpected first update: %+v", frozen)
	}
	hitTeam := first.UpdatedActors[1]
	if hitTeam.StreamID != 1 || hitTeam.ObjectID != 3 || hitTeam.Attribute != repnet.Byte(2) {
		t.Errorf("unexpected second update: %+v", hitTeam)
	}

	second := r.NetworkFrames.Frames[1]
	if len(second.DeletedActors) != 1 || second.DeletedActors[0] != ballActorID {
		t.Errorf("unexpected deletions: %+v", second.DeletedActors)
	}
}

func TestUpdateUnknownActor(t *testing.T) {
	w := new(bitWriter)
	w.writeFloat32(0.03)
	w.writeFloat32(0.03)
	w.writeBit(true)
	w.writeBits(7, 10)
	w.writeBit(true)  // alive
	w.writeBit(false) // updating a channel that was never opened
	w.writeBit(false)
	w.writeBit(false)

	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(1),
		networkData:  w.b,
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	_, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	var unknown *UnknownActorError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownActorError, got %v", err)
	}
	if unknown.ActorID != 7 {
		t.Errorf("expected actor id 7, got %d", unknown.ActorID)
	}

	// The ignore-on-error policy swallows the failure and drops the frames.
	r, err := ParseConfig(data, Config{NetworkParse: NetworkParseIgnoreOnError})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NetworkFrames != nil {
		t.Errorf("expected no network frames, got %+v", r.NetworkFrames)
	}
}

func TestActorAlreadyOpen(t *testing.T) {
	w := new(bitWriter)
	w.writeFloat32(0.03)
	w.writeFloat32(0.03)
	writeBallSpawn(w)
	writeBallSpawn(w)
	w.writeBit(false)

	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(1),
		networkData:  w.b,
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	_, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	var open *ActorAlreadyOpenError
	if !errors.As(err, &open) {
		t.Fatalf("expected ActorAlreadyOpenError, got %v", err)
	}
	if open.ActorID != ballActorID {
		t.Errorf("expected actor id %d, got %d", ballActorID, open.ActorID)
	}
}

func TestTooManyFrames(t *testing.T) {
	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(738197735),
		networkData:  make([]byte, 32),
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	_, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Too many frames to decode: 738197735" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestObjectIDOutOfRange(t *testing.T) {
	w := new(bitWriter)
	w.writeFloat32(0.03)
	w.writeFloat32(0.03)
	w.writeBit(true)
	w.writeBits(ballActorID, 10)
	w.writeBit(true)
	w.writeBit(true)
	w.writeBit(false)
	w.writeUint32(1547) // beyond the objects table
	w.writeBit(false)

	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(1),
		networkData:  w.b,
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	_, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	var rangeErr *ObjectIDRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected ObjectIDRangeError, got %v", err)
	}
	if err.Error() != "Object Id of 1547 exceeds range" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestFrameTimeWarning(t *testing.T) {
	w := new(bitWriter)
	w.writeFloat32(0.5)
	w.writeFloat32(0.03)
	w.writeBit(false)
	w.writeFloat32(0.2) // time went backwards
	w.writeFloat32(0.03)
	w.writeBit(false)

	classInds, netCache := ballTables()
	data := buildReplay(replayOpts{
		extraProps:   netProps(2),
		networkData:  w.b,
		objects:      ballObjects,
		classIndices: classInds,
		netCache:     netCache,
	})

	r, err := ParseConfig(data, Config{NetworkParse: NetworkParseAlways})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.NetworkFrames.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(r.NetworkFrames.Frames))
	}
	if len(r.NetworkFrames.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", r.NetworkFrames.Warnings)
	}
}
