// This file contains the network stream decoding: the per-frame state
// machine that opens, updates and closes actor channels and dispatches
// attribute decoding through the class graph.

package repparser

import (
	"fmt"
	"math/bits"

	"github.com/hexhaus/rlrep/rep"
	"github.com/hexhaus/rlrep/rep/repnet"
)

// defaultMaxChannels is the engine default when the header carries no
// MaxChannels property.
const defaultMaxChannels = 1023

// minFrameBits is the floor cost of a frame on the wire: two floats plus the
// closing bit of the actor loop.
const minFrameBits = 65

// netDecoder decodes the network-data slice bit by bit.
type netDecoder struct {
	br      *bitReader
	version gameVersion
	objects []string
	graph   *classGraph

	// channelBits is the width of actor ids, derived from MaxChannels
	channelBits uint

	// actors maps open channels to the spawned object's info
	actors map[int32]*objectInfo

	warnings []string
}

// parseNetwork decodes body.networkData into frames.
func parseNetwork(header *rep.Header, body *replayBody, graph *classGraph) (*repnet.Frames, error) {
	maxFrames, err := frameBound(header, body)
	if err != nil {
		return nil, err
	}

	channels, ok := header.Properties.Int("MaxChannels")
	if !ok || channels <= 0 {
		channels = defaultMaxChannels
	}

	d := &netDecoder{
		br:          &bitReader{b: body.networkData},
		version:     versionOf(header),
		objects:     body.objects,
		graph:       graph,
		channelBits: uint(bits.Len32(uint32(channels))),
		actors:      make(map[int32]*objectInfo),
	}

	frames := make([]repnet.Frame, 0, maxFrames)
	lastTime := float32(0)
	for len(frames) < maxFrames && d.br.bitsRemaining() >= minFrameBits {
		frame, err := d.parseFrame()
		if err != nil {
			return nil, err
		}
		if frame.Time < lastTime {
			d.warnings = append(d.warnings,
				fmt.Sprintf("frame %d time %v is before frame %d time %v", len(frames), frame.Time, len(frames)-1, lastTime))
		}
		lastTime = frame.Time
		frames = append(frames, frame)
	}

	return &repnet.Frames{Frames: frames, Warnings: d.warnings}, nil
}

// frameBound returns the sanity bound on the number of frames: the NumFrames
// header property when present, otherwise the number of minimum-size frames
// the raw bits could hold. Declared counts that are negative or exceed the
// raw byte length fail.
func frameBound(header *rep.Header, body *replayBody) (int, error) {
	numFrames, ok := header.Properties.Int("NumFrames")
	if !ok {
		return len(body.networkData) * 8 / minFrameBits, nil
	}
	if numFrames < 0 || int(numFrames) > len(body.networkData) {
		return 0, &TooManyFramesError{Frames: numFrames}
	}
	return int(numFrames), nil
}

func (d *netDecoder) parseFrame() (repnet.Frame, error) {
	var frame repnet.Frame
	var err error
	if frame.Time, err = d.br.readFloat32(); err != nil {
		return frame, err
	}
	if frame.Delta, err = d.br.readFloat32(); err != nil {
		return frame, err
	}

	for {
		more, err := d.br.readBit()
		if err != nil {
			return frame, err
		}
		if !more {
			return frame, nil
		}

		pos := d.br.pos
		rawID, err := d.br.readBits(d.channelBits)
		if err != nil {
			return frame, err
		}
		actorID := int32(rawID)

		alive, err := d.br.readBit()
		if err != nil {
			return frame, err
		}
		if !alive {
			// Channel closed.
			if _, open := d.actors[actorID]; !open {
				return frame, &UnknownActorError{ActorID: actorID, BitPos: pos}
			}
			delete(d.actors, actorID)
			frame.DeletedActors = append(frame.DeletedActors, actorID)
			continue
		}

		spawned, err := d.br.readBit()
		if err != nil {
			return frame, err
		}
		if spawned {
			actor, err := d.parseNewActor(actorID, pos)
			if err != nil {
				return frame, err
			}
			frame.NewActors = append(frame.NewActors, actor)
			continue
		}

		updates, err := d.parseUpdates(actorID, pos)
		if err != nil {
			return frame, err
		}
		frame.UpdatedActors = append(frame.UpdatedActors, updates...)
	}
}

func (d *netDecoder) parseNewActor(actorID int32, pos int) (repnet.NewActor, error) {
	actor := repnet.NewActor{ActorID: actorID}

	if _, open := d.actors[actorID]; open {
		return actor, &ActorAlreadyOpenError{ActorID: actorID, BitPos: pos}
	}

	if d.version.hasNameIDs() {
		nameID, err := d.br.readInt32()
		if err != nil {
			return actor, err
		}
		actor.NameID = &nameID
	}

	static, err := d.br.readBit()
	if err != nil {
		return actor, err
	}
	actor.Static = static

	objectID, err := d.br.readInt32()
	if err != nil {
		return actor, err
	}
	if objectID < 0 || int(objectID) >= len(d.objects) {
		return actor, &ObjectIDRangeError{ObjectID: objectID}
	}
	actor.ObjectID = objectID

	info := &d.graph.infos[objectID]
	if actor.InitialTrajectory, err = d.parseTrajectory(info.trajectory); err != nil {
		return actor, err
	}

	d.actors[actorID] = info
	return actor, nil
}

func (d *netDecoder) parseTrajectory(traj spawnTrajectory) (repnet.Trajectory, error) {
	var t repnet.Trajectory
	if traj == trajNone {
		return t, nil
	}
	loc, err := d.br.readVector()
	if err != nil {
		return t, err
	}
	t.Location = &loc
	if traj == trajLocationAndRotation {
		rot, err := d.br.readRotation()
		if err != nil {
			return t, err
		}
		t.Rotation = &rot
	}
	return t, nil
}

func (d *netDecoder) parseUpdates(actorID int32, pos int) ([]repnet.UpdatedAttribute, error) {
	info, open := d.actors[actorID]
	if !open {
		return nil, &UnknownActorError{ActorID: actorID, BitPos: pos}
	}
	cache := info.cache
	if cache == nil {
		return nil, &UnknownClassError{ObjectID: info.objectInd, Object: info.name}
	}

	var updates []repnet.UpdatedAttribute
	for {
		more, err := d.br.readBit()
		if err != nil {
			return nil, err
		}
		if !more {
			return updates, nil
		}

		idPos := d.br.pos
		rawStream, err := d.br.readBitsMax(cache.streamLimit)
		if err != nil {
			return nil, err
		}
		streamID := int32(rawStream)

		entry, ok := cache.attrs[streamID]
		if !ok {
			return nil, &UnknownAttributeError{StreamID: streamID, Class: d.objects[cache.objectInd], BitPos: idPos}
		}

		value, err := entry.decoder(d, d.br)
		if err != nil {
			return nil, err
		}
		updates = append(updates, repnet.UpdatedAttribute{
			ActorID:   actorID,
			StreamID:  streamID,
			ObjectID:  entry.objectID,
			Attribute: value,
		})
	}
}
