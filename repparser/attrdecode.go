// This file contains the attribute decoders: one function per wire shape the
// attribute registry references. Every decoder bottoms out in the bit reader
// primitives and must consume exactly the bits its shape specifies.

package repparser

import "github.com/hexhaus/rlrep/rep/repnet"

// attrDecoder decodes one attribute payload from the bit stream.
type attrDecoder func(d *netDecoder, br *bitReader) (repnet.Attribute, error)

func decodeBoolean(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	b, err := br.readBit()
	return repnet.Boolean(b), err
}

func decodeByte(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	b, err := br.readByte()
	return repnet.Byte(b), err
}

func decodeInt(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	v, err := br.readInt32()
	return repnet.Int(v), err
}

func decodeFloat(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	v, err := br.readFloat32()
	return repnet.Float(v), err
}

func decodeQWord(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	v, err := br.readUint64()
	return repnet.QWord(v), err
}

func decodeString(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	s, err := br.readText()
	return repnet.Str(s), err
}

// enumBits is the fixed width of enumeration attributes.
const enumBits = 11

func decodeEnum(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	v, err := br.readBits(enumBits)
	return repnet.Enum(v), err
}

func decodeFlagged(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var f repnet.Flagged
	flag, err := br.readBit()
	if err != nil {
		return nil, err
	}
	actor, err := br.readInt32()
	if err != nil {
		return nil, err
	}
	f.Flag, f.ActorID = flag, actor
	return f, nil
}

func decodeLocation(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	return br.readVector()
}

func decodeGameMode(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	v, err := br.readBits(d.version.gameModeBits())
	return repnet.GameMode(v), err
}

func decodePickup(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var p repnet.Pickup
	hasInstigator, err := br.readBit()
	if err != nil {
		return nil, err
	}
	if hasInstigator {
		id, err := br.readInt32()
		if err != nil {
			return nil, err
		}
		p.InstigatorID = &id
	}
	pickedUp, err := br.readBit()
	if err != nil {
		return nil, err
	}
	p.PickedUp = pickedUp
	return p, nil
}

func decodeDemolish(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var dm repnet.Demolish
	var err error
	if dm.AttackerFlag, err = br.readBit(); err != nil {
		return nil, err
	}
	if dm.AttackerID, err = br.readInt32(); err != nil {
		return nil, err
	}
	if dm.VictimFlag, err = br.readBit(); err != nil {
		return nil, err
	}
	if dm.VictimID, err = br.readInt32(); err != nil {
		return nil, err
	}
	if dm.AttackVelocity, err = br.readVector(); err != nil {
		return nil, err
	}
	if dm.VictimVelocity, err = br.readVector(); err != nil {
		return nil, err
	}
	return dm, nil
}

func decodeExplosion(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	e, err := readExplosion(br)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodeExtendedExplosion(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var ee repnet.ExtendedExplosion
	var err error
	if ee.Explosion, err = readExplosion(br); err != nil {
		return nil, err
	}
	if ee.UnknownFlag, err = br.readBit(); err != nil {
		return nil, err
	}
	if ee.UnknownID, err = br.readInt32(); err != nil {
		return nil, err
	}
	return ee, nil
}

func readExplosion(br *bitReader) (repnet.Explosion, error) {
	var e repnet.Explosion
	var err error
	if e.Flag, err = br.readBit(); err != nil {
		return e, err
	}
	if e.ActorID, err = br.readInt32(); err != nil {
		return e, err
	}
	e.Location, err = br.readVector()
	return e, err
}

func decodeDamageState(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var ds repnet.DamageState
	var err error
	if ds.State, err = br.readByte(); err != nil {
		return nil, err
	}
	if ds.Damaged, err = br.readBit(); err != nil {
		return nil, err
	}
	if ds.Offender, err = br.readInt32(); err != nil {
		return nil, err
	}
	if ds.BallPosition, err = br.readVector(); err != nil {
		return nil, err
	}
	if ds.DirectHit, err = br.readBit(); err != nil {
		return nil, err
	}
	if ds.Unknown1, err = br.readBit(); err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeAppliedDamage(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var ad repnet.AppliedDamage
	var err error
	if ad.ID, err = br.readByte(); err != nil {
		return nil, err
	}
	if ad.Position, err = br.readVector(); err != nil {
		return nil, err
	}
	if ad.DamageIndex, err = br.readInt32(); err != nil {
		return nil, err
	}
	if ad.TotalDamage, err = br.readInt32(); err != nil {
		return nil, err
	}
	return ad, nil
}

func decodeCamSettings(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var cs repnet.CamSettings
	for _, f := range []*float32{&cs.FOV, &cs.Height, &cs.Angle, &cs.Distance, &cs.Stiffness, &cs.SwivelSpeed} {
		v, err := br.readFloat32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	return cs, nil
}

func decodeClubColors(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var cc repnet.ClubColors
	var err error
	if cc.BlueFlag, err = br.readBit(); err != nil {
		return nil, err
	}
	if cc.BlueColor, err = br.readByte(); err != nil {
		return nil, err
	}
	if cc.OrangeFlag, err = br.readBit(); err != nil {
		return nil, err
	}
	if cc.OrangeColor, err = br.readByte(); err != nil {
		return nil, err
	}
	return cc, nil
}

func decodeTeamPaint(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var tp repnet.TeamPaint
	var err error
	if tp.Team, err = br.readByte(); err != nil {
		return nil, err
	}
	if tp.PrimaryColor, err = br.readByte(); err != nil {
		return nil, err
	}
	if tp.AccentColor, err = br.readByte(); err != nil {
		return nil, err
	}
	if tp.PrimaryFinish, err = br.readUint32(); err != nil {
		return nil, err
	}
	if tp.AccentFinish, err = br.readUint32(); err != nil {
		return nil, err
	}
	return tp, nil
}

func decodeMusicStinger(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var ms repnet.MusicStinger
	var err error
	if ms.Flag, err = br.readBit(); err != nil {
		return nil, err
	}
	if ms.Cue, err = br.readUint32(); err != nil {
		return nil, err
	}
	if ms.Trigger, err = br.readByte(); err != nil {
		return nil, err
	}
	return ms, nil
}

// rotationComponentMax bounds each serialized rigid body rotation axis.
const rotationComponentMax = 65536

func decodeRigidBody(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var rb repnet.RigidBody
	var err error
	if rb.Sleeping, err = br.readBit(); err != nil {
		return nil, err
	}
	if rb.Location, err = br.readVector(); err != nil {
		return nil, err
	}
	for _, axis := range []*uint32{&rb.Rotation.Pitch, &rb.Rotation.Yaw, &rb.Rotation.Roll} {
		v, err := br.readBitsMax(rotationComponentMax)
		if err != nil {
			return nil, err
		}
		*axis = v
	}
	if !rb.Sleeping {
		lin, err := br.readVector()
		if err != nil {
			return nil, err
		}
		ang, err := br.readVector()
		if err != nil {
			return nil, err
		}
		rb.LinearVelocity, rb.AngularVelocity = &lin, &ang
	}
	return rb, nil
}

func decodeWelded(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var w repnet.WeldedInfo
	var err error
	if w.Active, err = br.readBit(); err != nil {
		return nil, err
	}
	if w.ActorID, err = br.readInt32(); err != nil {
		return nil, err
	}
	if w.Offset, err = br.readVector(); err != nil {
		return nil, err
	}
	if w.Mass, err = br.readFloat32(); err != nil {
		return nil, err
	}
	if w.Rotation, err = br.readRotation(); err != nil {
		return nil, err
	}
	return w, nil
}

func decodeLoadout(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	l, err := readLoadout(br)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func readLoadout(br *bitReader) (repnet.Loadout, error) {
	var l repnet.Loadout
	var err error
	if l.Version, err = br.readByte(); err != nil {
		return l, err
	}
	for _, item := range []*uint32{&l.Body, &l.Decal, &l.Wheels, &l.RocketTrail, &l.Antenna, &l.Topper, &l.Unknown1} {
		v, err := br.readUint32()
		if err != nil {
			return l, err
		}
		*item = v
	}
	if l.Version > 10 {
		v, err := br.readUint32()
		if err != nil {
			return l, err
		}
		l.Unknown2 = &v
	}
	return l, nil
}

func decodeTeamLoadout(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var tl repnet.TeamLoadout
	var err error
	if tl.Blue, err = readLoadout(br); err != nil {
		return nil, err
	}
	if tl.Orange, err = readLoadout(br); err != nil {
		return nil, err
	}
	return tl, nil
}

func decodeLoadoutOnline(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	lo, err := d.readLoadoutOnline(br)
	if err != nil {
		return nil, err
	}
	return lo, nil
}

func decodeLoadoutsOnline(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var lo repnet.LoadoutsOnline
	var err error
	if lo.Blue, err = d.readLoadoutOnline(br); err != nil {
		return nil, err
	}
	if lo.Orange, err = d.readLoadoutOnline(br); err != nil {
		return nil, err
	}
	if lo.Unknown1, err = br.readBit(); err != nil {
		return nil, err
	}
	if lo.Unknown2, err = br.readBit(); err != nil {
		return nil, err
	}
	return lo, nil
}

// Product attribute objects whose values need special handling.
const (
	objPainted   = "TAGame.ProductAttribute_Painted_TA"
	objUserColor = "TAGame.ProductAttribute_UserColor_TA"
)

// paintedValueMax bounds painted values before they became plain 31 bit reads.
const paintedValueMax = 14

func (d *netDecoder) readLoadoutOnline(br *bitReader) (repnet.LoadoutOnline, error) {
	size, err := br.readByte()
	if err != nil {
		return nil, err
	}
	lo := make(repnet.LoadoutOnline, 0, size)
	for i := byte(0); i < size; i++ {
		inner, err := br.readByte()
		if err != nil {
			return nil, err
		}
		products := make([]repnet.Product, 0, inner)
		for j := byte(0); j < inner; j++ {
			p, err := d.readProduct(br)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
		lo = append(lo, products)
	}
	return lo, nil
}

func (d *netDecoder) readProduct(br *bitReader) (repnet.Product, error) {
	var p repnet.Product
	var err error
	if p.Unknown, err = br.readBit(); err != nil {
		return p, err
	}
	if p.ObjectInd, err = br.readUint32(); err != nil {
		return p, err
	}
	if int(p.ObjectInd) >= len(d.objects) {
		return p, &ObjectIDRangeError{ObjectID: int32(p.ObjectInd)}
	}
	switch d.objects[p.ObjectInd] {
	case objPainted:
		var v uint32
		if d.version.widePaintedValues() {
			v, err = br.readBits(31)
		} else {
			v, err = br.readBitsMax(paintedValueMax)
		}
		if err != nil {
			return p, err
		}
		p.Value = &v
	case objUserColor:
		hasValue, err := br.readBit()
		if err != nil {
			return p, err
		}
		if hasValue {
			v, err := br.readBits(31)
			if err != nil {
				return p, err
			}
			p.Value = &v
		}
	}
	return p, nil
}

func decodePrivateMatchSettings(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var pms repnet.PrivateMatchSettings
	var err error
	if pms.Mutators, err = br.readText(); err != nil {
		return nil, err
	}
	if pms.JoinableBy, err = br.readUint32(); err != nil {
		return nil, err
	}
	if pms.MaxPlayerCount, err = br.readUint32(); err != nil {
		return nil, err
	}
	if pms.GameName, err = br.readText(); err != nil {
		return nil, err
	}
	if pms.Password, err = br.readText(); err != nil {
		return nil, err
	}
	if pms.Flag, err = br.readBit(); err != nil {
		return nil, err
	}
	return pms, nil
}

func decodeUniqueID(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	id, err := readUniqueID(br)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func decodePartyLeader(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	system, err := br.readByte()
	if err != nil {
		return nil, err
	}
	// A zero system id means the player has no party.
	if system == 0 {
		return repnet.PartyLeader{}, nil
	}
	id, err := readUniqueIDSystem(br, system)
	if err != nil {
		return nil, err
	}
	return repnet.PartyLeader{ID: &id}, nil
}

// reservationSlots bounds the serialized reservation number.
const reservationSlots = 8

func decodeReservation(d *netDecoder, br *bitReader) (repnet.Attribute, error) {
	var r repnet.Reservation
	var err error
	if r.Number, err = br.readBitsMax(reservationSlots); err != nil {
		return nil, err
	}
	if r.ID, err = readUniqueID(br); err != nil {
		return nil, err
	}
	if r.ID.System != repnet.SystemSplitScreen {
		name, err := br.readText()
		if err != nil {
			return nil, err
		}
		r.Name = &name
	}
	if r.Unknown1, err = br.readBit(); err != nil {
		return nil, err
	}
	if r.Unknown2, err = br.readBit(); err != nil {
		return nil, err
	}
	return r, nil
}

// splitScreenBits is the width of a split screen remote id.
const splitScreenBits = 24

// psnNameLen and psnTrailerLen are the fixed widths of a PSN remote id.
const (
	psnNameLen    = 16
	psnTrailerLen = 16
)

func readUniqueID(br *bitReader) (repnet.UniqueID, error) {
	system, err := br.readByte()
	if err != nil {
		return repnet.UniqueID{}, err
	}
	return readUniqueIDSystem(br, system)
}

// readUniqueIDSystem reads the remote and local parts of a unique id whose
// system byte has been consumed already.
func readUniqueIDSystem(br *bitReader, system byte) (repnet.UniqueID, error) {
	id := repnet.UniqueID{System: repnet.SystemID(system)}

	switch id.System {
	case repnet.SystemSplitScreen:
		v, err := br.readBits(splitScreenBits)
		if err != nil {
			return id, err
		}
		id.RemoteID = repnet.SplitScreenID(v)
	case repnet.SystemSteam:
		v, err := br.readUint64()
		if err != nil {
			return id, err
		}
		id.RemoteID = repnet.SteamID(v)
	case repnet.SystemPlayStation:
		raw, err := br.readBytes(psnNameLen)
		if err != nil {
			return id, err
		}
		name, err := trimNuls(raw)
		if err != nil {
			return id, err
		}
		trailer, err := br.readBytes(psnTrailerLen)
		if err != nil {
			return id, err
		}
		id.RemoteID = repnet.PlayStationID{Name: name, Trailer: trailer}
	case repnet.SystemXbox:
		v, err := br.readUint64()
		if err != nil {
			return id, err
		}
		id.RemoteID = repnet.XboxID(v)
	default:
		return id, &UniqueIDError{System: system}
	}

	local, err := br.readByte()
	if err != nil {
		return id, err
	}
	id.LocalID = local
	return id, nil
}
