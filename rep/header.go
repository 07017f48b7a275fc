// This file contains the types describing the replay header.

package rep

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blang/semver/v4"
)

// Header models the replay header.
type Header struct {
	// MajorVersion of the replay format (something like 868).
	MajorVersion int32

	// MinorVersion of the replay format (something like 20).
	MinorVersion int32

	// NetVersion of the network stream. Only present when
	// MajorVersion > 865 and MinorVersion > 17.
	NetVersion *int32 `json:",omitempty"`

	// GameType is the name of the game event class that ran the match,
	// e.g. "TAGame.Replay_Soccar_TA".
	GameType string

	// Properties is the header property tree (goals, player stats,
	// team sizes etc).
	Properties Properties
}

// Version returns the replay version as a semantic version so feature gates
// can be expressed as version comparisons.
func (h *Header) Version() semver.Version {
	return semver.Version{Major: uint64(h.MajorVersion), Minor: uint64(h.MinorVersion)}
}

// Properties is an ordered key-value property tree.
// Insertion order is preserved so encoded output is deterministic.
type Properties []Property

// Property is a single named entry of a property tree.
type Property struct {
	// Name of the property
	Name string

	// Value of the property
	Value PropertyValue
}

// Int returns the value of the named IntProperty and whether it exists.
func (ps Properties) Int(name string) (int32, bool) {
	for i := range ps {
		if ps[i].Name == name && ps[i].Value.Kind == PropInt {
			return ps[i].Value.Int, true
		}
	}
	return 0, false
}

// Str returns the value of the named StrProperty or NameProperty
// and whether it exists.
func (ps Properties) Str(name string) (string, bool) {
	for i := range ps {
		if ps[i].Name == name && (ps[i].Value.Kind == PropStr || ps[i].Value.Kind == PropName) {
			return ps[i].Value.Str, true
		}
	}
	return "", false
}

// Float returns the value of the named FloatProperty and whether it exists.
func (ps Properties) Float(name string) (float32, bool) {
	for i := range ps {
		if ps[i].Name == name && ps[i].Value.Kind == PropFloat {
			return ps[i].Value.Float, true
		}
	}
	return 0, false
}

// QWord returns the value of the named QWordProperty and whether it exists.
func (ps Properties) QWord(name string) (uint64, bool) {
	for i := range ps {
		if ps[i].Name == name && ps[i].Value.Kind == PropQWord {
			return ps[i].Value.QWord, true
		}
	}
	return 0, false
}

// Array returns the element trees of the named ArrayProperty
// and whether it exists.
func (ps Properties) Array(name string) ([]Properties, bool) {
	for i := range ps {
		if ps[i].Name == name && ps[i].Value.Kind == PropArray {
			return ps[i].Value.Array, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the tree as a JSON object, preserving insertion order.
func (ps Properties) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(ps[i].Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(ps[i].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PropertyKind tells which member of a PropertyValue is set.
type PropertyKind byte

// PropertyKinds
const (
	PropBool PropertyKind = iota
	PropByte
	PropFloat
	PropInt
	PropName
	PropQWord
	PropStr
	PropArray
)

// PropertyValue is the tagged value of a header property.
// Exactly the member selected by Kind is meaningful.
type PropertyValue struct {
	Kind  PropertyKind
	Bool  bool
	Byte  *ByteValue
	Float float32
	Int   int32
	QWord uint64
	Str   string // also holds NameProperty values
	Array []Properties
}

// ByteValue is the value of a ByteProperty: an enum-like (kind, value) string
// pair. Value is nil for the online platform names that carry no value string.
type ByteValue struct {
	Kind  string
	Value *string `json:",omitempty"`
}

// MarshalJSON encodes just the member selected by Kind.
func (pv PropertyValue) MarshalJSON() ([]byte, error) {
	switch pv.Kind {
	case PropBool:
		return json.Marshal(pv.Bool)
	case PropByte:
		return json.Marshal(pv.Byte)
	case PropFloat:
		return json.Marshal(pv.Float)
	case PropInt:
		return json.Marshal(pv.Int)
	case PropName, PropStr:
		return json.Marshal(pv.Str)
	case PropQWord:
		return json.Marshal(pv.QWord)
	case PropArray:
		return json.Marshal(pv.Array)
	}
	return nil, fmt.Errorf("invalid property kind: %d", pv.Kind)
}
