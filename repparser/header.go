// This file contains the header decoding: the version triple, the game type
// and the recursive property tree.

package repparser

import "github.com/hexhaus/rlrep/rep"

func parseHeader(sr *sliceReader) (*rep.Header, error) {
	h := new(rep.Header)

	var err error
	if h.MajorVersion, err = sr.getInt32(); err != nil {
		return nil, err
	}
	if h.MinorVersion, err = sr.getInt32(); err != nil {
		return nil, err
	}
	// Old replays have no net version.
	if h.MajorVersion > 865 && h.MinorVersion > 17 {
		net, err := sr.getInt32()
		if err != nil {
			return nil, err
		}
		h.NetVersion = &net
	}
	if h.GameType, err = sr.getText(); err != nil {
		return nil, err
	}
	if h.Properties, err = parseProperties(sr); err != nil {
		return nil, err
	}
	return h, nil
}

// parseProperties reads a property tree: key-value pairs terminated by the
// sentinel key "None".
func parseProperties(sr *sliceReader) (rep.Properties, error) {
	var props rep.Properties
	for {
		key, err := sr.getText()
		if err != nil {
			return nil, err
		}
		if key == "None" {
			return props, nil
		}
		typeName, err := sr.getText()
		if err != nil {
			return nil, err
		}
		// 8 opaque bytes between the type tag and the value; their meaning
		// is disputed and the value does not depend on them.
		if err := sr.skip(8); err != nil {
			return nil, err
		}
		value, err := parsePropertyValue(sr, typeName)
		if err != nil {
			return nil, err
		}
		props = append(props, rep.Property{Name: key, Value: value})
	}
}

// onlinePlatforms are the ByteProperty kinds that carry no value string.
var onlinePlatforms = map[string]bool{
	"OnlinePlatform_Steam": true,
	"OnlinePlatform_PS4":   true,
}

func parsePropertyValue(sr *sliceReader, typeName string) (rep.PropertyValue, error) {
	var pv rep.PropertyValue
	var err error

	switch typeName {
	case "BoolProperty":
		var b byte
		b, err = sr.getByte()
		pv.Kind, pv.Bool = rep.PropBool, b == 1

	case "ByteProperty":
		bv := new(rep.ByteValue)
		if bv.Kind, err = sr.getText(); err != nil {
			break
		}
		if !onlinePlatforms[bv.Kind] {
			var value string
			if value, err = sr.getText(); err != nil {
				break
			}
			bv.Value = &value
		}
		pv.Kind, pv.Byte = rep.PropByte, bv

	case "FloatProperty":
		pv.Kind = rep.PropFloat
		pv.Float, err = sr.getFloat32()

	case "IntProperty":
		pv.Kind = rep.PropInt
		pv.Int, err = sr.getInt32()

	case "NameProperty":
		pv.Kind = rep.PropName
		pv.Str, err = sr.getText()

	case "StrProperty":
		pv.Kind = rep.PropStr
		pv.Str, err = sr.getText()

	case "QWordProperty":
		pv.Kind = rep.PropQWord
		pv.QWord, err = sr.getUint64()

	case "ArrayProperty":
		pv.Kind = rep.PropArray
		// The smallest element tree is a lone "None" terminator string.
		pv.Array, err = listOf(sr, 9, parseProperties)

	default:
		err = &PropertyError{Type: typeName}
	}

	return pv, err
}
