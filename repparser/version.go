// This file contains the replay version gates. Features appeared at known
// engine versions; the name id gate is a semantic version comparison over the
// header's major and minor version, the other gates compare the net version.

package repparser

import (
	"github.com/blang/semver/v4"

	"github.com/hexhaus/rlrep/rep"
)

// verNameIDs is the first replay version whose new-actor records carry a
// name table index.
var verNameIDs = semver.Version{Major: 868, Minor: 14}

// gameVersion bundles the header version triple for feature gating.
type gameVersion struct {
	ver semver.Version
	net int32
}

func versionOf(h *rep.Header) gameVersion {
	v := gameVersion{ver: h.Version()}
	if h.NetVersion != nil {
		v.net = *h.NetVersion
	}
	return v
}

// hasNameIDs reports whether new-actor records carry a name id.
func (v gameVersion) hasNameIDs() bool {
	return v.ver.GTE(verNameIDs)
}

// gameModeBits is the width of the GameMode attribute.
func (v gameVersion) gameModeBits() uint {
	if v.net >= 10 {
		return 8
	}
	return 2
}

// widePaintedValues reports whether painted product values are plain 31 bit
// reads instead of serialized ints.
func (v gameVersion) widePaintedValues() bool {
	return v.net >= 9
}
