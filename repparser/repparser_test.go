package repparser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hexhaus/rlrep/rep"
)

// replayOpts controls the synthetic replay the tests build.
type replayOpts struct {
	// extraProps appends header properties (before the terminator)
	extraProps func(w *repWriter)

	// networkData is the raw network section
	networkData []byte

	objects      []string
	classIndices []rep.ClassIndex
	netCache     []rep.ClassNetCache

	// debugListSize overrides the (empty) debug info list's count
	debugListSize int32

	// breakBodyCRC stores a wrong body checksum
	breakBodyCRC bool
}

// buildReplay assembles a complete framed replay: sizes, checksums, header
// and body.
func buildReplay(o replayOpts) []byte {
	header := new(repWriter)
	header.putUint32(868)
	header.putUint32(12) // old enough to carry no net version and no name ids
	header.putText("TAGame.Replay_Soccar_TA")
	header.putIntProperty("TeamSize", 3)
	if o.extraProps != nil {
		o.extraProps(header)
	}
	header.putNone()

	body := new(repWriter)
	body.putTextList([]string{"Stadium_P"})
	body.putInt32(1) // keyframes
	body.putFloat32(0)
	body.putInt32(0)
	body.putInt32(8654)
	body.putInt32(int32(len(o.networkData)))
	body.Write(o.networkData)
	body.putInt32(o.debugListSize)
	body.putInt32(1) // tick marks
	body.putText("Team1Goal")
	body.putInt32(396)
	body.putTextList(nil) // packages
	body.putTextList(o.objects)
	body.putTextList(nil) // names
	body.putInt32(int32(len(o.classIndices)))
	for _, ci := range o.classIndices {
		body.putText(ci.Class)
		body.putInt32(ci.Index)
	}
	body.putInt32(int32(len(o.netCache)))
	for _, cnc := range o.netCache {
		body.putInt32(cnc.ObjectInd)
		body.putInt32(cnc.ParentID)
		body.putInt32(cnc.CacheID)
		body.putInt32(int32(len(cnc.Properties)))
		for _, p := range cnc.Properties {
			body.putInt32(p.ObjectInd)
			body.putInt32(p.StreamID)
		}
	}

	bodyCRC := calcCRC(body.Bytes())
	if o.breakBodyCRC {
		bodyCRC++
	}

	out := new(repWriter)
	out.putInt32(int32(header.Len()))
	out.putUint32(calcCRC(header.Bytes()))
	out.Write(header.Bytes())
	out.putInt32(int32(body.Len()))
	out.putUint32(bodyCRC)
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestParseReplay(t *testing.T) {
	data := buildReplay(replayOpts{})

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Header == nil || r.Header.MajorVersion != 868 || r.Header.MinorVersion != 12 {
		t.Fatalf("unexpected header: %+v", r.Header)
	}
	if v, ok := r.Header.Properties.Int("TeamSize"); !ok || v != 3 {
		t.Errorf("unexpected TeamSize: %d (%t)", v, ok)
	}
	if len(r.Levels) != 1 || r.Levels[0] != "Stadium_P" {
		t.Errorf("unexpected levels: %v", r.Levels)
	}
	if len(r.KeyFrames) != 1 || r.KeyFrames[0].Position != 8654 {
		t.Errorf("unexpected keyframes: %v", r.KeyFrames)
	}
	if len(r.TickMarks) != 1 || r.TickMarks[0].Description != "Team1Goal" || r.TickMarks[0].Frame != 396 {
		t.Errorf("unexpected tick marks: %v", r.TickMarks)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Offset != 0 {
		t.Errorf("expected offset 0, got %d", insufficient.Offset)
	}
}

func TestCrcCheckAlways(t *testing.T) {
	data := buildReplay(replayOpts{})

	// Flipping a byte inside the level name keeps the body parseable but
	// must fail the crc check.
	corrupt := append([]byte(nil), data...)
	bodyStart := 8 + int(uint32(data[0])|uint32(data[1])<<8|uint32(data[2])<<16|uint32(data[3])<<24) + 8
	corrupt[bodyStart+8]++ // first letter of "Stadium_P"

	_, err := ParseConfig(corrupt, Config{CrcCheck: CrcCheckAlways})
	var mismatch *CrcMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CrcMismatchError, got %v", err)
	}
	want := fmt.Sprintf("Crc mismatch. Expected %d but received %d", mismatch.Expected, mismatch.Actual)
	if err.Error() != want {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if mismatch.Expected == mismatch.Actual {
		t.Error("expected differing checksums")
	}

	// The same corruption passes when the crc is only checked on error.
	if _, err := ParseConfig(corrupt, Config{CrcCheck: CrcCheckOnError}); err != nil {
		t.Errorf("unexpected error with on-error crc: %v", err)
	}
}

func TestListTooLargeNeverCrc(t *testing.T) {
	data := buildReplay(replayOpts{debugListSize: 0x2c000000})

	_, err := ParseConfig(data, Config{CrcCheck: CrcCheckNever})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "Could not decode replay debug info at offset (") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	var tooLarge *ListTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Errorf("expected a ListTooLargeError cause, got %v", err)
	}
}

func TestListTooLargeOnErrorCrc(t *testing.T) {
	data := buildReplay(replayOpts{debugListSize: 0x2c000000, breakBodyCRC: true})

	_, err := ParseConfig(data, Config{CrcCheck: CrcCheckOnError})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Failed to parse body and crc check failed. Replay is corrupt" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	// The original decode failure is preserved as the cause.
	var section *SectionError
	if !errors.As(err, &section) || section.Section != "debug info" {
		t.Errorf("expected the debug info section error as cause, got %v", err)
	}
	var tooLarge *ListTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Errorf("expected a ListTooLargeError cause, got %v", err)
	}
}

func TestNetworkParseNever(t *testing.T) {
	data := buildReplay(replayOpts{})

	r, err := ParseConfig(data, Config{NetworkParse: NetworkParseNever})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NetworkFrames != nil {
		t.Errorf("expected no network frames, got %+v", r.NetworkFrames)
	}
}
