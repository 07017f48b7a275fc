// This file contains the body decoding: level list, keyframes, the raw
// network-data slice, debug info, tick marks, the three name tables, class
// indices and the class net cache.

package repparser

import "github.com/hexhaus/rlrep/rep"

// replayBody holds the decoded body tables plus the raw network-data bytes,
// borrowed from the input buffer until network decoding completes.
type replayBody struct {
	levels       []string
	keyFrames    []rep.KeyFrame
	networkData  []byte
	debugInfo    []rep.DebugInfo
	tickMarks    []rep.TickMark
	packages     []string
	objects      []string
	names        []string
	classIndices []rep.ClassIndex
	netCache     []rep.ClassNetCache
}

func parseBody(sr *sliceReader) (*replayBody, error) {
	body := new(replayBody)

	var err error
	if body.levels, err = sr.getTextList(); err != nil {
		return nil, sectionErr(sr, "levels", err)
	}
	if body.keyFrames, err = listOf(sr, 12, getKeyFrame); err != nil {
		return nil, sectionErr(sr, "keyframes", err)
	}
	networkSize, err := sr.getInt32()
	if err != nil {
		return nil, sectionErr(sr, "network size", err)
	}
	if body.networkData, err = sr.view(int(networkSize)); err != nil {
		return nil, sectionErr(sr, "network data", err)
	}
	if body.debugInfo, err = listOf(sr, 12, getDebugInfo); err != nil {
		return nil, sectionErr(sr, "debug info", err)
	}
	if body.tickMarks, err = listOf(sr, 8, getTickMark); err != nil {
		return nil, sectionErr(sr, "tickmarks", err)
	}
	if body.packages, err = sr.getTextList(); err != nil {
		return nil, sectionErr(sr, "packages", err)
	}
	if body.objects, err = sr.getTextList(); err != nil {
		return nil, sectionErr(sr, "objects", err)
	}
	if body.names, err = sr.getTextList(); err != nil {
		return nil, sectionErr(sr, "names", err)
	}
	if body.classIndices, err = listOf(sr, 8, getClassIndex); err != nil {
		return nil, sectionErr(sr, "class index", err)
	}
	if body.netCache, err = listOf(sr, 16, getClassNetCache); err != nil {
		return nil, sectionErr(sr, "net cache", err)
	}
	return body, nil
}

// sectionErr labels err with the section and the reader's current offset,
// unless it is labeled already.
func sectionErr(sr *sliceReader, section string, err error) error {
	if _, ok := err.(*SectionError); ok {
		return err
	}
	return &SectionError{Section: section, Offset: sr.pos, Err: err}
}

func getKeyFrame(sr *sliceReader) (rep.KeyFrame, error) {
	var kf rep.KeyFrame
	var err error
	if kf.Time, err = sr.getFloat32(); err != nil {
		return kf, err
	}
	if kf.Frame, err = sr.getInt32(); err != nil {
		return kf, err
	}
	kf.Position, err = sr.getInt32()
	return kf, err
}

func getDebugInfo(sr *sliceReader) (rep.DebugInfo, error) {
	var di rep.DebugInfo
	var err error
	if di.Frame, err = sr.getInt32(); err != nil {
		return di, err
	}
	if di.User, err = sr.getText(); err != nil {
		return di, err
	}
	di.Text, err = sr.getText()
	return di, err
}

func getTickMark(sr *sliceReader) (rep.TickMark, error) {
	var tm rep.TickMark
	var err error
	if tm.Description, err = sr.getText(); err != nil {
		return tm, err
	}
	tm.Frame, err = sr.getInt32()
	return tm, err
}

func getClassIndex(sr *sliceReader) (rep.ClassIndex, error) {
	var ci rep.ClassIndex
	var err error
	if ci.Class, err = sr.getText(); err != nil {
		return ci, err
	}
	ci.Index, err = sr.getInt32()
	return ci, err
}

func getClassNetCache(sr *sliceReader) (rep.ClassNetCache, error) {
	var cnc rep.ClassNetCache
	var err error
	if cnc.ObjectInd, err = sr.getInt32(); err != nil {
		return cnc, err
	}
	if cnc.ParentID, err = sr.getInt32(); err != nil {
		return cnc, err
	}
	if cnc.CacheID, err = sr.getInt32(); err != nil {
		return cnc, err
	}
	cnc.Properties, err = listOf(sr, 8, getCacheProp)
	return cnc, err
}

func getCacheProp(sr *sliceReader) (rep.CacheProp, error) {
	var cp rep.CacheProp
	var err error
	if cp.ObjectInd, err = sr.getInt32(); err != nil {
		return cp, err
	}
	cp.StreamID, err = sr.getInt32()
	return cp, err
}
