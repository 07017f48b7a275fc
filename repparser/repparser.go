/*

Package repparser implements Rocket League replay parsing.

The package is safe for concurrent use: a parse call takes an immutable byte
slice and returns a value or an error, with no shared mutable state.

Information sources:

boxcars replay parser:

https://github.com/nickbabcock/boxcars

rattletrap replay parser:

https://github.com/tfausak/rattletrap

RocketLeagueReplayParser:

https://github.com/jjbott/RocketLeagueReplayParser

*/
package repparser

import (
	"log"
	"os"
	"runtime"

	"github.com/hexhaus/rlrep/rep"
	"github.com/hexhaus/rlrep/rep/repnet"
)

const (
	// Version is a Semver2 compatible version of the parser.
	Version = "v1.2.0"
)

// CrcCheck tells under what circumstances the parser verifies a section's
// checksum. The check is the most time consuming part of parsing the header,
// so clients choose when to pay for it.
type CrcCheck int

// CrcChecks. The zero value is the default policy.
const (
	// CrcCheckOnError verifies only when a section failed its structured
	// decode, to tell a corrupt replay from a parser bug.
	CrcCheckOnError CrcCheck = iota

	// CrcCheckAlways verifies unconditionally. Catches modified replays
	// whose author did not also update the checksum.
	CrcCheckAlways

	// CrcCheckNever skips verification entirely.
	CrcCheckNever
)

// NetworkParse tells how the parser handles the network data, the most
// intensive and volatile section of the replay.
type NetworkParse int

// NetworkParses. The zero value is the default policy.
const (
	// NetworkParseIgnoreOnError attempts the network data, but discards the
	// error and emits no frames when it fails.
	NetworkParseIgnoreOnError NetworkParse = iota

	// NetworkParseAlways propagates network decode errors.
	NetworkParseAlways

	// NetworkParseNever skips the network data.
	NetworkParseNever
)

// Config holds parser configuration.
type Config struct {
	// CrcCheck policy for the header and body sections
	CrcCheck CrcCheck

	// NetworkParse policy for the network data
	NetworkParse NetworkParse

	_ struct{} // To prevent unkeyed literals
}

// ParseFile parses a Rocket League replay file with default policies.
func ParseFile(name string) (*rep.Replay, error) {
	return ParseFileConfig(name, Config{})
}

// ParseFileConfig parses a Rocket League replay file based on the given
// parser configuration.
func ParseFileConfig(name string, cfg Config) (*rep.Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, cfg)
}

// Parse parses a Rocket League replay from the given byte slice with default
// policies.
func Parse(repData []byte) (*rep.Replay, error) {
	return ParseConfig(repData, Config{})
}

// ParseConfig parses a Rocket League replay from the given byte slice based
// on the given parser configuration.
func ParseConfig(repData []byte, cfg Config) (*rep.Replay, error) {
	return parseProtected(repData, cfg)
}

// parseProtected calls parse(), but protects the function call from panics,
// in which case it returns ErrParsing.
func parseProtected(repData []byte, cfg Config) (r *rep.Replay, err error) {
	// Input is untrusted data, protect the parsing logic.
	// It also protects against implementation bugs.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Parsing error: %v", r)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("Stack: %s", buf[:n])
			err = ErrParsing
		}
	}()

	return parse(repData, cfg)
}

// parse decodes the framed sections and assembles the replay value.
func parse(data []byte, cfg Config) (*rep.Replay, error) {
	sr := &sliceReader{b: data}
	r := new(rep.Replay)

	var err error
	if r.HeaderSize, err = sr.getInt32(); err != nil {
		return nil, sectionErr(sr, "header size", err)
	}
	if r.HeaderCRC, err = sr.getUint32(); err != nil {
		return nil, sectionErr(sr, "header crc", err)
	}
	headerData, err := sr.peek(int(r.HeaderSize))
	if err != nil {
		return nil, sectionErr(sr, "header data", err)
	}
	err = crcSection(cfg, headerData, r.HeaderCRC, "header", func() error {
		var err error
		if r.Header, err = parseHeader(sr); err != nil {
			return sectionErr(sr, "header", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if r.ContentSize, err = sr.getInt32(); err != nil {
		return nil, sectionErr(sr, "content size", err)
	}
	if r.ContentCRC, err = sr.getUint32(); err != nil {
		return nil, sectionErr(sr, "content crc", err)
	}
	contentData, err := sr.peek(int(r.ContentSize))
	if err != nil {
		return nil, sectionErr(sr, "content data", err)
	}
	var body *replayBody
	err = crcSection(cfg, contentData, r.ContentCRC, "body", func() error {
		var err error
		body, err = parseBody(sr)
		return err
	})
	if err != nil {
		return nil, err
	}

	var network *repnet.Frames
	switch cfg.NetworkParse {
	case NetworkParseAlways:
		if network, err = decodeNetwork(r.Header, body); err != nil {
			return nil, err
		}
	case NetworkParseIgnoreOnError:
		network, _ = decodeNetwork(r.Header, body)
	case NetworkParseNever:
	}

	r.NetworkFrames = network
	r.Levels = body.levels
	r.KeyFrames = body.keyFrames
	r.DebugInfo = body.debugInfo
	r.TickMarks = body.tickMarks
	r.Packages = body.packages
	r.Objects = body.objects
	r.Names = body.names
	r.ClassIndices = body.classIndices
	r.NetCache = body.netCache
	return r, nil
}

// decodeNetwork builds the class graph and runs the frame decoder over the
// raw network data.
func decodeNetwork(header *rep.Header, body *replayBody) (*repnet.Frames, error) {
	graph, err := buildClassGraph(body)
	if err != nil {
		return nil, err
	}
	return parseNetwork(header, body, graph)
}

// crcSection runs a section's decode and applies the configured crc policy.
func crcSection(cfg Config, data []byte, crc uint32, section string, decode func() error) error {
	err := decode()

	switch cfg.CrcCheck {
	case CrcCheckAlways:
		if actual := calcCRC(data); actual != crc {
			return &CrcMismatchError{Expected: crc, Actual: actual}
		}
	case CrcCheckOnError:
		if err != nil && calcCRC(data) != crc {
			return &CorruptReplayError{Section: section, Err: err}
		}
	case CrcCheckNever:
	}
	return err
}
