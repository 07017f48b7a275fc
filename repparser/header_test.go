package repparser

import (
	"testing"

	"github.com/hexhaus/rlrep/rep"
)

// putTestHeader writes a small header: version triple, game type and a
// property tree exercising every property type.
func putTestHeader(w *repWriter) {
	w.putUint32(868)
	w.putUint32(20)
	w.putUint32(5) // net version present at 868.20
	w.putText("TAGame.Replay_Soccar_TA")

	w.putIntProperty("TeamSize", 3)
	w.putProperty("MatchType", "NameProperty", func() { w.putText("Online") })
	w.putProperty("RecordFPS", "FloatProperty", func() { w.putFloat32(30) })
	w.putProperty("bUnfairBots", "BoolProperty", func() { w.putByte(0) })
	w.putProperty("MatchGUID", "StrProperty", func() { w.putText("abc123") })
	w.putProperty("GameServerID", "QWordProperty", func() { w.putUint64(0x1122334455667788) })
	w.putProperty("Platform", "ByteProperty", func() { w.putText("OnlinePlatform_Steam") })
	w.putProperty("PaintKind", "ByteProperty", func() {
		w.putText("EPaintKind")
		w.putText("EPaintKind_Glossy")
	})
	w.putProperty("Goals", "ArrayProperty", func() {
		w.putInt32(2)
		for i := int32(0); i < 2; i++ {
			w.putIntProperty("frame", 100+i)
			w.putNone()
		}
	})
	w.putNone()
}

func TestParseHeader(t *testing.T) {
	w := new(repWriter)
	putTestHeader(w)

	h, err := parseHeader(&sliceReader{b: w.Bytes()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.MajorVersion != 868 || h.MinorVersion != 20 {
		t.Errorf("unexpected version: %d.%d", h.MajorVersion, h.MinorVersion)
	}
	if h.NetVersion == nil || *h.NetVersion != 5 {
		t.Errorf("unexpected net version: %v", h.NetVersion)
	}
	if h.GameType != "TAGame.Replay_Soccar_TA" {
		t.Errorf("unexpected game type: %q", h.GameType)
	}

	if len(h.Properties) != 9 {
		t.Fatalf("expected 9 properties, got %d", len(h.Properties))
	}
	// Insertion order must be preserved.
	wantOrder := []string{"TeamSize", "MatchType", "RecordFPS", "bUnfairBots", "MatchGUID", "GameServerID", "Platform", "PaintKind", "Goals"}
	for i, name := range wantOrder {
		if h.Properties[i].Name != name {
			t.Errorf("property %d: expected %q, got %q", i, name, h.Properties[i].Name)
		}
	}

	if v, ok := h.Properties.Int("TeamSize"); !ok || v != 3 {
		t.Errorf("unexpected TeamSize: %d (%t)", v, ok)
	}
	if v, ok := h.Properties.Str("MatchType"); !ok || v != "Online" {
		t.Errorf("unexpected MatchType: %q (%t)", v, ok)
	}
	if v, ok := h.Properties.Float("RecordFPS"); !ok || v != 30 {
		t.Errorf("unexpected RecordFPS: %v (%t)", v, ok)
	}
	if v, ok := h.Properties.QWord("GameServerID"); !ok || v != 0x1122334455667788 {
		t.Errorf("unexpected GameServerID: %#x (%t)", v, ok)
	}

	// The Steam platform byte property carries no value string.
	platform := h.Properties[6].Value
	if platform.Kind != rep.PropByte || platform.Byte.Kind != "OnlinePlatform_Steam" || platform.Byte.Value != nil {
		t.Errorf("unexpected platform property: %+v", platform.Byte)
	}
	paint := h.Properties[7].Value
	if paint.Byte == nil || paint.Byte.Value == nil || *paint.Byte.Value != "EPaintKind_Glossy" {
		t.Errorf("unexpected paint property: %+v", paint.Byte)
	}

	goals, ok := h.Properties.Array("Goals")
	if !ok || len(goals) != 2 {
		t.Fatalf("unexpected Goals array: %v (%t)", goals, ok)
	}
	if v, ok := goals[1].Int("frame"); !ok || v != 101 {
		t.Errorf("unexpected goal frame: %d (%t)", v, ok)
	}
}

func TestParseHeaderNoNetVersion(t *testing.T) {
	w := new(repWriter)
	w.putUint32(865)
	w.putUint32(12)
	w.putText("TAGame.Replay_Soccar_TA")
	w.putNone()

	h, err := parseHeader(&sliceReader{b: w.Bytes()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.NetVersion != nil {
		t.Errorf("expected no net version, got %d", *h.NetVersion)
	}
	if len(h.Properties) != 0 {
		t.Errorf("expected empty property tree, got %d entries", len(h.Properties))
	}
}

func TestParseHeaderUnknownProperty(t *testing.T) {
	w := new(repWriter)
	w.putUint32(868)
	w.putUint32(20)
	w.putUint32(5)
	w.putText("TAGame.Replay_Soccar_TA")
	w.putProperty("Strange", "StructProperty", func() {})

	_, err := parseHeader(&sliceReader{b: w.Bytes()})
	if err == nil {
		t.Fatal("expected error for unknown property type")
	}
}
