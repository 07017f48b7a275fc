package repparser

import (
	"errors"
	"testing"
)

func TestGetText(t *testing.T) {
	cases := []struct {
		name string
		data func(w *repWriter)
		want string
	}{
		{"windows1252", func(w *repWriter) { w.putText("rumble") }, "rumble"},
		{"windows1252 high byte", func(w *repWriter) { w.putInt32(3); w.putByte(0xe9); w.putByte('!'); w.putByte(0) }, "é!"},
		{"utf16", func(w *repWriter) { w.putTextUTF16("stadium") }, "stadium"},
		{"empty zero length", func(w *repWriter) { w.putInt32(0) }, ""},
		{"empty nul only", func(w *repWriter) { w.putInt32(1); w.putByte(0) }, ""},
	}

	for _, c := range cases {
		w := new(repWriter)
		c.data(w)
		sr := &sliceReader{b: w.Bytes()}
		got, err := sr.getText()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
		if sr.remaining() != 0 {
			t.Errorf("%s: %d bytes left unread", c.name, sr.remaining())
		}
	}
}

func TestGetTextBadSizes(t *testing.T) {
	cases := []struct {
		name string
		size int32
	}{
		{"too large", 1000},
		{"very negative", -1912602609},
		{"min int", -2147483648},
	}

	for _, c := range cases {
		w := new(repWriter)
		w.putInt32(c.size)
		w.putByte('x')
		sr := &sliceReader{b: w.Bytes()}
		_, err := sr.getText()
		var sizeErr *StringSizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("%s: expected StringSizeError, got %v", c.name, err)
			continue
		}
		if sizeErr.Size != c.size {
			t.Errorf("%s: expected size %d, got %d", c.name, c.size, sizeErr.Size)
		}
	}
}

func TestInsufficientData(t *testing.T) {
	sr := &sliceReader{b: []byte{1, 2}}
	_, err := sr.getUint32()
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Expected != 4 || insufficient.Remaining != 2 || insufficient.Offset != 0 {
		t.Errorf("unexpected error details: %+v", insufficient)
	}
	if got := err.Error(); got != "Insufficient data. Expected 4 bytes, but only 2 bytes left" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestListOfTooLarge(t *testing.T) {
	w := new(repWriter)
	w.putInt32(1 << 24) // far more elements than bytes remain
	w.putUint32(0)
	sr := &sliceReader{b: w.Bytes()}
	_, err := listOf(sr, 12, getKeyFrame)
	var tooLarge *ListTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected ListTooLargeError, got %v", err)
	}
	if tooLarge.Size != 1<<24 {
		t.Errorf("expected size %d, got %d", 1<<24, tooLarge.Size)
	}
}

func TestListOfNegativeCount(t *testing.T) {
	w := new(repWriter)
	w.putInt32(-5)
	sr := &sliceReader{b: w.Bytes()}
	if _, err := sr.getTextList(); err == nil {
		t.Error("expected error for negative list count")
	}
}

func TestListOf(t *testing.T) {
	w := new(repWriter)
	w.putInt32(2)
	for i := 0; i < 2; i++ {
		w.putFloat32(1.5)
		w.putInt32(30)
		w.putInt32(4000)
	}
	sr := &sliceReader{b: w.Bytes()}
	frames, err := listOf(sr, 12, getKeyFrame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 keyframes, got %d", len(frames))
	}
	if frames[1].Time != 1.5 || frames[1].Frame != 30 || frames[1].Position != 4000 {
		t.Errorf("unexpected keyframe: %+v", frames[1])
	}
}
