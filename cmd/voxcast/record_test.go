package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/taigrr/voxcast/pkg/render"
)

func TestRecordingRoundTrip(t *testing.T) {
	fb, err := render.NewFramebuffer(16, 8)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rw, err := NewRecordWriter(&buf, fb.Width, fb.Height)
	if err != nil {
		t.Fatal(err)
	}

	var want [][]byte
	for i := range 3 {
		fb.Clear(uint8(i))
		fb.SetPixel(i, i, 4)
		if err := rw.WriteFrame(fb); err != nil {
			t.Fatal(err)
		}
		want = append(want, bytes.Clone(fb.Pixels))
	}
	if err := rw.Close(); err != nil {
		t.Fatal(err)
	}
	if rw.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", rw.Frames())
	}

	rec, err := ReadRecording(&buf)
	if err != nil {
		t.Fatalf("ReadRecording: %v", err)
	}
	if rec.Width != 16 || rec.Height != 8 || len(rec.Frames) != 3 {
		t.Fatalf("recording = %dx%d with %d frames", rec.Width, rec.Height, len(rec.Frames))
	}
	for i := range want {
		if !bytes.Equal(rec.Frames[i], want[i]) {
			t.Errorf("frame %d differs", i)
		}
	}
}

func TestRecordWriterRejectsSizeChange(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewRecordWriter(&buf, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Close()

	fb, _ := render.NewFramebuffer(8, 8)
	if err := rw.WriteFrame(fb); err == nil {
		t.Error("expected an error for a mismatched frame size")
	}
}

func TestReadRecordingRejectsForeignStream(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	enc.Write([]byte("PNG\x00not a recording"))
	enc.Close()

	if _, err := ReadRecording(&buf); !errors.Is(err, errBadRecording) {
		t.Errorf("ReadRecording() error = %v, want errBadRecording", err)
	}
}

func TestScriptedInputEditsOnPressEdges(t *testing.T) {
	removes, places := 0, 0
	for i := range 80 {
		st := scriptedInput(i)
		if st.Pad2 == 0 {
			t.Fatalf("frame %d: script stopped walking", i)
		}
		if st.Pad1&1 != 0 {
			removes++
		}
		if st.Pad1&2 != 0 {
			places++
		}
	}
	if removes != 2 || places != 2 {
		t.Errorf("removes = %d, places = %d, want 2 each", removes, places)
	}
}
