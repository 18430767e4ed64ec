package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/taigrr/voxcast/pkg/input"
	"github.com/taigrr/voxcast/pkg/render"
)

// Recording file layout, zstd compressed as a whole:
//
//	magic   [4]byte "VXCR"
//	version uint8
//	width   uint16 (little endian)
//	height  uint16
//	frames  width*height/4 packed bytes each, until EOF
const (
	recordingExt     = ".vxr"
	recordingMagic   = "VXCR"
	recordingVersion = 1
)

var errBadRecording = errors.New("not a voxcast recording")

// RecordWriter streams packed framebuffers into a compressed recording.
type RecordWriter struct {
	enc    *zstd.Encoder
	width  int
	height int
	frames int
}

// NewRecordWriter writes the header for width x height frames to w.
func NewRecordWriter(w io.Writer, width, height int) (*RecordWriter, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}

	hdr := make([]byte, 0, 9)
	hdr = append(hdr, recordingMagic...)
	hdr = append(hdr, recordingVersion)
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(width))
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(height))
	if _, err := enc.Write(hdr); err != nil {
		enc.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	return &RecordWriter{enc: enc, width: width, height: height}, nil
}

// WriteFrame appends one frame. Its size must match the header.
func (rw *RecordWriter) WriteFrame(fb *render.Framebuffer) error {
	if fb.Width != rw.width || fb.Height != rw.height {
		return fmt.Errorf("frame %dx%d does not match recording %dx%d", fb.Width, fb.Height, rw.width, rw.height)
	}
	if _, err := rw.enc.Write(fb.Pixels); err != nil {
		return fmt.Errorf("write frame %d: %w", rw.frames, err)
	}
	rw.frames++
	return nil
}

// Frames returns the number of frames written.
func (rw *RecordWriter) Frames() int {
	return rw.frames
}

// Close flushes the stream. It does not close the underlying writer.
func (rw *RecordWriter) Close() error {
	return rw.enc.Close()
}

// Recording is a decoded frame capture.
type Recording struct {
	Width, Height int
	Frames        [][]byte
}

// ReadRecording decodes a whole recording from r.
func ReadRecording(r io.Reader) (*Recording, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	hdr := make([]byte, 9)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(hdr[:4]) != recordingMagic {
		return nil, errBadRecording
	}
	if hdr[4] != recordingVersion {
		return nil, fmt.Errorf("unsupported recording version %d", hdr[4])
	}

	rec := &Recording{
		Width:  int(binary.LittleEndian.Uint16(hdr[5:])),
		Height: int(binary.LittleEndian.Uint16(hdr[7:])),
	}
	size := rec.Width * rec.Height / 4
	if size == 0 {
		return nil, fmt.Errorf("%w: empty frame size", errBadRecording)
	}

	for {
		frame := make([]byte, size)
		_, err := io.ReadFull(br, frame)
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read frame %d: %w", len(rec.Frames), err)
		}
		rec.Frames = append(rec.Frames, frame)
	}
}

// scriptedInput is the fixed input sequence for recordings: walk forward
// while turning, looking up and down, and editing a block now and then.
func scriptedInput(frame int) input.State {
	var st input.State
	st.Pad2 = input.ButtonUp
	switch phase := (frame / 60) % 4; phase {
	case 0:
		st.Pad1 = input.ButtonRight
	case 1:
		st.Pad1 = input.ButtonUp
	case 2:
		st.Pad1 = input.ButtonLeft
	case 3:
		st.Pad1 = input.ButtonDown
	}
	switch frame % 40 {
	case 10:
		st.Pad1 |= input.ButtonX
	case 30:
		st.Pad1 |= input.ButtonZ
	}
	return st
}

func newRecordCmd(a *app) *cobra.Command {
	var (
		out    string
		frames int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Capture a scripted session as a compressed frame stream",
		Long: `record plays a fixed input script (or the demo flight with --demo) for the
given number of frames and writes every framebuffer to a zstd-compressed
` + recordingExt + ` file. Inspect it with "voxcast inspect".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", frames)
			}
			g, err := a.newGame()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()

			fb := g.Framebuffer()
			rw, err := NewRecordWriter(f, fb.Width, fb.Height)
			if err != nil {
				return err
			}

			for i := range frames {
				if err := cmd.Context().Err(); err != nil {
					rw.Close()
					return err
				}
				g.Update(scriptedInput(i))
				if err := rw.WriteFrame(fb); err != nil {
					rw.Close()
					return err
				}
			}
			if err := rw.Close(); err != nil {
				return fmt.Errorf("finish recording: %w", err)
			}

			a.log.Printf("wrote %s (%d frames)", out, rw.Frames())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "session"+recordingExt, "recording output path")
	f.IntVar(&frames, "frames", 240, "frames to record")
	return cmd
}
