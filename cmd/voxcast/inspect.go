package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/taigrr/voxcast/pkg/models"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.glb|file.vxr>",
		Short: "Summarize an exported mesh or a frame recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w := cmd.OutOrStdout()

			switch ext := strings.ToLower(filepath.Ext(path)); ext {
			case ".glb", ".gltf":
				mesh, err := models.LoadGLB(path)
				if err != nil {
					return fmt.Errorf("load model: %w", err)
				}
				size := mesh.Size()
				fmt.Fprintf(w, "%s: %d vertices, %d triangles, size %.0fx%.0fx%.0f\n",
					filepath.Base(path), mesh.VertexCount(), mesh.TriangleCount(), size.X, size.Y, size.Z)

			case recordingExt:
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()

				rec, err := ReadRecording(f)
				if err != nil {
					return fmt.Errorf("read recording: %w", err)
				}
				unique := make(map[uint64]struct{}, len(rec.Frames))
				for _, frame := range rec.Frames {
					unique[xxhash.Sum64(frame)] = struct{}{}
				}
				fmt.Fprintf(w, "%s: %d frames of %dx%d, %d distinct\n",
					filepath.Base(path), len(rec.Frames), rec.Width, rec.Height, len(unique))

			default:
				return fmt.Errorf("unsupported format: %s (use .glb or %s)", ext, recordingExt)
			}
			return nil
		},
	}
}
