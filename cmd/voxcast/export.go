package main

import (
	"github.com/spf13/cobra"

	"github.com/taigrr/voxcast/pkg/models"
)

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the generated world's visible block faces as a GLB mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGame()
			if err != nil {
				return err
			}

			mesh := models.FromGrid("voxcast-world", g.Grid())
			if err := models.SaveGLB(mesh, out); err != nil {
				return err
			}
			a.log.Printf("wrote %s (%d vertices, %d triangles)", out, mesh.VertexCount(), mesh.TriangleCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "world.glb", "GLB output path")
	return cmd
}
