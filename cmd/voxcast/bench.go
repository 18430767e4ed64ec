package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		frames int
		warmup int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time headless frame updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 2 {
				return fmt.Errorf("frames must be at least 2, got %d", frames)
			}
			g, err := a.newGame()
			if err != nil {
				return err
			}

			for i := range warmup {
				g.Update(scriptedInput(i))
			}

			samples := make([]float64, frames)
			rays, hits := 0, 0
			for i := range frames {
				start := time.Now()
				g.Update(scriptedInput(warmup + i))
				samples[i] = float64(time.Since(start)) / float64(time.Millisecond)

				s := g.Raycaster().Stats
				rays += s.Rays
				hits += s.Hits
			}

			mean, std := stat.MeanStdDev(samples, nil)
			fb := g.Framebuffer()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%dx%d, %d frames\n", fb.Width, fb.Height, frames)
			fmt.Fprintf(w, "frame time  %.3f ms ± %.3f\n", mean, std)
			fmt.Fprintf(w, "frame rate  %.1f fps\n", 1000/mean)
			fmt.Fprintf(w, "hit ratio   %.1f%%\n", 100*float64(hits)/float64(rays))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&frames, "frames", 300, "frames to time")
	f.IntVar(&warmup, "warmup", 30, "untimed frames before measuring")
	return cmd
}
