// voxcast - Voxel Raycaster for the Terminal
// Walk a wraparound voxel world rendered one ray per pixel into a 4-colour
// framebuffer, and add or remove blocks as you go.
//
// Controls (play):
//
//	Arrows      - Look (pad 1)
//	W/A/S/D     - Walk and strafe (pad 2)
//	X / Space   - Remove the block under the crosshair
//	Z / Enter   - Place a block against the face under the crosshair
//	?           - Toggle HUD overlay
//	Esc / Q     - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taigrr/voxcast/pkg/config"
	"github.com/taigrr/voxcast/pkg/game"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand shares: resolved settings and the logger.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	quiet   bool
	log     *log.Logger
}

// flagKeys binds persistent flags to config keys.
var flagKeys = map[string]string{
	"size":         "world.size",
	"seed":         "world.seed",
	"generator":    "world.generator",
	"threshold":    "world.threshold",
	"width":        "render.width",
	"height":       "render.height",
	"ray-range":    "render.ray_range",
	"shadow-range": "render.shadow_range",
	"texture":      "render.texture",
	"crosshair":    "render.crosshair",
	"outline":      "render.outline",
	"fps":          "render.fps",
	"demo":         "demo",
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:   config.NewViper(),
		log: log.New(os.Stderr, "voxcast: ", 0),
	}
	d := config.Default()

	root := &cobra.Command{
		Use:   "voxcast",
		Short: "Voxel raycaster for the terminal",
		Long: `voxcast renders a wraparound voxel world with a DDA raycaster, one ray per
pixel, into a 4-colour framebuffer shown with half-block characters.

Settings come from built-in defaults, then voxcast.yaml (in the working
directory or ~/.voxcast), then VOXCAST_* environment variables, then flags.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default voxcast.yaml in . or ~/.voxcast)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress status messages")
	pf.Int("size", d.World.Size, "world side length, a power of two")
	pf.Uint32("seed", d.World.Seed, "world generation seed")
	pf.String("generator", d.World.Generator, "world generator: scatter or terrace")
	pf.Uint32("threshold", d.World.Threshold, "scatter fill threshold out of 100")
	pf.Int("width", d.Render.Width, "framebuffer width, a multiple of 4")
	pf.Int("height", d.Render.Height, "framebuffer height")
	pf.Float64("ray-range", d.Render.RayRange, "ray range for odd pixels")
	pf.Float64("shadow-range", d.Render.ShadowRange, "ray range for even pixels")
	pf.String("texture", d.Render.Texture, "block texture: smiley or checker")
	pf.Bool("crosshair", d.Render.Crosshair, "draw the centre crosshair")
	pf.Bool("outline", d.Render.Outline, "outline the block within reach")
	pf.Int("fps", d.Render.FPS, "target frames per second")
	pf.Bool("demo", d.Demo, "fly a scripted path instead of reading input")

	for name, key := range flagKeys {
		if err := a.v.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(
		newPlayCmd(a),
		newSnapshotCmd(a),
		newExportCmd(a),
		newInspectCmd(a),
		newBenchCmd(a),
		newRecordCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) load() error {
	if a.quiet {
		a.log.SetOutput(io.Discard)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Printf("loaded config %s", used)
	}
	return nil
}

// newGame builds and generates a world from the resolved settings.
func (a *app) newGame() (*game.Game, error) {
	opts, err := a.cfg.GameOptions()
	if err != nil {
		return nil, err
	}
	g, err := game.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	g.Start()
	return g, nil
}
