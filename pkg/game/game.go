// Package game ties the world, camera and renderer into the per-frame update
// a host drives.
package game

import (
	"fmt"

	"github.com/taigrr/voxcast/pkg/input"
	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/raycast"
	"github.com/taigrr/voxcast/pkg/render"
	"github.com/taigrr/voxcast/pkg/rng"
	"github.com/taigrr/voxcast/pkg/voxel"
)

// FrameTime is the simulated time that passes per frame.
const FrameTime = 0.05

// DefaultInteractDistance is how far the player can reach to edit blocks.
const DefaultInteractDistance = 5.0

// Options configures a Game.
type Options struct {
	GridSize         int
	Generator        voxel.Generator
	Start            math3d.Vec3f
	ScreenWidth      int
	ScreenHeight     int
	RayRange         float64
	ShadowRange      float64
	InteractDistance float64
	Texture          *render.Bitmap
	Crosshair        bool
	Outline          bool // outline the block within reach under the crosshair
	Demo             bool // fly a scripted path instead of reading input
}

// DefaultOptions returns the stock 32^3 scatter world on a 160x160 screen.
func DefaultOptions() Options {
	return Options{
		GridSize:         voxel.DefaultSize,
		Generator:        voxel.Scatter{Seed: rng.DefaultSeed, Threshold: voxel.DefaultThreshold},
		Start:            math3d.V3(15.5, 15.5, 15.5),
		ScreenWidth:      render.DefaultScreenSize,
		ScreenHeight:     render.DefaultScreenSize,
		RayRange:         render.DefaultRayRange,
		ShadowRange:      render.DefaultShadowRange,
		InteractDistance: DefaultInteractDistance,
		Texture:          &render.Smiley,
		Crosshair:        true,
	}
}

// Game owns all mutable state for one session. It is not safe for
// concurrent use; the host calls Update once per frame.
type Game struct {
	grid      *voxel.Grid
	camera    *render.Camera
	raycaster *render.Raycaster
	fb        *render.Framebuffer
	generator voxel.Generator
	demo      *Demo

	pad1, pad2       input.Pad
	interactDistance float64
	outline          bool
	frame            uint32
	lastEdit         Edit
}

// New builds a game from opts. The world stays empty until Start.
func New(opts Options) (*Game, error) {
	grid, err := voxel.NewGrid(opts.GridSize)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	fb, err := render.NewFramebuffer(opts.ScreenWidth, opts.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("create framebuffer: %w", err)
	}

	rc := render.NewRaycaster()
	rc.RayRange = opts.RayRange
	rc.ShadowRange = opts.ShadowRange
	rc.Crosshair = opts.Crosshair
	if opts.Texture != nil {
		rc.Texture = opts.Texture
	}
	rc.ViewWidth = rc.ViewHeight * float64(opts.ScreenWidth) / float64(opts.ScreenHeight)

	gen := opts.Generator
	if gen == nil {
		gen = voxel.Terrace{}
	}

	g := &Game{
		grid:             grid,
		camera:           render.NewCamera(opts.Start),
		raycaster:        rc,
		fb:               fb,
		generator:        gen,
		interactDistance: opts.InteractDistance,
		outline:          opts.Outline,
	}
	if opts.Demo {
		g.demo = NewDemo(opts.Start)
	}
	return g, nil
}

// Start generates the world. It runs once before the first Update.
func (g *Game) Start() {
	g.grid.Generate(g.generator)
}

// Update advances one frame: the camera consumes the pads, block edits
// happen on fresh action presses, then the frame is rendered. In demo mode
// input is ignored.
func (g *Game) Update(in input.State) {
	if g.demo != nil {
		g.demo.Step(g.camera, g.Time())
		g.lastEdit = Edit{}
	} else {
		g.pad1.Update(in.Pad1)
		g.pad2.Update(in.Pad2)

		g.camera.Update(in.Pad1, in.Pad2)
		g.lastEdit = g.interact()
	}
	g.Render()

	g.frame++
}

// Render draws the current state without consuming input.
func (g *Game) Render() {
	g.raycaster.Render(g.fb, g.camera, g.grid)
	if !g.outline {
		return
	}
	if hit, ok := g.Target(); ok {
		g.raycaster.DrawOutline(g.fb, g.camera, hit.Block)
	}
}

// Target returns the block under the crosshair if it is within reach.
func (g *Game) Target() (raycast.Hit, bool) {
	return raycast.Cast(g.grid, g.camera.Position, g.camera.Forward(), g.interactDistance)
}

// Framebuffer returns the output surface.
func (g *Game) Framebuffer() *render.Framebuffer {
	return g.fb
}

// Camera returns the player camera.
func (g *Game) Camera() *render.Camera {
	return g.camera
}

// Grid returns the world.
func (g *Game) Grid() *voxel.Grid {
	return g.grid
}

// Raycaster returns the frame renderer.
func (g *Game) Raycaster() *render.Raycaster {
	return g.raycaster
}

// Frame returns the number of completed updates.
func (g *Game) Frame() uint32 {
	return g.frame
}

// Time returns the simulated time in seconds.
func (g *Game) Time() float64 {
	return float64(g.frame) * FrameTime
}

// Demo reports whether the game runs the scripted flythrough.
func (g *Game) Demo() bool {
	return g.demo != nil
}

// LastEdit returns the block edit made during the most recent Update.
func (g *Game) LastEdit() Edit {
	return g.lastEdit
}
