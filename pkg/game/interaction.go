package game

import (
	"github.com/taigrr/voxcast/pkg/input"
	"github.com/taigrr/voxcast/pkg/math3d"
	"github.com/taigrr/voxcast/pkg/raycast"
	"github.com/taigrr/voxcast/pkg/voxel"
)

// Action is a block edit kind.
type Action uint8

const (
	ActionNone Action = iota
	ActionRemove
	ActionPlace
)

func (a Action) String() string {
	switch a {
	case ActionRemove:
		return "remove"
	case ActionPlace:
		return "place"
	}
	return "none"
}

// Edit records a block change.
type Edit struct {
	Action Action
	Block  math3d.Vec3i
}

// Button bindings on pad 1.
const (
	RemoveButton = input.ButtonX
	PlaceButton  = input.ButtonZ
)

// interact applies this frame's edits. Remove and place are independent;
// when both fire, remove goes first and the place ray sees its result.
func (g *Game) interact() Edit {
	var edit Edit
	if g.pad1.Pressed(RemoveButton) {
		edit = Remove(g.grid, g.camera.Position, g.camera.Forward(), g.interactDistance)
	}
	if g.pad1.Pressed(PlaceButton) {
		if e := Place(g.grid, g.camera.Position, g.camera.Forward(), g.interactDistance); e.Action != ActionNone {
			edit = e
		}
	}
	return edit
}

// Remove clears the first solid block within reach along dir.
func Remove(grid *voxel.Grid, origin, dir math3d.Vec3f, reach float64) Edit {
	hit, ok := raycast.Cast(grid, origin, dir, reach)
	if !ok {
		return Edit{}
	}
	grid.Set(hit.Block, voxel.Empty)
	return Edit{Action: ActionRemove, Block: hit.Block}
}

// Place fills the cell in front of the face the ray entered through on the
// first solid block within reach.
func Place(grid *voxel.Grid, origin, dir math3d.Vec3f, reach float64) Edit {
	hit, ok := raycast.Cast(grid, origin, dir, reach)
	if !ok {
		return Edit{}
	}
	target := Neighbor(hit, dir)
	grid.Set(target, voxel.Solid)
	return Edit{Action: ActionPlace, Block: target}
}

// Neighbor returns the cell the ray occupied just before entering the hit
// block: one step back along the hit axis.
func Neighbor(hit raycast.Hit, dir math3d.Vec3f) math3d.Vec3i {
	axis := hit.Face.Axis()
	back := math3d.Sign(dir).Axis(axis)
	return hit.Block.WithAxis(axis, hit.Block.Axis(axis)-back)
}
