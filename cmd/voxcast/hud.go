package main

import (
	"fmt"
	"time"

	"github.com/taigrr/voxcast/pkg/game"
)

// HUD renders an overlay with frame rate, position and the last edit.
type HUD struct {
	Show bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{Show: true, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, g *game.Game) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.Show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	pos := g.Camera().Position
	where := fmt.Sprintf("(%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z)
	col := max((width-len(where)-2)/2, 1)
	fmt.Print(moveTo(1, col) + fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, where, reset))

	blocks := fmt.Sprintf("%d blocks", g.Grid().Count())
	fmt.Print(moveTo(1, max(width-len(blocks)-2, 1)) + fmt.Sprintf("%s%s%s %s %s", bgBlack, fgCyan, bold, blocks, reset))

	status := fmt.Sprintf("frame %d", g.Frame())
	if g.Demo() {
		status += "  demo"
	}
	if e := g.LastEdit(); e.Action != game.ActionNone {
		status += fmt.Sprintf("  %s %d,%d,%d", e.Action, e.Block.X, e.Block.Y, e.Block.Z)
	}
	fmt.Print(moveTo(height, 1) + fmt.Sprintf("%s%s %s %s", bgBlack, fgWhite, status, reset))

	hint := "x remove  z place  ? hud"
	fmt.Print(moveTo(height, max(width-len(hint)-2, 1)) + fmt.Sprintf("%s%s%s %s %s", bgBlack, dim, fgYellow, hint, reset))
}
