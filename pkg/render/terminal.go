package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows through an upper half
// block, foreground for the top pixel and background for the bottom one.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	rows := (fb.Height + 1) / 2

	for row := area.Min.Y; row < area.Max.Y && row-area.Min.Y < rows; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.RGBA(x, topY)),
					Bg: cellColor(fb.RGBA(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor maps transparent to no colour so the terminal default shows through.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
