package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells. Each cell shows two
// vertically stacked pixels through the upper half block: fg carries the
// top pixel, bg the bottom one, so a terminal row covers two framebuffer
// rows.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			top := fb.At(col, topY)
			bot := fb.At(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: color.RGBA{top.R, top.G, top.B, 255},
					Bg: color.RGBA{bot.R, bot.G, bot.B, 255},
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}
