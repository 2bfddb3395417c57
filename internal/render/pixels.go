package render

import (
	"image/color"

	"gridsweep/internal/core"
)

// CellPalette returns the RGBA palette indexed by core.Cell values.
func CellPalette() []color.RGBA {
	return []color.RGBA{
		core.Empty:    {R: 12, G: 12, B: 16, A: 255},
		core.Dirt:     {R: 150, G: 105, B: 50, A: 255},
		core.Obstacle: {R: 110, G: 115, B: 130, A: 255},
		core.Cleaned:  {R: 70, G: 160, B: 80, A: 255},
	}
}

// RobotColor is the overlay color painted on the robot's cell.
var RobotColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}

// FillCellRGBA converts cell states into RGBA pixels using the palette
// and paints the robot cell with RobotColor. Cell values beyond the
// palette clamp to its last entry; a negative robotIdx paints no robot.
func FillCellRGBA(buf []byte, cells []core.Cell, palette []color.RGBA, robotIdx int) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		if i == robotIdx {
			col = RobotColor
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
