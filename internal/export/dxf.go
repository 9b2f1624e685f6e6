package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// ExportDXF writes a 2D plan drawing of the crate base: the outside
// envelope, skid strips, and floorboard edges, each on its own layer.
// Coordinates are inches with the origin at the crate's front-left corner.
func ExportDXF(path string, m *model.CrateComponentModel) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("OUTLINE", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add outline layer: %w", err)
	}
	drawRect(d, 0, 0, m.CrateWidthOD, m.CrateLengthOD)

	if _, err := d.AddLayer("SKIDS", color.Red, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add skid layer: %w", err)
	}
	for _, x := range m.Skids.Positions {
		left := m.CrateWidthOD/2 + x - m.Skids.Width/2
		drawRect(d, left, 0, m.Skids.Width, m.Skids.Length)
	}

	if _, err := d.AddLayer("FLOORBOARDS", color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add floorboard layer: %w", err)
	}
	boardLeft := (m.CrateWidthOD - m.Floor.BoardLength) / 2
	for _, s := range m.Floor.Slots {
		if s.Suppressed {
			continue
		}
		drawRect(d, boardLeft, s.YPos, m.Floor.BoardLength, s.Width)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf: %w", err)
	}
	return nil
}

// drawRect adds the four edges of an axis-aligned rectangle, lower-left at
// (x, y).
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
