package engine

import (
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// klimpsPerEdge is the number of removable-panel fasteners distributed
// along each vertical edge of a drop-end panel.
const klimpsPerEdge = 3

// klimpCornerMargin keeps fasteners away from the panel corners, as a
// fraction of panel height.
const klimpCornerMargin = 0.1

// WallHeights returns the side and end panel heights. Both panels sheath
// from the bottom of the skids to the underside of the cap; the drop-end
// style shortens the end panel by the configured drop.
func WallHeights(p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec, skidHeight float64) (side, end float64) {
	capStack := c.PanelThickness + c.CapCleatThickness
	side = skidHeight + c.FloorThickness + p.Height + c.ClearanceAbove + capStack
	end = side
	if o.Style == model.StyleB {
		end -= c.EndPanelDrop
	}
	return side, end
}

// CalculateWallLayout builds the two wall panel designs: side panels span
// the crate length, end panels span the crate width. Style B end panels
// carry klimp fasteners on their vertical edges.
func CalculateWallLayout(p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec, skids model.SkidLayout) (model.WallLayout, error) {
	crateW := CrateWidthOD(p, c)
	crateL := CrateLengthOD(p, c)
	sideH, endH := WallHeights(p, c, o, skids.Height)

	sideCleats, err := CalculateCleatLayout(crateL, sideH, c.WallCleatWidth, c.CleatThickness, o.MaxCleatSpacing)
	if err != nil {
		return model.WallLayout{}, err
	}
	endCleats, err := CalculateCleatLayout(crateW, endH, c.WallCleatWidth, c.CleatThickness, o.MaxCleatSpacing)
	if err != nil {
		return model.WallLayout{}, err
	}

	side := model.PanelLayout{
		Kind:      model.PanelSide,
		Width:     crateL,
		Height:    sideH,
		Thickness: c.PanelThickness,
		Cleats:    sideCleats,
	}
	end := model.PanelLayout{
		Kind:      model.PanelEnd,
		Width:     crateW,
		Height:    endH,
		Thickness: c.PanelThickness,
		Cleats:    endCleats,
	}
	if o.Style == model.StyleB {
		end.Klimps = klimpPositions(end.Width, end.Height)
	}

	return model.WallLayout{Side: side, End: end}, nil
}

// klimpPositions spreads fasteners evenly along both vertical panel edges,
// keeping clear of the corners. Panels too short for a meaningful spread
// get none.
func klimpPositions(panelWidth, panelHeight float64) []model.KlimpPosition {
	margin := panelHeight * klimpCornerMargin
	usable := panelHeight - 2*margin
	if usable <= panelHeight*0.2 {
		return nil
	}

	spacing := usable / float64(klimpsPerEdge+1)
	out := make([]model.KlimpPosition, 0, 2*klimpsPerEdge)
	for i := 1; i <= klimpsPerEdge; i++ {
		y := margin + float64(i)*spacing
		out = append(out,
			model.KlimpPosition{Edge: "left", X: 0, Y: y},
			model.KlimpPosition{Edge: "right", X: panelWidth, Y: y},
		)
	}
	return out
}
