package engine

import (
	"fmt"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// CalculateDecalPlacements resolves the decal rule table against the wall
// panels. Rules gated on product flags are skipped when the flag is off;
// placements that would run off the panel are dropped with a warning.
// Decal placement never fails the layout.
func CalculateDecalPlacements(p model.ProductSpec, walls model.WallLayout, crateHeight float64, rules model.RuleTable) ([]model.DecalPlacement, []model.Warning) {
	var placements []model.DecalPlacement
	var warnings []model.Warning

	panels := []model.PanelLayout{walls.Side, walls.End}
	for _, rule := range rules.Decals {
		if rule.RequiresFragile && !p.Fragile {
			continue
		}
		if rule.RequiresHandling && !p.SpecialHandling {
			continue
		}
		for _, panel := range panels {
			d, ok := placeDecal(rule, panel, crateHeight)
			if !ok {
				warnings = append(warnings, model.Warning{
					Code:    "decal-dropped",
					Message: fmt.Sprintf("decal %q does not fit on the %s panel (%.1f x %.1f)", rule.ID, panel.Kind, panel.Width, panel.Height),
				})
				continue
			}
			placements = append(placements, d)
		}
	}
	return placements, warnings
}

func placeDecal(rule model.DecalRule, panel model.PanelLayout, crateHeight float64) (model.DecalPlacement, bool) {
	size := rule.SizeFor(panel.Height)

	var x float64
	switch rule.Horizontal {
	case model.AnchorUpperRight:
		x = panel.Width - size.Width - rule.EdgeMargin
	default:
		x = panel.Width/2 - size.Width/2
	}

	var y float64
	switch rule.Vertical {
	case model.AnchorUpperHalfMid:
		y = panel.Height*0.75 - size.Height/2
	case model.AnchorUpperRight:
		y = panel.Height - size.Height - rule.EdgeMargin
	case model.AnchorCrateMidBand:
		y = panel.Height/2 + rule.CoGOffset(crateHeight) - size.Height/2
	default:
		y = panel.Height/2 - size.Height/2
	}

	if x < -model.FloatTol || x+size.Width > panel.Width+model.FloatTol ||
		y < -model.FloatTol || y+size.Height > panel.Height+model.FloatTol {
		return model.DecalPlacement{}, false
	}

	return model.DecalPlacement{
		DecalID: rule.ID,
		Panel:   panel.Kind,
		X:       x,
		Y:       y,
		Width:   size.Width,
		Height:  size.Height,
		Angle:   rule.Angle,
	}, true
}
