package engine

import (
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// CalculateCapLayout builds the top cap: a sheathed panel with longitudinal
// cleats spaced across the width and transverse cleats spaced along the
// length. Style B caps overhang the side panels by the configured overlap.
func CalculateCapLayout(p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec) (model.CapLayout, error) {
	capWidth := CrateWidthOD(p, c)
	capLength := CrateLengthOD(p, c)
	if o.Style == model.StyleB {
		capWidth += 2 * c.CapOverlap
	}

	longitudinal, err := CalculateCleatLayout(capWidth, capLength, c.CapCleatWidth, c.CapCleatThickness, o.MaxCleatSpacing)
	if err != nil {
		return model.CapLayout{}, err
	}
	transverse, err := CalculateCleatLayout(capLength, capWidth, c.CapCleatWidth, c.CapCleatThickness, o.MaxCleatSpacing)
	if err != nil {
		return model.CapLayout{}, err
	}
	return model.CapLayout{
		Width:        capWidth,
		Length:       capLength,
		Thickness:    c.PanelThickness,
		Longitudinal: longitudinal,
		Transverse:   transverse,
	}, nil
}
