package engine

import (
	"math"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// CrateWidthOD returns the outside width of the crate: product width plus
// per-side clearance, sheathing, and cleat stack.
func CrateWidthOD(p model.ProductSpec, c model.ConstructionSpec) float64 {
	return p.Width + 2*(c.ClearanceSide+c.PanelThickness+c.CleatThickness)
}

// CrateLengthOD returns the outside length of the crate.
func CrateLengthOD(p model.ProductSpec, c model.ConstructionSpec) float64 {
	return p.Length + 2*(c.ClearanceSide+c.PanelThickness+c.CleatThickness)
}

// UsableSkidWidth returns the width available for skid placement: the
// outside width less the wall stacks on both sides.
func UsableSkidWidth(p model.ProductSpec, c model.ConstructionSpec) float64 {
	return CrateWidthOD(p, c) - 2*(c.PanelThickness+c.CleatThickness)
}

// CalculateSkidLayout selects the skid size for the product weight and
// spreads the smallest valid odd skid count symmetrically under the crate.
func CalculateSkidLayout(p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec, rules model.RuleTable) (model.SkidLayout, error) {
	if p.Weight < 0 {
		return model.SkidLayout{}, failf(UnsupportedLoad, "weight >= 0", p.Weight, "product weight is negative")
	}
	if p.Width <= model.FloatTol {
		return model.SkidLayout{}, failf(UnsupportedLoad, "width > 0", p.Width, "product width is not positive")
	}

	rule, ok := rules.SkidRuleFor(p.Weight, o.AllowedSkids)
	if !ok {
		return model.SkidLayout{}, failf(UnsupportedLoad, "weight rule table", p.Weight,
			"no skid rule covers %.0f lbs with the allowed nominals %v", p.Weight, o.AllowedSkids)
	}
	size, ok := rules.SkidSize(rule.Nominal)
	if !ok {
		return model.SkidLayout{}, failf(UnsupportedLoad, "skid size table", p.Weight,
			"rule selects nominal %q with no known cross-section", rule.Nominal)
	}

	usable := UsableSkidWidth(p, c)
	if usable < float64(model.MinSkidCount)*size.Width-model.FloatTol {
		return model.SkidLayout{}, failf(UnsupportedLoad, "minimum skid count", usable,
			"usable width %.2f cannot carry %d skids of width %.2f", usable, model.MinSkidCount, size.Width)
	}

	// Centerline span between the two outermost skids.
	span := usable - size.Width
	count := int(math.Ceil(span/rule.MaxSpacing-model.FloatTol)) + 1
	if count < model.MinSkidCount {
		count = model.MinSkidCount
	}
	if count%2 == 0 {
		count++
	}

	pitch := span / float64(count-1)
	first := -span / 2
	positions := make([]float64, count)
	for i := range positions {
		positions[i] = first + float64(i)*pitch
	}

	return model.SkidLayout{
		Nominal:      rule.Nominal,
		Width:        size.Width,
		Height:       size.Height,
		Length:       CrateLengthOD(p, c) - c.SkidEndTrim,
		Count:        count,
		Pitch:        pitch,
		FirstOffsetX: first,
		Positions:    positions,
		MaxSpacing:   rule.MaxSpacing,
	}, nil
}
