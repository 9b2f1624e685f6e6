package engine

import (
	"fmt"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// CalculateFloorboardLayout tiles the usable floor span with standard boards
// placed alternately from the front and back edges inward, plus at most one
// custom fill board. Every CAD slot is emitted; unused slots are suppressed
// so instance numbering stays stable.
func CalculateFloorboardLayout(skids model.SkidLayout, p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec, rules model.RuleTable) (model.FloorboardLayout, []model.Warning, error) {
	layout := model.FloorboardLayout{
		StartOffsetY: c.CleatThickness + c.PanelThickness,
		TargetSpan:   p.Length + 2*c.ClearanceSide,
		BoardLength:  skids.Span(),
	}

	// Zero usable span is a valid degenerate case, not an error.
	if layout.TargetSpan <= model.FloatTol {
		layout.TargetSpan = 0
		return layout, nil, nil
	}

	stdWidth, ok := rules.FloorboardWidth(o.FloorboardNominal)
	if !ok {
		return model.FloorboardLayout{}, nil, fmt.Errorf("unknown floorboard nominal %q", o.FloorboardNominal)
	}
	layout.StandardWidth = stdWidth

	// Alternate front, back, front, ... while a full standard board fits.
	var frontWidths, backWidths []float64
	remaining := layout.TargetSpan
	for i := 0; remaining >= stdWidth-model.FloatTol; i++ {
		if i%2 == 0 {
			frontWidths = append(frontWidths, stdWidth)
		} else {
			backWidths = append(backWidths, stdWidth)
		}
		remaining -= stdWidth
	}
	if len(frontWidths) > model.MaxFloorboardSlotsPerSide || len(backWidths) > model.MaxFloorboardSlotsPerSide {
		placed := len(frontWidths) + len(backWidths)
		return model.FloorboardLayout{}, nil, failf(InfeasibleFloorboardFit, "slot capacity", float64(placed),
			"span %.2f needs %d boards of %.2f, exceeding %d per side", layout.TargetSpan, placed, stdWidth, model.MaxFloorboardSlotsPerSide)
	}
	if remaining < 0 {
		remaining = 0
	}

	var warnings []model.Warning
	switch {
	case remaining <= o.MaxFloorGap+model.FloatTol:
		layout.Gap = remaining
		if remaining > model.FloatTol {
			warnings = append(warnings, model.Warning{
				Code:    "floor-gap",
				Message: fmt.Sprintf("center gap of %.4f in left between floorboards (tolerance %.2f)", remaining, o.MaxFloorGap),
			})
		}
	case o.AllowCustomFill:
		// The custom board absorbs the full remainder; no gap is left.
		layout.CustomWidth = remaining
	default:
		return model.FloorboardLayout{}, nil, failf(InfeasibleFloorboardFit, "center gap tolerance", remaining,
			"remainder %.4f exceeds the %.2f gap limit and custom fill is disabled", remaining, o.MaxFloorGap)
	}

	layout.Slots = buildSlots(layout, frontWidths, backWidths)
	return layout, warnings, nil
}

// buildSlots materializes the fixed slot vector: front standard slots, the
// single custom slot, then back standard slots, all in ascending Y order.
func buildSlots(layout model.FloorboardLayout, frontWidths, backWidths []float64) []model.FloorboardSlot {
	slots := make([]model.FloorboardSlot, 0, 2*model.MaxFloorboardSlotsPerSide+1)

	y := layout.StartOffsetY
	for i := 0; i < model.MaxFloorboardSlotsPerSide; i++ {
		slot := model.FloorboardSlot{Tag: model.SlotStandardFront, Index: i + 1, Suppressed: true}
		if i < len(frontWidths) {
			slot.Width = frontWidths[i]
			slot.YPos = y
			slot.Suppressed = false
			y += frontWidths[i]
		}
		slots = append(slots, slot)
	}

	custom := model.FloorboardSlot{Tag: model.SlotCustomFill, Index: 1, Suppressed: true}
	if layout.CustomWidth > model.FloatTol {
		custom.Width = layout.CustomWidth
		custom.YPos = y
		custom.Suppressed = false
		y += layout.CustomWidth
	}
	slots = append(slots, custom)

	// Back boards were placed from the far edge inward; walk them back out
	// so the slot list stays in ascending Y order.
	y += layout.Gap
	for i := 0; i < model.MaxFloorboardSlotsPerSide; i++ {
		slot := model.FloorboardSlot{Tag: model.SlotStandardBack, Index: i + 1, Suppressed: true}
		if i < len(backWidths) {
			w := backWidths[len(backWidths)-1-i]
			slot.Width = w
			slot.YPos = y
			slot.Suppressed = false
			y += w
		}
		slots = append(slots, slot)
	}

	return slots
}
