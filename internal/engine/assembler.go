package engine

import (
	"math"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// Assembler runs the layout calculators in dependency order and validates
// the cross-component invariants that no single calculator can see.
type Assembler struct {
	rules model.RuleTable
}

// New returns an Assembler using the given rule table.
func New(rules model.RuleTable) *Assembler {
	return &Assembler{rules: rules}
}

// Run computes a complete crate component model. The returned model is
// fully populated and must not be mutated by callers.
func (a *Assembler) Run(p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec) (*model.CrateComponentModel, error) {
	var warnings []model.Warning

	skids, err := CalculateSkidLayout(p, c, o, a.rules)
	if err != nil {
		return nil, err
	}

	floor, floorWarnings, err := CalculateFloorboardLayout(skids, p, c, o, a.rules)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, floorWarnings...)

	walls, err := CalculateWallLayout(p, c, o, skids)
	if err != nil {
		return nil, err
	}

	cap, err := CalculateCapLayout(p, c, o)
	if err != nil {
		return nil, err
	}

	crateW := CrateWidthOD(p, c)
	crateL := CrateLengthOD(p, c)
	crateH := skids.Height + c.FloorThickness + p.Height + c.ClearanceAbove + c.PanelThickness + c.CapCleatThickness

	decals, decalWarnings := CalculateDecalPlacements(p, walls, crateH, a.rules)
	warnings = append(warnings, decalWarnings...)

	m := &model.CrateComponentModel{
		RunID:         model.NewRunID(),
		Product:       p,
		Construction:  c,
		Options:       o,
		CrateWidthOD:  crateW,
		CrateLengthOD: crateL,
		CrateHeightOD: crateH,
		UsableWidth:   UsableSkidWidth(p, c),
		Skids:         skids,
		Floor:         floor,
		Walls:         walls,
		Cap:           cap,
		Decals:        decals,
		Warnings:      warnings,
	}

	if err := a.validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks the invariants that span calculator boundaries.
func (a *Assembler) validate(m *model.CrateComponentModel) error {
	// Skids must sit inside the usable width.
	if span := m.Skids.Span(); span > m.UsableWidth+model.FloatTol {
		return failf(InconsistentLayout, "skid span within usable width", span,
			"skid span %.4f exceeds usable width %.4f", span, m.UsableWidth)
	}

	// Floorboards plus the residual gap must reproduce the target span.
	if len(m.Floor.Slots) > 0 {
		covered := m.Floor.UsedWidth() + m.Floor.Gap
		if math.Abs(covered-m.Floor.TargetSpan) > model.FloatTol {
			return failf(InconsistentLayout, "floorboard coverage", covered,
				"boards plus gap %.6f do not equal target span %.6f", covered, m.Floor.TargetSpan)
		}
	}

	// Floorboards must rest fully on the skids.
	if m.Floor.BoardLength > m.Skids.Span()+model.FloatTol {
		return failf(InconsistentLayout, "floorboard bearing", m.Floor.BoardLength,
			"board length %.4f exceeds skid span %.4f", m.Floor.BoardLength, m.Skids.Span())
	}

	// Panels must match the outside envelope.
	if math.Abs(m.Walls.Side.Width-m.CrateLengthOD) > model.FloatTol {
		return failf(InconsistentLayout, "side panel width", m.Walls.Side.Width,
			"side panel width %.4f does not match crate length %.4f", m.Walls.Side.Width, m.CrateLengthOD)
	}
	if math.Abs(m.Walls.End.Width-m.CrateWidthOD) > model.FloatTol {
		return failf(InconsistentLayout, "end panel width", m.Walls.End.Width,
			"end panel width %.4f does not match crate width %.4f", m.Walls.End.Width, m.CrateWidthOD)
	}

	// The cap must cover the crate footprint.
	if m.Cap.Length < m.CrateLengthOD-model.FloatTol || m.Cap.Width < m.CrateWidthOD-model.FloatTol {
		return failf(InconsistentLayout, "cap coverage", m.Cap.Width,
			"cap %.4f x %.4f does not cover crate %.4f x %.4f", m.Cap.Width, m.Cap.Length, m.CrateWidthOD, m.CrateLengthOD)
	}

	// Cleat pitches must respect their spacing limits.
	for _, cl := range []model.CleatLayout{m.Walls.Side.Cleats, m.Walls.End.Cleats, m.Cap.Longitudinal, m.Cap.Transverse} {
		if cl.Count > 1 && cl.Pitch > cl.MaxSpacing+model.FloatTol {
			return failf(InconsistentLayout, "cleat pitch within limit", cl.Pitch,
				"pitch %.4f exceeds spacing limit %.4f", cl.Pitch, cl.MaxSpacing)
		}
	}

	return nil
}
