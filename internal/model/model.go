// Package model defines the input specifications, computed layouts, and the
// assembled crate component model shared by the layout engine and exporters.
package model

import "github.com/google/uuid"

// FloatTol is the tolerance used for all dimensional comparisons, in inches.
const FloatTol = 1e-6

// MinSkidCount is the smallest valid skid count. Inputs that would yield
// fewer skids are rejected rather than silently forced to an asymmetric
// even count.
const MinSkidCount = 3

// MaxFloorboardSlotsPerSide is the number of pre-allocated floorboard
// instances per side in the downstream CAD template. Slots beyond the
// boards actually placed are emitted suppressed so the slot-index to
// CAD-instance mapping stays stable.
const MaxFloorboardSlotsPerSide = 10

// Style identifies the crate construction standard.
type Style string

const (
	StyleA Style = "A" // fully enclosed, fixed cap
	StyleB Style = "B" // two-way-entry base, drop-end cleated cap, removable panel
)

// ProductSpec describes the product being crated. Immutable input.
type ProductSpec struct {
	Weight          float64 `json:"weight"` // lbs
	Width           float64 `json:"width"`  // inches, across skids
	Length          float64 `json:"length"` // inches, along skids
	Height          float64 `json:"height"` // inches
	Fragile         bool    `json:"fragile"`
	SpecialHandling bool    `json:"special_handling"`
}

// ConstructionSpec holds clearances and material thicknesses. Immutable input.
type ConstructionSpec struct {
	ClearanceSide     float64 `json:"clearance_side"`      // product to inner wall face, per side
	ClearanceAbove    float64 `json:"clearance_above"`     // above product
	PanelThickness    float64 `json:"panel_thickness"`     // sheathing
	CleatThickness    float64 `json:"cleat_thickness"`     // wall framing cleats
	WallCleatWidth    float64 `json:"wall_cleat_width"`    // actual
	CapCleatThickness float64 `json:"cap_cleat_thickness"` // actual
	CapCleatWidth     float64 `json:"cap_cleat_width"`     // actual
	FloorThickness    float64 `json:"floor_thickness"`     // floorboard actual thickness
	SkidEndTrim       float64 `json:"skid_end_trim"`       // trimmed off overall skid length
	CapOverlap        float64 `json:"cap_overlap"`         // Style B cap overlap past each side panel
	EndPanelDrop      float64 `json:"end_panel_drop"`      // Style B drop-end height reduction
}

// OptionsSpec selects the construction style and layout rules. Immutable input.
type OptionsSpec struct {
	Style             Style    `json:"style"`
	AllowedSkids      []string `json:"allowed_skids"`      // skid nominal sizes permitted for this shipment
	FloorboardNominal string   `json:"floorboard_nominal"` // standard board, e.g. "2x8"
	AllowCustomFill   bool     `json:"allow_custom_fill"`
	MaxCleatSpacing   float64  `json:"max_cleat_spacing"` // center-to-center, wall and cap
	MaxFloorGap       float64  `json:"max_floor_gap"`     // tolerated center gap between floorboards
}

// DefaultConstruction returns the construction values used when a project
// does not override them.
func DefaultConstruction() ConstructionSpec {
	return ConstructionSpec{
		ClearanceSide:     2.0,
		ClearanceAbove:    1.5,
		PanelThickness:    0.25,
		CleatThickness:    0.75,
		WallCleatWidth:    3.5,
		CapCleatThickness: 0.75,
		CapCleatWidth:     3.5,
		FloorThickness:    1.5,
		SkidEndTrim:       0.0,
		CapOverlap:        0.75,
		EndPanelDrop:      0.0,
	}
}

// DefaultOptions returns the style and rule options used when a project
// does not override them.
func DefaultOptions() OptionsSpec {
	return OptionsSpec{
		Style:             StyleB,
		AllowedSkids:      []string{"3x4", "4x4", "4x6"},
		FloorboardNominal: "2x8",
		AllowCustomFill:   true,
		MaxCleatSpacing:   24.0,
		MaxFloorGap:       0.25,
	}
}

// SkidLayout is the computed longitudinal support layout.
type SkidLayout struct {
	Nominal      string    `json:"nominal"`        // e.g. "4x4"
	Width        float64   `json:"width"`          // actual cross-section width
	Height       float64   `json:"height"`         // actual cross-section height
	Length       float64   `json:"length"`         // along crate length
	Count        int       `json:"count"`          // odd, >= MinSkidCount
	Pitch        float64   `json:"pitch"`          // center-to-center
	FirstOffsetX float64   `json:"first_offset_x"` // signed offset of first centerline from crate centerline
	Positions    []float64 `json:"positions"`      // all centerlines, ascending
	MaxSpacing   float64   `json:"max_spacing"`    // rule applied for this weight class
}

// Span returns the outer-edge-to-outer-edge width covered by the skids.
func (s SkidLayout) Span() float64 {
	if s.Count <= 0 {
		return 0
	}
	if s.Count == 1 {
		return s.Width
	}
	return float64(s.Count-1)*s.Pitch + s.Width
}

// SlotTag classifies a floorboard slot.
type SlotTag string

const (
	SlotStandardFront SlotTag = "standard-front"
	SlotStandardBack  SlotTag = "standard-back"
	SlotCustomFill    SlotTag = "custom-fill"
)

// FloorboardSlot is one pre-allocated board position in the floor layout.
// Suppressed slots exist only to keep CAD instance numbering stable.
type FloorboardSlot struct {
	Tag        SlotTag `json:"tag"`
	Index      int     `json:"index"` // 1-based within its tag group
	Width      float64 `json:"width"`
	YPos       float64 `json:"y_pos"` // absolute leading-edge Y from the crate front
	Suppressed bool    `json:"suppressed"`
}

// FloorboardLayout is the computed floor tiling.
type FloorboardLayout struct {
	StartOffsetY  float64          `json:"start_offset_y"` // absolute Y of the first front board's leading edge
	TargetSpan    float64          `json:"target_span"`    // usable span the boards must cover
	BoardLength   float64          `json:"board_length"`   // across skids
	StandardWidth float64          `json:"standard_width"` // actual width of the chosen standard board
	Slots         []FloorboardSlot `json:"slots"`
	CustomWidth   float64          `json:"custom_width"` // 0 when no custom board used
	Gap           float64          `json:"gap"`          // remaining center gap
}

// SlotsByTag returns the slots carrying the given tag, in layout order.
func (f FloorboardLayout) SlotsByTag(tag SlotTag) []FloorboardSlot {
	var out []FloorboardSlot
	for _, s := range f.Slots {
		if s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}

// UsedWidth returns the summed width of all non-suppressed slots.
func (f FloorboardLayout) UsedWidth() float64 {
	var total float64
	for _, s := range f.Slots {
		if !s.Suppressed {
			total += s.Width
		}
	}
	return total
}

// CleatLayout describes evenly pitched cleats along one panel axis. The
// same shape serves wall panels and both cap cleat directions.
type CleatLayout struct {
	Span           float64   `json:"span"`            // panel dimension along the cleat-bearing axis
	CleatLength    float64   `json:"cleat_length"`    // each cleat, perpendicular to the bearing axis
	CleatWidth     float64   `json:"cleat_width"`     // actual
	CleatThickness float64   `json:"cleat_thickness"` // actual
	Count          int       `json:"count"`           // includes both edge cleats
	Pitch          float64   `json:"pitch"`           // uniform center-to-center spacing
	Positions      []float64 `json:"positions"`       // centers relative to the panel centerline, ascending
	MaxSpacing     float64   `json:"max_spacing"`
}

// PanelKind identifies which crate face a panel belongs to.
type PanelKind string

const (
	PanelSide PanelKind = "side"
	PanelEnd  PanelKind = "end"
)

// KlimpPosition is one removable-panel fastener location on a panel edge.
type KlimpPosition struct {
	Edge string  `json:"edge"` // "left" or "right"
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// PanelLayout is a sheathed, cleated wall panel.
type PanelLayout struct {
	Kind      PanelKind       `json:"kind"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Thickness float64         `json:"thickness"`
	Cleats    CleatLayout     `json:"cleats"` // vertical cleats across the panel width
	Klimps    []KlimpPosition `json:"klimps,omitempty"`
}

// WallLayout holds the two distinct wall panel designs. The crate carries
// two instances of each.
type WallLayout struct {
	Side PanelLayout `json:"side"`
	End  PanelLayout `json:"end"`
}

// CapLayout is the top cap assembly.
type CapLayout struct {
	Width        float64     `json:"width"`
	Length       float64     `json:"length"`
	Thickness    float64     `json:"thickness"`
	Longitudinal CleatLayout `json:"longitudinal"` // spaced across the width, running the length
	Transverse   CleatLayout `json:"transverse"`   // spaced along the length, running the width
}

// DecalPlacement positions one stencil on a panel face.
type DecalPlacement struct {
	DecalID string    `json:"decal_id"`
	Panel   PanelKind `json:"panel"`
	X       float64   `json:"x"` // lower-left corner on the panel face
	Y       float64   `json:"y"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Angle   float64   `json:"angle"` // degrees
}

// Warning is a non-fatal condition recorded during a layout run.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CrateComponentModel is the assembled, validated output of one layout run.
// It is constructed once by the assembler and treated as immutable afterwards.
type CrateComponentModel struct {
	RunID        string           `json:"run_id"`
	Product      ProductSpec      `json:"product"`
	Construction ConstructionSpec `json:"construction"`
	Options      OptionsSpec      `json:"options"`

	CrateWidthOD  float64 `json:"crate_width_od"`
	CrateLengthOD float64 `json:"crate_length_od"`
	CrateHeightOD float64 `json:"crate_height_od"`
	UsableWidth   float64 `json:"usable_width"` // between inner cleat faces, for skid placement

	Skids  SkidLayout       `json:"skids"`
	Floor  FloorboardLayout `json:"floor"`
	Walls  WallLayout       `json:"walls"`
	Cap    CapLayout        `json:"cap"`
	Decals []DecalPlacement `json:"decals"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// NewRunID returns a short unique identifier for a layout run.
func NewRunID() string {
	return uuid.New().String()[:8]
}
