package model

// LumberSize is an actual (dressed) cross-section, width x height in inches.
type LumberSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SkidRule maps a maximum product weight to the skid nominal required for
// that class and the maximum allowed center-to-center skid spacing.
type SkidRule struct {
	MaxWeight  float64 `json:"max_weight"` // lbs, inclusive upper bound
	Nominal    string  `json:"nominal"`
	MaxSpacing float64 `json:"max_spacing"` // inches
}

// DecalSize is a stencil bounding box in inches.
type DecalSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Horizontal and vertical decal anchor strategies.
type DecalAnchor string

const (
	AnchorCenter       DecalAnchor = "center"            // centered on the panel axis
	AnchorUpperRight   DecalAnchor = "upper-right"       // inset from the upper-right corner
	AnchorUpperHalfMid DecalAnchor = "upper-half-center" // centered in the panel's upper half
	AnchorCrateMidBand DecalAnchor = "crate-mid-band"    // offset from crate mid-height by band
)

// CoGBand offsets the center-of-gravity stencil from the crate's vertical
// midpoint depending on overall crate height.
type CoGBand struct {
	MaxCrateHeight float64 `json:"max_crate_height"` // inches; 0 means unbounded
	Offset         float64 `json:"offset"`           // above crate mid-height
}

// DecalRule describes one stencil and where it belongs.
type DecalRule struct {
	ID               string      `json:"id"`
	RequiresFragile  bool        `json:"requires_fragile"`
	RequiresHandling bool        `json:"requires_handling"`
	SmallThreshold   float64     `json:"small_threshold"` // panel height at or below which Small is used
	Small            DecalSize   `json:"small"`
	Large            DecalSize   `json:"large"`
	Angle            float64     `json:"angle"` // degrees
	Horizontal       DecalAnchor `json:"horizontal"`
	Vertical         DecalAnchor `json:"vertical"`
	EdgeMargin       float64     `json:"edge_margin"` // inset used by corner anchors
	CoGBands         []CoGBand   `json:"cog_bands,omitempty"`
}

// SizeFor picks the stencil size for a panel of the given height.
func (r DecalRule) SizeFor(panelHeight float64) DecalSize {
	if r.SmallThreshold > 0 && panelHeight <= r.SmallThreshold+FloatTol {
		return r.Small
	}
	return r.Large
}

// RuleTable bundles every swappable lookup the layout engine consults.
// Calculators receive it by value and never mutate it.
type RuleTable struct {
	// SkidRules is ordered by ascending MaxWeight; the first rule whose
	// MaxWeight covers the product weight wins.
	SkidRules []SkidRule `json:"skid_rules"`

	// SkidSizes maps a skid nominal to its actual cross-section.
	SkidSizes map[string]LumberSize `json:"skid_sizes"`

	// Floorboards maps a standard board nominal to its actual width.
	Floorboards map[string]float64 `json:"floorboards"`

	// MinSkidHeight is the smallest skid height that still admits forklift entry.
	MinSkidHeight float64 `json:"min_skid_height"`

	// Decals are evaluated in order; unconditional rules always apply.
	Decals []DecalRule `json:"decals"`
}

// DefaultRules returns the standard rule set.
func DefaultRules() RuleTable {
	return RuleTable{
		SkidRules: []SkidRule{
			{MaxWeight: 500, Nominal: "3x4", MaxSpacing: 30.0},
			{MaxWeight: 4500, Nominal: "4x4", MaxSpacing: 30.0},
			{MaxWeight: 6000, Nominal: "4x6", MaxSpacing: 41.0},
			{MaxWeight: 12000, Nominal: "4x6", MaxSpacing: 28.0},
			{MaxWeight: 20000, Nominal: "4x6", MaxSpacing: 24.0},
		},
		SkidSizes: map[string]LumberSize{
			"3x4": {Width: 2.5, Height: 3.5},
			"4x4": {Width: 3.5, Height: 3.5},
			"4x6": {Width: 5.5, Height: 3.5},
		},
		Floorboards: map[string]float64{
			"2x12": 11.25,
			"2x10": 9.25,
			"2x8":  7.25,
			"2x6":  5.5,
		},
		MinSkidHeight: 3.5,
		Decals: []DecalRule{
			{
				ID:              "fragile",
				RequiresFragile: true,
				SmallThreshold:  73.0,
				Small:           DecalSize{Width: 8.00, Height: 2.31},
				Large:           DecalSize{Width: 12.00, Height: 3.50},
				Angle:           10,
				Horizontal:      AnchorCenter,
				Vertical:        AnchorUpperHalfMid,
			},
			{
				ID:               "handling",
				RequiresHandling: true,
				SmallThreshold:   37.0,
				Small:            DecalSize{Width: 3.00, Height: 8.25},
				Large:            DecalSize{Width: 4.00, Height: 11.00},
				Horizontal:       AnchorUpperRight,
				Vertical:         AnchorUpperRight,
			},
			{
				ID:         "cog",
				Small:      DecalSize{Width: 3.00, Height: 3.00},
				Large:      DecalSize{Width: 3.00, Height: 3.00},
				Horizontal: AnchorCenter,
				Vertical:   AnchorCrateMidBand,
				CoGBands: []CoGBand{
					{MaxCrateHeight: 37.0, Offset: 0.0},
					{MaxCrateHeight: 73.0, Offset: 4.0},
					{MaxCrateHeight: 120.0, Offset: 8.0},
					{MaxCrateHeight: 0, Offset: 12.0},
				},
			},
		},
	}
}

// SkidRuleFor returns the first rule covering the given weight whose nominal
// appears in the allowed set. An empty allowed set admits every nominal.
// ok is false when no rule covers the weight.
func (t RuleTable) SkidRuleFor(weight float64, allowed []string) (SkidRule, bool) {
	for _, r := range t.SkidRules {
		if weight > r.MaxWeight+FloatTol {
			continue
		}
		if len(allowed) > 0 && !containsString(allowed, r.Nominal) {
			continue
		}
		return r, true
	}
	return SkidRule{}, false
}

// SkidSize resolves a skid nominal to its actual cross-section.
func (t RuleTable) SkidSize(nominal string) (LumberSize, bool) {
	s, ok := t.SkidSizes[nominal]
	return s, ok
}

// FloorboardWidth resolves a standard floorboard nominal to its actual width.
func (t RuleTable) FloorboardWidth(nominal string) (float64, bool) {
	w, ok := t.Floorboards[nominal]
	return w, ok
}

// CoGOffset returns the vertical offset from crate mid-height for the
// center-of-gravity stencil given the overall crate height.
func (r DecalRule) CoGOffset(crateHeight float64) float64 {
	for _, b := range r.CoGBands {
		if b.MaxCrateHeight == 0 || crateHeight <= b.MaxCrateHeight+FloatTol {
			return b.Offset
		}
	}
	return 0
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
