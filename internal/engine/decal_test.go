package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

func referenceWalls(t *testing.T, p model.ProductSpec, c model.ConstructionSpec, o model.OptionsSpec) model.WallLayout {
	t.Helper()
	skids := mustSkids(t, p, c, o)
	walls, err := CalculateWallLayout(p, c, o, skids)
	require.NoError(t, err)
	return walls
}

func decalsByID(placements []model.DecalPlacement, id string) []model.DecalPlacement {
	var out []model.DecalPlacement
	for _, d := range placements {
		if d.DecalID == id {
			out = append(out, d)
		}
	}
	return out
}

func TestCalculateDecalPlacementsFlags(t *testing.T) {
	p := referenceProduct()
	c := referenceConstruction()
	o := referenceOptions()
	walls := referenceWalls(t, p, c, o)

	t.Run("plain product gets cog only", func(t *testing.T) {
		placements, warnings := CalculateDecalPlacements(p, walls, 99.0, model.DefaultRules())
		assert.Empty(t, warnings)
		assert.Empty(t, decalsByID(placements, "fragile"))
		assert.Empty(t, decalsByID(placements, "handling"))
		assert.Len(t, decalsByID(placements, "cog"), 2, "one per panel design")
	})

	t.Run("fragile product gets tilted stencils", func(t *testing.T) {
		fp := p
		fp.Fragile = true
		placements, _ := CalculateDecalPlacements(fp, walls, 99.0, model.DefaultRules())
		fragile := decalsByID(placements, "fragile")
		require.Len(t, fragile, 2)
		for _, d := range fragile {
			assert.InDelta(t, 10.0, d.Angle, model.FloatTol)
		}
	})

	t.Run("handling flag adds corner pictorial", func(t *testing.T) {
		hp := p
		hp.SpecialHandling = true
		placements, _ := CalculateDecalPlacements(hp, walls, 99.0, model.DefaultRules())
		handling := decalsByID(placements, "handling")
		require.Len(t, handling, 2)
		for _, d := range handling {
			panel := walls.Side
			if d.Panel == model.PanelEnd {
				panel = walls.End
			}
			assert.InDelta(t, panel.Width-d.Width, d.X, model.FloatTol)
			assert.InDelta(t, panel.Height-d.Height, d.Y, model.FloatTol)
		}
	})
}

func TestCalculateDecalPlacementsSizeByPanelHeight(t *testing.T) {
	p := referenceProduct()
	p.Fragile = true
	c := referenceConstruction()
	o := referenceOptions()

	// Tall reference panels (99 in) take the large stencil.
	walls := referenceWalls(t, p, c, o)
	placements, _ := CalculateDecalPlacements(p, walls, 99.0, model.DefaultRules())
	for _, d := range decalsByID(placements, "fragile") {
		assert.InDelta(t, 12.0, d.Width, model.FloatTol)
	}

	// Shorter product drops panel height under the 73 in threshold.
	p.Height = 40
	walls = referenceWalls(t, p, c, o)
	placements, _ = CalculateDecalPlacements(p, walls, 47.5, model.DefaultRules())
	for _, d := range decalsByID(placements, "fragile") {
		assert.InDelta(t, 8.0, d.Width, model.FloatTol)
	}
}

func TestCalculateDecalPlacementsCoGBand(t *testing.T) {
	p := referenceProduct()
	c := referenceConstruction()
	o := referenceOptions()
	walls := referenceWalls(t, p, c, o)
	rules := model.DefaultRules()

	// Crate taller than 73 and at most 120 offsets the CoG 8 in above mid.
	placements, _ := CalculateDecalPlacements(p, walls, 99.0, rules)
	cog := decalsByID(placements, "cog")
	require.NotEmpty(t, cog)
	for _, d := range cog {
		panel := walls.Side
		if d.Panel == model.PanelEnd {
			panel = walls.End
		}
		assert.InDelta(t, panel.Height/2+8.0-d.Height/2, d.Y, model.FloatTol)
	}
}

func TestCalculateDecalPlacementsDropsOversized(t *testing.T) {
	walls := model.WallLayout{
		Side: model.PanelLayout{Kind: model.PanelSide, Width: 6, Height: 6},
		End:  model.PanelLayout{Kind: model.PanelEnd, Width: 6, Height: 6},
	}
	p := model.ProductSpec{Fragile: true}

	placements, warnings := CalculateDecalPlacements(p, walls, 10, model.DefaultRules())
	assert.Empty(t, decalsByID(placements, "fragile"), "8 in stencil cannot fit a 6 in panel")
	var dropped int
	for _, w := range warnings {
		if w.Code == "decal-dropped" {
			dropped++
		}
	}
	assert.GreaterOrEqual(t, dropped, 2)
}
