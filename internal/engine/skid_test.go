package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

func referenceProduct() model.ProductSpec {
	return model.ProductSpec{Weight: 600, Width: 38, Length: 46, Height: 91.5}
}

func referenceConstruction() model.ConstructionSpec {
	return model.ConstructionSpec{
		ClearanceSide:     1.0,
		ClearanceAbove:    1.5,
		PanelThickness:    0.25,
		CleatThickness:    0.75,
		WallCleatWidth:    3.5,
		CapCleatThickness: 0.75,
		CapCleatWidth:     3.5,
		FloorThickness:    1.5,
	}
}

func referenceOptions() model.OptionsSpec {
	return model.OptionsSpec{
		Style:             model.StyleB,
		FloorboardNominal: "2x8",
		AllowCustomFill:   true,
		MaxCleatSpacing:   24.0,
		MaxFloorGap:       0.25,
	}
}

func TestCalculateSkidLayoutReferenceCrate(t *testing.T) {
	skids, err := CalculateSkidLayout(referenceProduct(), referenceConstruction(), referenceOptions(), model.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, "4x4", skids.Nominal)
	assert.Equal(t, 3, skids.Count)
	assert.InDelta(t, 18.25, skids.Pitch, model.FloatTol)
	assert.InDelta(t, -18.25, skids.FirstOffsetX, model.FloatTol)
	assert.InDelta(t, 3.5, skids.Width, model.FloatTol)
	require.Len(t, skids.Positions, 3)
	assert.InDelta(t, 0.0, skids.Positions[1], model.FloatTol)
	assert.InDelta(t, 18.25, skids.Positions[2], model.FloatTol)
}

func TestCalculateSkidLayoutCountProperties(t *testing.T) {
	rules := model.DefaultRules()
	c := referenceConstruction()
	o := referenceOptions()

	weights := []float64{100, 600, 3000, 5000, 11000, 19000}
	widths := []float64{30, 38, 60, 75, 96, 120}
	for _, w := range weights {
		for _, pw := range widths {
			p := model.ProductSpec{Weight: w, Width: pw, Length: 46, Height: 40}
			skids, err := CalculateSkidLayout(p, c, o, rules)
			require.NoError(t, err, "weight %.0f width %.0f", w, pw)

			assert.GreaterOrEqual(t, skids.Count, model.MinSkidCount)
			assert.Equal(t, 1, skids.Count%2, "count must be odd")
			assert.LessOrEqual(t, skids.Pitch, skids.MaxSpacing+model.FloatTol)
			assert.InDelta(t, -skids.Positions[skids.Count-1], skids.Positions[0], model.FloatTol, "positions must be symmetric")
			assert.LessOrEqual(t, skids.Span(), UsableSkidWidth(p, c)+model.FloatTol)
		}
	}
}

func TestCalculateSkidLayoutCountMinimal(t *testing.T) {
	rules := model.DefaultRules()
	c := referenceConstruction()
	o := referenceOptions()

	p := model.ProductSpec{Weight: 600, Width: 96, Length: 46, Height: 40}
	skids, err := CalculateSkidLayout(p, c, o, rules)
	require.NoError(t, err)

	// One fewer skid would stretch the pitch past the limit, unless the
	// count is already at the floor.
	if skids.Count > model.MinSkidCount {
		span := UsableSkidWidth(p, c) - skids.Width
		fewer := span / float64(skids.Count-3) // odd counts step by two
		assert.Greater(t, fewer, skids.MaxSpacing, "count is not minimal")
	}
}

func TestCalculateSkidLayoutUnsupportedLoad(t *testing.T) {
	rules := model.DefaultRules()
	c := referenceConstruction()
	o := referenceOptions()

	t.Run("weight above table", func(t *testing.T) {
		p := referenceProduct()
		p.Weight = 25000
		_, err := CalculateSkidLayout(p, c, o, rules)
		require.Error(t, err)
		assert.Equal(t, UnsupportedLoad, KindOf(err))
	})

	t.Run("crate too narrow for three skids", func(t *testing.T) {
		p := referenceProduct()
		p.Width = 6
		_, err := CalculateSkidLayout(p, c, o, rules)
		require.Error(t, err)
		assert.Equal(t, UnsupportedLoad, KindOf(err))
	})

	t.Run("allowed set excludes every rule", func(t *testing.T) {
		p := referenceProduct()
		opts := o
		opts.AllowedSkids = []string{"6x6"}
		_, err := CalculateSkidLayout(p, c, opts, rules)
		require.Error(t, err)
		assert.Equal(t, UnsupportedLoad, KindOf(err))
	})

	t.Run("negative weight", func(t *testing.T) {
		p := referenceProduct()
		p.Weight = -1
		_, err := CalculateSkidLayout(p, c, o, rules)
		require.Error(t, err)
		assert.Equal(t, UnsupportedLoad, KindOf(err))
	})
}

func TestCalculateSkidLayoutAllowedSetUpsizes(t *testing.T) {
	p := referenceProduct()
	o := referenceOptions()
	o.AllowedSkids = []string{"4x6"}

	skids, err := CalculateSkidLayout(p, referenceConstruction(), o, model.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "4x6", skids.Nominal)
	assert.InDelta(t, 5.5, skids.Width, model.FloatTol)
}

func TestCrateEnvelope(t *testing.T) {
	p := referenceProduct()
	c := referenceConstruction()

	assert.InDelta(t, 42.0, CrateWidthOD(p, c), model.FloatTol)
	assert.InDelta(t, 50.0, CrateLengthOD(p, c), model.FloatTol)
	assert.InDelta(t, 40.0, UsableSkidWidth(p, c), model.FloatTol)
}
