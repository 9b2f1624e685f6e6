package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

func TestCalculateCapLayoutStyleB(t *testing.T) {
	p := referenceProduct()
	c := referenceConstruction()
	c.CapOverlap = 0.75
	o := referenceOptions()

	cap, err := CalculateCapLayout(p, c, o)
	require.NoError(t, err)

	assert.InDelta(t, 43.5, cap.Width, model.FloatTol, "42 plus 0.75 overlap per side")
	assert.InDelta(t, 50.0, cap.Length, model.FloatTol)
	assert.InDelta(t, c.PanelThickness, cap.Thickness, model.FloatTol)

	assert.GreaterOrEqual(t, cap.Longitudinal.Count, 2)
	assert.GreaterOrEqual(t, cap.Transverse.Count, 2)
	assert.LessOrEqual(t, cap.Longitudinal.Pitch, o.MaxCleatSpacing+model.FloatTol)
	assert.LessOrEqual(t, cap.Transverse.Pitch, o.MaxCleatSpacing+model.FloatTol)

	// Longitudinal cleats run the cap length; transverse run the width.
	assert.InDelta(t, cap.Length, cap.Longitudinal.CleatLength, model.FloatTol)
	assert.InDelta(t, cap.Width, cap.Transverse.CleatLength, model.FloatTol)
}

func TestCalculateCapLayoutStyleAHasNoOverlap(t *testing.T) {
	p := referenceProduct()
	c := referenceConstruction()
	c.CapOverlap = 0.75
	o := referenceOptions()
	o.Style = model.StyleA

	cap, err := CalculateCapLayout(p, c, o)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, cap.Width, model.FloatTol)
}

func TestCalculateCapLayoutBadSpacing(t *testing.T) {
	o := referenceOptions()
	o.MaxCleatSpacing = -1

	_, err := CalculateCapLayout(referenceProduct(), referenceConstruction(), o)
	require.Error(t, err)
	assert.Equal(t, InvalidCleatConstraint, KindOf(err))
}
