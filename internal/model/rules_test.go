package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkidRuleFor(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name        string
		weight      float64
		allowed     []string
		wantNominal string
		wantSpacing float64
		wantOK      bool
	}{
		{"light load", 400, nil, "3x4", 30.0, true},
		{"boundary exactly 500", 500, nil, "3x4", 30.0, true},
		{"mid load", 600, nil, "4x4", 30.0, true},
		{"heavy load", 5000, nil, "4x6", 41.0, true},
		{"heavier class tightens spacing", 11000, nil, "4x6", 28.0, true},
		{"heaviest class", 19000, nil, "4x6", 24.0, true},
		{"over table limit", 20001, nil, "", 0, false},
		{"allowed set skips small nominals", 400, []string{"4x6"}, "4x6", 41.0, true},
		{"allowed set excludes everything", 400, []string{"6x6"}, "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rules.SkidRuleFor(tt.weight, tt.allowed)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantNominal, rule.Nominal)
				assert.Equal(t, tt.wantSpacing, rule.MaxSpacing)
			}
		})
	}
}

func TestSkidSize(t *testing.T) {
	rules := DefaultRules()

	size, ok := rules.SkidSize("4x4")
	require.True(t, ok)
	assert.Equal(t, 3.5, size.Width)
	assert.Equal(t, 3.5, size.Height)

	_, ok = rules.SkidSize("6x6")
	assert.False(t, ok)
}

func TestFloorboardWidth(t *testing.T) {
	rules := DefaultRules()

	w, ok := rules.FloorboardWidth("2x8")
	require.True(t, ok)
	assert.Equal(t, 7.25, w)

	_, ok = rules.FloorboardWidth("2x4")
	assert.False(t, ok)
}

func TestDecalSizeFor(t *testing.T) {
	rules := DefaultRules()
	var fragile DecalRule
	for _, d := range rules.Decals {
		if d.ID == "fragile" {
			fragile = d
		}
	}
	require.Equal(t, "fragile", fragile.ID)

	assert.Equal(t, 8.00, fragile.SizeFor(60).Width, "short panel gets small stencil")
	assert.Equal(t, 12.00, fragile.SizeFor(80).Width, "tall panel gets large stencil")
}

func TestCoGOffsetBands(t *testing.T) {
	rules := DefaultRules()
	var cog DecalRule
	for _, d := range rules.Decals {
		if d.ID == "cog" {
			cog = d
		}
	}
	require.Equal(t, "cog", cog.ID)

	assert.Equal(t, 0.0, cog.CoGOffset(30))
	assert.Equal(t, 4.0, cog.CoGOffset(50))
	assert.Equal(t, 8.0, cog.CoGOffset(100))
	assert.Equal(t, 12.0, cog.CoGOffset(130))
}

func TestSkidLayoutSpan(t *testing.T) {
	s := SkidLayout{Width: 3.5, Count: 3, Pitch: 18.25}
	assert.InDelta(t, 40.0, s.Span(), FloatTol)

	assert.Equal(t, 0.0, SkidLayout{}.Span())
	assert.Equal(t, 5.5, SkidLayout{Width: 5.5, Count: 1}.Span())
}

func TestFloorboardLayoutHelpers(t *testing.T) {
	f := FloorboardLayout{Slots: []FloorboardSlot{
		{Tag: SlotStandardFront, Index: 1, Width: 7.25},
		{Tag: SlotStandardFront, Index: 2, Suppressed: true},
		{Tag: SlotCustomFill, Index: 1, Width: 3.0},
		{Tag: SlotStandardBack, Index: 1, Width: 7.25},
	}}

	assert.Len(t, f.SlotsByTag(SlotStandardFront), 2)
	assert.Len(t, f.SlotsByTag(SlotCustomFill), 1)
	assert.InDelta(t, 17.5, f.UsedWidth(), FloatTol)
}
