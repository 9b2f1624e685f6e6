package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/engine"
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

func referenceModel(t *testing.T) *model.CrateComponentModel {
	t.Helper()
	a := engine.New(model.DefaultRules())
	m, err := a.Run(
		model.ProductSpec{Weight: 600, Width: 38, Length: 46, Height: 91.5},
		model.ConstructionSpec{
			ClearanceSide:     1.0,
			ClearanceAbove:    1.5,
			PanelThickness:    0.25,
			CleatThickness:    0.75,
			WallCleatWidth:    3.5,
			CapCleatThickness: 0.75,
			CapCleatWidth:     3.5,
			FloorThickness:    1.5,
		},
		model.OptionsSpec{
			Style:             model.StyleB,
			FloorboardNominal: "2x8",
			AllowCustomFill:   true,
			MaxCleatSpacing:   24.0,
			MaxFloorGap:       0.25,
		},
	)
	require.NoError(t, err)
	return m
}

func TestWriteExpVocabulary(t *testing.T) {
	m := referenceModel(t)

	var buf bytes.Buffer
	require.NoError(t, WriteExp(&buf, m))
	content := buf.String()

	// The expression names are the contract with the CAD template.
	for _, want := range []string{
		"[lbm]product_weight = 600.0",
		"[Inch]product_width = 38.00",
		"[Inch]crate_width_OD = product_width + 2 * (clearance_side + panel_thickness + wall_cleat_thickness)",
		"[Inch]skid_usable_width_ID = crate_width_OD - 2 * (panel_thickness + wall_cleat_thickness)",
		"CALC_Skid_Count = 3",
		"[Inch]CALC_Skid_Pitch = 18.2500",
		"[Inch]CALC_First_Skid_Pos_X = -18.2500",
		"[Inch]CALC_Overall_Skid_Span = 40.000",
		"[Inch]INPUT_Skid_Nominal_Width = 3.500",
		"[Inch]CALC_Floor_Start_Y_Offset_Abs = 1.000",
		"[Inch]CALC_Floor_Target_Layout_Span = 48.000",
		"FB_Custom_Suppress_Flag = 0",
		"[Inch]FB_Custom_Actual_Width = 4.500",
		"[Inch]CALC_Floor_Final_Gap_Debug = 0.0000",
		"[Inch]CAP_Panel_Length = 50.000",
		"[Inch]SIDE_Panel_Width = 50.000",
		"[Inch]END_Panel_Width = 42.000",
		"KLIMP_Count_Per_End_Panel = 6",
	} {
		assert.Contains(t, content, want)
	}
}

func TestWriteExpSlotSuppression(t *testing.T) {
	m := referenceModel(t)

	var buf bytes.Buffer
	require.NoError(t, WriteExp(&buf, m))
	content := buf.String()

	// All ten slots per side are always present.
	for i := 1; i <= model.MaxFloorboardSlotsPerSide; i++ {
		assert.Contains(t, content, fmt.Sprintf("FB_Std_Front_%d_Suppress_Flag = ", i))
		assert.Contains(t, content, fmt.Sprintf("FB_Std_Back_%d_Suppress_Flag = ", i))
	}

	// Reference crate uses three boards per side; the rest are suppressed.
	assert.Contains(t, content, "FB_Std_Front_3_Suppress_Flag = 0")
	assert.Contains(t, content, "FB_Std_Front_4_Suppress_Flag = 1")
	assert.Contains(t, content, "FB_Std_Back_3_Suppress_Flag = 0")
	assert.Contains(t, content, "FB_Std_Back_4_Suppress_Flag = 1")

	shown := strings.Count(content, "_Suppress_Flag = 0")
	suppressed := strings.Count(content, "_Suppress_Flag = 1")
	assert.Equal(t, 9, shown, "6 standard boards, 1 custom, 2 CoG decals")
	assert.Equal(t, 14, suppressed, "7 unused slots per side")
}

func TestExportExpWritesFile(t *testing.T) {
	m := referenceModel(t)
	path := t.TempDir() + "/AutoCrate_Expressions.exp"

	require.NoError(t, ExportExp(path, m))
	assertNonEmptyFile(t, path)
}
