// Package export renders a crate component model into the downstream
// deliverables: the NX expression file, a PDF layout report, an XLSX bill
// of materials, a DXF plan drawing, and QR shipping labels.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// Suppression flag convention used by the CAD template: 0 shows the
// instance, 1 suppresses it.
const (
	instanceShown      = 0
	instanceSuppressed = 1
)

// WriteExp writes the NX expression file for m. The expression names form
// the contract with the parametric CAD assembly and must not change.
func WriteExp(w io.Writer, m *model.CrateComponentModel) error {
	bw := bufio.NewWriter(w)

	p := m.Product
	c := m.Construction

	fmt.Fprintln(bw, "// NX Expressions for AutoCrate - Skids, Floorboards & Cap Assembly")
	fmt.Fprintf(bw, "// Generated: %s (run %s)\n", time.Now().Format("2006-01-02 15:04:05"), m.RunID)

	fmt.Fprintln(bw, "\n// =============================")
	fmt.Fprintln(bw, "// 1. USER CONTROLS (Values from UI)")
	fmt.Fprintln(bw, "// =============================")
	fmt.Fprintf(bw, "[lbm]product_weight = %.1f  // Product Weight\n", p.Weight)
	fmt.Fprintf(bw, "[Inch]product_width = %.2f     // Product Width - across skids\n", p.Width)
	fmt.Fprintf(bw, "[Inch]product_length = %.2f    // Product Length - along skids\n", p.Length)
	fmt.Fprintf(bw, "[Inch]product_actual_height = %.2f // Product Actual Height\n", p.Height)
	fmt.Fprintf(bw, "[Inch]clearance_side = %.2f     // Clearance per Side (product to inner wall face)\n", c.ClearanceSide)
	fmt.Fprintf(bw, "[Inch]clearance_above_product = %.2f // Clearance above product\n", c.ClearanceAbove)
	fmt.Fprintf(bw, "[Inch]panel_thickness = %.3f   // Panel Sheathing Thickness\n", c.PanelThickness)
	fmt.Fprintf(bw, "[Inch]wall_cleat_thickness = %.3f   // Wall Cleat Actual Thickness\n", c.CleatThickness)
	fmt.Fprintf(bw, "[Inch]wall_cleat_width = %.2f // Wall Cleat Actual Width\n", c.WallCleatWidth)
	fmt.Fprintf(bw, "[Inch]floor_lumbar_thickness = %.3f // Floorboard Actual Thickness\n", c.FloorThickness)
	fmt.Fprintf(bw, "[Inch]cap_cleat_thickness = %.3f // Cap Cleat Actual Thickness\n", c.CapCleatThickness)
	fmt.Fprintf(bw, "[Inch]cap_cleat_width = %.2f     // Cap Cleat Actual Width\n", c.CapCleatWidth)
	fmt.Fprintf(bw, "[Inch]max_cap_cleat_spacing_rule = %.2f // Max rule for cap cleats\n", m.Options.MaxCleatSpacing)
	fmt.Fprintf(bw, "// CHOSEN_Std_Floorboard_Nominal_UI: %q\n", m.Options.FloorboardNominal)

	fmt.Fprintln(bw, "\n// ===========================================")
	fmt.Fprintln(bw, "// 2. CALCULATED CRATE AND USABLE DIMENSIONS (NX Expressions)")
	fmt.Fprintln(bw, "// ===========================================")
	fmt.Fprintln(bw, "[Inch]crate_width_OD = product_width + 2 * (clearance_side + panel_thickness + wall_cleat_thickness)")
	fmt.Fprintln(bw, "[Inch]crate_length_OD = product_length + 2 * (clearance_side + panel_thickness + wall_cleat_thickness)")
	fmt.Fprintln(bw, "[Inch]skid_usable_width_ID = crate_width_OD - 2 * (panel_thickness + wall_cleat_thickness)")
	fmt.Fprintf(bw, "[Inch]CALC_Crate_Height_OD = %.3f\n", m.CrateHeightOD)

	fmt.Fprintln(bw, "\n// =============================")
	fmt.Fprintln(bw, "// 3. SKID LAYOUT (for NX Pattern)")
	fmt.Fprintln(bw, "// =============================")
	fmt.Fprintf(bw, "[Inch]INPUT_Skid_Nominal_Width = %.3f\n", m.Skids.Width)
	fmt.Fprintf(bw, "[Inch]INPUT_Skid_Nominal_Height = %.3f\n", m.Skids.Height)
	fmt.Fprintf(bw, "[Inch]RULE_Max_Skid_Spacing_Ref = %.2f // Max spacing rule applied\n", m.Skids.MaxSpacing)
	fmt.Fprintf(bw, "CALC_Skid_Count = %d\n", m.Skids.Count)
	fmt.Fprintf(bw, "[Inch]CALC_Skid_Pitch = %.4f\n", m.Skids.Pitch)
	fmt.Fprintf(bw, "[Inch]CALC_First_Skid_Pos_X = %.4f\n", m.Skids.FirstOffsetX)
	fmt.Fprintf(bw, "[Inch]CALC_Overall_Skid_Span = %.3f\n", m.Skids.Span())
	fmt.Fprintf(bw, "[Inch]INPUT_Skid_Actual_Length = %.3f\n", m.Skids.Length)

	fmt.Fprintln(bw, "\n// ===========================================")
	fmt.Fprintln(bw, "// 4. FLOORBOARD PARAMETERS (for N-Instance Suppression Strategy)")
	fmt.Fprintln(bw, "// ===========================================")
	fmt.Fprintf(bw, "[Inch]CALC_Floor_Start_Y_Offset_Abs = %.3f // Abs Y for first front board's leading edge\n", m.Floor.StartOffsetY)
	fmt.Fprintf(bw, "[Inch]CALC_Floor_Target_Layout_Span = %.3f // Total Y-span floorboards must cover\n", m.Floor.TargetSpan)
	fmt.Fprintln(bw, "[Inch]CALC_Floor_Board_Length_Across_Skids = CALC_Overall_Skid_Span // X-Length of each floorboard piece")
	fmt.Fprintln(bw, "[Inch]INPUT_Floorboard_Actual_Thickness = floor_lumbar_thickness")
	fmt.Fprintf(bw, "[Inch]CHOSEN_Std_Floorboard_Actual_Width_Val = %.3f\n", m.Floor.StandardWidth)

	writeFloorboardSlots(bw, "FB_Std_Front", m.Floor.SlotsByTag(model.SlotStandardFront))
	writeFloorboardSlots(bw, "FB_Std_Back", m.Floor.SlotsByTag(model.SlotStandardBack))

	fmt.Fprintln(bw, "\n// --- Custom Middle Floorboard (1 slot) ---")
	custom := m.Floor.SlotsByTag(model.SlotCustomFill)
	flag, width, y := instanceSuppressed, 0.0, 0.0
	if len(custom) == 1 && !custom[0].Suppressed {
		flag, width, y = instanceShown, custom[0].Width, custom[0].YPos
	}
	fmt.Fprintf(bw, "FB_Custom_Suppress_Flag = %d\n", flag)
	fmt.Fprintf(bw, "[Inch]FB_Custom_Actual_Width = %.3f\n", width)
	fmt.Fprintf(bw, "[Inch]FB_Custom_Y_Pos_Abs = %.3f // Leading Edge Y\n", y)
	fmt.Fprintf(bw, "[Inch]CALC_Floor_Final_Gap_Debug = %.4f // For verification\n", m.Floor.Gap)

	fmt.Fprintln(bw, "\n// ===========================================")
	fmt.Fprintln(bw, "// 5. CAP ASSEMBLY PARAMETERS")
	fmt.Fprintln(bw, "// ===========================================")
	fmt.Fprintf(bw, "[Inch]CAP_Panel_Width = %.3f\n", m.Cap.Width)
	fmt.Fprintf(bw, "[Inch]CAP_Panel_Length = %.3f\n", m.Cap.Length)
	fmt.Fprintf(bw, "[Inch]CAP_Panel_Thickness = %.3f\n", m.Cap.Thickness)
	writeCleatSet(bw, "CAP_Long_Cleat", m.Cap.Longitudinal)
	writeCleatSet(bw, "CAP_Trans_Cleat", m.Cap.Transverse)

	fmt.Fprintln(bw, "\n// ===========================================")
	fmt.Fprintln(bw, "// 6. WALL PANEL PARAMETERS")
	fmt.Fprintln(bw, "// ===========================================")
	writePanel(bw, "SIDE_Panel", m.Walls.Side)
	writePanel(bw, "END_Panel", m.Walls.End)
	fmt.Fprintf(bw, "KLIMP_Count_Per_End_Panel = %d\n", len(m.Walls.End.Klimps))
	for i, k := range m.Walls.End.Klimps {
		fmt.Fprintf(bw, "[Inch]KLIMP_%d_X = %.3f // %s edge\n", i+1, k.X, k.Edge)
		fmt.Fprintf(bw, "[Inch]KLIMP_%d_Y = %.3f\n", i+1, k.Y)
	}

	fmt.Fprintln(bw, "\n// ===========================================")
	fmt.Fprintln(bw, "// 7. DECAL PLACEMENTS")
	fmt.Fprintln(bw, "// ===========================================")
	for i, d := range m.Decals {
		prefix := fmt.Sprintf("DECAL_%d", i+1)
		fmt.Fprintf(bw, "// %s: %s on %s panel\n", prefix, d.DecalID, d.Panel)
		fmt.Fprintf(bw, "%s_Suppress_Flag = %d\n", prefix, instanceShown)
		fmt.Fprintf(bw, "[Inch]%s_X = %.3f\n", prefix, d.X)
		fmt.Fprintf(bw, "[Inch]%s_Y = %.3f\n", prefix, d.Y)
		fmt.Fprintf(bw, "[Inch]%s_Width = %.3f\n", prefix, d.Width)
		fmt.Fprintf(bw, "[Inch]%s_Height = %.3f\n", prefix, d.Height)
		fmt.Fprintf(bw, "%s_Angle = %.1f\n", prefix, d.Angle)
	}

	fmt.Fprintln(bw, "\n// End of AutoCrate Expressions")
	return bw.Flush()
}

func writeFloorboardSlots(w io.Writer, prefix string, slots []model.FloorboardSlot) {
	fmt.Fprintf(w, "\n// --- %s (Max %d slots) ---\n", prefix, model.MaxFloorboardSlotsPerSide)
	for _, s := range slots {
		flag, width, y := instanceSuppressed, 0.0, 0.0
		if !s.Suppressed {
			flag, width, y = instanceShown, s.Width, s.YPos
		}
		fmt.Fprintf(w, "%s_%d_Suppress_Flag = %d\n", prefix, s.Index, flag)
		fmt.Fprintf(w, "[Inch]%s_%d_Actual_Width = %.3f\n", prefix, s.Index, width)
		fmt.Fprintf(w, "[Inch]%s_%d_Y_Pos_Abs = %.3f // Leading Edge Y\n", prefix, s.Index, y)
	}
}

func writeCleatSet(w io.Writer, prefix string, cl model.CleatLayout) {
	fmt.Fprintf(w, "%s_Count = %d\n", prefix, cl.Count)
	fmt.Fprintf(w, "[Inch]%s_Pitch = %.4f\n", prefix, cl.Pitch)
	fmt.Fprintf(w, "[Inch]%s_Length = %.3f\n", prefix, cl.CleatLength)
	if len(cl.Positions) > 0 {
		fmt.Fprintf(w, "[Inch]%s_First_Pos = %.4f\n", prefix, cl.Positions[0])
	}
}

func writePanel(w io.Writer, prefix string, p model.PanelLayout) {
	fmt.Fprintf(w, "[Inch]%s_Width = %.3f\n", prefix, p.Width)
	fmt.Fprintf(w, "[Inch]%s_Height = %.3f\n", prefix, p.Height)
	fmt.Fprintf(w, "[Inch]%s_Thickness = %.3f\n", prefix, p.Thickness)
	writeCleatSet(w, prefix+"_Cleat", p.Cleats)
}

// ExportExp writes the NX expression file to path.
func ExportExp(path string, m *model.CrateComponentModel) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create exp file: %w", err)
	}
	defer f.Close()

	if err := WriteExp(f, m); err != nil {
		return fmt.Errorf("write exp file: %w", err)
	}
	return nil
}
