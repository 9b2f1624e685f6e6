package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates the crate layout report: a base plan view page
// (skids and floorboards), a wall elevation page, and a summary page.
func ExportPDF(path string, m *model.CrateComponentModel) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderBasePlanPage(pdf, m)

	pdf.AddPage()
	renderWallElevationPage(pdf, m)

	pdf.AddPage()
	renderSummaryPage(pdf, m)

	return pdf.OutputFileAndClose(path)
}

// renderBasePlanPage draws the crate base from above: skid strips running
// vertically, floorboards laid across them.
func renderBasePlanPage(pdf *fpdf.Fpdf, m *model.CrateComponentModel) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Base Plan: %.1f x %.1f in, %d skids (%s)", m.CrateWidthOD, m.CrateLengthOD, m.Skids.Count, m.Skids.Nominal)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/m.CrateWidthOD, drawHeight/m.CrateLengthOD)
	canvasW := m.CrateWidthOD * scale
	canvasH := m.CrateLengthOD * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Crate outline.
	pdf.SetFillColor(245, 245, 240)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Skids: positions are relative to the crate centerline.
	pdf.SetFillColor(139, 69, 19)
	pdf.SetDrawColor(101, 67, 33)
	pdf.SetLineWidth(0.3)
	for _, x := range m.Skids.Positions {
		sx := offsetX + (m.CrateWidthOD/2+x-m.Skids.Width/2)*scale
		pdf.Rect(sx, offsetY, m.Skids.Width*scale, m.Skids.Length*scale, "FD")
	}

	// Floorboards, drawn over the skids.
	pdf.SetDrawColor(70, 130, 180)
	boardX := offsetX + (m.CrateWidthOD-m.Floor.BoardLength)/2*scale
	boardW := m.Floor.BoardLength * scale
	for _, s := range m.Floor.Slots {
		if s.Suppressed {
			continue
		}
		if s.Tag == model.SlotCustomFill {
			pdf.SetFillColor(176, 196, 222)
		} else {
			pdf.SetFillColor(210, 180, 140)
		}
		pdf.Rect(boardX, offsetY+s.YPos*scale, boardW, s.Width*scale, "FD")
	}

	drawDimensionAnnotations(pdf, m.CrateWidthOD, m.CrateLengthOD, scale, offsetX, offsetY, canvasW, canvasH)
}

// renderWallElevationPage draws the side panel elevation with its cleats,
// klimps, and decal footprints.
func renderWallElevationPage(pdf *fpdf.Fpdf, m *model.CrateComponentModel) {
	panel := m.Walls.Side

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Side Panel Elevation: %.1f x %.1f in, %d cleats @ %.2f in pitch",
		panel.Width, panel.Height, panel.Cleats.Count, panel.Cleats.Pitch)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/panel.Width, drawHeight/panel.Height)
	canvasW := panel.Width * scale
	canvasH := panel.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(245, 245, 220)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Vertical cleats.
	pdf.SetFillColor(160, 82, 45)
	pdf.SetDrawColor(101, 67, 33)
	pdf.SetLineWidth(0.3)
	for _, x := range panel.Cleats.Positions {
		cx := offsetX + (panel.Width/2+x-panel.Cleats.CleatWidth/2)*scale
		pdf.Rect(cx, offsetY, panel.Cleats.CleatWidth*scale, canvasH, "FD")
	}

	// Decals on this panel (panel Y is measured from the bottom).
	pdf.SetFont("Helvetica", "B", 7)
	for _, d := range m.Decals {
		if d.Panel != panel.Kind {
			continue
		}
		dx := offsetX + d.X*scale
		dy := offsetY + (panel.Height-d.Y-d.Height)*scale
		pdf.SetFillColor(255, 255, 224)
		pdf.SetDrawColor(128, 128, 128)
		pdf.Rect(dx, dy, d.Width*scale, d.Height*scale, "FD")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(dx, dy+d.Height*scale/2-2)
		pdf.CellFormat(d.Width*scale, 4, d.DecalID, "", 0, "C", false, 0, "")
	}

	drawDimensionAnnotations(pdf, panel.Width, panel.Height, scale, offsetX, offsetY, canvasW, canvasH)
}

// renderSummaryPage draws the final page with the numeric layout summary.
func renderSummaryPage(pdf *fpdf.Fpdf, m *model.CrateComponentModel) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Crate Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	items := []struct {
		label string
		value string
	}{
		{"Run", m.RunID},
		{"Product", fmt.Sprintf("%.1f x %.1f x %.1f in, %.0f lbs", m.Product.Width, m.Product.Length, m.Product.Height, m.Product.Weight)},
		{"Crate OD", fmt.Sprintf("%.2f x %.2f x %.2f in", m.CrateWidthOD, m.CrateLengthOD, m.CrateHeightOD)},
		{"Style", string(m.Options.Style)},
		{"Skids", fmt.Sprintf("%d x %s @ %.2f in pitch", m.Skids.Count, m.Skids.Nominal, m.Skids.Pitch)},
		{"Floorboards", fmt.Sprintf("%s std, custom %.2f in, gap %.3f in", m.Options.FloorboardNominal, m.Floor.CustomWidth, m.Floor.Gap)},
		{"Side panel cleats", fmt.Sprintf("%d @ %.2f in", m.Walls.Side.Cleats.Count, m.Walls.Side.Cleats.Pitch)},
		{"End panel cleats", fmt.Sprintf("%d @ %.2f in", m.Walls.End.Cleats.Count, m.Walls.End.Cleats.Pitch)},
		{"Cap cleats", fmt.Sprintf("%d long / %d trans", m.Cap.Longitudinal.Count, m.Cap.Transverse.Count)},
		{"Decals", fmt.Sprintf("%d placed", len(m.Decals))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(m.Warnings) > 0 {
		y += 6
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Warnings", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range m.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, fmt.Sprintf("- [%s] %s", w.Code, w.Message), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by AutoCrate - Crate Layout Engine", "", 0, "C", false, 0, "")
}

// drawDimensionAnnotations adds width and height labels outside the drawing.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, width, height, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.2f in", width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.2f in", height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}
