package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// LabelInfo holds the data encoded into each component label's QR code.
type LabelInfo struct {
	RunID     string  `json:"run"`
	Component string  `json:"component"`
	Quantity  int     `json:"qty"`
	Width     float64 `json:"width_in"`
	Length    float64 `json:"length_in"`
	Thickness float64 `json:"thickness_in"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page) on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelsPerPage   = 30
	qrSize          = 20.0 // mm
	labelPadding    = 2.0  // mm
)

// CollectLabelInfos flattens the crate model into one label per component
// group: skids, floorboards, panels, and cap parts.
func CollectLabelInfos(m *model.CrateComponentModel) []LabelInfo {
	labels := []LabelInfo{
		{
			RunID: m.RunID, Component: fmt.Sprintf("Skid %s", m.Skids.Nominal),
			Quantity: m.Skids.Count, Width: m.Skids.Width, Length: m.Skids.Length, Thickness: m.Skids.Height,
		},
	}

	stdCount := 0
	for _, s := range m.Floor.Slots {
		if !s.Suppressed && s.Tag != model.SlotCustomFill {
			stdCount++
		}
	}
	if stdCount > 0 {
		labels = append(labels, LabelInfo{
			RunID: m.RunID, Component: fmt.Sprintf("Floorboard %s", m.Options.FloorboardNominal),
			Quantity: stdCount, Width: m.Floor.StandardWidth, Length: m.Floor.BoardLength, Thickness: m.Construction.FloorThickness,
		})
	}
	if m.Floor.CustomWidth > model.FloatTol {
		labels = append(labels, LabelInfo{
			RunID: m.RunID, Component: "Floorboard custom fill",
			Quantity: 1, Width: m.Floor.CustomWidth, Length: m.Floor.BoardLength, Thickness: m.Construction.FloorThickness,
		})
	}

	labels = append(labels,
		LabelInfo{
			RunID: m.RunID, Component: "Side panel",
			Quantity: 2, Width: m.Walls.Side.Width, Length: m.Walls.Side.Height, Thickness: m.Walls.Side.Thickness,
		},
		LabelInfo{
			RunID: m.RunID, Component: "End panel",
			Quantity: 2, Width: m.Walls.End.Width, Length: m.Walls.End.Height, Thickness: m.Walls.End.Thickness,
		},
		LabelInfo{
			RunID: m.RunID, Component: "Cap panel",
			Quantity: 1, Width: m.Cap.Width, Length: m.Cap.Length, Thickness: m.Cap.Thickness,
		},
		LabelInfo{
			RunID: m.RunID, Component: "Cap cleat longitudinal",
			Quantity: m.Cap.Longitudinal.Count, Width: m.Cap.Longitudinal.CleatWidth,
			Length: m.Cap.Longitudinal.CleatLength, Thickness: m.Cap.Longitudinal.CleatThickness,
		},
		LabelInfo{
			RunID: m.RunID, Component: "Cap cleat transverse",
			Quantity: m.Cap.Transverse.Count, Width: m.Cap.Transverse.CleatWidth,
			Length: m.Cap.Transverse.CleatLength, Thickness: m.Cap.Transverse.CleatThickness,
		},
	)
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per component group,
// on a standard label sheet.
func ExportLabels(path string, m *model.CrateComponentModel) error {
	labels := CollectLabelInfos(m)
	if len(labels) == 0 {
		return fmt.Errorf("no components to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Component, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, idx int, info LabelInfo) error {
	// Light border for a cutting guide.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.RunID, idx)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	component := info.Component
	if pdf.GetStringWidth(component) > textW {
		for len(component) > 0 && pdf.GetStringWidth(component+"...") > textW {
			component = component[:len(component)-1]
		}
		component += "..."
	}
	pdf.CellFormat(textW, 4.5, component, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f x %.2f in", info.Width, info.Length, info.Thickness)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Qty %d | Run %s", info.Quantity, info.RunID), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
