package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// bomRow is one line of the bill of materials.
type bomRow struct {
	Component string
	Material  string
	Quantity  int
	Width     float64
	Length    float64
	Thickness float64
}

// bomRows flattens the crate model into purchasable line items.
func bomRows(m *model.CrateComponentModel) []bomRow {
	rows := []bomRow{
		{
			Component: "Skid", Material: fmt.Sprintf("%s lumber", m.Skids.Nominal),
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
		rows = append(rows, bomRow{
			Component: "Floorboard", Material: fmt.Sprintf("%s lumber", m.Options.FloorboardNominal),
			Quantity: stdCount, Width: m.Floor.StandardWidth, Length: m.Floor.BoardLength, Thickness: m.Construction.FloorThickness,
		})
	}
	if m.Floor.CustomWidth > model.FloatTol {
		rows = append(rows, bomRow{
			Component: "Floorboard (custom rip)", Material: fmt.Sprintf("%s lumber, ripped", m.Options.FloorboardNominal),
			Quantity: 1, Width: m.Floor.CustomWidth, Length: m.Floor.BoardLength, Thickness: m.Construction.FloorThickness,
		})
	}

	rows = append(rows,
		bomRow{
			Component: "Side panel", Material: "plywood sheathing",
			Quantity: 2, Width: m.Walls.Side.Width, Length: m.Walls.Side.Height, Thickness: m.Walls.Side.Thickness,
		},
		bomRow{
			Component: "End panel", Material: "plywood sheathing",
			Quantity: 2, Width: m.Walls.End.Width, Length: m.Walls.End.Height, Thickness: m.Walls.End.Thickness,
		},
		bomRow{
			Component: "Side panel cleat", Material: "cleat lumber",
			Quantity: 2 * m.Walls.Side.Cleats.Count, Width: m.Walls.Side.Cleats.CleatWidth,
			Length: m.Walls.Side.Cleats.CleatLength, Thickness: m.Walls.Side.Cleats.CleatThickness,
		},
		bomRow{
			Component: "End panel cleat", Material: "cleat lumber",
			Quantity: 2 * m.Walls.End.Cleats.Count, Width: m.Walls.End.Cleats.CleatWidth,
			Length: m.Walls.End.Cleats.CleatLength, Thickness: m.Walls.End.Cleats.CleatThickness,
		},
		bomRow{
			Component: "Cap panel", Material: "plywood sheathing",
			Quantity: 1, Width: m.Cap.Width, Length: m.Cap.Length, Thickness: m.Cap.Thickness,
		},
		bomRow{
			Component: "Cap cleat (longitudinal)", Material: "cleat lumber",
			Quantity: m.Cap.Longitudinal.Count, Width: m.Cap.Longitudinal.CleatWidth,
			Length: m.Cap.Longitudinal.CleatLength, Thickness: m.Cap.Longitudinal.CleatThickness,
		},
		bomRow{
			Component: "Cap cleat (transverse)", Material: "cleat lumber",
			Quantity: m.Cap.Transverse.Count, Width: m.Cap.Transverse.CleatWidth,
			Length: m.Cap.Transverse.CleatLength, Thickness: m.Cap.Transverse.CleatThickness,
		},
	)

	if n := len(m.Walls.End.Klimps); n > 0 {
		rows = append(rows, bomRow{
			Component: "Klimp fastener", Material: "hardware",
			Quantity: 2 * n, // both end panels
		})
	}
	return rows
}

// ExportBOM writes the bill of materials as an XLSX workbook.
func ExportBOM(path string, m *model.CrateComponentModel) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bill of Materials"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Component", "Material", "Qty", "Width (in)", "Length (in)", "Thickness (in)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range bomRows(m) {
		values := []any{row.Component, row.Material, row.Quantity, row.Width, row.Length, row.Thickness}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
