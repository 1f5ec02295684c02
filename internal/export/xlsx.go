// Package export renders the farming plan as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	PlanSheet   = "Plan"
	RelicsSheet = "Relics"
)

var planHeaders = []string{"Item", "Part", "Status", "Relic", "Owned", "Best Mission", "Rotation", "Rarity", "Chance %"}

// Plan builds a workbook with one row per tracked part and a sheet with
// the relic inventory. Callers must Close the returned file.
func Plan(views []models.ItemView, inventory []models.RelicCount) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", PlanSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(RelicsSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writePlan(f, views); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRelics(f, inventory); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WritePlan writes the workbook to w
func WritePlan(w io.Writer, views []models.ItemView, inventory []models.RelicCount) error {
	f, err := Plan(views, inventory)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writePlan(f *excelize.File, views []models.ItemView) error {
	if err := writeHeader(f, PlanSheet, planHeaders); err != nil {
		return err
	}

	row := 2
	for _, view := range views {
		for _, pv := range view.Parts {
			values := []interface{}{view.Item.Name, pv.Part, string(pv.Status), "", pv.Owned, "", "", "", nil}
			if pv.Relic != nil {
				values[3] = pv.Relic.Name
			}
			if len(pv.Drops) > 0 {
				best := pv.Drops[0]
				values[5] = best.Mission
				if len(best.Rotations) > 0 && len(best.Rotations[0].Drops) > 0 {
					values[6] = best.Rotations[0].Rotation
					values[7] = best.Rotations[0].Drops[0].Rarity
					values[8] = catalog.ExtractRarity(best.Rotations[0].Drops[0].Rarity)
				}
			}
			if err := writeRow(f, PlanSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(PlanSheet, "A", "A", 24); err != nil {
		return err
	}
	return f.SetColWidth(PlanSheet, "F", "F", 28)
}

func writeRelics(f *excelize.File, inventory []models.RelicCount) error {
	if err := writeHeader(f, RelicsSheet, []string{"Relic", "Count"}); err != nil {
		return err
	}
	for i, rc := range inventory {
		if err := writeRow(f, RelicsSheet, i+2, []interface{}{rc.Name, rc.Count}); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styleID)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("%s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
