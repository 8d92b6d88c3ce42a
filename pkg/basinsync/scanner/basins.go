package scanner

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
)

// ScanBasins counts the filled tracking cells of each basin on sheet.
// Every basin in models.Basins has an entry, zero when nothing was filled.
func ScanBasins(wb Workbook, sheet string) (models.BasinCounts, error) {
	return scanBasinCells(wb, sheet, models.BasinCells)
}

func scanBasinCells(wb Workbook, sheet string, cells []string) (models.BasinCounts, error) {
	counts := make(models.BasinCounts, len(models.Basins))
	for _, b := range models.Basins {
		counts[b] = 0
	}

	for _, cell := range cells {
		_, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid tracking cell %q: %w", cell, err)
		}
		basin, ok := models.BasinForRow(row)
		if !ok {
			continue
		}

		value, typ, err := readCell(wb, sheet, cell)
		if err != nil {
			return nil, err
		}
		if isFilled(value, typ) {
			counts[basin]++
		}
	}

	return counts, nil
}
