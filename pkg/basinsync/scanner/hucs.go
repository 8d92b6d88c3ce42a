package scanner

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
)

// HUCLayout locates the dashboard rows on the tracking sheet.
type HUCLayout struct {
	KeyColumn    string
	StatusColumn string
	FirstRow     int
	LastRow      int
}

// ScanHUCs reads the HUC10 code and overall status of every dashboard row.
// Rows are read top to bottom, so a repeated code keeps the status of its last row.
// Rows without a code are skipped.
func ScanHUCs(wb Workbook, sheet string, layout HUCLayout) (models.HUCStatusTable, error) {
	if layout.FirstRow < 1 || layout.LastRow < layout.FirstRow {
		return nil, fmt.Errorf("invalid row range %d..%d", layout.FirstRow, layout.LastRow)
	}

	table := make(models.HUCStatusTable)
	for row := layout.FirstRow; row <= layout.LastRow; row++ {
		keyCell, err := excelize.JoinCellName(layout.KeyColumn, row)
		if err != nil {
			return nil, fmt.Errorf("invalid key column %q: %w", layout.KeyColumn, err)
		}
		statusCell, err := excelize.JoinCellName(layout.StatusColumn, row)
		if err != nil {
			return nil, fmt.Errorf("invalid status column %q: %w", layout.StatusColumn, err)
		}

		key, _, err := readCell(wb, sheet, keyCell)
		if err != nil {
			return nil, err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		raw, _, err := readCell(wb, sheet, statusCell)
		if err != nil {
			return nil, err
		}
		value, present, err := parseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%s!%s: %w", sheet, statusCell, err)
		}
		table[key] = models.HUCStatus{Value: value, Present: present}
	}

	return table, nil
}
