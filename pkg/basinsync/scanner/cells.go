// Package scanner reads the tracking workbook into tallies and status tables.
package scanner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the read-only view of a workbook the scanner needs. *excelize.File satisfies it.
type Workbook interface {
	GetSheetList() []string
	GetCellValue(sheet, cell string, opts ...excelize.Options) (string, error)
	GetCellType(sheet, cell string) (excelize.CellType, error)
}

// ErrSheetNotFound indicates the workbook has no sheet with the required name.
var ErrSheetNotFound = errors.New("worksheet not found")

// HasSheet reports whether the workbook contains a sheet named name.
func HasSheet(wb Workbook, name string) bool {
	for _, s := range wb.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// RequireSheet returns an error wrapping ErrSheetNotFound when the workbook lacks the sheet.
func RequireSheet(wb Workbook, name string) error {
	if !HasSheet(wb, name) {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return nil
}

// readCell returns the stored value of a cell without number formatting applied.
// Formula cells yield their cached result.
func readCell(wb Workbook, sheet, cell string) (string, excelize.CellType, error) {
	value, err := wb.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", excelize.CellTypeUnset, fmt.Errorf("read %s!%s: %w", sheet, cell, err)
	}
	typ, err := wb.GetCellType(sheet, cell)
	if err != nil {
		return "", excelize.CellTypeUnset, fmt.Errorf("read type of %s!%s: %w", sheet, cell, err)
	}
	return value, typ, nil
}

// isFilled reports whether a cell counts as filled in.
// Text is filled whenever it is non-empty, even "0". Numbers and booleans are filled unless zero.
func isFilled(value string, typ excelize.CellType) bool {
	if value == "" {
		return false
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeBool:
		if n, ok := parseNumber(value); ok {
			return n != 0
		}
	}
	return true
}

// parseNumber parses a raw numeric cell value.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseStatus parses a status cell. Blank cells report present == false.
func parseStatus(s string) (value int, present bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	f, ok := parseNumber(s)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false, fmt.Errorf("status %q is not a whole number", s)
	}
	return int(f), true, nil
}
