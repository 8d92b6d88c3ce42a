// Package basinsync updates the Milestone, Task_Num and dated status fields of NCFMP
// study tables from the project tracking workbook.
package basinsync

import (
	"io"

	"go.uber.org/zap"
)

// Field names shared by both study tables.
const (
	MilestoneField = "Milestone"
	TaskNumField   = "Task_Num"
)

// BasinOptions configures a BasinStudies update.
type BasinOptions struct {
	// Table is the feature table holding one record per basin.
	Table string
	// Sheet is the worksheet holding the basin tracking cells.
	Sheet string
	// KeyField is the field holding the basin name.
	KeyField string
	// Out receives one summary line per updated record. Nil discards them.
	Out io.Writer
	// Logger receives structured progress logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultBasinOptions returns the options used by the NCFMP BasinStudies table.
func DefaultBasinOptions() BasinOptions {
	return BasinOptions{
		Table:    "BasinStudies",
		Sheet:    "ESP_2D_Actual",
		KeyField: "Name",
	}
}

// HUCOptions configures a RAS2D update.
type HUCOptions struct {
	// Table is the feature table holding one record per HUC10.
	Table string
	// Sheet is the worksheet holding the dashboard rows.
	Sheet string
	// KeyField is the field holding the HUC10 code.
	KeyField string
	// KeyColumn is the sheet column holding the HUC10 code.
	KeyColumn string
	// StatusColumn is the sheet column holding the overall status.
	StatusColumn string
	// FirstRow and LastRow bound the dashboard rows, inclusive and 1-based.
	FirstRow int
	LastRow  int
	// Out receives one summary line per updated record. Nil discards them.
	Out io.Writer
	// Logger receives structured progress logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultHUCOptions returns the options used by the NCFMP RAS2D table.
func DefaultHUCOptions() HUCOptions {
	return HUCOptions{
		Table:        "RAS2D",
		Sheet:        "Dashboard Tracking",
		KeyField:     "HUC10",
		KeyColumn:    "B",
		StatusColumn: "Z",
		FirstRow:     4,
		LastRow:      83,
	}
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
