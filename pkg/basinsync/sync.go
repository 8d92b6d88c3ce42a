package basinsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/milestone"
	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
	"github.com/ncfmp/basinsync-go/pkg/basinsync/scanner"
	"github.com/ncfmp/basinsync-go/pkg/basinsync/store"
)

// RunBasins updates the basin table of the dataset at datasetPath from the workbook at workbookPath.
func RunBasins(ctx context.Context, datasetPath, workbookPath, date string, opts BasinOptions) (*Result, error) {
	st, wb, err := openInputs(ctx, datasetPath, workbookPath, opts.Table)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	defer wb.Close()

	return SyncBasins(ctx, st, wb, date, opts)
}

// RunHUCs updates the HUC table of the dataset at datasetPath from the workbook at workbookPath.
func RunHUCs(ctx context.Context, datasetPath, workbookPath, date string, opts HUCOptions) (*Result, error) {
	st, wb, err := openInputs(ctx, datasetPath, workbookPath, opts.Table)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	defer wb.Close()

	return SyncHUCs(ctx, st, wb, date, opts)
}

// SyncBasins counts the filled tracking cells of each basin and writes the resulting
// codes to every record of the basin table. Records with an unknown name get the default code.
func SyncBasins(ctx context.Context, st RecordStore, wb scanner.Workbook, date string, opts BasinOptions) (*Result, error) {
	log := loggerOrNop(opts.Logger).With(zap.String("table", opts.Table))

	field, err := prepare(ctx, st, wb, date, opts.Table, opts.Sheet)
	if err != nil {
		return nil, err
	}

	counts, err := scanner.ScanBasins(wb, opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("scan %s failed: %w", opts.Sheet, err)
	}
	for _, b := range models.Basins {
		log.Debug("Basin tally", zap.String("basin", string(b)), zap.Int("count", counts.Count(b)))
	}

	return recordUpdate{
		table:       opts.Table,
		keyField:    opts.KeyField,
		statusField: field,
		label:       "Name",
		lookup: func(key string) (models.Code, bool) {
			b := models.Basin(key)
			return milestone.ForBasin(b, counts.Count(b)), true
		},
		out: writerOrDiscard(opts.Out),
		log: log,
	}.apply(ctx, st)
}

// SyncHUCs reads the dashboard statuses and writes the resulting codes to the records of
// the HUC table whose code appears on the dashboard. Other records are left unchanged.
func SyncHUCs(ctx context.Context, st RecordStore, wb scanner.Workbook, date string, opts HUCOptions) (*Result, error) {
	log := loggerOrNop(opts.Logger).With(zap.String("table", opts.Table))

	field, err := prepare(ctx, st, wb, date, opts.Table, opts.Sheet)
	if err != nil {
		return nil, err
	}

	statuses, err := scanner.ScanHUCs(wb, opts.Sheet, scanner.HUCLayout{
		KeyColumn:    opts.KeyColumn,
		StatusColumn: opts.StatusColumn,
		FirstRow:     opts.FirstRow,
		LastRow:      opts.LastRow,
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s failed: %w", opts.Sheet, err)
	}
	log.Debug("Dashboard scanned", zap.Int("hucs", len(statuses)))

	return recordUpdate{
		table:       opts.Table,
		keyField:    opts.KeyField,
		statusField: field,
		label:       "HUC",
		lookup: func(key string) (models.Code, bool) {
			s, ok := statuses.Lookup(key)
			if !ok {
				return models.Code{}, false
			}
			return milestone.ForHUC(s), true
		},
		out: writerOrDiscard(opts.Out),
		log: log,
	}.apply(ctx, st)
}

// prepare runs the checks shared by both updates, in order: table, date, worksheet.
// Nothing is written when it fails.
func prepare(ctx context.Context, st RecordStore, wb scanner.Workbook, date, table, sheet string) (string, error) {
	if err := requireTable(ctx, st, table); err != nil {
		return "", err
	}
	field, err := StatusFieldName(date)
	if err != nil {
		return "", err
	}
	if err := scanner.RequireSheet(wb, sheet); err != nil {
		return "", missingSheet(sheet, workbookName(wb), err)
	}
	return field, nil
}

// openInputs opens the dataset and confirms the table before it touches the workbook.
func openInputs(ctx context.Context, datasetPath, workbookPath, table string) (*store.Store, *excelize.File, error) {
	st, err := store.Open(datasetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, missingTable(table, datasetPath)
		}
		return nil, nil, err
	}
	if err := requireTable(ctx, st, table); err != nil {
		st.Close()
		return nil, nil, err
	}

	wb, err := excelize.OpenFile(workbookPath)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return st, wb, nil
}

func workbookName(wb scanner.Workbook) string {
	if f, ok := wb.(*excelize.File); ok && f.Path != "" {
		return filepath.Base(f.Path)
	}
	return "workbook"
}
