package basinsync

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ncfmp/basinsync-go/pkg/basinsync/models"
	"github.com/ncfmp/basinsync-go/pkg/basinsync/store"
)

// RecordStore is the dataset surface the updater needs. *store.Store satisfies it.
type RecordStore interface {
	Path() string
	Exists(ctx context.Context, table string) (bool, error)
	EnsureField(ctx context.Context, table, name string, typ store.FieldType) (bool, error)
	UpdateCursor(ctx context.Context, table string, fields []string) (*store.Cursor, error)
}

// Result summarizes one update run.
type Result struct {
	// Field is the dated status field written by the run.
	Field string
	// Added is true when the run created Field.
	Added bool
	// Updated counts records written.
	Updated int
	// Skipped counts records left untouched because their key was not scanned.
	Skipped int
}

// lookupFunc returns the code for a record key, or false to leave the record alone.
type lookupFunc func(key string) (models.Code, bool)

type recordUpdate struct {
	table       string
	keyField    string
	statusField string
	label       string
	lookup      lookupFunc
	out         io.Writer
	log         *zap.Logger
}

func requireTable(ctx context.Context, st RecordStore, table string) error {
	ok, err := st.Exists(ctx, table)
	if err != nil {
		return err
	}
	if !ok {
		return missingTable(table, st.Path())
	}
	return nil
}

// apply makes sure the status field exists, then rewrites the Milestone, Task_Num and
// status fields of every record the lookup knows.
func (u recordUpdate) apply(ctx context.Context, st RecordStore) (*Result, error) {
	added, err := st.EnsureField(ctx, u.table, u.statusField, store.FieldShort)
	if err != nil {
		return nil, err
	}
	res := &Result{Field: u.statusField, Added: added}
	u.log.Info("Status field ready", zap.String("field", u.statusField), zap.Bool("added", added))

	cur, err := st.UpdateCursor(ctx, u.table, []string{u.keyField, MilestoneField, TaskNumField, u.statusField})
	if err != nil {
		return res, err
	}
	defer cur.Close()
	u.log.Debug("Cursor opened", zap.Int("records", cur.Len()))

	for cur.Next() {
		row := cur.Row()
		key := row.String(0)

		code, ok := u.lookup(key)
		if !ok {
			res.Skipped++
			u.log.Debug("No scanned value for record", zap.String("key", key))
			continue
		}

		row.Values[1] = code.Milestone
		row.Values[2] = code.TaskNum
		row.Values[3] = code.Snapshot

		fmt.Fprintf(u.out, "%s: %s\tTask Num: %s\tStatus Code: %s\n", u.label, key, code.TaskNum, code.Snapshot)
		u.log.Debug("Updating record",
			zap.String("key", key),
			zap.String("milestone", code.Milestone),
			zap.String("task_num", code.TaskNum),
			zap.String("status", code.Snapshot))

		if err := cur.UpdateRow(ctx, row); err != nil {
			return res, err
		}
		res.Updated++
	}

	if err := cur.Close(); err != nil {
		return res, fmt.Errorf("close cursor on %s failed: %w", u.table, err)
	}
	u.log.Info("Update complete",
		zap.Int("records", cur.Len()),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
