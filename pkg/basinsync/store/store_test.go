package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studies.gpkg")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE BasinStudies (
			OBJECTID INTEGER PRIMARY KEY AUTOINCREMENT,
			Name TEXT,
			Milestone TEXT,
			Task_Num TEXT,
			Shape BLOB
		);
		INSERT INTO BasinStudies (Name, Milestone, Task_Num) VALUES
			('Cape Fear Basin', '99', '99'),
			('Cashie Basin', '99', '99'),
			(NULL, NULL, NULL);
	`)
	require.NoError(t, err)
	return path
}

func openDataset(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gpkg")

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "Open must not create the dataset")
}

func TestOpenPathWithURIDelimiters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "q?dir#1")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "d.gpkg")

	source, err := dsn(path, "rwc")
	require.NoError(t, err)
	assert.Contains(t, source, "q%3Fdir%231/d.gpkg?mode=rwc")

	db, err := sql.Open("sqlite3", source)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE RAS2D (OBJECTID INTEGER PRIMARY KEY, HUC10 TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = os.Stat(path)
	require.NoError(t, err, "dataset must be created under the escaped directory")

	s := openDataset(t, path)
	ok, err := s.Exists(context.Background(), "RAS2D")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, path, s.Path())
}

func TestExists(t *testing.T) {
	s := openDataset(t, newDataset(t))
	ctx := context.Background()

	ok, err := s.Exists(ctx, "BasinStudies")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "basinstudies")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "RAS2D")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFields(t *testing.T) {
	s := openDataset(t, newDataset(t))

	fields, err := s.ListFields(context.Background(), "BasinStudies")
	require.NoError(t, err)
	require.Len(t, fields, 5)

	assert.Equal(t, FieldDescriptor{Name: "OBJECTID", Type: "INTEGER", PrimaryKey: true}, fields[0])
	assert.Equal(t, "Name", fields[1].Name)
	assert.Equal(t, "TEXT", fields[1].Type)
	assert.Equal(t, "Shape", fields[4].Name)
}

func TestAddAndEnsureField(t *testing.T) {
	s := openDataset(t, newDataset(t))
	ctx := context.Background()

	require.NoError(t, s.AddField(ctx, "BasinStudies", "Status_20210105", FieldShort))

	fields, err := s.ListFields(ctx, "BasinStudies")
	require.NoError(t, err)
	last := fields[len(fields)-1]
	assert.Equal(t, "Status_20210105", last.Name)
	assert.Equal(t, "SMALLINT", last.Type)

	// A second add fails in the store; EnsureField treats it as done.
	assert.Error(t, s.AddField(ctx, "BasinStudies", "Status_20210105", FieldShort))

	added, err := s.EnsureField(ctx, "BasinStudies", "status_20210105", FieldShort)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.EnsureField(ctx, "BasinStudies", "Status_20211225", FieldShort)
	require.NoError(t, err)
	assert.True(t, added)

	assert.Error(t, s.AddField(ctx, "BasinStudies", "Notes", FieldType("BLOB")))
}

func TestUpdateCursor(t *testing.T) {
	s := openDataset(t, newDataset(t))
	ctx := context.Background()

	cur, err := s.UpdateCursor(ctx, "BasinStudies", []string{"Name", "Milestone", "Task_Num"})
	require.NoError(t, err)
	assert.Equal(t, 3, cur.Len())
	assert.Nil(t, cur.Row())

	var names []string
	for cur.Next() {
		row := cur.Row()
		names = append(names, row.String(0))
		row.Values[1] = "01"
		row.Values[2] = "05"
		require.NoError(t, cur.UpdateRow(ctx, row))
	}
	require.NoError(t, cur.Close())
	require.NoError(t, cur.Close())
	assert.False(t, cur.Next())

	assert.Equal(t, []string{"Cape Fear Basin", "Cashie Basin", ""}, names)

	rows, err := s.db.Query(`SELECT Milestone, Task_Num FROM BasinStudies ORDER BY OBJECTID`)
	require.NoError(t, err)
	defer rows.Close()
	n := 0
	for rows.Next() {
		var m, task string
		require.NoError(t, rows.Scan(&m, &task))
		assert.Equal(t, "01", m)
		assert.Equal(t, "05", task)
		n++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 3, n)
}

func TestUpdateCursorShortIntoSmallint(t *testing.T) {
	s := openDataset(t, newDataset(t))
	ctx := context.Background()
	require.NoError(t, s.AddField(ctx, "BasinStudies", "Status_20210105", FieldShort))

	cur, err := s.UpdateCursor(ctx, "BasinStudies", []string{"Status_20210105"})
	require.NoError(t, err)
	defer cur.Close()

	require.True(t, cur.Next())
	row := cur.Row()
	row.Values[0] = "05"
	require.NoError(t, cur.UpdateRow(ctx, row))
	require.NoError(t, cur.Close())

	var v int
	require.NoError(t, s.db.QueryRow(`SELECT Status_20210105 FROM BasinStudies WHERE OBJECTID = 1`).Scan(&v))
	assert.Equal(t, 5, v)
}

func TestUpdateCursorErrors(t *testing.T) {
	s := openDataset(t, newDataset(t))
	ctx := context.Background()

	_, err := s.UpdateCursor(ctx, "BasinStudies", nil)
	assert.Error(t, err)

	_, err = s.UpdateCursor(ctx, "BasinStudies", []string{"NoSuchField"})
	assert.Error(t, err)

	cur, err := s.UpdateCursor(ctx, "BasinStudies", []string{"Name", "Milestone"})
	require.NoError(t, err)
	require.True(t, cur.Next())
	row := cur.Row()
	row.Values = row.Values[:1]
	assert.Error(t, cur.UpdateRow(ctx, row))

	require.NoError(t, cur.Close())
	assert.Error(t, cur.UpdateRow(ctx, &Row{Values: []any{"x", "y"}}))
}

func TestUpdateRowHonoursContext(t *testing.T) {
	s := openDataset(t, newDataset(t))

	cur, err := s.UpdateCursor(context.Background(), "BasinStudies", []string{"Milestone"})
	require.NoError(t, err)
	defer cur.Close()

	require.True(t, cur.Next())
	row := cur.Row()
	row.Values[0] = "07"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cur.UpdateRow(ctx, row), context.Canceled)
	require.NoError(t, cur.UpdateRow(context.Background(), row))
	require.NoError(t, cur.Close())

	var v string
	require.NoError(t, s.db.QueryRow(`SELECT Milestone FROM BasinStudies WHERE OBJECTID = 1`).Scan(&v))
	assert.Equal(t, "07", v)
}
