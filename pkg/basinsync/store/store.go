// Package store provides the feature table access used by the updater.
// Datasets are SQLite files; GeoPackages qualify, since their feature tables are
// ordinary SQLite tables with an integer primary key.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// FieldType names a field type the way the GIS tools do.
type FieldType string

const (
	FieldShort  FieldType = "SHORT"
	FieldLong   FieldType = "LONG"
	FieldText   FieldType = "TEXT"
	FieldDouble FieldType = "DOUBLE"
)

var sqlTypes = map[FieldType]string{
	FieldShort:  "SMALLINT",
	FieldLong:   "INTEGER",
	FieldText:   "TEXT",
	FieldDouble: "REAL",
}

// FieldDescriptor describes one field of a table.
type FieldDescriptor struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// Store is an open dataset.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens an existing dataset for update. It never creates a missing file;
// the returned error wraps os.ErrNotExist in that case.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	source, err := dsn(path, "rw")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping dataset: %w", err)
	}

	// One writer at a time; the update cursor holds the only connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db, path: path}, nil
}

// dsn builds a SQLite URI for path. The path is made absolute and escaped so that
// characters such as '?' and '#' stay part of the file name.
func dsn(path, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{
		Scheme:   "file",
		Path:     p,
		RawQuery: "mode=" + mode + "&_busy_timeout=5000",
	}
	return u.String(), nil
}

// Path returns the dataset location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the dataset.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Exists reports whether a table or view named table exists. Names compare case-insensitively.
func (s *Store) Exists(ctx context.Context, table string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ? COLLATE NOCASE`,
		table).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check table %s failed: %w", table, err)
	}
	return n > 0, nil
}

// ListFields returns the fields of table in declaration order.
func (s *Store) ListFields(ctx context.Context, table string) ([]FieldDescriptor, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(table)+")")
	if err != nil {
		return nil, fmt.Errorf("list fields of %s failed: %w", table, err)
	}
	defer rows.Close()

	var out []FieldDescriptor
	for rows.Next() {
		var (
			cid     int
			fd      FieldDescriptor
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &fd.Name, &fd.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan fields of %s failed: %w", table, err)
		}
		fd.NotNull = notNull != 0
		fd.PrimaryKey = pk != 0
		out = append(out, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields of %s failed: %w", table, err)
	}
	return out, nil
}

// HasField reports whether table has a field named name, ignoring case.
func (s *Store) HasField(ctx context.Context, table, name string) (bool, error) {
	fields, err := s.ListFields(ctx, table)
	if err != nil {
		return false, err
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// AddField adds a nullable field to table.
func (s *Store) AddField(ctx context.Context, table, name string, typ FieldType) error {
	sqlType, ok := sqlTypes[typ]
	if !ok {
		return fmt.Errorf("unsupported field type %q", typ)
	}
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quoteIdent(table), quoteIdent(name), sqlType)
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("add field %s to %s failed: %w", name, table, err)
	}
	return nil
}

// EnsureField adds the field unless it already exists. It reports whether the field was added.
func (s *Store) EnsureField(ctx context.Context, table, name string, typ FieldType) (bool, error) {
	exists, err := s.HasField(ctx, table, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.AddField(ctx, table, name, typ); err != nil {
		return false, err
	}
	return true, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
