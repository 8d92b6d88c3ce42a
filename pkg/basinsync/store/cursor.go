package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Row is one record seen through an update cursor. Values are indexed by the
// position of the field in the list given to UpdateCursor.
type Row struct {
	id     int64
	Values []any
}

// String returns field i as text. NULL yields "".
func (r *Row) String(i int) string {
	switch v := r.Values[i].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Cursor iterates the records of a table and writes changed rows back.
// Each UpdateRow commits on its own, so rows written before a failure stay written.
// The cursor holds a dedicated connection until Close.
type Cursor struct {
	conn   *sql.Conn
	update string
	width  int
	rows   []*Row
	pos    int
}

// UpdateCursor opens a cursor over fields of every record in table, in rowid order.
// The caller must Close it.
func (s *Store) UpdateCursor(ctx context.Context, table string, fields []string) (*Cursor, error) {
	if len(fields) == 0 {
		return nil, errors.New("update cursor needs at least one field")
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection failed: %w", err)
	}

	quoted := make([]string, len(fields))
	sets := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteIdent(f)
		sets[i] = quoted[i] + " = ?"
	}

	rows, err := loadRows(ctx, conn,
		fmt.Sprintf("SELECT rowid, %s FROM %s ORDER BY rowid", strings.Join(quoted, ", "), quoteIdent(table)),
		len(fields))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open cursor on %s failed: %w", table, err)
	}

	return &Cursor{
		conn:   conn,
		update: fmt.Sprintf("UPDATE %s SET %s WHERE rowid = ?", quoteIdent(table), strings.Join(sets, ", ")),
		width:  len(fields),
		rows:   rows,
	}, nil
}

func loadRows(ctx context.Context, conn *sql.Conn, query string, width int) ([]*Row, error) {
	rs, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []*Row
	for rs.Next() {
		r := &Row{Values: make([]any, width)}
		dest := make([]any, width+1)
		dest[0] = &r.id
		for i := range r.Values {
			dest[i+1] = &r.Values[i]
		}
		if err := rs.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rs.Err()
}

// Next advances to the next record.
func (c *Cursor) Next() bool {
	if c.conn == nil || c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

// Row returns the current record.
func (c *Cursor) Row() *Row {
	if c.pos == 0 {
		return nil
	}
	return c.rows[c.pos-1]
}

// Len returns the number of records the cursor covers.
func (c *Cursor) Len() int {
	return len(c.rows)
}

// UpdateRow writes the values of r back to its record.
func (c *Cursor) UpdateRow(ctx context.Context, r *Row) error {
	if c.conn == nil {
		return errors.New("update on closed cursor")
	}
	if len(r.Values) != c.width {
		return fmt.Errorf("row has %d values, cursor has %d fields", len(r.Values), c.width)
	}
	args := make([]any, 0, c.width+1)
	args = append(args, r.Values...)
	args = append(args, r.id)
	if _, err := c.conn.ExecContext(ctx, c.update, args...); err != nil {
		return fmt.Errorf("update row %d failed: %w", r.id, err)
	}
	return nil
}

// Close releases the cursor's connection. It is safe to call more than once.
func (c *Cursor) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
