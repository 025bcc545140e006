package store

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubRow is a pgx.Row whose Scan fills dest from vals, or fails with err.
type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

// stubRows is a pgx.Rows serving a fixed set of rows.
type stubRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	return assign(dest, r.rows[r.idx-1])
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return r.err }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("assign: %d dest, %d vals", len(dest), len(vals))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = vals[i].(int)
		case *string:
			*d = vals[i].(string)
		case *bool:
			*d = vals[i].(bool)
		default:
			return fmt.Errorf("assign: unsupported dest %T", dest[i])
		}
	}
	return nil
}

func cafeRow(id int, name string) []any {
	return []any{
		id, name, "desc", "https://example.com", "1 Main St", "sf", "/static/maps/1.jpg",
		"sf", "San Francisco", "CA",
	}
}
