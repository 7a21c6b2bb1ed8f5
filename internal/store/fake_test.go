package store

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows serves fixed values through the pgx.Rows interface. Scan
// assigns each value to its destination with reflection.
type fakeRows struct {
	data    [][]any
	pos     int
	scanErr error
	iterErr error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.iterErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		v := reflect.ValueOf(row[i])
		if !v.Type().ConvertibleTo(dv.Type()) {
			return fmt.Errorf("scan column %d: cannot assign %T to %s", i, row[i], dv.Type())
		}
		dv.Set(v.Convert(dv.Type()))
	}
	return nil
}

// fakeQuerier records the last statement and returns canned rows or an error.
type fakeQuerier struct {
	rows    *fakeRows
	err     error
	lastSQL string
	args    []any
	calls   int
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls++
	q.lastSQL = sql
	q.args = args
	if q.err != nil {
		return nil, q.err
	}
	if q.rows == nil {
		return &fakeRows{}, nil
	}
	return q.rows, nil
}

func ptr[T any](v T) *T { return &v }

// propertyRow returns the scan columns of one search row.
func propertyRow(id int64, city string, cents int64, avg *float64) []any {
	return []any{
		id, int64(1), "Title", "Desc",
		"http://thumb", "http://cover", cents,
		int32(2), int32(1), int32(3),
		"Canada", "Main St", city, "BC", "V5K", true,
		avg,
	}
}
