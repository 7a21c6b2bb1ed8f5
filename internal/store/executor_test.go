package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/metrics"
	"github.com/mitalikawde11/LightBnB/internal/query"
)

func TestSearchPropertiesMapsRows(t *testing.T) {
	rows := &fakeRows{data: [][]any{
		propertyRow(1, "Vancouver", 10050, ptr(4.5)),
		propertyRow(2, "Vancouver", 25000, nil),
	}}
	db := &fakeQuerier{rows: rows}
	exec := NewExecutor(db)

	q := query.CompiledQuery{Text: "SELECT 1", Params: []any{"%Van%", 10}}
	got, err := exec.SearchProperties(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].CostPerNight != 100.5 {
		t.Fatalf("expected 100.5 dollars, got %v", got[0].CostPerNight)
	}
	if got[0].AverageRating == nil || *got[0].AverageRating != 4.5 {
		t.Fatalf("expected average 4.5, got %v", got[0].AverageRating)
	}
	if got[1].AverageRating != nil {
		t.Fatalf("expected nil average for unreviewed property, got %v", *got[1].AverageRating)
	}
	if got[1].City != "Vancouver" || !got[1].Active || got[1].NumberOfBedrooms != 3 {
		t.Fatalf("unexpected mapping: %+v", got[1])
	}
	if db.lastSQL != q.Text || len(db.args) != 2 {
		t.Fatalf("query not forwarded: %q %v", db.lastSQL, db.args)
	}
	if !rows.closed {
		t.Fatal("rows were not closed")
	}
}

func TestSearchPropertiesEmptyIsNotNil(t *testing.T) {
	exec := NewExecutor(&fakeQuerier{})

	got, err := exec.SearchProperties(context.Background(), query.CompiledQuery{Text: "SELECT 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestExecutorFailures(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "properties" does not exist`}
	boom := errors.New("connection reset")

	tests := []struct {
		name     string
		db       *fakeQuerier
		wantCode string
		cause    error
	}{
		{"query error with sqlstate", &fakeQuerier{err: pgErr}, "42P01", pgErr},
		{"query error without sqlstate", &fakeQuerier{err: boom}, "", boom},
		{"iteration error", &fakeQuerier{rows: &fakeRows{iterErr: boom}}, "", boom},
		{"scan error", &fakeQuerier{rows: &fakeRows{
			data:    [][]any{propertyRow(1, "X", 1, nil)},
			scanErr: boom,
		}}, "", boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := NewExecutor(tt.db)
			got, err := exec.SearchProperties(context.Background(), query.CompiledQuery{Text: "SELECT 1"})
			if err == nil {
				t.Fatal("expected error")
			}
			if got != nil {
				t.Fatalf("expected no records on failure, got %v", got)
			}
			if !errors.Is(err, domain.ErrQueryFailed) {
				t.Fatalf("expected ErrQueryFailed, got %v", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("expected cause %v to be wrapped, got %v", tt.cause, err)
			}
			var qf *domain.QueryFailedError
			if !errors.As(err, &qf) {
				t.Fatalf("expected *QueryFailedError, got %T", err)
			}
			if qf.Code != tt.wantCode || qf.Op != "search_properties" {
				t.Fatalf("unexpected op/code: %q %q", qf.Op, qf.Code)
			}
		})
	}
}

func TestExecutorCountsFailures(t *testing.T) {
	code := "57014"
	counter := metrics.QueryErrors.WithLabelValues("search_properties", code)
	before := testutil.ToFloat64(counter)

	exec := NewExecutor(&fakeQuerier{err: &pgconn.PgError{Code: code}})
	if _, err := exec.SearchProperties(context.Background(), query.CompiledQuery{Text: "SELECT 1"}); err == nil {
		t.Fatal("expected error")
	}

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected error counter to grow by 1, grew by %v", got)
	}
}

func TestCount(t *testing.T) {
	exec := NewExecutor(&fakeQuerier{rows: &fakeRows{data: [][]any{{int64(42)}}}})

	n, err := exec.Count(context.Background(), query.CompiledQuery{Text: "SELECT count(*)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

func TestQueryOneNotFound(t *testing.T) {
	exec := NewExecutor(&fakeQuerier{})

	err := exec.QueryOne(context.Background(), "probe", query.CompiledQuery{Text: "SELECT 1"}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, domain.ErrQueryFailed) {
		t.Fatal("not found must not be reported as a query failure")
	}
}

func TestExecutorRunsCompiledSearch(t *testing.T) {
	city := "Van"
	q, err := query.Compile(query.FilterCriteria{City: &city}, query.DefaultLimit)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	db := &fakeQuerier{}
	if _, err := NewExecutor(db).SearchProperties(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.calls != 1 || db.lastSQL != q.Text {
		t.Fatalf("expected one call with compiled text, got %d %q", db.calls, db.lastSQL)
	}
	if len(db.args) != 2 || db.args[0] != "%Van%" {
		t.Fatalf("unexpected args: %v", db.args)
	}
}
