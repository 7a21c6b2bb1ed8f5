// Package store runs compiled queries against PostgreSQL and maps rows
// onto domain records.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/logging"
	"github.com/mitalikawde11/LightBnB/internal/metrics"
	"github.com/mitalikawde11/LightBnB/internal/query"
)

// Querier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Executor runs compiled queries. Every store-side failure comes back as
// a *domain.QueryFailedError; an empty result is never used to signal one.
type Executor struct {
	db Querier
}

func NewExecutor(db Querier) *Executor {
	return &Executor{db: db}
}

// Query runs q and calls scan once per row.
func (e *Executor) Query(ctx context.Context, op string, q query.CompiledQuery, scan func(pgx.Rows) error) error {
	start := time.Now()
	defer metrics.ObserveQuery(op, start)

	rows, err := e.db.Query(ctx, q.Text, q.Params...)
	if err != nil {
		return e.fail(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return e.fail(ctx, op, fmt.Errorf("scan row: %w", err))
		}
	}
	if err := rows.Err(); err != nil {
		return e.fail(ctx, op, err)
	}
	return nil
}

// QueryOne runs q and scans its first row. It returns domain.ErrNotFound
// when the query yields no rows.
func (e *Executor) QueryOne(ctx context.Context, op string, q query.CompiledQuery, scan func(pgx.Row) error) error {
	found := false
	err := e.Query(ctx, op, q, func(rows pgx.Rows) error {
		if found {
			return nil
		}
		found = true
		return scan(rows)
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// Count runs a single-value count query.
func (e *Executor) Count(ctx context.Context, q query.CompiledQuery) (int64, error) {
	var n int64
	err := e.QueryOne(ctx, "count_properties", q, func(row pgx.Row) error {
		return row.Scan(&n)
	})
	return n, err
}

// SearchProperties runs a compiled property search. The result is empty,
// not nil, when nothing matches.
func (e *Executor) SearchProperties(ctx context.Context, q query.CompiledQuery) ([]domain.PropertyRecord, error) {
	start := time.Now()
	records := make([]domain.PropertyRecord, 0)

	err := e.Query(ctx, "search_properties", q, func(rows pgx.Rows) error {
		rec, err := scanPropertyRecord(rows)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SearchResults.Observe(float64(len(records)))
	logging.Ctx(ctx).Debug().
		Int("rows", len(records)).
		Dur("duration", time.Since(start)).
		Msg("property search")
	return records, nil
}

func (e *Executor) fail(ctx context.Context, op string, err error) error {
	var code string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code = pgErr.Code
	}

	metrics.RecordQueryError(op, code)
	logging.Ctx(ctx).Error().
		Err(err).
		Str("operation", op).
		Str("sqlstate", code).
		Msg("query failed")

	return &domain.QueryFailedError{Op: op, Code: code, Cause: err}
}

// scanProperty reads the property columns in schema.Properties order
// into dest, converting cost_per_night from cents to dollars.
func scanProperty(row pgx.Row, dest *domain.Property, extra ...any) error {
	var cents int64
	targets := []any{
		&dest.ID, &dest.OwnerID, &dest.Title, &dest.Description,
		&dest.ThumbnailPhotoURL, &dest.CoverPhotoURL, &cents,
		&dest.ParkingSpaces, &dest.NumberOfBathrooms, &dest.NumberOfBedrooms,
		&dest.Country, &dest.Street, &dest.City, &dest.Province, &dest.PostCode, &dest.Active,
	}
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return err
	}
	dest.CostPerNight = float64(query.MoneyFromCents(cents))
	return nil
}

func scanPropertyRecord(row pgx.Row) (domain.PropertyRecord, error) {
	var rec domain.PropertyRecord
	err := scanProperty(row, &rec.Property, &rec.AverageRating)
	return rec, err
}
