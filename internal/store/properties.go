package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/schema"
)

type Properties struct {
	exec *Executor
}

func NewProperties(exec *Executor) *Properties {
	return &Properties{exec: exec}
}

// Create inserts a property. The price is given in dollars and stored in cents.
func (r *Properties) Create(ctx context.Context, p domain.NewProperty) (*domain.Property, error) {
	if err := checkInput(p); err != nil {
		return nil, err
	}

	returning := make([]string, len(schema.Properties.Columns))
	for i, c := range schema.Properties.Columns {
		returning[i] = schema.QuoteIdent(c)
	}

	q, err := compile(psql.Insert(schema.Properties.Ident()).
		Columns(
			"owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
			"cost_per_night", "street", "city", "province", "post_code", "country",
			"parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
		).
		Values(
			p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
			query.Money(p.CostPerNight).Cents(), p.Street, p.City, p.Province, p.PostCode, p.Country,
			p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		).
		Suffix("RETURNING " + strings.Join(returning, ", ")))
	if err != nil {
		return nil, err
	}

	var out domain.Property
	if err := r.exec.QueryOne(ctx, "create_property", q, func(row pgx.Row) error {
		return scanProperty(row, &out)
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Properties) Search(ctx context.Context, q query.CompiledQuery) ([]domain.PropertyRecord, error) {
	return r.exec.SearchProperties(ctx, q)
}

func (r *Properties) Count(ctx context.Context, q query.CompiledQuery) (int64, error) {
	return r.exec.Count(ctx, q)
}
