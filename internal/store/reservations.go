package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/schema"
)

const (
	reservationAlias = "res"
	propertyAlias    = "p"
	reviewAlias      = "r"
)

type Reservations struct {
	exec *Executor
}

func NewReservations(exec *Executor) *Reservations {
	return &Reservations{exec: exec}
}

// ListForGuest returns up to limit reservations of guestID, earliest
// first, each with its property and the property's average rating.
func (r *Reservations) ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error) {
	if limit < 1 {
		return nil, domain.InvalidCriteria("limit", "must be a positive integer, got %d", limit)
	}

	cols := schema.Reservations.Cols(reservationAlias)
	cols = append(cols, query.PropertyColumns(propertyAlias, reviewAlias)...)

	q, err := compile(psql.Select(cols...).
		From(schema.Reservations.As(reservationAlias)).
		Join(schema.Properties.As(propertyAlias) + " ON " +
			schema.Col(propertyAlias, "id") + " = " + schema.Col(reservationAlias, "property_id")).
		LeftJoin(query.ReviewJoin(propertyAlias, reviewAlias)).
		Where(sq.Eq{schema.Col(reservationAlias, "guest_id"): guestID}).
		GroupBy(schema.Col(propertyAlias, "id"), schema.Col(reservationAlias, "id")).
		OrderBy(
			schema.Col(reservationAlias, "start_date")+" ASC",
			schema.Col(reservationAlias, "id")+" ASC",
		).
		Suffix("LIMIT ?", limit))
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReservationWithProperty, 0)
	err = r.exec.Query(ctx, "list_guest_reservations", q, func(rows pgx.Rows) error {
		var item domain.ReservationWithProperty
		res := &item.Reservation
		var cents int64
		prop := &item.Property
		err := rows.Scan(
			&res.ID, &res.StartDate, &res.EndDate, &res.PropertyID, &res.GuestID,
			&prop.ID, &prop.OwnerID, &prop.Title, &prop.Description,
			&prop.ThumbnailPhotoURL, &prop.CoverPhotoURL, &cents,
			&prop.ParkingSpaces, &prop.NumberOfBathrooms, &prop.NumberOfBedrooms,
			&prop.Country, &prop.Street, &prop.City, &prop.Province, &prop.PostCode, &prop.Active,
			&prop.AverageRating,
		)
		if err != nil {
			return err
		}
		prop.CostPerNight = float64(query.MoneyFromCents(cents))
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
