package store

import (
	"context"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/query"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u domain.NewUser) (*domain.User, error)
}

type ReservationRepository interface {
	// ListForGuest returns the guest's reservations ordered by start date.
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, p domain.NewProperty) (*domain.Property, error)
	Search(ctx context.Context, q query.CompiledQuery) ([]domain.PropertyRecord, error)
	Count(ctx context.Context, q query.CompiledQuery) (int64, error)
}
