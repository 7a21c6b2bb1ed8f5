package query

import (
	"errors"
	"math"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/validation"
)

// Money is an amount in dollars. The store keeps prices in cents.
type Money float64

// Cents converts m to the store's minor units, rounding to the nearest cent.
func (m Money) Cents() int64 {
	return int64(math.Round(float64(m) * 100))
}

// MoneyFromCents converts a stored amount back to dollars.
func MoneyFromCents(cents int64) Money {
	return Money(cents) / 100
}

// Rating is a review score between 0 and 5.
type Rating float64

// FilterCriteria is the sparse set of search constraints. A nil field
// means "no constraint"; a non-nil zero value is a real constraint.
type FilterCriteria struct {
	City             *string `json:"city,omitempty" validate:"omitempty,max=255"`
	OwnerID          *int64  `json:"owner_id,omitempty" validate:"omitempty,gt=0"`
	MinPricePerNight *Money  `json:"minimum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=21474836"`
	MaxPricePerNight *Money  `json:"maximum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=21474836"`
	MinAverageRating *Rating `json:"minimum_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// Filter is one present criterion.
type Filter struct {
	Key   Key
	Value any
}

// Present returns the constraints that are set, in catalog key order.
func (c FilterCriteria) Present() []Filter {
	var filters []Filter
	if c.City != nil {
		filters = append(filters, Filter{Key: KeyCity, Value: *c.City})
	}
	if c.OwnerID != nil {
		filters = append(filters, Filter{Key: KeyOwnerID, Value: *c.OwnerID})
	}
	if c.MinPricePerNight != nil {
		filters = append(filters, Filter{Key: KeyMinPrice, Value: *c.MinPricePerNight})
	}
	if c.MaxPricePerNight != nil {
		filters = append(filters, Filter{Key: KeyMaxPrice, Value: *c.MaxPricePerNight})
	}
	if c.MinAverageRating != nil {
		filters = append(filters, Filter{Key: KeyMinRating, Value: *c.MinAverageRating})
	}
	return filters
}

// Validate checks field constraints and the price range ordering.
func (c FilterCriteria) Validate() error {
	if err := validation.Struct(c); err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) && len(ve) > 0 {
			return &domain.InvalidCriteriaError{Key: ve[0].Field, Reason: ve.Error()}
		}
		return domain.InvalidCriteria("", "%v", err)
	}
	if c.MinPricePerNight != nil && c.MaxPricePerNight != nil && *c.MinPricePerNight > *c.MaxPricePerNight {
		return domain.InvalidCriteria(string(KeyMinPrice),
			"minimum %.2f is greater than maximum %.2f", float64(*c.MinPricePerNight), float64(*c.MaxPricePerNight))
	}
	return nil
}
