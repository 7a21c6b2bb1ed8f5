package query

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mitalikawde11/LightBnB/internal/domain"
)

// MaxLimit caps limits parsed from user input.
const MaxLimit = 200

// ParseCriteria builds FilterCriteria from raw key/value pairs, such as
// query-string parameters or command-line flags. Only keys present in
// values become constraints; unknown keys are rejected.
func ParseCriteria(values map[string]string) (FilterCriteria, error) {
	var c FilterCriteria

	for _, raw := range slices.Sorted(maps.Keys(values)) {
		key := Key(raw)
		if _, ok := Lookup(key); !ok {
			return FilterCriteria{}, domain.InvalidCriteria(raw, "unknown filter key")
		}

		value := strings.TrimSpace(values[raw])
		switch key {
		case KeyCity:
			c.City = &value
		case KeyOwnerID:
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return FilterCriteria{}, domain.InvalidCriteria(raw, "invalid id %q", value)
			}
			c.OwnerID = &id
		case KeyMinPrice, KeyMaxPrice:
			f, err := parseFinite(value)
			if err != nil {
				return FilterCriteria{}, domain.InvalidCriteria(raw, "invalid amount %q", value)
			}
			m := Money(f)
			if key == KeyMinPrice {
				c.MinPricePerNight = &m
			} else {
				c.MaxPricePerNight = &m
			}
		case KeyMinRating:
			f, err := parseFinite(value)
			if err != nil {
				return FilterCriteria{}, domain.InvalidCriteria(raw, "invalid rating %q", value)
			}
			r := Rating(f)
			c.MinAverageRating = &r
		}
	}

	if err := c.Validate(); err != nil {
		return FilterCriteria{}, err
	}
	return c, nil
}

// ParseLimit parses a page size. Empty input yields DefaultLimit and
// values above MaxLimit are capped.
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.InvalidCriteria("limit", "invalid limit %q", raw)
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	return n, nil
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
