package query

import (
	"fmt"

	"github.com/mitalikawde11/LightBnB/internal/schema"
)

// Key names a filter the search understands.
type Key string

const (
	KeyCity      Key = "city"
	KeyOwnerID   Key = "owner_id"
	KeyMinPrice  Key = "minimum_price_per_night"
	KeyMaxPrice  Key = "maximum_price_per_night"
	KeyMinRating Key = "minimum_rating"
)

// Phase says whether a predicate filters rows before grouping (WHERE)
// or groups after aggregation (HAVING).
type Phase int

const (
	PreAggregate Phase = iota
	PostAggregate
)

func (p Phase) String() string {
	switch p {
	case PreAggregate:
		return "pre-aggregate"
	case PostAggregate:
		return "post-aggregate"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

const (
	propAlias   = "p"
	reviewAlias = "r"
)

// PredicateSpec describes how one filter key shapes the search query.
// Clause holds exactly one "?" placeholder; Bind converts the criteria
// value into the argument bound to it.
type PredicateSpec struct {
	Key    Key
	Phase  Phase
	Clause string
	Bind   func(v any) (any, error)
}

// catalog is ordered; that order is the order predicates are emitted in.
var catalog = []PredicateSpec{
	{
		Key:    KeyCity,
		Phase:  PreAggregate,
		Clause: fragment(schema.Col(propAlias, "city"), OpLike),
		Bind:   bindCity,
	},
	{
		Key:    KeyOwnerID,
		Phase:  PreAggregate,
		Clause: fragment(schema.Col(propAlias, "owner_id"), OpEq),
		Bind:   bindOwnerID,
	},
	{
		Key:    KeyMinPrice,
		Phase:  PreAggregate,
		Clause: fragment(schema.Col(propAlias, "cost_per_night"), OpGte),
		Bind:   bindCents,
	},
	{
		Key:    KeyMaxPrice,
		Phase:  PreAggregate,
		Clause: fragment(schema.Col(propAlias, "cost_per_night"), OpLte),
		Bind:   bindCents,
	},
	{
		Key:    KeyMinRating,
		Phase:  PostAggregate,
		Clause: fragment(AverageRatingExpr(reviewAlias), OpGte),
		Bind:   bindRating,
	},
}

var catalogByKey = func() map[Key]PredicateSpec {
	m := make(map[Key]PredicateSpec, len(catalog))
	for _, spec := range catalog {
		m[spec.Key] = spec
	}
	return m
}()

// Lookup returns the predicate registered for key.
func Lookup(key Key) (PredicateSpec, bool) {
	spec, ok := catalogByKey[key]
	return spec, ok
}

// Keys returns every known key in emission order.
func Keys() []Key {
	keys := make([]Key, len(catalog))
	for i, spec := range catalog {
		keys[i] = spec.Key
	}
	return keys
}

func bindCity(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	return containsPattern(s), nil
}

func bindOwnerID(v any) (any, error) {
	id, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("expected int64, got %T", v)
	}
	return id, nil
}

func bindCents(v any) (any, error) {
	m, ok := v.(Money)
	if !ok {
		return nil, fmt.Errorf("expected Money, got %T", v)
	}
	return m.Cents(), nil
}

func bindRating(v any) (any, error) {
	r, ok := v.(Rating)
	if !ok {
		return nil, fmt.Errorf("expected Rating, got %T", v)
	}
	return float64(r), nil
}
