package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/schema"
)

// DefaultLimit is the page size used when the caller does not pick one.
const DefaultLimit = 10

// CompiledQuery is query text with its positional arguments. Placeholders
// are $1..$N in order of appearance and N == len(Params).
type CompiledQuery struct {
	Text   string
	Params []any
}

// Builder generates property search SQL from filter criteria.
type Builder interface {
	BuildSearch(criteria FilterCriteria, limit int) (CompiledQuery, error)
	// BuildCount returns the number of properties matching criteria, ignoring the limit.
	BuildCount(criteria FilterCriteria) (CompiledQuery, error)
}

// SearchBuilder folds present criteria over the predicate catalog.
type SearchBuilder struct{}

// NewBuilder returns the property search builder.
func NewBuilder() Builder {
	return &SearchBuilder{}
}

// Compile is shorthand for NewBuilder().BuildSearch.
func Compile(criteria FilterCriteria, limit int) (CompiledQuery, error) {
	return NewBuilder().BuildSearch(criteria, limit)
}

func (b *SearchBuilder) BuildSearch(criteria FilterCriteria, limit int) (CompiledQuery, error) {
	if limit < 1 {
		return CompiledQuery{}, domain.InvalidCriteria("limit", "must be a positive integer, got %d", limit)
	}

	qb, err := filteredSelect(criteria, PropertyColumns(propAlias, reviewAlias)...)
	if err != nil {
		return CompiledQuery{}, err
	}

	qb = qb.OrderBy(
		schema.Col(propAlias, "cost_per_night")+" ASC",
		schema.Col(propAlias, "id")+" ASC",
	)
	qb = qb.Suffix("LIMIT ?", limit)

	return toCompiled(qb.PlaceholderFormat(sq.Dollar))
}

func (b *SearchBuilder) BuildCount(criteria FilterCriteria) (CompiledQuery, error) {
	inner, err := filteredSelect(criteria, schema.Col(propAlias, "id"))
	if err != nil {
		return CompiledQuery{}, err
	}

	// The inner select keeps the default "?" format; the outer one numbers
	// placeholders across the whole statement.
	qb := sq.Select("count(*)").
		FromSelect(inner, "matches").
		PlaceholderFormat(sq.Dollar)

	return toCompiled(qb)
}

// filteredSelect builds SELECT columns FROM properties LEFT JOIN reviews
// with every present predicate routed to WHERE or HAVING by phase. The
// result is always grouped by property, since the average rating is an
// aggregate.
func filteredSelect(criteria FilterCriteria, columns ...string) (sq.SelectBuilder, error) {
	if err := criteria.Validate(); err != nil {
		return sq.SelectBuilder{}, err
	}

	where, having, err := partition(criteria.Present())
	if err != nil {
		return sq.SelectBuilder{}, err
	}

	qb := sq.Select(columns...).
		From(schema.Properties.As(propAlias)).
		LeftJoin(ReviewJoin(propAlias, reviewAlias))

	for _, cond := range where {
		qb = qb.Where(cond)
	}
	qb = qb.GroupBy(schema.Col(propAlias, "id"))
	for _, cond := range having {
		qb = qb.Having(cond)
	}
	return qb, nil
}

// partition binds each filter through its catalog entry and splits the
// resulting conditions by phase, preserving order.
func partition(filters []Filter) (where, having []sq.Sqlizer, err error) {
	for _, f := range filters {
		spec, ok := Lookup(f.Key)
		if !ok {
			return nil, nil, domain.InvalidCriteria(string(f.Key), "unknown filter key")
		}

		arg, err := spec.Bind(f.Value)
		if err != nil {
			return nil, nil, domain.InvalidCriteria(string(f.Key), "%v", err)
		}

		cond := sq.Expr(spec.Clause, arg)
		switch spec.Phase {
		case PreAggregate:
			where = append(where, cond)
		case PostAggregate:
			having = append(having, cond)
		default:
			return nil, nil, fmt.Errorf("predicate %q: unknown phase %s", f.Key, spec.Phase)
		}
	}
	return where, having, nil
}

func toCompiled(qb sq.SelectBuilder) (CompiledQuery, error) {
	text, args, err := qb.ToSql()
	if err != nil {
		return CompiledQuery{}, fmt.Errorf("build search query: %w", err)
	}
	if args == nil {
		args = []any{}
	}
	return CompiledQuery{Text: text, Params: args}, nil
}
