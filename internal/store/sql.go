package store

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/validation"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func compile(b sq.Sqlizer) (query.CompiledQuery, error) {
	text, args, err := b.ToSql()
	if err != nil {
		return query.CompiledQuery{}, fmt.Errorf("build query: %w", err)
	}
	return query.CompiledQuery{Text: text, Params: args}, nil
}

// checkInput validates write-side attributes, reporting the first failed
// field as the key of an InvalidCriteriaError.
func checkInput(v any) error {
	err := validation.Struct(v)
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &domain.InvalidCriteriaError{Key: ve[0].Field, Reason: ve.Error()}
	}
	return domain.InvalidCriteria("", "%v", err)
}
