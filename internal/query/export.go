package query

import (
	"fmt"

	"github.com/mitalikawde11/LightBnB/internal/schema"
)

// AverageRatingExpr is the rounded average of the reviews joined as alias.
func AverageRatingExpr(alias string) string {
	return fmt.Sprintf(`ROUND(AVG(%s), 1)`, schema.Col(alias, "rating"))
}

// PropertyColumns returns the property columns in scan order, followed by
// the average_rating aggregate over reviews joined as reviewAlias.
func PropertyColumns(alias, reviewAlias string) []string {
	cols := schema.Properties.Cols(alias)
	return append(cols, AverageRatingExpr(reviewAlias)+` AS "average_rating"`)
}

// ReviewJoin returns the LEFT JOIN target attaching reviews to properties.
func ReviewJoin(propAlias, reviewAlias string) string {
	return fmt.Sprintf(`%s ON %s = %s`,
		schema.PropertyReviews.As(reviewAlias),
		schema.Col(reviewAlias, "property_id"),
		schema.Col(propAlias, "id"))
}
