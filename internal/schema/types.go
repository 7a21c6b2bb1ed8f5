package schema

import (
	"strings"
)

// QuoteIdent quotes a SQL identifier, escaping embedded double quotes.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Col returns alias.column with both parts quoted.
func Col(alias, column string) string {
	return QuoteIdent(alias) + "." + QuoteIdent(column)
}

// Table describes one relation of the LightBnB schema.
type Table struct {
	Name    string
	Columns []string
}

// Ident returns the quoted table name.
func (t Table) Ident() string {
	return QuoteIdent(t.Name)
}

// As returns the table reference with an alias, e.g. "properties" "p".
func (t Table) As(alias string) string {
	return t.Ident() + " " + QuoteIdent(alias)
}

// Cols returns every column of t, qualified by alias.
func (t Table) Cols(alias string) []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Col(alias, c)
	}
	return cols
}

var (
	Users = Table{
		Name:    "users",
		Columns: []string{"id", "name", "email", "password"},
	}

	// Properties lists columns in the order the store scans them.
	// cost_per_night is stored in cents.
	Properties = Table{
		Name: "properties",
		Columns: []string{
			"id", "owner_id", "title", "description",
			"thumbnail_photo_url", "cover_photo_url", "cost_per_night",
			"parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
			"country", "street", "city", "province", "post_code", "active",
		},
	}

	Reservations = Table{
		Name:    "reservations",
		Columns: []string{"id", "start_date", "end_date", "property_id", "guest_id"},
	}

	PropertyReviews = Table{
		Name:    "property_reviews",
		Columns: []string{"id", "guest_id", "property_id", "reservation_id", "rating", "message"},
	}
)
