package query

import (
	"fmt"
	"strings"
)

type FilterOp string

const (
	OpEq    FilterOp = "eq"
	OpGte   FilterOp = "gte"
	OpLte   FilterOp = "lte"
	OpLike  FilterOp = "like"
	OpIlike FilterOp = "ilike"
)

// SQLOp returns the SQL operator string for a FilterOp.
func SQLOp(op FilterOp) string {
	switch op {
	case OpEq:
		return "="
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpLike:
		return "LIKE"
	case OpIlike:
		return "ILIKE"
	default:
		return "="
	}
}

// fragment renders "expr op ?" with a single placeholder.
func fragment(expr string, op FilterOp) string {
	return fmt.Sprintf(`%s %s ?`, expr, SQLOp(op))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching s anywhere in the value.
// LIKE metacharacters in s are escaped so they match literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
