// Package querysql compiles queryir queries to parameterized SQLite SQL.
package querysql

import (
	"fmt"
	"strings"

	"github.com/roach88/registrar/internal/queryir"
)

// orderKey is appended to every compiled read so list results are stable.
const orderKey = "id ASC"

// Compile converts a queryir query to parameterized SQL.
// Returns (sql, params, error).
//
// The query is validated first. Values are never interpolated; every read
// ends with ORDER BY id ASC followed by LIMIT/OFFSET when paging is requested.
func Compile(q queryir.Query) (string, []any, error) {
	if err := queryir.Validate(q).Err(); err != nil {
		return "", nil, err
	}

	switch query := q.(type) {
	case queryir.Select:
		return compileSelect(query)
	default:
		return "", nil, fmt.Errorf("unsupported query type: %T", q)
	}
}

func compileSelect(q queryir.Select) (string, []any, error) {
	var b strings.Builder
	var params []any

	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(q.Columns, ", "), q.From)

	if q.Filter != nil {
		where, whereParams, err := compilePredicate(q.Filter)
		if err != nil {
			return "", nil, fmt.Errorf("compile filter: %w", err)
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
		params = append(params, whereParams...)
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(orderKey)

	switch {
	case q.Limit > 0:
		b.WriteString(" LIMIT ? OFFSET ?")
		params = append(params, q.Limit, q.Offset)
	case q.Offset > 0:
		// SQLite requires a LIMIT before OFFSET; -1 means unbounded.
		b.WriteString(" LIMIT -1 OFFSET ?")
		params = append(params, q.Offset)
	}

	return b.String(), params, nil
}

func compilePredicate(p queryir.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "1 = 1", nil, nil
	case queryir.Equals:
		return compileEquals(pred)
	case queryir.And:
		return compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileEquals(eq queryir.Equals) (string, []any, error) {
	param := eq.Value
	if v, ok := param.(int); ok {
		param = int64(v)
	}
	return eq.Field + " = ?", []any{param}, nil
}

func compileAnd(and queryir.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil
	}

	parts := make([]string, 0, len(and.Predicates))
	var params []any
	for _, pred := range and.Predicates {
		sql, predParams, err := compilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, predParams...)
	}

	return strings.Join(parts, " AND "), params, nil
}
