package queryir

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidationResult lists every problem found in a query.
type ValidationResult struct {
	Problems []string
}

// OK reports whether the query has no problems.
func (r ValidationResult) OK() bool {
	return len(r.Problems) == 0
}

// Err returns nil for a valid query, otherwise one error listing all problems.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return errors.New("invalid query: " + strings.Join(r.Problems, "; "))
}

// Validate checks that a query can be compiled safely.
//
// Rules:
//  1. Table and column names are plain lower-case SQL identifiers
//  2. Columns are explicit (no SELECT *)
//  3. Offset and Limit are non-negative
//  4. Predicate values are int, int64, string or bool
//
// Validate is a pure function with no side effects.
func Validate(query Query) ValidationResult {
	v := &validator{}
	v.validateQuery(query)
	return ValidationResult{Problems: v.problems}
}

type validator struct {
	problems []string
}

func (v *validator) addProblem(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) validateQuery(q Query) {
	switch query := q.(type) {
	case nil:
		v.addProblem("nil query")
	case Select:
		v.validateSelect(query)
	default:
		v.addProblem("unknown query type %T", q)
	}
}

func (v *validator) validateSelect(sel Select) {
	v.validateIdentifier("table", sel.From)

	if len(sel.Columns) == 0 {
		v.addProblem("no columns selected")
	}
	for _, col := range sel.Columns {
		v.validateIdentifier("column", col)
	}

	if sel.Offset < 0 {
		v.addProblem("negative offset %d", sel.Offset)
	}
	if sel.Limit < 0 {
		v.addProblem("negative limit %d", sel.Limit)
	}

	if sel.Filter != nil {
		v.validatePredicate(sel.Filter)
	}
}

func (v *validator) validatePredicate(p Predicate) {
	switch pred := p.(type) {
	case nil:
	case Equals:
		v.validateEquals(pred)
	case And:
		for _, inner := range pred.Predicates {
			v.validatePredicate(inner)
		}
	default:
		v.addProblem("unknown predicate type %T", p)
	}
}

func (v *validator) validateEquals(eq Equals) {
	v.validateIdentifier("field", eq.Field)
	switch eq.Value.(type) {
	case int, int64, string, bool:
	default:
		v.addProblem("unsupported value type %T for field %q", eq.Value, eq.Field)
	}
}

func (v *validator) validateIdentifier(kind, name string) {
	if !identifierPattern.MatchString(name) {
		v.addProblem("invalid %s name %q", kind, name)
	}
}
