package queryir

// Query represents an abstract read query.
//
// This is a sealed interface - only types in this package implement it.
type Query interface {
	queryNode()
}

// Predicate represents a filter condition.
//
// This is a sealed interface - only types in this package implement it.
type Predicate interface {
	predicateNode()
}

// Select reads columns from one table.
//
// Semantics:
//
//	SELECT <columns> FROM <from> WHERE <filter> ORDER BY id LIMIT <limit> OFFSET <offset>
//
// Example:
//
//	Select{
//	  From:    "students",
//	  Columns: []string{"id", "group_id", "name", "birthday"},
//	  Filter:  Equals{Field: "group_id", Value: int64(3)},
//	}
//
// A zero Limit means no limit. Offset without Limit skips rows and returns
// the rest.
type Select struct {
	From    string    // Table name
	Columns []string  // Selected columns, in scan order
	Filter  Predicate // WHERE conditions (nil = no filter)
	Offset  int64
	Limit   int64
}

func (Select) queryNode() {}

// Equals represents a field-equals-literal predicate.
//
// Value must be an int, int64, string or bool. It is always passed to the
// database as a parameter.
type Equals struct {
	Field string
	Value any
}

func (Equals) predicateNode() {}

// And represents a conjunction of predicates. Empty means always true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}
