// Package queryir provides a small query representation for single-table
// reads over the registrar schema.
//
// Every entity list and filter read in the store is described as a Select
// and compiled to SQL by package querysql. Describing reads as data keeps
// the SQL for nine near-identical entities in one place and guarantees two
// properties for all of them:
//
//   - Values are never interpolated into SQL; only identifiers are, and
//     identifiers are validated here first.
//   - Every read has a deterministic order (ascending id), so repeated reads
//     with no intervening writes return the same sequence.
//
// Multi-table reports (joins, aggregation) are written as SQL in the store
// package and are out of scope for this representation.
//
// Query and Predicate are sealed interfaces using the marker method pattern.
package queryir
