package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/queryir"
	"github.com/roach88/registrar/internal/querysql"
)

// Page selects a window of a list. A zero Limit means no limit.
type Page struct {
	Offset int64
	Limit  int64
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// table describes how one entity maps onto its SQL table. The CRUD
// operations below are shared by all nine entities through it.
type table[T any] struct {
	entity model.Entity

	// columns are the mutable columns, in the order values returns them.
	columns []string

	// values returns the mutable column values of a record.
	values func(T) []any

	// dest returns scan targets for id followed by columns.
	dest func(*T) []any
}

func (t table[T]) name() string {
	return t.entity.Table()
}

func (t table[T]) selectColumns() []string {
	return append([]string{"id"}, t.columns...)
}

func (t table[T]) insertSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name(), strings.Join(t.columns, ", "), placeholders)
}

func (t table[T]) updateSQL() string {
	sets := make([]string, len(t.columns))
	for i, col := range t.columns {
		sets[i] = col + " = ?"
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.name(), strings.Join(sets, ", "))
}

func (t table[T]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name())
}

func (t table[T]) scan(row rowScanner) (T, error) {
	var rec T
	if err := row.Scan(t.dest(&rec)...); err != nil {
		return rec, err
	}
	return rec, nil
}

// createRow inserts rec and returns the stored record with its assigned id.
func createRow[T any](ctx context.Context, s *Store, t table[T], rec T) (T, error) {
	var created T
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, t.insertSQL(), t.values(rec)...)
		if err != nil {
			return translate(OpCreate, t.entity, 0, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return translate(OpCreate, t.entity, 0, err)
		}

		created, err = getRow(ctx, tx, t, OpCreate, id)
		return err
	})
	return created, err
}

// getRow reads one record by id.
func getRow[T any](ctx context.Context, q querier, t table[T], op Op, id int64) (T, error) {
	var zero T
	query, args, err := querysql.Compile(queryir.Select{
		From:    t.name(),
		Columns: t.selectColumns(),
		Filter:  queryir.Equals{Field: "id", Value: id},
	})
	if err != nil {
		return zero, translate(op, t.entity, id, err)
	}

	rec, err := t.scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, translate(op, t.entity, id, err)
	}
	return rec, nil
}

// listRows reads records matching filter (nil = all) in ascending id order.
// Returns an empty slice (not nil) when nothing matches.
func listRows[T any](ctx context.Context, q querier, t table[T], filter queryir.Predicate, page Page) ([]T, error) {
	query, args, err := querysql.Compile(queryir.Select{
		From:    t.name(),
		Columns: t.selectColumns(),
		Filter:  filter,
		Offset:  page.Offset,
		Limit:   page.Limit,
	})
	if err != nil {
		return nil, translate(OpList, t.entity, 0, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(OpList, t.entity, 0, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, translate(OpList, t.entity, 0, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(OpList, t.entity, 0, err)
	}
	return records, nil
}

// updateRow replaces every mutable column of row id and returns the stored
// record.
func updateRow[T any](ctx context.Context, s *Store, t table[T], id int64, rec T) (T, error) {
	var updated T
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		args := append(t.values(rec), id)
		result, err := tx.ExecContext(ctx, t.updateSQL(), args...)
		if err != nil {
			return translate(OpUpdate, t.entity, id, err)
		}

		if err := requireAffected(result, OpUpdate, t.entity, id); err != nil {
			return err
		}

		updated, err = getRow(ctx, tx, t, OpUpdate, id)
		return err
	})
	return updated, err
}

// deleteRow removes row id. ON DELETE CASCADE children go in the same
// statement; RESTRICT children make it fail as a constraint violation.
func deleteRow[T any](ctx context.Context, s *Store, t table[T], id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, t.deleteSQL(), id)
		if err != nil {
			return translate(OpDelete, t.entity, id, err)
		}
		return requireAffected(result, OpDelete, t.entity, id)
	})
}

func requireAffected(result sql.Result, op Op, entity model.Entity, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return translate(op, entity, id, err)
	}
	if n == 0 {
		return notFound(op, entity, id)
	}
	return nil
}

// text normalizes stored text to NFC so visually identical names compare
// equal, including under UNIQUE constraints.
func text(s string) string {
	return norm.NFC.String(s)
}
