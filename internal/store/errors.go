package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/registrar/internal/model"
)

// ErrorCode categorizes store failures.
type ErrorCode string

const (
	// CodeNotFound indicates the referenced id does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeConstraintViolation indicates a write was rejected by a uniqueness,
	// range, required-field or referential-integrity rule.
	CodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
)

// Op names the data-access operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpGet    Op = "get"
	OpList   Op = "list"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Constraint kinds reported on constraint violations.
const (
	ConstraintForeignKey = "foreign_key"
	ConstraintUnique     = "unique"
	ConstraintCheck      = "check"
	ConstraintNotNull    = "not_null"
	ConstraintOther      = "other"
)

// Sentinels for errors.Is matching against *Error.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Error is a structured store failure. The operation had no effect.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation that failed.
	Op Op

	// Entity is the entity the operation targeted.
	Entity model.Entity

	// ID is the targeted row, zero for create.
	ID int64

	// Constraint is the violated constraint kind (constraint violations only).
	Constraint string

	// Err is the underlying driver error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	target := string(e.Entity)
	if e.ID != 0 {
		target = fmt.Sprintf("%s %d", e.Entity, e.ID)
	}

	switch e.Code {
	case CodeNotFound:
		return fmt.Sprintf("%s %s: not found", e.Op, target)
	case CodeConstraintViolation:
		if e.Err != nil {
			return fmt.Sprintf("%s %s: constraint violation (%s): %v", e.Op, target, e.Constraint, e.Err)
		}
		return fmt.Sprintf("%s %s: constraint violation (%s)", e.Op, target, e.Constraint)
	default:
		return fmt.Sprintf("%s %s: %s", e.Op, target, e.Code)
	}
}

// Unwrap returns the underlying driver error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrNotFound and ErrConstraintViolation by code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrConstraintViolation:
		return e.Code == CodeConstraintViolation
	}
	return false
}

// IsNotFound returns true if the error is a not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == CodeNotFound
	}
	return false
}

// IsConstraintViolation returns true if the error is a constraint violation.
// Uses errors.As to handle wrapped errors.
func IsConstraintViolation(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == CodeConstraintViolation
	}
	return false
}

// ConstraintOf returns the violated constraint kind, or "" when err is not a
// constraint violation.
func ConstraintOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Code == CodeConstraintViolation {
		return se.Constraint
	}
	return ""
}

func notFound(op Op, entity model.Entity, id int64) *Error {
	return &Error{Code: CodeNotFound, Op: op, Entity: entity, ID: id}
}

// translate converts a driver error into a store error. SQLite constraint
// failures become constraint violations and sql.ErrNoRows becomes not found;
// anything else is wrapped with the operation and entity.
func translate(op Op, entity model.Entity, id int64, err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &Error{
			Code:       CodeConstraintViolation,
			Op:         op,
			Entity:     entity,
			ID:         id,
			Constraint: constraintKind(sqliteErr.ExtendedCode),
			Err:        err,
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound(op, entity, id)
	}

	return fmt.Errorf("%s %s: %w", op, strings.ToLower(string(entity)), err)
}

func constraintKind(code sqlite3.ErrNoExtended) string {
	switch code {
	case sqlite3.ErrConstraintForeignKey:
		return ConstraintForeignKey
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ConstraintUnique
	case sqlite3.ErrConstraintCheck:
		return ConstraintCheck
	case sqlite3.ErrConstraintNotNull:
		return ConstraintNotNull
	default:
		return ConstraintOther
	}
}
