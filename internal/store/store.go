package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (lessons without a time column)
// 1 - Added lessons.time and the (group_id, time) schedule index
const currentSchemaVersion = 1

// Store provides durable storage for academic records.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and initializes
// the schema. Safe to call on every process start; existing data is kept.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.InitializeSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// dsn appends the connection parameters that must hold for every pooled
// connection, not only the first one.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// InitializeSchema ensures every table, foreign key, uniqueness constraint
// and check exists, then runs pending migrations. Idempotent.
func (s *Store) InitializeSchema(ctx context.Context) error {
	// Must run before schema.sql, which would otherwise create an empty
	// student_groups next to the legacy table.
	if err := s.renameLegacyGroups(ctx); err != nil {
		return fmt.Errorf("failed to rename legacy groups: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := runMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SchemaVersion returns the applied schema version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("get user_version: %w", err)
	}
	return version, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 1 {
		if err := migrateToV1(ctx, db); err != nil {
			return err
		}
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 adds lessons.time to databases created before lessons were
// scheduled, then indexes (group_id, time) for the group schedule report.
// New databases already have the column from schema.sql.
func migrateToV1(ctx context.Context, db *sql.DB) error {
	hasTime, err := hasColumn(ctx, db, "lessons", "time")
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}

	if !hasTime {
		// ADD COLUMN with NOT NULL needs a non-null default for existing rows.
		_, err := db.ExecContext(ctx, `ALTER TABLE lessons ADD COLUMN time TEXT NOT NULL DEFAULT '00:00'`)
		if err != nil {
			return fmt.Errorf("migrate to v1: add lessons.time: %w", err)
		}
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_lessons_group_time
		ON lessons(group_id, time)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}
	return nil
}

// renameLegacyGroups renames a "Groups" table written by the earlier
// revision to student_groups. Table names are case-insensitive, so every
// other legacy table already matches schema.sql; groups is the one table
// renamed here because GROUPS is an SQL keyword. With legacy_alter_table off,
// RENAME rewrites the REFERENCES clauses of students and lessons to follow.
//
// An empty student_groups beside the legacy table is left over from an Open
// that ran before this step and is dropped. If both tables hold rows the
// database is refused rather than merged.
func (s *Store) renameLegacyGroups(ctx context.Context) error {
	legacy, err := hasTable(ctx, s.db, "groups")
	if err != nil || !legacy {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA legacy_alter_table = OFF"); err != nil {
		return fmt.Errorf("disable legacy_alter_table: %w", err)
	}

	current, err := hasTable(ctx, s.db, "student_groups")
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if current {
			var n int64
			if err := tx.QueryRowContext(ctx, "SELECT count(*) FROM student_groups").Scan(&n); err != nil {
				return fmt.Errorf("count student_groups: %w", err)
			}
			if n > 0 {
				return fmt.Errorf("both \"groups\" and student_groups hold rows")
			}
			if _, err := tx.ExecContext(ctx, "DROP TABLE student_groups"); err != nil {
				return fmt.Errorf("drop empty student_groups: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `ALTER TABLE "groups" RENAME TO student_groups`); err != nil {
			return fmt.Errorf("rename groups: %w", err)
		}
		return nil
	})
}

// hasTable reports whether a table with the given name exists, ignoring case
// the way SQLite resolves table names.
func hasTable(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ? COLLATE NOCASE",
		name,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("look up table %s: %w", name, err)
	}
	return n > 0, nil
}

// hasColumn reports whether table has a column with the given name.
func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return false, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, fmt.Errorf("scan table info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// withTx runs fn inside a transaction, committing only if fn succeeds.
// Errors returned by fn are passed through unwrapped.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
