// Package store provides SQLite-backed durable storage for academic records.
//
// The store owns nine tables (curators, student_groups, students, courses,
// marks, degrees, positions, teachers, lessons) and answers two kinds of
// requests:
//   - CRUD against a single entity (create, get, list, update, delete)
//   - Read-only reports computed with joins and aggregation
//
// # Constraints
//
// Every invariant is enforced by SQLite itself, not by Go code:
//   - Foreign keys must reference existing rows at write time
//   - student_groups.curator_id, courses.title and degrees.title are UNIQUE
//   - marks.mark is CHECKed to the closed range [2,5]
//   - Required text columns are NOT NULL and CHECKed to be non-blank
//   - Deleting a student cascades to its marks; deleting a teacher cascades
//     to its lessons; every other parent is ON DELETE RESTRICT
//
// Constraint failures surface as *Error with Code CodeConstraintViolation.
// Missing rows surface as *Error with Code CodeNotFound.
//
// # Atomicity
//
// Every write runs in its own transaction and is either fully applied or
// fully rolled back. Reads are single statements.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity on every connection
package store
