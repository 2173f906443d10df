// Package testutil provides helpers shared by package tests: a fresh store
// per test, a seeded campus dataset and deterministic request ids.
package testutil

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/fixture"
	"github.com/roach88/registrar/internal/store"
)

// CampusYAML is a small, fully connected dataset:
//
//	Ivanova Maria -> IU7-11: Alice, Bob
//	Petrov Oleg   -> IU7-12: Carol, Dave
//	Sidorova Anna -> (no group)
//
// Dave has no marks. Applied to an empty store, ids follow file order.
//
//go:embed testdata/campus.yaml
var CampusYAML []byte

// OpenStore opens a store on a fresh file under t.TempDir and closes it
// when the test ends.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// SeedCampus applies CampusYAML to s.
func SeedCampus(t *testing.T, s *store.Store) fixture.Refs {
	t.Helper()
	ds, err := fixture.Parse(CampusYAML)
	require.NoError(t, err)

	refs, err := fixture.Apply(context.Background(), s, ds)
	require.NoError(t, err)
	return refs
}

// WriteCampus writes CampusYAML to a file under t.TempDir and returns its
// path, for commands that take a dataset file.
func WriteCampus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, CampusYAML, 0o644))
	return path
}
