package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/config"
	"github.com/roach88/registrar/internal/testutil"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(config.Default())
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// seededDB returns a database file holding the campus dataset.
func seededDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "campus.db")
	_, _, err := execute(t, "--db", dbPath, "seed", testutil.WriteCampus(t))
	require.NoError(t, err)
	return dbPath
}
