package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitResult is the output of the init command.
type InitResult struct {
	Database      string `json:"database"`
	SchemaVersion int    `json:"schema_version"`
}

func (r InitResult) String() string {
	return fmt.Sprintf("Database %s ready (schema version %d)", r.Database, r.SchemaVersion)
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or upgrade the database schema",
		Long: `Create the database file if needed, apply the schema and run pending
migrations. Safe to run repeatedly.

Example:
  registrar init --db ./University.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	version, err := st.SchemaVersion(cmd.Context())
	if err != nil {
		return formatter.Fail("failed to read schema version", err)
	}

	return formatter.Success(InitResult{Database: opts.Database, SchemaVersion: version})
}
