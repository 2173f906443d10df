package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/fixture"
	"github.com/roach88/registrar/internal/model"
)

// SeedResult is the output of the seed command.
type SeedResult struct {
	Dataset string       `json:"dataset,omitempty"`
	Records int          `json:"records"`
	Refs    fixture.Refs `json:"refs"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dataset.yaml>",
		Short: "Load a YAML dataset into the database",
		Long: `Load curators, groups, students, courses, degrees, positions, teachers,
lessons and marks from a YAML dataset. Records reference each other by ref;
every ref is checked before anything is written.

Example:
  registrar seed --db ./University.db ./campus.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}
}

func runSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ds, err := fixture.Load(path)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to load dataset", err)
	}
	formatter.VerboseLog("Loaded %d record(s) from %s", ds.Len(), path)

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	refs, err := fixture.Apply(cmd.Context(), st, ds)
	if err != nil {
		return formatter.Fail("failed to seed database", err)
	}
	slog.Info("dataset applied", "path", path, "records", ds.Len())

	result := SeedResult{Dataset: ds.Name, Records: ds.Len(), Refs: refs}
	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Seeded %d record(s) from %s\n", result.Records, path)
	return formatter.Table(result, []string{"ENTITY", "REF", "ID"}, refRows(refs))
}

// refRows lists refs in entity dependency order, then by id.
func refRows(refs fixture.Refs) [][]string {
	var rows [][]string
	for _, entity := range model.Entities {
		type pair struct {
			ref string
			id  int64
		}
		var pairs []pair
		for ref, id := range refs[entity] {
			pairs = append(pairs, pair{ref, id})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })
		for _, p := range pairs {
			rows = append(rows, []string{string(entity), p.ref, strconv.FormatInt(p.id, 10)})
		}
	}
	return rows
}
