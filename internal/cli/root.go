package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/config"
	"github.com/roach88/registrar/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string

	// Config supplies defaults for flags and settings without a flag.
	Config config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the registrar CLI.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "registrar - university academic records",
		Long: `Keep curators, groups, students, courses, marks, degrees, positions,
teachers and lessons in a SQLite database, serve them over HTTP, and print
reports on grades, schedules and teaching load.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			slog.SetDefault(opts.logger(cmd.ErrOrStderr()))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", cfg.DBPath, "path to SQLite database")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// logger builds the text logger for a command run. --verbose forces debug.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := o.Config.LogLevel
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// openStore opens --db, creating the file and schema if needed.
func (o *RootOptions) openStore() (*store.Store, error) {
	if o.Database == "" {
		return nil, NewExitError(ExitCommandError, "no database: set --db or "+config.EnvDB)
	}

	slog.Debug("opening database", "path", o.Database)
	st, err := store.Open(o.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
