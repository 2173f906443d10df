// Command registrar keeps university academic records in SQLite and serves
// them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/registrar/internal/cli"
	"github.com/roach88/registrar/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		// Commands that format their own errors still return them for the
		// exit code; this line is the plain-text fallback on stderr.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
