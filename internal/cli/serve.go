package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/api"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string

	// RequestIDs overrides the request id source (for testing).
	// If nil, the API issues UUIDv7 ids.
	RequestIDs api.IDGenerator

	// OnListen is called with the bound address once the listener is up
	// (for testing with --addr :0).
	OnListen func(addr string)
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return newServeCommand(&ServeOptions{RootOptions: rootOpts})
}

func newServeCommand(opts *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Open the database and serve the HTTP API until interrupted.

SIGINT or SIGTERM stops accepting connections and lets in-flight requests
finish before the database is closed.

Example:
  registrar serve --db ./University.db --addr :8000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", opts.Config.Addr, "listen address")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	if opts.Addr == "" {
		opts.Addr = opts.Config.Addr
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	slog.Info("database ready", "path", opts.Database)

	if opts.Config.GinMode != "" {
		gin.SetMode(opts.Config.GinMode)
	}
	handler := api.New(st, api.Options{
		Logger:       slog.Default(),
		DefaultLimit: opts.Config.DefaultLimit,
		RequestIDs:   opts.RequestIDs,
	}).Handler()

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to listen", err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	addr := ln.Addr().String()
	slog.Info("listening", "addr", addr)
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
	if opts.OnListen != nil {
		opts.OnListen(addr)
	}

	select {
	case err := <-serveErr:
		return WrapExitError(ExitFailure, "server error", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitFailure, "shutdown", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return WrapExitError(ExitFailure, "server error", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
