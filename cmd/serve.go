// serve.go implements the "website serve" command.
//
// Design: the server loads the registry once at startup; content is
// immutable for the lifetime of the process. Shutdown is graceful on
// SIGINT/SIGTERM so in-flight requests complete.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/registry"
	"github.com/matsjfunke/website/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website",
	Long:  `Serve the website with its content pages, sitemap, and the JSON-RPC content search endpoint at /api/mcp.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(c *cobra.Command, _ []string) error {
	addr, _ := c.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	reg := registry.Load(cfg)
	srv, err := site.New(cfg, reg)
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving website",
			"addr", addr,
			"compendiums", len(reg.Compendiums()),
			"thoughts", len(reg.Thoughts()),
			"books", len(reg.Books()))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
