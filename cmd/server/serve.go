package main

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

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"feedback-browser/internal/config"
	"feedback-browser/internal/database"
	"feedback-browser/internal/grouping"
	"feedback-browser/internal/handlers"
	"feedback-browser/internal/logger"
	"feedback-browser/internal/middleware"
	"feedback-browser/internal/repository"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, os.Stdout)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server.port from the config")
	return cmd
}

// newRouter wires the API routes behind the request ID, access log and CORS middleware.
func newRouter(h *handlers.Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	h.Routes(r)

	// CORS wraps the router itself so preflight requests are answered
	// even though no route accepts OPTIONS.
	return middleware.RequestID(middleware.Logging(middleware.CORS(allowedOrigins)(r)))
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	h := handlers.New(
		repository.NewFeedbackRepository(db),
		grouping.New(cfg.Grouping.URL, cfg.Grouping.Timeout()),
		cfg.Server.MaxRequestSize,
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(h, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("grouping_url", cfg.Grouping.URL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
