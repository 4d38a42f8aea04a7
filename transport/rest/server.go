package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

type Server struct {
	logger *slog.Logger
	mux    *http.ServeMux
}

func New(logger *slog.Logger, storage pinger, rules entity.Rules) *Server {
	h := &handlers{storage: storage, rules: rules}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", h.pingHandler)
	mux.HandleFunc("GET /health", h.healthHandler)
	mux.HandleFunc("GET /rules", h.rulesHandler)

	return &Server{
		logger: logger.With("component", "rest"),
		mux:    mux,
	}
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
