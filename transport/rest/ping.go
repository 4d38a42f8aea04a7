package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	storage pinger
	rules   entity.Rules
}

func (that *handlers) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// healthHandler - reports whether the game storage answers.
func (that *handlers) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := that.storage.Ping(r.Context()); err != nil {
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// rulesHandler - publishes the rules new games start with.
func (that *handlers) rulesHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(that.rules); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
