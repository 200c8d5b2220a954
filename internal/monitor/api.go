package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/storage"
)

// APIServer exposes the latest analyses over HTTP, backed by the Redis
// cache so requests never touch the odds quota.
type APIServer struct {
	cache storage.AnalysisCache
	cfg   *config.APIConfig
}

func NewAPIServer(cache storage.AnalysisCache, cfg *config.APIConfig) *APIServer {
	return &APIServer{cache: cache, cfg: cfg}
}

// Run starts the server in the background and shuts it down when the
// context is cancelled.
func (s *APIServer) Run(ctx context.Context) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/analyses", s.handleAnalyses)
	r.Get("/value-bets", s.handleValueBets)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		slog.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("API server error", "error", err)
		}
	}()
}

func (s *APIServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *APIServer) handleAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "analysis cache is not configured"})
		return
	}

	analyses, err := s.cache.LatestAnalyses(r.Context())
	if err != nil {
		slog.Error("Failed to load analyses", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load analyses"})
		return
	}
	if analyses == nil {
		analyses = []models.MarketAnalysis{}
	}

	writeJSON(w, http.StatusOK, analyses)
}

func (s *APIServer) handleValueBets(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "analysis cache is not configured"})
		return
	}

	analyses, err := s.cache.LatestAnalyses(r.Context())
	if err != nil {
		slog.Error("Failed to load analyses", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load analyses"})
		return
	}

	type valueBetEntry struct {
		Match       string         `json:"match"`
		Competition string         `json:"competition"`
		Kickoff     time.Time      `json:"kickoff"`
		Bet         models.ValueBet `json:"bet"`
	}

	entries := []valueBetEntry{}
	for _, analysis := range analyses {
		for _, bet := range analysis.ValueBets {
			entries = append(entries, valueBetEntry{
				Match:       analysis.MatchID.Name(),
				Competition: analysis.MatchID.Competition,
				Kickoff:     analysis.MatchID.Kickoff,
				Bet:         bet,
			})
		}
	}

	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
