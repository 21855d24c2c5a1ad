// Package httpapi exposes the enriched season over a small read-only API.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vkaratov/matchreel/internal/pkg/models"
)

// Server serves the in-memory enriched season. SetSeason may be called
// again after a later run; reads and swaps are guarded.
type Server struct {
	service string

	mu     sync.RWMutex
	season *models.Season
}

func NewServer(service string) *Server {
	return &Server{service: service}
}

// SetSeason swaps the season the API serves.
func (s *Server) SetSeason(season *models.Season) {
	s.mu.Lock()
	s.season = season
	s.mu.Unlock()
}

// Register mounts all endpoints on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ping", handlePing)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/fixtures", s.handleFixtures)
	mux.HandleFunc("/fixture", s.handleFixture)
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string, readHeaderTimeout time.Duration) {
	mux := http.NewServeMux()
	s.Register(mux)

	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 5 * time.Second
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		slog.Info("API server listening", "service", s.service, "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("API server error", "service", s.service, "error", err)
		}
	}()
}

func handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong\n"))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// fixtureSummary is one row of the /fixtures listing.
type fixtureSummary struct {
	Gameweek   int    `json:"gameweek"`
	Home       string `json:"home"`
	Away       string `json:"away"`
	Date       string `json:"date"`
	Score      string `json:"score,omitempty"`
	VideoCount int    `json:"videoCount"`
}

// handleFixtures lists every fixture with its video count.
func (s *Server) handleFixtures(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	season := s.season
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if season == nil {
		http.Error(w, `{"error":"no season loaded"}`, http.StatusServiceUnavailable)
		return
	}

	var rows []fixtureSummary
	for _, gw := range season.Gameweeks {
		for _, fx := range gw.Fixtures {
			rows = append(rows, fixtureSummary{
				Gameweek:   gw.Number,
				Home:       fx.Home,
				Away:       fx.Away,
				Date:       fx.Date,
				Score:      fx.Score,
				VideoCount: fx.VideoCount,
			})
		}
	}

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"season":   season.Season,
		"fixtures": rows,
		"meta": map[string]interface{}{
			"count":        len(rows),
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleFixture returns one fixture with its full ranked video list.
// Lookup is by the unordered team pair: ?home=Arsenal&away=Chelsea and
// ?home=Chelsea&away=Arsenal hit the same fixture. An optional ?date=
// narrows the search when the pair meets more than once.
func (s *Server) handleFixture(w http.ResponseWriter, r *http.Request) {
	home := r.URL.Query().Get("home")
	away := r.URL.Query().Get("away")
	date := r.URL.Query().Get("date")

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if home == "" || away == "" {
		http.Error(w, `{"error":"home and away query parameters are required"}`, http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	season := s.season
	s.mu.RUnlock()
	if season == nil {
		http.Error(w, `{"error":"no season loaded"}`, http.StatusServiceUnavailable)
		return
	}

	key := models.PairKey(home, away)
	for _, gw := range season.Gameweeks {
		for i := range gw.Fixtures {
			fx := &gw.Fixtures[i]
			if models.PairKey(fx.Home, fx.Away) != key {
				continue
			}
			if date != "" && fx.Date != date {
				continue
			}
			_ = json.NewEncoder(w).Encode(fx)
			return
		}
	}
	http.Error(w, `{"error":"fixture not found"}`, http.StatusNotFound)
}
