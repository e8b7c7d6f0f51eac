package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fourcast/adapters/report"
	"fourcast/adapters/stats"
	"fourcast/app"
	"fourcast/domain/backtest"
	"fourcast/domain/draw"
	"fourcast/internal"
	"fourcast/ports"
)

// Server exposes the backtest engine over a small JSON API.
type Server struct {
	router   chi.Router
	sweeps   *app.SweepService
	provider ports.HistoryProvider
	repo     ports.DrawRepository // optional, may be nil
	renderer ports.ReportRenderer
	defaults backtest.SweepConfig
	log      *internal.Logger
}

// NewServer wires the API routes. Request fields left unset fall back to the
// given default sweep configuration.
func NewServer(sweeps *app.SweepService, provider ports.HistoryProvider, repo ports.DrawRepository, defaults backtest.SweepConfig, log *internal.Logger) *Server {
	if log == nil {
		log = internal.DefaultLogger
	}
	s := &Server{
		sweeps:   sweeps,
		provider: provider,
		repo:     repo,
		renderer: report.NewMarkdownRenderer(),
		defaults: defaults,
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/backtest", s.handleBacktest)
		r.Get("/history/profile", s.handleProfile)
		r.Get("/summaries", s.handleSummaries)
	})

	s.router = r
	return s
}

// Handler returns the http handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// backtestRequest is the JSON body of POST /api/backtest.
type backtestRequest struct {
	WindowSizes []int   `json:"window_sizes"`
	TopK        []int   `json:"top_k"`
	Alpha       float64 `json:"alpha"`
	Format      string  `json:"format"` // "json" (default), "markdown" or "html"
}

func (s *Server) handleBacktest(w http.ResponseWriter, r *http.Request) {
	var req backtestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg := s.defaults
	if len(req.WindowSizes) > 0 {
		cfg.WindowSizes = req.WindowSizes
	}
	if len(req.TopK) > 0 {
		cfg.TopK = req.TopK
	}
	if req.Alpha > 0 {
		cfg.Alpha = req.Alpha
	}

	history, err := s.provider.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history: "+err.Error())
		return
	}

	result, err := s.sweeps.Run(r.Context(), history, cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.repo != nil {
		if err := s.repo.SaveSweep(r.Context(), result); err != nil {
			s.log.Warn("failed to persist sweep %s: %v", result.SweepID, err)
		}
	}

	switch req.Format {
	case "markdown":
		doc, err := s.renderer.Render(result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	case "html":
		doc, err := s.renderer.RenderHTML(result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	history, err := s.provider.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history: "+err.Error())
		return
	}
	profile := stats.ProfileHistory(history, draw.DefaultWeights())
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		writeError(w, http.StatusNotFound, "no repository configured")
		return
	}
	summaries, err := s.repo.ListSummaries(r.Context(), 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
