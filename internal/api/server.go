package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/frokost/lunchbot/internal/config"
	"github.com/frokost/lunchbot/internal/lunch"
	"github.com/frokost/lunchbot/internal/metrics"
)

// Server wires HTTP handlers to the lunch service.
type Server struct {
	router chi.Router
	svc    *lunch.Service
	cfg    config.Config
	logger *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(svc *lunch.Service, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(timeoutMiddleware(30 * time.Second))
	if cfg.Server.CORSEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet},
		}))
	}

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/buildings", s.listBuildings)
		r.Get("/{building}/lunch", s.getLunch)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// No downstream state to check; the upstream menu host is probed
	// lazily per request.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) listBuildings(w http.ResponseWriter, _ *http.Request) {
	buildings := lunch.Buildings()
	names := make([]string, len(buildings))
	for i, b := range buildings {
		names[i] = b.String()
	}
	writeJSON(w, http.StatusOK, map[string][]string{"buildings": names})
}

func (s *Server) getLunch(w http.ResponseWriter, r *http.Request) {
	building, err := lunch.ParseBuilding(chi.URLParam(r, "building"))
	if err != nil {
		metrics.ObserveLunchRequest("unknown", "rejected")
		writeError(w, http.StatusNotFound, "unknown building")
		return
	}

	markdown, err := s.svc.GetLunch(r.Context(), building)
	if err != nil {
		// Fetch and extraction failures are deliberately collapsed:
		// callers cannot tell "upstream down" from "page layout
		// changed". The log line keeps the distinction.
		metrics.ObserveLunchRequest(building.String(), "error")
		s.logger.Error("lunch lookup failed",
			zap.String("building", building.String()),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ObserveLunchRequest(building.String(), "success")
	writeJSON(w, http.StatusOK, inChannel(markdown))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
