// Package api serves the mixture property engine over HTTP. GET endpoints
// expose the read-only constant tables; POST /api/v1/evaluate runs one
// profile evaluation. The server holds no mutable state — every request is
// answered from the engine and the tables it was built with.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/talgya/solventmix/internal/composition"
	"github.com/talgya/solventmix/internal/engine"
	"github.com/talgya/solventmix/internal/hansen"
	"github.com/talgya/solventmix/internal/report"
	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/viscosity"
)

// Server serves the property engine over HTTP.
type Server struct {
	Engine     *engine.Engine
	Components *solvent.Database
	Targets    *hansen.TargetSet
	Port       int
}

// Handler builds the route table. Split from Start so tests can drive it
// through httptest.
func (s *Server) Handler() http.Handler {
	evalLimiter := NewRateLimiter(120, time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/components", s.handleComponents)
	mux.HandleFunc("GET /api/v1/component/{name}", s.handleComponentDetail)
	mux.HandleFunc("GET /api/v1/models", s.handleModels)
	mux.HandleFunc("GET /api/v1/targets", s.handleTargets)
	mux.HandleFunc("POST /api/v1/evaluate", evalLimiter.Middleware(s.handleEvaluate))
	mux.HandleFunc("POST /api/v1/report", evalLimiter.Middleware(s.handleReport))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins. Set
// CORS_ORIGINS to a comma-separated list; localhost dev servers are always
// allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"name":       "solventmix",
		"components": s.Components.Len(),
		"targets":    len(s.Targets.Names()),
	})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	names := s.Components.Names()
	list := make([]map[string]any, 0, len(names))
	for _, name := range names {
		c, err := s.Components.Lookup(name)
		if err != nil {
			continue
		}
		list = append(list, map[string]any{
			"name":       c.Name,
			"molar_mass": c.MolarMass,
			"rho_ref":    c.RefDensity,
			"visc_ref":   c.RefVisc,
			"sigma_ref":  c.RefTension,
		})
	}
	writeJSON(w, map[string]any{"components": list})
}

func (s *Server) handleComponentDetail(w http.ResponseWriter, r *http.Request) {
	c, err := s.Components.Lookup(r.PathValue("name"))
	if err != nil {
		http.Error(w, "unknown component", http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"density":   engine.DensityModels(),
		"viscosity": engine.ViscosityModels(),
		"tension":   engine.TensionModels(),
	})
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	names := s.Targets.Names()
	list := make([]hansen.Target, 0, len(names))
	for _, name := range names {
		if t, err := s.Targets.Lookup(name); err == nil {
			list = append(list, t)
		}
	}
	writeJSON(w, map[string]any{"targets": list})
}

// evaluateBody is the wire form of an evaluation request: the engine
// request plus the interaction table as a flat pair list.
type evaluateBody struct {
	engine.EvalRequest
	Interactions []viscosity.Param `json:"interactions,omitempty"`
}

func (s *Server) decodeEvaluate(r *http.Request) (engine.EvalRequest, error) {
	var body evaluateBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return engine.EvalRequest{}, err
	}

	req := body.EvalRequest
	if len(body.Interactions) > 0 {
		table := viscosity.NewInteractionTable()
		for _, p := range body.Interactions {
			table.Set(p.CompA, p.CompB, p.G)
		}
		req.Interactions = table
	}
	return req, nil
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeEvaluate(r)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := s.Engine.Evaluate(req)
	if err != nil {
		status := http.StatusBadRequest
		if !isCallerError(err) {
			status = http.StatusInternalServerError
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, profile)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeEvaluate(r)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := s.Engine.Evaluate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := report.Build(profile)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="solventmix_report_%s.csv"`, rec.RunID))
	if err := rec.WriteCSV(w); err != nil {
		slog.Error("report write failed", "error", err)
	}
}

// isCallerError distinguishes bad input from engine bugs for HTTP status
// mapping. Everything the boundary validates is caller data.
func isCallerError(err error) bool {
	return errors.Is(err, solvent.ErrUnknownComponent) ||
		errors.Is(err, hansen.ErrUnknownTarget) ||
		errors.Is(err, engine.ErrUnknownModel) ||
		errors.Is(err, composition.ErrLengthMismatch) ||
		errors.Is(err, composition.ErrNegativeFraction) ||
		errors.Is(err, composition.ErrSumNotUnity) ||
		errors.Is(err, composition.ErrBadBasis) ||
		errors.Is(err, composition.ErrBadConstants) ||
		errors.Is(err, engine.ErrBadTemperature)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSON encode failed", "error", err)
	}
}
