// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	service "github.com/okian/glorypath/internal/app"
	"github.com/okian/glorypath/internal/domain/filter"
	"github.com/okian/glorypath/internal/domain/reference"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PageDependencies
	ExportDependencies
}

// PageDependencies builds the dashboard pages.
type PageDependencies interface {
	Filters(ctx context.Context, continents filter.Set[reference.Continent]) service.FilterOptions
	Overview(ctx context.Context, sel filter.Selection) service.Overview
	Global(ctx context.Context, sel filter.Selection) service.Global
	Athletes(ctx context.Context, sel filter.Selection, name string) service.Athletes
	Sports(ctx context.Context, sel filter.Selection, q service.SportsQuery) (service.Sports, error)
}

// ExportDependencies writes CSV downloads.
type ExportDependencies interface {
	Export(ctx context.Context, w io.Writer, name string, sel filter.Selection) (int, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	pagesHandler  *PagesHandler
	exportHandler *ExportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		pagesHandler:  NewPagesHandler(deps),
		exportHandler: NewExportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestID(MetricsMiddleware(h, endpoint)))
	}

	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/api/filters", "filters", s.pagesHandler.HandleFilters)
	route("/api/overview", "overview", s.pagesHandler.HandleOverview)
	route("/api/global", "global", s.pagesHandler.HandleGlobal)
	route("/api/athletes", "athletes", s.pagesHandler.HandleAthletes)
	route("/api/sports", "sports", s.pagesHandler.HandleSports)
	route("/api/export/", "export", s.exportHandler.HandleExport)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
