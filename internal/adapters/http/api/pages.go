package api

import (
	"errors"
	"net/http"

	service "github.com/okian/glorypath/internal/app"
)

// PagesHandler serves the JSON view models of the dashboard pages.
type PagesHandler struct {
	deps PageDependencies
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(deps PageDependencies) *PagesHandler {
	return &PagesHandler{deps: deps}
}

// HandleFilters handles GET /api/filters requests. Only the continent
// parameter is used, to narrow the country options.
func (h *PagesHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_filters"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Filters(r.Context(), sel.Continents))
}

// HandleOverview handles GET /api/overview requests.
func (h *PagesHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Overview(r.Context(), sel))
}

// HandleGlobal handles GET /api/global requests.
func (h *PagesHandler) HandleGlobal(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_global"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Global(r.Context(), sel))
}

// HandleAthletes handles GET /api/athletes?athlete=NAME requests.
func (h *PagesHandler) HandleAthletes(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_athletes"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Athletes(r.Context(), sel, r.URL.Query().Get("athlete")))
}

// HandleSports handles GET /api/sports requests.
func (h *PagesHandler) HandleSports(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_sports"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}
	q := r.URL.Query()
	page, err := h.deps.Sports(r.Context(), sel, service.SportsQuery{
		Date:          q.Get("date"),
		ScheduleSport: q.Get("schedule_sport"),
		EventsSport:   q.Get("events_sport"),
	})
	if errors.Is(err, service.ErrInvalidDate) {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, page)
}
