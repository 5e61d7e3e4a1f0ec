package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	service "github.com/okian/glorypath/internal/app"
)

const exportPrefix = "/api/export/"

// ExportHandler serves CSV downloads.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /api/export/{name}.csv requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	file := strings.TrimPrefix(r.URL.Path, exportPrefix)
	name, ok := strings.CutSuffix(file, ".csv")
	if !ok || name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, fmt.Errorf("%q", file)))
		return
	}
	sel, ok := selection(w, r, op)
	if !ok {
		return
	}

	// Buffered so a failed export can still answer with a JSON error.
	var buf bytes.Buffer
	if _, err := h.deps.Export(r.Context(), &buf, name, sel); err != nil {
		if errors.Is(err, service.ErrUnknownExport) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
