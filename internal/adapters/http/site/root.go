// Package site serves the embedded dashboard frontend.
package site

import (
	"context"
	"errors"
	"net/http"
)

// ErrServe is reported when the embedded frontend cannot be served.
var ErrServe = errors.New("dashboard site serve failed")

// Register attaches the dashboard frontend at / to mux. Paths that match no
// embedded file return 404.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", NewRootHandler())
}

// RootHandler serves the embedded frontend files.
type RootHandler struct {
	files http.Handler
}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{files: http.FileServer(FS())}
}

// ServeHTTP handles GET requests for the frontend.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
