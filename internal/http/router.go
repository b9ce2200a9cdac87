package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux; the API surface is
// small enough that a third-party router buys nothing.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler for http.Handler values (pprof etc.)
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterSyncRoutes wires the webhook and the status lookup
func (r *Router) RegisterSyncRoutes(h *SyncHandler) {
	r.Handle("/sync/api/v1/courses/sync", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Sync(w, req)
	})

	r.Handle("/sync/api/v1/reports", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Reports(w, req)
	})

	// /sync/api/v1/courses/{id}/status
	r.Handle("/sync/api/v1/courses/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		rest := strings.TrimPrefix(req.URL.Path, "/sync/api/v1/courses/")
		idStr, ok := strings.CutSuffix(rest, "/status")
		if !ok || idStr == "" || strings.Contains(idStr, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		courseID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || courseID <= 0 {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}
		h.Status(w, req, courseID)
	})
}

// RegisterExportRoutes wires the leads workbook download
func (r *Router) RegisterExportRoutes(h *ExportHandler) {
	r.Handle("/sync/api/v1/leads/export", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Export(w, req)
	})
}

// RegisterHealthRoute liveness probe
func (r *Router) RegisterHealthRoute() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "golfsync"})
	})
}
