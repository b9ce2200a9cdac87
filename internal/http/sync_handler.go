package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golfsync/internal/repository"
	"golfsync/internal/store"
	syncsvc "golfsync/internal/sync"

	"go.uber.org/zap"
)

// CourseSyncer is the orchestrator surface the HTTP layer needs.
type CourseSyncer interface {
	SyncCourse(ctx context.Context, req syncsvc.Request) (*syncsvc.Report, error)
}

// SyncHandler serves the enrichment-complete webhook and the per-course
// sync status lookup.
type SyncHandler struct {
	syncer CourseSyncer
	kv     store.KV
	logger *zap.Logger
}

func NewSyncHandler(syncer CourseSyncer, kv store.KV, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{syncer: syncer, kv: kv, logger: logger}
}

// POST /sync/api/v1/courses/sync
// body: { course_id, course_name?, state_code? }
//
// Status code reflects the report: 200 when every stage synced cleanly,
// 207 when the report carries stage errors, 500 only when the sync
// could not run at all (bad request aside).
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req syncsvc.Request
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.CourseID <= 0 {
		writeError(w, http.StatusBadRequest, "course_id is required")
		return
	}

	report, err := h.syncer.SyncCourse(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Sync failed before any stage ran",
			zap.Int64("course_id", req.CourseID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cacheReport(ctx, report)

	status := http.StatusOK
	if report.Partial() {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, report)
}

// GET /sync/api/v1/courses/{id}/status
// Serves the last cached report for the course; enrichment runs are rare
// enough that the Redis TTL covers any realistic lookup window.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request, courseID int64) {
	raw, err := h.kv.Get(r.Context(), store.ReportKey(courseID))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			writeError(w, http.StatusNotFound, "no sync recorded for course")
			return
		}
		h.logger.Warn("Report cache read failed", zap.Int64("course_id", courseID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report cache unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(raw))
}

// GET /sync/api/v1/reports
// Scans every cached report so an operator can review recent syncs in
// one call. A cache outage degrades to an empty list rather than an
// error; the webhook responses remain the source of truth.
func (h *SyncHandler) Reports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keys, err := h.kv.ScanKeys(ctx, store.ReportKeyPattern)
	if err != nil {
		h.logger.Warn("ScanKeys failed, returning empty report list", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]any{"count": 0, "reports": []json.RawMessage{}})
		return
	}

	reports := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		raw, err := h.kv.Get(ctx, key)
		if err != nil {
			continue
		}
		reports = append(reports, json.RawMessage(raw))
	}

	writeJSON(w, http.StatusOK, map[string]any{"count": len(reports), "reports": reports})
}

// cacheReport is best effort: a Redis outage must not fail a sync that
// already happened.
func (h *SyncHandler) cacheReport(ctx context.Context, report *syncsvc.Report) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := h.kv.Set(ctx, store.ReportKey(report.CourseID), string(raw), store.ReportTTL); err != nil {
		h.logger.Warn("Report cache write failed",
			zap.Int64("course_id", report.CourseID),
			zap.Error(err),
		)
	}
}
